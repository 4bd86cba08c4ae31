package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	cacheadapter "github.com/givehub/givehub/internal/adapters/cache"
	eventadapter "github.com/givehub/givehub/internal/adapters/events"
	httpadapter "github.com/givehub/givehub/internal/adapters/http"
	"github.com/givehub/givehub/internal/adapters/postgres"
	"github.com/givehub/givehub/internal/adapters/security"
	"github.com/givehub/givehub/internal/application"
	"github.com/givehub/givehub/internal/ports"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	grpcServer *grpc.Server
	grpcLis    net.Listener
	outbox     *eventadapter.OutboxWorker
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	logger.Info("bootstrapping fundraiser platform service",
		"service", cfg.ServiceID,
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	db, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("gorm sql db: %w", err)
	}

	if err := postgres.RunMigrations(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	cleanup := func(context.Context) { _ = sqlDB.Close() }

	// The shared Redis window store only matters for multi-instance
	// deployments; single instances fall back to process memory.
	var windows ports.RateWindowStore = cacheadapter.NewMemoryRateWindowStore()
	if cfg.RedisURL != "" {
		redisClient, err := cacheadapter.Connect(ctx, cfg.RedisURL)
		if err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		if err := redisClient.Ping(ctx).Err(); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		windows = cacheadapter.NewRedisRateWindowStore(redisClient)
		prev := cleanup
		cleanup = func(ctx context.Context) {
			_ = redisClient.Close()
			prev(ctx)
		}
	}

	tokens, err := security.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("init jwt issuer: %w", err)
	}

	repos := postgres.NewRepositories(db)
	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			TokenTTL:        cfg.TokenTTL,
			RegisterQuota:   cfg.RegisterQuota,
			RegisterWindow:  cfg.RegisterWindow,
			LoginQuota:      cfg.LoginQuota,
			LoginWindow:     cfg.LoginWindow,
			DefaultCurrency: cfg.DefaultCurrency,
		},
		Users:     repos.Users,
		Campaigns: repos.Campaigns,
		Givers:    repos.Givers,
		Donations: repos.Donations,
		Windows:   windows,
		Hasher:    security.NewBcryptHasher(cfg.BcryptCost),
		Tokens:    tokens,
	})

	handler := httpadapter.NewHandler(svc, sqlDB.PingContext)
	router := httpadapter.NewRouter(handler, cfg.CORSOrigins)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcServer := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		cleanup(ctx)
		return nil, fmt.Errorf("listen gRPC: %w", err)
	}

	var publisher ports.EventPublisher = eventadapter.NewLoggingPublisher(logger)
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := eventadapter.NewKafkaPublisher(cfg.KafkaBrokers, map[string]string{
			"user.registered":    cfg.UserRegisteredTopic,
			"donation.completed": cfg.DonationCompletedTopic,
		})
		if err != nil {
			cleanup(ctx)
			return nil, fmt.Errorf("init kafka publisher: %w", err)
		}
		publisher = kafkaPublisher
		prev := cleanup
		cleanup = func(ctx context.Context) {
			_ = kafkaPublisher.Close()
			prev(ctx)
		}
	}

	outbox := eventadapter.NewOutboxWorker(
		logger,
		repos.Outbox,
		publisher,
		cfg.OutboxPollInterval,
		cfg.OutboxBatchSize,
		cfg.OutboxMaxRetries,
	)

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		grpcServer: grpcServer,
		grpcLis:    lis,
		outbox:     outbox,
		cleanupFn:  cleanup,
	}, nil
}

// RunAPI serves HTTP and gRPC health traffic until a shutdown signal.
func (r *Runtime) RunAPI(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	go func() {
		r.logger.Info("http server started", "addr", r.httpServer.Addr)
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		r.logger.Info("grpc server started", "addr", r.grpcLis.Addr().String())
		if err := r.grpcServer.Serve(r.grpcLis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		r.logger.Info("shutdown signal received")
	case err := <-errCh:
		r.logger.Error("server failure", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.grpcServer.GracefulStop()
	r.cleanupFn(shutdownCtx)
	return nil
}

// RunWorker drives the outbox relay loop until a shutdown signal.
func (r *Runtime) RunWorker(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.logger.Info("outbox worker started")
	err := r.outbox.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	r.cleanupFn(shutdownCtx)
	return nil
}
