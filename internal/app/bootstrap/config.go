package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration. It merges file defaults and
// environment overrides to support both local and deployed runs.
type Config struct {
	ServiceID string

	HTTPPort int
	GRPCPort int

	DatabaseURL string
	RedisURL    string
	MaxDBConns  int32

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	RegisterQuota  int64
	RegisterWindow time.Duration
	LoginQuota     int64
	LoginWindow    time.Duration

	DefaultCurrency string
	CORSOrigins     []string

	KafkaBrokers           []string
	UserRegisteredTopic    string
	DonationCompletedTopic string

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxRetries   int
}

// configFile mirrors the YAML schema used by configs/default.yaml.
// It is intentionally separate from Config so runtime-only fields stay internal.
type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
		GRPCPort int    `yaml:"grpc_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL  string   `yaml:"postgres_url"`
		RedisURL     string   `yaml:"redis_url"`
		KafkaBrokers []string `yaml:"kafka_brokers"`
	} `yaml:"dependencies"`
	Auth struct {
		SecretKey       string `yaml:"secret_key"`
		TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
		BcryptCost      int    `yaml:"bcrypt_cost"`
	} `yaml:"auth"`
	Cors struct {
		Origins []string `yaml:"origins"`
	} `yaml:"cors"`
	Events struct {
		UserRegisteredTopic    string `yaml:"user_registered_topic"`
		DonationCompletedTopic string `yaml:"donation_completed_topic"`
	} `yaml:"events"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
// A missing config file is not an error; environments without one run on
// defaults plus environment variables.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:              "givehub-api",
		HTTPPort:               8000,
		GRPCPort:               9090,
		MaxDBConns:             20,
		JWTSecret:              "dev-secret-change-me",
		TokenTTL:               30 * time.Minute,
		BcryptCost:             12,
		RegisterQuota:          5,
		RegisterWindow:         time.Hour,
		LoginQuota:             10,
		LoginWindow:            time.Minute,
		DefaultCurrency:        "GBP",
		CORSOrigins:            []string{"http://localhost:3000", "http://localhost:5173"},
		UserRegisteredTopic:    "givehub.users.registered",
		DonationCompletedTopic: "givehub.donations.completed",
		OutboxPollInterval:     2 * time.Second,
		OutboxBatchSize:        100,
		OutboxMaxRetries:       5,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Service.GRPCPort > 0 {
			cfg.GRPCPort = f.Service.GRPCPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if len(f.Dependencies.KafkaBrokers) > 0 {
			cfg.KafkaBrokers = f.Dependencies.KafkaBrokers
		}
		if f.Auth.SecretKey != "" {
			cfg.JWTSecret = f.Auth.SecretKey
		}
		if f.Auth.TokenTTLMinutes > 0 {
			cfg.TokenTTL = time.Duration(f.Auth.TokenTTLMinutes) * time.Minute
		}
		if f.Auth.BcryptCost > 0 {
			cfg.BcryptCost = f.Auth.BcryptCost
		}
		if len(f.Cors.Origins) > 0 {
			cfg.CORSOrigins = f.Cors.Origins
		}
		if f.Events.UserRegisteredTopic != "" {
			cfg.UserRegisteredTopic = f.Events.UserRegisteredTopic
		}
		if f.Events.DonationCompletedTopic != "" {
			cfg.DonationCompletedTopic = f.Events.DonationCompletedTopic
		}
	}

	cfg.DatabaseURL = envOrDefault("DATABASE_URL", cfg.DatabaseURL)
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.JWTSecret = envOrDefault("SECRET_KEY", cfg.JWTSecret)
	cfg.DefaultCurrency = envOrDefault("DEFAULT_CURRENCY", cfg.DefaultCurrency)
	cfg.CORSOrigins = envCSV("CORS_ORIGINS", cfg.CORSOrigins)
	cfg.KafkaBrokers = envCSV("KAFKA_BROKERS", cfg.KafkaBrokers)
	cfg.UserRegisteredTopic = envOrDefault("USER_REGISTERED_TOPIC", cfg.UserRegisteredTopic)
	cfg.DonationCompletedTopic = envOrDefault("DONATION_COMPLETED_TOPIC", cfg.DonationCompletedTopic)

	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.GRPCPort = envInt("GRPC_PORT", cfg.GRPCPort)
	cfg.MaxDBConns = int32(envInt("DB_MAX_CONNS", int(cfg.MaxDBConns)))
	cfg.BcryptCost = envInt("BCRYPT_ROUNDS", cfg.BcryptCost)

	cfg.TokenTTL = time.Duration(envInt("ACCESS_TOKEN_EXPIRE_MINUTES", int(cfg.TokenTTL.Minutes()))) * time.Minute
	cfg.RegisterQuota = int64(envInt("REGISTER_RATE_LIMIT", int(cfg.RegisterQuota)))
	cfg.RegisterWindow = time.Duration(envInt("REGISTER_RATE_WINDOW_SECONDS", int(cfg.RegisterWindow.Seconds()))) * time.Second
	cfg.LoginQuota = int64(envInt("LOGIN_RATE_LIMIT", int(cfg.LoginQuota)))
	cfg.LoginWindow = time.Duration(envInt("LOGIN_RATE_WINDOW_SECONDS", int(cfg.LoginWindow.Seconds()))) * time.Second
	cfg.OutboxPollInterval = time.Duration(envInt("OUTBOX_POLL_SECONDS", int(cfg.OutboxPollInterval.Seconds()))) * time.Second
	cfg.OutboxBatchSize = envInt("OUTBOX_BATCH_SIZE", cfg.OutboxBatchSize)
	cfg.OutboxMaxRetries = envInt("OUTBOX_MAX_RETRIES", cfg.OutboxMaxRetries)

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing DATABASE_URL")
	}

	return cfg, nil
}

// envOrDefault returns an env var when present, otherwise the provided fallback.
func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// envInt parses integer env vars with safe fallback on empty/invalid values.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// envCSV parses comma-separated env vars and removes empty segments.
func envCSV(name string, fallback []string) []string {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	parts := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		parts = append(parts, trimmed)
	}
	if len(parts) == 0 {
		return fallback
	}
	return parts
}
