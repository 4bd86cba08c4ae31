package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/givehub/givehub/internal/application"
)

// Handler is the HTTP adapter entrypoint. It depends only on the
// application service and a database liveness probe.
type Handler struct {
	service *application.Service
	pingDB  func(context.Context) error
}

// NewHandler constructs an HTTP handler bound to the application service.
// pingDB may be nil when no database is attached.
func NewHandler(service *application.Service, pingDB func(context.Context) error) *Handler {
	return &Handler{service: service, pingDB: pingDB}
}

// NewRouter registers the platform routes and middleware stack.
func NewRouter(handler *Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/", handler.root)
	r.Get("/health", handler.health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.register)
		r.Post("/login", handler.login)
		r.Post("/logout", handler.logout)
		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Get("/me", handler.authMe)
		})
	})

	r.Route("/campaigns", func(r chi.Router) {
		r.Get("/", handler.listCampaigns)
		r.Get("/{campaign_id}", handler.getCampaign)
		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Post("/", handler.createCampaign)
			r.Put("/{campaign_id}", handler.updateCampaign)
			r.Delete("/{campaign_id}", handler.deleteCampaign)
			r.Get("/my/campaigns", handler.myCampaigns)
		})
	})

	r.Route("/givers", func(r chi.Router) {
		r.Get("/leaderboard", handler.leaderboard)
		r.Get("/profile/{user_id}", handler.publicGiverProfile)
		r.Get("/profile/{user_id}/donations", handler.publicGiverDonations)
		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Get("/me", handler.myGiverProfileShorthand)
			r.Get("/me/donations", handler.myGiverDonationsShorthand)
			r.Post("/profile", handler.createGiverProfile)
			r.Get("/profile/me", handler.myGiverProfile)
			r.Put("/profile/me", handler.updateGiverProfile)
			r.Get("/profile/me/donations", handler.myGiverDonations)
		})
	})

	r.Route("/donations", func(r chi.Router) {
		r.Get("/campaigns/{campaign_id}", handler.campaignDonations)
		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Post("/", handler.createDonation)
			r.Get("/my/donations", handler.myDonations)
			r.Get("/{donation_id}", handler.getDonation)
			r.Patch("/{donation_id}/status", handler.updateDonationStatus)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/count", handler.usersCount)
		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Get("/me", handler.usersMe)
			r.Put("/me", handler.updateMe)
			r.Get("/me/stats", handler.myStats)
		})
	})

	return r
}
