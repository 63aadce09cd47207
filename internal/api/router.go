package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/saboracademico/backend/internal/middleware"
)

// Router holds all handlers and creates the chi router
type Router struct {
	notifyHandler *NotifyHandler
	mailHandler   *MailHandler
	healthHandler *HealthHandler
	allowedOrigin string
	logger        *zap.Logger
}

// NewRouter creates a new router
func NewRouter(
	notifyHandler *NotifyHandler,
	mailHandler *MailHandler,
	healthHandler *HealthHandler,
	allowedOrigin string,
	logger *zap.Logger,
) *Router {
	return &Router{
		notifyHandler: notifyHandler,
		mailHandler:   mailHandler,
		healthHandler: healthHandler,
		allowedOrigin: allowedOrigin,
		logger:        logger,
	}
}

// Setup configures and returns the chi router
func (rt *Router) Setup() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RecoveryMiddleware(rt.logger))
	r.Use(middleware.LoggingMiddleware(rt.logger))
	r.Use(middleware.CORSMiddleware(rt.allowedOrigin))
	r.Use(chimiddleware.Compress(5))

	// Health endpoints
	r.Route("/health", func(r chi.Router) {
		r.Get("/", rt.healthHandler.Health)
		r.Get("/ready", rt.healthHandler.Ready)
		r.Get("/live", rt.healthHandler.Live)
	})

	// Push notification endpoints
	r.Post("/notify", rt.notifyHandler.Notify)
	r.Post("/notify-role", rt.notifyHandler.NotifyRole)

	// Account-status mail endpoints. The path names are historical and
	// kept for client compatibility.
	r.Post("/smend-ail", rt.mailHandler.SendDecision)
	r.Post("/rechazo-mail", rt.mailHandler.SendRejection)

	return r
}
