package api

import (
	"devdosthub/internal/api/handler"
	"devdosthub/internal/api/middleware"
	"devdosthub/internal/app/service"
	"devdosthub/internal/common/security"
	"devdosthub/internal/platform/config"
	"devdosthub/internal/platform/metrics"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func NewRouter(
	authService *service.AuthService,
	userService *service.UserService,
	eventService *service.EventService,
	rsvpService *service.RSVPService,
	aiService *service.AIService,
	collector *metrics.Collector,
	gatherer prometheus.Gatherer,
	aiLimiter *middleware.RateLimiter,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(collector.Middleware)

	// The admin console runs on a separate origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.AppConfig.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// JWT Auth Middleware Setup
	// It will search for a token in "Authorization: Bearer T".
	r.Use(jwtauth.Verifier(security.TokenAuth)) // Verifies token, puts claims in context

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	r.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))

	authMW := middleware.NewAuthMiddleware(authService)

	r.Route("/api", func(api chi.Router) {
		userHandler := handler.NewUserHandler(authService, userService, authMW)
		api.Route("/users", userHandler.RegisterRoutes)

		eventHandler := handler.NewEventHandler(eventService, authMW)
		api.Route("/events", eventHandler.RegisterRoutes)

		rsvpHandler := handler.NewRSVPHandler(rsvpService, authMW)
		api.Route("/rsvps", rsvpHandler.RegisterRoutes)

		aiHandler := handler.NewAIHandler(aiService)
		api.Route("/ai", func(ai chi.Router) {
			ai.Use(aiLimiter.Middleware)
			aiHandler.RegisterRoutes(ai)
		})
	})

	return r
}
