package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/users-be/internal/api/handlers"
	"github.com/isdelr/users-be/internal/config"
	"github.com/isdelr/users-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(cfg *config.Config, appService services.AppServiceProvider, userService services.UserServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	// After CORS so 429 responses stay readable by browsers.
	r.Use(rateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// Initialize handlers
	appHandler := handlers.NewAppHandler(appService)
	userHandler := handlers.NewUserHandler(userService)

	r.Get("/", appHandler.Hello)
	r.Get("/health", appHandler.Health)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
	})

	return r
}
