package api

import (
	"net/http"

	"github.com/aiguilog/aiguilog/internal/api/handlers"
	"github.com/aiguilog/aiguilog/internal/api/middleware"
	"github.com/aiguilog/aiguilog/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	outingHandler := handlers.NewOutingHandler(services.Outing)
	summitHandler := handlers.NewSummitHandler(services.Summit)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/sommets", summitHandler.Search)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Get("/me", authHandler.Me)

			r.Route("/sorties", func(r chi.Router) {
				r.Post("/", outingHandler.Create)
				r.Get("/", outingHandler.List)
				r.Put("/{id}", outingHandler.Update)
				r.Delete("/{id}", outingHandler.Delete)
			})
		})
	})

	return r
}
