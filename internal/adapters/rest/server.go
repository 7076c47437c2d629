package rest

import (
	"context"
	"net/http"

	core_port "listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	propertyHandlers *PropertyHandlers,
	teamHandlers *TeamHandlers,
	analyticsHandlers *AnalyticsHandlers,
	authHandlers *AuthHandlers,
	healthHandlers *HealthHandlers,
	authUC usecases_port.AuthUseCase,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)

	requireAuth := AuthMiddleware(authUC)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandlers.GetHealth)

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", propertyHandlers.ListProperties)
			r.Get("/{id}", propertyHandlers.GetProperty)
			r.Get("/{id}/related", propertyHandlers.GetRelatedProperties)

			// Catalog writes are admin-only.
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", propertyHandlers.CreateProperty)
				r.Put("/{id}", propertyHandlers.UpdateProperty)
				r.Delete("/{id}", propertyHandlers.DeleteProperty)
			})
		})

		r.Route("/team", func(r chi.Router) {
			r.Get("/", teamHandlers.ListTeam)
			r.Get("/{id}", teamHandlers.GetTeamMember)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", teamHandlers.CreateTeamMember)
				r.Put("/{id}", teamHandlers.UpdateTeamMember)
				r.Delete("/{id}", teamHandlers.DeleteTeamMember)
			})
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Post("/track", analyticsHandlers.TrackVisit)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/stats", analyticsHandlers.GetStats)
				r.Get("/logs", analyticsHandlers.GetLogs)
				r.Get("/daily", analyticsHandlers.GetDaily)
				r.Get("/pages", analyticsHandlers.GetPages)
			})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandlers.Login)
			r.Get("/validate", authHandlers.Validate)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
