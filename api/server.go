package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/metrics"
	"github.com/rpupo63/portfolio-site-backend/services"
	"github.com/rs/zerolog/log"
)

// Services are the domain services the handlers call into
type Services struct {
	Portfolio *services.PortfolioService
	Contact   *services.ContactService
}

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(c map[string]string, database database.Database, svc Services) (Server, error) {
	if svc.Portfolio == nil || svc.Contact == nil {
		return Server{}, fmt.Errorf("portfolio and contact services are required")
	}

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router := newRouter(database, svc, withConfig(c), withStartupTime(startupTime))

	server := &http.Server{
		Addr:              address,
		Handler:           router,
		ReadTimeout:       config.GetSeconds(c, "READ_TIMEOUT_SECONDS", 30),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      config.GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 30),
		IdleTimeout:       config.GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 120),
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(database database.Database, svc Services, opts ...func(*router)) *chi.Mux {
	router := router{startupTime: time.Now()}
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(RequestIDMiddleware)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(metrics.Middleware)
	chiRouter.Use(ColoredHTTPLoggingMiddleware)

	acceptedOrigins := config.GetList(router.config, "ACCEPTED_ORIGINS")
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(corsMiddleware(acceptedOrigins))

	handlers := initializeHandlers(database, svc, router.startupTime)

	setupPublicRoutes(chiRouter, handlers)

	if backendPassword := config.GetString(router.config, "BACKEND_PASSWORD", ""); backendPassword != "" {
		setupAdminRoutes(chiRouter, handlers, newAuthMiddleware(backendPassword))
	} else {
		log.Warn().Msg("BACKEND_PASSWORD is not set; admin routes are disabled")
	}

	return chiRouter
}

// Run serves until ctx is done or the listener fails, then shuts down within
// shutdownTimeout. A cancelled ctx is a clean exit.
func (s Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	errChannel := make(chan error, 1)
	go s.Start(errChannel)

	select {
	case err := <-errChannel:
		return err
	case <-ctx.Done():
		log.Info().Msgf("Closing server: %v", ctx.Err())
	}

	s.ShutdownGracefully(shutdownTimeout)
	return nil
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
