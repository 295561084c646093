package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aiclub/website-backend/config"
	"github.com/aiclub/website-backend/database"
	"github.com/aiclub/website-backend/errs"
	"github.com/aiclub/website-backend/media"
	"github.com/aiclub/website-backend/serializers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:3000",
}

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database, c map[string]string, resolver media.Resolver) (Server, error) {
	port := config.GetString(c, "PORT", "8000")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(database,
		withConfig(c),
		withStartupTime(startupTime),
		withMediaResolver(resolver),
		withMetrics(NewMetrics()),
	)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  config.GetSeconds(c, "READ_TIMEOUT_SECONDS", 180*time.Second),  // Timeout for reading the entire request
		WriteTimeout: config.GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 180*time.Second), // Timeout for writing the response
		IdleTimeout:  config.GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 180*time.Second),  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
	resolver    media.Resolver
	metrics     *Metrics
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

func withMediaResolver(resolver media.Resolver) func(*router) {
	return func(r *router) {
		r.resolver = resolver
	}
}

func withMetrics(metrics *Metrics) func(*router) {
	return func(r *router) {
		r.metrics = metrics
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	if router.resolver == nil {
		router.resolver = media.NewLocalResolver(config.GetString(router.config, "MEDIA_URL", "/media/"))
	}
	if router.metrics == nil {
		router.metrics = NewMetrics()
	}
	if router.startupTime.IsZero() {
		router.startupTime = time.Now()
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(RequestID)
	chiRouter.Use(middleware.RealIP)
	chiRouter.Use(HTTPLoggingMiddleware(config.GetString(router.config, "APP_ENV", "") == "development"))
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(router.metrics.Middleware)

	acceptedOrigins := config.GetList(router.config, "CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(corsMiddleware(acceptedOrigins))
	chiRouter.Use(middleware.StripSlashes)
	chiRouter.Use(RequestBaseURL)

	responder := NewResponder(log.With().Str("handlerName", "router").Logger())
	chiRouter.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responder.WriteError(w, errs.NewNotFoundError("Not found."))
	})
	chiRouter.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responder.WriteError(w, errs.NewApiErr(http.StatusMethodNotAllowed, fmt.Sprintf("Method %q not allowed.", r.Method)))
	})

	handlers := initializeHandlers(database, serializers.New(router.resolver), router.metrics)

	chiRouter.Get("/healthz", handlers.rootHandler.healthz(router.startupTime))
	chiRouter.Method(http.MethodGet, "/metrics", router.metrics.Handler())
	setupPublicRoutes(chiRouter, handlers)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

// Run serves until ctx is cancelled, then shuts down within timeout.
func (s Server) Run(ctx context.Context, timeout time.Duration) error {
	errChannel := make(chan error, 1)
	go s.Start(errChannel)

	select {
	case err := <-errChannel:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		s.ShutdownGracefully(timeout)
		return nil
	}
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
