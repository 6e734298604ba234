package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/compositeml/predictor/composite"
	"github.com/compositeml/predictor/internal/config"
	"github.com/compositeml/predictor/internal/logger"
	"github.com/compositeml/predictor/internal/metrics"
)

const apiVersion = "2.0"

type Server struct {
	engine  *composite.Engine
	router  *chi.Mux
	started time.Time
}

func NewServer(cfg *config.Config) *Server {
	s := &Server{
		engine:  composite.NewEngine(),
		started: time.Now(),
	}
	s.setupRoutes(cfg.RequestTimeout)
	return s
}

func (s *Server) setupRoutes(requestTimeout time.Duration) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestMetrics)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/", s.handleInfo)
	r.Get("/api", s.handleInfo)
	r.Get("/health", s.handleHealth)
	r.Get("/api/health", s.handleHealth)

	r.Post("/api/predict", s.handlePredict)
	r.Post("/api/predict/batch", s.handlePredictBatch)
	r.Get("/api/materials", s.handleMaterials)
	r.Get("/api/options", s.handleOptions)

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestMetrics counts requests per route pattern and status class.
func requestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		class := strconv.Itoa(ww.Status()/100) + "xx"
		metrics.RequestsTotal.WithLabelValues(route, class).Inc()
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	if err := logger.Setup(context.Background(), cfg.LogLevel, cfg.OTELEnabled, cfg.ServiceName); err != nil {
		logger.Warn("log level not recognized", "error", err)
	}

	server := NewServer(cfg)
	logger.Info("prediction engine ready",
		"materials", len(server.engine.Database()),
		"layups", len(server.engine.Options().Layups),
		"processes", len(server.engine.Options().Processes),
	)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", cfg.Addr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	if err := logger.Shutdown(ctx); err != nil {
		logger.Error("logger shutdown error", "error", err)
	}
}
