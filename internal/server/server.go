// Package server wires configuration, sources, the data service, and the HTTP
// surface into a runnable process.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gridironfacts/nfl-data-service/internal/config"
	"github.com/gridironfacts/nfl-data-service/internal/dataservice"
	httpserver "github.com/gridironfacts/nfl-data-service/internal/http"
	"github.com/gridironfacts/nfl-data-service/internal/http/handlers"
	"github.com/gridironfacts/nfl-data-service/internal/http/middleware"
	"github.com/gridironfacts/nfl-data-service/internal/logging"
	"github.com/gridironfacts/nfl-data-service/internal/metrics"
	"github.com/gridironfacts/nfl-data-service/internal/providers"
	"github.com/gridironfacts/nfl-data-service/internal/providers/fixture"
	"github.com/gridironfacts/nfl-data-service/internal/refresher"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	dataService   *dataservice.Service
	httpServer    httpServer
	metricsServer httpServer
	refresher     Refresher
	metricsStop   func(context.Context) error
}

// New constructs a server with default source and refresher wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithSource(cfg, logger, nil, nil)
}

func newServerWithSource(cfg config.Config, logger *slog.Logger, source providers.Source, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if source == nil {
		source = selectSource(cfg, logger)
	}
	source = providers.NewRetryingSource(source, logger, recorder, cfg.Retry.MaxAttempts, cfg.Retry.Backoff)

	store := buildStore(cfg, logger)
	svc := dataservice.New(dataservice.Config{
		UseRealData:           cfg.UseRealData(),
		FallbackToPlaceholder: cfg.Cache.FallbackToPlaceholder,
		CacheDuration:         cfg.Cache.Duration,
		CategoryTTL:           categoryTTLs(cfg.Cache),
	}, source, fixture.New(), store, logger, recorder)

	var ref Refresher
	if cfg.Refresh.Enabled {
		ref = refresher.New(svc, logger, recorder, cfg.Refresh.Interval)
	}

	httpSrv := buildHTTPServer(cfg, svc, logger, recorder, ref)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		dataService:   svc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		refresher:     ref,
		metricsStop:   metricsShutdown,
	}
}

func categoryTTLs(cache config.CacheConfig) map[string]config.Duration {
	ttls := map[string]config.Duration{}
	if cache.GamesTTL > 0 {
		ttls[dataservice.CategoryGames] = cache.GamesTTL
	}
	if cache.StandingsTTL > 0 {
		ttls[dataservice.CategoryStandings] = cache.StandingsTTL
	}
	if cache.LeadersTTL > 0 {
		ttls[dataservice.CategoryLeaders] = cache.LeadersTTL
	}
	if cache.NewsTTL > 0 {
		ttls[dataservice.CategoryNews] = cache.NewsTTL
	}
	if len(ttls) == 0 {
		return nil
	}
	return ttls
}

func buildHTTPServer(cfg config.Config, svc *dataservice.Service, logger *slog.Logger, recorder *metrics.Recorder, ref Refresher) httpServer {
	var statusFn func() refresher.Status
	if ref != nil {
		statusFn = ref.Status
	}

	handler := handlers.NewHandler(svc, logger, statusFn)
	admin := handlers.NewAdminHandler(svc, cfg.AdminToken, logger)
	router := httpserver.NewRouter(handler, admin)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the refresher and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.refresher != nil {
		s.refresher.Start(ctx)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if s.refresher != nil {
		if err := s.refresher.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Error("failed to stop refresher", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
