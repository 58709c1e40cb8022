// Package handlers wires HTTP routes to the dashboard data service.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gridironfacts/nfl-data-service/internal/dataservice"
	domaingames "github.com/gridironfacts/nfl-data-service/internal/domain/games"
	domainleaders "github.com/gridironfacts/nfl-data-service/internal/domain/leaders"
	domainnews "github.com/gridironfacts/nfl-data-service/internal/domain/news"
	domainstandings "github.com/gridironfacts/nfl-data-service/internal/domain/standings"
	"github.com/gridironfacts/nfl-data-service/internal/logging"
	"github.com/gridironfacts/nfl-data-service/internal/refresher"
)

// DashboardService is the slice of the data service the handlers need.
type DashboardService interface {
	AllData(ctx context.Context) (dataservice.DashboardData, error)
	Games(ctx context.Context) ([]domaingames.Game, error)
	Standings(ctx context.Context) ([]domainstandings.DivisionStanding, error)
	Leaders(ctx context.Context) ([]domainleaders.StatLeader, error)
	News(ctx context.Context) ([]domainnews.Article, error)
	ClearCache(ctx context.Context)
	CacheStatus(ctx context.Context) dataservice.CacheStatus
}

// Handler wires HTTP routes to the dashboard service.
type Handler struct {
	svc      DashboardService
	logger   *slog.Logger
	statusFn func() refresher.Status
}

// NewHandler constructs a Handler. statusFn may be nil when no background
// refresher runs; readiness then reports ready unconditionally.
func NewHandler(svc DashboardService, logger *slog.Logger, statusFn func() refresher.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Dashboard returns all four categories in a single payload.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	data, err := h.svc.AllData(r.Context())
	if err != nil {
		logging.Warn(logger, "dashboard fetch failed", "err", err)
		writeError(w, r, http.StatusBadGateway, "dashboard data unavailable", logger)
		return
	}
	writeJSON(w, http.StatusOK, data, logger)
}

// Games returns the normalized game list.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	games, err := h.svc.Games(r.Context())
	if err != nil {
		logging.Warn(logger, "games fetch failed", "err", err)
		writeError(w, r, http.StatusBadGateway, "games unavailable", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"games": games}, logger)
}

// Standings returns the grouped division standings.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	standings, err := h.svc.Standings(r.Context())
	if err != nil {
		logging.Warn(logger, "standings fetch failed", "err", err)
		writeError(w, r, http.StatusBadGateway, "standings unavailable", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"standings": standings}, logger)
}

// Leaders returns the stat leader categories.
func (h *Handler) Leaders(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	leaders, err := h.svc.Leaders(r.Context())
	if err != nil {
		logging.Warn(logger, "leaders fetch failed", "err", err)
		writeError(w, r, http.StatusBadGateway, "leaders unavailable", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"leaders": leaders}, logger)
}

// News returns the normalized news articles.
func (h *Handler) News(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	articles, err := h.svc.News(r.Context())
	if err != nil {
		logging.Warn(logger, "news fetch failed", "err", err)
		writeError(w, r, http.StatusBadGateway, "news unavailable", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"articles": articles}, logger)
}

// CacheStatus reports the cached categories and entry count.
func (h *Handler) CacheStatus(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.CacheStatus(r.Context()), h.logger)
}
