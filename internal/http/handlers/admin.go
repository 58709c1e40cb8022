package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gridironfacts/nfl-data-service/internal/http/requestutil"
	"github.com/gridironfacts/nfl-data-service/internal/logging"
)

// AdminHandler exposes the cache-clear endpoint.
type AdminHandler struct {
	svc    DashboardService
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token leaves the
// endpoint open, which suits local development.
func NewAdminHandler(svc DashboardService, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		token:  token,
		logger: logger,
	}
}

// ClearCache removes all cached categories so the next reads hit upstream.
// Guarded by ADMIN_TOKEN when configured; returns 401 on a bad token.
func (h *AdminHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	h.svc.ClearCache(r.Context())
	logging.Info(logger, "cache cleared via admin endpoint")
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return true
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
