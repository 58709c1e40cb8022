// Package http assembles the route table for the public API.
package http

import (
	nethttp "net/http"

	"github.com/gridironfacts/nfl-data-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/dashboard", handler.Dashboard)
	mux.HandleFunc("/games", handler.Games)
	mux.HandleFunc("/standings", handler.Standings)
	mux.HandleFunc("/leaders", handler.Leaders)
	mux.HandleFunc("/news", handler.News)
	mux.HandleFunc("/cache/status", handler.CacheStatus)
	if admin != nil {
		mux.HandleFunc("/cache/clear", admin.ClearCache)
	}
	return mux
}
