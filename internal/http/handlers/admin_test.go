package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gridironfacts/nfl-data-service/internal/testutil"
)

func newTestAdmin(svc DashboardService, token string) *AdminHandler {
	logger, _ := testutil.NewBufferLogger()
	return NewAdminHandler(svc, token, logger)
}

func TestClearCacheWithToken(t *testing.T) {
	svc := &stubService{}
	admin := newTestAdmin(svc, "secret")

	req := httptest.NewRequest(http.MethodPost, "/cache/clear", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := testutil.ServeRequest(http.HandlerFunc(admin.ClearCache), req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if svc.clearCalls != 1 {
		t.Fatalf("expected one clear call, got %d", svc.clearCalls)
	}
}

func TestClearCacheRejectsBadToken(t *testing.T) {
	svc := &stubService{}
	admin := newTestAdmin(svc, "secret")

	req := httptest.NewRequest(http.MethodPost, "/cache/clear", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rr := testutil.ServeRequest(http.HandlerFunc(admin.ClearCache), req)

	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	if svc.clearCalls != 0 {
		t.Fatalf("expected no clear calls, got %d", svc.clearCalls)
	}
}

func TestClearCacheOpenWithoutToken(t *testing.T) {
	svc := &stubService{}
	admin := newTestAdmin(svc, "")

	rr := testutil.Serve(http.HandlerFunc(admin.ClearCache), http.MethodPost, "/cache/clear", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if svc.clearCalls != 1 {
		t.Fatalf("expected one clear call, got %d", svc.clearCalls)
	}
}

func TestClearCacheRejectsGet(t *testing.T) {
	admin := newTestAdmin(&stubService{}, "")
	rr := testutil.Serve(http.HandlerFunc(admin.ClearCache), http.MethodGet, "/cache/clear", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}
