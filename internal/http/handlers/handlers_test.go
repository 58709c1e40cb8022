package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gridironfacts/nfl-data-service/internal/dataservice"
	domaingames "github.com/gridironfacts/nfl-data-service/internal/domain/games"
	domainleaders "github.com/gridironfacts/nfl-data-service/internal/domain/leaders"
	domainnews "github.com/gridironfacts/nfl-data-service/internal/domain/news"
	domainstandings "github.com/gridironfacts/nfl-data-service/internal/domain/standings"
	"github.com/gridironfacts/nfl-data-service/internal/refresher"
	"github.com/gridironfacts/nfl-data-service/internal/testutil"
)

type stubService struct {
	data       dataservice.DashboardData
	err        error
	clearCalls int
	status     dataservice.CacheStatus
}

func (s *stubService) AllData(ctx context.Context) (dataservice.DashboardData, error) {
	_ = ctx
	return s.data, s.err
}

func (s *stubService) Games(ctx context.Context) ([]domaingames.Game, error) {
	_ = ctx
	return s.data.LiveGames, s.err
}

func (s *stubService) Standings(ctx context.Context) ([]domainstandings.DivisionStanding, error) {
	_ = ctx
	return s.data.LeagueStandings, s.err
}

func (s *stubService) Leaders(ctx context.Context) ([]domainleaders.StatLeader, error) {
	_ = ctx
	return s.data.LeagueLeaders, s.err
}

func (s *stubService) News(ctx context.Context) ([]domainnews.Article, error) {
	_ = ctx
	return s.data.NewsArticles, s.err
}

func (s *stubService) ClearCache(ctx context.Context) {
	_ = ctx
	s.clearCalls++
}

func (s *stubService) CacheStatus(ctx context.Context) dataservice.CacheStatus {
	_ = ctx
	return s.status
}

func newTestHandler(svc DashboardService, statusFn func() refresher.Status) *Handler {
	logger, _ := testutil.NewBufferLogger()
	return NewHandler(svc, logger, statusFn)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&stubService{}, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["status"] != "ok" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestHealthRejectsPost(t *testing.T) {
	h := newTestHandler(&stubService{}, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestReadyWithoutRefresher(t *testing.T) {
	h := newTestHandler(&stubService{}, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestReadyReflectsRefresherStatus(t *testing.T) {
	ready := refresher.Status{LastSuccess: testutil.MustParseRFC3339("2026-08-30T12:00:00Z")}
	h := newTestHandler(&stubService{}, func() refresher.Status { return ready })
	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	failing := refresher.Status{
		LastSuccess:         ready.LastSuccess,
		ConsecutiveFailures: 5,
		LastError:           "upstream down",
	}
	h = newTestHandler(&stubService{}, func() refresher.Status { return failing })
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "upstream down" {
		t.Fatalf("unexpected error message %v", body)
	}
}

func TestDashboardReturnsAggregate(t *testing.T) {
	svc := &stubService{data: dataservice.DashboardData{
		LiveGames: []domaingames.Game{{ID: "g1"}},
	}}
	h := newTestHandler(svc, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Dashboard), http.MethodGet, "/dashboard", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body dataservice.DashboardData
	testutil.DecodeJSON(t, rr, &body)
	if len(body.LiveGames) != 1 || body.LiveGames[0].ID != "g1" {
		t.Fatalf("unexpected payload %+v", body)
	}
}

func TestDashboardErrorBecomesBadGateway(t *testing.T) {
	svc := &stubService{err: errors.New("everything is down")}
	h := newTestHandler(svc, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Dashboard), http.MethodGet, "/dashboard", nil)
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}

func TestCategoryEndpoints(t *testing.T) {
	svc := &stubService{data: dataservice.DashboardData{
		LiveGames:       []domaingames.Game{{ID: "g1"}},
		LeagueStandings: []domainstandings.DivisionStanding{{Conference: "AFC"}},
		LeagueLeaders:   []domainleaders.StatLeader{{Category: "Passing Yards"}},
		NewsArticles:    []domainnews.Article{{ID: "a1", Headline: "h"}},
	}}
	h := newTestHandler(svc, nil)

	cases := []struct {
		path    string
		fn      http.HandlerFunc
		wantKey string
	}{
		{"/games", h.Games, "games"},
		{"/standings", h.Standings, "standings"},
		{"/leaders", h.Leaders, "leaders"},
		{"/news", h.News, "articles"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rr := testutil.Serve(tc.fn, http.MethodGet, tc.path, nil)
			testutil.AssertStatus(t, rr, http.StatusOK)

			var body map[string]any
			testutil.DecodeJSON(t, rr, &body)
			if _, ok := body[tc.wantKey]; !ok {
				t.Fatalf("expected key %q in %v", tc.wantKey, body)
			}
		})
	}
}

func TestCategoryEndpointErrorsBecomeBadGateway(t *testing.T) {
	svc := &stubService{err: errors.New("boom")}
	h := newTestHandler(svc, nil)

	for _, fn := range []http.HandlerFunc{h.Games, h.Standings, h.Leaders, h.News} {
		rr := testutil.Serve(fn, http.MethodGet, "/x", nil)
		testutil.AssertStatus(t, rr, http.StatusBadGateway)
	}
}

func TestCacheStatusEndpoint(t *testing.T) {
	svc := &stubService{status: dataservice.CacheStatus{Size: 2, Keys: []string{"games", "news"}}}
	h := newTestHandler(svc, nil)

	rr := testutil.Serve(http.HandlerFunc(h.CacheStatus), http.MethodGet, "/cache/status", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body dataservice.CacheStatus
	testutil.DecodeJSON(t, rr, &body)
	if body.Size != 2 || len(body.Keys) != 2 {
		t.Fatalf("unexpected status %+v", body)
	}
}
