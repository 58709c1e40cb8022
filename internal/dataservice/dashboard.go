package dataservice

import (
	"context"
	"errors"
	"sync"

	"github.com/gridironfacts/nfl-data-service/internal/adapter"
	domaingames "github.com/gridironfacts/nfl-data-service/internal/domain/games"
	domainleaders "github.com/gridironfacts/nfl-data-service/internal/domain/leaders"
	domainnews "github.com/gridironfacts/nfl-data-service/internal/domain/news"
	domainstandings "github.com/gridironfacts/nfl-data-service/internal/domain/standings"
	"github.com/gridironfacts/nfl-data-service/internal/logging"
)

// DashboardData is the aggregate payload consumed by the presentation layer.
type DashboardData struct {
	LiveGames       []domaingames.Game                 `json:"liveGames"`
	LeagueStandings []domainstandings.DivisionStanding `json:"leagueStandings"`
	LeagueLeaders   []domainleaders.StatLeader         `json:"leagueLeaders"`
	NewsArticles    []domainnews.Article               `json:"newsArticles"`
}

// AllData fetches all four categories concurrently with per-category outcome
// isolation; the result may mix real and placeholder data depending on each
// branch's own outcome.
func (s *Service) AllData(ctx context.Context) (result DashboardData, err error) {
	cfg := s.Config()

	defer func() {
		if rec := recover(); rec == nil {
			return
		} else if cfg.FallbackToPlaceholder {
			logging.Warn(s.logger, "dashboard aggregation recovered, serving placeholder data")
			result, err = s.placeholderAll(ctx)
		} else {
			result, err = DashboardData{}, &AggregateError{Cause: rec}
		}
	}()

	if !cfg.UseRealData {
		logging.Info(s.logger, "using placeholder data (real data disabled)")
		return s.placeholderAll(ctx)
	}

	var (
		wg        sync.WaitGroup
		errs      [4]error
		games     []domaingames.Game
		standings []domainstandings.DivisionStanding
		leaders   []domainleaders.StatLeader
		articles  []domainnews.Article
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		games, errs[0] = s.Games(ctx)
	}()
	go func() {
		defer wg.Done()
		standings, errs[1] = s.Standings(ctx)
	}()
	go func() {
		defer wg.Done()
		leaders, errs[2] = s.Leaders(ctx)
	}()
	go func() {
		defer wg.Done()
		articles, errs[3] = s.News(ctx)
	}()
	wg.Wait()

	// With fallback enabled, branch failures were already absorbed; any
	// surviving error means fallback is disabled and must propagate.
	if joined := errors.Join(errs[:]...); joined != nil {
		return DashboardData{}, joined
	}

	return DashboardData{
		LiveGames:       games,
		LeagueStandings: standings,
		LeagueLeaders:   leaders,
		NewsArticles:    articles,
	}, nil
}

// placeholderAll computes the full dashboard from the fallback source.
func (s *Service) placeholderAll(ctx context.Context) (DashboardData, error) {
	rawGames, err := s.fallback.FetchGames(ctx)
	if err != nil {
		return DashboardData{}, err
	}
	games, err := adapter.TransformGames(rawGames)
	if err != nil {
		return DashboardData{}, err
	}

	rawStandings, err := s.fallback.FetchStandings(ctx)
	if err != nil {
		return DashboardData{}, err
	}
	standings, err := adapter.TransformStandings(rawStandings)
	if err != nil {
		return DashboardData{}, err
	}

	rawLeaders, err := s.fallback.FetchLeaders(ctx)
	if err != nil {
		return DashboardData{}, err
	}
	leaders, err := adapter.TransformLeaders(rawLeaders)
	if err != nil {
		return DashboardData{}, err
	}

	rawNews, err := s.fallback.FetchNews(ctx)
	if err != nil {
		return DashboardData{}, err
	}
	articles, err := adapter.TransformNews(rawNews)
	if err != nil {
		return DashboardData{}, err
	}

	return DashboardData{
		LiveGames:       games,
		LeagueStandings: standings,
		LeagueLeaders:   leaders,
		NewsArticles:    articles,
	}, nil
}
