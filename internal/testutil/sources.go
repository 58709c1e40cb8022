package testutil

import (
	"context"

	"github.com/gridironfacts/nfl-data-service/internal/providers"
)

// StubSource returns canned raw payloads and counts calls per category.
type StubSource struct {
	Games     []providers.RawGame
	Standings []providers.RawStanding
	Leaders   []providers.RawLeaderCategory
	News      []providers.RawArticle
	Err       error

	GamesCalls     int
	StandingsCalls int
	LeadersCalls   int
	NewsCalls      int
}

func (s *StubSource) FetchGames(ctx context.Context) ([]providers.RawGame, error) {
	_ = ctx
	s.GamesCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Games, nil
}

func (s *StubSource) FetchStandings(ctx context.Context) ([]providers.RawStanding, error) {
	_ = ctx
	s.StandingsCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Standings, nil
}

func (s *StubSource) FetchLeaders(ctx context.Context) ([]providers.RawLeaderCategory, error) {
	_ = ctx
	s.LeadersCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Leaders, nil
}

func (s *StubSource) FetchNews(ctx context.Context) ([]providers.RawArticle, error) {
	_ = ctx
	s.NewsCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.News, nil
}

// SampleRawGame returns a minimal valid raw game with the provided id.
func SampleRawGame(id string) providers.RawGame {
	return providers.RawGame{
		ID:       id,
		HomeTeam: "KC",
		AwayTeam: "LV",
		Status:   "scheduled",
	}
}

// SampleRawStanding returns a minimal raw standing row for the given team.
func SampleRawStanding(team string, wins, losses int) providers.RawStanding {
	return providers.RawStanding{
		Team:          team,
		Wins:          wins,
		Losses:        losses,
		WinPercentage: float64(wins) / float64(wins+losses),
		Conference:    "AFC",
		Division:      "West",
	}
}

// SampleRawArticle returns a minimal raw article with the provided id.
func SampleRawArticle(id, headline string) providers.RawArticle {
	return providers.RawArticle{
		ID:       id,
		Headline: headline,
		Summary:  "summary",
		Source:   "Test Wire",
	}
}
