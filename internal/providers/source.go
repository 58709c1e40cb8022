package providers

import "context"

// GamesSource fetches raw game records.
type GamesSource interface {
	FetchGames(ctx context.Context) ([]RawGame, error)
}

// StandingsSource fetches raw standings rows.
type StandingsSource interface {
	FetchStandings(ctx context.Context) ([]RawStanding, error)
}

// LeadersSource fetches raw stat-leader categories.
type LeadersSource interface {
	FetchLeaders(ctx context.Context) ([]RawLeaderCategory, error)
}

// NewsSource fetches raw news records.
type NewsSource interface {
	FetchNews(ctx context.Context) ([]RawArticle, error)
}

// Source combines all raw-data capabilities. The real API client and the
// fixture provider both implement it; callers never decide per fetch which
// one they are talking to.
type Source interface {
	GamesSource
	StandingsSource
	LeadersSource
	NewsSource
}
