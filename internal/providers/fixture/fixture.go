package fixture

import (
	"context"
	"time"

	"github.com/gridironfacts/nfl-data-service/internal/providers"
)

// Provider returns a static set of raw records useful for local development
// and as the fallback branch when the real source is disabled or failing.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

func intPtr(v int) *int { return &v }

// FetchGames returns a deterministic set of example games covering the live,
// scheduled, final, and halftime shapes.
func (p *Provider) FetchGames(ctx context.Context) ([]providers.RawGame, error) {
	_ = ctx
	day := p.now().UTC().Truncate(24 * time.Hour)

	return []providers.RawGame{
		{
			ID:            "demo-401547456",
			HomeTeam:      "KC",
			AwayTeam:      "LV",
			HomeScore:     intPtr(28),
			AwayScore:     intPtr(24),
			Status:        "live",
			Quarter:       "4th",
			TimeRemaining: "2:15",
			StartTime:     day.Add(20 * time.Hour).Format(time.RFC3339),
			Venue:         "Arrowhead Stadium",
			TVChannel:     "CBS",
			KeyEvents:     []string{"Mahomes 3 TD passes", "Jacobs 2 rushing TDs", "Kelce 120 receiving yards"},
		},
		{
			ID:            "demo-401547457",
			HomeTeam:      "PHI",
			AwayTeam:      "DAL",
			HomeScore:     intPtr(31),
			AwayScore:     intPtr(31),
			Status:        "live",
			Quarter:       "4th",
			TimeRemaining: "0:45",
			StartTime:     day.Add(17 * time.Hour).Format(time.RFC3339),
			Venue:         "Lincoln Financial Field",
			TVChannel:     "FOX",
			KeyEvents:     []string{"Hurts 2 TD passes", "Pollard 1 rushing TD", "Eagles defense 3 sacks"},
		},
		{
			ID:        "demo-401547458",
			HomeTeam:  "BUF",
			AwayTeam:  "MIA",
			Status:    "scheduled",
			StartTime: day.Add(23 * time.Hour).Format(time.RFC3339),
			Venue:     "Highmark Stadium",
			TVChannel: "NBC",
		},
		{
			ID:        "demo-401547459",
			HomeTeam:  "SF",
			AwayTeam:  "LAR",
			HomeScore: intPtr(35),
			AwayScore: intPtr(14),
			Status:    "final",
			StartTime: day.Add(-4 * time.Hour).Format(time.RFC3339),
			Venue:     "Levi's Stadium",
			KeyEvents: []string{"Purdy 4 TD passes", "McCaffrey 2 rushing TDs", "49ers defense dominant"},
		},
		{
			ID:        "demo-401547460",
			HomeTeam:  "BAL",
			AwayTeam:  "CIN",
			HomeScore: intPtr(24),
			AwayScore: intPtr(21),
			Status:    "live",
			Quarter:   "Halftime",
			StartTime: day.Add(17 * time.Hour).Format(time.RFC3339),
			Venue:     "M&T Bank Stadium",
			TVChannel: "CBS",
			KeyEvents: []string{"Lamar Jackson 1 TD pass", "Burrow 1 TD pass"},
		},
		{
			ID:            "demo-401547461",
			HomeTeam:      "GB",
			AwayTeam:      "MIN",
			HomeScore:     intPtr(17),
			AwayScore:     intPtr(14),
			Status:        "live",
			Quarter:       "3rd",
			TimeRemaining: "8:30",
			StartTime:     day.Add(17 * time.Hour).Format(time.RFC3339),
			Venue:         "Lambeau Field",
			TVChannel:     "FOX",
			KeyEvents:     []string{"Love 1 TD pass", "Cousins 1 TD pass"},
		},
	}, nil
}

// FetchStandings returns a deterministic set of standings rows spanning four
// divisions in both conferences.
func (p *Provider) FetchStandings(ctx context.Context) ([]providers.RawStanding, error) {
	_ = ctx
	return []providers.RawStanding{
		// AFC East
		{Team: "MIA", Wins: 6, Losses: 1, Ties: 0, WinPercentage: 0.857, GamesBack: 0, Conference: "AFC", Division: "East"},
		{Team: "BUF", Wins: 5, Losses: 2, Ties: 0, WinPercentage: 0.714, GamesBack: 1, Conference: "AFC", Division: "East"},
		{Team: "NE", Wins: 2, Losses: 5, Ties: 0, WinPercentage: 0.286, GamesBack: 4, Conference: "AFC", Division: "East"},
		{Team: "NYJ", Wins: 1, Losses: 6, Ties: 0, WinPercentage: 0.143, GamesBack: 5, Conference: "AFC", Division: "East"},

		// AFC West
		{Team: "KC", Wins: 6, Losses: 1, Ties: 0, WinPercentage: 0.857, GamesBack: 0, Conference: "AFC", Division: "West"},
		{Team: "LV", Wins: 3, Losses: 4, Ties: 0, WinPercentage: 0.429, GamesBack: 3, Conference: "AFC", Division: "West"},
		{Team: "LAC", Wins: 2, Losses: 5, Ties: 0, WinPercentage: 0.286, GamesBack: 4, Conference: "AFC", Division: "West"},
		{Team: "DEN", Wins: 1, Losses: 6, Ties: 0, WinPercentage: 0.143, GamesBack: 5, Conference: "AFC", Division: "West"},

		// NFC East
		{Team: "PHI", Wins: 6, Losses: 1, Ties: 0, WinPercentage: 0.857, GamesBack: 0, Conference: "NFC", Division: "East"},
		{Team: "DAL", Wins: 4, Losses: 3, Ties: 0, WinPercentage: 0.571, GamesBack: 2, Conference: "NFC", Division: "East"},
		{Team: "NYG", Wins: 2, Losses: 5, Ties: 0, WinPercentage: 0.286, GamesBack: 4, Conference: "NFC", Division: "East"},
		{Team: "WAS", Wins: 1, Losses: 6, Ties: 0, WinPercentage: 0.143, GamesBack: 5, Conference: "NFC", Division: "East"},

		// NFC West
		{Team: "SF", Wins: 5, Losses: 2, Ties: 0, WinPercentage: 0.714, GamesBack: 0, Conference: "NFC", Division: "West"},
		{Team: "SEA", Wins: 4, Losses: 3, Ties: 0, WinPercentage: 0.571, GamesBack: 1, Conference: "NFC", Division: "West"},
		{Team: "LAR", Wins: 3, Losses: 4, Ties: 0, WinPercentage: 0.429, GamesBack: 2, Conference: "NFC", Division: "West"},
		{Team: "ARI", Wins: 1, Losses: 6, Ties: 0, WinPercentage: 0.143, GamesBack: 4, Conference: "NFC", Division: "West"},
	}, nil
}

// FetchLeaders returns deterministic stat-leader categories in their
// presentation order.
func (p *Provider) FetchLeaders(ctx context.Context) ([]providers.RawLeaderCategory, error) {
	_ = ctx
	return []providers.RawLeaderCategory{
		{
			Category: "Passing Yards",
			Players: []providers.RawLeader{
				{Name: "Patrick Mahomes", Team: "KC", Value: "2,105 YDS", Detail: "8 TDs, 3 INTs"},
				{Name: "Josh Allen", Team: "BUF", Value: "1,987 YDS", Detail: "7 TDs, 4 INTs"},
				{Name: "Jalen Hurts", Team: "PHI", Value: "1,950 YDS", Detail: "6 TDs, 2 INTs"},
			},
		},
		{
			Category: "Rushing Yards",
			Players: []providers.RawLeader{
				{Name: "Derrick Henry", Team: "TEN", Value: "850 YDS", Detail: "8 TDs, 5.2 YPC"},
				{Name: "Christian McCaffrey", Team: "SF", Value: "790 YDS", Detail: "7 TDs, 4.8 YPC"},
				{Name: "Saquon Barkley", Team: "NYG", Value: "720 YDS", Detail: "5 TDs, 4.5 YPC"},
			},
		},
		{
			Category: "Receiving TDs",
			Players: []providers.RawLeader{
				{Name: "Tyreek Hill", Team: "MIA", Value: "8 TDs", Detail: "45 rec, 890 YDS"},
				{Name: "Stefon Diggs", Team: "BUF", Value: "7 TDs", Detail: "42 rec, 720 YDS"},
				{Name: "A.J. Brown", Team: "PHI", Value: "6 TDs", Detail: "38 rec, 680 YDS"},
			},
		},
	}, nil
}

// FetchNews returns a deterministic set of news records.
func (p *Provider) FetchNews(ctx context.Context) ([]providers.RawArticle, error) {
	_ = ctx
	return []providers.RawArticle{
		{
			ID:         "demo-news-1",
			Headline:   "QB Stroud leads Texans to stunning comeback victory",
			Summary:    "Rookie QB C.J. Stroud threw for 350 yards and 3 touchdowns, including the game-winner in the final minute to secure a dramatic 28-24 victory over the Colts.",
			Source:     "NFL Official",
			Timestamp:  "2 hours ago",
			ArticleURL: "#",
		},
		{
			ID:         "demo-news-2",
			Headline:   "Injury Report: Key RB questionable for Sunday's game",
			Summary:    "Star running back Austin Ekeler is listed as questionable with an ankle injury sustained in practice. His status for the upcoming game against the Broncos remains uncertain.",
			Source:     "ESPN NFL",
			Timestamp:  "5 hours ago",
			ArticleURL: "#",
		},
		{
			ID:         "demo-news-3",
			Headline:   "Trade Deadline Looms: Which teams will make a move?",
			Summary:    "With the NFL trade deadline approaching, several contenders are rumored to be active in the market for upgrades. The Chiefs, Eagles, and 49ers are among teams looking to bolster their rosters.",
			Source:     "The Athletic",
			Timestamp:  "1 day ago",
			ArticleURL: "#",
		},
		{
			ID:         "demo-news-4",
			Headline:   "Mahomes continues MVP campaign with another stellar performance",
			Summary:    "Patrick Mahomes threw for 320 yards and 3 touchdowns as the Chiefs improved to 6-1. The reigning MVP is making a strong case for his third MVP award.",
			Source:     "NFL Network",
			Timestamp:  "3 hours ago",
			ArticleURL: "#",
		},
		{
			ID:         "demo-news-5",
			Headline:   "Defensive Player of the Year race heats up",
			Summary:    "Myles Garrett, Micah Parsons, and Nick Bosa are leading the race for Defensive Player of the Year with dominant performances through the first half of the season.",
			Source:     "Pro Football Focus",
			Timestamp:  "6 hours ago",
			ArticleURL: "#",
		},
		{
			ID:         "demo-news-6",
			Headline:   "Rookie class making immediate impact across the league",
			Summary:    "This year's rookie class is proving to be one of the most talented in recent memory, with several first-year players already making significant contributions to their teams.",
			Source:     "NFL.com",
			Timestamp:  "1 day ago",
			ArticleURL: "#",
		},
	}, nil
}
