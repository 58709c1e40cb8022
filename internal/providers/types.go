package providers

// Raw record shapes form the contract boundary between sources and the
// normalization adapter. Every source, real or fixture, emits these.

// RawGame is a provider-shaped game record.
type RawGame struct {
	ID            string   `json:"id"`
	HomeTeam      string   `json:"homeTeam"`
	AwayTeam      string   `json:"awayTeam"`
	HomeScore     *int     `json:"homeScore,omitempty"`
	AwayScore     *int     `json:"awayScore,omitempty"`
	Status        string   `json:"status"`
	Quarter       string   `json:"quarter,omitempty"`
	TimeRemaining string   `json:"timeRemaining,omitempty"`
	StartTime     string   `json:"startTime"`
	Venue         string   `json:"venue,omitempty"`
	TVChannel     string   `json:"tvChannel,omitempty"`
	KeyEvents     []string `json:"keyEvents,omitempty"`
}

// RawStanding is a provider-shaped standings row.
type RawStanding struct {
	Team          string  `json:"team"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	WinPercentage float64 `json:"winPercentage"`
	GamesBack     float64 `json:"gamesBack"`
	Conference    string  `json:"conference"`
	Division      string  `json:"division"`
}

// RawLeader is one player entry inside a stat category, already ordered by
// the provider.
type RawLeader struct {
	Name   string `json:"name"`
	Team   string `json:"team"`
	Value  string `json:"value"`
	Detail string `json:"detail,omitempty"`
}

// RawLeaderCategory groups provider-ordered leaders under a category name.
type RawLeaderCategory struct {
	Category string      `json:"category"`
	Players  []RawLeader `json:"players"`
}

// RawArticle is a provider-shaped news record.
type RawArticle struct {
	ID         string `json:"id"`
	Headline   string `json:"headline"`
	Summary    string `json:"summary"`
	Source     string `json:"source,omitempty"`
	Timestamp  string `json:"timestamp"`
	ImageURL   string `json:"imageUrl,omitempty"`
	ArticleURL string `json:"articleUrl,omitempty"`
}
