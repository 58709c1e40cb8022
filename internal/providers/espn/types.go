package espn

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Status       statusResponse        `json:"status"`
	Competitions []competitionResponse `json:"competitions"`
}

type statusResponse struct {
	Type statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	State       string `json:"state"`
	Description string `json:"description"`
	ShortDetail string `json:"shortDetail"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
	Venue       venueResponse        `json:"venue"`
	Broadcasts  []broadcastResponse  `json:"broadcasts"`
	Notes       []noteResponse       `json:"notes"`
}

type competitorResponse struct {
	HomeAway string           `json:"homeAway"`
	Score    string           `json:"score"`
	Team     teamAbbrResponse `json:"team"`
}

type teamAbbrResponse struct {
	Abbreviation string `json:"abbreviation"`
}

type venueResponse struct {
	FullName string `json:"fullName"`
}

type broadcastResponse struct {
	Media mediaResponse `json:"media"`
}

type mediaResponse struct {
	ShortName string `json:"shortName"`
}

type noteResponse struct {
	Headline string `json:"headline"`
}

type standingsResponse struct {
	Groups []groupResponse `json:"groups"`
}

type groupResponse struct {
	Name      string        `json:"name"`
	Standings []standingRow `json:"standings"`
}

type standingRow struct {
	Team  teamAbbrResponse `json:"team"`
	Stats []statEntry      `json:"stats"`
}

type statEntry struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue"`
}

type statisticsResponse struct {
	Leaders []leaderRow `json:"leaders"`
}

type leaderRow struct {
	Athlete athleteResponse `json:"athlete"`
	Stats   []statEntry     `json:"stats"`
}

type athleteResponse struct {
	DisplayName string           `json:"displayName"`
	Team        teamAbbrResponse `json:"team"`
}

type newsResponse struct {
	Articles []articleRow `json:"articles"`
}

type articleRow struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	URL         string         `json:"url"`
	URLToImage  string         `json:"urlToImage"`
	PublishedAt string         `json:"publishedAt"`
	Source      articleSource  `json:"source"`
}

type articleSource struct {
	Name string `json:"name"`
}
