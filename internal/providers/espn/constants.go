package espn

import "time"

const (
	sourceName = "espn"

	defaultBaseURL = "https://site.api.espn.com/apis"
	defaultTimeout = 10 * time.Second

	scoreboardPath = "/sports/football/nfl/scoreboard"
	standingsPath  = "/sports/football/nfl/standings"
	statisticsPath = "/sports/football/nfl/statistics"
	newsSearchPath = "/v2/everything?q=NFL&language=en&sortBy=publishedAt&pageSize=10"

	leadersPerCategory = 5
)

var statCategories = []string{"passing", "rushing", "receiving"}
