package espn

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gridironfacts/nfl-data-service/internal/providers"
	"github.com/gridironfacts/nfl-data-service/internal/timeutil"
)

func mapEvent(event eventResponse) providers.RawGame {
	game := providers.RawGame{
		ID:        event.ID,
		Status:    mapEventState(event.Status.Type.State),
		StartTime: event.Date,
	}

	if len(event.Competitions) == 0 {
		return game
	}
	comp := event.Competitions[0]

	for _, competitor := range comp.Competitors {
		switch competitor.HomeAway {
		case "home":
			game.HomeTeam = competitor.Team.Abbreviation
			game.HomeScore = parseScore(competitor.Score)
		case "away":
			game.AwayTeam = competitor.Team.Abbreviation
			game.AwayScore = parseScore(competitor.Score)
		}
	}

	game.Venue = comp.Venue.FullName
	if len(comp.Broadcasts) > 0 {
		game.TVChannel = comp.Broadcasts[0].Media.ShortName
	}
	for _, note := range comp.Notes {
		if note.Headline != "" {
			game.KeyEvents = append(game.KeyEvents, note.Headline)
		}
	}

	if game.Status == "live" {
		game.Quarter = event.Status.Type.Description
		game.TimeRemaining = event.Status.Type.ShortDetail
	}

	return game
}

func mapEventState(state string) string {
	switch state {
	case "pre":
		return "scheduled"
	case "in":
		return "live"
	case "post":
		return "final"
	case "postponed":
		return "postponed"
	case "cancelled":
		return "cancelled"
	default:
		return "scheduled"
	}
}

func parseScore(raw string) *int {
	if raw == "" {
		return nil
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &score
}

// splitGroupName turns a group label like "AFC East" into its conference and
// division parts. Labels without a recognizable split are used for both.
func splitGroupName(name string) (conference, division string) {
	parts := strings.Fields(name)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return name, name
}

func mapStandingRow(row standingRow, conference, division string) providers.RawStanding {
	return providers.RawStanding{
		Team:          row.Team.Abbreviation,
		Wins:          int(statValue(row.Stats, "wins")),
		Losses:        int(statValue(row.Stats, "losses")),
		Ties:          int(statValue(row.Stats, "ties")),
		WinPercentage: statValue(row.Stats, "winPercent"),
		GamesBack:     statValue(row.Stats, "gamesBack"),
		Conference:    conference,
		Division:      division,
	}
}

func mapLeaderCategory(category string, payload statisticsResponse) providers.RawLeaderCategory {
	rows := payload.Leaders
	if len(rows) > leadersPerCategory {
		rows = rows[:leadersPerCategory]
	}

	players := make([]providers.RawLeader, 0, len(rows))
	for _, row := range rows {
		players = append(players, providers.RawLeader{
			Name:   row.Athlete.DisplayName,
			Team:   row.Athlete.Team.Abbreviation,
			Value:  formatStatValue(category, row.Stats),
			Detail: formatStatDetail(category, row.Stats),
		})
	}

	return providers.RawLeaderCategory{
		Category: formatCategoryName(category),
		Players:  players,
	}
}

func formatCategoryName(category string) string {
	switch category {
	case "passing":
		return "Passing Yards"
	case "rushing":
		return "Rushing Yards"
	case "receiving":
		return "Receiving Yards"
	default:
		return category
	}
}

func formatStatValue(category string, stats []statEntry) string {
	switch category {
	case "passing":
		return fmt.Sprintf("%d YDS", int(statValue(stats, "passingYards")))
	case "rushing":
		return fmt.Sprintf("%d YDS", int(statValue(stats, "rushingYards")))
	case "receiving":
		return fmt.Sprintf("%d YDS", int(statValue(stats, "receivingYards")))
	default:
		return "0"
	}
}

func formatStatDetail(category string, stats []statEntry) string {
	switch category {
	case "passing":
		return fmt.Sprintf("%d TDs, %d INTs",
			int(statValue(stats, "passingTouchdowns")), int(statValue(stats, "interceptions")))
	case "rushing":
		return fmt.Sprintf("%d TDs, %.1f YPC",
			int(statValue(stats, "rushingTouchdowns")), statValue(stats, "yardsPerCarry"))
	case "receiving":
		return fmt.Sprintf("%d rec, %d TDs",
			int(statValue(stats, "receptions")), int(statValue(stats, "receivingTouchdowns")))
	default:
		return ""
	}
}

func statValue(stats []statEntry, name string) float64 {
	for _, s := range stats {
		if s.Name == name {
			return s.Value
		}
	}
	return 0
}

func mapArticle(article articleRow, now time.Time) providers.RawArticle {
	timestamp := article.PublishedAt
	if published, err := time.Parse(time.RFC3339, article.PublishedAt); err == nil {
		timestamp = timeutil.FormatRelative(published, now)
	}

	source := article.Source.Name
	if source == "" {
		source = "Unknown"
	}

	return providers.RawArticle{
		ID:         article.URL,
		Headline:   article.Title,
		Summary:    article.Description,
		Source:     source,
		Timestamp:  timestamp,
		ImageURL:   article.URLToImage,
		ArticleURL: article.URL,
	}
}
