// Package adapter converts raw source records into the internal view-model
// schema. Transforms are pure and deterministic: no I/O, no caching, no
// network awareness.
package adapter

import (
	"sort"
	"strings"
	"time"

	domaingames "github.com/gridironfacts/nfl-data-service/internal/domain/games"
	domainleaders "github.com/gridironfacts/nfl-data-service/internal/domain/leaders"
	domainnews "github.com/gridironfacts/nfl-data-service/internal/domain/news"
	domainstandings "github.com/gridironfacts/nfl-data-service/internal/domain/standings"
	"github.com/gridironfacts/nfl-data-service/internal/providers"
	"github.com/gridironfacts/nfl-data-service/internal/timeutil"
)

// displayLocation anchors kickoff and date labels; NFL schedules are
// published in Eastern time.
var displayLocation = loadLocation("America/New_York")

func loadLocation(name string) *time.Location {
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.UTC
}

// TransformGames maps raw game records to the internal schema. Scores are
// attached only to games whose status carries them.
func TransformGames(raw []providers.RawGame) ([]domaingames.Game, error) {
	result := make([]domaingames.Game, 0, len(raw))
	for i, rg := range raw {
		switch {
		case rg.ID == "":
			return nil, &TransformError{Op: "transform games", Index: i, Reason: "missing game id"}
		case rg.HomeTeam == "":
			return nil, &TransformError{Op: "transform games", Index: i, Reason: "missing home team code"}
		case rg.AwayTeam == "":
			return nil, &TransformError{Op: "transform games", Index: i, Reason: "missing away team code"}
		}

		status := mapGameStatus(rg.Status)

		var homeScore, awayScore *int
		if status.HasScore() {
			homeScore = rg.HomeScore
			awayScore = rg.AwayScore
		}

		keyEvents := rg.KeyEvents
		if keyEvents == nil {
			keyEvents = []string{}
		}

		result = append(result, domaingames.Game{
			ID:            rg.ID,
			HomeTeam:      buildTeam(rg.HomeTeam, homeScore),
			AwayTeam:      buildTeam(rg.AwayTeam, awayScore),
			Status:        status,
			Time:          formatGameTime(rg),
			Date:          formatGameDate(rg.StartTime),
			Venue:         rg.Venue,
			TVChannel:     rg.TVChannel,
			Quarter:       rg.Quarter,
			TimeRemaining: rg.TimeRemaining,
			KeyEvents:     keyEvents,
		})
	}
	return result, nil
}

// TransformStandings groups raw rows by (conference, division) in first-seen
// order, then re-sorts each group by wins desc, losses asc, name asc and
// reassigns dense 1-based ranks. The re-ranking overrides any order implied
// by the input.
func TransformStandings(raw []providers.RawStanding) ([]domainstandings.DivisionStanding, error) {
	groups := make(map[string]*domainstandings.DivisionStanding)
	order := make([]string, 0)

	for i, rs := range raw {
		if rs.Team == "" {
			return nil, &TransformError{Op: "transform standings", Index: i, Reason: "missing team code"}
		}

		key := rs.Conference + "-" + rs.Division
		group, ok := groups[key]
		if !ok {
			group = &domainstandings.DivisionStanding{
				Conference:   rs.Conference,
				DivisionName: rs.Division,
			}
			groups[key] = group
			order = append(order, key)
		}

		group.Teams = append(group.Teams, domainstandings.TeamStanding{
			Rank:          len(group.Teams) + 1,
			Team:          buildTeam(rs.Team, nil),
			Wins:          rs.Wins,
			Losses:        rs.Losses,
			Ties:          rs.Ties,
			WinPercentage: rs.WinPercentage,
			GamesBack:     rs.GamesBack,
			Conference:    rs.Conference,
		})
	}

	result := make([]domainstandings.DivisionStanding, 0, len(order))
	for _, key := range order {
		group := groups[key]
		sort.Slice(group.Teams, func(a, b int) bool {
			ta, tb := group.Teams[a], group.Teams[b]
			if ta.Wins != tb.Wins {
				return ta.Wins > tb.Wins
			}
			if ta.Losses != tb.Losses {
				return ta.Losses < tb.Losses
			}
			return ta.Team.Name < tb.Team.Name
		})
		for i := range group.Teams {
			group.Teams[i].Rank = i + 1
		}
		result = append(result, *group)
	}
	return result, nil
}

// TransformLeaders maps raw categories 1:1. Ranks follow input order; the
// source's own ordering is trusted and never re-sorted.
func TransformLeaders(raw []providers.RawLeaderCategory) ([]domainleaders.StatLeader, error) {
	result := make([]domainleaders.StatLeader, 0, len(raw))
	for i, rc := range raw {
		if rc.Category == "" {
			return nil, &TransformError{Op: "transform leaders", Index: i, Reason: "missing category name"}
		}

		players := make([]domainleaders.LeaderEntry, 0, len(rc.Players))
		for j, rp := range rc.Players {
			players = append(players, domainleaders.LeaderEntry{
				Rank:        j + 1,
				PlayerName:  rp.Name,
				Team:        buildTeam(rp.Team, nil),
				StatValue:   rp.Value,
				StatDetail:  rp.Detail,
				PlayerImage: playerImageURL(rp.Name),
			})
		}

		result = append(result, domainleaders.StatLeader{
			Category: rc.Category,
			Players:  players,
		})
	}
	return result, nil
}

// TransformNews maps raw articles 1:1 in input order and derives a
// classification hint from the headline.
func TransformNews(raw []providers.RawArticle) ([]domainnews.Article, error) {
	result := make([]domainnews.Article, 0, len(raw))
	for i, ra := range raw {
		switch {
		case ra.ID == "":
			return nil, &TransformError{Op: "transform news", Index: i, Reason: "missing article id"}
		case ra.Headline == "":
			return nil, &TransformError{Op: "transform news", Index: i, Reason: "missing headline"}
		}

		result = append(result, domainnews.Article{
			ID:         ra.ID,
			Headline:   ra.Headline,
			Summary:    ra.Summary,
			Source:     ra.Source,
			Timestamp:  ra.Timestamp,
			ImageURL:   ra.ImageURL,
			ArticleURL: ra.ArticleURL,
			Hint:       classifyHeadline(ra.Headline),
		})
	}
	return result, nil
}

func mapGameStatus(raw string) domaingames.GameStatus {
	switch strings.ToLower(raw) {
	case "scheduled":
		return domaingames.StatusUpcoming
	case "live":
		return domaingames.StatusLive
	case "halftime":
		return domaingames.StatusHalftime
	case "final":
		return domaingames.StatusFinal
	case "postponed", "cancelled":
		return domaingames.StatusPostponed
	default:
		return domaingames.StatusUpcoming
	}
}

func formatGameTime(rg providers.RawGame) string {
	switch strings.ToLower(rg.Status) {
	case "live":
		if rg.Quarter != "" && rg.TimeRemaining != "" {
			return rg.Quarter + " " + rg.TimeRemaining
		}
		if rg.Quarter != "" {
			return rg.Quarter
		}
		return "Live"
	case "scheduled":
		if start, err := time.Parse(time.RFC3339, rg.StartTime); err == nil {
			return timeutil.FormatKickoff(start.In(displayLocation))
		}
	}
	return ""
}

func formatGameDate(startTime string) string {
	start, err := time.Parse(time.RFC3339, startTime)
	if err != nil {
		return ""
	}
	return timeutil.FormatGameDate(start.In(displayLocation))
}

// playerImageURL builds a placeholder avatar from the player's initials.
func playerImageURL(name string) string {
	if name == "" {
		return placeholderLogoURL
	}
	var initials strings.Builder
	for _, part := range strings.Fields(name) {
		initials.WriteString(part[:1])
	}
	return placeholderLogoURL + "?text=" + initials.String()
}
