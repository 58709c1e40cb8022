package games

import "github.com/gridironfacts/nfl-data-service/internal/domain/teams"

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusUpcoming  GameStatus = "Upcoming"
	StatusLive      GameStatus = "Live"
	StatusHalftime  GameStatus = "Halftime"
	StatusFinal     GameStatus = "Final"
	StatusPostponed GameStatus = "Postponed"
)

// HasScore reports whether a game in this state carries team scores.
// Upcoming and Postponed games never do.
func (s GameStatus) HasScore() bool {
	switch s {
	case StatusLive, StatusHalftime, StatusFinal:
		return true
	}
	return false
}

// Game is the canonical game shape exposed by the service.
type Game struct {
	ID            string     `json:"id"`
	HomeTeam      teams.Team `json:"homeTeam"`
	AwayTeam      teams.Team `json:"awayTeam"`
	Status        GameStatus `json:"status"`
	Time          string     `json:"time,omitempty"`
	Date          string     `json:"date,omitempty"`
	Venue         string     `json:"venue,omitempty"`
	TVChannel     string     `json:"tvChannel,omitempty"`
	Quarter       string     `json:"quarter,omitempty"`
	TimeRemaining string     `json:"timeRemaining,omitempty"`
	KeyEvents     []string   `json:"keyEvents"`
}
