package leaders

import "github.com/gridironfacts/nfl-data-service/internal/domain/teams"

// LeaderEntry is one ranked player inside a stat category.
type LeaderEntry struct {
	Rank        int        `json:"rank"`
	PlayerName  string     `json:"playerName"`
	Team        teams.Team `json:"team"`
	StatValue   string     `json:"statValue"`
	StatDetail  string     `json:"statDetail,omitempty"`
	PlayerImage string     `json:"playerImage,omitempty"`
}

// StatLeader groups ranked players under one category name.
type StatLeader struct {
	Category string        `json:"category"`
	Players  []LeaderEntry `json:"players"`
}
