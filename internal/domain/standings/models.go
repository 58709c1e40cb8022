package standings

import "github.com/gridironfacts/nfl-data-service/internal/domain/teams"

// TeamStanding is one ranked row inside a division table.
// Rank is dense and 1-based within its division.
type TeamStanding struct {
	Rank          int        `json:"rank"`
	Team          teams.Team `json:"team"`
	Wins          int        `json:"wins"`
	Losses        int        `json:"losses"`
	Ties          int        `json:"ties"`
	WinPercentage float64    `json:"winPercentage"`
	GamesBack     float64    `json:"gamesBack"`
	Conference    string     `json:"conference"`
}

// DivisionStanding groups ranked teams under one (conference, division) key.
type DivisionStanding struct {
	Conference   string         `json:"conference"`
	DivisionName string         `json:"divisionName"`
	Teams        []TeamStanding `json:"teams"`
}
