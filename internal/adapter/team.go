package adapter

import (
	domainteams "github.com/gridironfacts/nfl-data-service/internal/domain/teams"
	"github.com/gridironfacts/nfl-data-service/internal/teams"
)

const placeholderLogoURL = "https://placehold.co/40x40.png"

// buildTeam resolves a short code against the team registry. Unknown codes
// fall back to the code itself as the display name with a generic logo.
func buildTeam(shortName string, score *int) domainteams.Team {
	team := domainteams.Team{
		Name:      shortName,
		ShortName: shortName,
		LogoURL:   placeholderLogoURL,
	}

	if td, ok := teams.Lookup(shortName); ok {
		team.Name = td.Name
		team.LogoURL = td.LogoURL
		team.Color = td.PrimaryColor
	}

	if score != nil {
		v := *score
		team.Score = &v
	}

	return team
}
