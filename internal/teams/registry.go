package teams

// TeamData holds the static display metadata for one NFL franchise.
type TeamData struct {
	Name           string `json:"name"`
	ShortName      string `json:"shortName"`
	LogoURL        string `json:"logoUrl"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	Conference     string `json:"conference"`
	Division       string `json:"division"`
}

// Lookup resolves a team short code against the registry.
func Lookup(shortName string) (TeamData, bool) {
	td, ok := nflTeams[shortName]
	return td, ok
}

// All returns every registered team.
func All() []TeamData {
	result := make([]TeamData, 0, len(nflTeams))
	for _, td := range nflTeams {
		result = append(result, td)
	}
	return result
}

var nflTeams = map[string]TeamData{
	// AFC East
	"BUF": {Name: "Buffalo Bills", ShortName: "BUF", LogoURL: "https://upload.wikimedia.org/wikipedia/en/7/72/Buffalo_Bills_logo.svg", PrimaryColor: "#00338D", SecondaryColor: "#C60C30", Conference: "AFC", Division: "East"},
	"MIA": {Name: "Miami Dolphins", ShortName: "MIA", LogoURL: "https://upload.wikimedia.org/wikipedia/en/3/37/Miami_Dolphins_logo.svg", PrimaryColor: "#008E97", SecondaryColor: "#FC4C02", Conference: "AFC", Division: "East"},
	"NE":  {Name: "New England Patriots", ShortName: "NE", LogoURL: "https://upload.wikimedia.org/wikipedia/en/b/b9/New_England_Patriots_logo.svg", PrimaryColor: "#002244", SecondaryColor: "#C60C30", Conference: "AFC", Division: "East"},
	"NYJ": {Name: "New York Jets", ShortName: "NYJ", LogoURL: "https://upload.wikimedia.org/wikipedia/en/6/6b/New_York_Jets_logo.svg", PrimaryColor: "#125740", SecondaryColor: "#000000", Conference: "AFC", Division: "East"},

	// AFC North
	"BAL": {Name: "Baltimore Ravens", ShortName: "BAL", LogoURL: "https://upload.wikimedia.org/wikipedia/en/1/16/Baltimore_Ravens_logo.svg", PrimaryColor: "#241773", SecondaryColor: "#000000", Conference: "AFC", Division: "North"},
	"CIN": {Name: "Cincinnati Bengals", ShortName: "CIN", LogoURL: "https://upload.wikimedia.org/wikipedia/en/8/81/Cincinnati_Bengals_logo.svg", PrimaryColor: "#FB4F14", SecondaryColor: "#000000", Conference: "AFC", Division: "North"},
	"CLE": {Name: "Cleveland Browns", ShortName: "CLE", LogoURL: "https://upload.wikimedia.org/wikipedia/en/d/d9/Cleveland_Browns_logo.svg", PrimaryColor: "#311D00", SecondaryColor: "#FF3C00", Conference: "AFC", Division: "North"},
	"PIT": {Name: "Pittsburgh Steelers", ShortName: "PIT", LogoURL: "https://upload.wikimedia.org/wikipedia/en/d/de/Pittsburgh_Steelers_logo.svg", PrimaryColor: "#000000", SecondaryColor: "#FFB612", Conference: "AFC", Division: "North"},

	// AFC South
	"HOU": {Name: "Houston Texans", ShortName: "HOU", LogoURL: "https://upload.wikimedia.org/wikipedia/en/2/28/Houston_Texans_logo.svg", PrimaryColor: "#03202F", SecondaryColor: "#A71931", Conference: "AFC", Division: "South"},
	"IND": {Name: "Indianapolis Colts", ShortName: "IND", LogoURL: "https://upload.wikimedia.org/wikipedia/en/0/00/Indianapolis_Colts_logo.svg", PrimaryColor: "#002C5F", SecondaryColor: "#A2AAAD", Conference: "AFC", Division: "South"},
	"JAX": {Name: "Jacksonville Jaguars", ShortName: "JAX", LogoURL: "https://upload.wikimedia.org/wikipedia/en/7/74/Jacksonville_Jaguars_logo.svg", PrimaryColor: "#006778", SecondaryColor: "#D7A22A", Conference: "AFC", Division: "South"},
	"TEN": {Name: "Tennessee Titans", ShortName: "TEN", LogoURL: "https://upload.wikimedia.org/wikipedia/en/c/c1/Tennessee_Titans_logo.svg", PrimaryColor: "#0C2340", SecondaryColor: "#4B92DB", Conference: "AFC", Division: "South"},

	// AFC West
	"DEN": {Name: "Denver Broncos", ShortName: "DEN", LogoURL: "https://upload.wikimedia.org/wikipedia/en/4/44/Denver_Broncos_logo.svg", PrimaryColor: "#FB4F14", SecondaryColor: "#002244", Conference: "AFC", Division: "West"},
	"KC":  {Name: "Kansas City Chiefs", ShortName: "KC", LogoURL: "https://upload.wikimedia.org/wikipedia/en/e/e1/Kansas_City_Chiefs_logo.svg", PrimaryColor: "#E31837", SecondaryColor: "#FFB81C", Conference: "AFC", Division: "West"},
	"LV":  {Name: "Las Vegas Raiders", ShortName: "LV", LogoURL: "https://upload.wikimedia.org/wikipedia/en/4/48/Las_Vegas_Raiders_logo.svg", PrimaryColor: "#000000", SecondaryColor: "#C4C4C4", Conference: "AFC", Division: "West"},
	"LAC": {Name: "Los Angeles Chargers", ShortName: "LAC", LogoURL: "https://upload.wikimedia.org/wikipedia/en/7/72/NFL_Chargers_logo.svg", PrimaryColor: "#0080C6", SecondaryColor: "#FFC20E", Conference: "AFC", Division: "West"},

	// NFC East
	"DAL": {Name: "Dallas Cowboys", ShortName: "DAL", LogoURL: "https://upload.wikimedia.org/wikipedia/en/4/47/Dallas_Cowboys_logo.svg", PrimaryColor: "#003594", SecondaryColor: "#869397", Conference: "NFC", Division: "East"},
	"NYG": {Name: "New York Giants", ShortName: "NYG", LogoURL: "https://upload.wikimedia.org/wikipedia/en/6/60/New_York_Giants_logo.svg", PrimaryColor: "#0B2265", SecondaryColor: "#A71931", Conference: "NFC", Division: "East"},
	"PHI": {Name: "Philadelphia Eagles", ShortName: "PHI", LogoURL: "https://upload.wikimedia.org/wikipedia/en/8/8e/Philadelphia_Eagles_logo.svg", PrimaryColor: "#004C54", SecondaryColor: "#A5ACAF", Conference: "NFC", Division: "East"},
	"WAS": {Name: "Washington Commanders", ShortName: "WAS", LogoURL: "https://upload.wikimedia.org/wikipedia/en/8/81/Washington_Commanders_logo.svg", PrimaryColor: "#5A1414", SecondaryColor: "#FFB612", Conference: "NFC", Division: "East"},

	// NFC North
	"CHI": {Name: "Chicago Bears", ShortName: "CHI", LogoURL: "https://upload.wikimedia.org/wikipedia/en/5/52/Chicago_Bears_logo.svg", PrimaryColor: "#0B162A", SecondaryColor: "#C83803", Conference: "NFC", Division: "North"},
	"DET": {Name: "Detroit Lions", ShortName: "DET", LogoURL: "https://upload.wikimedia.org/wikipedia/en/7/71/Detroit_Lions_logo.svg", PrimaryColor: "#0076B6", SecondaryColor: "#B0B7BC", Conference: "NFC", Division: "North"},
	"GB":  {Name: "Green Bay Packers", ShortName: "GB", LogoURL: "https://upload.wikimedia.org/wikipedia/en/5/50/Green_Bay_Packers_logo.svg", PrimaryColor: "#203731", SecondaryColor: "#FFB612", Conference: "NFC", Division: "North"},
	"MIN": {Name: "Minnesota Vikings", ShortName: "MIN", LogoURL: "https://upload.wikimedia.org/wikipedia/en/4/48/Minnesota_Vikings_logo.svg", PrimaryColor: "#4F2683", SecondaryColor: "#FFC62F", Conference: "NFC", Division: "North"},

	// NFC South
	"ATL": {Name: "Atlanta Falcons", ShortName: "ATL", LogoURL: "https://upload.wikimedia.org/wikipedia/en/c/c5/Atlanta_Falcons_logo.svg", PrimaryColor: "#A71931", SecondaryColor: "#000000", Conference: "NFC", Division: "South"},
	"CAR": {Name: "Carolina Panthers", ShortName: "CAR", LogoURL: "https://upload.wikimedia.org/wikipedia/en/5/5c/Carolina_Panthers_logo.svg", PrimaryColor: "#0085CA", SecondaryColor: "#101820", Conference: "NFC", Division: "South"},
	"NO":  {Name: "New Orleans Saints", ShortName: "NO", LogoURL: "https://upload.wikimedia.org/wikipedia/en/5/57/New_Orleans_Saints_logo.svg", PrimaryColor: "#D3BC8D", SecondaryColor: "#000000", Conference: "NFC", Division: "South"},
	"TB":  {Name: "Tampa Bay Buccaneers", ShortName: "TB", LogoURL: "https://upload.wikimedia.org/wikipedia/en/a/a2/Tampa_Bay_Buccaneers_logo.svg", PrimaryColor: "#D50A0A", SecondaryColor: "#34302B", Conference: "NFC", Division: "South"},

	// NFC West
	"ARI": {Name: "Arizona Cardinals", ShortName: "ARI", LogoURL: "https://upload.wikimedia.org/wikipedia/en/7/72/Arizona_Cardinals_logo.svg", PrimaryColor: "#97233F", SecondaryColor: "#000000", Conference: "NFC", Division: "West"},
	"LAR": {Name: "Los Angeles Rams", ShortName: "LAR", LogoURL: "https://upload.wikimedia.org/wikipedia/en/8/81/Los_Angeles_Rams_logo.svg", PrimaryColor: "#003594", SecondaryColor: "#FFA300", Conference: "NFC", Division: "West"},
	"SF":  {Name: "San Francisco 49ers", ShortName: "SF", LogoURL: "https://upload.wikimedia.org/wikipedia/en/3/3a/San_Francisco_49ers_logo.svg", PrimaryColor: "#AA0000", SecondaryColor: "#B3995D", Conference: "NFC", Division: "West"},
	"SEA": {Name: "Seattle Seahawks", ShortName: "SEA", LogoURL: "https://upload.wikimedia.org/wikipedia/en/2/24/Seattle_Seahawks_logo.svg", PrimaryColor: "#002244", SecondaryColor: "#69BE28", Conference: "NFC", Division: "West"},
}
