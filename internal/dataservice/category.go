package dataservice

// Categories are the four independently fetched and cached data kinds.
const (
	CategoryGames     = "games"
	CategoryStandings = "standings"
	CategoryLeaders   = "leaders"
	CategoryNews      = "news"
)

// AllCategories lists every category key in presentation order.
var AllCategories = []string{CategoryGames, CategoryStandings, CategoryLeaders, CategoryNews}
