package teams

// Team is the normalized team shape rendered on game cards, standings rows,
// and leader entries. Instances are rebuilt on every transformation pass and
// never shared or mutated.
type Team struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	LogoURL   string `json:"logoUrl"`
	Score     *int   `json:"score,omitempty"`
	Color     string `json:"color,omitempty"`
}
