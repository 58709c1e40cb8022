package news

// Article is the normalized news shape shown in the dashboard feed.
// Timestamp is a pre-formatted relative label (e.g. "2 hours ago").
type Article struct {
	ID         string `json:"id"`
	Headline   string `json:"headline"`
	Summary    string `json:"summary"`
	Source     string `json:"source,omitempty"`
	Timestamp  string `json:"timestamp"`
	ImageURL   string `json:"imageUrl,omitempty"`
	ArticleURL string `json:"articleUrl,omitempty"`
	Hint       string `json:"hint"`
}
