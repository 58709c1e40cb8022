package adapter

import "strings"

// hintRules is an ordered keyword rule list; the first matching rule wins.
var hintRules = []struct {
	keywords []string
	hint     string
}{
	{[]string{"injury", "hurt"}, "player injury"},
	{[]string{"trade", "deal"}, "trade news"},
	{[]string{"draft", "rookie"}, "draft news"},
	{[]string{"playoff", "championship"}, "playoff action"},
	{[]string{"quarterback", "qb"}, "quarterback action"},
	{[]string{"touchdown", "td"}, "scoring play"},
}

const defaultHint = "football action"

// classifyHeadline derives a content-classification hint from headline
// keywords, case-insensitively.
func classifyHeadline(headline string) string {
	lower := strings.ToLower(headline)
	for _, rule := range hintRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.hint
			}
		}
	}
	return defaultHint
}
