package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// levenshteinScore is the best edit distance between the query and either
// the whole name or any single word of it, divided by the longer length
func levenshteinScore(query, name string) float64 {
	query = strings.TrimSpace(query)
	if query == name {
		return 0
	}

	best := normalizedDistance(query, name)
	for _, word := range strings.Fields(name) {
		if d := normalizedDistance(query, word); d < best {
			best = d
		}
	}
	return best
}

func normalizedDistance(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}
	return float64(fuzzy.LevenshteinDistance(a, b)) / float64(longest)
}
