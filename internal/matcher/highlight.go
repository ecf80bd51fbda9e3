package matcher

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Highlight returns the byte offsets in name of the characters the query
// picks out as a subsequence, for display only. A query that is not a
// subsequence of name (an approximate match) highlights nothing.
func Highlight(query, name string) []int {
	query = strings.TrimSpace(query)
	if query == "" || name == "" {
		return nil
	}

	matches := fuzzy.Find(query, []string{name})
	if len(matches) == 0 {
		return nil
	}
	return matches[0].MatchedIndexes
}
