package search

import "emojied/internal/domain"

// State holds the live query and the results derived from it
type State struct {
	Query   string
	Results []domain.Glyph // best first, replaced on every query change
}

// Searcher ranks glyphs for a query
type Searcher interface {
	Search(query string) []domain.Glyph
}
