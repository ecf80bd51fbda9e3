package search

import (
	"strings"

	"emojied/internal/domain"
	"emojied/internal/eventbus"
)

// DefaultResultCap is how many results Visible returns by default
const DefaultResultCap = 40

// Service keeps results in step with the query. Every change of the query
// recomputes results before any event is published, so observers never
// see results that belong to an older query.
type Service struct {
	state     *State
	bus       eventbus.EventBus
	searcher  Searcher
	resultCap int
}

// NewService creates a new search service
func NewService(searcher Searcher, bus eventbus.EventBus, resultCap int) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if resultCap < 1 {
		resultCap = DefaultResultCap
	}
	return &Service{
		state:     &State{},
		bus:       bus,
		searcher:  searcher,
		resultCap: resultCap,
	}
}

// SetQuery stores raw and recomputes results
func (s *Service) SetQuery(raw string) {
	if raw == s.state.Query {
		return
	}

	s.state.Query = raw
	s.recompute()
	s.bus.Publish(eventbus.QueryChangedEvent{Query: raw})
	s.publishResults()
}

// SetMatcher swaps the searcher, after a dataset reload for example, and
// recomputes the current query against it
func (s *Service) SetMatcher(searcher Searcher) {
	s.searcher = searcher
	s.recompute()
	s.publishResults()
}

// Query returns the raw query text
func (s *Service) Query() string {
	return s.state.Query
}

// Results returns every result, best first
func (s *Service) Results() []domain.Glyph {
	out := make([]domain.Glyph, len(s.state.Results))
	copy(out, s.state.Results)
	return out
}

// Visible returns the results that fit the display cap
func (s *Service) Visible() []domain.Glyph {
	n := min(len(s.state.Results), s.resultCap)
	out := make([]domain.Glyph, n)
	copy(out, s.state.Results[:n])
	return out
}

// Total returns the number of results before capping
func (s *Service) Total() int {
	return len(s.state.Results)
}

// NoMatches reports a non-empty query with nothing found
func (s *Service) NoMatches() bool {
	return strings.TrimSpace(s.state.Query) != "" && len(s.state.Results) == 0
}

// IndexOf returns the visible position of the glyph with codes, or -1
func (s *Service) IndexOf(codes string) int {
	n := min(len(s.state.Results), s.resultCap)
	for i := 0; i < n; i++ {
		if s.state.Results[i].Codes == codes {
			return i
		}
	}
	return -1
}

func (s *Service) recompute() {
	if strings.TrimSpace(s.state.Query) == "" || s.searcher == nil {
		s.state.Results = nil
		return
	}
	s.state.Results = s.searcher.Search(s.state.Query)
}

func (s *Service) publishResults() {
	if len(s.state.Results) == 0 && strings.TrimSpace(s.state.Query) == "" {
		s.bus.Publish(eventbus.ResultsClearedEvent{})
		return
	}
	s.bus.Publish(eventbus.ResultsUpdatedEvent{
		Query: s.state.Query,
		Total: len(s.state.Results),
		Shown: min(len(s.state.Results), s.resultCap),
	})
}
