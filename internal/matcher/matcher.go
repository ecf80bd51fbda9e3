package matcher

import (
	"math"
	"sort"
	"strings"
	"sync/atomic"

	"emojied/internal/domain"
)

// Algorithm selects the scoring function
type Algorithm string

const (
	AlgorithmBitap       Algorithm = "bitap"
	AlgorithmLevenshtein Algorithm = "levenshtein"
)

// epsilon replaces a perfect score of 0 before ranking so that the field
// length norm still orders exact hits
const epsilon = 2.220446049250313e-16

// Options configure a Matcher
type Options struct {
	Threshold        float64 // max Distance kept, within [0,1]
	Distance         int     // how far from Location a match may drift
	Location         int     // expected match position in the name
	Algorithm        Algorithm
	IgnoreDiacritics bool
}

// DefaultOptions returns the stock search policy
func DefaultOptions() Options {
	return Options{
		Threshold: 0.3,
		Distance:  100,
		Algorithm: AlgorithmBitap,
	}
}

// Source is anything that can list glyphs in a stable order
type Source interface {
	All() []domain.Glyph
}

// Match is one ranked search hit
type Match struct {
	Glyph    domain.Glyph
	Index    int     // position in the dataset
	Distance float64 // 0 exact, 1 no match
	Rank     float64 // Distance weighted by name length, lower first
}

type entry struct {
	glyph domain.Glyph
	key   string  // normalized name
	norm  float64 // field length norm
}

type index struct {
	entries []entry
}

// Matcher ranks dataset glyphs against free-text queries by name.
// Apart from its index it holds no state; it is safe for concurrent use.
type Matcher struct {
	opts  Options
	fold  normalizer
	index atomic.Pointer[index]
}

// New builds a matcher and its index over src
func New(src Source, opts Options) *Matcher {
	if opts.Algorithm == "" {
		opts.Algorithm = AlgorithmBitap
	}
	m := &Matcher{
		opts: opts,
		fold: normalizer{stripMarks: opts.IgnoreDiacritics},
	}
	m.Rebuild(src)
	return m
}

// Rebuild replaces the index with one built from src
func (m *Matcher) Rebuild(src Source) {
	glyphs := src.All()
	idx := &index{entries: make([]entry, len(glyphs))}
	for i, g := range glyphs {
		idx.entries[i] = entry{
			glyph: g,
			key:   m.fold.apply(g.Name),
			norm:  fieldNorm(g.Name),
		}
	}
	m.index.Store(idx)
}

// Options returns the options the matcher was built with
func (m *Matcher) Options() Options {
	return m.opts
}

// Len returns the number of indexed glyphs
func (m *Matcher) Len() int {
	return len(m.index.Load().entries)
}

// Search returns the glyphs matching query, best first
func (m *Matcher) Search(query string) []domain.Glyph {
	matches := m.SearchScored(query)
	out := make([]domain.Glyph, len(matches))
	for i, mt := range matches {
		out[i] = mt.Glyph
	}
	return out
}

// SearchScored is Search with scores attached
func (m *Matcher) SearchScored(query string) []Match {
	score, ok := m.scorer(query)
	if !ok {
		return []Match{}
	}
	idx := m.index.Load()

	out := make([]Match, 0)
	for i, e := range idx.entries {
		d, ok := score(e.key)
		if !ok || d > m.opts.Threshold {
			continue
		}
		out = append(out, Match{Glyph: e.glyph, Index: i, Distance: d, Rank: rank(d, e.norm)})
	}

	// Entries were appended in dataset order, so equal ranks keep it
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Rank < out[b].Rank
	})
	return out
}

// Evaluate scores a single indexed glyph against query
func (m *Matcher) Evaluate(query string, i int) (Match, bool) {
	idx := m.index.Load()
	if i < 0 || i >= len(idx.entries) {
		return Match{}, false
	}
	score, ok := m.scorer(query)
	if !ok {
		return Match{}, false
	}

	e := idx.entries[i]
	d, ok := score(e.key)
	if !ok || d > m.opts.Threshold {
		return Match{}, false
	}
	return Match{Glyph: e.glyph, Index: i, Distance: d, Rank: rank(d, e.norm)}, true
}

// Highlight returns byte offsets in name to emphasize for query
func (m *Matcher) Highlight(query, name string) []int {
	return Highlight(query, name)
}

// scorer is false when nothing is left of query to match, either because it
// is blank or because folding stripped it (a lone combining mark)
func (m *Matcher) scorer(query string) (func(string) (float64, bool), bool) {
	if strings.TrimSpace(query) == "" {
		return nil, false
	}
	q := m.fold.apply(query)
	if strings.TrimSpace(q) == "" {
		return nil, false
	}

	if m.opts.Algorithm == AlgorithmLevenshtein {
		return func(key string) (float64, bool) {
			d := levenshteinScore(q, key)
			return d, d <= m.opts.Threshold
		}, true
	}

	p := compileBitap(q)
	params := bitapParams{
		location:  m.opts.Location,
		distance:  m.opts.Distance,
		threshold: m.opts.Threshold,
	}
	return func(key string) (float64, bool) {
		return p.score(key, params)
	}, true
}

func rank(distance, norm float64) float64 {
	if distance == 0 {
		distance = epsilon
	}
	return math.Pow(distance, norm)
}

// fieldNorm is 1/sqrt(word count) rounded to three places; shorter names
// rank ahead of longer ones with the same distance
func fieldNorm(name string) float64 {
	tokens := len(strings.FieldsFunc(name, func(r rune) bool { return r == ' ' }))
	if tokens == 0 {
		tokens = 1
	}
	return math.Round(1/math.Sqrt(float64(tokens))*1000) / 1000
}
