package matcher

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emojied/internal/dataset"
	"emojied/internal/domain"
)

type glyphs []domain.Glyph

func (g glyphs) All() []domain.Glyph { return g }

func unrelated(n int) glyphs {
	words := []string{"tractor", "volcano", "umbrella", "anchor", "lobster", "compass", "kiwi", "bucket", "helmet", "mailbox"}
	out := make(glyphs, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Glyph{
			Codes: fmt.Sprintf("E%03X", i),
			Char:  string(rune(0xE000 + i)),
			Name:  fmt.Sprintf("%s %s", words[i%len(words)], words[(i/len(words))%len(words)]),
		})
	}
	return out
}

func defaultMatcher(t *testing.T) *Matcher {
	t.Helper()
	ds, err := dataset.Default()
	require.NoError(t, err)
	return New(ds, DefaultOptions())
}

func codes(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Glyph.Codes
	}
	return out
}

func TestBlankQueryReturnsNothing(t *testing.T) {
	m := defaultMatcher(t)
	for _, q := range []string{"", " ", "\t", "   \n "} {
		assert.Empty(t, m.Search(q), "query %q", q)
		assert.Empty(t, m.SearchScored(q), "query %q", q)
	}
}

func TestGrinFindsGrinningFaceFirst(t *testing.T) {
	m := defaultMatcher(t)

	got := m.SearchScored("grin")
	require.NotEmpty(t, got)
	assert.Equal(t, "1F600", got[0].Glyph.Codes)
	assert.Equal(t, "😀", got[0].Glyph.Char)
}

func TestGrinAmongUnrelatedEntries(t *testing.T) {
	records := append(unrelated(50), domain.Glyph{Codes: "1F600", Char: "😀", Name: "grinning face"})
	m := New(records, DefaultOptions())

	got := m.Search("grin")
	require.NotEmpty(t, got)
	assert.Equal(t, "1F600", got[0].Codes)
}

func TestNonsenseQueryReturnsNothing(t *testing.T) {
	m := defaultMatcher(t)
	assert.Empty(t, m.Search("zzzqqqxx"))
}

func TestCaseInsensitive(t *testing.T) {
	m := defaultMatcher(t)
	upper := m.SearchScored("GRIN")
	lower := m.SearchScored("grin")
	assert.Equal(t, codes(lower), codes(upper))
}

func TestEveryResultWithinThresholdAndNothingMissed(t *testing.T) {
	ds, err := dataset.Default()
	require.NoError(t, err)

	for _, threshold := range []float64{0, 0.1, 0.3, 0.6} {
		opts := DefaultOptions()
		opts.Threshold = threshold
		m := New(ds, opts)

		for _, q := range []string{"cat", "hert", "party", "face with"} {
			results := m.SearchScored(q)
			included := make(map[int]bool, len(results))
			for _, r := range results {
				assert.LessOrEqual(t, r.Distance, threshold)
				assert.GreaterOrEqual(t, r.Distance, 0.0)
				included[r.Index] = true
			}

			for i := 0; i < ds.Len(); i++ {
				mt, ok := m.Evaluate(q, i)
				assert.Equal(t, ok, included[i], "query %q record %s threshold %v", q, ds.At(i).Codes, threshold)
				if ok {
					assert.LessOrEqual(t, mt.Distance, threshold)
				}
			}
		}
	}
}

func TestResultsSortedByRank(t *testing.T) {
	m := defaultMatcher(t)
	results := m.SearchScored("face")
	require.Greater(t, len(results), 10)

	for i := 1; i < len(results); i++ {
		prev, cur := results[i-1], results[i]
		require.LessOrEqual(t, prev.Rank, cur.Rank)
		if prev.Rank == cur.Rank {
			require.Less(t, prev.Index, cur.Index, "ties keep dataset order")
		}
	}
}

func TestDeterministic(t *testing.T) {
	m := defaultMatcher(t)
	for _, q := range []string{"grin", "heart", "sm", "cat face"} {
		assert.Equal(t, m.SearchScored(q), m.SearchScored(q))
	}
}

func TestTiesBrokenByDatasetOrder(t *testing.T) {
	records := glyphs{
		{Codes: "A", Char: "a", Name: "cat"},
		{Codes: "B", Char: "b", Name: "cat"},
	}
	assert.Equal(t, []string{"A", "B"}, codes(New(records, DefaultOptions()).SearchScored("cat")))

	reversed := glyphs{records[1], records[0]}
	assert.Equal(t, []string{"B", "A"}, codes(New(reversed, DefaultOptions()).SearchScored("cat")))
}

func TestShorterNamesRankFirst(t *testing.T) {
	records := glyphs{
		{Codes: "1F431", Char: "🐱", Name: "cat face"},
		{Codes: "1F408", Char: "🐈", Name: "cat"},
	}
	got := New(records, DefaultOptions()).SearchScored("cat")
	require.Len(t, got, 2)
	assert.Equal(t, "1F408", got[0].Glyph.Codes)
	assert.Equal(t, 0.0, got[0].Distance, "exact name scores zero")
	assert.InDelta(t, 0.001, got[1].Distance, 1e-9)
}

func TestOnlyNameIsSearched(t *testing.T) {
	records := glyphs{{Codes: "1F40D", Char: "🐍", Name: "snake"}}
	m := New(records, DefaultOptions())
	assert.Empty(t, m.Search("1F40D"))
	assert.Empty(t, m.Search("🐍"))
	assert.Len(t, m.Search("snake"), 1)
}

func TestQueryIsNotTrimmedForScoring(t *testing.T) {
	records := glyphs{{Codes: "1F40D", Char: "🐍", Name: "snake"}}
	m := New(records, DefaultOptions())

	exact, ok := m.Evaluate("snake", 0)
	require.True(t, ok)
	padded, ok := m.Evaluate("snake ", 0)
	require.True(t, ok)
	assert.Less(t, exact.Distance, padded.Distance)
}

func TestIgnoreDiacritics(t *testing.T) {
	records := glyphs{{Codes: "1FA85", Char: "🪅", Name: "piñata"}}

	opts := DefaultOptions()
	opts.IgnoreDiacritics = true
	folded, ok := New(records, opts).Evaluate("pinata", 0)
	require.True(t, ok)
	assert.Equal(t, 0.0, folded.Distance)

	plain, ok := New(records, DefaultOptions()).Evaluate("pinata", 0)
	if ok {
		assert.Greater(t, plain.Distance, 0.0)
	}
}

func TestQueryFoldedAwayMatchesNothing(t *testing.T) {
	records := glyphs{{Codes: "1FA85", Char: "🪅", Name: "piñata"}}

	for _, algo := range []Algorithm{AlgorithmBitap, AlgorithmLevenshtein} {
		opts := DefaultOptions()
		opts.IgnoreDiacritics = true
		opts.Algorithm = algo
		m := New(records, opts)

		for _, q := range []string{"\u0301", " \u0301\u0308 "} {
			var got []domain.Glyph
			require.NotPanics(t, func() { got = m.Search(q) }, "%s %q", algo, q)
			assert.Empty(t, got)

			_, ok := m.Evaluate(q, 0)
			assert.False(t, ok)
		}
	}
}

func TestBitapEmptyChunkNeverMatches(t *testing.T) {
	d, ok := bitapSearch([]rune("pinata"), chunk{}, bitapParams{distance: 100, threshold: 0.3})
	assert.False(t, ok)
	assert.Equal(t, 1.0, d)
}

func TestRebuildSwapsIndex(t *testing.T) {
	m := New(glyphs{{Codes: "1F40D", Char: "🐍", Name: "snake"}}, DefaultOptions())
	require.Len(t, m.Search("snake"), 1)

	m.Rebuild(glyphs{{Codes: "1F408", Char: "🐈", Name: "cat"}})
	assert.Empty(t, m.Search("snake"))
	assert.Len(t, m.Search("cat"), 1)
	assert.Equal(t, 1, m.Len())
}

func TestEvaluateOutOfRange(t *testing.T) {
	m := New(glyphs{{Codes: "1F40D", Char: "🐍", Name: "snake"}}, DefaultOptions())
	_, ok := m.Evaluate("snake", 5)
	assert.False(t, ok)
	_, ok = m.Evaluate("snake", -1)
	assert.False(t, ok)
}

func TestLevenshteinAlgorithm(t *testing.T) {
	records := glyphs{
		{Codes: "1F40D", Char: "🐍", Name: "snake"},
		{Codes: "1F600", Char: "😀", Name: "grinning face"},
		{Codes: "1F408", Char: "🐈", Name: "cat"},
	}
	opts := DefaultOptions()
	opts.Algorithm = AlgorithmLevenshtein
	m := New(records, opts)

	got := m.SearchScored("snak")
	require.Len(t, got, 1)
	assert.Equal(t, "1F40D", got[0].Glyph.Codes)
	assert.InDelta(t, 0.2, got[0].Distance, 1e-9)

	got = m.SearchScored("grinning")
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].Distance, "a whole word counts as exact")

	assert.Empty(t, m.Search("zzzqqqxx"))
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, Highlight("snake", "snake"))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, Highlight("SNAKE", "snake"))
	assert.Nil(t, Highlight("xyz", "snake"))
	assert.Nil(t, Highlight("  ", "snake"))
}

func TestFieldNorm(t *testing.T) {
	assert.Equal(t, 1.0, fieldNorm("cat"))
	assert.Equal(t, 0.707, fieldNorm("cat face"))
	assert.Equal(t, 0.5, fieldNorm("face with tears of"))
}

func TestRankOfExactScoreIsPositive(t *testing.T) {
	assert.Greater(t, rank(0, 1), 0.0)
	assert.Less(t, rank(0, 1), rank(0.001, 1))
}

func TestLongPatternsAreChunked(t *testing.T) {
	p := compileBitap(strings.Repeat("a", 70))
	require.Len(t, p.chunks, 3)
	assert.Equal(t, 0, p.chunks[0].start)
	assert.Equal(t, 32, p.chunks[1].start)
	assert.Equal(t, 38, p.chunks[2].start)
	for _, c := range p.chunks {
		assert.Len(t, c.pattern, maxBits)
	}

	long := "face with one large and one small eye and a hat on top"
	records := glyphs{{Codes: "X", Char: "x", Name: long}}
	mt, ok := New(records, DefaultOptions()).Evaluate(long, 0)
	require.True(t, ok)
	assert.Equal(t, 0.0, mt.Distance)
}

func TestBitapScores(t *testing.T) {
	params := bitapParams{distance: 100, threshold: 0.3}

	s, ok := compileBitap("grin").score("grinning face", params)
	require.True(t, ok)
	assert.InDelta(t, 0.001, s, 1e-9)

	s, ok = compileBitap("snake").score("snake", params)
	require.True(t, ok)
	assert.Equal(t, 0.0, s)

	_, ok = compileBitap("zzzqqqxx").score("snake", params)
	assert.False(t, ok)
}

func TestComputeScore(t *testing.T) {
	assert.Equal(t, 0.0, computeScore(0, 4, 0, 0, 100))
	assert.InDelta(t, 0.25, computeScore(1, 4, 0, 0, 100), 1e-9)
	assert.InDelta(t, 0.35, computeScore(1, 4, 10, 0, 100), 1e-9)
	assert.Equal(t, 1.0, computeScore(0, 4, 3, 0, 0))
	assert.InDelta(t, 0.5, computeScore(2, 4, 0, 0, 0), 1e-9)
}
