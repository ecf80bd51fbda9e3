package matcher

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizer folds names and queries onto the same comparable form.
// Transformers carry state, so each call builds its own.
type normalizer struct {
	stripMarks bool
}

func (n normalizer) apply(s string) string {
	s = cases.Lower(language.Und).String(s)
	if !n.stripMarks {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
