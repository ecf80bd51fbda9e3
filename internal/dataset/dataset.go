package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"emojied/internal/domain"
)

var (
	// ErrInvalidRecord is returned for a record with an empty name or a
	// char that is not exactly one grapheme cluster
	ErrInvalidRecord = errors.New("invalid emoji record")
	// ErrDuplicateCodes is returned when two records share a Codes value
	ErrDuplicateCodes = errors.New("duplicate emoji codes")
)

// Dataset is an ordered, immutable list of glyphs
type Dataset struct {
	source string
	glyphs []domain.Glyph
	byCode map[string]int
}

// New validates records and builds a Dataset. The slice is copied.
func New(source string, records []domain.Glyph) (*Dataset, error) {
	ds := &Dataset{
		source: source,
		glyphs: make([]domain.Glyph, 0, len(records)),
		byCode: make(map[string]int, len(records)),
	}

	for i, r := range records {
		r.Codes = NormalizeCodes(r.Codes)
		r.Name = strings.TrimSpace(r.Name)
		if err := Validate(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if prev, dup := ds.byCode[r.Codes]; dup {
			return nil, fmt.Errorf("record %d: %w: %s already used by record %d", i, ErrDuplicateCodes, r.Codes, prev)
		}
		ds.byCode[r.Codes] = len(ds.glyphs)
		ds.glyphs = append(ds.glyphs, r)
	}

	return ds, nil
}

// Validate checks a single record
func Validate(g domain.Glyph) error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("%w: empty name for %q", ErrInvalidRecord, g.Char)
	}
	if g.Char == "" || uniseg.GraphemeClusterCount(g.Char) != 1 {
		return fmt.Errorf("%w: %q is not a single grapheme", ErrInvalidRecord, g.Char)
	}
	if g.Codes == "" {
		return fmt.Errorf("%w: empty codes for %q", ErrInvalidRecord, g.Name)
	}
	return nil
}

// NormalizeCodes upper-cases hex code points, drops "U+" prefixes and
// collapses whitespace: "u+1f600  u+fe0f" becomes "1F600 FE0F"
func NormalizeCodes(codes string) string {
	fields := strings.Fields(codes)
	for i, f := range fields {
		f = strings.ToUpper(f)
		f = strings.TrimPrefix(f, "U+")
		fields[i] = f
	}
	return strings.Join(fields, " ")
}

// CodesOf derives the Codes value for a glyph string
func CodesOf(char string) string {
	parts := make([]string, 0, 2)
	for _, r := range char {
		parts = append(parts, fmt.Sprintf("%X", r))
	}
	return strings.Join(parts, " ")
}

// Source describes where the dataset was loaded from
func (d *Dataset) Source() string {
	return d.source
}

// Len returns the number of glyphs
func (d *Dataset) Len() int {
	return len(d.glyphs)
}

// At returns the glyph at index i
func (d *Dataset) At(i int) domain.Glyph {
	return d.glyphs[i]
}

// All returns a copy of every glyph in dataset order
func (d *Dataset) All() []domain.Glyph {
	out := make([]domain.Glyph, len(d.glyphs))
	copy(out, d.glyphs)
	return out
}

// Names returns every name in dataset order
func (d *Dataset) Names() []string {
	out := make([]string, len(d.glyphs))
	for i, g := range d.glyphs {
		out[i] = g.Name
	}
	return out
}

// ByCodes looks a glyph up by its identifier
func (d *Dataset) ByCodes(codes string) (domain.Glyph, bool) {
	i, ok := d.byCode[NormalizeCodes(codes)]
	if !ok {
		return domain.Glyph{}, false
	}
	return d.glyphs[i], true
}

const variationSelector = "\uFE0F"

// ByChar looks a glyph up by its character, ignoring a trailing
// variation selector
func (d *Dataset) ByChar(char string) (domain.Glyph, bool) {
	want := strings.TrimSuffix(char, variationSelector)
	for _, g := range d.glyphs {
		if strings.TrimSuffix(g.Char, variationSelector) == want {
			return g, true
		}
	}
	return domain.Glyph{}, false
}
