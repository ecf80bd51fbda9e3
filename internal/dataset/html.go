package dataset

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"emojied/internal/domain"
)

// ParseEmojiList extracts records from a Unicode emoji-list.html or
// full-emoji-list.html page. Rows without a code cell (section headers)
// are skipped, as are codes seen earlier in the page.
func ParseEmojiList(r io.Reader) ([]domain.Glyph, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse emoji list: %w", err)
	}

	var records []domain.Glyph
	seen := make(map[string]bool)

	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		codes := condense(tr.Find("td.code").First().Text())
		if codes == "" {
			return
		}
		codes = NormalizeCodes(codes)
		if seen[codes] {
			return
		}

		name := condense(tr.Find("td.name").First().Text())
		name = strings.TrimSpace(strings.TrimPrefix(name, "⊛"))

		char := condense(tr.Find("td.chars").First().Text())
		if char == "" {
			if alt, ok := tr.Find("img").First().Attr("alt"); ok {
				char = strings.TrimSpace(alt)
			}
		}
		if char == "" {
			char = charFromCodes(codes)
		}
		if char == "" || name == "" {
			return
		}

		seen[codes] = true
		records = append(records, domain.Glyph{Codes: codes, Char: char, Name: name})
	})

	return records, nil
}

func condense(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func charFromCodes(codes string) string {
	var b strings.Builder
	for _, f := range strings.Fields(codes) {
		cp, err := strconv.ParseUint(f, 16, 32)
		if err != nil {
			return ""
		}
		b.WriteRune(rune(cp))
	}
	return b.String()
}
