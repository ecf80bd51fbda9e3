package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"emojied/internal/domain"
)

//go:embed data/emoji.json
var embedded []byte

// EmbeddedSource names the built-in dataset
const EmbeddedSource = "embedded"

// Default returns the dataset compiled into the binary
func Default() (*Dataset, error) {
	records, err := DecodeJSON(strings.NewReader(string(embedded)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode embedded dataset: %w", err)
	}
	return New(EmbeddedSource, records)
}

// Load reads a dataset from path, choosing the format by extension.
// An empty path selects the embedded dataset.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}

	var (
		records []domain.Glyph
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		records, err = readJSONFile(path)
	case ".xlsx":
		records, err = ReadXLSX(path)
	case ".html", ".htm":
		records, err = readHTMLFile(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	return New(path, records)
}

// Save writes the dataset to path as JSON or xlsx
func Save(ds *Dataset, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create dataset file: %w", err)
		}
		if err := EncodeJSON(f, ds.All()); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	case ".xlsx":
		return WriteXLSX(path, ds.All())
	default:
		return fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}
}

// DecodeJSON reads an array of {codes, char, name} records
func DecodeJSON(r io.Reader) ([]domain.Glyph, error) {
	var records []domain.Glyph
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse dataset JSON: %w", err)
	}
	return records, nil
}

// EncodeJSON writes one record per line inside a JSON array
func EncodeJSON(w io.Writer, records []domain.Glyph) error {
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}
	for i, g := range records {
		line, err := json.Marshal(struct {
			Codes string `json:"codes"`
			Char  string `json:"char"`
			Name  string `json:"name"`
		}{g.Codes, g.Char, g.Name})
		if err != nil {
			return fmt.Errorf("failed to encode record %s: %w", g.Codes, err)
		}
		sep := ",\n"
		if i == len(records)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "  %s%s", line, sep); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

func readJSONFile(path string) ([]domain.Glyph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return DecodeJSON(f)
}

func readHTMLFile(path string) ([]domain.Glyph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open emoji list: %w", err)
	}
	defer f.Close()
	return ParseEmojiList(f)
}
