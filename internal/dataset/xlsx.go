package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"emojied/internal/domain"
)

const xlsxSheet = "Emoji"

var xlsxHeader = []interface{}{"codes", "char", "name"}

// ReadXLSX reads the first sheet of a workbook. A header row naming the
// codes, char and name columns is required; column order is free.
func ReadXLSX(path string) ([]domain.Glyph, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := map[string]int{"codes": -1, "char": -1, "name": -1}
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, ok := col[key]; ok {
			col[key] = i
		}
	}
	for key, idx := range col {
		if idx < 0 {
			return nil, fmt.Errorf("sheet %s: missing %q column", sheets[0], key)
		}
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	records := make([]domain.Glyph, 0, len(rows)-1)
	for _, row := range rows[1:] {
		g := domain.Glyph{
			Codes: cell(row, col["codes"]),
			Char:  cell(row, col["char"]),
			Name:  cell(row, col["name"]),
		}
		if g.Codes == "" && g.Char == "" && g.Name == "" {
			continue
		}
		if g.Codes == "" {
			g.Codes = CodesOf(g.Char)
		}
		records = append(records, g)
	}
	return records, nil
}

// WriteXLSX writes records to a single-sheet workbook
func WriteXLSX(path string, records []domain.Glyph) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(xlsxSheet)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}
	if err := sw.SetRow("A1", xlsxHeader); err != nil {
		return err
	}
	for i, g := range records {
		cellAddr, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cellAddr, []interface{}{g.Codes, g.Char, g.Name}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
