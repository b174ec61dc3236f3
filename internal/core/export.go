package core

// export.go serializes record collections back to spreadsheet form. Export
// and template generation share the same deterministic header row, so a
// generated file can be filled in and re-imported as-is.

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rosterdesk/rosterdesk/internal/schema"
)

// dateNumFmt renders date cells as calendar dates, in a form the import
// coercions parse back.
const dateNumFmt = "m/d/yyyy"

// sheetStyles holds the style IDs used while writing one workbook.
type sheetStyles struct {
	header     int
	date       int
	stripe     int
	stripeDate int
}

// newSheetStyles registers the header and alternating-row styles on f.
// The styling is a presentation nicety only; the data round-trips the same
// without it.
func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var st sheetStyles
	var err error

	st.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return st, err
	}

	numFmt := dateNumFmt
	st.date, err = f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return st, err
	}

	st.stripe, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F2F2F2"}},
	})
	if err != nil {
		return st, err
	}

	st.stripeDate, err = f.NewStyle(&excelize.Style{
		Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F2F2F2"}},
		CustomNumFmt: &numFmt,
	})
	return st, err
}

// Export writes records as a single-sheet workbook: the schema's header row
// followed by one row per record in input order, with typed cells. Booleans
// are written as Y/N text and dates as calendar dates, matching the import
// coercions in reverse. Export reads its input only; it has no store
// coupling.
func Export(s schema.Schema, records []Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	st, err := newSheetStyles(f)
	if err != nil {
		return nil, fmt.Errorf("register styles: %w", err)
	}

	if err := writeHeader(f, sheet, s, st); err != nil {
		return nil, err
	}

	for i, rec := range records {
		rowNum := i + 2
		stripe := i%2 == 1
		for col, field := range s.Fields {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return nil, err
			}
			if err := writeCell(f, sheet, cell, rec.Values[field.Name], field.Kind, st, stripe); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Template writes a blank import template: the schema's header row, the
// definition's illustrative example rows, and usage notes attached to the
// first header cell. It contains no live data.
func Template(def Definition) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	st, err := newSheetStyles(f)
	if err != nil {
		return nil, fmt.Errorf("register styles: %w", err)
	}

	if err := writeHeader(f, sheet, def.Schema, st); err != nil {
		return nil, err
	}

	for i, example := range def.Examples {
		rowNum := i + 2
		for col := range def.Schema.Fields {
			if col >= len(example) {
				break
			}
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, example[col]); err != nil {
				return nil, err
			}
		}
	}

	if len(def.Notes) > 0 {
		var runs []excelize.RichTextRun
		for _, note := range def.Notes {
			runs = append(runs, excelize.RichTextRun{Text: note + "\n"})
		}
		if err := f.AddComment(sheet, excelize.Comment{
			Cell:      "A1",
			Author:    def.Info.Label,
			Paragraph: runs,
		}); err != nil {
			return nil, fmt.Errorf("add usage notes: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeHeader writes the styled header row and sizes the columns.
func writeHeader(f *excelize.File, sheet string, s schema.Schema, st sheetStyles) error {
	for col, field := range s.Fields {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, field.Label); err != nil {
			return err
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		width := float64(len(field.Label) + 4)
		if width < 12 {
			width = 12
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}

	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, err := excelize.CoordinatesToCellName(len(s.Fields), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, st.header)
}

// writeCell writes one typed cell, applying the stripe and date styles as
// needed.
func writeCell(f *excelize.File, sheet, cell string, v Value, kind schema.Kind, st sheetStyles, stripe bool) error {
	switch kind {
	case schema.KindInt:
		if err := f.SetCellValue(sheet, cell, v.Int); err != nil {
			return err
		}
	case schema.KindBool:
		text := "N"
		if v.Bool {
			text = "Y"
		}
		if err := f.SetCellValue(sheet, cell, text); err != nil {
			return err
		}
	case schema.KindDate:
		if v.DateSet {
			if err := f.SetCellValue(sheet, cell, v.Date); err != nil {
				return err
			}
		}
	default:
		if v.Text != "" {
			if err := f.SetCellValue(sheet, cell, v.Text); err != nil {
				return err
			}
		}
	}

	style := 0
	switch {
	case kind == schema.KindDate && stripe:
		style = st.stripeDate
	case kind == schema.KindDate:
		style = st.date
	case stripe:
		style = st.stripe
	}
	if style != 0 {
		return f.SetCellStyle(sheet, cell, cell, style)
	}
	return nil
}
