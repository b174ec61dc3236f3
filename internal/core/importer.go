package core

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rosterdesk/rosterdesk/internal/schema"
)

// RowFailure records one data row that failed record construction. The row
// number is the 1-based spreadsheet row.
type RowFailure struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult is the aggregate outcome of one import.
//
// A rejected import (missing required columns) is reported here, not as an
// error: MissingColumns is non-empty and nothing was imported. A fatal
// error (unreadable container) is returned as an error instead, and in both
// cases the store is left untouched.
type ImportResult struct {
	ImportID       string        `json:"importId,omitempty"`
	Imported       int           `json:"imported"`
	Blank          int           `json:"blank"`
	Failed         int           `json:"failed"`
	TotalRows      int           `json:"totalRows"`
	MissingColumns []string      `json:"missingColumns,omitempty"`
	Failures       []RowFailure  `json:"failures,omitempty"`
	Duration       time.Duration `json:"-"`
}

// Skipped returns the number of data rows that did not make it into the
// store, blank and failed combined.
func (r ImportResult) Skipped() int { return r.Blank + r.Failed }

// Rejected reports whether the import was refused for missing required
// columns.
func (r ImportResult) Rejected() bool { return len(r.MissingColumns) > 0 }

// Importer runs the import pipeline for one schema into one store. The
// slow parsing phase runs without the store's lock; the store is touched
// exactly once, at the final ReplaceAll.
type Importer struct {
	Schema schema.Schema
	Store  *Store
}

// Import reads a single-sheet spreadsheet and atomically replaces the
// store's collection with the rows that pass validation.
//
// Row 1 is the header. A file with no data rows imports zero records
// without error. Missing required columns reject the whole import before
// the store is touched. Individual bad rows are counted and skipped; one
// bad row never aborts the batch. Only an unreadable container is fatal.
func (imp *Importer) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	start := time.Now()
	result := ImportResult{}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return result, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return result, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return result, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	// Header-only or empty: nothing to import, not an error.
	if len(rows) < 2 {
		result.Duration = time.Since(start)
		return result, nil
	}

	cols := Resolve(rows[0], imp.Schema)
	if missing := cols.MissingRequired(imp.Schema); len(missing) > 0 {
		result.MissingColumns = missing
		result.Duration = time.Since(start)
		return result, nil
	}

	var accepted []Record
	for i, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("import cancelled: %w", err)
		}

		rowNum := i + 2 // 1-based, after the header
		result.TotalRows++

		if IsBlankRow(row, cols, imp.Schema) {
			result.Blank++
			continue
		}

		rec, err := ParseRow(row, cols, imp.Schema)
		if err != nil {
			result.Failed++
			result.Failures = append(result.Failures, RowFailure{
				Row:    rowNum,
				Reason: err.Error(),
			})
			continue
		}

		// Identifiers are assigned sequentially in row order. The legacy
		// serial-number column, where a schema has one, is data only.
		rec.ID = int64(len(accepted) + 1)
		accepted = append(accepted, rec)
	}

	imp.Store.ReplaceAll(accepted)

	result.Imported = len(accepted)
	result.Duration = time.Since(start)
	return result, nil
}
