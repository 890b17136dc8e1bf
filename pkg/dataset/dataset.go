// Package dataset reads and writes the url/label table. It is thin
// glue around encoding/csv; all feature semantics live in pkg/features.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urlsift/urlsift/models"
)

// Column names the input schema requires or passes through.
const (
	ColumnURL    = "url"
	ColumnLabel  = "label"
	ColumnResult = "result"
)

// Label values expected in the input table.
const (
	LabelBenign    = "benign"
	LabelMalicious = "malicious"
)

// Table is an input table held in memory: header plus rows, with the
// positions of the columns the pipeline cares about resolved up front.
type Table struct {
	Columns []string
	Rows    [][]string

	URLIndex    int
	LabelIndex  int
	ResultIndex int // -1 when the optional result column is absent

	// Skipped counts malformed CSV records dropped during reading.
	Skipped int
}

// URL returns the url cell of row i.
func (t *Table) URL(i int) string {
	return t.Rows[i][t.URLIndex]
}

// Label returns the label cell of row i.
func (t *Table) Label(i int) string {
	return t.Rows[i][t.LabelIndex]
}

// LabelCounts tallies rows per label value.
func (t *Table) LabelCounts() map[string]int {
	counts := make(map[string]int)
	for i := range t.Rows {
		counts[t.Label(i)]++
	}
	return counts
}

// Read loads a CSV table from path. The header must contain url and
// label columns; a result column is noted when present. Malformed
// records (wrong field count, bare quotes) are skipped and counted
// rather than aborting the load; one bad row must not sink a
// several-hundred-thousand-row batch.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	t := &Table{
		Columns:     header,
		URLIndex:    -1,
		LabelIndex:  -1,
		ResultIndex: -1,
	}
	for i, col := range header {
		switch col {
		case ColumnURL:
			t.URLIndex = i
		case ColumnLabel:
			t.LabelIndex = i
		case ColumnResult:
			t.ResultIndex = i
		}
	}
	if t.URLIndex < 0 {
		return nil, fmt.Errorf("input table has no %q column", ColumnURL)
	}
	if t.LabelIndex < 0 {
		return nil, fmt.Errorf("input table has no %q column", ColumnLabel)
	}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Field-count and quoting problems degrade to a skipped
			// row; anything else is a real read failure.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				t.Skipped++
				continue
			}
			return nil, fmt.Errorf("failed to read table: %w", err)
		}
		t.Rows = append(t.Rows, record)
	}

	return t, nil
}

// Write emits the output table: every input column followed by the
// feature columns in models.FeatureColumns order, one record per input
// row. len(records) must equal len(t.Rows); row order is preserved so
// features stay aligned with their labels.
func Write(path string, t *Table, records []models.FeatureRecord) error {
	if len(records) != len(t.Rows) {
		return fmt.Errorf("record count %d does not match row count %d", len(records), len(t.Rows))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output table: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := append(append([]string{}, t.Columns...), models.FeatureColumns...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range t.Rows {
		out := append(append([]string{}, row...), records[i].Row()...)
		if err := w.Write(out); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output table: %w", err)
	}
	return nil
}
