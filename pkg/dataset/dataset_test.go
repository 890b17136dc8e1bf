package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urlsift/urlsift/models"
	"github.com/urlsift/urlsift/pkg/features"
)

// writeTempCSV writes content to a temp file and returns its path.
func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp csv: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	path := writeTempCSV(t, strings.Join([]string{
		"url,label,result",
		"https://example.com,benign,0",
		"http://bit.ly/abc,malicious,1",
	}, "\n"))

	table, err := Read(path)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("Rows = %d, want 2", len(table.Rows))
	}
	if table.URLIndex != 0 || table.LabelIndex != 1 || table.ResultIndex != 2 {
		t.Errorf("column indexes = %d/%d/%d, want 0/1/2",
			table.URLIndex, table.LabelIndex, table.ResultIndex)
	}
	if got := table.URL(1); got != "http://bit.ly/abc" {
		t.Errorf("URL(1) = %q", got)
	}
	if got := table.Label(0); got != LabelBenign {
		t.Errorf("Label(0) = %q", got)
	}

	counts := table.LabelCounts()
	if counts[LabelBenign] != 1 || counts[LabelMalicious] != 1 {
		t.Errorf("LabelCounts() = %v", counts)
	}
}

func TestRead_NoResultColumn(t *testing.T) {
	path := writeTempCSV(t, "label,url\nbenign,https://example.com\n")

	table, err := Read(path)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if table.ResultIndex != -1 {
		t.Errorf("ResultIndex = %d, want -1", table.ResultIndex)
	}
	if table.URLIndex != 1 || table.LabelIndex != 0 {
		t.Errorf("column indexes = %d/%d, want 1/0", table.URLIndex, table.LabelIndex)
	}
}

func TestRead_MissingRequiredColumns(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no url column", "label,result"},
		{"no label column", "url,result"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, tt.header+"\n")
			if _, err := Read(path); err == nil {
				t.Error("Read() succeeded, want error")
			}
		})
	}
}

func TestRead_SkipsMalformedRows(t *testing.T) {
	path := writeTempCSV(t, strings.Join([]string{
		"url,label",
		"https://example.com,benign",
		"http://only-one-field.com",
		"https://example.org,malicious",
	}, "\n"))

	table, err := Read(path)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Errorf("Rows = %d, want 2 (malformed row skipped)", len(table.Rows))
	}
	if table.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", table.Skipped)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	inPath := writeTempCSV(t, strings.Join([]string{
		"url,label,result",
		"https://example.com,benign,0",
		"http://192.168.1.1/x,malicious,1",
	}, "\n"))

	table, err := Read(inPath)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}

	records := make([]models.FeatureRecord, len(table.Rows))
	for i := range table.Rows {
		records[i] = features.Extract(table.URL(i))
	}

	outPath := filepath.Join(t.TempDir(), "out.csv")
	if err := Write(outPath, table, records); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	out, err := Read(outPath)
	if err != nil {
		t.Fatalf("Read(output) failed: %v", err)
	}

	wantCols := 3 + len(models.FeatureColumns)
	if len(out.Columns) != wantCols {
		t.Fatalf("output columns = %d, want %d", len(out.Columns), wantCols)
	}
	// Input columns pass through in position, features follow.
	if out.Columns[0] != "url" || out.Columns[2] != "result" {
		t.Errorf("input columns not preserved: %v", out.Columns[:3])
	}
	if out.Columns[3] != "url_length" || out.Columns[wantCols-1] != "short_url" {
		t.Errorf("feature columns out of order: %v", out.Columns[3:])
	}

	// Row order must match input order for label alignment.
	if out.URL(0) != "https://example.com" || out.URL(1) != "http://192.168.1.1/x" {
		t.Errorf("row order changed: %q, %q", out.URL(0), out.URL(1))
	}

	// Spot-check a feature cell: use_of_ip of the second row.
	useOfIPCol := 3 + len(models.FeatureColumns) - 2
	if got := out.Rows[1][useOfIPCol]; got != "-1" {
		t.Errorf("use_of_ip cell = %q, want -1", got)
	}
}

func TestWrite_CountMismatch(t *testing.T) {
	inPath := writeTempCSV(t, "url,label\nhttps://example.com,benign\n")
	table, err := Read(inPath)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	err = Write(filepath.Join(t.TempDir(), "out.csv"), table, nil)
	if err == nil {
		t.Error("Write() with mismatched records succeeded, want error")
	}
}
