package stats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/urlsift/urlsift/pkg/dataset"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp csv: %v", err)
	}
	return path
}

func TestAggregate(t *testing.T) {
	path := writeTempCSV(t, "url,label\n"+
		"https://www.example.com/a,benign\n"+
		"http://192.168.1.1/x,malicious\n"+
		"http://bit.ly/abc,malicious\n")

	table, err := dataset.Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	total := aggregate(table)

	if got := total.Rows["benign"]; got != 1 {
		t.Errorf("benign rows = %d, want 1", got)
	}
	if got := total.Rows["malicious"]; got != 2 {
		t.Errorf("malicious rows = %d, want 2", got)
	}
	if got := total.IPLiteralRows["malicious"]; got != 1 {
		t.Errorf("malicious IP literal rows = %d, want 1", got)
	}
	if got := total.ShortenerRows["malicious"]; got != 1 {
		t.Errorf("malicious shortener rows = %d, want 1", got)
	}
	if got := total.ShortenerHits["bit.ly"]; got != 1 {
		t.Errorf("bit.ly hits = %d, want 1", got)
	}

	summaries := total.Summaries()
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	if summaries[0].Label != "benign" || summaries[1].Label != "malicious" {
		t.Errorf("summaries not sorted by label: %q, %q", summaries[0].Label, summaries[1].Label)
	}
}

func TestAggregate_EmptyTable(t *testing.T) {
	path := writeTempCSV(t, "url,label\n")

	table, err := dataset.Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	total := aggregate(table)
	if len(total.Summaries()) != 0 {
		t.Errorf("got %d summaries for empty table, want 0", len(total.Summaries()))
	}
}
