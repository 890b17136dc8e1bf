package mapreduce

import (
	"reflect"
	"testing"

	"github.com/urlsift/urlsift/pkg/features"
)

func TestMapReduce(t *testing.T) {
	rows := []struct {
		url   string
		label string
	}{
		{"https://example.com", "benign"},
		{"https://www.example.org/a", "benign"},
		{"http://bit.ly/abc", "malicious"},
		{"http://192.168.1.1/x", "malicious"},
	}

	partials := make([]*Partial, 0, len(rows))
	for _, row := range rows {
		rec := features.Extract(row.url)
		partials = append(partials, Map(row.label, rec, features.MatchedShorteners(row.url)))
	}

	final := Reduce(partials)

	if final.Rows["benign"] != 2 || final.Rows["malicious"] != 2 {
		t.Errorf("Rows = %v, want 2 benign / 2 malicious", final.Rows)
	}
	if final.IPLiteralRows["malicious"] != 1 {
		t.Errorf("IPLiteralRows[malicious] = %d, want 1", final.IPLiteralRows["malicious"])
	}
	if final.IPLiteralRows["benign"] != 0 {
		t.Errorf("IPLiteralRows[benign] = %d, want 0", final.IPLiteralRows["benign"])
	}
	if final.ShortenerRows["malicious"] != 1 {
		t.Errorf("ShortenerRows[malicious] = %d, want 1", final.ShortenerRows["malicious"])
	}
	if final.ShortenerHits["bit.ly"] != 1 {
		t.Errorf("ShortenerHits = %v, want bit.ly:1", final.ShortenerHits)
	}

	summaries := final.Summaries()
	if len(summaries) != 2 {
		t.Fatalf("Summaries() = %d entries, want 2", len(summaries))
	}
	// Sorted by label: benign first.
	if summaries[0].Label != "benign" || summaries[1].Label != "malicious" {
		t.Errorf("summary order = %s, %s", summaries[0].Label, summaries[1].Label)
	}
	if summaries[1].ShortenerRate != 0.5 {
		t.Errorf("malicious ShortenerRate = %f, want 0.5", summaries[1].ShortenerRate)
	}
	if summaries[0].MeanURLLength <= 0 {
		t.Errorf("benign MeanURLLength = %f, want > 0", summaries[0].MeanURLLength)
	}
}

func TestReduce_EqualsSequentialAdd(t *testing.T) {
	// Sharded Map+Reduce must agree with a single sequential pass.
	urls := []string{
		"https://example.com",
		"http://bit.ly/abc",
		"http://tinyurl.com/x",
		"not a url",
	}

	var partials []*Partial
	seq := Map("benign", features.Extract(urls[0]), features.MatchedShorteners(urls[0]))
	partials = append(partials, Map("benign", features.Extract(urls[0]), features.MatchedShorteners(urls[0])))
	for _, u := range urls[1:] {
		rec := features.Extract(u)
		seq.Add("benign", rec, features.MatchedShorteners(u))
		partials = append(partials, Map("benign", rec, features.MatchedShorteners(u)))
	}

	if !reflect.DeepEqual(Reduce(partials), seq) {
		t.Error("Reduce(partials) differs from sequential Add")
	}
}

func TestTopCounts(t *testing.T) {
	counts := map[string]int{"bit.ly": 5, "tinyurl": 9, "goo.gl": 5, "ow.ly": 1}

	got := TopCounts(counts, 3)
	want := []string{"tinyurl:9", "bit.ly:5", "goo.gl:5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopCounts() = %v, want %v", got, want)
	}

	if got := TopCounts(counts, 10); len(got) != 4 {
		t.Errorf("TopCounts(n>len) = %d entries, want 4", len(got))
	}
	if got := TopCounts(map[string]int{}, 5); len(got) != 0 {
		t.Errorf("TopCounts(empty) = %v, want empty", got)
	}
}
