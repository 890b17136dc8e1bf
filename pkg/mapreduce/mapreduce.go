// Package mapreduce aggregates per-row feature records into per-label
// dataset statistics. Map produces a partial aggregate for one row;
// Reduce merges partials, so the stats pass can be sharded the same way
// the extraction pass is.
package mapreduce

import (
	"sort"

	"github.com/urlsift/urlsift/models"
)

// Partial holds per-label aggregates for a slice of the dataset.
type Partial struct {
	Rows              map[string]int
	URLLengthSum      map[string]int
	HostnameLengthSum map[string]int
	IPLiteralRows     map[string]int
	ShortenerRows     map[string]int
	ShortenerHits     map[string]int // shortener domain -> occurrences, across all labels
}

func newPartial() *Partial {
	return &Partial{
		Rows:              make(map[string]int),
		URLLengthSum:      make(map[string]int),
		HostnameLengthSum: make(map[string]int),
		IPLiteralRows:     make(map[string]int),
		ShortenerRows:     make(map[string]int),
		ShortenerHits:     make(map[string]int),
	}
}

// Map folds a single row into a fresh partial aggregate.
func Map(label string, rec models.FeatureRecord, shorteners []string) *Partial {
	p := newPartial()
	p.Add(label, rec, shorteners)
	return p
}

// Add folds one row into an existing partial. Used by the sequential
// stats pass to avoid allocating a partial per row.
func (p *Partial) Add(label string, rec models.FeatureRecord, shorteners []string) {
	p.Rows[label]++
	p.URLLengthSum[label] += rec.URLLength
	p.HostnameLengthSum[label] += rec.HostnameLength
	if rec.UseOfIP == -1 {
		p.IPLiteralRows[label]++
	}
	if rec.ShortURL == -1 {
		p.ShortenerRows[label]++
	}
	for _, d := range shorteners {
		p.ShortenerHits[d]++
	}
}

// Reduce merges a slice of partial aggregates into a single one.
func Reduce(partials []*Partial) *Partial {
	final := newPartial()
	for _, p := range partials {
		if p == nil {
			continue
		}
		mergeInto(final.Rows, p.Rows)
		mergeInto(final.URLLengthSum, p.URLLengthSum)
		mergeInto(final.HostnameLengthSum, p.HostnameLengthSum)
		mergeInto(final.IPLiteralRows, p.IPLiteralRows)
		mergeInto(final.ShortenerRows, p.ShortenerRows)
		mergeInto(final.ShortenerHits, p.ShortenerHits)
	}
	return final
}

func mergeInto(dst, src map[string]int) {
	for k, v := range src {
		dst[k] += v
	}
}

// LabelSummary is the readable per-label rollup derived from a Partial.
type LabelSummary struct {
	Label              string
	Rows               int
	MeanURLLength      float64
	MeanHostnameLength float64
	IPLiteralRate      float64
	ShortenerRate      float64
}

// Summaries renders per-label rollups sorted by label for stable output.
func (p *Partial) Summaries() []LabelSummary {
	labels := make([]string, 0, len(p.Rows))
	for label := range p.Rows {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	summaries := make([]LabelSummary, 0, len(labels))
	for _, label := range labels {
		n := p.Rows[label]
		s := LabelSummary{Label: label, Rows: n}
		if n > 0 {
			s.MeanURLLength = float64(p.URLLengthSum[label]) / float64(n)
			s.MeanHostnameLength = float64(p.HostnameLengthSum[label]) / float64(n)
			s.IPLiteralRate = float64(p.IPLiteralRows[label]) / float64(n)
			s.ShortenerRate = float64(p.ShortenerRows[label]) / float64(n)
		}
		summaries = append(summaries, s)
	}
	return summaries
}
