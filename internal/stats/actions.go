package stats

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/urlsift/urlsift/pkg/dataset"
	"github.com/urlsift/urlsift/pkg/features"
	"github.com/urlsift/urlsift/pkg/mapreduce"
)

// StatsAction aggregates a labeled input table into per-label dataset
// statistics. It extracts features row by row and folds them into a
// single aggregate, so memory stays flat regardless of table size.
func StatsAction(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	inputPath := c.String("input")
	logger.Info("Loading input table", "path", inputPath)
	table, err := dataset.Read(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input table: %w", err)
	}
	if table.Skipped > 0 {
		logger.Warn("Skipped malformed rows", "count", table.Skipped)
	}

	total := aggregate(table)
	printSummary(os.Stdout, total, len(table.Rows))

	return nil
}

// aggregate folds every row of the table into one partial.
func aggregate(table *dataset.Table) *mapreduce.Partial {
	total := mapreduce.Reduce(nil)
	for i := range table.Rows {
		url := table.URL(i)
		rec := features.Extract(url)
		total.Add(table.Label(i), rec, features.MatchedShorteners(url))
	}
	return total
}

// printSummary renders the per-label rollup as an aligned table plus
// the most common shortener domains seen across the dataset.
func printSummary(w *os.File, total *mapreduce.Partial, rows int) {
	fmt.Fprintf(w, "Rows: %d\n\n", rows)
	fmt.Fprintf(w, "%-12s %8s %14s %14s %12s %12s\n",
		"LABEL", "ROWS", "MEAN URL LEN", "MEAN HOST LEN", "IP RATE", "SHORT RATE")

	for _, s := range total.Summaries() {
		fmt.Fprintf(w, "%-12s %8d %14.1f %14.1f %12.3f %12.3f\n",
			s.Label, s.Rows, s.MeanURLLength, s.MeanHostnameLength,
			s.IPLiteralRate, s.ShortenerRate)
	}

	top := mapreduce.TopCounts(total.ShortenerHits, 5)
	if len(top) > 0 {
		fmt.Fprintf(w, "\nTop shortener domains:\n")
		for _, entry := range top {
			fmt.Fprintf(w, "  %s\n", entry)
		}
	}
}
