// Package db implements the database subcommands: listing recorded
// extraction runs, showing one run in detail, and browsing the
// single-URL scan history.
package db

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

// RunsAction lists recorded extraction runs, newest first.
func RunsAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	limit := c.Int("limit")
	runs, err := database.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println("\nTip: run 'urlsift extract --input <table.csv>' to record one.")
		return nil
	}

	fmt.Printf("%-38s %-20s %8s %8s %10s %8s\n",
		"RUN ID", "CREATED", "ROWS", "SKIPPED", "MALICIOUS", "TIME(S)")
	fmt.Println(strings.Repeat("-", 98))
	for _, r := range runs {
		fmt.Printf("%-38s %-20s %8d %8d %10d %8.1f\n",
			r.RunID, r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.RowCount, r.SkippedCount, r.MaliciousCount, r.DurationSeconds)
	}
	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Println("\nTip: use 'urlsift db run <run-id>' to see run details")

	return nil
}

// RunAction shows one run in detail. Without an argument it shows the
// latest run.
func RunAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := getRunIDOrLatest(c, database)
	if err != nil {
		return fmt.Errorf("failed to resolve run id: %w", err)
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}
	storedRows, err := database.FeatureRowCount(runID)
	if err != nil {
		return fmt.Errorf("failed to count stored rows: %w", err)
	}

	fmt.Printf("Run:          %s\n", run.RunID)
	fmt.Printf("Created:      %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Input:        %s\n", run.InputPath)
	fmt.Printf("Input SHA256: %s\n", run.InputSHA256)
	fmt.Printf("Output:       %s\n", run.OutputPath)
	fmt.Printf("Rows:         %d (%d benign, %d malicious, %d skipped)\n",
		run.RowCount, run.BenignCount, run.MaliciousCount, run.SkippedCount)
	fmt.Printf("Stored rows:  %d\n", storedRows)
	fmt.Printf("Workers:      %d\n", run.Workers)
	fmt.Printf("Duration:     %.1fs\n", run.DurationSeconds)

	return nil
}

// ScansAction lists the most recent single-URL inspections.
func ScansAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	scans, err := database.RecentScans(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list scans: %w", err)
	}

	if len(scans) == 0 {
		fmt.Println("No scans recorded yet.")
		fmt.Println("\nTip: run 'urlsift inspect --url <url>' to record one.")
		return nil
	}

	fmt.Printf("%-20s %6s %6s %6s  %s\n", "SCANNED", "RISK", "IP", "SHORT", "URL")
	fmt.Println(strings.Repeat("-", 104))
	for _, s := range scans {
		fmt.Printf("%-20s %6.2f %6d %6d  %s\n",
			s.ScannedAt.Format("2006-01-02 15:04:05"),
			s.RiskScore, s.UseOfIP, s.ShortURL, truncate(s.URL, 60))
	}
	fmt.Printf("\nTotal: %d scans\n", len(scans))

	return nil
}
