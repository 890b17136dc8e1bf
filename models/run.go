package models

import "time"

// Run records one batch extraction over an input table.
type Run struct {
	RunID           string
	CreatedAt       time.Time
	InputPath       string
	InputSHA256     string
	OutputPath      string
	RowCount        int
	SkippedCount    int
	BenignCount     int
	MaliciousCount  int
	Workers         int
	DurationSeconds float64
}

// Scan records one interactive single-URL inspection.
type Scan struct {
	ScanID    string
	URL       string
	ScannedAt time.Time
	RiskScore float64
	UseOfIP   int
	ShortURL  int
}
