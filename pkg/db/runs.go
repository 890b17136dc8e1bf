package db

import (
	"database/sql"
	"fmt"

	"github.com/urlsift/urlsift/models"
)

// InsertRun records a completed batch extraction.
func (db *DB) InsertRun(run models.Run) error {
	_, err := db.Exec(`
		INSERT INTO runs (run_id, input_path, input_sha256, output_path,
			row_count, skipped_count, benign_count, malicious_count,
			workers, duration_seconds)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.RunID, run.InputPath, run.InputSHA256, run.OutputPath,
		run.RowCount, run.SkippedCount, run.BenignCount, run.MaliciousCount,
		run.Workers, run.DurationSeconds)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]models.Run, error) {
	rows, err := db.Query(`
		SELECT run_id, created_at, input_path, input_sha256, output_path,
			row_count, skipped_count, benign_count, malicious_count,
			workers, duration_seconds
		FROM runs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		var r models.Run
		var output sql.NullString
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.InputPath, &r.InputSHA256,
			&output, &r.RowCount, &r.SkippedCount, &r.BenignCount,
			&r.MaliciousCount, &r.Workers, &r.DurationSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.OutputPath = output.String
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRunByID fetches one run.
func (db *DB) GetRunByID(runID string) (models.Run, error) {
	var r models.Run
	var output sql.NullString
	err := db.QueryRow(`
		SELECT run_id, created_at, input_path, input_sha256, output_path,
			row_count, skipped_count, benign_count, malicious_count,
			workers, duration_seconds
		FROM runs WHERE run_id = ?
	`, runID).Scan(&r.RunID, &r.CreatedAt, &r.InputPath, &r.InputSHA256,
		&output, &r.RowCount, &r.SkippedCount, &r.BenignCount,
		&r.MaliciousCount, &r.Workers, &r.DurationSeconds)
	if err != nil {
		return models.Run{}, fmt.Errorf("failed to get run %s: %w", runID, err)
	}
	r.OutputPath = output.String
	return r, nil
}

// LatestRunID returns the id of the newest run.
func (db *DB) LatestRunID() (string, error) {
	var runID string
	err := db.QueryRow(`SELECT run_id FROM runs ORDER BY created_at DESC LIMIT 1`).Scan(&runID)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("no runs recorded yet")
	}
	if err != nil {
		return "", fmt.Errorf("failed to get latest run: %w", err)
	}
	return runID, nil
}

// InsertFeatureRows persists a run's per-row feature vectors inside one
// transaction. Row order follows the input table index so stored rows
// stay aligned with the output CSV.
func (db *DB) InsertFeatureRows(runID string, urls, labels []string, records []models.FeatureRecord) error {
	if len(urls) != len(records) || len(labels) != len(records) {
		return fmt.Errorf("mismatched slice lengths: %d urls, %d labels, %d records",
			len(urls), len(labels), len(records))
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO feature_rows (run_id, row_index, url, label,
			url_length, hostname_length, path_length, fd_length,
			count_dash, count_at, count_question, count_percent,
			count_dot, count_equal, count_http, count_https, count_www,
			count_digits, count_letters, count_dir, use_of_ip, short_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		_, err := stmt.Exec(runID, i, urls[i], labels[i],
			rec.URLLength, rec.HostnameLength, rec.PathLength, rec.FDLength,
			rec.CountDash, rec.CountAt, rec.CountQuestion, rec.CountPercent,
			rec.CountDot, rec.CountEqual, rec.CountHTTP, rec.CountHTTPS, rec.CountWWW,
			rec.CountDigits, rec.CountLetters, rec.CountDir, rec.UseOfIP, rec.ShortURL)
		if err != nil {
			return fmt.Errorf("failed to insert feature row %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// FeatureRowCount returns how many rows a run persisted.
func (db *DB) FeatureRowCount(runID string) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM feature_rows WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count feature rows: %w", err)
	}
	return n, nil
}
