package db

import (
	"fmt"

	"github.com/urlsift/urlsift/models"
)

// RecordScan upserts a single-URL inspection into the scan history.
// The scan id is a content hash of the URL, so re-inspecting the same
// URL refreshes its row instead of duplicating it.
func (db *DB) RecordScan(scan models.Scan) error {
	_, err := db.Exec(`
		INSERT OR REPLACE INTO scans (scan_id, url, scanned_at, risk_score, use_of_ip, short_url)
		VALUES (?, ?, CURRENT_TIMESTAMP, ?, ?, ?)
	`, scan.ScanID, scan.URL, scan.RiskScore, scan.UseOfIP, scan.ShortURL)
	if err != nil {
		return fmt.Errorf("failed to record scan: %w", err)
	}
	return nil
}

// RecentScans returns the newest scans, most recent first.
func (db *DB) RecentScans(limit int) ([]models.Scan, error) {
	rows, err := db.Query(`
		SELECT scan_id, url, scanned_at, risk_score, use_of_ip, short_url
		FROM scans
		ORDER BY scanned_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []models.Scan
	for rows.Next() {
		var s models.Scan
		if err := rows.Scan(&s.ScanID, &s.URL, &s.ScannedAt, &s.RiskScore, &s.UseOfIP, &s.ShortURL); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scans = append(scans, s)
	}
	return scans, rows.Err()
}
