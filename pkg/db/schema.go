package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs: one row per batch extraction over an input table
CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    input_path TEXT NOT NULL,
    input_sha256 TEXT NOT NULL,
    output_path TEXT,
    row_count INTEGER NOT NULL,
    skipped_count INTEGER DEFAULT 0,
    benign_count INTEGER DEFAULT 0,
    malicious_count INTEGER DEFAULT 0,
    workers INTEGER,
    duration_seconds REAL
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_input_hash ON runs(input_sha256);

-- Feature rows: optional per-row persistence for spot-checking a run
CREATE TABLE IF NOT EXISTS feature_rows (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    row_index INTEGER NOT NULL,
    url TEXT NOT NULL,
    label TEXT,
    url_length INTEGER,
    hostname_length INTEGER,
    path_length INTEGER,
    fd_length INTEGER,
    count_dash INTEGER,
    count_at INTEGER,
    count_question INTEGER,
    count_percent INTEGER,
    count_dot INTEGER,
    count_equal INTEGER,
    count_http INTEGER,
    count_https INTEGER,
    count_www INTEGER,
    count_digits INTEGER,
    count_letters INTEGER,
    count_dir INTEGER,
    use_of_ip INTEGER,
    short_url INTEGER,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, row_index)
);

CREATE INDEX IF NOT EXISTS idx_feature_rows_run ON feature_rows(run_id);
CREATE INDEX IF NOT EXISTS idx_feature_rows_label ON feature_rows(label);

-- Scans: history of single-URL inspections
CREATE TABLE IF NOT EXISTS scans (
    scan_id TEXT PRIMARY KEY,
    url TEXT NOT NULL,
    scanned_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    risk_score REAL,
    use_of_ip INTEGER,
    short_url INTEGER
);

CREATE INDEX IF NOT EXISTS idx_scans_time ON scans(scanned_at DESC);
`
