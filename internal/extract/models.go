package extract

import "github.com/urlsift/urlsift/models"

// Job is one row handed to a worker. Index is the row's position in
// the input table; results are reassembled by it.
type Job struct {
	Index int
	URL   string
}

// Result holds the outcome of a processed job.
type Result struct {
	Index  int
	URL    string
	Record models.FeatureRecord
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalRows        int     `json:"total_rows"`
	Skipped          int     `json:"skipped,omitempty"`
	Benign           int     `json:"benign"`
	Malicious        int     `json:"malicious"`
	TotalTimeSeconds float64 `json:"total_time_seconds"`
}

// FinalOutput is the structured output for the entire run, printed to
// stdout as JSON.
type FinalOutput struct {
	Status       string `json:"status"`
	RunID        string `json:"run_id"`
	OutputPath   string `json:"output_path"`
	ManifestPath string `json:"manifest_path,omitempty"`
	Stats        Stats  `json:"stats"`
}
