// Package manifest writes the YAML run summary that sits next to each
// output table. It gives a reviewer the run's provenance (input hash,
// row counts, timing) without opening the database.
package manifest

import "time"

// RunManifest is the structure of the <output>.manifest.yaml file.
type RunManifest struct {
	RunID       string    `yaml:"run_id"`
	GeneratedAt time.Time `yaml:"generated_at"`

	Input struct {
		Path    string `yaml:"path"`
		SHA256  string `yaml:"sha256"`
		Rows    int    `yaml:"rows"`
		Skipped int    `yaml:"skipped,omitempty"`
	} `yaml:"input"`

	Labels map[string]int `yaml:"labels"`

	Output struct {
		Path    string   `yaml:"path"`
		Columns []string `yaml:"columns"`
	} `yaml:"output"`

	Workers         int     `yaml:"workers"`
	DurationSeconds float64 `yaml:"duration_seconds"`
}
