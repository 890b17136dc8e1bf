package manifest

import (
	"fmt"
	"time"

	"github.com/urlsift/urlsift/models"
	"github.com/urlsift/urlsift/pkg/storage"
	"gopkg.in/yaml.v3"
)

// Generate writes the run manifest to <outputPath>.manifest.yaml and
// returns the manifest path.
func Generate(run models.Run, labels map[string]int, columns []string, s *storage.Storage) (string, error) {
	m := RunManifest{
		RunID:           run.RunID,
		GeneratedAt:     time.Now(),
		Labels:          labels,
		Workers:         run.Workers,
		DurationSeconds: run.DurationSeconds,
	}
	m.Input.Path = run.InputPath
	m.Input.SHA256 = run.InputSHA256
	m.Input.Rows = run.RowCount
	m.Input.Skipped = run.SkippedCount
	m.Output.Path = run.OutputPath
	m.Output.Columns = columns

	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := run.OutputPath + ".manifest.yaml"
	if err := s.SaveFile(path, data); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}
