package manifest

import (
	"path/filepath"
	"testing"

	"github.com/urlsift/urlsift/models"
	"github.com/urlsift/urlsift/pkg/storage"
	"gopkg.in/yaml.v3"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	run := models.Run{
		RunID:           "run-1",
		InputPath:       "urls.csv",
		InputSHA256:     "cafe",
		OutputPath:      filepath.Join(dir, "urls_processed.csv"),
		RowCount:        10,
		SkippedCount:    1,
		Workers:         4,
		DurationSeconds: 1.25,
	}
	labels := map[string]int{"benign": 6, "malicious": 4}
	columns := []string{"url", "label", "url_length"}

	s := &storage.Storage{}
	path, err := Generate(run, labels, columns, s)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if path != run.OutputPath+".manifest.yaml" {
		t.Errorf("manifest path = %q", path)
	}

	data, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}

	var m RunManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal manifest: %v", err)
	}
	if m.RunID != "run-1" {
		t.Errorf("RunID = %q, want run-1", m.RunID)
	}
	if m.Input.SHA256 != "cafe" || m.Input.Rows != 10 || m.Input.Skipped != 1 {
		t.Errorf("Input = %+v", m.Input)
	}
	if m.Labels["malicious"] != 4 {
		t.Errorf("Labels = %v", m.Labels)
	}
	if len(m.Output.Columns) != 3 {
		t.Errorf("Output.Columns = %v", m.Output.Columns)
	}
}
