package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"github.com/urlsift/urlsift/internal/common"
	"github.com/urlsift/urlsift/models"
	"github.com/urlsift/urlsift/pkg/dataset"
	"github.com/urlsift/urlsift/pkg/db"
	"github.com/urlsift/urlsift/pkg/manifest"
	"github.com/urlsift/urlsift/pkg/storage"
)

// ExtractAction runs the batch feature extraction: read the input
// table, compute a feature record per row concurrently, write the
// output table, record the run.
func ExtractAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("store-rows") {
		cfg.StoreRows = c.Bool("store-rows")
	}

	inputPath := c.String("input")
	outputPath := c.String("output")
	if outputPath == "" {
		outputPath = defaultOutputPath(cfg.OutputDir, inputPath)
	}

	logger.Info("Loading input table", "path", inputPath)
	table, err := dataset.Read(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input table: %w", err)
	}
	if table.Skipped > 0 {
		logger.Warn("Skipped malformed rows", "count", table.Skipped)
	}

	inputHash, err := common.FileSHA256(inputPath)
	if err != nil {
		return fmt.Errorf("failed to hash input table: %w", err)
	}

	urls := make([]string, len(table.Rows))
	labels := make([]string, len(table.Rows))
	for i := range table.Rows {
		urls[i] = table.URL(i)
		labels[i] = table.Label(i)
	}

	logger.Info("Starting extraction", "rows", len(urls), "workers", cfg.Workers)
	var bar *progressbar.ProgressBar
	if !c.Bool("quiet") {
		bar = progressbar.Default(int64(len(urls)), "extracting")
	}
	records := runPool(logger, cfg.Workers, urls, bar)
	logger.Info("All extraction workers finished")

	if err := dataset.Write(outputPath, table, records); err != nil {
		return fmt.Errorf("failed to write output table: %w", err)
	}

	labelCounts := table.LabelCounts()
	run := models.Run{
		RunID:           uuid.NewString(),
		InputPath:       inputPath,
		InputSHA256:     inputHash,
		OutputPath:      outputPath,
		RowCount:        len(table.Rows),
		SkippedCount:    table.Skipped,
		BenignCount:     labelCounts[dataset.LabelBenign],
		MaliciousCount:  labelCounts[dataset.LabelMalicious],
		Workers:         cfg.Workers,
		DurationSeconds: time.Since(startTime).Seconds(),
	}

	// Run bookkeeping is best-effort: the output table is already on
	// disk, so store/manifest problems get a warning, not a failure.
	if database, dbErr := openDatabase(cfg); dbErr != nil {
		logger.Warn("Failed to open database, run not recorded", "error", dbErr)
	} else {
		defer database.Close()
		if err := database.InsertRun(run); err != nil {
			logger.Warn("Failed to record run", "run_id", run.RunID, "error", err)
		}
		if cfg.StoreRows {
			if err := database.InsertFeatureRows(run.RunID, urls, labels, records); err != nil {
				logger.Warn("Failed to store feature rows", "run_id", run.RunID, "error", err)
			}
		}
	}

	columns := append(append([]string{}, table.Columns...), models.FeatureColumns...)
	manifestPath, err := manifest.Generate(run, labelCounts, columns, &storage.Storage{})
	if err != nil {
		logger.Warn("Failed to write run manifest", "error", err)
		manifestPath = ""
	}

	finalOutput := FinalOutput{
		Status:       "success",
		RunID:        run.RunID,
		OutputPath:   outputPath,
		ManifestPath: manifestPath,
		Stats: Stats{
			TotalRows:        run.RowCount,
			Skipped:          run.SkippedCount,
			Benign:           run.BenignCount,
			Malicious:        run.MaliciousCount,
			TotalTimeSeconds: run.DurationSeconds,
		},
	}
	outputData, err := json.MarshalIndent(finalOutput, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal final output: %w", err)
	}
	fmt.Println(string(outputData))

	return nil
}

// openDatabase opens the run store at the configured path, falling
// back to the default location next to the binary.
func openDatabase(cfg *models.Config) (*db.DB, error) {
	if cfg.DBPath != "" {
		return db.OpenAt(cfg.DBPath)
	}
	return db.Open()
}

// defaultOutputPath derives <outputDir>/<input base>_processed.csv.
func defaultOutputPath(outputDir, inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, base+"_processed.csv")
}
