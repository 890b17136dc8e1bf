package inspect

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/urlsift/urlsift/internal/common"
	"github.com/urlsift/urlsift/models"
	"github.com/urlsift/urlsift/pkg/db"
	"github.com/urlsift/urlsift/pkg/features"
	"github.com/urlsift/urlsift/pkg/risk"
	"gopkg.in/yaml.v3"
)

// InspectAction analyzes a single URL: the feature vector the batch
// pipeline would compute plus the heuristic risk breakdown. The
// inspection is recorded in the scan history keyed by a hash of the
// URL, so repeat inspections refresh rather than duplicate.
func InspectAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	rawURL := c.String("url")
	format := c.String("format")
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unknown format %q, want json or yaml", format)
	}

	report := buildReport(rawURL)

	// Scan history is best-effort: the report is the product, the
	// history row is bookkeeping.
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if database, dbErr := openDatabase(cfg); dbErr != nil {
		logger.Warn("Failed to open database, scan not recorded", "error", dbErr)
	} else {
		defer database.Close()
		scan := models.Scan{
			ScanID:    common.ContentHash([]byte(rawURL)),
			URL:       rawURL,
			RiskScore: report.RiskScore,
			UseOfIP:   report.Features.UseOfIP,
			ShortURL:  report.Features.ShortURL,
		}
		if err := database.RecordScan(scan); err != nil {
			logger.Warn("Failed to record scan", "scan_id", scan.ScanID, "error", err)
		}
	}

	var out []byte
	if format == "yaml" {
		out, err = yaml.Marshal(report)
	} else {
		out, err = json.MarshalIndent(report, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Println(string(out))

	return nil
}

// buildReport runs both analysis passes over one URL.
func buildReport(rawURL string) Report {
	analysis := risk.Analyze(rawURL)
	score, factors := risk.Score(analysis)

	return Report{
		URL:       rawURL,
		Features:  features.Extract(rawURL),
		RiskScore: score,
		RiskLevel: riskLevel(score),
		Factors:   factors,
		Analysis:  analysis,
		Insights:  risk.BuildInsights(analysis),
	}
}

// riskLevel buckets a [0,1] score into the label shown to reviewers.
func riskLevel(score float64) string {
	switch {
	case score >= 0.7:
		return "high"
	case score >= 0.4:
		return "medium"
	default:
		return "low"
	}
}

func openDatabase(cfg *models.Config) (*db.DB, error) {
	if cfg.DBPath != "" {
		return db.OpenAt(cfg.DBPath)
	}
	return db.Open()
}
