package db

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/urlsift/urlsift/models"
	"github.com/urlsift/urlsift/pkg/db"
)

// openDatabase opens the store at the configured path, falling back to
// the default location next to the binary.
func openDatabase(c *cli.Context) (*db.DB, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DBPath != "" {
		return db.OpenAt(cfg.DBPath)
	}
	return db.Open()
}

// getRunIDOrLatest resolves the run id argument, defaulting to the
// newest recorded run when none is given.
func getRunIDOrLatest(c *cli.Context, database *db.DB) (string, error) {
	if c.Args().Len() > 0 {
		return c.Args().First(), nil
	}
	return database.LatestRunID()
}

// truncate shortens long cell values for table display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
