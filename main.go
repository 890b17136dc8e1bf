package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	dbcmd "github.com/urlsift/urlsift/internal/db"
	"github.com/urlsift/urlsift/internal/extract"
	"github.com/urlsift/urlsift/internal/inspect"
	"github.com/urlsift/urlsift/internal/stats"
)

func main() {
	app := &cli.App{
		Name:  "urlsift",
		Usage: "lexical feature extraction for malicious-URL classification",
		Commands: []*cli.Command{
			{
				Name:   "extract",
				Usage:  "compute feature vectors for every row of a labeled url/label table",
				Action: extract.ExtractAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "input CSV with url and label columns",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output CSV path (default: <output_dir>/<input>_processed.csv)",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "number of extraction workers",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Value:   "config.yaml",
						Usage:   "config file path",
					},
					&cli.BoolFlag{
						Name:  "store-rows",
						Usage: "persist per-row feature vectors in the database",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "suppress progress bar and info logs",
					},
				},
			},
			{
				Name:   "inspect",
				Usage:  "analyze a single URL: feature vector plus risk breakdown",
				Action: inspect.InspectAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "url",
						Aliases:  []string{"u"},
						Usage:    "URL to inspect",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "json",
						Usage:   "output format: json or yaml",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Value:   "config.yaml",
						Usage:   "config file path",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "suppress info logs",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "aggregate per-label dataset statistics from a labeled table",
				Action: stats.StatsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "input CSV with url and label columns",
						Required: true,
					},
				},
			},
			{
				Name:  "db",
				Usage: "browse recorded runs and scan history",
				Subcommands: []*cli.Command{
					{
						Name:   "runs",
						Usage:  "list recorded extraction runs",
						Action: dbcmd.RunsAction,
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:    "limit",
								Aliases: []string{"n"},
								Value:   20,
								Usage:   "maximum number of runs to show",
							},
							&cli.StringFlag{
								Name:    "config",
								Aliases: []string{"c"},
								Value:   "config.yaml",
								Usage:   "config file path",
							},
						},
					},
					{
						Name:      "run",
						Usage:     "show one run in detail (latest when no id given)",
						ArgsUsage: "[run-id]",
						Action:    dbcmd.RunAction,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "config",
								Aliases: []string{"c"},
								Value:   "config.yaml",
								Usage:   "config file path",
							},
						},
					},
					{
						Name:   "scans",
						Usage:  "list recent single-URL inspections",
						Action: dbcmd.ScansAction,
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:    "limit",
								Aliases: []string{"n"},
								Value:   20,
								Usage:   "maximum number of scans to show",
							},
							&cli.StringFlag{
								Name:    "config",
								Aliases: []string{"c"},
								Value:   "config.yaml",
								Usage:   "config file path",
							},
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
