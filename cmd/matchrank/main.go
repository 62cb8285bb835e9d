package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/matchrank"
	"github.com/standardbeagle/matchrank/internal/config"
)

var Version = "0.3.0"

func main() {
	app := &cli.App{
		Name:                   "matchrank",
		Usage:                  "Rank candidate strings against a query by match quality",
		Version:                Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.FileName,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "rank",
				Usage:     "Rank lines from a file or stdin",
				ArgsUsage: "<query> [file]",
				Flags:     rankFlags(),
				Action:    rankCommand,
			},
			{
				Name:      "files",
				Usage:     "Rank file paths collected via glob patterns",
				ArgsUsage: "<query>",
				Flags: append(rankFlags(),
					&cli.StringSliceFlag{
						Name:    "glob",
						Aliases: []string{"g"},
						Usage:   "Collect files matching glob patterns (e.g., -g '**/*.go')",
					},
					&cli.StringFlag{
						Name:    "root",
						Aliases: []string{"r"},
						Usage:   "Directory to collect files under",
						Value:   ".",
					},
				),
				Action: filesCommand,
			},
			{
				Name:      "watch",
				Usage:     "Watch a candidates file and re-rank on every change",
				ArgsUsage: "<query> <file>",
				Flags:     rankFlags(),
				Action:    watchCommand,
			},
			{
				Name:      "suggest",
				Usage:     "Offer near-miss candidates by edit similarity",
				ArgsUsage: "<query> [file]",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum suggestions to print",
						Value:   5,
					},
				},
				Action: suggestCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "matchrank: %v\n", err)
		os.Exit(1)
	}
}

func rankFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "threshold",
			Aliases: []string{"t"},
			Usage:   "Minimum ranking tier to include (no-match, matches, acronym, contains, word-starts-with, starts-with, equal, case-sensitive-equal)",
		},
		&cli.BoolFlag{
			Name:  "keep-diacritics",
			Usage: "Match diacritics exactly instead of folding them",
		},
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"n"},
			Usage:   "Maximum results to print (0 = unlimited)",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Emit results as JSON",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Include match positions and closeness in output",
		},
	}
}

// loadSettings merges built-in defaults, the config file, and CLI flags
// into the effective ranking settings for a command.
func loadSettings(c *cli.Context) (matchrank.Config, int, error) {
	fileCfg, err := config.Load(c.String("config"))
	if err != nil {
		return matchrank.Config{}, 0, err
	}

	thresholdName := fileCfg.Rank.Threshold
	if c.IsSet("threshold") {
		thresholdName = c.String("threshold")
	}
	threshold, err := matchrank.ParseRanking(thresholdName)
	if err != nil {
		return matchrank.Config{}, 0, err
	}

	cfg := matchrank.Config{
		Threshold:      threshold,
		KeepDiacritics: fileCfg.Rank.KeepDiacritics,
	}
	if c.IsSet("keep-diacritics") {
		cfg.KeepDiacritics = c.Bool("keep-diacritics")
	}

	limit := fileCfg.Rank.Limit
	if c.IsSet("limit") {
		limit = c.Int("limit")
	}
	return cfg, limit, nil
}
