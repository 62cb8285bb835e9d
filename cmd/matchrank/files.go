package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/matchrank"
)

// filesCommand ranks file paths collected from glob patterns. The base
// name is the primary accessor; the full path is a secondary accessor
// capped at the Contains tier, so a file whose name matches always
// outranks one that only matches somewhere in its directory path.
func filesCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: matchrank files <query> -g <glob> [-g <glob>...]")
	}
	query := c.Args().First()

	globs := c.StringSlice("glob")
	if len(globs) == 0 {
		globs = []string{"**/*"}
	}

	cfg, limit, err := loadSettings(c)
	if err != nil {
		return err
	}

	paths, err := collectFiles(c.String("root"), globs)
	if err != nil {
		return err
	}

	accessors := []matchrank.Accessor[string]{
		matchrank.AccessorFunc(func(path string) string { return filepath.Base(path) }),
		{
			Get:        func(path string) []string { return []string{path} },
			MaxRanking: matchrank.RankingPtr(matchrank.Contains),
		},
	}

	ranked, err := matchrank.Rank(paths, query, accessors, cfg)
	if err != nil {
		return err
	}
	return printRanked(os.Stdout, ranked, limit, c.Bool("json"), c.Bool("verbose"))
}

// collectFiles gathers the deduplicated, sorted union of all glob matches
// under root, directories excluded.
func collectFiles(root string, globs []string) ([]string, error) {
	fsys := os.DirFS(root)

	seen := make(map[string]struct{})
	for _, glob := range globs {
		matches, err := doublestar.Glob(fsys, glob)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", glob, err)
		}
		for _, m := range matches {
			info, err := os.Stat(filepath.Join(root, m))
			if err != nil || info.IsDir() {
				continue
			}
			seen[m] = struct{}{}
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths, nil
}
