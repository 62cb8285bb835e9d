package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/matchrank"
)

func rankCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: matchrank rank <query> [file]")
	}
	query := c.Args().First()

	cfg, limit, err := loadSettings(c)
	if err != nil {
		return err
	}

	candidates, err := readCandidates(c.Args().Get(1))
	if err != nil {
		return err
	}

	ranked := matchrank.RankStrings(candidates, query, cfg)
	return printRanked(os.Stdout, ranked, limit, c.Bool("json"), c.Bool("verbose"))
}

func suggestCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: matchrank suggest <query> [file]")
	}
	query := c.Args().First()

	candidates, err := readCandidates(c.Args().Get(1))
	if err != nil {
		return err
	}

	suggestions := matchrank.Suggest(candidates, query, c.Int("limit"))
	if len(suggestions) == 0 {
		fmt.Println("no suggestions")
		return nil
	}
	for _, s := range suggestions {
		fmt.Printf("%.3f  %s\n", s.Similarity, s.Value)
	}
	return nil
}

// readCandidates reads newline-separated candidates from path, or stdin
// when path is empty or "-". Blank lines are skipped.
func readCandidates(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return lines, nil
}

// rankedOutput is the JSON shape for one ranked result.
type rankedOutput struct {
	Value         string  `json:"value"`
	Rank          string  `json:"rank"`
	Index         int     `json:"index,omitempty"`
	Length        int     `json:"length,omitempty"`
	Closeness     float64 `json:"closeness,omitempty"`
	LetterIndexes []int   `json:"letter_indexes,omitempty"`
}

func printRanked(w io.Writer, ranked []matchrank.Ranked[string], limit int, asJSON, verbose bool) error {
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	if asJSON {
		out := make([]rankedOutput, 0, len(ranked))
		for _, r := range ranked {
			out = append(out, rankedOutput{
				Value:         r.Item,
				Rank:          r.Info.Rank.String(),
				Index:         r.Info.Index,
				Length:        r.Info.Length,
				Closeness:     r.Info.Closeness,
				LetterIndexes: r.Info.LetterIndexes,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, r := range ranked {
		if verbose {
			fmt.Fprintf(w, "%-20s  %s\n", r.Info.Rank, describeMatch(r.Info))
			continue
		}
		fmt.Fprintln(w, r.Item)
	}
	return nil
}

// describeMatch renders the per-tier payload next to the value.
func describeMatch(info matchrank.RankingInfo) string {
	switch info.Rank {
	case matchrank.Contains, matchrank.WordStartsWith:
		return fmt.Sprintf("%s [at %d, len %d]", info.RankedValue, info.Index, info.Length)
	case matchrank.StartsWith:
		return fmt.Sprintf("%s [len %d]", info.RankedValue, info.Length)
	case matchrank.Matches:
		return fmt.Sprintf("%s [closeness %.4f]", info.RankedValue, info.Closeness)
	case matchrank.Acronym:
		return fmt.Sprintf("%s [letters %v]", info.RankedValue, info.LetterIndexes)
	default:
		return info.RankedValue
	}
}
