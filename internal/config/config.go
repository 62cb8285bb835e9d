// Package config loads optional CLI defaults from a .matchrank.kdl file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// FileName is the config file looked up in the working directory.
const FileName = ".matchrank.kdl"

// Config holds CLI defaults. Flags override config values; config values
// override the built-in defaults.
type Config struct {
	Rank  RankConfig
	Watch WatchConfig
}

// RankConfig configures the ranking commands.
type RankConfig struct {
	// Threshold is a ranking tier name ("matches", "starts-with", ...).
	Threshold string
	// KeepDiacritics disables diacritic folding.
	KeepDiacritics bool
	// Limit caps printed results; 0 means unlimited.
	Limit int
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	// DebounceMs coalesces bursts of file events.
	DebounceMs int
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Rank:  RankConfig{Threshold: "matches"},
		Watch: WatchConfig{DebounceMs: 200},
	}
}

// Load reads the config file at path, or path/.matchrank.kdl when path is
// a directory. A missing file yields the defaults; a malformed file is an
// error, not a silent fallback.
func Load(path string) (*Config, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, FileName)
	}

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func parse(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "rank":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "threshold":
					if s, ok := firstStringArg(cn); ok {
						cfg.Rank.Threshold = s
					}
				case "keep_diacritics":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Rank.KeepDiacritics = b
					}
				case "limit":
					if v, ok := firstIntArg(cn); ok {
						cfg.Rank.Limit = v
					}
				}
			}
		case "watch":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "debounce_ms":
					if v, ok := firstIntArg(cn); ok {
						cfg.Watch.DebounceMs = v
					}
				}
			}
		}
	}

	return cfg, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
