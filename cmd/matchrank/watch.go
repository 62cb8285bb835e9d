package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/matchrank"
	"github.com/standardbeagle/matchrank/internal/config"
)

// watchCommand re-ranks a candidates file every time it changes. Editors
// often emit several events per save, so writes are debounced before
// re-reading.
func watchCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("usage: matchrank watch <query> <file>")
	}
	query := c.Args().First()
	path := c.Args().Get(1)

	cfg, limit, err := loadSettings(c)
	if err != nil {
		return err
	}
	fileCfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	debounce := time.Duration(fileCfg.Watch.DebounceMs) * time.Millisecond

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: rename-and-replace saves
	// drop the watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	rerank := func() {
		candidates, err := readCandidates(path)
		if err != nil {
			log.Printf("read failed: %v", err)
			return
		}
		ranked := matchrank.RankStrings(candidates, query, cfg)
		fmt.Printf("-- %s (%d of %d pass)\n", time.Now().Format("15:04:05"), len(ranked), len(candidates))
		if err := printRanked(os.Stdout, ranked, limit, c.Bool("json"), c.Bool("verbose")); err != nil {
			log.Printf("print failed: %v", err)
		}
	}
	rerank()

	target := filepath.Clean(path)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var timer *time.Timer
	timerCh := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case timerCh <- struct{}{}:
				default:
				}
			})
		case <-timerCh:
			rerank()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		case <-sigCh:
			return nil
		}
	}
}
