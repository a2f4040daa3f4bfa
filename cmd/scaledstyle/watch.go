package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yacobolo/scaledstyle/internal/sheet"
	"go.uber.org/zap"
)

// watchDebounce collapses bursts of editor writes into one re-resolve
const watchDebounce = 150 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [files...]",
	Short: "Re-resolve definition files whenever they change",
	Long: `Resolve definition files once, then watch their directories and print
a fresh result after every change until interrupted.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	includes := buildIncludes(args)
	render := func() error {
		rep, _, err := buildReport(log, includes)
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), rep)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dirs, err := watchDirs(includes)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			log.Warn("Unable to watch directory", zap.String("dir", dir), zap.Error(err))
			continue
		}
		log.Debug("Watching directory", zap.String("dir", dir))
	}

	if err := render(); err != nil {
		return err
	}
	return watchLoop(ctx, log, watcher, render)
}

// watchLoop re-renders after relevant file events settle. It returns when
// ctx is done or the watcher closes.
func watchLoop(ctx context.Context, log *zap.Logger, watcher *fsnotify.Watcher, render func() error) error {
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			log.Debug("Watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !sheet.Supported(event.Name) || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) {
				continue
			}
			log.Debug("Definition file changed", zap.String("file", event.Name), zap.Stringer("op", event.Op))
			pending = time.After(watchDebounce)

		case <-pending:
			pending = nil
			if err := render(); err != nil {
				log.Error("Re-resolve failed", zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error", zap.Error(err))
		}
	}
}

// watchDirs returns the existing directories that can hold files matching
// patterns: the static prefix of each pattern and the directory of every
// file it currently matches.
func watchDirs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if seen[dir] {
			return
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}

	for _, pattern := range patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
		add(filepath.FromSlash(base))
	}

	files, _, err := sheet.Discover(patterns)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	for _, f := range files {
		add(filepath.Dir(f))
	}
	return dirs, nil
}
