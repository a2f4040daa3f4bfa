package sheet

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/yacobolo/scaledstyle"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Loader reads definition files into a single sheet.
type Loader struct {
	log   *zap.Logger
	rules *scaledstyle.Rules
}

// NewLoader creates a loader. A nil logger disables logging.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log.Named("loader")}
}

// WithRules enables per-file checks against rules.
func (l *Loader) WithRules(rules scaledstyle.Rules) *Loader {
	l.rules = &rules
	return l
}

// Result is the outcome of loading a set of patterns.
type Result struct {
	Sheet *Sheet
	Files []string // files that parsed successfully, in load order
	Stats ScanStats
	// Issues holds parse failures and, when rules are set, check findings
	Issues []Issue
}

// LoadFile parses one definition file, picking the format by extension.
func (l *Loader) LoadFile(path string) (*Sheet, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	l.log.Debug("Parsing definitions", zap.String("file", path), zap.Int("bytes", len(content)))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".css":
		return ParseCSS(string(content), path)
	case ".yaml", ".yml", ".json":
		return ParseYAML(content, path)
	default:
		return nil, fmt.Errorf("%s: unsupported definition format", path)
	}
}

// Load discovers and parses every file matching patterns. Files are merged
// in discovery order, so later files override earlier ones. A file that
// fails to parse is skipped; the returned error aggregates every failure
// and the result still holds what did load.
func (l *Loader) Load(patterns []string) (*Result, error) {
	files, stats, err := Discover(patterns)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	l.log.Debug("Discovered definition files",
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("accepted", stats.FilesAccepted),
		zap.Int("skipped", stats.FilesSkipped))

	// Parse concurrently, merge in discovery order
	type parsed struct {
		sheet *Sheet
		err   error
	}
	outcomes := make([]parsed, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		g.Go(func() error {
			s, err := l.LoadFile(file)
			outcomes[i] = parsed{sheet: s, err: err}
			return nil
		})
	}
	_ = g.Wait()

	result := &Result{Sheet: New(), Stats: stats}
	var errs error
	for i, file := range files {
		s, err := outcomes[i].sheet, outcomes[i].err
		if err != nil {
			l.log.Warn("Unable to load definitions", zap.String("file", file), zap.Error(err))
			errs = multierr.Append(errs, err)
			result.Issues = append(result.Issues, Issue{
				File:     file,
				Severity: SeverityError,
				Text:     fmt.Sprintf(IssueParseFailed, err),
			})
			continue
		}
		if l.rules != nil {
			result.Issues = append(result.Issues, Check(s, file, *l.rules)...)
		}
		if overlap := result.Sheet.Merge(s); len(overlap) > 0 {
			l.log.Debug("Blocks overridden by later file",
				zap.String("file", file), zap.Strings("blocks", overlap))
		}
		result.Files = append(result.Files, file)
	}

	return result, errs
}
