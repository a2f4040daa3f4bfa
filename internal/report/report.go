// Package report renders resolved style tables for the command line.
package report

import (
	"github.com/yacobolo/scaledstyle"
	"github.com/yacobolo/scaledstyle/internal/sheet"
)

// Report is a resolved sheet together with the environment it was
// resolved for.
type Report struct {
	Screen    scaledstyle.Size
	Baseline  scaledstyle.Size
	Device    scaledstyle.DeviceClass
	Ratio     Ratio
	Files     []string
	Stats     sheet.ScanStats
	Base      scaledstyle.Table
	Landscape scaledstyle.Table
	Issues    []sheet.Issue
}

// Ratio holds the per-axis scale factors.
type Ratio struct {
	Horizontal float64 `json:"horizontal" yaml:"horizontal"`
	Vertical   float64 `json:"vertical" yaml:"vertical"`
}

// Config controls text rendering
type Config struct {
	UseColors bool // force colors even without a TTY
	Verbose   bool // include scan statistics and the loaded file list
}

// New resolves the loaded sheet with e. result may be nil.
func New(e *scaledstyle.Engine, result *sheet.Result) *Report {
	cfg := e.Config()
	r := &Report{
		Screen:   cfg.Screen,
		Baseline: cfg.Baseline,
		Device:   cfg.Device,
		Ratio: Ratio{
			Horizontal: e.Ratio(scaledstyle.AxisHorizontal),
			Vertical:   e.Ratio(scaledstyle.AxisVertical),
		},
		Base:      scaledstyle.Table{},
		Landscape: scaledstyle.Table{},
	}
	if result == nil {
		return r
	}

	resolved := result.Sheet.Resolve(e)
	r.Files = result.Files
	r.Stats = result.Stats
	r.Base = resolved.Base
	r.Landscape = resolved.Landscape
	r.Issues = result.Issues
	return r
}

// Counts returns the number of error and warning issues.
func (r *Report) Counts() (errors, warnings int) {
	for _, issue := range r.Issues {
		switch issue.Severity {
		case sheet.SeverityError:
			errors++
		case sheet.SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
