package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/scaledstyle"
	"github.com/yacobolo/scaledstyle/internal/sheet"
)

// JSONOutput represents the structured export schema shared by the JSON
// and YAML writers
type JSONOutput struct {
	Version   string            `json:"version" yaml:"version"`
	Timestamp string            `json:"timestamp" yaml:"timestamp"`
	Screen    JSONSize          `json:"screen" yaml:"screen"`
	Baseline  JSONSize          `json:"baseline" yaml:"baseline"`
	Device    string            `json:"device" yaml:"device"`
	Ratio     Ratio             `json:"ratio" yaml:"ratio"`
	Summary   JSONSummary       `json:"summary" yaml:"summary"`
	Files     []string          `json:"files" yaml:"files"`
	Blocks    scaledstyle.Table `json:"blocks" yaml:"blocks"`
	Landscape scaledstyle.Table `json:"landscape,omitempty" yaml:"landscape,omitempty"`
	Issues    []sheet.Issue     `json:"issues" yaml:"issues"`
}

// JSONSize is a screen or baseline size
type JSONSize struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	Blocks   int `json:"blocks" yaml:"blocks"`
	Files    int `json:"files" yaml:"files"`
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
}

// WriteJSON writes the report as JSON
func WriteJSON(w io.Writer, r *Report) error {
	output := buildOutput(r)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildOutput converts a Report to JSONOutput
func buildOutput(r *Report) JSONOutput {
	errors, warnings := r.Counts()

	files := r.Files
	if files == nil {
		files = []string{}
	}
	issues := r.Issues
	if issues == nil {
		issues = []sheet.Issue{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Screen:    JSONSize{Width: r.Screen.Width, Height: r.Screen.Height},
		Baseline:  JSONSize{Width: r.Baseline.Width, Height: r.Baseline.Height},
		Device:    r.Device.String(),
		Ratio:     r.Ratio,
		Summary: JSONSummary{
			Blocks:   len(r.Base),
			Files:    len(r.Files),
			Errors:   errors,
			Warnings: warnings,
		},
		Files:     files,
		Blocks:    r.Base,
		Landscape: r.Landscape,
		Issues:    issues,
	}
}
