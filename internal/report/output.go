package report

import (
	"fmt"
	"io"
	"strings"
)

// OutputFormat selects how a report is written
type OutputFormat string

// Output formats
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
	OutputCSS  OutputFormat = "css"
)

// Formats lists the accepted format names, for flag help and completion
var Formats = []string{string(OutputText), string(OutputJSON), string(OutputYAML), string(OutputCSS)}

// ParseOutputFormat parses a format name
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	case "yaml", "yml":
		return OutputYAML, nil
	case "css":
		return OutputCSS, nil
	default:
		return OutputText, fmt.Errorf("unknown output format %q (want one of %s)", s, strings.Join(Formats, ", "))
	}
}

// DetermineOutputFormat selects the output format from the flag value.
// An invalid value falls back to text.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	format, err := ParseOutputFormat(formatFlag)
	if err != nil {
		return OutputText
	}
	return format
}

// WriteOutput writes the report in the specified format
func WriteOutput(w io.Writer, r *Report, format OutputFormat, config Config) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, r)
	case OutputYAML:
		return WriteYAML(w, r)
	case OutputCSS:
		return WriteCSS(w, r)
	default:
		reporter := NewReporter(w, config)
		reporter.PrintHeader(r)
		reporter.PrintTables(r)
		reporter.PrintIssues(r.Issues)
		reporter.PrintSummary(r)
		return nil
	}
}
