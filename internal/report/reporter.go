package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yacobolo/scaledstyle"
	"github.com/yacobolo/scaledstyle/internal/sheet"
	"golang.org/x/term"
)

// Reporter handles formatting and outputting resolved tables as text
type Reporter struct {
	w         io.Writer
	useColors bool
	verbose   bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(config),
		verbose:   config.Verbose,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config Config) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintHeader outputs the environment the tables were resolved for
func (r *Reporter) PrintHeader(rep *Report) {
	fmt.Fprintf(r.w, "%s %s (%s), baseline %s, ratio %s horizontal / %s vertical\n",
		RenderStyle(styleHeading, "Screen", r.useColors),
		rep.Screen, rep.Device, rep.Baseline,
		formatFloat(rep.Ratio.Horizontal), formatFloat(rep.Ratio.Vertical))

	if r.verbose {
		fmt.Fprintf(r.w, "%s %d discovered, %d loaded, %d skipped\n",
			RenderStyle(styleKey, "Files", r.useColors),
			rep.Stats.FilesDiscovered, len(rep.Files), rep.Stats.FilesSkipped)
		for _, f := range rep.Files {
			fmt.Fprintf(r.w, "  %s\n", RenderStyle(styleHint, f, r.useColors))
		}
	}
}

// PrintTables outputs every resolved block, landscape overrides last
func (r *Reporter) PrintTables(rep *Report) {
	r.printTable(rep.Base, "")
	if len(rep.Landscape) > 0 {
		fmt.Fprintf(r.w, "\n%s\n", RenderStyle(orientationStyle(scaledstyle.Landscape), sheet.LandscapeKey, r.useColors))
		r.printTable(rep.Landscape, "  ")
	}
}

func (r *Reporter) printTable(t scaledstyle.Table, indent string) {
	for _, name := range blockNames(t) {
		fmt.Fprintf(r.w, "\n%s%s\n", indent, RenderStyle(styleHeading, name, r.useColors))
		r.printBlock(t[name], indent+"  ")
	}
}

func (r *Reporter) printBlock(b scaledstyle.Block, indent string) {
	keys := b.Keys()
	width := 0
	for _, k := range keys {
		width = max(width, runewidth.StringWidth(k))
	}
	for _, k := range keys {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(k))
		value := formatValue(b[k])
		if b[k].Kind() == scaledstyle.KindNumber {
			value = RenderStyle(styleScaled, value, r.useColors)
		}
		fmt.Fprintf(r.w, "%s%s%s  %s\n", indent, RenderStyle(styleKey, k, r.useColors), pad, value)
	}
}

// PrintIssues outputs issues sorted by file, block and key
func (r *Reporter) PrintIssues(issues []sheet.Issue) {
	if len(issues) == 0 {
		return
	}

	sorted := append([]sheet.Issue(nil), issues...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].File != sorted[j].File {
			return sorted[i].File < sorted[j].File
		}
		if sorted[i].Block != sorted[j].Block {
			return sorted[i].Block < sorted[j].Block
		}
		return sorted[i].Key < sorted[j].Key
	})

	fmt.Fprintln(r.w, "")
	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue as file:block.key: message (severity)
func (r *Reporter) printIssue(issue sheet.Issue) {
	location := issue.File
	if issue.Block != "" {
		block := issue.Block
		if issue.Landscape {
			block = sheet.LandscapeKey + "." + block
		}
		location += ":" + block
		if issue.Key != "" {
			location += "." + issue.Key
		}
	}
	location += ":"

	fmt.Fprintf(r.w, "%s %s %s\n",
		RenderStyle(styleHeading, location, r.useColors),
		issue.Text,
		RenderStyle(severityStyle(issue.Severity), "("+issue.Severity+")", r.useColors))
}

// PrintSummary outputs the block and issue counts
func (r *Reporter) PrintSummary(rep *Report) {
	errors, warnings := rep.Counts()
	blocks := pluralizeCount(len(rep.Base), "block", "blocks")
	files := pluralizeCount(len(rep.Files), "file", "files")

	line := fmt.Sprintf("%s resolved from %s", blocks, files)
	switch {
	case errors > 0:
		line += fmt.Sprintf(" (%s, %s)",
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	case warnings > 0:
		line += fmt.Sprintf(" (%s)", pluralizeCount(warnings, "warning", "warnings"))
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(summaryStyle(errors, warnings), line, r.useColors))
}

// PrintUpdate outputs one orientation change and the style in effect after it
func (r *Reporter) PrintUpdate(u scaledstyle.Update, style scaledstyle.Block, extra scaledstyle.Props) {
	animated := ""
	if u.Animated {
		animated = RenderStyle(styleHint, " (animated)", r.useColors)
	}
	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(orientationStyle(u.Orientation), u.Orientation.String(), r.useColors), u.Size, animated)
	r.printBlock(style, "  ")
	if len(extra) > 0 {
		keys := make([]string, 0, len(extra))
		for k := range extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(r.w, "  %s %v\n", RenderStyle(styleKey, "+"+k, r.useColors), extra[k])
		}
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
