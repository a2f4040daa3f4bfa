package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yacobolo/scaledstyle"
	"github.com/yacobolo/scaledstyle/internal/sheet"
)

// ANSI palette. Lipgloss degrades these to what the terminal supports.
const (
	colorHeading   = lipgloss.Color("6")
	colorError     = lipgloss.Color("1")
	colorWarning   = lipgloss.Color("3")
	colorOK        = lipgloss.Color("2")
	colorMuted     = lipgloss.Color("8")
	colorLandscape = lipgloss.Color("5")
	colorPortrait  = lipgloss.Color("4")
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(colorHeading)
	styleKey     = lipgloss.NewStyle().Foreground(colorMuted)
	styleHint    = lipgloss.NewStyle().Italic(true).Foreground(colorMuted)

	// Resolved numbers stand out from strings and pairs.
	styleScaled = lipgloss.NewStyle().Foreground(colorOK)

	severityStyles = map[string]lipgloss.Style{
		sheet.SeverityError:   lipgloss.NewStyle().Bold(true).Foreground(colorError),
		sheet.SeverityWarning: lipgloss.NewStyle().Bold(true).Foreground(colorWarning),
		sheet.SeverityInfo:    lipgloss.NewStyle().Foreground(colorMuted),
	}

	orientationStyles = map[scaledstyle.Orientation]lipgloss.Style{
		scaledstyle.Landscape: lipgloss.NewStyle().Bold(true).Foreground(colorLandscape),
		scaledstyle.Portrait:  lipgloss.NewStyle().Bold(true).Foreground(colorPortrait),
	}
)

// severityStyle returns the style for an issue severity; unknown
// severities render muted.
func severityStyle(severity string) lipgloss.Style {
	if s, ok := severityStyles[severity]; ok {
		return s
	}
	return styleKey
}

func orientationStyle(o scaledstyle.Orientation) lipgloss.Style {
	return orientationStyles[o]
}

// summaryStyle colours the closing line by its worst outcome.
func summaryStyle(errors, warnings int) lipgloss.Style {
	switch {
	case errors > 0:
		return severityStyles[sheet.SeverityError]
	case warnings > 0:
		return severityStyles[sheet.SeverityWarning]
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(colorOK)
	}
}

// RenderStyle applies style to text when colors are enabled.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
