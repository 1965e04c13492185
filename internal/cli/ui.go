package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// styleTitle for main headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleValue for data values.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// styleNumber for numeric values.
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleSuccess for success messages.
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// styleWarning for warning messages.
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// printTitle prints a bold section heading.
func printTitle(format string, args ...any) {
	fmt.Println(styleTitle.Render(fmt.Sprintf(format, args...)))
}

// printCount prints a "label: n" line with the number highlighted.
func printCount(label string, n int) {
	fmt.Printf("%s %s\n", styleDim.Render(label+":"), styleNumber.Render(fmt.Sprint(n)))
}

// printItem prints an indented list item with an optional dim annotation.
func printItem(value, note string) {
	if note == "" {
		fmt.Printf("  %s\n", styleValue.Render(value))
		return
	}
	fmt.Printf("  %s %s\n", styleValue.Render(value), styleDim.Render(note))
}
