package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/Maxyme/gml-to-graphml/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleMemory  = lipgloss.NewStyle().Foreground(colorGreen)
	styleSpilled = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
	iconMemory  = "in memory"
	iconSpilled = "spooled"
)

// =============================================================================
// Status Output
// =============================================================================

// ui writes status lines.
type ui struct {
	w io.Writer
}

func (c *CLI) ui() ui {
	if c.quiet {
		return ui{w: io.Discard}
	}
	return ui{w: c.Out}
}

// interactive reports whether status lines go to a terminal, where a
// spinner can redraw its line.
func (u ui) interactive() bool {
	f, ok := u.w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func (u ui) println(s string) {
	fmt.Fprintln(u.w, s)
}

// success prints a success message.
func (u ui) success(format string, args ...any) {
	u.println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// error prints an error message.
func (u ui) error(format string, args ...any) {
	u.println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

// info prints an info/status message.
func (u ui) info(format string, args ...any) {
	u.println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// =============================================================================
// File Output
// =============================================================================

// file prints a file output line.
func (u ui) file(path string) {
	if path == stdio {
		path = "<stdout>"
	}
	u.println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Stats Display
// =============================================================================

// stats prints conversion statistics on a single line. For GraphML output
// it also shows where the body was buffered.
func (u ui) stats(r *pipeline.Result, to string) {
	parts := []string{
		fmt.Sprintf("%d nodes", r.Stats.NodeCount),
		fmt.Sprintf("%d edges", r.Stats.EdgeCount),
	}
	if r.Stats.KeyCount > 0 {
		parts = append(parts, fmt.Sprintf("%d keys", r.Stats.KeyCount))
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	if to == pipeline.FormatGraphML {
		status, statusStyle := iconMemory, styleMemory
		if r.Spilled {
			status, statusStyle = iconSpilled, styleSpilled
		}
		line += StyleDim.Render(" · ") + statusStyle.Render(status)
	}
	u.println(line)
}
