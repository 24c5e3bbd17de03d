package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/matzehuels/printgraph/pkg/printgraph"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - back-references
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

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
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// =============================================================================
// Terminal Detection
// =============================================================================

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// useColor resolves a --color mode against the destination writer.
// NO_COLOR disables auto mode only.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(w)
}

// =============================================================================
// Tree Styling
// =============================================================================

// treeStyle colors rendered tree text. Glyphs are dimmed, back-reference
// markers highlighted, and the @ address suffix shown in gray.
type treeStyle struct {
	indent  int // indent width the text was rendered with
	glyph   lipgloss.Style
	backRef lipgloss.Style
	name    lipgloss.Style
	addr    lipgloss.Style
}

// newTreeStyle builds styles bound to a renderer with the given profile.
// The profile is fixed rather than detected, so --color=always also colors
// piped output. indent must match the width the text was rendered with.
func newTreeStyle(w io.Writer, profile termenv.Profile, indent int) treeStyle {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return treeStyle{
		indent:  indent,
		glyph:   r.NewStyle().Foreground(colorDim),
		backRef: r.NewStyle().Foreground(colorYellow).Bold(true),
		name:    r.NewStyle().Foreground(colorWhite),
		addr:    r.NewStyle().Foreground(colorGray),
	}
}

// Render styles each line of a rendered tree. The visible text is unchanged.
func (s treeStyle) Render(text string) string {
	body, ok := strings.CutSuffix(text, "\n")
	if body == "" {
		return text
	}

	var b strings.Builder
	for i, line := range strings.Split(body, "\n") {
		if i > 0 {
			b.WriteByte('\n')
			b.WriteString(s.renderLine(line))
		} else {
			b.WriteString(s.renderLabel(line))
		}
	}
	if ok {
		b.WriteByte('\n')
	}
	return b.String()
}

// glyphEnd returns the byte offset just past the ancestor prefix, the
// branch glyph and its padding, or -1 if line is not a child line.
func (s treeStyle) glyphEnd(line string) int {
	prefix := len(line) - len(strings.TrimLeft(line, " "+printgraph.GlyphVertical))
	rest := line[prefix:]

	glyph := printgraph.GlyphBranch
	if !strings.HasPrefix(rest, glyph) {
		glyph = printgraph.GlyphLast
		if !strings.HasPrefix(rest, glyph) {
			return -1
		}
	}
	pad := strings.Repeat(" ", max(s.indent-3, 0))
	if !strings.HasPrefix(rest[len(glyph):], pad) {
		return -1
	}
	return prefix + len(glyph) + len(pad)
}

// renderLine styles a child line: prefix and glyph, optional back-reference
// marker, then the label.
func (s treeStyle) renderLine(line string) string {
	end := s.glyphEnd(line)
	if end < 0 {
		return s.renderLabel(line)
	}

	var b strings.Builder
	b.WriteString(s.glyph.Render(line[:end]))
	rest := line[end:]
	if after, found := strings.CutPrefix(rest, printgraph.MarkerBackRef+" "); found {
		b.WriteString(s.backRef.Render(printgraph.MarkerBackRef))
		b.WriteString(" ")
		rest = after
	}
	b.WriteString(s.renderLabel(rest))
	return b.String()
}

// renderLabel styles a node label and its address suffix.
func (s treeStyle) renderLabel(label string) string {
	if at := strings.LastIndex(label, " @ "); at >= 0 {
		return s.name.Render(label[:at]) + s.addr.Render(label[at:])
	}
	return s.name.Render(label)
}
