package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#ef4444"}).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"})
	headerStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"})
)

const (
	symSuccess = "✓" // checkmark
	symError   = "✗" // X mark
	symWarning = "!"
	symInfo    = "→" // arrow
)

// Output provides styled terminal output.
type Output struct {
	out   io.Writer
	err   io.Writer
	noTTY bool
}

// NewOutput creates a new styled output instance. Styling is dropped when
// out is not a terminal or NO_COLOR is set.
func NewOutput(out, err io.Writer) *Output {
	return &Output{
		out:   out,
		err:   err,
		noTTY: !IsTTY(out) || NoColor(),
	}
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NoColor reports whether the user opted out of colour (https://no-color.org).
func NoColor() bool {
	_, set := os.LookupEnv("NO_COLOR")
	return set
}

// Plain reports whether output is unstyled.
func (o *Output) Plain() bool {
	return o.noTTY
}

func (o *Output) line(w io.Writer, style lipgloss.Style, text string) {
	if o.noTTY {
		fmt.Fprintln(w, text)
		return
	}
	fmt.Fprintln(w, style.Render(text))
}

// Success prints a success message with checkmark.
func (o *Output) Success(msg string) {
	o.line(o.out, successStyle, symSuccess+" "+msg)
}

// Error prints an error message with X mark to stderr.
func (o *Output) Error(msg string) {
	o.line(o.err, errorStyle, symError+" "+msg)
}

// Warning prints a warning message to stderr.
func (o *Output) Warning(msg string) {
	o.line(o.err, warningStyle, symWarning+" "+msg)
}

// Info prints an info message with arrow.
func (o *Output) Info(msg string) {
	o.line(o.out, infoStyle, symInfo+" "+msg)
}

// Header prints a bold header.
func (o *Output) Header(text string) {
	o.line(o.out, headerStyle, text)
}

// Muted prints secondary text.
func (o *Output) Muted(text string) {
	o.line(o.out, mutedStyle, text)
}
