// Package ux provides styled terminal output for the statespace CLI.
package ux

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// River palette, water blues to reed greens
var (
	ColorWater   = lipgloss.Color("#3A86C8") // water blue - titles
	ColorShallow = lipgloss.Color("#5FB0E5") // shallow water - state rows
	ColorReed    = lipgloss.Color("#57A773") // reed green - success
	ColorSand    = lipgloss.Color("#C2A878") // sand - step numbers
	ColorAmber   = lipgloss.Color("#F4D03F") // amber - warnings
	ColorClay    = lipgloss.Color("#E74C3C") // clay red - errors
	ColorStone   = lipgloss.Color("#7D8A93") // stone grey - muted text
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title   lipgloss.Style
	State   lipgloss.Style
	Step    lipgloss.Style
	Move    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorWater),
	State:   lipgloss.NewStyle().Foreground(ColorShallow),
	Step:    lipgloss.NewStyle().Foreground(ColorSand),
	Move:    lipgloss.NewStyle().Foreground(ColorStone).Italic(true),
	Success: lipgloss.NewStyle().Foreground(ColorReed),
	Warning: lipgloss.NewStyle().Foreground(ColorAmber),
	Error:   lipgloss.NewStyle().Foreground(ColorClay),
	Muted:   lipgloss.NewStyle().Foreground(ColorStone),
}

// Icon provides themed status glyphs
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconArrow   Icon = "→"
	IconBoat    Icon = "⛵"
)

// Render returns the icon with its status styling.
func (i Icon) Render() string {
	switch i {
	case IconSuccess:
		return Styles.Success.Render(string(i))
	case IconWarning:
		return Styles.Warning.Render(string(i))
	case IconError:
		return Styles.Error.Render(string(i))
	default:
		return string(i)
	}
}

// Plain forces monochrome output. Styles keep their layout but render
// without escape codes.
func Plain() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// AutoDetect switches to monochrome when stdout is not a terminal, so
// piped output stays clean.
func AutoDetect() {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		Plain()
	}
}

// Title renders a styled headline.
func Title(text string) string {
	return Styles.Title.Render(text)
}

// PathView renders a numbered solution path, one state per line under an
// optional header. When moves holds one caption per step (len(states)-1
// entries), each state after the first is annotated with the move that
// produced it.
func PathView(header string, states, moves []string) string {
	var b strings.Builder
	if header != "" {
		b.WriteString(Styles.Title.Render(header))
		b.WriteByte('\n')
	}
	width := len(fmt.Sprint(len(states) - 1))
	captioned := len(moves) == len(states)-1
	for i, s := range states {
		b.WriteString(Styles.Step.Render(fmt.Sprintf("%*d:", width, i)))
		b.WriteByte(' ')
		b.WriteString(Styles.State.Render(s))
		if i > 0 && captioned && moves[i-1] != "" {
			b.WriteString("  ")
			b.WriteString(Styles.Move.Render(moves[i-1]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// StateList renders states one per line without numbering, for views
// that show a filtered slice of a path.
func StateList(header string, states []string) string {
	var b strings.Builder
	if header != "" {
		b.WriteString(Styles.Title.Render(header))
		b.WriteByte('\n')
	}
	for _, s := range states {
		b.WriteString(Styles.State.Render(s))
		b.WriteByte('\n')
	}
	return b.String()
}

// Solution renders the outcome banner for a finished check.
func Solution(found bool, states int) string {
	if found {
		text := fmt.Sprintf("solution found: %d states", states)
		return fmt.Sprintf("%s %s", IconSuccess.Render(), Styles.Success.Render(text))
	}
	return fmt.Sprintf("%s %s", IconWarning.Render(), Styles.Warning.Render("no solution"))
}

// Statline renders muted run statistics.
func Statline(text string) string {
	return Styles.Muted.Render(text)
}

// Errorf prints a styled error line to stderr.
func Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s %s\n", IconError.Render(), Styles.Error.Render(msg))
}
