package report

import (
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette.
var (
	colorAccent  = lipgloss.Color("#06B6D4") // Cyan
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorDanger  = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

// styles are bound to the reporter's writer so that color is dropped when
// it is not a terminal.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	detail  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	command lipgloss.Style
	banner  lipgloss.Style
	tagline lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 4),
		label:   r.NewStyle().Bold(true),
		detail:  r.NewStyle().Foreground(colorMuted),
		success: r.NewStyle().Bold(true).Foreground(colorSuccess),
		failure: r.NewStyle().Bold(true).Foreground(colorDanger),
		command: r.NewStyle().Foreground(colorAccent),
		banner: r.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorAccent).
			Padding(0, 5),
		tagline: r.NewStyle().Faint(true),
	}
}

// DefaultWidth is assumed when the output is not a terminal and COLUMNS is unset.
const DefaultWidth = 80

// terminalWidth returns the column count of w if it is a terminal, then
// falls back to $COLUMNS and DefaultWidth.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				return width
			}
		}
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return DefaultWidth
}
