package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("99")  // Purple
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorMuted     = lipgloss.Color("238") // Dark gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorText      = lipgloss.Color("252") // White/Gray

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)
)

// Theme holds the accent-dependent styles of the task panel. It is rebuilt
// when the accent changes at runtime.
type Theme struct {
	Accent lipgloss.Color

	Title        lipgloss.Style
	Button       lipgloss.Style
	Chip         lipgloss.Style
	ChipActive   lipgloss.Style
	Check        lipgloss.Style
	RowText      lipgloss.Style
	RowDone      lipgloss.Style
	Cursor       lipgloss.Style
	EditMarker   lipgloss.Style
	Placeholder  lipgloss.Style
	Empty        lipgloss.Style
	Divider      lipgloss.Style
	Footer       lipgloss.Style
	ClearAction  lipgloss.Style
	Hint         lipgloss.Style
	BorderColor  lipgloss.Color
	FocusedColor lipgloss.Color
}

// NewTheme builds the panel styles around an ANSI or hex accent colour.
func NewTheme(accent string) Theme {
	a := lipgloss.Color(accent)
	if accent == "" {
		a = ColorPrimary
	}
	return Theme{
		Accent:      a,
		Title:       StyleTitle,
		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(a).Bold(true).Padding(0, 1),
		Chip:        StyleSubtle.Padding(0, 1),
		ChipActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(a).Bold(true).Padding(0, 1),
		Check:       StyleSuccess.Bold(true),
		RowText:     StyleText,
		RowDone:     lipgloss.NewStyle().Foreground(ColorMuted).Strikethrough(true),
		Cursor:      lipgloss.NewStyle().Foreground(a).Bold(true),
		EditMarker:  lipgloss.NewStyle().Foreground(a),
		Placeholder: StyleSubtle,
		Empty:       lipgloss.NewStyle().Foreground(ColorMuted),
		Divider:     lipgloss.NewStyle().Foreground(ColorMuted),
		Footer:      StyleSubtle,
		ClearAction: StyleError,
		Hint:        StyleSubtle.Italic(true),
		BorderColor: ColorMuted,
		// The panel border lights up while the composer has focus.
		FocusedColor: a,
	}
}
