package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// IsInteractive checks if both stdin and stdout are terminals.
// The panel falls back to a one-shot render when piping output or running
// in non-interactive environments.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Panel represents a styled panel with optional title and content.
type Panel struct {
	Title       string
	Content     string
	BorderColor lipgloss.Color
	TitleStyle  lipgloss.Style
	Width       int
}

// NewPanel creates a new panel with default styling.
func NewPanel(title, content string) *Panel {
	return &Panel{
		Title:       title,
		Content:     content,
		BorderColor: ColorSecondary,
		TitleStyle:  StyleTitle,
		Width:       0, // auto
	}
}

// WithBorderColor sets the border color and returns the panel.
func (p *Panel) WithBorderColor(color lipgloss.Color) *Panel {
	p.BorderColor = color
	return p
}

// WithWidth sets the outer panel width (border included) and returns the panel.
func (p *Panel) WithWidth(width int) *Panel {
	p.Width = width
	return p
}

// WithTitleStyle sets the title style and returns the panel.
func (p *Panel) WithTitleStyle(style lipgloss.Style) *Panel {
	p.TitleStyle = style
	return p
}

// InnerWidth returns the usable content width, or 0 when the panel sizes itself.
func (p *Panel) InnerWidth() int {
	if p.Width <= 0 {
		return 0
	}
	// Two border cells and one cell of padding per side.
	if w := p.Width - 4; w > 0 {
		return w
	}
	return 1
}

// Render returns the styled panel as a string.
func (p *Panel) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.BorderColor).
		Padding(0, 1)

	if w := p.InnerWidth(); w > 0 {
		// lipgloss widths include padding but not the border.
		style = style.Width(w + 2)
	}

	content := p.Content
	if p.Title != "" {
		content = p.TitleStyle.Render(p.Title) + "\n\n" + p.Content
	}
	return style.Render(content)
}

// Truncate shortens s to at most maxLen terminal cells, adding an ellipsis
// if needed. Wide runes count as two cells.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || ansi.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return ansi.Truncate(s, maxLen, "")
	}
	return ansi.Truncate(s, maxLen, "…")
}
