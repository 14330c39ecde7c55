package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"needs truncation", "hello world", 8, "hello w…"},
		{"unicode", "čćžšđ-tasks", 4, "čćž…"},
		{"zero max", "hello", 0, "hello"},
		{"one rune", "hello", 1, "h"},
		{"wide runes", "漢字漢字漢字", 5, "漢字…"},
		{"wide fits", "漢字", 4, "漢字"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxLen))
		})
	}
}

func TestPanel_Render(t *testing.T) {
	out := NewPanel("Title", "body line").Render()
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body line")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╯")
}

func TestPanel_Width(t *testing.T) {
	p := NewPanel("", "x").WithWidth(40).WithBorderColor(ColorSuccess)
	assert.Equal(t, 36, p.InnerWidth())

	for _, line := range strings.Split(p.Render(), "\n") {
		assert.Equal(t, 40, lipgloss.Width(line))
	}

	assert.Equal(t, 0, NewPanel("", "x").InnerWidth())
	assert.Equal(t, 1, NewPanel("", "x").WithWidth(3).InnerWidth())
}

func TestTruncate_WideRunesStayWithinCells(t *testing.T) {
	out := Truncate(strings.Repeat("漢", 40), 50)
	assert.LessOrEqual(t, lipgloss.Width(out), 50)
	assert.True(t, strings.HasSuffix(out, "…"))
}
