package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/taskpanel/internal/todo"
)

const (
	composerPlaceholder = "Add a new task..."
	emptyListText       = "No tasks here"
	clearCompletedText  = "Clear completed"
)

// PanelView carries the presentation-only inputs of RenderTodoPanel.
type PanelView struct {
	Title string
	Width int
	Theme Theme

	// Cursor is the highlighted row in the visible list, or -1.
	Cursor int

	// Composer and EditField replace the plain draft text with a live
	// input widget when non-empty.
	Composer        string
	EditField       string
	ComposerFocused bool
}

// RenderTodoPanel draws the whole task panel from the controller state:
// title, composer, filter chips, the visible rows and the footer.
func RenderTodoPanel(c *todo.Controller, v PanelView) string {
	panel := NewPanel(v.Title, "").
		WithWidth(v.Width).
		WithTitleStyle(v.Theme.Title)
	if v.ComposerFocused {
		panel.WithBorderColor(v.Theme.FocusedColor)
	} else {
		panel.WithBorderColor(v.Theme.BorderColor)
	}
	inner := panel.InnerWidth()

	sections := []string{
		renderComposer(c, v),
		renderChips(c.Filter(), v.Theme),
		divider(inner, v.Theme),
		renderRows(c, v, inner),
		divider(inner, v.Theme),
		renderFooter(c, v.Theme, inner),
	}
	panel.Content = strings.Join(sections, "\n")
	return panel.Render()
}

func renderComposer(c *todo.Controller, v PanelView) string {
	field := v.Composer
	if field == "" {
		if c.Draft() != "" {
			field = v.Theme.RowText.Render(c.Draft())
		} else {
			field = v.Theme.Placeholder.Render(composerPlaceholder)
		}
	}
	return field + "  " + v.Theme.Button.Render("+ Add") + "\n"
}

func renderChips(active todo.Filter, theme Theme) string {
	chips := make([]string, 0, 3)
	for _, f := range todo.Filters() {
		style := theme.Chip
		if f == active {
			style = theme.ChipActive
		}
		chips = append(chips, style.Render(string(f)))
	}
	return strings.Join(chips, " ")
}

func divider(width int, theme Theme) string {
	if width <= 0 {
		width = 40
	}
	return theme.Divider.Render(strings.Repeat("─", width))
}

func renderRows(c *todo.Controller, v PanelView, width int) string {
	visible := c.VisibleTasks()
	if len(visible) == 0 {
		text := emptyListText
		if width > 0 {
			return v.Theme.Empty.Width(width).Align(lipgloss.Center).Render(text)
		}
		return v.Theme.Empty.Render(text)
	}

	editingID, editing := c.Editing()
	rows := make([]string, 0, len(visible))
	for i, t := range visible {
		prefix := "  "
		if i == v.Cursor {
			prefix = v.Theme.Cursor.Render("▸ ")
		}

		if editing && t.ID == editingID {
			field := v.EditField
			if field == "" {
				field = v.Theme.RowText.Render(c.EditDraft())
			}
			rows = append(rows, prefix+v.Theme.EditMarker.Render("✎ ")+field)
			rows = append(rows, "    "+v.Theme.Hint.Render("enter save • esc cancel"))
			continue
		}

		box := "[ ]"
		text := t.Text
		if width > 0 {
			// prefix(2) + box(3) + space(1)
			text = Truncate(text, width-6)
		}
		if t.Completed {
			box = v.Theme.Check.Render("[✓]")
			text = v.Theme.RowDone.Render(text)
		} else {
			text = v.Theme.RowText.Render(text)
		}
		rows = append(rows, prefix+box+" "+text)
	}
	return strings.Join(rows, "\n")
}

func renderFooter(c *todo.Controller, theme Theme, width int) string {
	left := theme.Footer.Render(RemainingLabel(c.RemainingCount()))
	if !c.HasCompleted() {
		return left
	}
	right := theme.ClearAction.Render(clearCompletedText)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// RemainingLabel formats the footer counter, e.g. "1 task left".
func RemainingLabel(n int) string {
	if n == 1 {
		return "1 task left"
	}
	return fmt.Sprintf("%d tasks left", n)
}
