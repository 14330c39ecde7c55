package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/taskpanel/internal/todo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func send(m TodoModel, msgs ...tea.Msg) TodoModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(TodoModel)
	}
	return m
}

func newTestModel(t *testing.T) TodoModel {
	t.Helper()
	return NewTodoModel(sampleController(t), TodoOptions{Title: "Tasks To Do", Width: 50, Accent: "99"})
}

func TestTodoModel_AddFromComposer(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, FocusComposer, m.Focus())

	m = send(m, runes("Walk the dog"))
	assert.Equal(t, "Walk the dog", m.Controller().Draft())

	m = send(m, press(tea.KeyEnter))
	tasks := m.Controller().Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "Walk the dog", tasks[2].Text)
	assert.Equal(t, "", m.Controller().Draft())
	assert.Equal(t, "", m.composer.Value())
}

func TestTodoModel_LongPasteKeepsFullText(t *testing.T) {
	long := strings.Repeat("a", 250)
	m := newTestModel(t)
	m = send(m, runes(long), press(tea.KeyEnter))

	tasks := m.Controller().Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, long, tasks[2].Text)
}

func TestTodoModel_EditKeepsLongText(t *testing.T) {
	long := strings.Repeat("b", 300)
	c, err := todo.New(todo.WithTasks(todo.Task{ID: "1", Text: long}))
	require.NoError(t, err)
	m := NewTodoModel(c, TodoOptions{Title: "Tasks To Do", Width: 50, Accent: "99"})

	m = send(m, press(tea.KeyEsc), runes("e"))
	require.Equal(t, FocusEdit, m.Focus())
	m = send(m, runes("!"), press(tea.KeyEnter))

	task, _ := m.Controller().Task("1")
	assert.Equal(t, long+"!", task.Text)
}

func TestTodoModel_BlankSubmitIsNoop(t *testing.T) {
	m := newTestModel(t)
	m = send(m, runes("   "), press(tea.KeyEnter))
	assert.Equal(t, 2, m.Controller().Len())
}

func TestTodoModel_ListNavigationAndToggle(t *testing.T) {
	m := newTestModel(t)
	m = send(m, press(tea.KeyTab))
	require.Equal(t, FocusList, m.Focus())

	m = send(m, runes("x"))
	task, _ := m.Controller().Task("1")
	assert.True(t, task.Completed)

	m = send(m, runes("j"), runes("j"))
	assert.Equal(t, 1, m.Cursor(), "cursor stops at the last row")

	m = send(m, runes("x"))
	task, _ = m.Controller().Task("2")
	assert.False(t, task.Completed)

	m = send(m, runes("k"))
	assert.Equal(t, 0, m.Cursor())
}

func TestTodoModel_EditFlow(t *testing.T) {
	m := newTestModel(t)
	m = send(m, press(tea.KeyEsc), runes("e"))
	require.Equal(t, FocusEdit, m.Focus())
	assert.Equal(t, "Buy groceries", m.editor.Value())

	m = send(m, runes(" today"), press(tea.KeyEnter))
	assert.Equal(t, FocusList, m.Focus())
	task, _ := m.Controller().Task("1")
	assert.Equal(t, "Buy groceries today", task.Text)
}

func TestTodoModel_EditEmptyStaysOpen(t *testing.T) {
	m := newTestModel(t)
	m = send(m, press(tea.KeyEsc), runes("e"))
	m.editor.SetValue("")
	m = send(m, press(tea.KeyEnter))

	assert.Equal(t, FocusEdit, m.Focus())
	_, editing := m.Controller().Editing()
	assert.True(t, editing)

	m = send(m, press(tea.KeyEsc))
	assert.Equal(t, FocusList, m.Focus())
	task, _ := m.Controller().Task("1")
	assert.Equal(t, "Buy groceries", task.Text)
}

func TestTodoModel_FiltersDeleteAndClear(t *testing.T) {
	m := newTestModel(t)
	m = send(m, press(tea.KeyTab))

	m = send(m, runes("3"))
	assert.Equal(t, todo.FilterCompleted, m.Controller().Filter())
	assert.Len(t, m.Controller().VisibleTasks(), 1)

	m = send(m, runes("l"))
	assert.Equal(t, todo.FilterAll, m.Controller().Filter())
	m = send(m, runes("h"))
	assert.Equal(t, todo.FilterCompleted, m.Controller().Filter())

	m = send(m, runes("1"), runes("j"), runes("d"))
	assert.Equal(t, 1, m.Controller().Len())
	assert.Equal(t, 0, m.Cursor(), "cursor clamps after delete")

	m = send(m, runes("x"), runes("c"))
	assert.Equal(t, 0, m.Controller().Len())
}

func TestTodoModel_ListKeysIgnoredWhileComposing(t *testing.T) {
	m := newTestModel(t)
	m = send(m, runes("d"), runes("q"))
	assert.Equal(t, 2, m.Controller().Len())
	assert.Equal(t, "dq", m.Controller().Draft())
}

func TestTodoModel_Quit(t *testing.T) {
	m := newTestModel(t)
	m = send(m, press(tea.KeyTab))
	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", next.View())

	m = newTestModel(t)
	_, cmd = m.Update(press(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTodoModel_ConfigReloadAndResize(t *testing.T) {
	m := newTestModel(t)
	m = send(m,
		MsgConfigReloaded{Title: "Errands", Accent: "212"},
		tea.WindowSizeMsg{Width: 40, Height: 20},
	)
	assert.Equal(t, 40, m.panelWidth())
	assert.Contains(t, m.View(), "Errands")

	m = send(m, tea.WindowSizeMsg{Width: 10, Height: 20})
	assert.Equal(t, MinPanelWidth, m.panelWidth())
}
