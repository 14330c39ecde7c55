package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/taskpanel/internal/logger"
	"github.com/josephgoksu/taskpanel/internal/todo"
)

// Focus is the part of the panel receiving key presses.
type Focus int

const (
	FocusComposer Focus = iota
	FocusList
	FocusEdit
)

func (f Focus) String() string {
	switch f {
	case FocusList:
		return "list"
	case FocusEdit:
		return "edit"
	default:
		return "composer"
	}
}

// MinPanelWidth is the narrowest panel drawn when the terminal shrinks.
const MinPanelWidth = 30

// KeyMap holds the panel's key bindings. Bindings that do not apply to the
// current focus are disabled so they neither match nor show in help.
type KeyMap struct {
	// composer
	Submit key.Binding
	Leave  key.Binding

	// edit row
	Save   key.Binding
	Cancel key.Binding

	// list
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Edit       key.Binding
	Delete     key.Binding
	PrevFilter key.Binding
	NextFilter key.Binding
	ShowAll    key.Binding
	ShowActive key.Binding
	ShowDone   key.Binding
	Clear      key.Binding
	Compose    key.Binding
	Help       key.Binding
	Quit       key.Binding

	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Leave:  key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("tab", "list")),

		Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done")),
		Edit:       key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:     key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		PrevFilter: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev filter")),
		NextFilter: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next filter")),
		ShowAll:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		ShowActive: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		ShowDone:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		Compose:    key.NewBinding(key.WithKeys("tab", "a", "i"), key.WithHelp("a", "new task")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k *KeyMap) setFocus(f Focus) {
	k.Submit.SetEnabled(f == FocusComposer)
	k.Leave.SetEnabled(f == FocusComposer)

	k.Save.SetEnabled(f == FocusEdit)
	k.Cancel.SetEnabled(f == FocusEdit)

	list := f == FocusList
	for _, b := range []*key.Binding{
		&k.Up, &k.Down, &k.Toggle, &k.Edit, &k.Delete, &k.PrevFilter, &k.NextFilter,
		&k.ShowAll, &k.ShowActive, &k.ShowDone, &k.Clear, &k.Compose, &k.Help, &k.Quit,
	} {
		b.SetEnabled(list)
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Submit, k.Leave, k.Save, k.Cancel,
		k.Toggle, k.Edit, k.Delete, k.NextFilter, k.Compose, k.Help, k.Quit,
		k.ForceQuit,
	}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Edit, k.Delete},
		{k.PrevFilter, k.NextFilter, k.ShowAll, k.ShowActive, k.ShowDone},
		{k.Clear, k.Compose, k.Help, k.Quit},
	}
}

// MsgConfigReloaded carries appearance settings re-read from the config file.
type MsgConfigReloaded struct {
	Title  string
	Accent string
}

// TodoOptions configures NewTodoModel.
type TodoOptions struct {
	Title  string
	Width  int
	Accent string
}

// TodoModel is the interactive task panel. Every key press maps to one
// controller call; the view is re-derived from the controller each frame.
type TodoModel struct {
	ctrl *todo.Controller

	composer textinput.Model
	editor   textinput.Model
	keys     KeyMap
	help     help.Model

	focus    Focus
	cursor   int
	title    string
	width    int // configured panel width
	maxWidth int // terminal width, 0 until known
	theme    Theme
	quitting bool
}

// NewTodoModel wires a controller into a panel model with the composer focused.
func NewTodoModel(ctrl *todo.Controller, opts TodoOptions) TodoModel {
	composer := textinput.New()
	composer.Placeholder = composerPlaceholder
	composer.Prompt = ""
	composer.CharLimit = 0
	composer.SetValue(ctrl.Draft())
	composer.Focus()

	editor := textinput.New()
	editor.Prompt = ""
	editor.CharLimit = 0

	m := TodoModel{
		ctrl:     ctrl,
		composer: composer,
		editor:   editor,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		title:    opts.Title,
		width:    opts.Width,
		theme:    NewTheme(opts.Accent),
	}
	m.setFocus(FocusComposer)
	return m
}

// NewTodoProgram returns a bubbletea program running the panel.
func NewTodoProgram(m TodoModel, opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(m, opts...)
}

// Controller exposes the underlying controller, mainly for tests and for
// printing the final state after the program exits.
func (m TodoModel) Controller() *todo.Controller { return m.ctrl }

// Focus returns which part of the panel has focus.
func (m TodoModel) Focus() Focus { return m.focus }

// Cursor returns the highlighted row in the visible list.
func (m TodoModel) Cursor() int { return m.cursor }

func (m TodoModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *TodoModel) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.keys.setFocus(f)

	var cmd tea.Cmd
	switch f {
	case FocusComposer:
		m.editor.Blur()
		cmd = m.composer.Focus()
	case FocusEdit:
		m.composer.Blur()
		cmd = m.editor.Focus()
	default:
		m.composer.Blur()
		m.editor.Blur()
	}
	return cmd
}

func (m TodoModel) selectedID() (string, bool) {
	visible := m.ctrl.VisibleTasks()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return "", false
	}
	return visible[m.cursor].ID, true
}

func (m *TodoModel) clampCursor() {
	n := len(m.ctrl.VisibleTasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// dispatch applies a named action to the controller and records it for
// diagnostics.
func (m *TodoModel) dispatch(cmd todo.Command) bool {
	logger.SetLastCommand(cmd.String())
	changed := m.ctrl.Apply(cmd)
	slog.Debug("panel action",
		"action", string(cmd.Action),
		"arg", cmd.Arg,
		"changed", changed,
		"tasks", m.ctrl.Len(),
		"remaining", m.ctrl.RemainingCount())
	m.clampCursor()
	return changed
}

func (m TodoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.maxWidth = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case MsgConfigReloaded:
		if msg.Title != "" {
			m.title = msg.Title
		}
		if msg.Accent != "" {
			m.theme = NewTheme(msg.Accent)
		}
		slog.Info("panel config reloaded", "title", m.title, "accent", msg.Accent)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.focus {
		case FocusComposer:
			return m.updateComposer(msg)
		case FocusEdit:
			return m.updateEdit(msg)
		default:
			return m.updateList(msg)
		}
	}

	// Cursor blink and other widget messages.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	cmds = append(cmds, cmd)
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m TodoModel) updateComposer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.ctrl.SetDraft(m.composer.Value())
		m.dispatch(todo.Command{Action: todo.ActionSubmit})
		m.composer.SetValue(m.ctrl.Draft())
		return m, nil
	case key.Matches(msg, m.keys.Leave):
		return m, m.setFocus(FocusList)
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	m.ctrl.SetDraft(m.composer.Value())
	return m, cmd
}

func (m TodoModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		m.ctrl.SetEditDraft(m.editor.Value())
		if m.dispatch(todo.Command{Action: todo.ActionSave}) {
			return m, m.setFocus(FocusList)
		}
		// Empty text: stay in edit mode.
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.dispatch(todo.Command{Action: todo.ActionCancel})
		return m, m.setFocus(FocusList)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.ctrl.SetEditDraft(m.editor.Value())
	return m, cmd
}

func (m TodoModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, k.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, k.Down):
		if m.cursor < len(m.ctrl.VisibleTasks())-1 {
			m.cursor++
		}
	case key.Matches(msg, k.Compose):
		return m, m.setFocus(FocusComposer)
	case key.Matches(msg, k.Toggle):
		if id, ok := m.selectedID(); ok {
			m.dispatch(todo.Command{Action: todo.ActionToggle, Arg: id})
		}
	case key.Matches(msg, k.Delete):
		if id, ok := m.selectedID(); ok {
			m.dispatch(todo.Command{Action: todo.ActionDelete, Arg: id})
		}
	case key.Matches(msg, k.Edit):
		if id, ok := m.selectedID(); ok && m.dispatch(todo.Command{Action: todo.ActionEdit, Arg: id}) {
			m.editor.SetValue(m.ctrl.EditDraft())
			m.editor.CursorEnd()
			return m, m.setFocus(FocusEdit)
		}
	case key.Matches(msg, k.Clear):
		m.dispatch(todo.Command{Action: todo.ActionClear})
	case key.Matches(msg, k.PrevFilter):
		m.setFilter(m.ctrl.Filter().Prev())
	case key.Matches(msg, k.NextFilter):
		m.setFilter(m.ctrl.Filter().Next())
	case key.Matches(msg, k.ShowAll):
		m.setFilter(todo.FilterAll)
	case key.Matches(msg, k.ShowActive):
		m.setFilter(todo.FilterActive)
	case key.Matches(msg, k.ShowDone):
		m.setFilter(todo.FilterCompleted)
	}
	return m, nil
}

func (m *TodoModel) setFilter(f todo.Filter) {
	if m.dispatch(todo.Command{Action: todo.ActionFilter, Arg: string(f)}) {
		m.cursor = 0
	}
}

func (m TodoModel) panelWidth() int {
	w := m.width
	if m.maxWidth > 0 && w > m.maxWidth {
		w = m.maxWidth
	}
	if w < MinPanelWidth {
		w = MinPanelWidth
	}
	return w
}

func (m TodoModel) View() string {
	if m.quitting {
		return ""
	}

	v := PanelView{
		Title:           m.title,
		Width:           m.panelWidth(),
		Theme:           m.theme,
		Cursor:          -1,
		ComposerFocused: m.focus == FocusComposer,
	}
	switch m.focus {
	case FocusComposer:
		v.Composer = m.composer.View()
	case FocusList:
		v.Cursor = m.cursor
	case FocusEdit:
		v.EditField = m.editor.View()
	}

	return fmt.Sprintf("%s\n%s\n", RenderTodoPanel(m.ctrl, v), m.help.View(m.keys))
}
