// Package todo holds the in-memory task list and the transient state of the
// panel that edits it. Every operation is synchronous and total: invalid
// input is a no-op reported through a bool, never an error.
package todo

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// maxIDDraws bounds how often a colliding generator is retried before
// falling back to a random UUID.
const maxIDDraws = 16

// IDGenerator yields candidate task ids.
type IDGenerator func() string

// UUIDs generates random v4 UUIDs.
func UUIDs() IDGenerator {
	return uuid.NewString
}

// Sequence generates "start", "start+1", ... as decimal strings.
func Sequence(start int) IDGenerator {
	next := start
	return func() string {
		id := strconv.Itoa(next)
		next++
		return id
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithTasks seeds the list. Seeds are validated by New.
func WithTasks(tasks ...Task) Option {
	return func(c *Controller) {
		c.tasks = append(c.tasks, tasks...)
	}
}

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(c *Controller) {
		if gen != nil {
			c.nextID = gen
		}
	}
}

// WithFilter sets the initial filter. Invalid filters are ignored.
func WithFilter(f Filter) Option {
	return func(c *Controller) {
		if f.Valid() {
			c.filter = f
		}
	}
}

// SampleTasks returns the two tasks a fresh panel starts with.
func SampleTasks() []Task {
	return []Task{
		{ID: "1", Text: "Buy groceries", Completed: false},
		{ID: "2", Text: "Read a book", Completed: true},
	}
}

// Controller owns the task list and the panel's transient state.
// It is not safe for concurrent use.
type Controller struct {
	tasks  []Task
	nextID IDGenerator

	draft  string
	filter Filter

	editingID string
	editDraft string
}

// New builds a Controller. It fails only when seeded tasks are invalid.
func New(opts ...Option) (*Controller, error) {
	c := &Controller{
		nextID: UUIDs(),
		filter: FilterAll,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := validateSeed(c.tasks); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Controller) indexOf(id string) int {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Controller) freshID() string {
	for range maxIDDraws {
		id := c.nextID()
		if id != "" && c.indexOf(id) < 0 {
			return id
		}
	}
	return uuid.NewString()
}

// Draft returns the uncommitted composer text.
func (c *Controller) Draft() string { return c.draft }

// SetDraft replaces the composer text.
func (c *Controller) SetDraft(s string) { c.draft = s }

// Add appends a task built from text and clears the draft.
// Whitespace-only text changes nothing.
func (c *Controller) Add(text string) (Task, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Task{}, false
	}
	t := Task{ID: c.freshID(), Text: trimmed}
	c.tasks = append(c.tasks, t)
	c.draft = ""
	return t, true
}

// Submit adds the current draft.
func (c *Controller) Submit() (Task, bool) {
	return c.Add(c.draft)
}

// Delete removes the task with id. Deleting the task being edited also
// closes edit mode.
func (c *Controller) Delete(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
	if c.editingID == id {
		c.CancelEdit()
	}
	return true
}

// ToggleCompleted flips the completed flag of the task with id.
func (c *Controller) ToggleCompleted(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.tasks[i].Completed = !c.tasks[i].Completed
	return true
}

// BeginEdit puts the task with id in edit mode, seeding the edit draft with
// its text. Any other uncommitted edit is dropped.
func (c *Controller) BeginEdit(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.editingID = id
	c.editDraft = c.tasks[i].Text
	return true
}

// Editing returns the id of the task in edit mode.
func (c *Controller) Editing() (string, bool) {
	return c.editingID, c.editingID != ""
}

// EditDraft returns the uncommitted edit text.
func (c *Controller) EditDraft() string { return c.editDraft }

// SetEditDraft replaces the edit text. It is ignored outside edit mode.
func (c *Controller) SetEditDraft(s string) {
	if c.editingID != "" {
		c.editDraft = s
	}
}

// CommitEdit saves the edit draft into the task with id and leaves edit
// mode. An empty draft keeps edit mode open and changes nothing.
func (c *Controller) CommitEdit(id string) bool {
	if id == "" || id != c.editingID {
		return false
	}
	trimmed := strings.TrimSpace(c.editDraft)
	if trimmed == "" {
		return false
	}
	if i := c.indexOf(id); i >= 0 {
		c.tasks[i].Text = trimmed
	}
	c.CancelEdit()
	return true
}

// CancelEdit leaves edit mode without touching the task.
func (c *Controller) CancelEdit() {
	c.editingID = ""
	c.editDraft = ""
}

// ClearCompleted removes every completed task and returns how many went.
func (c *Controller) ClearCompleted() int {
	kept := c.tasks[:0]
	removed := 0
	for _, t := range c.tasks {
		if t.Completed {
			removed++
			if t.ID == c.editingID {
				c.CancelEdit()
			}
			continue
		}
		kept = append(kept, t)
	}
	c.tasks = kept
	return removed
}

// Filter returns the active filter.
func (c *Controller) Filter() Filter { return c.filter }

// SetFilter changes the active filter. Unknown values are rejected.
func (c *Controller) SetFilter(f Filter) bool {
	if !f.Valid() {
		return false
	}
	c.filter = f
	return true
}

// VisibleTasks returns the tasks matching the active filter in list order.
func (c *Controller) VisibleTasks() []Task {
	out := make([]Task, 0, len(c.tasks))
	for _, t := range c.tasks {
		if c.filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// RemainingCount returns the number of tasks not yet completed.
func (c *Controller) RemainingCount() int {
	n := 0
	for _, t := range c.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// HasCompleted reports whether any task is completed.
func (c *Controller) HasCompleted() bool {
	return c.RemainingCount() < len(c.tasks)
}

// Tasks returns a copy of the whole list.
func (c *Controller) Tasks() []Task {
	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Task looks up a task by id.
func (c *Controller) Task(id string) (Task, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.tasks[i], true
	}
	return Task{}, false
}

// Len returns the number of tasks.
func (c *Controller) Len() int { return len(c.tasks) }
