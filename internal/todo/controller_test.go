package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSampleController(t *testing.T) *Controller {
	t.Helper()
	c, err := New(WithTasks(SampleTasks()...), WithIDGenerator(Sequence(1)))
	require.NoError(t, err)
	return c
}

func TestNew_Defaults(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, FilterAll, c.Filter())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.VisibleTasks())
	_, editing := c.Editing()
	assert.False(t, editing)
}

func TestNew_InvalidSeeds(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
	}{
		{name: "empty id", tasks: []Task{{ID: "", Text: "x"}}},
		{name: "blank text", tasks: []Task{{ID: "1", Text: "   "}}},
		{name: "duplicate id", tasks: []Task{{ID: "1", Text: "a"}, {ID: "1", Text: "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(WithTasks(tt.tasks...))
			assert.Error(t, err)
		})
	}
}

func TestNew_TrimsSeedText(t *testing.T) {
	c, err := New(WithTasks(Task{ID: "a", Text: "  padded  "}))
	require.NoError(t, err)
	got, ok := c.Task("a")
	require.True(t, ok)
	assert.Equal(t, "padded", got.Text)
}

func TestAdd(t *testing.T) {
	c := newSampleController(t)
	c.SetDraft("  Walk the dog ")

	task, ok := c.Submit()
	require.True(t, ok)
	assert.Equal(t, "Walk the dog", task.Text)
	assert.False(t, task.Completed)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "", c.Draft(), "draft is cleared after a successful add")

	all := c.Tasks()
	assert.Equal(t, task, all[len(all)-1], "new task is appended at the end")
}

func TestAdd_RejectsBlank(t *testing.T) {
	c := newSampleController(t)
	for _, text := range []string{"", " ", "\t\n  "} {
		c.SetDraft(text)
		_, ok := c.Add(text)
		assert.False(t, ok)
		assert.Equal(t, 2, c.Len())
		assert.Equal(t, text, c.Draft(), "a rejected add keeps the draft")
	}
}

func TestAdd_UniqueIDs(t *testing.T) {
	// Sequence(1) collides with the seeded ids "1" and "2".
	c := newSampleController(t)
	task, ok := c.Add("third")
	require.True(t, ok)
	assert.Equal(t, "3", task.ID)

	constant := func() string { return "1" }
	c2, err := New(WithTasks(SampleTasks()...), WithIDGenerator(constant))
	require.NoError(t, err)
	a, _ := c2.Add("a")
	b, _ := c2.Add("b")
	assert.NotEqual(t, "1", a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	seen := map[string]bool{}
	for _, task := range c2.Tasks() {
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestDelete(t *testing.T) {
	c := newSampleController(t)
	assert.True(t, c.Delete("1"))
	assert.Equal(t, 1, c.Len())

	assert.False(t, c.Delete("1"), "second delete is a no-op")
	assert.Equal(t, 1, c.Len())

	assert.False(t, c.Delete("missing"))
}

func TestDelete_ClosesEditOfDeletedTask(t *testing.T) {
	c := newSampleController(t)
	require.True(t, c.BeginEdit("1"))
	c.Delete("1")
	_, editing := c.Editing()
	assert.False(t, editing)
}

func TestToggleCompleted_IsItsOwnInverse(t *testing.T) {
	c := newSampleController(t)
	before, _ := c.Task("1")

	assert.True(t, c.ToggleCompleted("1"))
	mid, _ := c.Task("1")
	assert.NotEqual(t, before.Completed, mid.Completed)

	assert.True(t, c.ToggleCompleted("1"))
	after, _ := c.Task("1")
	assert.Equal(t, before, after)

	assert.False(t, c.ToggleCompleted("nope"))
}

func TestEdit_Commit(t *testing.T) {
	c := newSampleController(t)
	require.True(t, c.BeginEdit("1"))
	assert.Equal(t, "Buy groceries", c.EditDraft())

	c.SetEditDraft("  Buy oat milk ")
	assert.True(t, c.CommitEdit("1"))

	got, _ := c.Task("1")
	assert.Equal(t, "Buy oat milk", got.Text)
	_, editing := c.Editing()
	assert.False(t, editing)
}

func TestEdit_CommitEmptyStaysInEditMode(t *testing.T) {
	c := newSampleController(t)
	require.True(t, c.BeginEdit("1"))
	c.SetEditDraft("   ")

	assert.False(t, c.CommitEdit("1"))

	id, editing := c.Editing()
	assert.True(t, editing)
	assert.Equal(t, "1", id)
	got, _ := c.Task("1")
	assert.Equal(t, "Buy groceries", got.Text)
}

func TestEdit_BeginOnAnotherAbandonsPrevious(t *testing.T) {
	c := newSampleController(t)
	require.True(t, c.BeginEdit("1"))
	c.SetEditDraft("unsaved change")

	require.True(t, c.BeginEdit("2"))
	assert.Equal(t, "Read a book", c.EditDraft())

	first, _ := c.Task("1")
	assert.Equal(t, "Buy groceries", first.Text)

	assert.False(t, c.CommitEdit("1"), "only the task in edit mode can be committed")
}

func TestEdit_Cancel(t *testing.T) {
	c := newSampleController(t)
	require.True(t, c.BeginEdit("2"))
	c.SetEditDraft("changed")
	c.CancelEdit()

	_, editing := c.Editing()
	assert.False(t, editing)
	got, _ := c.Task("2")
	assert.Equal(t, "Read a book", got.Text)
}

func TestEdit_UnknownIDIsNoop(t *testing.T) {
	c := newSampleController(t)
	assert.False(t, c.BeginEdit("missing"))
	_, editing := c.Editing()
	assert.False(t, editing)

	c.SetEditDraft("ignored")
	assert.Equal(t, "", c.EditDraft())
}

func TestClearCompleted(t *testing.T) {
	c := newSampleController(t)
	c.Add("another")
	c.ToggleCompleted("3")

	assert.Equal(t, 2, c.ClearCompleted())
	for _, task := range c.Tasks() {
		assert.False(t, task.Completed)
	}
	assert.False(t, c.HasCompleted())
	assert.Equal(t, 0, c.ClearCompleted())
}

func TestSetFilter_RejectsUnknown(t *testing.T) {
	c := newSampleController(t)
	require.True(t, c.SetFilter(FilterActive))
	assert.False(t, c.SetFilter(Filter("Someday")))
	assert.Equal(t, FilterActive, c.Filter())
}

func TestVisibleTasks(t *testing.T) {
	c := newSampleController(t)
	c.Add("c")
	c.Add("d")
	c.ToggleCompleted("4")
	// 1 active, 2 done, 3 active, 4 done

	require.True(t, c.SetFilter(FilterActive))
	assert.Equal(t, []string{"1", "3"}, ids(c.VisibleTasks()))
	assert.Equal(t, c.RemainingCount(), len(c.VisibleTasks()))

	require.True(t, c.SetFilter(FilterCompleted))
	assert.Equal(t, []string{"2", "4"}, ids(c.VisibleTasks()))

	require.True(t, c.SetFilter(FilterAll))
	assert.Equal(t, ids(c.Tasks()), ids(c.VisibleTasks()))
}

func TestVisibleTasks_ReturnsCopy(t *testing.T) {
	c := newSampleController(t)
	visible := c.VisibleTasks()
	visible[0].Text = "mutated"
	got, _ := c.Task(visible[0].ID)
	assert.Equal(t, "Buy groceries", got.Text)
}

func TestWorkedExample(t *testing.T) {
	c := newSampleController(t)
	assert.Equal(t, 1, c.RemainingCount())

	require.True(t, c.SetFilter(FilterCompleted))
	assert.Equal(t, []Task{{ID: "2", Text: "Read a book", Completed: true}}, c.VisibleTasks())

	c.ClearCompleted()
	assert.Equal(t, []Task{{ID: "1", Text: "Buy groceries", Completed: false}}, c.Tasks())
}

func TestUUIDsByDefault(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	task, ok := c.Add("x")
	require.True(t, ok)
	assert.Len(t, task.ID, 36)
}

func ids(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}
