package todo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Action names a user action on the panel.
type Action string

const (
	ActionAdd    Action = "add"    // add <text>
	ActionType   Action = "type"   // type <text>: replace the focused draft
	ActionSubmit Action = "submit" // add the composer draft
	ActionDelete Action = "delete" // delete <ref>
	ActionToggle Action = "toggle" // toggle <ref>
	ActionEdit   Action = "edit"   // edit <ref>
	ActionSave   Action = "save"   // commit the edit in progress
	ActionCancel Action = "cancel" // abandon the edit in progress
	ActionClear  Action = "clear"  // clear completed tasks
	ActionFilter Action = "filter" // filter <All|Active|Completed>
)

// ErrUnknownAction is returned by ParseCommand for an unrecognised verb.
var ErrUnknownAction = errors.New("unknown action")

// ErrMissingArgument is returned by ParseCommand when a verb needs an argument.
var ErrMissingArgument = errors.New("missing argument")

// Command is one user action, ready to be applied to a Controller.
type Command struct {
	Action Action
	Arg    string
}

func (c Command) String() string {
	if c.Arg == "" {
		return string(c.Action)
	}
	return string(c.Action) + " " + c.Arg
}

type arity int

const (
	noArg arity = iota
	needsArg
	optionalArg
)

var actions = map[Action]arity{
	ActionAdd:    optionalArg,
	ActionType:   optionalArg,
	ActionSubmit: noArg,
	ActionDelete: needsArg,
	ActionToggle: needsArg,
	ActionEdit:   needsArg,
	ActionSave:   noArg,
	ActionCancel: noArg,
	ActionClear:  noArg,
	ActionFilter: needsArg,
}

// ParseCommand parses a line such as "toggle #2" or "add Buy milk".
// The verb is case-insensitive; the argument is kept verbatim apart from
// the separating whitespace.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	verb, arg, _ := strings.Cut(line, " ")
	action := Action(strings.ToLower(verb))

	want, ok := actions[action]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownAction, verb)
	}
	arg = strings.TrimLeft(arg, " \t")
	switch want {
	case noArg:
		if strings.TrimSpace(arg) != "" {
			return Command{}, fmt.Errorf("%s takes no argument, got %q", action, arg)
		}
		arg = ""
	case needsArg:
		arg = strings.TrimSpace(arg)
		if arg == "" {
			return Command{}, fmt.Errorf("%w for %s", ErrMissingArgument, action)
		}
	}
	return Command{Action: action, Arg: arg}, nil
}

// Resolve turns a task reference into an id. "#n" names the n-th visible
// task (1-based); anything else is taken as a literal id.
func (c *Controller) Resolve(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if rest, ok := strings.CutPrefix(ref, "#"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return "", false
		}
		visible := c.VisibleTasks()
		if n < 1 || n > len(visible) {
			return "", false
		}
		return visible[n-1].ID, true
	}
	if _, ok := c.Task(ref); !ok {
		return "", false
	}
	return ref, true
}

// Apply runs cmd against the controller and reports whether any state
// changed. Unresolvable references and invalid values are no-ops.
func (c *Controller) Apply(cmd Command) bool {
	switch cmd.Action {
	case ActionAdd:
		_, ok := c.Add(cmd.Arg)
		return ok
	case ActionType:
		if _, editing := c.Editing(); editing {
			c.SetEditDraft(cmd.Arg)
		} else {
			c.SetDraft(cmd.Arg)
		}
		return true
	case ActionSubmit:
		_, ok := c.Submit()
		return ok
	case ActionDelete:
		id, ok := c.Resolve(cmd.Arg)
		return ok && c.Delete(id)
	case ActionToggle:
		id, ok := c.Resolve(cmd.Arg)
		return ok && c.ToggleCompleted(id)
	case ActionEdit:
		id, ok := c.Resolve(cmd.Arg)
		return ok && c.BeginEdit(id)
	case ActionSave:
		id, _ := c.Editing()
		return c.CommitEdit(id)
	case ActionCancel:
		_, editing := c.Editing()
		c.CancelEdit()
		return editing
	case ActionClear:
		return c.ClearCompleted() > 0
	case ActionFilter:
		f, err := ParseFilter(cmd.Arg)
		if err != nil {
			return false
		}
		prev := c.filter
		return c.SetFilter(f) && prev != f
	}
	return false
}
