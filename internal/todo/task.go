package todo

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Task is a single to-do item.
type Task struct {
	ID        string `json:"id" yaml:"id" validate:"required"`
	Text      string `json:"text" yaml:"text" validate:"required"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Filter is the visibility predicate applied to the list.
type Filter string

const (
	FilterAll       Filter = "All"
	FilterActive    Filter = "Active"
	FilterCompleted Filter = "Completed"
)

// Filters returns the filters in chip display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// Valid reports whether f is one of the known filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// Matches reports whether t is visible under f.
// Unknown filters behave like FilterAll.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Next returns the filter to the right of f, wrapping around.
func (f Filter) Next() Filter {
	return f.step(1)
}

// Prev returns the filter to the left of f, wrapping around.
func (f Filter) Prev() Filter {
	return f.step(-1)
}

func (f Filter) step(delta int) Filter {
	all := Filters()
	idx := 0
	for i, candidate := range all {
		if candidate == f {
			idx = i
			break
		}
	}
	n := len(all)
	return all[((idx+delta)%n+n)%n]
}

// ParseFilter maps user input such as "active" or " COMPLETED " to a Filter.
func ParseFilter(s string) (Filter, error) {
	// Casers carry state, so one per call.
	f := Filter(cases.Title(language.English).String(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("unknown filter %q (want All, Active or Completed)", s)
	}
	return f, nil
}

var validate = validator.New()

// validateSeed checks tasks handed to New before they enter the list.
func validateSeed(tasks []Task) error {
	seen := make(map[string]struct{}, len(tasks))
	for i := range tasks {
		tasks[i].Text = strings.TrimSpace(tasks[i].Text)
		if err := validate.Struct(tasks[i]); err != nil {
			var msgs []string
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, e := range verrs {
					msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s'", e.Field(), e.Tag()))
				}
			} else {
				msgs = append(msgs, err.Error())
			}
			return fmt.Errorf("seed task %d: %s", i, strings.Join(msgs, "; "))
		}
		if _, dup := seen[tasks[i].ID]; dup {
			return fmt.Errorf("seed task %d: duplicate id %q", i, tasks[i].ID)
		}
		seen[tasks[i].ID] = struct{}{}
	}
	return nil
}
