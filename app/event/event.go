// Package event provides definitions for global DOM
// events that are dispatched by the `HX-Trigger`
// header in HTMX requests.
package event

import (
	"github.com/a-h/templ"
	"github.com/angelofallars/htmx-go"
)

// Event is a client-side event that can be triggered
// on the server.
//
// Event names should be kebab-case so Alpine.js
// can parse them correctly.
type Event string

// Event satisfies [fmt.Stringer]
func (e Event) String() string { return string(e) }

// Listen returns an Alpine.js x-on attribute with
// the provided JavaScript callback text.
//
// Format:
//
//	x-on:<eventName>.window="<code>"
func (e Event) Listen(jsCode string) templ.Attributes {
	return templ.Attributes{
		"x-on:" + string(e) + ".window": jsCode,
	}
}

// Trigger returns the bare trigger for e.
func (e Event) Trigger() htmx.EventTrigger { return htmx.Trigger(e.String()) }

const SetErrMessage Event = "set-err-message"

func TriggerSetErrMessage(message string) htmx.EventTrigger {
	return htmx.TriggerDetail(SetErrMessage.String(), message)
}

// OpenConfirm opens the confirmation dialog for the action that was
// refused.
const OpenConfirm Event = "open-confirm"

var TriggerOpenConfirm = OpenConfirm.Trigger()

// TodoCompleted carries the formatted logged duration, e.g. "45m".
const TodoCompleted Event = "todo-completed"

func TriggerTodoCompleted(duration string) htmx.EventTrigger {
	return htmx.TriggerDetail(TodoCompleted.String(), duration)
}

// Changed events tell other widgets on the page to refresh.
const (
	TodosChanged      Event = "todos-changed"
	WorkChanged       Event = "work-changed"
	CategoriesChanged Event = "categories-changed"
	EmployeesChanged  Event = "employees-changed"
)

var (
	TriggerTodosChanged      = TodosChanged.Trigger()
	TriggerWorkChanged       = WorkChanged.Trigger()
	TriggerCategoriesChanged = CategoriesChanged.Trigger()
	TriggerEmployeesChanged  = EmployeesChanged.Trigger()
)
