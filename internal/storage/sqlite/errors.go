package sqlite

import "fmt"

const (
	resourceTodo     = "todo"
	resourceWork     = "work entry"
	resourceCategory = "category"
)

// OpError records the failed operation and the row it was applied to.
// Domain sentinels such as todo.ErrNotFound stay reachable through Unwrap.
type OpError struct {
	Op       string
	Resource string
	ID       string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(resource, op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: resource, ID: id, Err: err}
}
