package service

import "fmt"

// NotFoundError reports a lookup miss by kind ("project" or "subtask") and ID.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
