package course

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownCourse is returned when an edge or lookup names a course
	// number that is not present. The offending edge is dropped.
	ErrUnknownCourse = errors.New("unknown course")

	// ErrCycleDetected is returned when the prerequisites cannot be
	// linearized. No partial schedule accompanies it.
	ErrCycleDetected = errors.New("cycle detected")

	// ErrDuplicateCourse is returned when a course number is inserted twice.
	ErrDuplicateCourse = errors.New("duplicate course")
)

// Errors collects non-fatal problems found while building a structure.
type Errors []error

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

func (e Errors) Unwrap() []error {
	return e
}

// ErrorOrNil returns nil for an empty list so callers can return it directly.
func (e Errors) ErrorOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
