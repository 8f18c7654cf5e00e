package entities

import (
	"errors"
	"fmt"
)

// ErrNotFound marks lookups for schedules that do not exist (or no longer
// exist). Match with errors.Is.
var ErrNotFound = errors.New("not found")

// ValidationError rejects bad input to a transition or creation request
// before any persistence call is made.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// InvalidInputError rejects malformed telemetry handed to the
// recommendation engine.
type InvalidInputError struct{ Msg string }

func (e *InvalidInputError) Error() string { return e.Msg }

// StateConflictError rejects a lifecycle transition attempted from a
// terminal state. The schedule is left unchanged.
type StateConflictError struct {
	ID   uint
	From Status
	To   Status
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("schedule %d: cannot transition %s -> %s", e.ID, e.From, e.To)
}

// PersistenceError wraps a failed call to the persistence service. The
// transition it carried was not applied locally.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }
