package services

import "fmt"

// ValidationError rejects bad input before anything is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// WriteError wraps a failed backend write. Local state must not advance
// past it; the caller re-presents the unsaved input instead of dropping it.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("%s: write failed: %v", e.Op, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// ReadError wraps a failed history fetch. Derived views fall back to
// empty/zero rather than showing stale data.
type ReadError struct {
	Op  string
	Err error
}

func (e *ReadError) Error() string { return fmt.Sprintf("%s: read failed: %v", e.Op, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }
