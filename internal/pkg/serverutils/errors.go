package serverutils

import "fmt"

// NotFoundError maps to 404.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ConflictError maps to 409. Used for expected conditional-write misses that
// still need to surface (e.g. claiming an already-claimed demo session).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InvariantViolationError maps to 500 and is logged loudly. It marks logic
// errors (backward flow transition, duplicate in-progress record) that must
// halt the operation rather than coerce state.
type InvariantViolationError struct {
	Message string
}

func (e *InvariantViolationError) Error() string {
	return "invariant violation: " + e.Message
}
