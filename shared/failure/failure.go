// Package failure carries an error kind alongside the message so callers can
// tell a legitimately empty result from a failed operation, and a rejected
// input from a broken store.
package failure

import "errors"

type Kind string

const (
	KindValidation  Kind = "validation"
	KindConflict    Kind = "conflict"
	KindNotFound    Kind = "not_found"
	KindUnavailable Kind = "unavailable"
	KindInternal    Kind = "internal"
)

// Failure is a wrapper for error messages with a machine-checkable kind.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Validation returns a new Failure for input rejected before reaching the store.
func Validation(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// ValidationFromString returns a new validation Failure with message set from string.
func ValidationFromString(msg string) error {
	return &Failure{
		Kind:    KindValidation,
		Message: msg,
	}
}

// Conflict returns a new Failure for operations blocked by existing state.
func Conflict(message string) error {
	return &Failure{
		Kind:    KindConflict,
		Message: message,
	}
}

// NotFound returns a new Failure for an entity that does not exist.
func NotFound(entityName string) error {
	return &Failure{
		Kind:    KindNotFound,
		Message: entityName + " not found",
	}
}

// Unavailable returns a new Failure for a data layer that never came up.
func Unavailable(msg string) error {
	return &Failure{
		Kind:    KindUnavailable,
		Message: msg,
	}
}

// Internal returns a new Failure with message derived from an error interface.
func Internal(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// GetKind returns the kind of an error interface, KindInternal for plain errors.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && GetKind(err) == kind
}
