package sharingerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrNotFound       = errors.New("entity not found")
	ErrAlreadyDecided = errors.New("booking already decided")
)

// business logic errors
var (
	ErrUnavailable = errors.New("operation unavailable")
	ErrValidation  = errors.New("validation failed")
	ErrEmailExists = errors.New("email already in use")
	ErrUnknownState = errors.New("unknown booking state")
)

// UnknownStateError carries the raw state string so the HTTP layer can echo
// it back in the error category ("Unknown state: <value>").
type UnknownStateError struct {
	Value string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown booking state %q", e.Value)
}

func (e *UnknownStateError) Unwrap() error {
	return ErrUnknownState
}
