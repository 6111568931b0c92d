package ioc

import (
	"errors"
)

var (
	ErrNotAController    = errors.New("not a controller")
	ErrUnknownController = errors.New("unknown controller")
	ErrInstantiation     = errors.New("controller instantiation failed")
)

// RegistrationError reports why a controller could not be registered.
// Err is, or wraps, one of the Err* kinds above.
type RegistrationError struct {
	Controller string
	Err        error
}

func (e *RegistrationError) Error() string {
	return "register " + e.Controller + ": " + e.Err.Error()
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}
