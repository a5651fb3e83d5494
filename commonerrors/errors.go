// Package commonerrors defines the error kinds used across the units library.
// Errors are matched by kind using [errors.Is] e.g. errors.Is(err, ErrInvalid).
package commonerrors

import (
	"errors"
	"fmt"
)

var (
	ErrUndefined             = errors.New("undefined")
	ErrInvalid               = errors.New("invalid")
	ErrConflict              = errors.New("conflict")
	ErrIncompatibleUnits     = errors.New("incompatible units")
	ErrIncompatibleDimension = errors.New("incompatible dimension")
)

// New returns an error of kind `kind` with the given description.
func New(kind error, description string) error {
	return fmt.Errorf("%w: %v", kind, description)
}

// Newf returns an error of kind `kind` with a formatted description.
func Newf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %v", kind, fmt.Sprintf(format, args...))
}

// WrapError wraps an error into an error of kind `kind`.
func WrapError(kind, err error, description string) error {
	if err == nil {
		return New(kind, description)
	}
	if description == "" {
		return fmt.Errorf("%w: %v", kind, err.Error())
	}
	return fmt.Errorf("%w: %v: %v", kind, description, err.Error())
}

func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}
