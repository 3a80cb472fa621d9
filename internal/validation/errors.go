package validation

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrValidation      = errors.New("validation error")
	ErrEmptyName       = fmt.Errorf("%w: empty group name", ErrValidation)
	ErrMissingLogo     = fmt.Errorf("%w: missing logo", ErrValidation)
	ErrBadPhoneNumbers = fmt.Errorf("%w: bad phone numbers", ErrValidation)
)

// ValidationError reports why a draft was refused.
// Use errors.Is(err, ErrMissingLogo) for a specific reason, or errors.As to
// read the Reason field.
type ValidationError struct {
	Reason Reason
}

func (e *ValidationError) Error() string {
	return e.Unwrap().Error()
}

func (e *ValidationError) Unwrap() error {
	switch e.Reason {
	case ReasonEmptyName:
		return ErrEmptyName
	case ReasonMissingLogo:
		return ErrMissingLogo
	case ReasonBadPhoneNumbers:
		return ErrBadPhoneNumbers
	default:
		return ErrValidation
	}
}
