package lending

import (
	"errors"
	"fmt"
)

// Store-level errors. Every documented failure path returns one of these;
// the engine never panics.
var (
	ErrAlreadyExists = errors.New("this object already exists")
	ErrDoesntExist   = errors.New("this object doesnt exist")
	ErrCannotInsert  = errors.New("there was a problem inserting this object")
	ErrCannotDelete  = errors.New("there was a problem deleting this object")
	ErrCannotUpdate  = errors.New("there was a problem updating this object")
)

// Credit mutation errors.
var (
	ErrNegativeCredits     = errors.New("tried adding or subtracting a negative amount of credits")
	ErrInsufficientCredits = errors.New("the amount of credits to deduce is higher than the current balance")
)

// ValidationError reports which member rule failed during construction.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
