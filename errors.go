package datemetrics

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification. Every error returned by this
// package matches exactly one of them via [errors.Is].
var (
	ErrParse               = errors.New("malformed date")
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
	ErrOutOfRange          = errors.New("year out of range")
	ErrNoTradingDay        = errors.New("no trading day found")
)

// Error carries the failed operation and offending input alongside its kind.
type Error struct {
	Op    string // e.g. "parse", "lunar_new_year"
	Input string // the rejected value, formatted
	Kind  error  // one of the sentinel errors above
	Err   error  // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("datemetrics: %s %q: %v", e.Op, e.Input, e.Kind)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

// Is reports whether target is the error's kind.
func (e *Error) Is(target error) bool {
	return e != nil && target == e.Kind
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(op, input string, kind, cause error) error {
	return &Error{Op: op, Input: input, Kind: kind, Err: cause}
}
