// Package errors defines the error taxonomy shared by the scanning engine
// and the public argos package.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a parse or retrieval failure.
type Kind uint

// ORDER IN WHICH THE KIND CONSTANTS APPEAR MATTERS.
const (
	// Unknown indicates a generic error.
	Unknown Kind = iota

	// UnknownArgument indicates an option token matching no registered
	// argument, in strict mode.
	UnknownArgument

	// UnexpectedPositional indicates a bare token when no positional
	// model is active.
	UnexpectedPositional

	// MissingValue indicates a valued argument with no following token.
	MissingValue

	// TypeConversion indicates a value token that does not parse as the
	// declared kind, or a retrieval that does not parse as the requested
	// type.
	TypeConversion

	// UnexpectedValueShape indicates a value token for a string argument
	// that itself looks like an option, in strict mode.
	UnexpectedValueShape

	// InvalidValue indicates a value rejected by a registered validator
	// constraint.
	InvalidValue

	// GroupViolation indicates an exclusive-count mismatch or a
	// conditional member observed without any of its parents.
	GroupViolation

	// MissingRequired indicates a required argument or group that was
	// never satisfied.
	MissingRequired

	// LookupFailure indicates retrieval of an argument name absent from
	// the final mapping.
	LookupFailure
)

func (k Kind) String() string {
	kinds := [...]string{
		"unknown",                // Unknown
		"unknown argument",       // UnknownArgument
		"unexpected positional",  // UnexpectedPositional
		"missing value",          // MissingValue
		"type conversion",        // TypeConversion
		"unexpected value shape", // UnexpectedValueShape
		"invalid value",          // InvalidValue
		"group violation",        // GroupViolation
		"missing required",       // MissingRequired
		"lookup failure",         // LookupFailure
	}
	if int(k) >= len(kinds) {
		return "unrecognized error kind"
	}

	return kinds[k]
}

// Error is the error type produced by the engine and by typed retrieval.
// It carries both a Kind and a user-facing message.
type Error struct {
	// The kind of error.
	Kind Kind

	// The diagnostic message, ready for display.
	Message string
}

// Error returns the error's message.
func (e *Error) Error() string {
	return e.Message
}

// New returns an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// Newf returns an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// KindOf extracts the Kind from any error produced by this package,
// returning Unknown for foreign errors.
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}

	return Unknown
}
