package argos

import "github.com/kherven/argos/internal/errors"

// Error is the error type produced by scanning, constraint checking and
// typed retrieval. Use errors.As to recover it and inspect its Kind.
type Error = errors.Error

// ErrorKind classifies a parse or retrieval failure.
type ErrorKind = errors.Kind

// Error kinds, in the order the engine can produce them.
const (
	// ErrUnknownArgument indicates an option token matching no registered
	// argument, in strict mode.
	ErrUnknownArgument = errors.UnknownArgument

	// ErrUnexpectedPositional indicates a bare token when no positional
	// model is active.
	ErrUnexpectedPositional = errors.UnexpectedPositional

	// ErrMissingValue indicates a valued argument with no following token.
	ErrMissingValue = errors.MissingValue

	// ErrTypeConversion indicates a value token that does not parse as
	// the declared kind, or a retrieval that does not parse as the
	// requested type.
	ErrTypeConversion = errors.TypeConversion

	// ErrUnexpectedValueShape indicates a value token for a string
	// argument that itself looks like an option, in strict mode.
	ErrUnexpectedValueShape = errors.UnexpectedValueShape

	// ErrInvalidValue indicates a value rejected by a validator
	// constraint.
	ErrInvalidValue = errors.InvalidValue

	// ErrGroupViolation indicates an exclusive-count mismatch or a
	// conditional member given without any of its parents.
	ErrGroupViolation = errors.GroupViolation

	// ErrMissingRequired indicates a required argument or group that was
	// never satisfied.
	ErrMissingRequired = errors.MissingRequired

	// ErrLookupFailure indicates retrieval of an argument name absent
	// from the final mapping.
	ErrLookupFailure = errors.LookupFailure
)

// KindOf extracts the ErrorKind from any error produced by this library.
func KindOf(err error) ErrorKind {
	return errors.KindOf(err)
}
