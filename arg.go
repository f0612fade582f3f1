package argos

import "github.com/kherven/argos/internal/scan"

// Kind is the declared value type of an argument.
type Kind = scan.Kind

// Argument value kinds.
const (
	KindString  = scan.KindString
	KindInteger = scan.KindInteger
	KindFloat   = scan.KindFloat
	KindBoolean = scan.KindBoolean
)

// Arg is an immutable descriptor for one recognized command-line argument.
// Build one with Boolean, String, Integer or Float and register it with
// Parser.Arg.
type Arg struct {
	spec scan.Spec
}

// Boolean declares a flag argument. It consumes no value token: presence of
// the flag is the signal, so boolean arguments are always optional.
// alias is the single-rune short form, or 0 for none.
func Boolean(name string, alias rune, desc string) *Arg {
	return &Arg{spec: scan.Spec{
		Name:  name,
		Alias: alias,
		Kind:  scan.KindBoolean,
		Usage: desc,
	}}
}

// String declares an argument whose value is the next token, taken verbatim.
func String(name string, alias rune, required bool, desc string) *Arg {
	return &Arg{spec: scan.Spec{
		Name:     name,
		Alias:    alias,
		Kind:     scan.KindString,
		Required: required,
		Usage:    desc,
	}}
}

// Integer declares an argument whose value must parse as a signed 32-bit
// integer.
func Integer(name string, alias rune, required bool, desc string) *Arg {
	return &Arg{spec: scan.Spec{
		Name:     name,
		Alias:    alias,
		Kind:     scan.KindInteger,
		Required: required,
		Usage:    desc,
	}}
}

// Float declares an argument whose value must parse as a 32-bit float.
func Float(name string, alias rune, required bool, desc string) *Arg {
	return &Arg{spec: scan.Spec{
		Name:     name,
		Alias:    alias,
		Kind:     scan.KindFloat,
		Required: required,
		Usage:    desc,
	}}
}

// Check attaches a validator constraint expression to the argument, applied
// to the raw value during scanning when validation is enabled (see
// WithValidation/WithValidator). This makes use of go-playground/validator,
// refer to their docs for an exhaustive list of valid tag validations.
// Constraints apply to the string representation of the value.
func (a *Arg) Check(constraint string) *Arg {
	a.spec.Constraint = constraint

	return a
}
