package argos

import (
	"strconv"

	"github.com/kherven/argos/internal/errors"
)

// Result is the validated mapping produced by a successful parse. Values are
// stored as their raw string representation; type conversion happens lazily
// on retrieval. Unlike scanning, retrieval failures are recoverable: an
// optional argument being absent is the caller's concern, not the parser's.
type Result struct {
	values map[string]string
}

// Has reports whether the named argument was given.
func (r *Result) Has(name string) bool {
	_, ok := r.values[name]

	return ok
}

// Raw returns the stored string for the named argument, and whether it was
// given at all.
func (r *Result) Raw(name string) (string, bool) {
	value, ok := r.values[name]

	return value, ok
}

// Positional returns the bare token stored at the given zero-based index,
// for parsers configured with WithPositionals.
func (r *Result) Positional(index int) (string, bool) {
	value, ok := r.values[strconv.Itoa(index)]

	return value, ok
}

// String returns the named argument's value as a string.
func (r *Result) String(name string) (string, error) {
	return Get[string](r, name)
}

// Int returns the named argument's value parsed as an int.
func (r *Result) Int(name string) (int, error) {
	return Get[int](r, name)
}

// Float returns the named argument's value parsed as a float64.
func (r *Result) Float(name string) (float64, error) {
	return Get[float64](r, name)
}

// Bool returns the named argument's value parsed as a bool. Boolean flags
// store "true" on presence, so a given flag reads back as true.
func (r *Result) Bool(name string) (bool, error) {
	return Get[bool](r, name)
}

// Value is the set of types a stored argument value can be retrieved as.
type Value interface {
	string | bool | int | int32 | int64 | float32 | float64
}

// Get retrieves the named argument's value converted to T. It fails with a
// lookup error when the argument was never given, and with a conversion
// error when the stored string does not parse as T.
func Get[T Value](r *Result, name string) (T, error) {
	var out T

	raw, ok := r.values[name]
	if !ok {
		return out, errors.Newf(errors.LookupFailure,
			"no value parsed for argument %q", name)
	}

	if err := convert(raw, &out); err != nil {
		return out, errors.Newf(errors.TypeConversion,
			"cannot convert value `%s` into type %T", raw, out)
	}

	return out, nil
}

// GetOr retrieves like Get but substitutes fallback when the argument was
// never given. Conversion failures still surface as errors.
func GetOr[T Value](r *Result, name string, fallback T) (T, error) {
	if !r.Has(name) {
		return fallback, nil
	}

	return Get[T](r, name)
}

func convert(raw string, out any) error {
	switch ptr := out.(type) {
	case *string:
		*ptr = raw
	case *bool:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*ptr = parsed
	case *int:
		parsed, err := strconv.ParseInt(raw, 10, 0)
		if err != nil {
			return err
		}
		*ptr = int(parsed)
	case *int32:
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return err
		}
		*ptr = int32(parsed)
	case *int64:
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		*ptr = parsed
	case *float32:
		parsed, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return err
		}
		*ptr = float32(parsed)
	case *float64:
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*ptr = parsed
	}

	return nil
}
