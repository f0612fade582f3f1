// Package scan implements the token scanning and constraint checking engine.
// It is pure: it never prints, never exits, and never touches the process
// argument vector. The argos package wraps it with the fail-fast boundary.
package scan

// Kind is the declared value type of an argument.
type Kind int

const (
	// KindString accepts the next token verbatim.
	KindString Kind = iota

	// KindInteger requires the next token to parse as a signed 32-bit
	// integer.
	KindInteger

	// KindFloat requires the next token to parse as a 32-bit float.
	KindFloat

	// KindBoolean consumes no value token; presence of the flag is the
	// signal.
	KindBoolean
)

// Spec describes one recognized argument. Specs are immutable during a scan:
// observation state lives in the scan session, never on the spec itself.
type Spec struct {
	// Name is the long name and the key under which the value is stored.
	Name string

	// Alias is the single-rune short form, or 0 for none.
	Alias rune

	// Kind is the declared value type.
	Kind Kind

	// Required marks the argument as mandatory. Boolean specs are always
	// optional.
	Required bool

	// Usage is the help-page description.
	Usage string

	// Constraint is an optional validator tag expression applied to the
	// raw value when a validator is configured (e.g. "min=1,max=65535").
	Constraint string
}

// GroupKind distinguishes the two constraint relationships.
type GroupKind int

const (
	// GroupExclusive allows at most one member to be observed, or exactly
	// one when the group is required.
	GroupExclusive GroupKind = iota

	// GroupConditional requires any observed member to co-occur with at
	// least one parent.
	GroupConditional
)

// Group is a declared relationship over a set of argument names. Construction
// stores the fields verbatim; membership is resolved against the spec list
// only at check time.
type Group struct {
	Name     string
	Kind     GroupKind
	Required bool
	Members  []string
	Parents  []string
}

// Outcome is the successful product of a scan.
type Outcome struct {
	// Values maps argument names (or positional indices) to their raw
	// string values.
	Values map[string]string

	// Help reports that a help token was seen and scanning stopped.
	Help bool
}
