package argos

import "github.com/kherven/argos/internal/scan"

// GroupKind distinguishes the two constraint relationships.
type GroupKind = scan.GroupKind

// Constraint group kinds.
const (
	GroupExclusive   = scan.GroupExclusive
	GroupConditional = scan.GroupConditional
)

// Group is a declared relationship over a set of argument names, checked
// after scanning completes. Build one with Exclusive or Conditional and
// register it with Parser.Group. Construction stores the fields verbatim:
// member and parent names are assumed to reference arguments registered on
// the same parser, and a name may appear in several groups.
type Group struct {
	group scan.Group
}

// Exclusive declares that at most one of members may be given. When required,
// exactly one must be given.
func Exclusive(name string, required bool, members ...string) *Group {
	return &Group{group: scan.Group{
		Name:     name,
		Kind:     scan.GroupExclusive,
		Required: required,
		Members:  members,
	}}
}

// Conditional declares that any given member must co-occur with at least one
// of parents. When required, at least one member must be given at all.
func Conditional(name string, required bool, members, parents []string) *Group {
	return &Group{group: scan.Group{
		Name:     name,
		Kind:     scan.GroupConditional,
		Required: required,
		Members:  members,
		Parents:  parents,
	}}
}
