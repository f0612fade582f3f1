package scan

import (
	"strings"

	"github.com/kherven/argos/internal/errors"
)

// check runs the post-scan validation phase: groups in declaration order,
// then required specs in declaration order. The first failing check wins.
func (s *session) check() error {
	for _, group := range s.groups {
		var err error

		switch group.Kind {
		case GroupExclusive:
			err = s.checkExclusive(group)
		case GroupConditional:
			err = s.checkConditional(group)
		}

		if err != nil {
			return err
		}
	}

	for _, spec := range s.specs {
		if spec.Required && !s.seen[spec.Name] {
			return errors.Newf(errors.MissingRequired,
				"missing required argument: --%s", spec.Name)
		}
	}

	return nil
}

func (s *session) checkExclusive(group Group) error {
	count := s.observedCount(group.Members)

	if group.Required && count == 0 {
		return errors.Newf(errors.MissingRequired,
			"exactly one of %s must be given", flagList(group.Members))
	}

	if count > 1 {
		return errors.Newf(errors.GroupViolation,
			"at most one of %s may be given", flagList(group.Members))
	}

	return nil
}

func (s *session) checkConditional(group Group) error {
	members := s.observedCount(group.Members)

	if group.Required && members == 0 {
		return errors.Newf(errors.MissingRequired,
			"at least one of %s must be given", flagList(group.Members))
	}

	if members > 0 && s.observedCount(group.Parents) == 0 {
		return errors.Newf(errors.GroupViolation,
			"%s requires one of %s", flagList(group.Members), flagList(group.Parents))
	}

	return nil
}

func (s *session) observedCount(names []string) int {
	count := 0
	for _, name := range names {
		if s.seen[name] {
			count++
		}
	}

	return count
}

func flagList(names []string) string {
	flagged := make([]string, len(names))
	for i, name := range names {
		flagged[i] = "--" + name
	}

	return strings.Join(flagged, ", ")
}
