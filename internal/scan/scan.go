package scan

import (
	"strconv"
	"strings"

	"github.com/kherven/argos/internal/errors"
)

// session holds the state of one scan. A fresh session is built per Run call,
// so specs and groups stay immutable and reusable across scans.
type session struct {
	specs  []Spec
	groups []Group
	opts   *Opts

	seen     map[string]bool
	values   map[string]string
	posIndex int
}

// Run consumes the token stream once, left to right, with no backtracking,
// then evaluates group constraints and required-argument completeness.
// It returns either a successful Outcome or the first failing diagnostic.
func Run(specs []Spec, groups []Group, argv []string, optFuncs ...OptFunc) (*Outcome, error) {
	s := &session{
		specs:  specs,
		groups: groups,
		opts:   DefOpts().Apply(optFuncs...),
		seen:   make(map[string]bool, len(specs)),
		values: make(map[string]string, len(specs)),
	}

	for i := 0; i < len(argv); i++ {
		token := argv[i]

		if token == "--help" || token == "-h" {
			return &Outcome{Help: true}, nil
		}

		if !strings.HasPrefix(token, "-") {
			if err := s.positional(token); err != nil {
				return nil, err
			}

			continue
		}

		name := strings.TrimLeft(token, "-")

		spec := s.lookup(name)
		if spec == nil {
			if s.opts.Positionals {
				continue
			}

			return nil, s.unknown(name)
		}

		consumed, err := s.consume(spec, argv[i+1:])
		if err != nil {
			return nil, err
		}
		i += consumed
	}

	if err := s.check(); err != nil {
		return nil, err
	}

	return &Outcome{Values: s.values}, nil
}

// unknown builds the unknown-argument diagnostic, suggesting the closest
// registered name when the typo is plausibly a near miss.
func (s *session) unknown(name string) error {
	if closest, dist := s.closestName(name); closest != "" && dist <= len(name)/3 {
		return errors.Newf(errors.UnknownArgument,
			"unknown argument: --%s, did you mean --%s?", name, closest)
	}

	return errors.Newf(errors.UnknownArgument,
		"unknown argument: --%s", name)
}

// lookup matches a dash-stripped candidate against the spec list, by long
// name first, then by alias when the candidate is a single rune.
func (s *session) lookup(name string) *Spec {
	runes := []rune(name)

	for i := range s.specs {
		spec := &s.specs[i]
		if spec.Name == name {
			return spec
		}
		if len(runes) == 1 && spec.Alias != 0 && spec.Alias == runes[0] {
			return spec
		}
	}

	return nil
}

// consume applies type-directed consumption for a matched spec. rest is the
// remainder of the stream after the option token; the returned count is the
// number of value tokens taken from it.
func (s *session) consume(spec *Spec, rest []string) (int, error) {
	if spec.Kind == KindBoolean {
		s.observe(spec, "true")

		return 0, nil
	}

	if len(rest) == 0 {
		return 0, errors.Newf(errors.MissingValue,
			"missing value for argument: --%s", spec.Name)
	}

	value := rest[0]

	switch spec.Kind {
	case KindString:
		if !s.opts.Positionals && strings.HasPrefix(value, "-") {
			return 0, errors.Newf(errors.UnexpectedValueShape,
				"unexpected value for argument --%s: %s", spec.Name, value)
		}
	case KindInteger:
		if _, err := strconv.ParseInt(value, 10, 32); err != nil {
			return 0, errors.Newf(errors.TypeConversion,
				"cannot convert `%s` into integer", value)
		}
	case KindFloat:
		if _, err := strconv.ParseFloat(value, 32); err != nil {
			return 0, errors.Newf(errors.TypeConversion,
				"cannot convert `%s` into floating point number", value)
		}
	}

	if spec.Constraint != "" && s.opts.Checker != nil {
		if err := s.opts.Checker(spec.Name, value, spec.Constraint); err != nil {
			return 0, errors.Newf(errors.InvalidValue,
				"invalid value for argument --%s: %s", spec.Name, err)
		}
	}

	s.observe(spec, value)

	return 1, nil
}

// positional stores a bare token under its zero-based index, or rejects it
// in strict mode.
func (s *session) positional(token string) error {
	if !s.opts.Positionals {
		return errors.Newf(errors.UnexpectedPositional,
			"unexpected argument: %s", token)
	}

	s.values[strconv.Itoa(s.posIndex)] = token
	s.posIndex++

	return nil
}

func (s *session) observe(spec *Spec, value string) {
	s.seen[spec.Name] = true
	s.values[spec.Name] = value
}
