package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kherven/argos/internal/errors"
)

func testSpecs() []Spec {
	return []Spec{
		{Name: "verbose", Alias: 'V', Kind: KindBoolean, Usage: "verbose execution"},
		{Name: "path", Alias: 'f', Kind: KindString, Required: true, Usage: "directory to examine"},
		{Name: "count", Alias: 'c', Kind: KindInteger, Usage: "worker count"},
		{Name: "ratio", Kind: KindFloat, Usage: "sampling ratio"},
	}
}

// TestScan is a table-driven test covering token matching, type-directed
// consumption and the strict/lenient policies.
func TestScan(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name string

		specs     []Spec
		groups    []Group
		argv      []string
		optFuncs  []OptFunc
		expValues map[string]string
		expKind   errors.Kind
		expMsg    string
	}{
		{
			name:      "boolean by long name",
			specs:     testSpecs(),
			argv:      []string{"--verbose", "--path", "/tmp"},
			expValues: map[string]string{"verbose": "true", "path": "/tmp"},
		},
		{
			name:      "boolean by alias",
			specs:     testSpecs(),
			argv:      []string{"-f", "/tmp", "-V"},
			expValues: map[string]string{"path": "/tmp", "verbose": "true"},
		},
		{
			name:      "integer value stored raw",
			specs:     testSpecs(),
			argv:      []string{"--path", "/tmp", "-c", "5"},
			expValues: map[string]string{"path": "/tmp", "count": "5"},
		},
		{
			name:      "negative integer accepted",
			specs:     testSpecs(),
			argv:      []string{"--path", "/tmp", "--count", "-3"},
			expValues: map[string]string{"path": "/tmp", "count": "-3"},
		},
		{
			name:      "float value stored raw",
			specs:     testSpecs(),
			argv:      []string{"--path", "/tmp", "--ratio", "0.25"},
			expValues: map[string]string{"path": "/tmp", "ratio": "0.25"},
		},
		{
			name:    "malformed integer",
			specs:   testSpecs(),
			argv:    []string{"--count", "five"},
			expKind: errors.TypeConversion,
			expMsg:  "cannot convert `five` into integer",
		},
		{
			name:    "integer overflowing 32 bits",
			specs:   testSpecs(),
			argv:    []string{"--count", "2147483648"},
			expKind: errors.TypeConversion,
			expMsg:  "cannot convert `2147483648` into integer",
		},
		{
			name:    "malformed float",
			specs:   testSpecs(),
			argv:    []string{"--ratio", "fast"},
			expKind: errors.TypeConversion,
			expMsg:  "cannot convert `fast` into floating point number",
		},
		{
			name:    "missing value at end of stream",
			specs:   testSpecs(),
			argv:    []string{"--verbose", "--path"},
			expKind: errors.MissingValue,
			expMsg:  "missing value for argument: --path",
		},
		{
			name:    "string value looking like an option",
			specs:   testSpecs(),
			argv:    []string{"--path", "--verbose"},
			expKind: errors.UnexpectedValueShape,
			expMsg:  "unexpected value for argument --path: --verbose",
		},
		{
			name:    "unknown option in strict mode",
			specs:   testSpecs(),
			argv:    []string{"--path", "/tmp", "--frobnicate"},
			expKind: errors.UnknownArgument,
			expMsg:  "unknown argument: --frobnicate",
		},
		{
			name:    "near-miss option suggests closest name",
			specs:   testSpecs(),
			argv:    []string{"--pth", "/tmp"},
			expKind: errors.UnknownArgument,
			expMsg:  "unknown argument: --pth, did you mean --path?",
		},
		{
			name:    "bare token in strict mode",
			specs:   testSpecs(),
			argv:    []string{"--path", "/tmp", "leftover"},
			expKind: errors.UnexpectedPositional,
			expMsg:  "unexpected argument: leftover",
		},
		{
			name:      "bare tokens keyed by index in positional mode",
			specs:     testSpecs(),
			argv:      []string{"first", "--path", "/tmp", "second"},
			optFuncs:  []OptFunc{Positionals()},
			expValues: map[string]string{"0": "first", "path": "/tmp", "1": "second"},
		},
		{
			name:      "unknown option skipped in positional mode",
			specs:     testSpecs(),
			argv:      []string{"--frobnicate", "--path", "/tmp"},
			optFuncs:  []OptFunc{Positionals()},
			expValues: map[string]string{"path": "/tmp"},
		},
		{
			name:      "empty stream with no required specs",
			specs:     []Spec{{Name: "verbose", Kind: KindBoolean}},
			argv:      []string{},
			expValues: map[string]string{},
		},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			outcome, err := Run(tc.specs, tc.groups, tc.argv, tc.optFuncs...)

			if tc.expKind != errors.Unknown {
				require.Error(t, err)
				assert.Equal(t, tc.expKind, errors.KindOf(err))
				assert.Equal(t, tc.expMsg, err.Error())

				return
			}

			require.NoError(t, err)
			require.NotNil(t, outcome)
			assert.False(t, outcome.Help)
			assert.Equal(t, tc.expValues, outcome.Values)
		})
	}
}

// TestScanHelp checks that a help token anywhere stops scanning before any
// validation runs.
func TestScanHelp(t *testing.T) {
	t.Parallel()

	for _, argv := range [][]string{
		{"--help"},
		{"-h"},
		{"--verbose", "--help", "garbage"},
		{"-h", "--path"}, // missing required path never reported
	} {
		outcome, err := Run(testSpecs(), nil, argv)
		require.NoError(t, err)
		assert.True(t, outcome.Help)
		assert.Empty(t, outcome.Values)
	}
}

func TestScanReusesSpecs(t *testing.T) {
	t.Parallel()

	specs := testSpecs()

	// First scan observes path, second scan must start from a clean slate:
	// observation state lives in the session, not on the specs.
	outcome, err := Run(specs, nil, []string{"--path", "/tmp"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp", outcome.Values["path"])

	_, err = Run(specs, nil, []string{})
	require.Error(t, err)
	assert.Equal(t, errors.MissingRequired, errors.KindOf(err))
}

func TestScanChecker(t *testing.T) {
	t.Parallel()

	specs := []Spec{
		{Name: "port", Kind: KindInteger, Constraint: "max=5"},
	}

	checker := func(name, value, constraint string) error {
		assert.Equal(t, "port", name)
		assert.Equal(t, "max=5", constraint)
		if len(value) > 5 {
			return errors.New(errors.Unknown, "too long")
		}

		return nil
	}

	outcome, err := Run(specs, nil, []string{"--port", "8080"}, Checker(checker))
	require.NoError(t, err)
	assert.Equal(t, "8080", outcome.Values["port"])

	_, err = Run(specs, nil, []string{"--port", "808080"}, Checker(checker))
	require.Error(t, err)
	assert.Equal(t, errors.InvalidValue, errors.KindOf(err))
	assert.Equal(t, "invalid value for argument --port: too long", err.Error())
}
