// Package argos provides declarative command-line argument definition,
// validation and parsing. Callers register typed argument specifications and
// optional cross-argument constraint groups, then hand the raw argument
// vector to the parser, which yields either a validated name-to-value
// mapping or a user-facing diagnostic followed by process termination.
//
// The scanning and constraint engine itself is pure and lives in
// internal/scan; Parse is the thin fail-fast boundary around it, appropriate
// for start-of-process argument validation. The token stream, output
// streams and exit function are all injectable for tests.
//
//	result := argos.New("Find duplicate files.").
//		Arg(argos.Boolean("verbose", 'V', "verbose execution")).
//		Arg(argos.String("path", 'f', true, "directory to examine")).
//		Parse()
//
//	path, _ := result.String("path")
//	verbose := result.Has("verbose")
package argos

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kherven/argos/internal/scan"
	"github.com/kherven/argos/internal/validation"
)

// Parser accumulates argument specifications and constraint groups, then
// scans a token stream against them. A parser is intended for one-shot use
// at process startup: construct, register, parse, discard.
type Parser struct {
	name        string
	description string

	specs  []scan.Spec
	groups []scan.Group

	argv     []string
	scanOpts []scan.OptFunc

	stdout io.Writer
	stderr io.Writer
	exit   func(int)
}

// New creates a parser for the given program description. By default the
// token stream is the process argument vector and the displayed executable
// name is derived from argv[0]; both can be overridden with options.
func New(description string, options ...Option) *Parser {
	parser := &Parser{
		name:        executableName(os.Args[0]),
		description: description,
		argv:        os.Args[1:],
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		exit:        os.Exit,
	}

	for _, opt := range options {
		opt(parser)
	}

	return parser
}

// Arg registers an argument specification. Registration is append-only.
// The name "help" and the alias 'h' are reserved for the built-in help
// flag: a spec using either is silently dropped.
func (p *Parser) Arg(arg *Arg) *Parser {
	if arg.spec.Name == "help" || arg.spec.Alias == 'h' {
		return p
	}

	p.specs = append(p.specs, arg.spec)

	return p
}

// Group registers a constraint group. Registration is append-only and
// unvalidated: member names are checked against observations only after
// a scan completes.
func (p *Parser) Group(group *Group) *Parser {
	p.groups = append(p.groups, group.group)

	return p
}

// Parse consumes the token stream and returns the validated result mapping.
//
// This is the fail-fast boundary: a help token prints the help page and
// exits 0, and any scan or validation failure prints the diagnostic plus
// the usage line to the error stream and exits 1. The parser must not be
// reused after a call to Parse.
func (p *Parser) Parse() *Result {
	outcome, err := scan.Run(p.specs, p.groups, p.argv, p.scanOpts...)
	if err != nil {
		fmt.Fprintln(p.stderr, err)
		p.WriteUsage(p.stderr)
		p.exit(1)

		return &Result{values: map[string]string{}}
	}

	if outcome.Help {
		p.WriteHelp(p.stdout)
		p.exit(0)

		return &Result{values: map[string]string{}}
	}

	return &Result{values: outcome.Values}
}

// === Configuration (Functional Options) ===

// Option is a functional option for configuring a Parser.
type Option func(*Parser)

// WithArgs injects the token stream to scan, replacing the process argument
// vector. The program name is not part of the stream.
func WithArgs(argv []string) Option {
	return func(p *Parser) { p.argv = argv }
}

// WithName sets the executable name displayed in usage and help output.
func WithName(name string) Option {
	return func(p *Parser) { p.name = name }
}

// WithOutput sets the writer for help output. It defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Parser) { p.stdout = w }
}

// WithErrOutput sets the writer for diagnostics. It defaults to stderr.
func WithErrOutput(w io.Writer) Option {
	return func(p *Parser) { p.stderr = w }
}

// WithExitFunc replaces the process termination function, letting tests
// observe exit codes without killing the test process.
func WithExitFunc(exit func(int)) Option {
	return func(p *Parser) { p.exit = exit }
}

// WithPositionals selects the lenient scanning variant: bare tokens are
// stored under their zero-based positional index and unrecognized option
// tokens are skipped silently. The default is strict mode, where both are
// fatal diagnostics.
func WithPositionals() Option {
	return func(p *Parser) { p.scanOpts = append(p.scanOpts, scan.Positionals()) }
}

// WithValidation enables constraint checking for arguments carrying a Check
// expression, using a default go-playground/validator instance.
func WithValidation() Option {
	return func(p *Parser) {
		p.scanOpts = append(p.scanOpts, scan.Checker(validation.NewDefault()))
	}
}

// WithValidator enables constraint checking backed by the given validator
// object, so custom validations can be registered on it beforehand.
func WithValidator(valid *validator.Validate) Option {
	return func(p *Parser) {
		p.scanOpts = append(p.scanOpts, scan.Checker(validation.NewWith(valid)))
	}
}

// executableName strips any path prefix from argv[0], handling both slash
// conventions so Windows-style paths display correctly too.
func executableName(argv0 string) string {
	if idx := strings.LastIndexAny(argv0, `/\`); idx >= 0 {
		return argv0[idx+1:]
	}

	return argv0
}
