package scan

// CheckFunc validates the raw string value scanned for an argument against
// the constraint expression declared on its spec. It returns an error when
// the value is rejected.
type CheckFunc func(name, value, constraint string) error

// OptFunc sets values in the Opts structure.
type OptFunc func(opt *Opts)

// Opts specifies the scanning policy.
type Opts struct {
	// Positionals selects the lenient variant: bare tokens are stored
	// under their zero-based index and unknown options are skipped.
	// When false (the default, strict mode), both are fatal.
	Positionals bool

	// Checker is the validation function applied to values of specs
	// carrying a constraint expression. Nil disables validation.
	Checker CheckFunc
}

// DefOpts returns the default scanning options: strict mode, no validation.
func DefOpts() *Opts {
	return &Opts{}
}

// Apply applies the given option funcs to the current options.
func (o *Opts) Apply(optFuncs ...OptFunc) *Opts {
	for _, f := range optFuncs {
		f(o)
	}

	return o
}

// Positionals selects the lenient scanning variant.
func Positionals() OptFunc { return func(opt *Opts) { opt.Positionals = true } }

// Checker sets the value validation function.
func Checker(fn CheckFunc) OptFunc { return func(opt *Opts) { opt.Checker = fn } }
