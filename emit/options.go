package emit

// Option configures a Generate call (spec.md §9's "any conforming
// implementation" latitude realized as Go's functional-options idiom,
// the way the teacher's own combinator constructors take Option values).
type Option func(*config)

type config struct {
	packageName string
	driverRule  string
	interactive bool
}

// PackageName sets the package clause the header and body artifacts
// declare. Defaults to "parser".
func PackageName(name string) Option {
	return func(c *config) { c.packageName = name }
}

// WithDriver requests the optional driver artifact (spec.md §4.F point 4,
// §6): a trivial main that reads standard input, tokenizes it, invokes
// rootRule, and prints the resulting AST.
func WithDriver(rootRule string) Option {
	return func(c *config) { c.driverRule = rootRule }
}

// Interactive switches the driver artifact (only meaningful combined with
// WithDriver) from a single-shot stdin parse to a readline-backed REPL.
func Interactive(on bool) Option {
	return func(c *config) { c.interactive = on }
}

func newConfig(opts []Option) *config {
	c := &config{packageName: "parser"}
	for _, o := range opts {
		o(c)
	}
	return c
}
