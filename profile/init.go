package profile

// Config selects a profiling mode and its output directory.
// The zero value disables profiling.
type Config struct {
	Mode  string
	Path  string
	Quiet bool
}

// Option sets a field of a [Config].
type Option func(*Config)

// New returns a [Config] with opts applied in order.
func New(opts ...Option) Config {
	var c Config

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithMode sets the profiling mode; see [Modes].
func WithMode(mode string) Option { return func(c *Config) { c.Mode = mode } }

// WithPath sets the directory profiles are written to.
func WithPath(path string) Option { return func(c *Config) { c.Path = path } }

// WithQuiet suppresses the profiler's own log messages.
func WithQuiet(quiet bool) Option { return func(c *Config) { c.Quiet = quiet } }

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Start begins profiling and returns the session.
//
// Without build tag pprof, or when the mode is empty or unknown, Start returns
// a session whose Stop does nothing. Both Start and Stop are always safely
// callable.
func (c Config) Start() Stopper {
	if c.Mode == "" {
		return ignore{}
	}

	return start(c)
}

type ignore struct{}

func (ignore) Stop() {}
