package lang

import (
	"io"
	"os"

	"github.com/ardnew/arith/log"
)

// config holds the settings shared by parsing and evaluation.
type config struct {
	logger  log.Logger // structured logger, zero value discards
	output  io.Writer  // destination of the print builtin
	checked bool       // trap arithmetic overflow
	noCache bool       // bypass the program cache

	maxDepth int // nesting limit of the parser
}

// DefaultMaxDepth is the default nesting limit of the parser.
// Users may modify this before parsing to change the default.
var DefaultMaxDepth = 10000

// Option configures parsing or evaluation behavior.
type Option func(*config)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithOutput sets the writer receiving the output of the print builtin.
// The default is os.Stdout. A nil writer discards output.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w == nil {
			w = io.Discard
		}

		c.output = w
	}
}

// WithCheckedArithmetic controls overflow handling. When enabled, an
// operation whose result does not fit in an int64 fails with [ErrOverflow].
// Otherwise results wrap around in two's complement.
func WithCheckedArithmetic(checked bool) Option {
	return func(c *config) {
		c.checked = checked
	}
}

// WithCache controls whether [ParseString] and [ParseReader] consult the
// program cache. Caching is enabled by default.
func WithCache(enable bool) Option {
	return func(c *config) {
		c.noCache = !enable
	}
}

// WithMaxDepth sets the nesting limit of the parser. A program nested deeper
// fails to parse with [ErrMaxDepthExceeded] instead of exhausting the stack
// during parsing or evaluation. A non-positive depth selects
// [DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// makeConfig returns the default configuration with opts applied.
func makeConfig(opts ...Option) config {
	c := config{output: os.Stdout}

	for _, opt := range opts {
		opt(&c)
	}

	if c.maxDepth <= 0 {
		c.maxDepth = DefaultMaxDepth
	}

	return c
}
