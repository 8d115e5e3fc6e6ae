package lang

import (
	"context"
	"io"
	"log/slog"

	"github.com/klauspost/readahead"
)

// ParseString lexes and parses source into a program.
//
// Programs are cached by source content unless caching is disabled with
// [WithCache]. A cached program is shared between callers and must not be
// modified.
func ParseString(
	ctx context.Context,
	source string,
	opts ...Option,
) (*Program, error) {
	cfg := makeConfig(opts...)

	if cfg.noCache {
		cfg.logger.TraceContext(
			ctx,
			"cache bypass",
			slog.Int("source_bytes", len(source)),
		)

		return parse(ctx, source, cfg)
	}

	return parseCached(ctx, source, cfg)
}

// ParseReader reads all of r and parses it as with [ParseString].
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Program, error) {
	source, err := readSource(r)
	if err != nil {
		return nil, err
	}

	makeConfig(opts...).logger.TraceContext(
		ctx,
		"read input",
		slog.Int("source_bytes", len(source)),
		slog.Bool("read_ahead", true),
	)

	return ParseString(ctx, source, opts...)
}

// Run lexes, parses, and evaluates source against env.
//
// Output of the print builtin is written as it is produced, so a program that
// fails partway through keeps the output and bindings of the statements
// before the failing one. A lexical or syntax error prevents evaluation of
// every statement.
func Run(ctx context.Context, source string, env *Env, opts ...Option) error {
	prog, err := ParseString(ctx, source, opts...)
	if err != nil {
		return err
	}

	return Evaluate(ctx, prog, env, opts...)
}

// RunReader reads all of r and runs it as with [Run].
func RunReader(ctx context.Context, r io.Reader, env *Env, opts ...Option) error {
	prog, err := ParseReader(ctx, r, opts...)
	if err != nil {
		return err
	}

	return Evaluate(ctx, prog, env, opts...)
}

// parse lexes and parses source without consulting the cache.
func parse(ctx context.Context, source string, cfg config) (*Program, error) {
	tokens, err := Lex(source)
	if err != nil {
		return nil, err
	}

	cfg.logger.TraceContext(
		ctx,
		"lex complete",
		slog.Int("source_bytes", len(source)),
		slog.Int("tokens", len(tokens)),
	)

	prog, err := Parse(tokens, WithMaxDepth(cfg.maxDepth))
	if err != nil {
		return nil, err
	}

	cfg.logger.TraceContext(
		ctx,
		"parse complete",
		slog.Int("statements", prog.Len()),
	)

	return prog, nil
}

// readSource drains r through an asynchronous read-ahead buffer.
func readSource(r io.Reader) (string, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return "", ErrReadInput.Wrap(err)
	}

	return string(data), nil
}
