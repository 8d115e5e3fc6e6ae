package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/arith/lang"
	"github.com/ardnew/arith/log"
)

// Run executes programs and prints their output.
type Run struct {
	Files  []string `arg:"" help:"Program source file(s) or '-' for stdin" optional:"" type:"existingfile"`
	Env    string   `       help:"Print the final environment (${enum})"    default:"none" enum:"none,text,json,yaml" short:"e"`
	Indent int      `       help:"Indentation of JSON and YAML environment output, 0 for compact" default:"2"`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	src, err := openSources(r.Files, inputFrom(ctx))
	if err != nil {
		return err
	}
	defer src.Close()

	log.DebugContext(ctx, "run program",
		slog.Any("sources", src.names),
		slog.String("env", r.Env),
	)

	out := outputFrom(ctx)
	env := lang.NewEnv()

	err = lang.RunReader(ctx, src, env,
		append(optionsFrom(ctx), lang.WithOutput(out))...)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "run"))
	}

	return writeEnv(ctx, out, env, r.Env, r.Indent)
}

// writeEnv writes env to w in the named format. Format "none" writes nothing.
func writeEnv(
	ctx context.Context,
	w io.Writer,
	env *lang.Env,
	format string,
	indent int,
) error {
	var err error

	switch format {
	case "", "none":
		return nil
	case "text":
		err = env.Format(ctx, w)
	case "json":
		err = env.FormatJSON(ctx, w, indent)
	case "yaml":
		err = env.FormatYAML(ctx, w, indent)
	default:
		return ErrInvalidFormat.With(slog.String("format", format))
	}

	if err != nil {
		return ErrWriteOutput.With(slog.String("format", format)).Wrap(err)
	}

	return nil
}
