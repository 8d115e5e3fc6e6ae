package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/arith/lang"
)

// AST prints the syntax tree of a program.
type AST struct {
	Files []string `arg:"" help:"Program source file(s) or '-' for stdin" optional:"" type:"existingfile"`
}

// Run executes the ast command.
func (a *AST) Run(ctx context.Context) error {
	src, err := openSources(a.Files, inputFrom(ctx))
	if err != nil {
		return err
	}
	defer src.Close()

	prog, err := lang.ParseReader(ctx, src, optionsFrom(ctx)...)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "ast"))
	}

	err = prog.Print(outputFrom(ctx))
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
