package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/arith/lang"
)

// Tokens prints the token stream of a program.
type Tokens struct {
	Files []string `arg:"" help:"Program source file(s) or '-' for stdin" optional:"" type:"existingfile"`
}

// Run executes the tokens command.
func (t *Tokens) Run(ctx context.Context) error {
	source, err := readAll(ctx, t.Files)
	if err != nil {
		return err
	}

	tokens, err := lang.Lex(source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "tokens"))
	}

	err = lang.FormatTokens(outputFrom(ctx), tokens)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
