package cmd

import (
	"context"
	"io"

	"github.com/ardnew/arith/cli/cmd/repl"
	"github.com/ardnew/arith/log"
)

// REPL starts an interactive session.
type REPL struct {
	Files []string `arg:"" help:"Program source file(s) to run before the session starts" optional:"" type:"existingfile"`
}

// Run executes the repl command.
func (r *REPL) Run(ctx context.Context) error {
	var cacheDir string

	if ktx := kongContextFrom(ctx); ktx != nil {
		cacheDir = ktx.Model.Vars()[CacheIdentifier]
	}

	var preload io.Reader

	if len(r.Files) > 0 {
		src, err := openSources(r.Files, inputFrom(ctx))
		if err != nil {
			return err
		}
		defer src.Close()

		preload = src
	}

	return repl.Run(ctx, preload, cacheDir, log.Default(), optionsFrom(ctx)...)
}
