package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/arith/log"
)

func Example() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
		log.WithTimeLayout("none"),
		log.WithLevel(log.LevelTrace),
	)

	logger.Trace("lex complete", slog.Int("tokens", 12))
	logger.With(slog.String("cmd", "run")).Info("done")

	// Output:
	// level=TRACE msg="lex complete" tokens=12
	// level=INFO msg=done cmd=run
}
