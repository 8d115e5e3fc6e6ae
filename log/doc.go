// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("run complete", slog.Int("statements", 3))
//	logger.Error("run failed", slog.Any("error", err))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// A [Logger] is an immutable value. [Logger.Wrap] derives a logger with
// changed options and [Logger.With] one with additional attributes.
//
// # Default Logger
//
// The package-level functions ([Info], [ErrorContext], and so on) write
// through a default logger on standard error. [Config] reconfigures it and
// [Default] returns it for passing to other packages.
//
// Context-unaware functions use [DefaultContextProvider], which returns
// [context.TODO] by default.
//
// # Levels
//
// [LevelTrace] sits below [LevelDebug] and is used for per-step diagnostics.
// Messages below the configured level are discarded. A zero-value [Logger]
// discards everything.
//
// # Output Formats
//
// Two output formats are supported: [FormatJSON] (default) and [FormatText].
// With [WithPretty], both are colorized for terminals: text as one line per
// record and JSON as an indented object per record.
package log
