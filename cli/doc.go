// Package cli contains the command line interface for arith.
//
// # Commands
//
//	arith [run] [FILE ...]   run programs, the default command
//	arith tokens [FILE ...]  print the token stream
//	arith ast [FILE ...]     print the syntax tree
//	arith repl [FILE ...]    start an interactive session
//	arith init               write the configuration file
//
// Each FILE is a path or "-" for standard input; with no files, standard
// input is read. Files are concatenated in order.
//
// # Evaluation Options
//
//   - --checked: report integer overflow as an error instead of wrapping
//   - --no-cache: parse every source even if it was parsed before
//
// # Logging Options
//
// Logs are written to standard error.
//
//   - --log-level: set minimum log level (trace, debug, info, warn, error)
//   - --log-format: set log output format (json, text)
//   - --log-time-layout: set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: include caller information in log output
//   - --log-pretty: colorize log output
//
// # Configuration
//
// Flag defaults are read from config.yaml in the user configuration
// directory, under the "config" key:
//
//	config:
//	  checked: true
//	  log-level: debug
//
// Command-line flags override configuration values. The init command writes
// the current flag values to that file.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o arith .
//
//   - --pprof-mode: enable profiling (see [profile.Modes])
//   - --pprof-dir: set profile output directory
package cli
