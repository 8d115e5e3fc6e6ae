// Package cmd implements the arith subcommands.
//
// Every command except init reads program text from the files named on the
// command line, or from standard input when none are given or a file is named
// "-". Files are concatenated in order after removing duplicates, with
// standard input last.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"

	// NamespaceIdentifier is the kong variable identifier containing the name
	// of the configuration file key holding flag values.
	NamespaceIdentifier = "namespace"
)
