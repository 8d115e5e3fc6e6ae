package cmd

import "github.com/ardnew/arith/lang"

// Errors returned by the commands. They carry structured attributes the same
// way as errors from package lang.
var (
	ErrYAMLMarshal   = lang.NewError("marshal YAML")
	ErrWriteConfig   = lang.NewError("write configuration file")
	ErrFileExists    = lang.NewError("file exists (use --force to overwrite)")
	ErrOpenSource    = lang.NewError("open source file")
	ErrReadSource    = lang.NewError("read source")
	ErrWriteOutput   = lang.NewError("write output")
	ErrInvalidFormat = lang.NewError("invalid format")
)
