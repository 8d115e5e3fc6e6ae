// Package profile provides optional runtime profiling for arith.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] with conditional
// compilation. Profiling must be enabled at build time using the "pprof" build
// tag:
//
//	go build -tags pprof -o arith .
//
// Without the tag, [Config.Start] returns a no-op and [Modes] is empty.
//
// # Modes
//
// The following profiling modes are supported when built with the pprof tag:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// # Usage
//
//	cfg := profile.New(
//		profile.WithMode("cpu"),
//		profile.WithPath("/tmp/profiles"),
//	)
//
//	defer cfg.Start().Stop()
//
// Profile files are written to the configured directory with names matching
// the profiling mode (cpu.pprof, mem.pprof, and so on). Analyze them with
//
//	go tool pprof -http=: ./arith /tmp/profiles/cpu.pprof
//
// The arith command exposes profiling through --pprof-mode and --pprof-dir.
// The default output directory is the "pprof" subdirectory of the user cache
// directory for arith.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
