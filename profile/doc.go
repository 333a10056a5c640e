// Package profile provides optional runtime profiling for the envmatrix
// application.
//
// It integrates [github.com/pkg/profile] behind conditional compilation:
// profiling is available only when built with the "pprof" build tag, and all
// operations are no-ops with zero overhead otherwise.
//
// Supported modes (with the pprof tag): allocs, block, clock, cpu, goroutine,
// heap, mem, mutex, thread, trace. Use [Modes] to retrieve the list
// programmatically.
//
// Profile files are written to the configured directory with names matching
// the profiling mode (e.g., cpu.pprof, mem.pprof). Analyze them with:
//
//	go tool pprof ./envmatrix /path/to/cpu.pprof
//
// When built with the pprof tag, this package also imports [net/http/pprof],
// registering HTTP handlers at /debug/pprof/ for applications that run an
// HTTP server.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
