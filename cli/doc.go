// Package cli contains the command line interface for envmatrix.
//
// # Usage
//
// The default command expands the matrix spec and prints the resulting
// combinations:
//
//	envmatrix -s build.spec
//	envmatrix -s build.spec expand --format json
//	envmatrix -s build.spec expand --select 'values.python_versions == "3.6"'
//
// Multiple spec files may be given; their variable groups are concatenated
// before expansion. Use "-" to read from stdin.
//
// Other commands:
//
//	envmatrix init                          # write a starter spec file
//	envmatrix -s build.spec render tox.tpl  # render through a template
//	envmatrix -s build.spec browse          # interactive TUI
//
// # Configuration
//
// Flag defaults are read from a YAML file in the user configuration
// directory (see [resolve]). Command-line flags override config values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o envmatrix .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/envmatrix/pprof)
package cli
