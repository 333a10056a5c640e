// Package render projects an expanded matrix through text templates to
// produce CI and test-runner configuration files: one template yields one
// output file, typically emitting a configuration section per named
// combination.
//
// The engine itself knows nothing about templates; this package is one of
// its downstream consumers.
package render
