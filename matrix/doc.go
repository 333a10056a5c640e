// Package matrix implements a build-matrix expansion engine for CI test
// environments.
//
// A matrix specification declares named variable groups (interpreter
// versions, dependency sets, environment-variable bundles), each holding an
// ordered list of entries. An entry carries a payload value, an optional
// short alias used when naming environments, and any number of include and
// exclude rules constraining which values may be chosen from other groups:
//
//	python_versions:
//	  2.7
//	  3.6
//	dependencies:
//	  -
//	  legacy: Django==1.10.8 !python_versions[3.*]
//	os:
//	  linux
//	  windows
//	coverage:
//	  on: true &os[linux]
//	  off: false
//
// [Expand] enumerates every combination that assigns exactly one entry per
// group, drops combinations rejected by the entry rules, and labels each
// survivor with a stable human-readable identifier derived from the entry
// aliases. The result is an ordered list of named combinations ready to be
// projected into CI configuration files by a template renderer.
//
// The engine is a pure transform: it performs no I/O, holds no state between
// runs, and is safe for concurrent use from independent call sites. All
// failures are fatal to the run; a partial matrix is never returned.
package matrix
