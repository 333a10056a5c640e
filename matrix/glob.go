package matrix

import "strings"

// Wildcard is the single wildcard token recognized in rule patterns.
// It matches any contiguous (possibly empty) substring.
const Wildcard = "*"

// Match reports whether candidate matches pattern.
//
// Pattern semantics are deliberately narrow: everything is case-sensitive
// literal text except at most one occurrence of [Wildcard]. An empty pattern
// or a pattern equal to the wildcard alone matches every candidate. No other
// metacharacters are interpreted, which keeps the matching contract fully
// specified and independently testable.
func Match(candidate, pattern string) bool {
	if pattern == "" || pattern == Wildcard {
		return true
	}

	i := strings.Index(pattern, Wildcard)
	if i < 0 {
		return candidate == pattern
	}

	prefix, suffix := pattern[:i], pattern[i+1:]

	// The prefix and suffix must not overlap in the candidate.
	return len(candidate) >= len(prefix)+len(suffix) &&
		strings.HasPrefix(candidate, prefix) &&
		strings.HasSuffix(candidate, suffix)
}
