package matrix

import (
	"log/slog"
	"strings"
)

// IdentifierSeparator joins the non-empty per-group name parts of a
// combination identifier.
const IdentifierSeparator = "-"

// Fallback derives an identifier contribution from an entry value when no
// explicit alias was given: the value is lower-cased and every character
// outside [a-z0-9] is dropped. The empty sentinel value therefore yields the
// empty string, so its group contributes nothing to the combination name.
//
// The derivation is idempotent: applying it to its own output is a no-op.
func Fallback(value string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(value) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Identifier derives the canonical environment name for the combination:
// the identifier contributions of its chosen entries, in group declaration
// order, joined by [IdentifierSeparator]. Entries contributing an empty part
// are real participants in the combination but invisible in the name.
func (c Combination) Identifier() string {
	parts := make([]string, 0, len(c.entries))

	for _, e := range c.entries {
		if part := e.Part(); part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, IdentifierSeparator)
}

// name labels each combination with its identifier and enforces global
// uniqueness across the run. On collision it fails with
// [ErrIdentifierCollision] naming both conflicting combinations; callers
// resolve collisions by supplying explicit aliases, never the engine.
func name(combos []Combination) ([]NamedCombination, error) {
	named := make([]NamedCombination, len(combos))
	byIdent := make(map[string]int, len(combos))

	for i, c := range combos {
		ident := c.Identifier()

		if prev, dup := byIdent[ident]; dup {
			return nil, ErrIdentifierCollision.With(
				slog.String("identifier", ident),
				slog.Any("first", bindingValues(named[prev].Combination)),
				slog.Any("second", bindingValues(c)),
			)
		}

		byIdent[ident] = i
		named[i] = NamedCombination{Combination: c, Identifier: ident}
	}

	return named, nil
}

// bindingValues renders a combination's assignments as "group=value" pairs
// for error reporting.
func bindingValues(c Combination) []string {
	pairs := make([]string, len(c.entries))

	for i, e := range c.entries {
		pairs[i] = c.spec.Groups[i].Name + "=" + e.Value
	}

	return pairs
}
