package matrix

import (
	"iter"
)

// AnyGroup is the wildcard group name usable in include and exclude rules.
// A rule targeting AnyGroup is evaluated against every chosen entry in the
// combination rather than one specific group.
const AnyGroup = "*"

// Rule is a pattern-based constraint that an entry imposes on the value
// chosen from another variable group. Pattern follows the semantics of
// [Match]: literal matching with at most one wildcard segment.
type Rule struct {
	Group   string
	Pattern string
}

// Entry is one candidate value for a variable group.
//
// Alias is the user-facing short name used in generated identifiers; when
// empty, the identifier contribution is derived from Value (see [Fallback]).
// Value is the payload substituted into rendered output. The sentinel value
// "-" in specification text is parsed to an empty Value: the entry
// participates in combinations like any other but contributes nothing to
// rendered output or to the combination name.
type Entry struct {
	Alias    string
	Value    string
	Excludes []Rule
	Includes []Rule
}

// Part returns the entry's contribution to a combination identifier:
// the alias when present, otherwise the fallback derived from the value.
func (e *Entry) Part() string {
	if e.Alias != "" {
		return e.Alias
	}

	return Fallback(e.Value)
}

// includesFor returns the include patterns the entry declares for the named
// group, or nil when the entry imposes no include constraint on that group.
func (e *Entry) includesFor(group string) []string {
	var patterns []string

	for _, rule := range e.Includes {
		if rule.Group == group {
			patterns = append(patterns, rule.Pattern)
		}
	}

	return patterns
}

// includeGroups returns the distinct group names the entry declares include
// rules for, in declaration order.
func (e *Entry) includeGroups() []string {
	var groups []string

	for _, rule := range e.Includes {
		seen := false

		for _, g := range groups {
			if g == rule.Group {
				seen = true

				break
			}
		}

		if !seen {
			groups = append(groups, rule.Group)
		}
	}

	return groups
}

// VariableGroup is a named axis of the matrix with an ordered sequence of
// candidate entries. Entry order is significant: it determines combination
// enumeration order and therefore output ordering.
type VariableGroup struct {
	Name    string
	Entries []*Entry
}

// Spec is a complete matrix specification: an ordered list of variable
// groups. Group order is significant for the same reason entry order is,
// and additionally fixes the order of identifier parts.
type Spec struct {
	Groups []*VariableGroup
}

// Group retrieves a variable group by name.
// Returns (nil, false) if the group is not found.
func (s *Spec) Group(name string) (*VariableGroup, bool) {
	for _, g := range s.Groups {
		if g.Name == name {
			return g, true
		}
	}

	return nil, false
}

// All returns an iterator over all variable groups in declaration order.
func (s *Spec) All() iter.Seq[*VariableGroup] {
	return func(yield func(*VariableGroup) bool) {
		for _, g := range s.Groups {
			if !yield(g) {
				return
			}
		}
	}
}

// Size returns the number of raw combinations the spec generates before
// filtering: the product of the group sizes. An empty spec has size zero.
func (s *Spec) Size() int {
	if len(s.Groups) == 0 {
		return 0
	}

	size := 1
	for _, g := range s.Groups {
		size *= len(g.Entries)
	}

	return size
}

// Validate checks the referential integrity of the specification: every
// include and exclude rule must reference a declared group or [AnyGroup],
// and group names must be unique. Specifications produced by [ParseString]
// or [LoadYAML] are already validated.
func (s *Spec) Validate() error {
	seen := make(map[string]struct{}, len(s.Groups))

	for _, g := range s.Groups {
		if _, dup := seen[g.Name]; dup {
			return ErrDuplicateGroup.With(groupAttr(g.Name))
		}

		seen[g.Name] = struct{}{}
	}

	for _, g := range s.Groups {
		for _, e := range g.Entries {
			for _, rule := range append(e.Excludes[:len(e.Excludes):len(e.Excludes)], e.Includes...) {
				if rule.Group == AnyGroup {
					continue
				}

				if _, ok := seen[rule.Group]; !ok {
					return ErrUnknownGroup.With(
						groupAttr(g.Name),
						entryAttr(e),
						ruleAttr(rule),
					)
				}
			}
		}
	}

	return nil
}

// Combination is one full assignment of exactly one entry per variable
// group, in the spec's group declaration order.
type Combination struct {
	spec    *Spec
	entries []*Entry
}

// Entry returns the entry chosen from the named group.
// Returns (nil, false) if the combination has no such group.
func (c Combination) Entry(group string) (*Entry, bool) {
	for i, g := range c.spec.Groups {
		if g.Name == group {
			return c.entries[i], true
		}
	}

	return nil, false
}

// Binding pairs a variable group name with the alias and value of the entry
// chosen from it. Alias is the effective identifier contribution (explicit
// alias or derived fallback), which may be empty for sentinel entries.
type Binding struct {
	Group string
	Alias string
	Value string
}

// Bindings returns the combination's group-to-entry assignments in group
// declaration order.
func (c Combination) Bindings() []Binding {
	bindings := make([]Binding, len(c.entries))

	for i, e := range c.entries {
		bindings[i] = Binding{
			Group: c.spec.Groups[i].Name,
			Alias: e.Part(),
			Value: e.Value,
		}
	}

	return bindings
}

// Values returns the combination's assignments as a map from group name to
// the chosen entry's value. Useful in template and expression contexts where
// positional access is inconvenient.
func (c Combination) Values() map[string]string {
	values := make(map[string]string, len(c.entries))

	for i, e := range c.entries {
		values[c.spec.Groups[i].Name] = e.Value
	}

	return values
}

// Aliases returns the combination's assignments as a map from group name to
// the chosen entry's identifier contribution.
func (c Combination) Aliases() map[string]string {
	aliases := make(map[string]string, len(c.entries))

	for i, e := range c.entries {
		aliases[c.spec.Groups[i].Name] = e.Part()
	}

	return aliases
}

// NamedCombination is an accepted combination labeled with its derived
// identifier. Identifiers are unique within one engine run.
type NamedCombination struct {
	Combination

	Identifier string
}
