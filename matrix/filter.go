package matrix

import "log/slog"

// Accept reports whether the combination satisfies every include and exclude
// rule declared by its chosen entries.
//
// Exclude rules are checked first: any single firing rule from any entry
// rejects the combination (logical OR across all rules). A rule fires when
// the referenced group's chosen entry has a value matching the pattern;
// a rule on [AnyGroup] fires when any chosen entry anywhere matches. Rules
// match against entry values, never aliases: a filter like
// "!python_versions[2.*]" describes the underlying payload.
//
// A combination surviving all exclude checks is then held to the include
// rules: for every chosen entry and every group it declares includes on,
// at least one of those patterns must be satisfied by that group's chosen
// value. An entry with no include rules imposes no constraint.
func Accept(c Combination) bool {
	_, ok := evaluate(c)

	return ok
}

// rejection describes why a combination was dropped, for trace logging.
type rejection struct {
	rule    Rule
	entry   *Entry
	exclude bool
}

func (r rejection) attrs() []slog.Attr {
	kind := "include"
	if r.exclude {
		kind = "exclude"
	}

	return []slog.Attr{
		slog.String("kind", kind),
		entryAttr(r.entry),
		ruleAttr(r.rule),
	}
}

// evaluate applies the combination filter and reports the first rule
// responsible for a rejection.
func evaluate(c Combination) (rejection, bool) {
	for _, e := range c.entries {
		for _, rule := range e.Excludes {
			if excludeFires(c, rule) {
				return rejection{rule: rule, entry: e, exclude: true}, false
			}
		}
	}

	for _, e := range c.entries {
		for _, group := range e.includeGroups() {
			if !includeSatisfied(c, group, e.includesFor(group)) {
				rule := Rule{Group: group}
				if patterns := e.includesFor(group); len(patterns) > 0 {
					rule.Pattern = patterns[0]
				}

				return rejection{rule: rule, entry: e, exclude: false}, false
			}
		}
	}

	return rejection{}, true
}

// excludeFires reports whether an exclude rule rejects the combination.
func excludeFires(c Combination, rule Rule) bool {
	if rule.Group == AnyGroup {
		for _, chosen := range c.entries {
			if Match(chosen.Value, rule.Pattern) {
				return true
			}
		}

		return false
	}

	chosen, ok := c.Entry(rule.Group)
	if !ok {
		// Unreachable for validated specs.
		return false
	}

	return Match(chosen.Value, rule.Pattern)
}

// includeSatisfied reports whether at least one of the include patterns for
// the named group is satisfied by the combination.
func includeSatisfied(c Combination, group string, patterns []string) bool {
	if group == AnyGroup {
		for _, chosen := range c.entries {
			for _, pattern := range patterns {
				if Match(chosen.Value, pattern) {
					return true
				}
			}
		}

		return false
	}

	chosen, ok := c.Entry(group)
	if !ok {
		return false
	}

	for _, pattern := range patterns {
		if Match(chosen.Value, pattern) {
			return true
		}
	}

	return false
}
