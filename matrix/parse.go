package matrix

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"unicode"
)

// Rule markers in entry lines.
const (
	excludeMarker = '!'
	includeMarker = '&'
)

// sentinelValue denotes an empty/absent payload in specification text.
const sentinelValue = "-"

// commentPrefix introduces a full-line comment.
const commentPrefix = "#"

// ParseReader parses a matrix specification from an io.Reader.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseString parses a matrix specification from its native block syntax.
//
// A line without leading whitespace of the form "name:" opens a variable
// group; the indented lines that follow are its entries. Blank lines and
// lines whose first non-blank character is '#' are ignored. The returned
// specification is validated: every rule references a declared group or the
// all-groups wildcard.
func ParseString(ctx context.Context, s string, opts ...Option) (*Spec, error) {
	o := makeOptions(opts...)

	p := &parser{spec: new(Spec)}

	for n, raw := range strings.Split(s, "\n") {
		err := p.parseLine(n+1, raw)
		if err != nil {
			return nil, err
		}
	}

	err := p.spec.Validate()
	if err != nil {
		return nil, err
	}

	o.logger.TraceContext(ctx, "parse complete",
		slog.Int("group_count", len(p.spec.Groups)),
		slog.Int("raw_size", p.spec.Size()),
	)

	return p.spec, nil
}

// ParseGroup parses the raw text of one variable-group block: a sequence of
// lines, each describing one entry. The group is not validated against a
// full specification; rule targets are checked by [Spec.Validate] once all
// groups are assembled.
func ParseGroup(name, text string) (*VariableGroup, error) {
	group := &VariableGroup{Name: name}

	for n, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		entry, err := parseEntry(line)
		if err != nil {
			return nil, WrapError(err).With(
				groupAttr(name),
				lineAttr(n+1, line),
			)
		}

		group.Entries = append(group.Entries, entry)
	}

	return group, nil
}

// parser tracks document-level parsing state.
type parser struct {
	spec    *Spec
	current *VariableGroup
}

// parseLine consumes one line of a specification document.
func (p *parser) parseLine(n int, raw string) error {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, commentPrefix) {
		return nil
	}

	indented := len(raw) > 0 && unicode.IsSpace(rune(raw[0]))

	if !indented {
		name, ok := strings.CutSuffix(line, ":")
		if !ok || !isGroupName(name) {
			return ErrSpecParse.With(
				slog.String("reason", "expected group header"),
				lineAttr(n, line),
			)
		}

		p.current = &VariableGroup{Name: name}
		p.spec.Groups = append(p.spec.Groups, p.current)

		return nil
	}

	if p.current == nil {
		return ErrSpecParse.With(
			slog.String("reason", "entry before any group header"),
			lineAttr(n, line),
		)
	}

	entry, err := parseEntry(line)
	if err != nil {
		return WrapError(err).With(
			groupAttr(p.current.Name),
			lineAttr(n, line),
		)
	}

	p.current.Entries = append(p.current.Entries, entry)

	return nil
}

// parseEntry parses a single entry line:
//
//	[alias ":"] value { "!" group "[" pattern "]" | "&" group "[" pattern "]" }*
//
// Rule markers must be preceded by whitespace (or start the line) so that
// values may contain interior punctuation. Exclude and include rules may be
// interleaved in any order.
func parseEntry(line string) (*Entry, error) {
	head, rules := splitRules(line)

	entry := new(Entry)

	// Split off the optional alias. The segment before the colon is an alias
	// only when it looks like one (letters, digits, '_', '-', '.'); otherwise
	// the colon belongs to the value itself (e.g. an environment-variable
	// bundle "PATH=/opt/bin:/usr/bin").
	value := strings.TrimSpace(head)

	if i := strings.Index(head, ":"); i >= 0 {
		alias := strings.TrimSpace(head[:i])

		switch {
		case alias == "":
			return nil, ErrSpecParse.With(
				slog.String("reason", "empty alias before ':'"),
			)

		case isAliasName(alias):
			entry.Alias = alias
			value = strings.TrimSpace(head[i+1:])
		}
	}

	if value == "" && entry.Alias == "" {
		return nil, ErrSpecParse.With(
			slog.String("reason", "entry has neither alias nor value"),
		)
	}

	if value != sentinelValue {
		entry.Value = value
	}

	for _, tok := range strings.Fields(rules) {
		rule, exclude, err := parseRule(tok)
		if err != nil {
			return nil, err
		}

		if exclude {
			entry.Excludes = append(entry.Excludes, rule)
		} else {
			entry.Includes = append(entry.Includes, rule)
		}
	}

	return entry, nil
}

// splitRules separates an entry line into its value head and rule region.
// The rule region begins at the first '!' or '&' that starts the line or
// follows whitespace.
func splitRules(line string) (head, rules string) {
	for i, r := range line {
		if r != excludeMarker && r != includeMarker {
			continue
		}

		if i == 0 || unicode.IsSpace(rune(line[i-1])) {
			return line[:i], line[i:]
		}
	}

	return line, ""
}

// parseRule parses one "!group[pattern]" or "&group[pattern]" token.
func parseRule(tok string) (rule Rule, exclude bool, err error) {
	marker := rune(tok[0])

	switch marker {
	case excludeMarker:
		exclude = true
	case includeMarker:
		exclude = false
	default:
		return rule, false, ErrSpecParse.With(
			slog.String("reason", "unknown rule marker"),
			slog.String("token", tok),
		)
	}

	ref := tok[1:]

	open := strings.Index(ref, "[")
	if open <= 0 || !strings.HasSuffix(ref, "]") {
		return rule, false, ErrSpecParse.With(
			slog.String("reason", "rule must have form group[pattern]"),
			slog.String("token", tok),
		)
	}

	group := ref[:open]
	pattern := ref[open+1 : len(ref)-1]

	if group != AnyGroup && !isGroupName(group) {
		return rule, false, ErrSpecParse.With(
			slog.String("reason", "invalid group name in rule"),
			slog.String("token", tok),
		)
	}

	if strings.Count(pattern, Wildcard) > 1 {
		return rule, false, ErrSpecParse.With(
			slog.String("reason", "pattern may contain at most one wildcard"),
			slog.String("token", tok),
		)
	}

	if strings.ContainsAny(pattern, "[]") {
		return rule, false, ErrSpecParse.With(
			slog.String("reason", "pattern may not contain brackets"),
			slog.String("token", tok),
		)
	}

	return Rule{Group: group, Pattern: pattern}, exclude, nil
}

// isAliasName reports whether s can serve as an entry alias: one or more
// letters, digits, underscores, hyphens, or dots. Aliases feed directly into
// combination identifiers, so anything beyond this charset stays part of the
// value.
func isAliasName(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
		case 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9':
		case r == '_' || r == '-' || r == '.':
		default:
			return false
		}
	}

	return true
}

// isGroupName reports whether s is a valid variable-group identifier:
// one or more letters, digits, or underscores.
func isGroupName(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
		case 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9':
		case r == '_':
		default:
			return false
		}
	}

	return true
}
