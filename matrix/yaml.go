package matrix

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"
)

// LoadYAML parses a matrix specification from a YAML document mapping each
// variable-group name to a sequence of entry lines:
//
//	python_versions:
//	  - "2.7"
//	  - "3.6"
//	dependencies:
//	  - "-"
//	  - "legacy: Django==1.10.8 !python_versions[3.*]"
//
// Entry lines use the same micro-syntax as the native block format; only the
// outer carrier differs. Document order of the mapping keys is preserved,
// because group order determines combination order and identifier layout.
func LoadYAML(ctx context.Context, data []byte, opts ...Option) (*Spec, error) {
	o := makeOptions(opts...)

	var doc yaml.MapSlice

	err := yaml.UnmarshalContext(ctx, data, &doc, yaml.UseOrderedMap())
	if err != nil {
		return nil, ErrLoadSpec.Wrap(err)
	}

	spec := new(Spec)

	for _, item := range doc {
		name := fmt.Sprint(item.Key)
		if !isGroupName(name) {
			return nil, ErrSpecParse.With(
				slog.String("reason", "invalid group name"),
				groupAttr(name),
			)
		}

		group := &VariableGroup{Name: name}

		lines, err := entryLines(item.Value)
		if err != nil {
			return nil, WrapError(err).With(groupAttr(name))
		}

		for _, line := range lines {
			entry, err := parseEntry(line)
			if err != nil {
				return nil, WrapError(err).With(
					groupAttr(name),
					slog.String("entry", line),
				)
			}

			group.Entries = append(group.Entries, entry)
		}

		spec.Groups = append(spec.Groups, group)
	}

	err = spec.Validate()
	if err != nil {
		return nil, err
	}

	o.logger.TraceContext(ctx, "yaml spec loaded",
		slog.Int("group_count", len(spec.Groups)),
		slog.Int("raw_size", spec.Size()),
	)

	return spec, nil
}

// entryLines coerces the YAML value of a group key into entry-line strings.
// A group may be a sequence of scalars or a single scalar.
func entryLines(v any) ([]string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil

	case []any:
		lines := make([]string, len(val))
		for i, item := range val {
			lines[i] = scalarLine(item)
		}

		return lines, nil

	case string, bool, int, int64, uint64, float64:
		return []string{scalarLine(val)}, nil

	default:
		return nil, ErrSpecParse.With(
			slog.String("reason", "group value must be a sequence of entry lines"),
		)
	}
}

// scalarLine renders a YAML scalar as entry-line text. Unquoted YAML scalars
// may decode as numbers or booleans; the entry parser always works on text.
func scalarLine(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}
