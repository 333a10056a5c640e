package matrix

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Matrix is the ordered sequence of named combinations produced by one
// engine run.
type Matrix []NamedCombination

// Identifiers returns the combination identifiers in matrix order.
func (m Matrix) Identifiers() []string {
	idents := make([]string, len(m))

	for i, nc := range m {
		idents[i] = nc.Identifier
	}

	return idents
}

// ToMap converts a named combination to a native Go map structure with
// "identifier" and "bindings" keys, suitable for template contexts and
// generic serialization.
func (nc NamedCombination) ToMap() map[string]any {
	bindings := make(map[string]any, len(nc.entries))

	for _, b := range nc.Bindings() {
		bindings[b.Group] = map[string]any{
			"alias": b.Alias,
			"value": b.Value,
		}
	}

	return map[string]any{
		"identifier": nc.Identifier,
		"bindings":   bindings,
	}
}

// MarshalJSON implements json.Marshaler for NamedCombination.
func (nc NamedCombination) MarshalJSON() ([]byte, error) {
	return json.Marshal(nc.ToMap())
}

// ordered converts the matrix to a YAML mapping from identifier to bindings,
// preserving both matrix order and group declaration order.
func (m Matrix) ordered() yaml.MapSlice {
	doc := make(yaml.MapSlice, len(m))

	for i, nc := range m {
		bindings := make(yaml.MapSlice, 0, len(nc.entries))

		for _, b := range nc.Bindings() {
			bindings = append(bindings, yaml.MapItem{
				Key: b.Group,
				Value: yaml.MapSlice{
					{Key: "alias", Value: b.Alias},
					{Key: "value", Value: b.Value},
				},
			})
		}

		doc[i] = yaml.MapItem{Key: nc.Identifier, Value: bindings}
	}

	return doc
}

// FormatJSON writes the matrix as a JSON array to the writer.
func (m Matrix) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(m, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(m)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes the matrix as a YAML mapping to the writer, keyed by
// identifier with combination order preserved.
func (m Matrix) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	opts := []yaml.EncodeOption{}
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, m.ordered(), opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
