package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/storax/envmatrix/log"
	"github.com/storax/envmatrix/matrix"
)

// Expand expands the matrix spec and prints the resulting combinations.
type Expand struct {
	Format string `default:"text" enum:"text,json,yaml" help:"Set output format."                               short:"F"`
	Indent int    `default:"2"                          help:"Set indentation for json and yaml output."`
	Select string `                                     help:"Keep only combinations matching this expression." short:"e"`
	Match  string `                                     help:"Fuzzy-filter combinations by identifier."         short:"m"`
	Count  bool   `                                     help:"Print only the number of combinations."`
	YAML   bool   `name:"yaml"                          help:"Parse spec input as a YAML document."`
}

// Run executes the expand command.
func (e *Expand) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	mat, err := loadMatrix(ctx, e.YAML, e.Select)
	if err != nil {
		return err
	}

	if e.Match != "" {
		mat = fuzzyMatch(ctx, mat, e.Match)
	}

	if e.Count {
		fmt.Println(len(mat))

		return nil
	}

	switch e.Format {
	case "json":
		return mat.FormatJSON(ctx, os.Stdout, e.Indent)

	case "yaml":
		return mat.FormatYAML(ctx, os.Stdout, e.Indent)

	default:
		return formatText(mat)
	}
}

// fuzzyMatch keeps the combinations whose identifiers fuzzy-match the given
// pattern, ordered best match first.
func fuzzyMatch(
	ctx context.Context,
	mat matrix.Matrix,
	pattern string,
) matrix.Matrix {
	ranked := fuzzy.Find(pattern, mat.Identifiers())

	matched := make(matrix.Matrix, len(ranked))
	for i, m := range ranked {
		matched[i] = mat[m.Index]
	}

	log.DebugContext(ctx, "applied fuzzy filter",
		slog.String("pattern", pattern),
		slog.Int("combinations", len(matched)),
	)

	return matched
}

// formatText writes one line per combination: the identifier followed by its
// group bindings in spec order.
func formatText(mat matrix.Matrix) error {
	for _, nc := range mat {
		parts := make([]string, 0, 4)

		for _, b := range nc.Bindings() {
			parts = append(parts, b.Group+"="+b.Value)
		}

		_, err := fmt.Printf("%s\t%s\n", nc.Identifier, strings.Join(parts, " "))
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}
