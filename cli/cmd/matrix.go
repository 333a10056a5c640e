package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/storax/envmatrix/log"
	"github.com/storax/envmatrix/matrix"
)

// loadSpec parses the spec input attached to ctx, either as the native block
// syntax or as a YAML carrier document.
func loadSpec(ctx context.Context, asYAML bool) (*matrix.Spec, error) {
	input := specFilesFrom(ctx)
	if input == nil || input.IsZero() {
		return nil, ErrNoSpecInput
	}

	opt := matrix.WithLogger(log.Default())

	if asYAML {
		data, err := io.ReadAll(input)
		if err != nil {
			return nil, matrix.ErrReadInput.Wrap(err)
		}

		return matrix.LoadYAML(ctx, data, opt)
	}

	return matrix.ParseReader(ctx, input, opt)
}

// loadMatrix parses the spec input attached to ctx and expands it, applying
// an optional selector expression over the result.
func loadMatrix(
	ctx context.Context,
	asYAML bool,
	selector string,
) (matrix.Matrix, error) {
	spec, err := loadSpec(ctx, asYAML)
	if err != nil {
		return nil, err
	}

	mat, err := matrix.Expand(ctx, spec, matrix.WithLogger(log.Default()))
	if err != nil {
		return nil, err
	}

	if selector == "" {
		return mat, nil
	}

	sel, err := matrix.CompileSelector(selector)
	if err != nil {
		return nil, err
	}

	mat, err = mat.Select(sel)
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "applied selector",
		slog.String("selector", selector),
		slog.Int("combinations", len(mat)),
	)

	return mat, nil
}
