package matrix

import (
	"context"
	"log/slog"
)

// Expand runs the full expansion pipeline over a specification:
// validate, generate all combinations, filter them, then assign identifiers.
//
// Any stage failure aborts the whole run with no partial result, favoring
// fail-fast configuration authoring over silently producing an incomplete
// matrix. On success the returned matrix is ordered per [Generate] and every
// identifier is unique.
func Expand(ctx context.Context, spec *Spec, opts ...Option) (Matrix, error) {
	o := makeOptions(opts...)

	err := spec.Validate()
	if err != nil {
		return nil, err
	}

	combos := Generate(spec)

	o.logger.DebugContext(ctx, "combinations generated",
		slog.Int("count", len(combos)),
		slog.Int("groups", len(spec.Groups)),
	)

	accepted := make([]Combination, 0, len(combos))

	for _, c := range combos {
		reason, ok := evaluate(c)
		if !ok {
			o.logger.TraceContext(ctx, "combination rejected", reason.attrs()...)

			continue
		}

		accepted = append(accepted, c)
	}

	if len(accepted) == 0 {
		return nil, ErrEmptyMatrix.With(
			slog.Int("generated", len(combos)),
		)
	}

	named, err := name(accepted)
	if err != nil {
		return nil, err
	}

	o.logger.DebugContext(ctx, "matrix expanded",
		slog.Int("generated", len(combos)),
		slog.Int("accepted", len(named)),
	)

	return named, nil
}
