package matrix

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Selector is a compiled boolean expression evaluated against named
// combinations, used to narrow a matrix to environments of interest.
//
// The expression environment exposes:
//
//	identifier  the combination's derived name
//	values      map of group name to the chosen entry's value
//	aliases     map of group name to the chosen entry's identifier part
//
// Example: `values.python_versions startsWith "3" and identifier != "36"`.
type Selector struct {
	src     string
	program *vm.Program
}

// CompileSelector compiles a selector expression once for reuse across an
// entire matrix. Compilation failures wrap [ErrSelectorCompile].
func CompileSelector(src string) (*Selector, error) {
	program, err := expr.Compile(src,
		expr.Env(selectorEnv(nil)),
		expr.AsBool(),
	)
	if err != nil {
		return nil, ErrSelectorCompile.
			Wrap(err).
			With(slog.String("selector", src))
	}

	return &Selector{src: src, program: program}, nil
}

// String returns the selector source expression.
func (s *Selector) String() string { return s.src }

// Match evaluates the selector against one named combination.
func (s *Selector) Match(nc NamedCombination) (bool, error) {
	result, err := vm.Run(s.program, selectorEnv(&nc))
	if err != nil {
		return false, ErrSelectorEvaluate.
			Wrap(err).
			With(
				slog.String("selector", s.src),
				slog.String("identifier", nc.Identifier),
			)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, ErrSelectorEvaluate.With(
			slog.String("selector", s.src),
			slog.String("identifier", nc.Identifier),
			slog.Any("result", result),
		)
	}

	return matched, nil
}

// Select returns the subsequence of the matrix matched by the selector,
// preserving order.
func (m Matrix) Select(s *Selector) (Matrix, error) {
	if s == nil {
		return m, nil
	}

	selected := make(Matrix, 0, len(m))

	for _, nc := range m {
		matched, err := s.Match(nc)
		if err != nil {
			return nil, err
		}

		if matched {
			selected = append(selected, nc)
		}
	}

	return selected, nil
}

// selectorEnv builds the expression environment for one combination. With a
// nil combination it returns the empty shape used at compile time.
func selectorEnv(nc *NamedCombination) map[string]any {
	if nc == nil {
		return map[string]any{
			"identifier": "",
			"values":     map[string]string{},
			"aliases":    map[string]string{},
		}
	}

	return map[string]any{
		"identifier": nc.Identifier,
		"values":     nc.Values(),
		"aliases":    nc.Aliases(),
	}
}
