package matrix

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func expandFixture(t *testing.T) Matrix {
	t.Helper()

	spec := mustParse(t,
		"python_versions:\n  2.7\n  3.6\n"+
			"dependencies:\n  -\n  legacy: Django==1.10.8\n")

	m, err := Expand(context.Background(), spec)
	if err != nil {
		t.Fatalf("expand error: %v", err)
	}

	return m
}

func TestMatrix_Select(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		want     []string
	}{
		{
			name:     "by value prefix",
			selector: `values.python_versions startsWith "3"`,
			want:     []string{"36", "36-legacy"},
		},
		{
			name:     "by identifier",
			selector: `identifier == "27-legacy"`,
			want:     []string{"27-legacy"},
		},
		{
			name:     "by alias",
			selector: `aliases.dependencies == "legacy"`,
			want:     []string{"27-legacy", "36-legacy"},
		},
		{
			name:     "conjunction",
			selector: `values.python_versions == "2.7" and values.dependencies == ""`,
			want:     []string{"27"},
		},
		{
			name:     "select everything",
			selector: `true`,
			want:     []string{"27", "27-legacy", "36", "36-legacy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := expandFixture(t)

			sel, err := CompileSelector(tt.selector)
			if err != nil {
				t.Fatalf("compile error: %v", err)
			}

			selected, err := m.Select(sel)
			if err != nil {
				t.Fatalf("select error: %v", err)
			}

			if got := selected.Identifiers(); !slices.Equal(got, tt.want) {
				t.Errorf("selected = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrix_SelectNil(t *testing.T) {
	m := expandFixture(t)

	selected, err := m.Select(nil)
	if err != nil {
		t.Fatalf("select error: %v", err)
	}

	if !slices.Equal(selected.Identifiers(), m.Identifiers()) {
		t.Error("nil selector must select the full matrix")
	}
}

func TestCompileSelector_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax error", `values.python_versions startsWith`},
		{"not boolean", `identifier`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileSelector(tt.src)
			if !errors.Is(err, ErrSelectorCompile) {
				t.Errorf("expected ErrSelectorCompile, got %v", err)
			}
		})
	}
}
