package matrix

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestLoadYAML(t *testing.T) {
	input := []byte(`python_versions:
  - "2.7"
  - "3.6"
dependencies:
  - "-"
  - "legacy: Django==1.10.8 !python_versions[3.*]"
`)

	spec, err := LoadYAML(context.Background(), input)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if len(spec.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(spec.Groups))
	}

	// Mapping key order must be preserved, not sorted.
	if spec.Groups[0].Name != "python_versions" || spec.Groups[1].Name != "dependencies" {
		t.Errorf("group order = %s, %s", spec.Groups[0].Name, spec.Groups[1].Name)
	}

	legacy := spec.Groups[1].Entries[1]
	if legacy.Alias != "legacy" || len(legacy.Excludes) != 1 {
		t.Errorf("legacy entry = %+v", legacy)
	}
}

func TestLoadYAML_ExpandMatchesNativeSyntax(t *testing.T) {
	native := mustParse(t,
		"python_versions:\n  3.6\n  3.7\n"+
			"dependencies:\n  -\n  legacy !python_versions[3.7]\n")

	yamlSpec, err := LoadYAML(context.Background(), []byte(`python_versions:
  - "3.6"
  - "3.7"
dependencies:
  - "-"
  - "legacy !python_versions[3.7]"
`))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	nativeMatrix, err := Expand(context.Background(), native)
	if err != nil {
		t.Fatalf("expand native: %v", err)
	}

	yamlMatrix, err := Expand(context.Background(), yamlSpec)
	if err != nil {
		t.Fatalf("expand yaml: %v", err)
	}

	if !slices.Equal(nativeMatrix.Identifiers(), yamlMatrix.Identifiers()) {
		t.Errorf("carriers disagree: %v vs %v",
			nativeMatrix.Identifiers(), yamlMatrix.Identifiers())
	}
}

func TestLoadYAML_UnquotedScalars(t *testing.T) {
	// Unquoted entries may decode as YAML numbers; they are coerced back to
	// entry-line text.
	spec, err := LoadYAML(context.Background(), []byte("builds:\n  - 42\n"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if spec.Groups[0].Entries[0].Value != "42" {
		t.Errorf("value = %q, want %q", spec.Groups[0].Entries[0].Value, "42")
	}
}

func TestLoadYAML_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"not yaml", ":\t:::", ErrLoadSpec},
		{"nested mapping as group value", "a:\n  b:\n    c\n", ErrSpecParse},
		{"bad entry line", "a:\n  - \"x ![p]\"\n", ErrSpecParse},
		{"unknown rule target", "a:\n  - \"x !nope[1]\"\n", ErrUnknownGroup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(context.Background(), []byte(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
