package matrix

import (
	"testing"
)

func TestGenerate_Completeness(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int // k1 * k2 * ... * kN
	}{
		{"single group", "a:\n  1\n  2\n  3\n", 3},
		{"two groups", "a:\n  1\n  2\nb:\n  x\n  y\n  z\n", 6},
		{"three groups", "a:\n  1\n  2\nb:\n  x\nc:\n  p\n  q\n", 4},
		{"empty spec", "", 0},
		{"group with no entries", "a:\n  1\nb:\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := mustParse(t, tt.input)

			if got := len(Generate(spec)); got != tt.want {
				t.Errorf("generated %d combinations, want %d", got, tt.want)
			}
		})
	}
}

func TestGenerate_Order(t *testing.T) {
	// Right-most group varies fastest, mirroring nested iteration.
	spec := mustParse(t, "outer:\n  a\n  b\ninner:\n  1\n  2\n")

	combos := Generate(spec)

	want := [][2]string{
		{"a", "1"},
		{"a", "2"},
		{"b", "1"},
		{"b", "2"},
	}

	if len(combos) != len(want) {
		t.Fatalf("generated %d combinations, want %d", len(combos), len(want))
	}

	for i, pair := range want {
		outer, _ := combos[i].Entry("outer")
		inner, _ := combos[i].Entry("inner")

		if outer.Value != pair[0] || inner.Value != pair[1] {
			t.Errorf("combination %d = (%s, %s), want (%s, %s)",
				i, outer.Value, inner.Value, pair[0], pair[1])
		}
	}
}

func TestGenerate_OneEntryPerGroup(t *testing.T) {
	spec := mustParse(t, "a:\n  1\n  2\nb:\n  x\nc:\n  p\n  q\n")

	for i, c := range Generate(spec) {
		bindings := c.Bindings()
		if len(bindings) != len(spec.Groups) {
			t.Fatalf("combination %d covers %d groups, want %d",
				i, len(bindings), len(spec.Groups))
		}

		for j, b := range bindings {
			if b.Group != spec.Groups[j].Name {
				t.Errorf("combination %d binding %d group = %q, want %q",
					i, j, b.Group, spec.Groups[j].Name)
			}
		}
	}
}

func TestSpec_Size(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"product", "a:\n  1\n  2\nb:\n  x\n  y\n  z\n", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustParse(t, tt.input).Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}
