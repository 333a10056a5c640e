package matrix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestMatrix_FormatJSON(t *testing.T) {
	m := expandFixture(t)

	var buf bytes.Buffer

	err := m.FormatJSON(context.Background(), &buf, 2)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}

	var decoded []map[string]any

	err = json.Unmarshal(buf.Bytes(), &decoded)
	if err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(decoded) != len(m) {
		t.Fatalf("decoded %d combinations, want %d", len(decoded), len(m))
	}

	first := decoded[0]
	if first["identifier"] != "27" {
		t.Errorf("first identifier = %v, want %q", first["identifier"], "27")
	}

	bindings, ok := first["bindings"].(map[string]any)
	if !ok {
		t.Fatalf("bindings missing: %v", first)
	}

	python, ok := bindings["python_versions"].(map[string]any)
	if !ok || python["value"] != "2.7" {
		t.Errorf("python_versions binding = %v", bindings["python_versions"])
	}
}

func TestMatrix_FormatYAML(t *testing.T) {
	m := expandFixture(t)

	var buf bytes.Buffer

	err := m.FormatYAML(context.Background(), &buf, 2)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}

	// Decode the document back with key order preserved: the mapping keys
	// must be the identifiers in matrix order.
	var doc yaml.MapSlice

	err = yaml.UnmarshalWithOptions(buf.Bytes(), &doc, yaml.UseOrderedMap())
	if err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}

	idents := m.Identifiers()
	if len(doc) != len(idents) {
		t.Fatalf("decoded %d mapping keys, want %d", len(doc), len(idents))
	}

	for i, item := range doc {
		if key := fmt.Sprint(item.Key); key != idents[i] {
			t.Errorf("mapping key %d = %q, want %q", i, key, idents[i])
		}
	}
}

func TestNamedCombination_ToMap(t *testing.T) {
	m := expandFixture(t)

	doc := m[1].ToMap() // 27-legacy

	if doc["identifier"] != "27-legacy" {
		t.Errorf("identifier = %v", doc["identifier"])
	}

	bindings := doc["bindings"].(map[string]any)
	deps := bindings["dependencies"].(map[string]any)

	if deps["alias"] != "legacy" || deps["value"] != "Django==1.10.8" {
		t.Errorf("dependencies binding = %v", deps)
	}
}
