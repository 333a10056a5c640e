package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeSpec(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	return path
}

func TestBuildSpecFilesEmpty(t *testing.T) {
	t.Parallel()

	if got := buildSpecFiles(nil); got != nil {
		t.Errorf("buildSpecFiles(nil) = %v, want nil", got)
	}

	if got := buildSpecFiles([]string{"/no/such/file"}); got != nil {
		t.Errorf("buildSpecFiles(missing) = %v, want nil", got)
	}
}

func TestBuildSpecFilesConcatenation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeSpec(t, dir, "a.spec", "colors:\n    red\n")
	b := writeSpec(t, dir, "b.spec", "shapes:\n    square\n")

	srcs := buildSpecFiles([]string{a, b})
	if srcs == nil {
		t.Fatal("buildSpecFiles returned nil")
	}

	data, err := io.ReadAll(srcs)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	want := "colors:\n    red\nshapes:\n    square\n"
	if string(data) != want {
		t.Errorf("concatenated input = %q, want %q", data, want)
	}
}

func TestBuildSpecFilesDeduplicates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeSpec(t, dir, "a.spec", "colors:\n    red\n")

	// Same file by absolute path, relative-style path, and symlink.
	link := filepath.Join(dir, "link.spec")
	if err := os.Symlink(path, link); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}

	srcs := buildSpecFiles([]string{path, path, link})
	if srcs == nil {
		t.Fatal("buildSpecFiles returned nil")
	}

	data, err := io.ReadAll(srcs)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	want := "colors:\n    red\n"
	if string(data) != want {
		t.Errorf("deduplicated input = %q, want %q", data, want)
	}
}

func TestWithSpecFilesRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeSpec(t, dir, "a.spec", "colors:\n    red\n")

	ctx := WithSpecFiles(context.Background(), []string{path})

	srcs := specFilesFrom(ctx)
	if srcs == nil {
		t.Fatal("specFilesFrom returned nil")
	}

	if srcs.IsZero() {
		t.Error("IsZero = true for non-empty input")
	}
}

func TestSpecFilesFromEmptyContext(t *testing.T) {
	t.Parallel()

	if got := specFilesFrom(context.Background()); got != nil {
		t.Errorf("specFilesFrom(empty) = %v, want nil", got)
	}
}

func TestLoadSpec(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeSpec(t, dir, "a.spec", "colors:\n    red\n    blue\n")
	b := writeSpec(t, dir, "b.spec", "shapes:\n    square\n")

	ctx := WithSpecFiles(context.Background(), []string{a, b})

	spec, err := loadSpec(ctx, false)
	if err != nil {
		t.Fatalf("loadSpec: %v", err)
	}

	if len(spec.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(spec.Groups))
	}

	if spec.Groups[0].Name != "colors" || spec.Groups[1].Name != "shapes" {
		t.Errorf("group order = %q, %q",
			spec.Groups[0].Name, spec.Groups[1].Name)
	}
}

func TestLoadSpecNoInput(t *testing.T) {
	t.Parallel()

	_, err := loadSpec(context.Background(), false)
	if err == nil {
		t.Fatal("loadSpec succeeded without input")
	}
}

func TestLoadMatrixSelector(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeSpec(t, dir, "a.spec", "colors:\n    red\n    blue\n")

	ctx := WithSpecFiles(context.Background(), []string{path})

	mat, err := loadMatrix(ctx, false, `values.colors == "red"`)
	if err != nil {
		t.Fatalf("loadMatrix: %v", err)
	}

	if len(mat) != 1 || mat[0].Identifier != "red" {
		t.Errorf("selected = %v, want [red]", mat.Identifiers())
	}
}
