package matrix

import (
	"testing"
)

// acceptedValues expands the spec's raw combinations through the filter and
// returns the surviving value tuples in generation order.
func acceptedValues(t *testing.T, input string) [][]string {
	t.Helper()

	spec := mustParse(t, input)

	var accepted [][]string

	for _, c := range Generate(spec) {
		if !Accept(c) {
			continue
		}

		values := make([]string, 0, len(spec.Groups))
		for _, b := range c.Bindings() {
			values = append(values, b.Value)
		}

		accepted = append(accepted, values)
	}

	return accepted
}

func TestAccept_ExcludeRule(t *testing.T) {
	got := acceptedValues(t,
		"python_versions:\n  3.6\n  3.7\n"+
			"dependencies:\n  -\n  legacy !python_versions[3.7]\n")

	want := [][]string{
		{"3.6", ""},
		{"3.6", "legacy"},
		{"3.7", ""},
	}

	assertTuples(t, got, want)
}

func TestAccept_ExcludeWildcardPattern(t *testing.T) {
	got := acceptedValues(t,
		"python_versions:\n  2.7\n  3.6\n  3.7\n"+
			"dependencies:\n  modern !python_versions[2.*]\n")

	want := [][]string{
		{"3.6", "modern"},
		{"3.7", "modern"},
	}

	assertTuples(t, got, want)
}

func TestAccept_ExcludeAnyGroup(t *testing.T) {
	// The all-groups wildcard fires when any chosen entry anywhere matches.
	got := acceptedValues(t,
		"os:\n  linux\n  windows\n"+
			"dependencies:\n  posix !*[windows]\n  portable\n")

	want := [][]string{
		{"linux", "posix"},
		{"linux", "portable"},
		{"windows", "portable"},
	}

	assertTuples(t, got, want)
}

func TestAccept_IncludeRule(t *testing.T) {
	got := acceptedValues(t,
		"os:\n  linux\n  windows\n"+
			"coverage:\n  on: true &os[linux]\n  off: false\n")

	want := [][]string{
		{"linux", "true"},
		{"linux", "false"},
		{"windows", "false"},
	}

	assertTuples(t, got, want)
}

func TestAccept_IncludeAlternatives(t *testing.T) {
	// Multiple include rules for the same group are alternatives: one match
	// suffices.
	got := acceptedValues(t,
		"os:\n  linux\n  macos\n  windows\n"+
			"sanitizers:\n  asan &os[linux] &os[macos]\n  -\n")

	want := [][]string{
		{"linux", "asan"},
		{"linux", ""},
		{"macos", "asan"},
		{"macos", ""},
		{"windows", ""},
	}

	assertTuples(t, got, want)
}

func TestAccept_IncludesOnDistinctGroupsAllApply(t *testing.T) {
	// Include rules on different groups must each be satisfied.
	got := acceptedValues(t,
		"os:\n  linux\n  windows\n"+
			"arch:\n  amd64\n  arm64\n"+
			"profilers:\n  perf &os[linux] &arch[amd64]\n  -\n")

	want := [][]string{
		{"linux", "amd64", "perf"},
		{"linux", "amd64", ""},
		{"linux", "arm64", ""},
		{"windows", "amd64", ""},
		{"windows", "arm64", ""},
	}

	assertTuples(t, got, want)
}

func TestAccept_ExcludesFromAnyEntryReject(t *testing.T) {
	// Any firing exclude rule from any entry rejects the combination,
	// regardless of which entry carries it.
	got := acceptedValues(t,
		"a:\n  x !b[q]\n"+
			"b:\n  p\n  q !a[missing]\n")

	want := [][]string{
		{"x", "p"},
	}

	assertTuples(t, got, want)
}

func TestAccept_ExcludeMatchesValueNotAlias(t *testing.T) {
	got := acceptedValues(t,
		"python_versions:\n  py36: 3.6\n"+
			"dependencies:\n  legacy !python_versions[py36]\n  modern !python_versions[3.6]\n")

	// Rules match the payload value "3.6", never the alias "py36".
	want := [][]string{
		{"3.6", "legacy"},
	}

	assertTuples(t, got, want)
}

func TestAccept_SentinelValueIsMatchable(t *testing.T) {
	// The empty sentinel participates like any other value; an empty pattern
	// matches everything, including it.
	got := acceptedValues(t,
		"dependencies:\n  -\n  full\n"+
			"flags:\n  strict !dependencies[full]\n")

	want := [][]string{
		{"", "strict"},
	}

	assertTuples(t, got, want)
}

func assertTuples(t *testing.T, got, want [][]string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("accepted %d combinations, want %d\ngot:  %v\nwant: %v",
			len(got), len(want), got, want)
	}

	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("combination %d = %v, want %v", i, got[i], want[i])
		}

		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("combination %d = %v, want %v", i, got[i], want[i])

				break
			}
		}
	}
}
