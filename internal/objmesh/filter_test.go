package objmesh

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

const quadVertices = "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\n"

func writeMesh(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestNewExclusionSet_ConvertsToZeroBased(t *testing.T) {
	set := NewExclusionSet([]int{1, 2, 3, 3})

	if len(set) != 3 {
		t.Errorf("expected 3 entries, got %d", len(set))
	}
	for _, idx := range []int{0, 1, 2} {
		if !set.Contains(idx) {
			t.Errorf("expected set to contain %d", idx)
		}
	}
	if set.Contains(3) {
		t.Error("expected set not to contain 3")
	}
}

func TestFilterReader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		excluded []int
		faces    []string
		removed  int
	}{
		{
			name:     "all corners excluded",
			input:    quadVertices + "f 1 2 3\n",
			excluded: []int{1, 2, 3},
			faces:    nil,
			removed:  1,
		},
		{
			name:     "one corner outside set",
			input:    quadVertices + "f 1 2 3\n",
			excluded: []int{1, 2},
			faces:    []string{"f 1 2 3"},
			removed:  0,
		},
		{
			name:     "compound tokens",
			input:    quadVertices + "f 1/1/1 2/2/2 3/3/3\nf 2//1 3//1 4//1\n",
			excluded: []int{1, 2, 3},
			faces:    []string{"f 2//1 3//1 4//1"},
			removed:  1,
		},
		{
			name:     "quad is eligible",
			input:    quadVertices + "f 1 2 3 4\n",
			excluded: []int{1, 2, 3, 4},
			faces:    nil,
			removed:  1,
		},
		{
			name:     "unparseable corner is skipped",
			input:    quadVertices + "f 1 x 2\n",
			excluded: []int{1, 2},
			faces:    nil,
			removed:  1,
		},
		{
			name:     "no parseable corner keeps face",
			input:    quadVertices + "f a b c\n",
			excluded: []int{1, 2, 3},
			faces:    []string{"f a b c"},
			removed:  0,
		},
		{
			name:     "short face line kept",
			input:    quadVertices + "f 1 2\n",
			excluded: []int{1, 2},
			faces:    []string{"f 1 2"},
			removed:  0,
		},
		{
			name:     "trailing tokens preserved",
			input:    quadVertices + "  f 1 2 4   # rim  \n",
			excluded: []int{1, 2, 3},
			faces:    []string{"f 1 2 4   # rim"},
			removed:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, err := FilterReader(strings.NewReader(tt.input), NewExclusionSet(tt.excluded))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(fm.Vertices) != 4 {
				t.Errorf("expected 4 vertices, got %d", len(fm.Vertices))
			}
			if !slices.Equal(fm.Faces, tt.faces) {
				t.Errorf("expected faces %q, got %q", tt.faces, fm.Faces)
			}
			if fm.FacesRemoved != tt.removed {
				t.Errorf("expected %d removed, got %d", tt.removed, fm.FacesRemoved)
			}
		})
	}
}

func TestFilterReader_DropsOtherLines(t *testing.T) {
	input := "# header\nvt 0 0\nv 1 2 3\nusemtl skin\nf 1 1 1\n"
	fm, err := FilterReader(strings.NewReader(input), NewExclusionSet(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sb strings.Builder
	if _, err := fm.WriteTo(&sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "v 1 2 3\nf 1 1 1\n" {
		t.Errorf("unexpected output %q", sb.String())
	}
}

func TestFilter_WritesVerticesThenFaces(t *testing.T) {
	input := "v 0 0 0\nf 1 2 3\nv 1 0 0\nf 2 3 4\nv 1 1 0\nv 0 1 0\n"
	in := writeMesh(t, input)
	out := filepath.Join(t.TempDir(), "out.obj")

	res, err := Filter(in, []int{1, 2, 3}, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := FilterResult{VerticesKept: 4, FacesKept: 1, FacesRemoved: 1}
	if res != expected {
		t.Errorf("expected %+v, got %+v", expected, res)
	}

	want := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 2 3 4\n"
	if got := readFile(t, out); got != want {
		t.Errorf("expected output %q, got %q", want, got)
	}
	if got := readFile(t, in); got != input {
		t.Error("expected input to be left untouched")
	}
}

func TestFilter_InPlace(t *testing.T) {
	path := writeMesh(t, quadVertices+"f 1 2 3\nf 1 3 4\n")

	res, err := Filter(path, []int{1, 2, 3}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FacesRemoved != 1 || res.FacesKept != 1 {
		t.Errorf("expected 1 kept and 1 removed, got %+v", res)
	}

	want := quadVertices + "f 1 3 4\n"
	if got := readFile(t, path); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	in := writeMesh(t, quadVertices+"f 1 2 3\nf 2 3 4\nf 1 3 4\nf 1 2 3 4\n")
	out := filepath.Join(t.TempDir(), "out.obj")
	excluded := []int{1, 2, 3}

	first, err := Filter(in, excluded, out)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	if first.FacesRemoved != 1 {
		t.Errorf("expected 1 face removed on first pass, got %d", first.FacesRemoved)
	}

	second, err := Filter(out, excluded, "")
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if second.FacesRemoved != 0 {
		t.Errorf("expected 0 faces removed on second pass, got %d", second.FacesRemoved)
	}
	if second.FacesKept != first.FacesKept {
		t.Errorf("expected %d faces kept, got %d", first.FacesKept, second.FacesKept)
	}
}

func TestFilter_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.obj")

	_, err := Filter(filepath.Join(dir, "missing.obj"), []int{1}, out)
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("expected ErrInputNotFound, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("expected no output file to be created")
	}
}
