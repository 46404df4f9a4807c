package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/kozaktomas/facemesh-prep/internal/objmesh"
)

func TestRunPrepare_FilterThenConvert(t *testing.T) {
	noProgress = true
	dir := t.TempDir()

	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3\nf 1 3 4\n"
	if err := os.WriteFile(filepath.Join(dir, "noclip.obj"), []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MESH_DATA_DIR", dir)
	t.Setenv("MESH_FILTER_INPUT", filepath.Join(dir, "noclip.obj"))
	t.Setenv("MESH_FILTER_OUTPUT", filepath.Join(dir, "clip.obj"))
	t.Setenv("MESH_CONVERT_INPUT", filepath.Join(dir, "clip.obj"))
	t.Setenv("MESH_CONVERT_OUTPUT", filepath.Join(dir, "mesh.json"))
	t.Setenv("MESH_EXCLUDE_GROUPS", "mouth")

	if err := runPrepare(prepareCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "mesh.json"))
	if err != nil {
		t.Fatal(err)
	}
	var mesh objmesh.Mesh
	if err := json.Unmarshal(data, &mesh); err != nil {
		t.Fatal(err)
	}

	if mesh.VertexCount() != 4 {
		t.Errorf("expected 4 vertices, got %d", mesh.VertexCount())
	}
	// The mouth group does not cover vertices 1..3, so both faces survive.
	if !slices.Equal(mesh.Indices, []int{0, 1, 2, 0, 2, 3}) {
		t.Errorf("unexpected indices %v", mesh.Indices)
	}
}

func TestFilterMesh_ExplicitIndices(t *testing.T) {
	noProgress = true
	path := filepath.Join(t.TempDir(), "mesh.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	res, err := filterMesh(path, "", []int{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FacesRemoved != 1 || res.FacesKept != 0 {
		t.Errorf("expected 1 removed and 0 kept, got %+v", res)
	}
}

func TestConvertMesh_MissingInput(t *testing.T) {
	noProgress = true
	dir := t.TempDir()

	err := convertMesh(filepath.Join(dir, "missing.obj"), filepath.Join(dir, "out.json"), false)
	if !errors.Is(err, objmesh.ErrInputNotFound) {
		t.Errorf("expected ErrInputNotFound, got %v", err)
	}
}
