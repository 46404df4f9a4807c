package objmesh

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/renameio"
)

const outputPerm = 0o644

// encodeMesh renders m with two-space indentation.
func encodeMesh(m *Mesh) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode mesh: %w", err)
	}
	return data, nil
}

// EncodeJSON writes m to w as indented JSON.
func EncodeJSON(w io.Writer, m *Mesh) error {
	data, err := encodeMesh(m)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON serializes m and replaces path with the result.
// The file is never left half written: the JSON is encoded in memory and
// moved into place with a rename.
func WriteJSON(m *Mesh, path string) error {
	data, err := encodeMesh(m)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

func writeFileAtomic(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, outputPerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// writeLines joins lines with a trailing newline after each one.
func writeLines(w io.Writer, groups ...[]string) (int64, error) {
	var buf bytes.Buffer
	for _, lines := range groups {
		for _, l := range lines {
			buf.WriteString(l)
			buf.WriteByte('\n')
		}
	}
	return buf.WriteTo(w)
}
