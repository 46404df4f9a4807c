package objmesh

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ExclusionSet is a set of 0-based vertex indices.
type ExclusionSet map[int]struct{}

// NewExclusionSet builds a membership set from 1-based vertex indices.
func NewExclusionSet(oneBased []int) ExclusionSet {
	set := make(ExclusionSet, len(oneBased))
	for _, idx := range oneBased {
		set[idx-1] = struct{}{}
	}
	return set
}

// Contains reports whether the 0-based index idx is excluded.
func (s ExclusionSet) Contains(idx int) bool {
	_, ok := s[idx]
	return ok
}

// coversFace reports whether every parsed corner of a face is excluded.
// A face with no parseable corner is never covered.
func (s ExclusionSet) coversFace(corners []string) bool {
	parsed := 0
	for _, tok := range corners {
		idx, err := parseCorner(tok)
		if err != nil {
			continue
		}
		parsed++
		if !s.Contains(idx) {
			return false
		}
	}
	return parsed > 0
}

// FilteredMesh holds the retained raw lines of a filtered mesh.
type FilteredMesh struct {
	Vertices     []string
	Faces        []string
	FacesRemoved int
}

// Result returns the counts reported to the caller.
func (fm *FilteredMesh) Result() FilterResult {
	return FilterResult{
		VerticesKept: len(fm.Vertices),
		FacesKept:    len(fm.Faces),
		FacesRemoved: fm.FacesRemoved,
	}
}

// WriteTo writes vertex lines followed by face lines, one per line.
func (fm *FilteredMesh) WriteTo(w io.Writer) (int64, error) {
	return writeLines(w, fm.Vertices, fm.Faces)
}

// FilterResult summarizes a filter run.
type FilterResult struct {
	VerticesKept int
	FacesKept    int
	FacesRemoved int
}

// FilterReader collects the vertex and face lines of r, dropping faces whose
// corners all fall inside set. Retained lines are kept verbatim after trimming.
func FilterReader(r io.Reader, set ExclusionSet) (*FilteredMesh, error) {
	fm := &FilteredMesh{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch classify(line) {
		case KindVertex:
			fm.Vertices = append(fm.Vertices, line)
		case KindFace:
			parts := strings.Fields(line)
			// Lines with fewer than three corners are kept untouched.
			if len(parts) >= 4 && set.coversFace(parts[1:]) {
				fm.FacesRemoved++
				continue
			}
			fm.Faces = append(fm.Faces, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mesh: %w", err)
	}

	return fm, nil
}

// Filter removes excluded faces from the mesh at inputPath and writes the
// result to outputPath. An empty outputPath overwrites the input; this is
// safe because the whole input is read and closed before anything is written.
func Filter(inputPath string, excluded []int, outputPath string) (FilterResult, error) {
	if outputPath == "" {
		outputPath = inputPath
	}

	fm, err := filterFile(inputPath, NewExclusionSet(excluded))
	if err != nil {
		return FilterResult{}, err
	}

	if err := fm.Save(outputPath); err != nil {
		return FilterResult{}, err
	}
	return fm.Result(), nil
}

func filterFile(path string, set ExclusionSet) (*FilteredMesh, error) {
	f, err := OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return FilterReader(f, set)
}

// Save atomically replaces path with the filtered mesh.
func (fm *FilteredMesh) Save(path string) error {
	var sb strings.Builder
	if _, err := fm.WriteTo(&sb); err != nil {
		return err
	}
	return writeFileAtomic(path, []byte(sb.String()))
}
