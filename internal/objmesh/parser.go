package objmesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Mesh is the flattened form of a triangle mesh.
// Vertices holds x,y,z triples in vertex order and Indices holds 0-based
// corner indices, three per triangle.
type Mesh struct {
	Vertices []float64 `json:"vertices"`
	Indices  []int     `json:"indices"`
}

// VertexCount returns the number of vertex triples.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of index triples.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// LineOutcome records what the parser did with a single line.
type LineOutcome int

const (
	OutcomeIgnored LineOutcome = iota
	OutcomeKept
	OutcomeSkippedNonTriangle
	OutcomeSkippedMalformed
)

func (o LineOutcome) String() string {
	switch o {
	case OutcomeKept:
		return "kept"
	case OutcomeSkippedNonTriangle:
		return "skipped_non_triangle"
	case OutcomeSkippedMalformed:
		return "skipped_malformed"
	default:
		return "ignored"
	}
}

// ParseStats counts per-line outcomes of a parse run.
type ParseStats struct {
	Lines              int
	VerticesKept       int
	FacesKept          int
	SkippedNonTriangle int
	SkippedMalformed   int
	Ignored            int
}

func (s *ParseStats) record(kind LineKind, o LineOutcome) {
	s.Lines++
	switch o {
	case OutcomeKept:
		if kind == KindVertex {
			s.VerticesKept++
		} else {
			s.FacesKept++
		}
	case OutcomeSkippedNonTriangle:
		s.SkippedNonTriangle++
	case OutcomeSkippedMalformed:
		s.SkippedMalformed++
	default:
		s.Ignored++
	}
}

// ParseError reports a numeric token that could not be parsed on an
// otherwise well-formed vertex or face line.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v %q: %v", e.Line, ErrMalformedNumber, e.Token, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedNumber, e.Err}
}

// Parse reads the mesh file at path and flattens it.
func Parse(path string) (*Mesh, *ParseStats, error) {
	f, err := OpenInput(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return ParseReader(f)
}

// ParseReader flattens a mesh description read from r.
//
// Vertex lines must carry exactly three coordinates and face lines exactly
// three corners; other shapes are skipped and counted in the returned stats.
// A bad number on an accepted line aborts the parse.
func ParseReader(r io.Reader) (*Mesh, *ParseStats, error) {
	mesh := &Mesh{
		Vertices: []float64{},
		Indices:  []int{},
	}
	stats := &ParseStats{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		kind := classify(line)

		var (
			outcome LineOutcome
			err     error
		)
		switch kind {
		case KindVertex:
			outcome, err = mesh.addVertex(line, lineNo)
		case KindFace:
			outcome, err = mesh.addTriangle(line, lineNo)
		default:
			outcome = OutcomeIgnored
		}
		if err != nil {
			return nil, nil, err
		}
		stats.record(kind, outcome)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read mesh: %w", err)
	}

	return mesh, stats, nil
}

func (m *Mesh) addVertex(line string, lineNo int) (LineOutcome, error) {
	parts := strings.Fields(line)
	if len(parts) != 4 {
		return OutcomeSkippedMalformed, nil
	}

	var xyz [3]float64
	for i, tok := range parts[1:] {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, &ParseError{Line: lineNo, Token: tok, Err: err}
		}
		xyz[i] = v
	}
	m.Vertices = append(m.Vertices, xyz[:]...)
	return OutcomeKept, nil
}

func (m *Mesh) addTriangle(line string, lineNo int) (LineOutcome, error) {
	parts := strings.Fields(line)
	if len(parts) != 4 {
		return OutcomeSkippedNonTriangle, nil
	}

	var tri [3]int
	for i, tok := range parts[1:] {
		idx, err := parseCorner(tok)
		if err != nil {
			return 0, &ParseError{Line: lineNo, Token: tok, Err: err}
		}
		tri[i] = idx
	}
	m.Indices = append(m.Indices, tri[:]...)
	return OutcomeKept, nil
}

// OpenInput opens path for reading and maps a missing file to ErrInputNotFound.
func OpenInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}
