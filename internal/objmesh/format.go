// Package objmesh reads and rewrites the line-based vertex/face mesh format
// used for the mediapipe478 face mesh.
//
// Only two record types are understood: vertex lines ("v x y z") and face
// lines ("f a b c ..."). Face corners may be compound tokens such as
// "12/4/7", in which case only the vertex reference before the first slash
// is used. Everything else in the file is ignored.
package objmesh

import (
	"errors"
	"strconv"
	"strings"
)

// LineKind classifies a trimmed input line.
type LineKind int

const (
	KindOther LineKind = iota
	KindVertex
	KindFace
)

var (
	// ErrInputNotFound is returned when the input mesh file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrMalformedNumber is wrapped by ParseError when a numeric token fails to parse.
	ErrMalformedNumber = errors.New("malformed numeric token")
)

// classify returns the kind of an already trimmed line.
func classify(line string) LineKind {
	switch {
	case strings.HasPrefix(line, "v "):
		return KindVertex
	case strings.HasPrefix(line, "f "):
		return KindFace
	default:
		return KindOther
	}
}

// cornerToken returns the vertex reference part of a face corner token.
func cornerToken(tok string) string {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		return tok[:i]
	}
	return tok
}

// parseCorner converts a 1-based corner token into a 0-based vertex index.
func parseCorner(tok string) (int, error) {
	n, err := strconv.Atoi(cornerToken(tok))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}
