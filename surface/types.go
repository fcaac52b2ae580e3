package surface

import (
	"errors"
	"fmt"
)

// Sentinel errors for surface extraction.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("surface: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("surface: invalid option supplied")
)

// Mode selects the face/vertex retention strategy of Extract.
type Mode int

const (
	// Deduplicated shares vertices across voxels and keeps only faces
	// bordering empty space or the grid boundary.
	Deduplicated Mode = iota
	// Naive emits eight fresh vertices and all six faces per surface
	// voxel, keeping coincident internal geometry. Fallback strategy.
	Naive
)

// String implements fmt.Stringer for log and test output.
func (m Mode) String() string {
	switch m {
	case Deduplicated:
		return "deduplicated"
	case Naive:
		return "naive"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Mesh is a quad mesh: an ordered vertex list and faces of four vertex
// indices each, wound as emitted by the chosen extraction mode.
type Mesh struct {
	Vertices [][3]float64
	Faces    [][4]int
}

// Triangles splits every quad into two triangles (0,1,2) and (0,2,3),
// preserving the quad winding. Exporters that only accept triangle
// primitives (glTF, STL) consume this.
// Complexity: O(F).
func (m *Mesh) Triangles() [][3]int {
	tris := make([][3]int, 0, 2*len(m.Faces))
	for _, f := range m.Faces {
		tris = append(tris, [3]int{f[0], f[1], f[2]}, [3]int{f[0], f[2], f[3]})
	}
	return tris
}

// Option configures extraction via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Extract is invoked, before any traversal begins.
type Option func(*Options)

// Options holds the extraction parameters.
type Options struct {
	// CubeSize is the edge length of each emitted voxel cube. The voxel
	// pitch stays 1, so values other than 1 produce overlapping or
	// gapped cubes.
	CubeSize float64

	// Mode selects Naive or Deduplicated retention.
	Mode Mode

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the default extraction parameters:
// Deduplicated mode with unit cubes.
func DefaultOptions() Options {
	return Options{CubeSize: 1.0, Mode: Deduplicated}
}

// WithCubeSize sets the cube edge length; c must be positive.
func WithCubeSize(c float64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: cube size must be positive (%v)", ErrOptionViolation, c)
			return
		}
		o.CubeSize = c
	}
}

// WithMode selects the extraction strategy.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != Naive && m != Deduplicated {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}
