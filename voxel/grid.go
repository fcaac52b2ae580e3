package voxel

import (
	"encoding/binary"

	xxhash "github.com/cespare/xxhash/v2"
)

// Grid is a dense 3D binary occupancy grid of shape (depth, height, width),
// stored row-major: cell (i,j,k) lives at index (i*height+j)*width+k.
// Every cell holds exactly 0 or 1; Set and FromSlice coerce any non-zero
// input to 1 so the invariant holds by construction.
//
// The analyzer packages never mutate a Grid, so one instance may safely
// back multiple concurrent analyses.
type Grid struct {
	depth, height, width int
	cells                []uint8
}

// New allocates an all-empty grid with the given dimensions.
// Returns ErrEmptyGrid if any dimension is zero or negative.
// Complexity: O(depth×height×width).
func New(depth, height, width int) (*Grid, error) {
	if depth <= 0 || height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		depth:  depth,
		height: height,
		width:  width,
		cells:  make([]uint8, depth*height*width),
	}, nil
}

// FromSlice builds a grid from row-major cell values, coercing every
// non-zero value to 1. The input is copied, never aliased.
// Returns ErrEmptyGrid for bad dimensions and ErrDimensionMismatch when
// len(values) != depth×height×width.
// Complexity: O(depth×height×width).
func FromSlice(depth, height, width int, values []uint8) (*Grid, error) {
	g, err := New(depth, height, width)
	if err != nil {
		return nil, err
	}
	if len(values) != len(g.cells) {
		return nil, ErrDimensionMismatch
	}
	for i, v := range values {
		if v != 0 {
			g.cells[i] = 1
		}
	}
	return g, nil
}

// Depth returns the extent of the first (i) axis.
func (g *Grid) Depth() int { return g.depth }

// Height returns the extent of the second (j) axis.
func (g *Grid) Height() int { return g.height }

// Width returns the extent of the third (k) axis.
func (g *Grid) Width() int { return g.width }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (i,j,k) lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(i, j, k int) bool {
	return i >= 0 && i < g.depth && j >= 0 && j < g.height && k >= 0 && k < g.width
}

// Index maps (i,j,k) to its row-major linear index. The coordinate must
// be in bounds.
// Complexity: O(1).
func (g *Grid) Index(i, j, k int) int {
	return (i*g.height+j)*g.width + k
}

// Coordinate converts a row-major linear index back to (i,j,k).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (i, j, k int) {
	k = idx % g.width
	j = (idx / g.width) % g.height
	i = idx / (g.width * g.height)
	return i, j, k
}

// At returns the cell value at (i,j,k). The coordinate must be in bounds.
func (g *Grid) At(i, j, k int) uint8 {
	return g.cells[g.Index(i, j, k)]
}

// Set stores v at (i,j,k), coercing any non-zero value to 1.
// The coordinate must be in bounds.
func (g *Grid) Set(i, j, k int, v uint8) {
	if v != 0 {
		v = 1
	}
	g.cells[g.Index(i, j, k)] = v
}

// Solid reports whether (i,j,k) is in bounds and holds a 1.
// Out-of-bounds lookups read as empty, which gives every analysis the
// one-voxel empty padding the surface predicate assumes.
// Complexity: O(1).
func (g *Grid) Solid(i, j, k int) bool {
	return g.InBounds(i, j, k) && g.cells[g.Index(i, j, k)] == 1
}

// SolidCount returns the number of solid cells.
// Complexity: O(depth×height×width).
func (g *Grid) SolidCount() int {
	n := 0
	for _, v := range g.cells {
		if v == 1 {
			n++
		}
	}
	return n
}

// Rotate90 returns a new grid rotated 90° counterclockwise in the
// (height,width) plane: the result has shape (depth, width, height) with
// cell (i, x, y) taken from (i, y, width-1-x). Host viewers that expect
// the height-width plane rotated can apply this before meshing.
// Complexity: O(depth×height×width).
func (g *Grid) Rotate90() *Grid {
	r := &Grid{
		depth:  g.depth,
		height: g.width,
		width:  g.height,
		cells:  make([]uint8, len(g.cells)),
	}
	for i := 0; i < g.depth; i++ {
		for x := 0; x < g.width; x++ {
			for y := 0; y < g.height; y++ {
				r.cells[r.Index(i, x, y)] = g.cells[g.Index(i, y, g.width-1-x)]
			}
		}
	}
	return r
}

// Fingerprint returns an xxhash digest of the grid's dimensions and
// cells. Two grids with equal shape and contents share a fingerprint;
// useful for cheap change detection and fixture identity in tests.
// Complexity: O(depth×height×width).
func (g *Grid) Fingerprint() uint64 {
	h := xxhash.New()
	var dim [8]byte
	for _, d := range [3]int{g.depth, g.height, g.width} {
		binary.LittleEndian.PutUint64(dim[:], uint64(d))
		_, _ = h.Write(dim[:])
	}
	_, _ = h.Write(g.cells)
	return h.Sum64()
}
