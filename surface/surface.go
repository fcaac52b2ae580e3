package surface

import (
	"github.com/voxtopo/voxtopo/voxel"
)

// cornerDeltas lists the eight cube corners in canonical order:
// bottom-front-left, bottom-front-right, bottom-back-right,
// bottom-back-left, then the same four shifted by the cube size along
// the third axis.
var cornerDeltas = [8][3]float64{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// quadsEven and quadsOdd are the six face templates (base, top, front,
// right, back, left) as corner indices; odd is the reversed winding used
// for odd-parity voxels in Deduplicated mode.
var (
	quadsEven = [6][4]int{
		{0, 1, 2, 3}, // base
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // front
		{1, 2, 6, 5}, // right
		{2, 3, 7, 6}, // back
		{3, 0, 4, 7}, // left
	}
	quadsOdd = [6][4]int{
		{1, 0, 3, 2},
		{5, 4, 7, 6},
		{1, 0, 4, 5},
		{2, 1, 5, 6},
		{3, 2, 6, 7},
		{0, 3, 7, 4},
	}
)

// faceNeighbors maps each face template to the grid offset of the voxel
// on the other side of that face.
var faceNeighbors = [6][3]int{
	{0, 0, -1}, // base
	{0, 0, 1},  // top
	{0, -1, 0}, // front
	{1, 0, 0},  // right
	{0, 1, 0},  // back
	{-1, 0, 0}, // left
}

// isSurface reports whether (i,j,k) is solid with fewer than six solid
// face-adjacent neighbors; out-of-bounds neighbors count as empty.
func isSurface(g *voxel.Grid, i, j, k int) bool {
	if !g.Solid(i, j, k) {
		return false
	}
	sum := 0
	for _, d := range faceNeighbors {
		if g.Solid(i+d[0], j+d[1], k+d[2]) {
			sum++
		}
	}
	return sum < 6
}

// Extract builds the surface mesh of g. The grid is read-only for the
// duration of the call; every invocation allocates fresh buffers.
// Returns ErrNilGrid or ErrOptionViolation before any traversal.
//
// Time: O(V + S), Memory: O(S) with S the surface-voxel count.
func Extract(g *voxel.Grid, opts ...Option) (*Mesh, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if o.Mode == Naive {
		return extractNaive(g, o.CubeSize), nil
	}
	return extractDeduplicated(g, o.CubeSize), nil
}

// corners returns the eight cube corner positions of voxel (i,j,k) in
// canonical order.
func corners(i, j, k int, size float64) [8][3]float64 {
	var cs [8][3]float64
	for c, d := range cornerDeltas {
		cs[c] = [3]float64{
			float64(i) + d[0]*size,
			float64(j) + d[1]*size,
			float64(k) + d[2]*size,
		}
	}
	return cs
}

// extractNaive emits eight fresh vertices and six faces per surface
// voxel with a fixed winding; nothing is shared or removed.
func extractNaive(g *voxel.Grid, size float64) *Mesh {
	mesh := &Mesh{}
	for i := 0; i < g.Depth(); i++ {
		for j := 0; j < g.Height(); j++ {
			for k := 0; k < g.Width(); k++ {
				if !isSurface(g, i, j, k) {
					continue
				}
				base := len(mesh.Vertices)
				cs := corners(i, j, k, size)
				mesh.Vertices = append(mesh.Vertices, cs[:]...)
				for _, q := range quadsEven {
					mesh.Faces = append(mesh.Faces, [4]int{
						base + q[0], base + q[1], base + q[2], base + q[3],
					})
				}
			}
		}
	}
	return mesh
}

// extractDeduplicated shares vertices across voxels by exact coordinate
// lookup and keeps a face only when the voxel across it is empty or
// outside the grid, so every retained face borders exactly one solid
// voxel. Winding alternates with the parity of i+j+k, giving adjacent
// voxels opposing orientations on shared geometry.
func extractDeduplicated(g *voxel.Grid, size float64) *Mesh {
	mesh := &Mesh{}
	vertexIndex := make(map[[3]float64]int)

	for i := 0; i < g.Depth(); i++ {
		for j := 0; j < g.Height(); j++ {
			for k := 0; k < g.Width(); k++ {
				if !isSurface(g, i, j, k) {
					continue
				}

				var idx [8]int
				for c, pos := range corners(i, j, k, size) {
					vi, ok := vertexIndex[pos]
					if !ok {
						vi = len(mesh.Vertices)
						vertexIndex[pos] = vi
						mesh.Vertices = append(mesh.Vertices, pos)
					}
					idx[c] = vi
				}

				quads := &quadsEven
				if (i+j+k)%2 != 0 {
					quads = &quadsOdd
				}
				for f, q := range quads {
					d := faceNeighbors[f]
					if g.Solid(i+d[0], j+d[1], k+d[2]) {
						continue // interior face, cancelled
					}
					mesh.Faces = append(mesh.Faces, [4]int{
						idx[q[0]], idx[q[1]], idx[q[2]], idx[q[3]],
					})
				}
			}
		}
	}
	return mesh
}
