// Package surface extracts a quad mesh of the exterior-facing faces of
// solid voxels in a binary occupancy grid.
//
// A voxel is a surface voxel when it is solid and at least one of its six
// face-adjacent neighbors is empty or outside the grid. Per surface voxel
// the eight corners of its unit cube are enumerated in a fixed canonical
// order and six quads are generated from fixed corner templates. Two
// extraction strategies share that logic and differ only in vertex and
// face retention:
//
//   - Naive: every surface voxel contributes eight fresh vertices and all
//     six of its faces. Coincident internal geometry between adjacent
//     surface voxels is kept. Simple, reproducible, larger output.
//   - Deduplicated: vertices are shared across voxels by exact coordinate
//     lookup, face winding alternates with the parity of i+j+k, and a
//     face is kept only when the neighbor across it is empty or outside
//     the grid, so every retained face borders exactly one solid voxel.
//
// Extraction is pure: the grid is never mutated and each call builds its
// own buffers.
//
// Complexity: O(V) time over the grid scan plus O(S) mesh work, where S
// is the surface-voxel count; memory O(S).
//
// Errors:
//
//   - ErrNilGrid: nil grid pointer.
//   - ErrOptionViolation: non-positive cube size or unknown mode.
package surface
