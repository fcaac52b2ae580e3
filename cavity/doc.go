// Package cavity detects fully enclosed empty-space regions ("bubbles")
// in a binary occupancy grid under a chosen adjacency model.
//
// A bubble is a maximal connected region of empty voxels that never
// reaches the grid's outer boundary. The scan mirrors package
// connectivity but floods empty cells instead of solid ones; whenever a
// neighbor lookup during the fill falls outside the grid, the whole
// region is open space rather than a cavity. An all-zero grid is one
// empty region touching the boundary, hence zero bubbles.
//
// Each call allocates its own visited array and performs no I/O, so the
// same Grid may back concurrent calls.
//
// Complexity: O(V·d) time and O(V) memory.
//
// Errors:
//
//   - voxel.ErrInvalidAdjacency: model not in {6, 18, 26}; returned
//     before any traversal state is allocated.
//   - ErrNilGrid: nil grid pointer.
package cavity
