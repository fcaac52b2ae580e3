// Package connectivity counts and enumerates connected components of
// solid voxels in a binary occupancy grid under a chosen adjacency model
// (6-, 18- or 26-connectivity).
//
// The algorithm is a deterministic row-major scan with a breadth-first
// flood fill: the first unvisited solid voxel in scan order seeds a new
// component, and the fill marks every solid voxel reachable through the
// model's neighbor offsets. Scan order fixes which voxel seeds each
// component and the order of cells inside a component, but not the count.
//
// Each call allocates its own visited array and performs no I/O, so the
// same Grid may back concurrent calls.
//
// Complexity: O(V·d) time and O(V) memory, where V is the total voxel
// count and d the neighbor count of the model.
//
// Errors:
//
//   - voxel.ErrInvalidAdjacency: model not in {6, 18, 26}; returned
//     before any traversal state is allocated.
//   - ErrNilGrid: nil grid pointer.
package connectivity
