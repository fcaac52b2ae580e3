// Package voxel provides the shared data model for 3D binary occupancy
// analysis: a dense row-major occupancy Grid and the three standard
// adjacency models (6-, 18- and 26-connectivity) with precomputed,
// immutable neighbor-offset tables.
//
// What:
//
//   - Grid wraps a (depth × height × width) array of {0,1} cells with
//     O(1) row-major Index/Coordinate conversion and bounds checking.
//   - Adjacency selects the neighbor set used by flood-fill analyses:
//     Adj6 (face), Adj18 (face+edge) or Adj26 (face+edge+corner).
//   - Offsets(a) returns the shared offset table for a model, computed
//     once at package init and never mutated.
//
// Why:
//
//   - Surface extraction, component counting and cavity detection all
//     consume the same grid and the same neighbor tables; hoisting them
//     here keeps the analyzers stateless and free of duplicated tables.
//
// Concurrency:
//
//   - A Grid is never mutated by the analyzer packages, so a single
//     instance may be shared read-only across concurrent analyses.
//
// Errors:
//
//   - ErrEmptyGrid: a dimension is zero or negative.
//   - ErrDimensionMismatch: cell count does not equal depth×height×width.
//   - ErrInvalidAdjacency: adjacency model is not 6, 18 or 26.
package voxel
