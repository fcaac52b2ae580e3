// Package voxtopo analyzes dense 3D binary occupancy grids ("voxel
// data": 1 = solid, 0 = empty) and produces three independent results:
// a watertight surface mesh of the exterior-facing faces of the solid
// voxels, the number of connected solid clusters, and the number of
// fully enclosed empty cavities ("bubbles").
//
// 🚀 What is voxtopo?
//
//	A small, pure-Go analysis toolkit built from composable packages:
//		• voxel        — the occupancy Grid and the 6/18/26 adjacency tables
//		• surface      — quad-mesh extraction (naive or deduplicated)
//		• connectivity — flood-fill component counting
//		• cavity       — enclosed-bubble detection
//		• voxio        — text/.npy/raw loaders with explicit dimensions
//		• meshio       — OBJ, GLB and STL exporters
//		• cmd/voxtopo  — the command-line front end
//
// ✨ Why choose voxtopo?
//
//   - Deterministic – fixed scan order, reproducible meshes and counts
//   - Pure computation – analyzers never touch files or global state
//   - Safe to share – a Grid is read-only during analysis, so one grid
//     can back concurrent analyses under different adjacency models
//
// Quick ASCII example, one solid 3×3×3 block with a hollow center:
//
//	layer 0   layer 1   layer 2
//	1 1 1     1 1 1     1 1 1
//	1 1 1     1 0 1     1 1 1
//	1 1 1     1 1 1     1 1 1
//
// yields one connected component, one bubble, and a 54-face surface mesh.
//
// Dive into each package's doc.go for contracts, complexity notes and
// error taxonomies.
//
//	go get github.com/voxtopo/voxtopo
package voxtopo
