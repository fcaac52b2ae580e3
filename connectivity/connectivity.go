package connectivity

import (
	"errors"

	"github.com/voxtopo/voxtopo/voxel"
)

// ErrNilGrid is returned if a nil grid pointer is passed.
var ErrNilGrid = errors.New("connectivity: grid is nil")

// Components returns every maximal connected set of solid voxels under
// the given adjacency model. Each component is a slice of row-major cell
// indices in BFS discovery order; components appear in scan order of
// their seed voxel. An all-empty grid yields an empty slice.
//
// Returns ErrNilGrid or voxel.ErrInvalidAdjacency before any traversal.
//
// Time: O(V·d), Memory: O(V).
func Components(g *voxel.Grid, adj voxel.Adjacency) ([][]int, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	offsets, err := voxel.Offsets(adj)
	if err != nil {
		return nil, err
	}

	total := g.Len()
	visited := make([]bool, total)
	var comps [][]int

	for idx := 0; idx < total; idx++ {
		if visited[idx] {
			continue
		}
		i, j, k := g.Coordinate(idx)
		if !g.Solid(i, j, k) {
			continue
		}
		comps = append(comps, flood(g, offsets, visited, idx))
	}
	return comps, nil
}

// Count returns the number of maximal connected solid components.
// Identical validation and traversal as Components.
//
// Time: O(V·d), Memory: O(V).
func Count(g *voxel.Grid, adj voxel.Adjacency) (int, error) {
	comps, err := Components(g, adj)
	if err != nil {
		return 0, err
	}
	return len(comps), nil
}

// flood collects the solid component seeded at start via breadth-first
// search, marking every reached cell in visited.
func flood(g *voxel.Grid, offsets [][3]int, visited []bool, start int) []int {
	queue := []int{start}
	visited[start] = true
	var comp []int

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		comp = append(comp, u)
		ui, uj, uk := g.Coordinate(u)
		for _, d := range offsets {
			ni, nj, nk := ui+d[0], uj+d[1], uk+d[2]
			if !g.Solid(ni, nj, nk) {
				continue
			}
			v := g.Index(ni, nj, nk)
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	return comp
}
