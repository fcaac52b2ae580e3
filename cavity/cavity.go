package cavity

import (
	"errors"

	"github.com/voxtopo/voxtopo/voxel"
)

// ErrNilGrid is returned if a nil grid pointer is passed.
var ErrNilGrid = errors.New("cavity: grid is nil")

// Bubbles returns every maximal connected region of empty voxels that
// never touches the grid boundary, under the given adjacency model.
// Each bubble is a slice of row-major cell indices in BFS discovery
// order; bubbles appear in scan order of their seed voxel.
//
// Returns ErrNilGrid or voxel.ErrInvalidAdjacency before any traversal.
//
// Time: O(V·d), Memory: O(V).
func Bubbles(g *voxel.Grid, adj voxel.Adjacency) ([][]int, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	offsets, err := voxel.Offsets(adj)
	if err != nil {
		return nil, err
	}

	total := g.Len()
	visited := make([]bool, total)
	var bubbles [][]int

	for idx := 0; idx < total; idx++ {
		if visited[idx] {
			continue
		}
		i, j, k := g.Coordinate(idx)
		if g.At(i, j, k) == 1 {
			continue
		}
		region, enclosed := flood(g, offsets, visited, idx)
		if enclosed {
			bubbles = append(bubbles, region)
		}
	}
	return bubbles, nil
}

// Count returns the number of enclosed bubbles; never negative.
// Identical validation and traversal as Bubbles.
//
// Time: O(V·d), Memory: O(V).
func Count(g *voxel.Grid, adj voxel.Adjacency) (int, error) {
	bubbles, err := Bubbles(g, adj)
	if err != nil {
		return 0, err
	}
	return len(bubbles), nil
}

// flood collects the empty region seeded at start via breadth-first
// search. It reports enclosed=false as soon as any neighbor lookup
// leaves the grid: the region then drains to open space.
func flood(g *voxel.Grid, offsets [][3]int, visited []bool, start int) (region []int, enclosed bool) {
	queue := []int{start}
	visited[start] = true
	enclosed = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		region = append(region, u)
		ui, uj, uk := g.Coordinate(u)
		for _, d := range offsets {
			ni, nj, nk := ui+d[0], uj+d[1], uk+d[2]
			if !g.InBounds(ni, nj, nk) {
				enclosed = false
				continue
			}
			if g.At(ni, nj, nk) == 1 {
				continue
			}
			v := g.Index(ni, nj, nk)
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	return region, enclosed
}
