package voxel

import (
	"errors"
	"testing"
)

// TestOffsets_TableShapes verifies size, uniqueness and the defining
// constraint of each adjacency model.
func TestOffsets_TableShapes(t *testing.T) {
	cases := []struct {
		adj     Adjacency
		size    int
		maxNorm int
	}{
		{Adj6, 6, 1},
		{Adj18, 18, 2},
		{Adj26, 26, 3},
	}
	for _, c := range cases {
		offs, err := Offsets(c.adj)
		if err != nil {
			t.Fatalf("Offsets(%d) failed: %v", c.adj, err)
		}
		if len(offs) != c.size {
			t.Fatalf("Offsets(%d): got %d offsets; want %d", c.adj, len(offs), c.size)
		}
		seen := make(map[[3]int]bool, len(offs))
		for _, o := range offs {
			if o == [3]int{0, 0, 0} {
				t.Errorf("Offsets(%d) contains the zero offset", c.adj)
			}
			if seen[o] {
				t.Errorf("Offsets(%d) contains duplicate offset %v", c.adj, o)
			}
			seen[o] = true
			norm := abs(o[0]) + abs(o[1]) + abs(o[2])
			if norm > c.maxNorm {
				t.Errorf("Offsets(%d) offset %v has Manhattan norm %d > %d", c.adj, o, norm, c.maxNorm)
			}
			for _, d := range o {
				if d < -1 || d > 1 {
					t.Errorf("Offsets(%d) offset %v leaves the unit cube", c.adj, o)
				}
			}
		}
	}
}

// TestOffsets_Subsets checks N6 ⊂ N18 ⊂ N26, which underpins the
// adjacency-monotonicity property of the analyzers.
func TestOffsets_Subsets(t *testing.T) {
	in := func(offs [][3]int, o [3]int) bool {
		for _, x := range offs {
			if x == o {
				return true
			}
		}
		return false
	}
	o6, _ := Offsets(Adj6)
	o18, _ := Offsets(Adj18)
	o26, _ := Offsets(Adj26)
	for _, o := range o6 {
		if !in(o18, o) {
			t.Errorf("offset %v in N6 but not N18", o)
		}
	}
	for _, o := range o18 {
		if !in(o26, o) {
			t.Errorf("offset %v in N18 but not N26", o)
		}
	}
}

// TestOffsets_Invalid ensures every undefined model is rejected.
func TestOffsets_Invalid(t *testing.T) {
	for _, a := range []Adjacency{0, 1, 7, -6, 27} {
		if _, err := Offsets(a); !errors.Is(err, ErrInvalidAdjacency) {
			t.Errorf("Offsets(%d): got %v; want ErrInvalidAdjacency", a, err)
		}
		if a.Valid() {
			t.Errorf("Adjacency(%d).Valid() = true; want false", a)
		}
	}
	for _, a := range []Adjacency{Adj6, Adj18, Adj26} {
		if !a.Valid() {
			t.Errorf("Adjacency(%d).Valid() = false; want true", a)
		}
	}
}
