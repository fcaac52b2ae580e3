package voxel

// Adjacency selects which cells count as neighbors of a voxel.
// The numeric value is the neighbor count and doubles as the wire/CLI
// representation, so validation accepts exactly 6, 18 and 26.
type Adjacency int

const (
	// Adj6 connects the six face-adjacent cells (±1 on exactly one axis).
	Adj6 Adjacency = 6
	// Adj18 connects face- and edge-adjacent cells: every non-zero offset
	// with coordinates in {-1,0,1} and Manhattan norm ≤ 2.
	Adj18 Adjacency = 18
	// Adj26 connects all 26 non-zero offsets with coordinates in {-1,0,1}.
	Adj26 Adjacency = 26
)

// Valid reports whether a is one of the three defined models.
func (a Adjacency) Valid() bool {
	return a == Adj6 || a == Adj18 || a == Adj26
}

// Offset tables are built once at init and shared by every analysis.
// Adj6 keeps the axis-pair ordering of the classic face-neighbor list;
// the generated tables enumerate offsets in (di,dj,dk) scan order.
var (
	offsets6 = [][3]int{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	offsets18 = buildOffsets(2)
	offsets26 = buildOffsets(3)
)

// buildOffsets enumerates all non-zero offsets with coordinates in
// {-1,0,1} whose Manhattan norm does not exceed maxNorm.
func buildOffsets(maxNorm int) [][3]int {
	offs := make([][3]int, 0, 26)
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			for dk := -1; dk <= 1; dk++ {
				if di == 0 && dj == 0 && dk == 0 {
					continue
				}
				if abs(di)+abs(dj)+abs(dk) > maxNorm {
					continue
				}
				offs = append(offs, [3]int{di, dj, dk})
			}
		}
	}
	return offs
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Offsets returns the precomputed neighbor-offset table for a, or
// ErrInvalidAdjacency for any other value. The returned slice is shared
// and must be treated as read-only.
// Complexity: O(1).
func Offsets(a Adjacency) ([][3]int, error) {
	switch a {
	case Adj6:
		return offsets6, nil
	case Adj18:
		return offsets18, nil
	case Adj26:
		return offsets26, nil
	default:
		return nil, ErrInvalidAdjacency
	}
}
