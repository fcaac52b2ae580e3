package surface_test

import (
	"fmt"

	"github.com/voxtopo/voxtopo/surface"
	"github.com/voxtopo/voxtopo/voxel"
)

// ExampleExtract meshes a 2×2×2 solid block in both modes. Deduplicated
// keeps only the 24 outer faces on shared vertices; Naive keeps every
// face of every surface voxel on private vertices.
func ExampleExtract() {
	g, _ := voxel.FromSlice(2, 2, 2, []uint8{1, 1, 1, 1, 1, 1, 1, 1})

	dedup, _ := surface.Extract(g)
	fmt.Printf("deduplicated: %d vertices, %d faces\n", len(dedup.Vertices), len(dedup.Faces))

	naive, _ := surface.Extract(g, surface.WithMode(surface.Naive))
	fmt.Printf("naive: %d vertices, %d faces\n", len(naive.Vertices), len(naive.Faces))

	// Output:
	// deduplicated: 27 vertices, 24 faces
	// naive: 64 vertices, 48 faces
}
