package meshio

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/voxtopo/voxtopo/surface"
)

// SaveSTL writes m as a binary STL file. Quads are triangulated; facet
// normals are computed by the STL writer from the triangle winding.
func SaveSTL(path string, m *surface.Mesh) error {
	if m == nil {
		return ErrNilMesh
	}
	tris := m.Triangles()
	mesh := make([]*sdf.Triangle3, 0, len(tris))
	for _, t := range tris {
		var tri sdf.Triangle3
		for c, vi := range t {
			v := m.Vertices[vi]
			tri[c] = v3.Vec{X: v[0], Y: v[1], Z: v[2]}
		}
		mesh = append(mesh, &tri)
	}
	if err := render.SaveSTL(path, mesh); err != nil {
		return fmt.Errorf("meshio: save stl %s: %w", path, err)
	}
	return nil
}
