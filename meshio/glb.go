package meshio

import (
	"errors"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/voxtopo/voxtopo/surface"
)

// ErrOptionViolation is returned when an invalid GLB option is supplied.
var ErrOptionViolation = errors.New("meshio: invalid option supplied")

// GLBOption configures the glTF export via functional arguments.
type GLBOption func(*GLBOptions)

// GLBOptions holds glTF export parameters.
type GLBOptions struct {
	// Color is the RGBA base color factor of the single PBR material,
	// each channel in [0,1].
	Color [4]float32

	// Name labels the exported mesh node.
	Name string

	// internal error recorded during option parsing
	err error
}

// DefaultGLBOptions returns opaque white with a generic mesh name.
func DefaultGLBOptions() GLBOptions {
	return GLBOptions{Color: [4]float32{1, 1, 1, 1}, Name: "VoxelSurface"}
}

// WithColor sets the material base color; channels must lie in [0,1].
func WithColor(r, g, b, a float32) GLBOption {
	return func(o *GLBOptions) {
		for _, c := range [4]float32{r, g, b, a} {
			if c < 0 || c > 1 {
				o.err = fmt.Errorf("%w: color channel %v outside [0,1]", ErrOptionViolation, c)
				return
			}
		}
		o.Color = [4]float32{r, g, b, a}
	}
}

// WithName sets the exported mesh name.
func WithName(name string) GLBOption {
	return func(o *GLBOptions) {
		if name != "" {
			o.Name = name
		}
	}
}

// SaveGLB writes m as a binary glTF file with flat per-face normals and
// one PBR material. Quads are triangulated; the material picks alpha
// blending automatically when the color is translucent.
func SaveGLB(path string, m *surface.Mesh, opts ...GLBOption) error {
	if m == nil {
		return ErrNilMesh
	}
	o := DefaultGLBOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	positions := make([][3]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
	}

	tris := m.Triangles()
	indices := make([]uint32, 0, 3*len(tris))
	for _, t := range tris {
		indices = append(indices, uint32(t[0]), uint32(t[1]), uint32(t[2]))
	}

	normals := flatNormals(positions, indices)

	doc := gltf.NewDocument()
	doc.Asset.Generator = "voxtopo"

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	prim := &gltf.Primitive{
		Attributes: gltf.PrimitiveAttributes{
			gltf.POSITION: posAccessor,
			gltf.NORMAL:   normalAccessor,
		},
		Indices: gltf.Index(indicesAccessor),
	}

	color := [4]float64{
		float64(o.Color[0]), float64(o.Color[1]),
		float64(o.Color[2]), float64(o.Color[3]),
	}
	material := &gltf.Material{
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &color,
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
	}
	if o.Color[3] < 1 {
		material.AlphaMode = gltf.AlphaBlend
	} else {
		material.AlphaMode = gltf.AlphaOpaque
	}
	doc.Materials = []*gltf.Material{material}
	prim.Material = gltf.Index(0)

	doc.Meshes = []*gltf.Mesh{{Name: o.Name, Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("meshio: save glb %s: %w", path, err)
	}
	return nil
}

// flatNormals assigns each vertex the normal of the last triangle that
// references it; with per-voxel faces this yields flat facet shading.
func flatNormals(positions [][3]float32, indices []uint32) [][3]float32 {
	normals := make([][3]float32, len(positions))
	for i := 0; i+2 < len(indices); i += 3 {
		v0, v1, v2 := indices[i], indices[i+1], indices[i+2]
		p0, p1, p2 := positions[v0], positions[v1], positions[v2]
		e1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		e2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		n := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		length := float32(math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])))
		if length > 0 {
			n[0] /= length
			n[1] /= length
			n[2] /= length
		}
		normals[v0] = n
		normals[v1] = n
		normals[v2] = n
	}
	return normals
}
