package meshio_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxtopo/voxtopo/meshio"
	"github.com/voxtopo/voxtopo/surface"
	"github.com/voxtopo/voxtopo/voxel"
)

// singleVoxelMesh extracts the deduplicated mesh of one solid voxel:
// 8 vertices, 6 quads.
func singleVoxelMesh(t *testing.T) *surface.Mesh {
	t.Helper()
	g, err := voxel.FromSlice(1, 1, 1, []uint8{1})
	require.NoError(t, err)
	m, err := surface.Extract(g)
	require.NoError(t, err)
	return m
}

// TestWriteOBJ checks line structure and 1-based quad indexing.
func TestWriteOBJ(t *testing.T) {
	m := singleVoxelMesh(t)

	var buf bytes.Buffer
	require.NoError(t, meshio.WriteOBJ(&buf, m))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+8+6) // comment + vertices + faces

	assert.True(t, strings.HasPrefix(lines[0], "#"))
	for _, l := range lines[1:9] {
		assert.Truef(t, strings.HasPrefix(l, "v "), "vertex line %q", l)
	}
	for _, l := range lines[9:] {
		require.Truef(t, strings.HasPrefix(l, "f "), "face line %q", l)
		require.Len(t, strings.Fields(l), 5, "quad face")
	}
	// First vertex is the canonical bottom-front-left corner.
	assert.Equal(t, "v 0 0 0", lines[1])
	// First face references the first four vertices, 1-based.
	assert.Equal(t, "f 1 2 3 4", lines[9])
}

// TestWriteOBJ_NilMesh rejects nil input.
func TestWriteOBJ_NilMesh(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, meshio.WriteOBJ(&buf, nil), meshio.ErrNilMesh)
}

// TestSaveGLB_RoundTrip saves a GLB and reopens it with the gltf reader
// to verify document structure and material color.
func TestSaveGLB_RoundTrip(t *testing.T) {
	m := singleVoxelMesh(t)
	path := filepath.Join(t.TempDir(), "cube.glb")

	err := meshio.SaveGLB(path, m,
		meshio.WithColor(1, 0, 0, 1),
		meshio.WithName("Cube"),
	)
	require.NoError(t, err)

	doc, err := gltf.Open(path)
	require.NoError(t, err)
	require.Len(t, doc.Meshes, 1)
	assert.Equal(t, "Cube", doc.Meshes[0].Name)
	require.Len(t, doc.Meshes[0].Primitives, 1)
	require.Len(t, doc.Materials, 1)

	prim := doc.Meshes[0].Primitives[0]
	require.NotNil(t, prim.Indices)
	assert.Contains(t, prim.Attributes, gltf.POSITION)
	assert.Contains(t, prim.Attributes, gltf.NORMAL)

	// One node carrying the mesh, registered in the default scene.
	require.Len(t, doc.Nodes, 1)
	require.NotNil(t, doc.Nodes[0].Mesh)
	assert.Equal(t, 0, *doc.Nodes[0].Mesh)
	assert.Equal(t, []int{0}, doc.Scenes[0].Nodes)

	pbr := doc.Materials[0].PBRMetallicRoughness
	require.NotNil(t, pbr)
	require.NotNil(t, pbr.BaseColorFactor)
	assert.Equal(t, [4]float64{1, 0, 0, 1}, *pbr.BaseColorFactor)
	assert.Equal(t, gltf.AlphaOpaque, doc.Materials[0].AlphaMode)
}

// TestSaveGLB_BadColor rejects out-of-range channels before writing.
func TestSaveGLB_BadColor(t *testing.T) {
	m := singleVoxelMesh(t)
	path := filepath.Join(t.TempDir(), "cube.glb")
	err := meshio.SaveGLB(path, m, meshio.WithColor(2, 0, 0, 1))
	assert.ErrorIs(t, err, meshio.ErrOptionViolation)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file written on option error")
}

// TestSaveSTL checks the binary STL layout: 80-byte header, uint32
// triangle count, 50 bytes per triangle.
func TestSaveSTL(t *testing.T) {
	m := singleVoxelMesh(t)
	path := filepath.Join(t.TempDir(), "cube.stl")
	require.NoError(t, meshio.SaveSTL(path, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	wantTris := 2 * len(m.Faces)
	require.Equal(t, 80+4+50*wantTris, len(data))
	assert.Equal(t, uint32(wantTris), binary.LittleEndian.Uint32(data[80:84]))
}
