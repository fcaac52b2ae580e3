package meshio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/voxtopo/voxtopo/surface"
)

// ErrNilMesh is returned if a nil mesh pointer is passed to an exporter.
var ErrNilMesh = errors.New("meshio: mesh is nil")

// WriteOBJ writes m as Wavefront OBJ: one v line per vertex and one
// quad f line per face, with OBJ's 1-based indexing.
func WriteOBJ(w io.Writer, m *surface.Mesh) error {
	if m == nil {
		return ErrNilMesh
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "# voxtopo surface mesh: %d vertices, %d faces\n",
		len(m.Vertices), len(m.Faces)); err != nil {
		return fmt.Errorf("meshio: write obj: %w", err)
	}
	for _, v := range m.Vertices {
		bw.WriteString("v ")
		bw.WriteString(strconv.FormatFloat(v[0], 'g', -1, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(v[1], 'g', -1, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(v[2], 'g', -1, 64))
		bw.WriteByte('\n')
	}
	for _, f := range m.Faces {
		fmt.Fprintf(bw, "f %d %d %d %d\n", f[0]+1, f[1]+1, f[2]+1, f[3]+1)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("meshio: write obj: %w", err)
	}
	return nil
}

// SaveOBJ writes m to an OBJ file at path.
func SaveOBJ(path string, m *surface.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("meshio: create %s: %w", path, err)
	}
	if err := WriteOBJ(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
