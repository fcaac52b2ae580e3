// Command voxtopo analyzes 3D binary occupancy grids: it meshes the
// exterior surface of the solid voxels and counts connected components
// and enclosed cavities under 6-, 18- or 26-connectivity.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/voxtopo/voxtopo/cavity"
	"github.com/voxtopo/voxtopo/connectivity"
	"github.com/voxtopo/voxtopo/meshio"
	"github.com/voxtopo/voxtopo/surface"
	"github.com/voxtopo/voxtopo/voxel"
	"github.com/voxtopo/voxtopo/voxio"
)

func usage() {
	fmt.Println("Usage: voxtopo <command> [flags]")
	fmt.Println("Commands:")
	fmt.Println("  info        print grid dimensions, solid count and fingerprint")
	fmt.Println("  mesh        extract the surface mesh and export .obj/.glb/.stl")
	fmt.Println("  components  count connected solid components")
	fmt.Println("  bubbles     count fully enclosed empty cavities")
	fmt.Println("Run 'voxtopo <command> -h' for command flags.")
}

// dimFlags registers the shared grid-shape flags on fs: either -size for
// a uniform cube or explicit -depth/-height/-width.
func dimFlags(fs *flag.FlagSet) (in *string, depth, height, width, size *int) {
	in = fs.String("in", "", "input voxel file (.csv/.txt, .npy, .bin/.raw, optionally .gz)")
	depth = fs.Int("depth", 0, "grid depth (i axis)")
	height = fs.Int("height", 0, "grid height (j axis)")
	width = fs.Int("width", 0, "grid width (k axis)")
	size = fs.Int("size", 0, "uniform size; sets depth, height and width at once")
	return in, depth, height, width, size
}

// loadGrid resolves the dimension flags and loads the input file.
func loadGrid(in string, depth, height, width, size int) (*voxel.Grid, error) {
	if in == "" {
		return nil, fmt.Errorf("no input file; pass -in")
	}
	if size > 0 {
		depth, height, width = size, size, size
	}
	cfg := voxio.Config{Depth: depth, Height: height, Width: width}
	return voxio.Load(in, cfg)
}

// parseAdjacency maps the -conn flag to an adjacency model, leaving
// validation to the analyzers.
func parseAdjacency(conn int) voxel.Adjacency {
	return voxel.Adjacency(conn)
}

// parseColor parses "r,g,b" or "r,g,b,a" with channels in [0,1].
func parseColor(s string) (c [4]float32, err error) {
	c = [4]float32{1, 1, 1, 1}
	if s == "" {
		return c, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return c, fmt.Errorf("color %q: want r,g,b or r,g,b,a", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return c, fmt.Errorf("color channel %q: %v", p, err)
		}
		c[i] = float32(v)
	}
	return c, nil
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	in, depth, height, width, size := dimFlags(fs)
	fs.Parse(args)

	g, err := loadGrid(*in, *depth, *height, *width, *size)
	if err != nil {
		return err
	}
	fmt.Printf("dimensions:  %d x %d x %d\n", g.Depth(), g.Height(), g.Width())
	fmt.Printf("solid cells: %d / %d\n", g.SolidCount(), g.Len())
	fmt.Printf("fingerprint: %016x\n", g.Fingerprint())
	return nil
}

func runMesh(args []string) error {
	fs := flag.NewFlagSet("mesh", flag.ExitOnError)
	in, depth, height, width, size := dimFlags(fs)
	out := fs.String("out", "", "output mesh file (.obj, .glb or .stl)")
	mode := fs.String("mode", "dedup", "extraction mode: dedup or naive")
	cube := fs.Float64("cube", 1.0, "voxel cube edge length")
	color := fs.String("color", "", "GLB material color r,g,b[,a] in [0,1]")
	name := fs.String("name", "", "GLB mesh name")
	rot90 := fs.Bool("rot90", false, "rotate the grid 90° in the height-width plane before meshing")
	fs.Parse(args)

	g, err := loadGrid(*in, *depth, *height, *width, *size)
	if err != nil {
		return err
	}
	if *rot90 {
		g = g.Rotate90()
	}

	opts := []surface.Option{surface.WithCubeSize(*cube)}
	switch *mode {
	case "dedup":
		opts = append(opts, surface.WithMode(surface.Deduplicated))
	case "naive":
		opts = append(opts, surface.WithMode(surface.Naive))
	default:
		return fmt.Errorf("unknown mode %q: want dedup or naive", *mode)
	}

	start := time.Now()
	m, err := surface.Extract(g, opts...)
	if err != nil {
		return err
	}
	fmt.Printf("extracted %d vertices, %d faces in %.4fs\n",
		len(m.Vertices), len(m.Faces), time.Since(start).Seconds())

	if *out == "" {
		return nil
	}
	switch strings.ToLower(filepath.Ext(*out)) {
	case ".obj":
		err = meshio.SaveOBJ(*out, m)
	case ".glb":
		rgba, cerr := parseColor(*color)
		if cerr != nil {
			return cerr
		}
		glbOpts := []meshio.GLBOption{meshio.WithColor(rgba[0], rgba[1], rgba[2], rgba[3])}
		if *name != "" {
			glbOpts = append(glbOpts, meshio.WithName(*name))
		}
		err = meshio.SaveGLB(*out, m, glbOpts...)
	case ".stl":
		err = meshio.SaveSTL(*out, m)
	default:
		return fmt.Errorf("unknown output format %q: want .obj, .glb or .stl", *out)
	}
	if err != nil {
		return err
	}

	if info, serr := os.Stat(*out); serr == nil {
		fmt.Printf("wrote %s (%d bytes)\n", *out, info.Size())
	}
	return nil
}

func runComponents(args []string) error {
	fs := flag.NewFlagSet("components", flag.ExitOnError)
	in, depth, height, width, size := dimFlags(fs)
	conn := fs.Int("conn", 6, "adjacency model: 6, 18 or 26")
	fs.Parse(args)

	g, err := loadGrid(*in, *depth, *height, *width, *size)
	if err != nil {
		return err
	}

	start := time.Now()
	n, err := connectivity.Count(g, parseAdjacency(*conn))
	if err != nil {
		return err
	}
	fmt.Printf("connected components (%d-connectivity): %d in %.4fs\n",
		*conn, n, time.Since(start).Seconds())
	return nil
}

func runBubbles(args []string) error {
	fs := flag.NewFlagSet("bubbles", flag.ExitOnError)
	in, depth, height, width, size := dimFlags(fs)
	conn := fs.Int("conn", 6, "adjacency model: 6, 18 or 26")
	fs.Parse(args)

	g, err := loadGrid(*in, *depth, *height, *width, *size)
	if err != nil {
		return err
	}

	start := time.Now()
	n, err := cavity.Count(g, parseAdjacency(*conn))
	if err != nil {
		return err
	}
	fmt.Printf("bubbles (%d-connectivity): %d in %.4fs\n",
		*conn, n, time.Since(start).Seconds())
	return nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "info":
		err = runInfo(os.Args[2:])
	case "mesh":
		err = runMesh(os.Args[2:])
	case "components":
		err = runComponents(os.Args[2:])
	case "bubbles":
		err = runBubbles(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
