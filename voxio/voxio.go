package voxio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/klauspost/compress/gzip"

	"github.com/voxtopo/voxtopo/voxel"
)

// ErrFormat indicates a payload that cannot be parsed in the requested
// format.
var ErrFormat = errors.New("voxio: unparsable voxel data")

// Config holds the target grid dimensions for a load. It replaces any
// global configuration surface: callers pass it explicitly.
type Config struct {
	Depth, Height, Width int
}

// total returns the expected cell count.
func (c Config) total() int { return c.Depth * c.Height * c.Width }

// Load reads the voxel file at path into a grid of the configured shape.
// The format is selected by extension: .npy is a NumPy array, .bin and
// .raw are one raw byte per cell, anything else is delimited text. A
// trailing .gz wraps any of these in gzip.
//
// Returns ErrFormat for unparsable data, voxel.ErrDimensionMismatch when
// the element count differs from depth×height×width, and
// voxel.ErrEmptyGrid for non-positive dimensions.
func Load(path string, cfg Config) (*voxel.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("voxio: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	name := path
	if strings.EqualFold(filepath.Ext(name), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: bad gzip stream: %v", ErrFormat, err)
		}
		defer gz.Close()
		r = gz
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".npy":
		return ReadNPY(r, cfg)
	case ".bin", ".raw":
		return ReadRaw(r, cfg)
	default:
		return ReadText(r, cfg)
	}
}

// ReadText parses integer or float cell values separated by commas
// and/or whitespace, in row-major order, coercing non-zero values to 1.
func ReadText(r io.Reader, cfg Config) (*voxel.Grid, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("voxio: read: %w", err)
	}
	fields := strings.FieldsFunc(string(raw), func(c rune) bool {
		return c == ',' || c == ';' || unicode.IsSpace(c)
	})

	cells := make([]uint8, 0, cfg.total())
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad cell value %q", ErrFormat, f)
		}
		if v != 0 {
			cells = append(cells, 1)
		} else {
			cells = append(cells, 0)
		}
	}
	return toGrid(cells, cfg)
}

// ReadRaw reads one byte per cell in row-major order.
func ReadRaw(r io.Reader, cfg Config) (*voxel.Grid, error) {
	cells, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("voxio: read: %w", err)
	}
	return toGrid(cells, cfg)
}

// toGrid builds the grid, decorating a count mismatch with both counts.
func toGrid(cells []uint8, cfg Config) (*voxel.Grid, error) {
	g, err := voxel.FromSlice(cfg.Depth, cfg.Height, cfg.Width, cells)
	if errors.Is(err, voxel.ErrDimensionMismatch) {
		return nil, fmt.Errorf("%w: got %d cells, want %d×%d×%d = %d",
			voxel.ErrDimensionMismatch, len(cells), cfg.Depth, cfg.Height, cfg.Width, cfg.total())
	}
	return g, err
}

// Save writes the grid as one raw byte per cell, row-major, gzipped when
// path ends in .gz. The counterpart of Load for .bin/.raw fixtures.
func Save(path string, g *voxel.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("voxio: create %s: %w", path, err)
	}
	defer f.Close()

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	buf := make([]byte, 0, g.Len())
	for idx := 0; idx < g.Len(); idx++ {
		i, j, k := g.Coordinate(idx)
		buf = append(buf, g.At(i, j, k))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("voxio: write %s: %w", path, err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("voxio: write %s: %w", path, err)
		}
	}
	return f.Close()
}
