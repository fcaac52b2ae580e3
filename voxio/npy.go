package voxio

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/voxtopo/voxtopo/voxel"
)

// npyMagic opens every NumPy .npy file, followed by a two-byte version.
var npyMagic = []byte("\x93NUMPY")

// byte-per-element dtypes accepted for occupancy payloads. Byte order is
// irrelevant at one byte per element, so '|', '<' and '>' all appear.
var npyByteDescrs = map[string]bool{
	"|u1": true, "|i1": true, "|b1": true,
	"<u1": true, "<i1": true, ">u1": true, ">i1": true,
}

// ReadNPY parses a NumPy .npy array of one-byte elements in C order and
// builds a grid of the configured shape. The header's own shape is not
// trusted for layout — the explicit Config decides, exactly like the
// element count check on the other readers — but the payload length must
// match depth×height×width.
func ReadNPY(r io.Reader, cfg Config) (*voxel.Grid, error) {
	var magic [8]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: short npy preamble", ErrFormat)
	}
	if string(magic[:6]) != string(npyMagic) {
		return nil, fmt.Errorf("%w: missing npy magic", ErrFormat)
	}
	major := magic[6]

	var headerLen int
	switch major {
	case 1:
		var l uint16
		if err := binary.Read(r, binary.LittleEndian, &l); err != nil {
			return nil, fmt.Errorf("%w: short npy header length", ErrFormat)
		}
		headerLen = int(l)
	case 2, 3:
		var l uint32
		if err := binary.Read(r, binary.LittleEndian, &l); err != nil {
			return nil, fmt.Errorf("%w: short npy header length", ErrFormat)
		}
		headerLen = int(l)
	default:
		return nil, fmt.Errorf("%w: unsupported npy version %d", ErrFormat, major)
	}

	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: short npy header", ErrFormat)
	}
	if err := checkNPYHeader(string(header)); err != nil {
		return nil, err
	}

	cells, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("voxio: read: %w", err)
	}
	return toGrid(cells, cfg)
}

// checkNPYHeader validates the Python-dict header: one byte per element
// and C (non-Fortran) order.
func checkNPYHeader(h string) error {
	descr, ok := headerValue(h, "'descr'")
	if !ok || !npyByteDescrs[descr] {
		return fmt.Errorf("%w: npy dtype %q is not one byte per element", ErrFormat, descr)
	}
	if strings.Contains(h, "'fortran_order': True") {
		return fmt.Errorf("%w: npy fortran order not supported", ErrFormat)
	}
	return nil
}

// headerValue extracts the quoted value following a quoted key in the
// npy header dict, e.g. key "'descr'" in "{'descr': '|u1', ...}".
func headerValue(h, key string) (string, bool) {
	i := strings.Index(h, key)
	if i < 0 {
		return "", false
	}
	rest := h[i+len(key):]
	start := strings.IndexByte(rest, '\'')
	if start < 0 {
		return "", false
	}
	rest = rest[start+1:]
	end := strings.IndexByte(rest, '\'')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
