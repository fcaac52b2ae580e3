package voxel

import "errors"

// Sentinel errors for grid construction and adjacency selection.
var (
	// ErrEmptyGrid indicates a grid dimension that is zero or negative.
	ErrEmptyGrid = errors.New("voxel: grid dimensions must all be positive")
	// ErrDimensionMismatch indicates the supplied cell count does not
	// equal depth×height×width.
	ErrDimensionMismatch = errors.New("voxel: cell count does not match grid dimensions")
	// ErrInvalidAdjacency indicates an adjacency model other than 6, 18 or 26.
	ErrInvalidAdjacency = errors.New("voxel: adjacency model must be 6, 18 or 26")
)
