// Package voxio loads and saves binary occupancy grids. It is the
// grid-loading collaborator of the analysis packages: the analyzers
// themselves never open files.
//
// Supported inputs:
//
//   - Delimited text: integer cell values separated by commas and/or
//     whitespace, in row-major (i,j,k) order.
//   - NumPy .npy arrays (format version 1.x, one byte per element,
//     C order).
//   - Raw bytes: one byte per cell, row-major.
//   - Any of the above gzip-compressed, selected by a .gz extension.
//
// Target dimensions always come from an explicit Config value; nothing
// is read from global state. Values are coerced to {0,1} on load.
//
// Errors:
//
//   - ErrFormat: the payload cannot be parsed in the requested format.
//   - voxel.ErrDimensionMismatch: element count ≠ depth×height×width.
package voxio
