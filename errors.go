package mobject

import "errors"

// Package errors for the geometry pipeline.
var (
	// ErrInvalidGeometryInput is returned when the control point count is
	// not a multiple of four.
	ErrInvalidGeometryInput = errors.New("mobject: control point count not a multiple of 4")

	// ErrDisposed is returned when a mobject is updated or disposed after
	// Dispose has already released its resources.
	ErrDisposed = errors.New("mobject: use after dispose")
)
