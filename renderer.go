package mobject

// The interfaces in this file are the boundary to the rendering backend.
// A mobject RECEIVES its Renderer from the host application; it never
// creates one. The render/ sub-package provides the CPU reference
// implementation, GPU hosts supply their own.

// FillGeometry is a triangulated fill surface built from shapes.
type FillGeometry interface {
	// Update re-tessellates the geometry from shapes in place, reusing
	// buffers where possible. The contents before and after the call are
	// both valid geometry; there is no intermediate torn state.
	Update(shapes []*Shape) error

	// Release frees the GPU-side buffer. The geometry must not be used
	// afterwards.
	Release()
}

// LineGeometry is a renderable ribbon built from one sampled contour.
// Ribbons have no incremental update path; stroke geometry is always
// released and rebuilt from scratch.
type LineGeometry interface {
	Release()
}

// FillMaterial controls the appearance of a fill surface.
type FillMaterial interface {
	SetColor(c Color, opacity float64)
	Release()
}

// LineMaterial controls the appearance of stroke ribbons.
type LineMaterial interface {
	SetColor(c Color, opacity float64)
	SetWidth(w float64)
	Release()
}

// Renderer creates geometry and material resources for mobjects.
//
// FillGeometry must return a valid (possibly empty) geometry for an empty
// shape list, and LineGeometry likewise for a degenerate polyline: a
// mobject always owns exactly one fill and one stroke sub-object, even
// when there is nothing to draw.
type Renderer interface {
	FillGeometry(shapes []*Shape) (FillGeometry, error)
	LineGeometry(polyline []Point, width float64) (LineGeometry, error)
	FillMaterial(c Color, opacity float64) FillMaterial
	LineMaterial(c Color, opacity float64, width float64) LineMaterial
}
