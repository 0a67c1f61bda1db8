// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/mobject"

// Option configures a Renderer during creation.
type Option func(*Renderer)

// WithTolerance sets the curve flattening tolerance (maximum chord
// deviation, in scene units) used for tessellation and ribbons.
func WithTolerance(tol float64) Option {
	return func(r *Renderer) {
		if tol > 0 {
			r.tolerance = tol
		}
	}
}

// Renderer implements mobject.Renderer on the CPU.
type Renderer struct {
	tolerance float64
}

// New creates a CPU renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{tolerance: mobject.DefaultFlattenTolerance}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FillGeometry tessellates shapes into a new fill mesh.
func (r *Renderer) FillGeometry(shapes []*mobject.Shape) (mobject.FillGeometry, error) {
	m := &Mesh{tolerance: r.tolerance}
	if err := m.Update(shapes); err != nil {
		return nil, err
	}
	return m, nil
}

// LineGeometry expands a sampled contour into a new ribbon mesh.
func (r *Renderer) LineGeometry(poly []mobject.Point, width float64) (mobject.LineGeometry, error) {
	return buildRibbon(poly, width), nil
}

// FillMaterial creates a fill material.
func (r *Renderer) FillMaterial(c mobject.Color, opacity float64) mobject.FillMaterial {
	return &FillMaterial{color: c, opacity: opacity}
}

// LineMaterial creates a stroke material.
func (r *Renderer) LineMaterial(c mobject.Color, opacity float64, width float64) mobject.LineMaterial {
	return &LineMaterial{color: c, opacity: opacity, width: width}
}
