// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/mobject"
)

// Mesh is a triangulated fill surface. Vertices are packed XYZ float32
// triples with z = 0; indices form a triangle list.
//
// Update re-tessellates in place, truncating and re-appending into the
// existing buffers so steady-state rebuilds do not reallocate.
type Mesh struct {
	vertices  []float32
	indices   []uint32
	tolerance float64
	released  bool
}

// Update re-tessellates the mesh from shapes. It returns ErrReleased if the
// mesh has been released. An empty shape list yields valid empty geometry.
func (m *Mesh) Update(shapes []*mobject.Shape) error {
	if m.released {
		return ErrReleased
	}
	tol := m.tolerance
	if tol <= 0 {
		tol = mobject.DefaultFlattenTolerance
	}
	m.vertices = m.vertices[:0]
	m.indices = m.indices[:0]
	for _, s := range shapes {
		m.vertices, m.indices = appendShape(m.vertices, m.indices, s, tol)
	}
	return nil
}

// Release frees the mesh buffers. Releasing twice logs a warning and is
// otherwise a no-op; lifecycle misuse is reported at the mobject layer.
func (m *Mesh) Release() {
	if m.released {
		mobject.Logger().Warn("render: double release of fill mesh")
		return
	}
	m.released = true
	m.vertices = nil
	m.indices = nil
}

// Released reports whether Release has been called.
func (m *Mesh) Released() bool { return m.released }

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) / 3 }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.indices) / 3 }

// Vertices returns the packed XYZ vertex buffer. Read-only.
func (m *Mesh) Vertices() []float32 { return m.vertices }

// Indices returns the triangle index buffer. Read-only.
func (m *Mesh) Indices() []uint32 { return m.indices }

// Positions3 returns the vertices as XYZ triples, the layout expected by
// mesh exporters.
func (m *Mesh) Positions3() [][3]float32 {
	out := make([][3]float32, 0, len(m.vertices)/3)
	for i := 0; i+2 < len(m.vertices); i += 3 {
		out = append(out, [3]float32{m.vertices[i], m.vertices[i+1], m.vertices[i+2]})
	}
	return out
}

// LineMesh is a stroke ribbon built from one sampled contour. Unlike Mesh
// it has no update path: stroke geometry is always rebuilt from scratch.
type LineMesh struct {
	vertices []float32
	indices  []uint32
	released bool
}

// Release frees the ribbon buffers. Releasing twice logs a warning.
func (m *LineMesh) Release() {
	if m.released {
		mobject.Logger().Warn("render: double release of line mesh")
		return
	}
	m.released = true
	m.vertices = nil
	m.indices = nil
}

// Released reports whether Release has been called.
func (m *LineMesh) Released() bool { return m.released }

// VertexCount returns the number of vertices.
func (m *LineMesh) VertexCount() int { return len(m.vertices) / 3 }

// TriangleCount returns the number of triangles.
func (m *LineMesh) TriangleCount() int { return len(m.indices) / 3 }

// Vertices returns the packed XYZ vertex buffer. Read-only.
func (m *LineMesh) Vertices() []float32 { return m.vertices }

// Indices returns the triangle index buffer. Read-only.
func (m *LineMesh) Indices() []uint32 { return m.indices }

// Positions3 returns the vertices as XYZ triples.
func (m *LineMesh) Positions3() [][3]float32 {
	out := make([][3]float32, 0, len(m.vertices)/3)
	for i := 0; i+2 < len(m.vertices); i += 3 {
		out = append(out, [3]float32{m.vertices[i], m.vertices[i+1], m.vertices[i+2]})
	}
	return out
}
