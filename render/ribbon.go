// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/mobject"
)

// Line-ribbon building: a sampled contour is expanded into a triangle
// ribbon by offsetting each vertex to both sides of the line, with miter
// joins clamped to a fixed limit. The ribbon is a fill mesh in disguise;
// there is no shader-side widening in the CPU renderer.

// miterLimit caps the join offset at sharp corners, in multiples of the
// half width.
const miterLimit = 4.0

type vec2 struct{ x, y float32 }

func (v vec2) add(w vec2) vec2      { return vec2{v.x + w.x, v.y + w.y} }
func (v vec2) sub(w vec2) vec2      { return vec2{v.x - w.x, v.y - w.y} }
func (v vec2) scale(s float32) vec2 { return vec2{v.x * s, v.y * s} }
func (v vec2) dot(w vec2) float32   { return v.x*w.x + v.y*w.y }
func (v vec2) perp() vec2           { return vec2{-v.y, v.x} }

func (v vec2) normalize() vec2 {
	l := math32.Hypot(v.x, v.y)
	if l < 1e-12 {
		return vec2{}
	}
	return vec2{v.x / l, v.y / l}
}

// buildRibbon expands poly into a ribbon of the given total width. A
// polyline with fewer than two distinct points yields valid empty
// geometry. A closed polyline (last point coincident with the first) gets
// wrapped joins instead of end caps.
func buildRibbon(poly []mobject.Point, width float64) *LineMesh {
	mesh := &LineMesh{}
	if len(poly) < 2 || width <= 0 {
		return mesh
	}

	closed := poly[0].ApproxEqual(poly[len(poly)-1], mobject.CoincidenceTolerance)
	pts := make([]vec2, 0, len(poly))
	for _, p := range poly {
		pts = append(pts, vec2{float32(p.X), float32(p.Y)})
	}
	if closed {
		pts = pts[:len(pts)-1]
	}
	n := len(pts)
	if n < 2 {
		return mesh
	}

	half := float32(width / 2)
	mesh.vertices = make([]float32, 0, n*6)
	for i := 0; i < n; i++ {
		var nPrev, nNext vec2
		if i > 0 || closed {
			prev := pts[(i+n-1)%n]
			nPrev = pts[i].sub(prev).normalize().perp()
		}
		if i < n-1 || closed {
			next := pts[(i+1)%n]
			nNext = next.sub(pts[i]).normalize().perp()
		}

		var offset vec2
		switch {
		case nPrev == (vec2{}):
			offset = nNext.scale(half)
		case nNext == (vec2{}):
			offset = nPrev.scale(half)
		default:
			miter := nPrev.add(nNext).normalize()
			denom := miter.dot(nNext)
			if denom < 1.0/miterLimit {
				denom = 1.0 / miterLimit
			}
			offset = miter.scale(half / denom)
		}

		l := pts[i].add(offset)
		r := pts[i].sub(offset)
		mesh.vertices = append(mesh.vertices, l.x, l.y, 0, r.x, r.y, 0)
	}

	segs := n - 1
	if closed {
		segs = n
	}
	mesh.indices = make([]uint32, 0, segs*6)
	for i := 0; i < segs; i++ {
		a := uint32(i * 2)
		b := uint32(((i + 1) % n) * 2)
		mesh.indices = append(mesh.indices,
			a, a+1, b,
			a+1, b+1, b,
		)
	}
	return mesh
}
