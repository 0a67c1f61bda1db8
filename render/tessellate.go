// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"
	"sort"

	"github.com/gogpu/mobject"
)

// Fill tessellation: each shape's contours are flattened to rings, holes
// are bridged into the outer ring (earcut-style hole elimination), and the
// resulting simple polygon is ear-clipped into a triangle list.

// appendShape tessellates one shape into the vertex/index buffers and
// returns the extended slices. Indices are offset by the vertices already
// present, so shapes accumulate into a single mesh.
func appendShape(vertices []float32, indices []uint32, s *mobject.Shape, tol float64) ([]float32, []uint32) {
	outer := flattenRing(s.Outer, tol)
	if len(outer) < 3 {
		return vertices, indices
	}
	// Ear clipping wants a CCW outer ring and CW holes.
	if signedArea(outer) < 0 {
		reverseRing(outer)
	}
	holes := make([][]mobject.Point, 0, len(s.Holes))
	for _, h := range s.Holes {
		ring := flattenRing(h, tol)
		if len(ring) < 3 {
			continue
		}
		if signedArea(ring) > 0 {
			reverseRing(ring)
		}
		holes = append(holes, ring)
	}

	poly := mergeHoles(outer, holes)
	tris := earClip(poly)

	base := uint32(len(vertices) / 3)
	for _, pt := range poly {
		vertices = append(vertices, float32(pt.X), float32(pt.Y), 0)
	}
	for _, idx := range tris {
		indices = append(indices, base+idx)
	}
	return vertices, indices
}

// flattenRing samples a contour and drops the duplicate closing vertex.
func flattenRing(p *mobject.Path, tol float64) []mobject.Point {
	pts := p.Flatten(tol)
	for len(pts) > 1 && pts[len(pts)-1].ApproxEqual(pts[0], mobject.CoincidenceTolerance) {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// signedArea returns the shoelace area of the ring: positive for CCW.
func signedArea(ring []mobject.Point) float64 {
	var sum float64
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		sum += ring[j].Cross(ring[i])
		j = i
	}
	return sum / 2
}

func reverseRing(ring []mobject.Point) {
	for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}
}

// mergeHoles splices every hole into the outer ring via bridge edges,
// producing one simple polygon. Holes are processed right-to-left (by
// rightmost vertex) so bridges never cross holes merged later.
func mergeHoles(outer []mobject.Point, holes [][]mobject.Point) []mobject.Point {
	if len(holes) == 0 {
		return outer
	}
	sort.SliceStable(holes, func(a, b int) bool {
		return maxX(holes[a]) > maxX(holes[b])
	})
	merged := outer
	for _, hole := range holes {
		merged = bridgeHole(merged, hole)
	}
	return merged
}

func maxX(ring []mobject.Point) float64 {
	m := math.Inf(-1)
	for _, p := range ring {
		if p.X > m {
			m = p.X
		}
	}
	return m
}

// bridgeHole connects the hole's rightmost vertex to a mutually visible
// vertex of the outer ring and splices the hole in, duplicating both
// bridge endpoints.
func bridgeHole(outer, hole []mobject.Point) []mobject.Point {
	hi := 0
	for i, p := range hole {
		if p.X > hole[hi].X {
			hi = i
		}
	}
	hp := hole[hi]

	best := -1
	bestD := math.Inf(1)
	// Prefer outer vertices to the right of the hole; fall back to all.
	for pass := 0; pass < 2 && best < 0; pass++ {
		for oi, op := range outer {
			if pass == 0 && op.X < hp.X {
				continue
			}
			d := op.Sub(hp).LengthSquared()
			if d >= bestD {
				continue
			}
			if bridgeClear(hp, op, outer, hole) {
				best = oi
				bestD = d
			}
		}
	}
	if best < 0 {
		// Degenerate input (self-touching rings); splice at the nearest
		// vertex and let ear clipping's fan fallback cope.
		best = 0
		for oi, op := range outer {
			if op.Sub(hp).LengthSquared() < outer[best].Sub(hp).LengthSquared() {
				best = oi
			}
		}
	}

	out := make([]mobject.Point, 0, len(outer)+len(hole)+2)
	out = append(out, outer[:best+1]...)
	for k := 0; k <= len(hole); k++ {
		out = append(out, hole[(hi+k)%len(hole)])
	}
	out = append(out, outer[best:]...)
	return out
}

// bridgeClear reports whether the candidate bridge from a to b crosses any
// edge of the given rings. Edges sharing a bridge endpoint are ignored.
func bridgeClear(a, b mobject.Point, rings ...[]mobject.Point) bool {
	for _, ring := range rings {
		j := len(ring) - 1
		for i := 0; i < len(ring); i++ {
			p, q := ring[j], ring[i]
			j = i
			if touches(p, a) || touches(p, b) || touches(q, a) || touches(q, b) {
				continue
			}
			if segmentsIntersect(a, b, p, q) {
				return false
			}
		}
	}
	return true
}

func touches(p, q mobject.Point) bool {
	return p.ApproxEqual(q, mobject.CoincidenceTolerance)
}

// segmentsIntersect reports proper intersection of segments ab and cd.
func segmentsIntersect(a, b, c, d mobject.Point) bool {
	d1 := orient(c, d, a)
	d2 := orient(c, d, b)
	d3 := orient(a, b, c)
	d4 := orient(a, b, d)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(c, d, a)) ||
		(d2 == 0 && onSegment(c, d, b)) ||
		(d3 == 0 && onSegment(a, b, c)) ||
		(d4 == 0 && onSegment(a, b, d))
}

func orient(a, b, c mobject.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func onSegment(a, b, p mobject.Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// earClip triangulates a simple CCW polygon (bridge-merged, so duplicate
// vertices are expected) and returns indices into poly. If no ear can be
// found — possible for the degenerate rings the bridge fallback admits —
// the remainder is fan-triangulated so the algorithm always terminates.
func earClip(poly []mobject.Point) []uint32 {
	n := len(poly)
	if n < 3 {
		return nil
	}
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	tris := make([]uint32, 0, (n-2)*3)

	for len(remaining) > 3 {
		clipped := false
		for i := 0; i < len(remaining); i++ {
			ia := remaining[(i+len(remaining)-1)%len(remaining)]
			ib := remaining[i]
			ic := remaining[(i+1)%len(remaining)]
			a, b, c := poly[ia], poly[ib], poly[ic]

			if orient(a, b, c) <= 0 {
				continue // reflex or collinear corner
			}
			if anyVertexInside(poly, remaining, ia, ib, ic) {
				continue
			}
			tris = append(tris, uint32(ia), uint32(ib), uint32(ic))
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Fan fallback over whatever is left.
			for i := 1; i+1 < len(remaining); i++ {
				tris = append(tris,
					uint32(remaining[0]), uint32(remaining[i]), uint32(remaining[i+1]))
			}
			return tris
		}
	}
	tris = append(tris,
		uint32(remaining[0]), uint32(remaining[1]), uint32(remaining[2]))
	return tris
}

// anyVertexInside reports whether any remaining vertex other than the ear
// corners lies strictly inside triangle abc. Vertices coincident with a
// corner (the duplicated bridge endpoints) do not block an ear.
func anyVertexInside(poly []mobject.Point, remaining []int, ia, ib, ic int) bool {
	a, b, c := poly[ia], poly[ib], poly[ic]
	for _, iv := range remaining {
		if iv == ia || iv == ib || iv == ic {
			continue
		}
		v := poly[iv]
		if touches(v, a) || touches(v, b) || touches(v, c) {
			continue
		}
		if pointInTriangle(v, a, b, c) {
			return true
		}
	}
	return false
}

// pointInTriangle reports whether p lies strictly inside triangle abc (CCW).
func pointInTriangle(p, a, b, c mobject.Point) bool {
	return orient(a, b, p) > 0 && orient(b, c, p) > 0 && orient(c, a, p) > 0
}
