package mobject

// CoincidenceTolerance is the per-coordinate tolerance used to decide
// whether two control points coincide. Segment chaining and contour closure
// both compare through it.
const CoincidenceTolerance = 1e-6

// DefaultFlattenTolerance is the maximum chord deviation allowed when a
// contour is flattened to a polyline. Mobject coordinates are scene units
// (shapes are typically of order one), so the tolerance is much tighter
// than a pixel-space rasterizer would use.
const DefaultFlattenTolerance = 0.01

// Path is a single contour: an ordered chain of connected cubic Bezier
// segments. Paths are transient values recomputed from the control sequence
// on every rebuild; they carry no identity across frames.
type Path struct {
	segments []CubicBez
}

// Segments returns the chained cubic segments of the contour.
// The returned slice is owned by the path and must not be mutated.
func (p *Path) Segments() []CubicBez {
	return p.segments
}

// SegmentCount returns the number of cubic segments in the contour.
func (p *Path) SegmentCount() int {
	return len(p.segments)
}

// Empty reports whether the contour has no segments.
func (p *Path) Empty() bool {
	return len(p.segments) == 0
}

// Start returns the first point of the contour.
func (p *Path) Start() Point {
	if len(p.segments) == 0 {
		return Point{}
	}
	return p.segments[0].P0
}

// End returns the last point of the contour.
func (p *Path) End() Point {
	if len(p.segments) == 0 {
		return Point{}
	}
	return p.segments[len(p.segments)-1].P3
}

// Closed reports whether the contour's end point coincides with its start
// point within CoincidenceTolerance.
func (p *Path) Closed() bool {
	if len(p.segments) == 0 {
		return false
	}
	return p.End().ApproxEqual(p.Start(), CoincidenceTolerance)
}

// Flatten returns a polyline approximation of the contour, starting at the
// contour's start point. A non-positive tolerance selects
// DefaultFlattenTolerance.
func (p *Path) Flatten(tolerance float64) []Point {
	if len(p.segments) == 0 {
		return nil
	}
	if tolerance <= 0 {
		tolerance = DefaultFlattenTolerance
	}
	pts := make([]Point, 0, len(p.segments)*4)
	pts = append(pts, p.segments[0].P0)
	for _, seg := range p.segments {
		pts = seg.Flatten(tolerance, pts)
	}
	return pts
}

// Contains reports whether pt lies inside the contour's sampled polygon.
// Containment is decided by ray casting against the polygonal approximation
// of the curve, not against the exact curve; the classifier depends on this
// (deliberately approximate) test.
func (p *Path) Contains(pt Point) bool {
	return pointInPolygon(p.Flatten(DefaultFlattenTolerance), pt)
}

// pointInPolygon performs an even-odd ray cast of pt against the polygon
// vertices. The polygon is treated as implicitly closed.
func pointInPolygon(poly []Point, pt Point) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		pi, pj := poly[i], poly[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			x := pi.X + (pt.Y-pi.Y)/(pj.Y-pi.Y)*(pj.X-pi.X)
			if pt.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
