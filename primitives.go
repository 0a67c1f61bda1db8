package mobject

// Helpers for producing cubic control sequences for common contours.
// Straight edges are encoded as degenerate cubics with the control points
// placed at the thirds of the chord, so every segment stays in the uniform
// four-points-per-segment wire format.

// line returns the four control points of a straight segment from a to b.
func line(a, b Point) [4]Point {
	return [4]Point{a, a.Lerp(b, 1.0/3.0), a.Lerp(b, 2.0/3.0), b}
}

// PolygonControlPoints returns the control sequence of the closed polygon
// through the given corners. Fewer than three corners yield nil.
func PolygonControlPoints(corners ...Point) []Point {
	if len(corners) < 3 {
		return nil
	}
	pts := make([]Point, 0, len(corners)*4)
	for i, a := range corners {
		b := corners[(i+1)%len(corners)]
		seg := line(a, b)
		pts = append(pts, seg[0], seg[1], seg[2], seg[3])
	}
	return pts
}

// SquareControlPoints returns the control sequence of an axis-aligned
// square with its lower-left corner at (x, y).
func SquareControlPoints(x, y, size float64) []Point {
	return PolygonControlPoints(
		Pt(x, y),
		Pt(x+size, y),
		Pt(x+size, y+size),
		Pt(x, y+size),
	)
}

// circleK is the control point offset for approximating a quarter circle
// with one cubic: 4/3 * (sqrt(2) - 1).
const circleK = 0.5522847498307936

// CircleControlPoints returns the control sequence of a circle centered at
// (cx, cy), built from four cubic arcs.
func CircleControlPoints(cx, cy, r float64) []Point {
	o := r * circleK
	return []Point{
		// Right to bottom.
		Pt(cx+r, cy), Pt(cx+r, cy-o), Pt(cx+o, cy-r), Pt(cx, cy-r),
		// Bottom to left.
		Pt(cx, cy-r), Pt(cx-o, cy-r), Pt(cx-r, cy-o), Pt(cx-r, cy),
		// Left to top.
		Pt(cx-r, cy), Pt(cx-r, cy+o), Pt(cx-o, cy+r), Pt(cx, cy+r),
		// Top to right.
		Pt(cx, cy+r), Pt(cx+o, cy+r), Pt(cx+r, cy+o), Pt(cx+r, cy),
	}
}

// AnnulusControlPoints returns the control sequence of a ring: an outer
// circle followed by an inner circle that classifies as its hole.
func AnnulusControlPoints(cx, cy, outer, inner float64) []Point {
	pts := CircleControlPoints(cx, cy, outer)
	return append(pts, CircleControlPoints(cx, cy, inner)...)
}
