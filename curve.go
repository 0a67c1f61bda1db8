package mobject

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Point {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez) End() Point {
	return c.P3
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Flatten appends a polyline approximation of the curve to dst and returns
// the extended slice. The start point is not emitted; callers seed dst with
// it once per contour. Adaptive subdivision stops when both control points
// are within tolerance of the chord.
func (c CubicBez) Flatten(tolerance float64, dst []Point) []Point {
	if c.isFlat(tolerance) {
		return append(dst, c.P3)
	}
	left, right := c.Subdivide()
	dst = left.Flatten(tolerance, dst)
	return right.Flatten(tolerance, dst)
}

// isFlat checks whether the maximum control point deviation from the chord
// P0-P3 is within tolerance.
func (c CubicBez) isFlat(tolerance float64) bool {
	d1 := pointToLineDistance(c.P1, c.P0, c.P3)
	d2 := pointToLineDistance(c.P2, c.P0, c.P3)
	return max(d1, d2) <= tolerance
}

// pointToLineDistance calculates the perpendicular distance from point p to
// the line through a and b. If a and b coincide, the distance to a is used.
func pointToLineDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq < 1e-18 {
		return p.Distance(a)
	}
	cross := ab.Cross(p.Sub(a))
	return abs(cross) / ab.Length()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
