package mobject

// Shape pairs an outer contour with the hole contours it encloses. Shapes
// are the unit handed to fill tessellation.
type Shape struct {
	Outer *Path
	Holes []*Path
}

// Contours returns the outer contour followed by the holes.
func (s *Shape) Contours() []*Path {
	out := make([]*Path, 0, 1+len(s.Holes))
	out = append(out, s.Outer)
	return append(out, s.Holes...)
}

// Classify groups contours into shapes, pairing outer boundaries with the
// holes they enclose. Every input path is consumed exactly once, either as
// an outer boundary or as a hole; a path that neither contains nor is
// contained by any other becomes a solid shape with no holes.
//
// Containment is tested by sampling the candidate hole's start point
// against the outer candidate's polygon. The pairing is a first-match
// heuristic: it assumes one level of nesting, and when containment is
// ambiguous the path scanned first as the outer candidate wins. Callers
// rely on this exact behavior; it is not a planar-subdivision algorithm
// and must not be upgraded to one.
func Classify(paths []*Path) []*Shape {
	shapes := make([]*Shape, 0, len(paths))
	decided := make([]bool, len(paths))

	for i, outer := range paths {
		if decided[i] {
			continue
		}
		var shape *Shape
		for j, hole := range paths {
			if j == i || decided[j] {
				continue
			}
			if !outer.Contains(hole.Start()) {
				continue
			}
			if shape == nil {
				shape = &Shape{Outer: outer}
				shapes = append(shapes, shape)
				decided[i] = true
			}
			shape.Holes = append(shape.Holes, hole)
			decided[j] = true
		}
	}

	// Whatever is left is disjoint from everything else: solid shapes.
	for i, p := range paths {
		if !decided[i] {
			shapes = append(shapes, &Shape{Outer: p})
		}
	}
	return shapes
}
