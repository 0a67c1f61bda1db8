package mobject

import "fmt"

// BuildPaths slices a flat control sequence into contours. Each group of
// four points encodes one cubic Bezier segment as (start, ctrl1, ctrl2,
// end). Consecutive segments belong to the same contour while the end point
// of one coincides (within CoincidenceTolerance) with the start point of
// the next; a gap starts a new contour.
//
// Contour order follows input order. An empty input yields no contours.
// A point count that is not a multiple of four fails with
// ErrInvalidGeometryInput.
func BuildPaths(points []Point) ([]*Path, error) {
	if len(points)%4 != 0 {
		return nil, fmt.Errorf("%w: got %d points", ErrInvalidGeometryInput, len(points))
	}

	var paths []*Path
	var cur *Path
	for i := 0; i+3 < len(points); i += 4 {
		seg := CubicBez{P0: points[i], P1: points[i+1], P2: points[i+2], P3: points[i+3]}
		if cur == nil {
			cur = &Path{}
		}
		cur.segments = append(cur.segments, seg)

		last := i+4 >= len(points)
		if last || !seg.P3.ApproxEqual(points[i+4], CoincidenceTolerance) {
			paths = append(paths, cur)
			cur = nil
		}
	}
	return paths, nil
}

// BuildShapes runs the full reconstruction pipeline: contour slicing
// followed by hole classification.
func BuildShapes(points []Point) ([]*Shape, error) {
	paths, err := BuildPaths(points)
	if err != nil {
		return nil, err
	}
	return Classify(paths), nil
}
