package mobject

import (
	"math"
	"testing"
)

func TestPathFlattenEndpoints(t *testing.T) {
	paths := buildPathsT(t, CircleControlPoints(0, 0, 1))
	poly := paths[0].Flatten(DefaultFlattenTolerance)
	if len(poly) < 8 {
		t.Fatalf("polyline has %d points, want a denser sampling", len(poly))
	}
	if poly[0] != Pt(1, 0) {
		t.Errorf("polyline starts at %v, want (1,0)", poly[0])
	}
	if !poly[len(poly)-1].ApproxEqual(Pt(1, 0), CoincidenceTolerance) {
		t.Errorf("polyline ends at %v, want (1,0)", poly[len(poly)-1])
	}
}

func TestPathFlattenWithinTolerance(t *testing.T) {
	const tol = 0.01
	paths := buildPathsT(t, CircleControlPoints(0, 0, 1))
	for _, p := range paths[0].Flatten(tol) {
		r := p.Length()
		if math.Abs(r-1) > 2*tol {
			t.Fatalf("sample %v is %g from the unit circle", p, math.Abs(r-1))
		}
	}
}

func TestPathFlattenTighterToleranceMorePoints(t *testing.T) {
	paths := buildPathsT(t, CircleControlPoints(0, 0, 1))
	coarse := len(paths[0].Flatten(0.1))
	fine := len(paths[0].Flatten(0.001))
	if fine <= coarse {
		t.Errorf("fine sampling (%d) not denser than coarse (%d)", fine, coarse)
	}
}

func TestPathContains(t *testing.T) {
	paths := buildPathsT(t, CircleControlPoints(0, 0, 1))
	circle := paths[0]

	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"center", Pt(0, 0), true},
		{"inside off-center", Pt(0.5, 0.3), true},
		{"outside", Pt(1.5, 0), false},
		{"outside diagonal", Pt(0.9, 0.9), false},
		{"far away", Pt(100, 100), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := circle.Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestPathClosed(t *testing.T) {
	open := buildPathsT(t, CircleControlPoints(0, 0, 1)[:8])
	if open[0].Closed() {
		t.Error("half circle should not be closed")
	}
	closed := buildPathsT(t, SquareControlPoints(0, 0, 1))
	if !closed[0].Closed() {
		t.Error("square should be closed")
	}
}

func TestPathEmpty(t *testing.T) {
	var p Path
	if !p.Empty() {
		t.Error("zero path should be empty")
	}
	if p.Closed() {
		t.Error("empty path should not be closed")
	}
	if got := p.Flatten(0); got != nil {
		t.Errorf("Flatten of empty path = %v, want nil", got)
	}
	if p.Contains(Pt(0, 0)) {
		t.Error("empty path contains nothing")
	}
}

func TestPointInPolygonDegenerate(t *testing.T) {
	if pointInPolygon([]Point{Pt(0, 0), Pt(1, 1)}, Pt(0.5, 0.5)) {
		t.Error("two points do not form a polygon")
	}
}
