package mobject

import (
	"math"
	"testing"
)

func TestCubicBezEval(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	tests := []struct {
		t    float64
		want Point
	}{
		{0, Pt(0, 0)},
		{0.5, Pt(1.5, 0)},
		{1, Pt(3, 0)},
	}
	for _, tt := range tests {
		got := c.Eval(tt.t)
		if !got.ApproxEqual(tt.want, 1e-12) {
			t.Errorf("Eval(%g) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}
	l, r := c.Subdivide()
	if !l.Start().ApproxEqual(c.Start(), 1e-12) {
		t.Errorf("left start = %v, want %v", l.Start(), c.Start())
	}
	if !r.End().ApproxEqual(c.End(), 1e-12) {
		t.Errorf("right end = %v, want %v", r.End(), c.End())
	}
	mid := c.Eval(0.5)
	if !l.End().ApproxEqual(mid, 1e-12) || !r.Start().ApproxEqual(mid, 1e-12) {
		t.Errorf("split point %v / %v, want %v", l.End(), r.Start(), mid)
	}
	// Subdivision preserves the curve: spot-check a parameter value.
	if got, want := l.Eval(0.5), c.Eval(0.25); !got.ApproxEqual(want, 1e-9) {
		t.Errorf("left half Eval(0.5) = %v, want %v", got, want)
	}
}

func TestCubicBezFlattenLine(t *testing.T) {
	// A degenerate cubic along a straight line flattens to its endpoint.
	seg := line(Pt(0, 0), Pt(10, 0))
	c := CubicBez{seg[0], seg[1], seg[2], seg[3]}
	pts := c.Flatten(0.01, nil)
	if len(pts) != 1 {
		t.Fatalf("flat segment produced %d points, want 1", len(pts))
	}
	if pts[0] != Pt(10, 0) {
		t.Errorf("endpoint = %v, want (10,0)", pts[0])
	}
}

func TestCubicBezFlattenAppends(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}
	dst := []Point{Pt(-1, -1)}
	out := c.Flatten(0.01, dst)
	if out[0] != Pt(-1, -1) {
		t.Error("Flatten must append to dst, not overwrite it")
	}
	if len(out) < 3 {
		t.Errorf("curved segment produced %d points, want several", len(out)-1)
	}
	if !out[len(out)-1].ApproxEqual(Pt(1, 0), 1e-12) {
		t.Errorf("last point = %v, want (1,0)", out[len(out)-1])
	}
}

func TestPointOps(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, -2)
	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v", got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("Dot = %v", got)
	}
	if got := p.Cross(q); got != -10 {
		t.Errorf("Cross = %v", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
	if got := p.Distance(Pt(0, 0)); got != 5 {
		t.Errorf("Distance = %v", got)
	}
	if got := p.Lerp(q, 0.5); got != Pt(2, 1) {
		t.Errorf("Lerp = %v", got)
	}
}

func TestPointApproxEqual(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		tol  float64
		want bool
	}{
		{"identical", Pt(1, 1), Pt(1, 1), 1e-6, true},
		{"within tolerance", Pt(1, 1), Pt(1 + 1e-9, 1), 1e-6, true},
		{"x out", Pt(1, 1), Pt(1.1, 1), 1e-6, false},
		{"y out", Pt(1, 1), Pt(1, 1.1), 1e-6, false},
		{"negative delta", Pt(0, 0), Pt(-1e-9, 1e-9), 1e-6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.ApproxEqual(tt.q, tt.tol); got != tt.want {
				t.Errorf("ApproxEqual = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleControlPointsOnCircle(t *testing.T) {
	paths := buildPathsT(t, CircleControlPoints(0, 0, 2))
	for _, p := range paths[0].Flatten(0.001) {
		if math.Abs(p.Length()-2) > 0.01 {
			t.Fatalf("point %v deviates from radius 2", p)
		}
	}
}
