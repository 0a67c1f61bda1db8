package mobject

import "testing"

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.StrokeColor != White || s.StrokeOpacity != 1 {
		t.Errorf("stroke = %v/%v, want white/1", s.StrokeColor, s.StrokeOpacity)
	}
	if s.FillColor != Black || s.FillOpacity != 1 {
		t.Errorf("fill = %v/%v, want black/1", s.FillColor, s.FillOpacity)
	}
	if s.StrokeWidth != 4 {
		t.Errorf("stroke width = %v, want 4", s.StrokeWidth)
	}
}

func TestStyleWith(t *testing.T) {
	base := DefaultStyle()
	got := base.With(
		WithFillColor(0x123456),
		WithFillOpacity(0.5),
	)
	if got.FillColor != 0x123456 || got.FillOpacity != 0.5 {
		t.Errorf("overridden fields = %v/%v", got.FillColor, got.FillOpacity)
	}
	if got.StrokeColor != base.StrokeColor || got.StrokeWidth != base.StrokeWidth {
		t.Error("untouched fields must keep their values")
	}
	if base.FillColor != Black {
		t.Error("With must not mutate the receiver")
	}
}

func TestStyleOptionsRoundTrip(t *testing.T) {
	want := Style{
		StrokeColor:   0xFF0000,
		StrokeOpacity: 0.25,
		FillColor:     0x00FF00,
		FillOpacity:   0.75,
		StrokeWidth:   2,
	}
	got := DefaultStyle().With(want.Options()...)
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
