package mobject

// Style describes the appearance of a mobject's stroke and fill. Style is
// an immutable value: updates construct a new Style by field-wise override
// and replace the previous one wholesale, so partially mutated styles are
// never observable.
type Style struct {
	// StrokeColor is the packed RGB stroke color.
	StrokeColor Color

	// StrokeOpacity is the stroke alpha in [0, 1].
	StrokeOpacity float64

	// FillColor is the packed RGB fill color.
	FillColor Color

	// FillOpacity is the fill alpha in [0, 1].
	FillOpacity float64

	// StrokeWidth is the stroke width in style units. It is divided by a
	// fixed shrink constant before reaching the line-ribbon builder.
	StrokeWidth float64
}

// DefaultStyle returns the style used when no options are given:
// white stroke, black fill, both fully opaque, stroke width 4.
func DefaultStyle() Style {
	return Style{
		StrokeColor:   White,
		StrokeOpacity: 1,
		FillColor:     Black,
		FillOpacity:   1,
		StrokeWidth:   4,
	}
}

// StyleOption overrides a single Style field. Options passed to New apply
// over DefaultStyle; options passed to Update apply over the entity's
// current style.
type StyleOption func(*Style)

// WithStrokeColor sets the stroke color.
func WithStrokeColor(c Color) StyleOption {
	return func(s *Style) { s.StrokeColor = c }
}

// WithStrokeOpacity sets the stroke opacity (0 to 1).
func WithStrokeOpacity(a float64) StyleOption {
	return func(s *Style) { s.StrokeOpacity = a }
}

// WithFillColor sets the fill color.
func WithFillColor(c Color) StyleOption {
	return func(s *Style) { s.FillColor = c }
}

// WithFillOpacity sets the fill opacity (0 to 1).
func WithFillOpacity(a float64) StyleOption {
	return func(s *Style) { s.FillOpacity = a }
}

// WithStrokeWidth sets the stroke width.
func WithStrokeWidth(w float64) StyleOption {
	return func(s *Style) { s.StrokeWidth = w }
}

// With returns a copy of s with the options applied.
func (s Style) With(opts ...StyleOption) Style {
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
