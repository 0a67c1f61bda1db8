package mobject

import (
	"fmt"

	"github.com/gogpu/mobject/scene"
)

// strokeWidthShrink scales Style.StrokeWidth down to the units expected by
// the line-ribbon builder.
const strokeWidthShrink = 100.0

// State is the observable lifecycle state of a Mobject.
type State int

const (
	// StateStable means the rendered geometry matches the last applied
	// control points and style.
	StateStable State = iota

	// StateDirty is the transient state inside Update while new control
	// points have been supplied but geometry has not been rebuilt yet.
	// Updates are synchronous, so callers on the frame loop only ever
	// observe it from re-entrant inspection.
	StateDirty

	// StateDisposed means Dispose has released the entity's resources.
	StateDisposed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStable:
		return "stable"
	case StateDirty:
		return "dirty"
	case StateDisposed:
		return "disposed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// FillSurface is the drawable attached to a mobject's fill node.
type FillSurface struct {
	Geometry FillGeometry
	Material FillMaterial
}

// StrokeSurface is the drawable attached to a mobject's stroke node.
// It aggregates one ribbon per contour (outer boundaries and holes alike),
// all sharing a single material.
type StrokeSurface struct {
	Geometries []LineGeometry
	Material   LineMaterial
}

// Mobject is a drawable mathematical object: one fill surface and one
// stroke surface derived from a flat cubic-Bezier control sequence.
//
// A mobject exclusively owns its geometry buffers and materials; no two
// mobjects share a buffer. All mutation is serialized by the caller's
// single-threaded frame loop, so Mobject carries no locks.
type Mobject struct {
	id string
	r  Renderer

	node       *scene.Node
	fillNode   *scene.Node
	strokeNode *scene.Node

	shapes []*Shape
	style  Style
	state  State

	fillGeo    FillGeometry
	fillMat    FillMaterial
	strokeGeos []LineGeometry
	strokeMat  LineMaterial
}

// New constructs a mobject from an initial control sequence. Style options
// apply over DefaultStyle. The resulting entity always has exactly one fill
// and one stroke sub-object, even for an empty control sequence (degenerate
// empty geometry).
func New(id string, points []Point, r Renderer, opts ...StyleOption) (*Mobject, error) {
	shapes, err := BuildShapes(points)
	if err != nil {
		return nil, fmt.Errorf("mobject %q: %w", id, err)
	}
	style := DefaultStyle().With(opts...)

	m := &Mobject{
		id:         id,
		r:          r,
		shapes:     shapes,
		style:      style,
		node:       scene.NewNode(id),
		fillNode:   scene.NewNode(id + "/fill"),
		strokeNode: scene.NewNode(id + "/stroke"),
	}
	m.node.Add(m.fillNode)
	m.node.Add(m.strokeNode)

	m.fillGeo, err = r.FillGeometry(shapes)
	if err != nil {
		return nil, fmt.Errorf("mobject %q: fill geometry: %w", id, err)
	}
	m.strokeGeos, err = buildStrokes(r, shapes, style.StrokeWidth/strokeWidthShrink)
	if err != nil {
		m.fillGeo.Release()
		return nil, fmt.Errorf("mobject %q: stroke geometry: %w", id, err)
	}

	m.fillMat = r.FillMaterial(style.FillColor, style.FillOpacity)
	m.strokeMat = r.LineMaterial(style.StrokeColor, style.StrokeOpacity, style.StrokeWidth/strokeWidthShrink)

	m.fillNode.SetDrawable(&FillSurface{Geometry: m.fillGeo, Material: m.fillMat})
	m.strokeNode.SetDrawable(&StrokeSurface{Geometries: m.strokeGeos, Material: m.strokeMat})

	Logger().Debug("mobject constructed",
		"id", id, "segments", len(points)/4, "shapes", len(shapes))
	return m, nil
}

// Update applies new control points and style options.
//
// needsRedraw=false is the caller's assertion that the control points have
// not meaningfully changed: only the style is merged and the materials
// refreshed; geometry buffers are untouched.
//
// needsRedraw=true recomputes shapes from points. The fill geometry is
// refreshed in place unless both the previous and the next fill opacity are
// exactly zero; the stroke ribbons are released and rebuilt unless both
// stroke opacities are exactly zero. Geometry recompute always happens
// before the material refresh.
//
// On error the entity keeps its prior stable geometry and style; there is
// no partial application.
func (m *Mobject) Update(points []Point, needsRedraw bool, opts ...StyleOption) error {
	if m.state == StateDisposed {
		return fmt.Errorf("mobject %q: %w", m.id, ErrDisposed)
	}
	next := m.style.With(opts...)

	if needsRedraw {
		m.state = StateDirty
		shapes, err := BuildShapes(points)
		if err != nil {
			m.state = StateStable
			return fmt.Errorf("mobject %q: %w", m.id, err)
		}

		rebuildFill := m.style.FillOpacity != 0 || next.FillOpacity != 0
		rebuildStroke := m.style.StrokeOpacity != 0 || next.StrokeOpacity != 0

		// Build replacement ribbons before touching anything owned, so a
		// failure leaves the previous geometry fully intact.
		var strokes []LineGeometry
		if rebuildStroke {
			strokes, err = buildStrokes(m.r, shapes, next.StrokeWidth/strokeWidthShrink)
			if err != nil {
				m.state = StateStable
				return fmt.Errorf("mobject %q: stroke geometry: %w", m.id, err)
			}
		}
		if rebuildFill {
			if err := m.fillGeo.Update(shapes); err != nil {
				releaseStrokes(strokes)
				m.state = StateStable
				return fmt.Errorf("mobject %q: fill geometry: %w", m.id, err)
			}
		}
		if rebuildStroke {
			// No incremental path for ribbons: dispose and reattach.
			releaseStrokes(m.strokeGeos)
			m.strokeGeos = strokes
			m.strokeNode.SetDrawable(&StrokeSurface{Geometries: m.strokeGeos, Material: m.strokeMat})
		}
		m.shapes = shapes

		Logger().Debug("mobject rebuilt",
			"id", m.id, "shapes", len(shapes),
			"fill", rebuildFill, "stroke", rebuildStroke)
	}

	m.style = next
	m.fillMat.SetColor(next.FillColor, next.FillOpacity)
	m.strokeMat.SetColor(next.StrokeColor, next.StrokeOpacity)
	m.strokeMat.SetWidth(next.StrokeWidth / strokeWidthShrink)
	m.state = StateStable
	return nil
}

// Dispose releases the fill geometry, fill material, stroke ribbons, and
// stroke material, and detaches the entity from its scene parent. It must
// be called before the entity is discarded. A second Dispose, like any use
// after Dispose, returns ErrDisposed.
func (m *Mobject) Dispose() error {
	if m.state == StateDisposed {
		return fmt.Errorf("mobject %q: %w", m.id, ErrDisposed)
	}
	m.fillGeo.Release()
	m.fillMat.Release()
	releaseStrokes(m.strokeGeos)
	m.strokeMat.Release()
	m.strokeGeos = nil

	m.fillNode.SetDrawable(nil)
	m.strokeNode.SetDrawable(nil)
	m.node.RemoveFromParent()

	m.state = StateDisposed
	return nil
}

// ID returns the mobject identifier.
func (m *Mobject) ID() string { return m.id }

// Node returns the entity's scene graph group node. The fill and stroke
// sub-objects are its children.
func (m *Mobject) Node() *scene.Node { return m.node }

// Style returns the current style value.
func (m *Mobject) Style() Style { return m.style }

// Shapes returns the shapes from the last geometry rebuild.
func (m *Mobject) Shapes() []*Shape { return m.shapes }

// State returns the observable lifecycle state.
func (m *Mobject) State() State { return m.state }

// SetPosition forwards to the entity's group node.
func (m *Mobject) SetPosition(x, y, z float32) { m.node.SetPosition(x, y, z) }

// SetScale forwards to the entity's group node.
func (m *Mobject) SetScale(x, y, z float32) { m.node.SetScale(x, y, z) }

// SetRotation forwards Euler XYZ angles (radians) to the entity's group node.
func (m *Mobject) SetRotation(x, y, z float32) { m.node.SetRotation(x, y, z) }

// buildStrokes samples every contour of every shape (outer boundaries and
// holes separately) and asks the renderer for one ribbon per contour.
func buildStrokes(r Renderer, shapes []*Shape, width float64) ([]LineGeometry, error) {
	var geoms []LineGeometry
	for _, s := range shapes {
		for _, contour := range s.Contours() {
			poly := contour.Flatten(DefaultFlattenTolerance)
			g, err := r.LineGeometry(poly, width)
			if err != nil {
				releaseStrokes(geoms)
				return nil, err
			}
			geoms = append(geoms, g)
		}
	}
	return geoms, nil
}

func releaseStrokes(geoms []LineGeometry) {
	for _, g := range geoms {
		g.Release()
	}
}
