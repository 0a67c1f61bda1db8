// Package mobject reconstructs filled, stroked 2D shapes from flat
// cubic-Bezier control sequences and manages their lifecycle inside a 3D
// scene graph.
//
// # Overview
//
// A mobject ("mathematical object") arrives as an ordered list of 2D
// points, four per cubic segment. The pipeline has three layers:
//
//   - BuildPaths slices the sequence into contours, starting a new contour
//     wherever consecutive segments stop touching.
//   - Classify pairs outer contours with the holes they enclose.
//   - Mobject owns the resulting fill and stroke geometry, applying
//     incremental updates per frame and releasing GPU-side buffers on
//     Dispose.
//
// # Quick start
//
//	import (
//	    "github.com/gogpu/mobject"
//	    "github.com/gogpu/mobject/render"
//	)
//
//	r := render.New()
//	m, err := mobject.New("ring", mobject.AnnulusControlPoints(0, 0, 1, 0.5), r,
//	    mobject.WithFillColor(0x3070B3))
//	if err != nil { ... }
//	defer m.Dispose()
//
//	// Per frame: style-only refresh is cheap, geometry rebuild is explicit.
//	m.Update(points, needsRedraw, mobject.WithFillOpacity(0.5))
//
// # Collaborators
//
// Tessellation, ribbon building, and materials sit behind the Renderer
// interface; package render provides the CPU reference implementation and
// GPU hosts supply their own. The scene sub-package provides the composite
// node graph that positions mobjects in 3D.
package mobject
