// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/mobject"

// FillMaterial is the CPU-side fill material: a flat color with opacity.
type FillMaterial struct {
	color    mobject.Color
	opacity  float64
	released bool
}

// SetColor updates the material color and opacity.
func (m *FillMaterial) SetColor(c mobject.Color, opacity float64) {
	m.color = c
	m.opacity = opacity
}

// Color returns the current color and opacity.
func (m *FillMaterial) Color() (mobject.Color, float64) {
	return m.color, m.opacity
}

// Release frees the material. Releasing twice logs a warning.
func (m *FillMaterial) Release() {
	if m.released {
		mobject.Logger().Warn("render: double release of fill material")
		return
	}
	m.released = true
}

// Released reports whether Release has been called.
func (m *FillMaterial) Released() bool { return m.released }

// LineMaterial is the CPU-side stroke material: flat color, opacity, and
// the ribbon width used by style-only refreshes.
type LineMaterial struct {
	color    mobject.Color
	opacity  float64
	width    float64
	released bool
}

// SetColor updates the material color and opacity.
func (m *LineMaterial) SetColor(c mobject.Color, opacity float64) {
	m.color = c
	m.opacity = opacity
}

// SetWidth updates the ribbon width. The CPU renderer bakes width into the
// ribbon geometry at rebuild time; the material value is what shader-based
// backends consume, and what style-only updates adjust.
func (m *LineMaterial) SetWidth(w float64) { m.width = w }

// Color returns the current color and opacity.
func (m *LineMaterial) Color() (mobject.Color, float64) {
	return m.color, m.opacity
}

// Width returns the current ribbon width.
func (m *LineMaterial) Width() float64 { return m.width }

// Release frees the material. Releasing twice logs a warning.
func (m *LineMaterial) Release() {
	if m.released {
		mobject.Logger().Warn("render: double release of line material")
		return
	}
	m.released = true
}

// Released reports whether Release has been called.
func (m *LineMaterial) Released() bool { return m.released }
