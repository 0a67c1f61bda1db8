// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"fmt"

	"github.com/gogpu/mobject"
	"github.com/gogpu/mobject/render"
	"github.com/gogpu/mobject/scene"
)

// FromMobject collects exportable entries from a mobject built with the CPU
// renderer: one entry for the fill surface and one per stroke ribbon.
// Surfaces backed by another renderer are skipped; their vertex data is not
// host visible.
func FromMobject(m *mobject.Mobject) []Entry {
	var entries []Entry
	style := m.Style()

	m.Node().Walk(func(n *scene.Node) {
		switch d := n.Drawable().(type) {
		case *mobject.FillSurface:
			mesh, ok := d.Geometry.(*render.Mesh)
			if !ok {
				return
			}
			entries = append(entries, Entry{
				Name:      n.Name(),
				Positions: mesh.Positions3(),
				Indices:   append([]uint32(nil), mesh.Indices()...),
				BaseColor: style.FillColor.Floats4(style.FillOpacity),
			})
		case *mobject.StrokeSurface:
			for i, g := range d.Geometries {
				mesh, ok := g.(*render.LineMesh)
				if !ok {
					continue
				}
				entries = append(entries, Entry{
					Name:      fmt.Sprintf("%s/%d", n.Name(), i),
					Positions: mesh.Positions3(),
					Indices:   append([]uint32(nil), mesh.Indices()...),
					BaseColor: style.StrokeColor.Floats4(style.StrokeOpacity),
				})
			}
		}
	})
	return entries
}

// FromScene collects entries from every mobject registered under root.
// Nodes without a surface drawable contribute nothing.
func FromScene(mobjects []*mobject.Mobject) []Entry {
	var entries []Entry
	for _, m := range mobjects {
		entries = append(entries, FromMobject(m)...)
	}
	return entries
}
