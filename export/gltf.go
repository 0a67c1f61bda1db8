// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package export writes tessellated mobject meshes as glTF 2.0 documents,
// for inspection in external viewers and interop with DCC tools.
package export

import (
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Entry is one renderable mesh to export.
type Entry struct {
	Name      string
	Positions [][3]float32
	Indices   []uint32
	BaseColor [4]float32
}

// Document builds a glTF document with one node per non-empty entry, all
// attached to the default scene.
func Document(entries []Entry) *gltf.Document {
	doc := gltf.NewDocument()
	for _, e := range entries {
		if len(e.Positions) == 0 || len(e.Indices) == 0 {
			continue
		}
		posAccessor := modeler.WritePosition(doc, e.Positions)
		idxAccessor := modeler.WriteIndices(doc, e.Indices)

		color := e.BaseColor
		doc.Materials = append(doc.Materials, &gltf.Material{
			Name:        e.Name,
			DoubleSided: true,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &color,
			},
		})
		matIndex := uint32(len(doc.Materials) - 1)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: e.Name,
			Primitives: []*gltf.Primitive{{
				Indices:    gltf.Index(idxAccessor),
				Attributes: map[string]uint32{"POSITION": posAccessor},
				Material:   gltf.Index(matIndex),
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: e.Name,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	return doc
}

// Write encodes the entries as binary glTF (GLB).
func Write(w io.Writer, entries []Entry) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	return enc.Encode(Document(entries))
}

// Save writes the entries to a .gltf file at path.
func Save(path string, entries []Entry) error {
	return gltf.Save(Document(entries), path)
}
