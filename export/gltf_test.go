// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"bytes"
	"testing"

	"github.com/gogpu/mobject"
	"github.com/gogpu/mobject/render"
)

func testEntries() []Entry {
	return []Entry{
		{
			Name:      "tri",
			Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			Indices:   []uint32{0, 1, 2},
			BaseColor: [4]float32{1, 0, 0, 1},
		},
		{Name: "empty"}, // skipped
	}
}

func TestDocument(t *testing.T) {
	doc := Document(testEntries())
	if len(doc.Meshes) != 1 {
		t.Fatalf("meshes = %d, want 1 (empty entry skipped)", len(doc.Meshes))
	}
	if len(doc.Nodes) != 1 || len(doc.Materials) != 1 {
		t.Fatalf("nodes/materials = %d/%d, want 1/1", len(doc.Nodes), len(doc.Materials))
	}
	if len(doc.Scenes[0].Nodes) != 1 {
		t.Fatalf("scene nodes = %d, want 1", len(doc.Scenes[0].Nodes))
	}
	mesh := doc.Meshes[0]
	if mesh.Name != "tri" || len(mesh.Primitives) != 1 {
		t.Errorf("mesh = %q with %d primitives", mesh.Name, len(mesh.Primitives))
	}
	mat := doc.Materials[0]
	if mat.PBRMetallicRoughness == nil || *mat.PBRMetallicRoughness.BaseColorFactor != [4]float32{1, 0, 0, 1} {
		t.Error("material base color not carried over")
	}
}

func TestWriteBinary(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testEntries()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty output")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("glTF")) {
		t.Error("output is not a GLB container")
	}
}

func TestFromMobject(t *testing.T) {
	r := render.New()
	m, err := mobject.New("ring", mobject.AnnulusControlPoints(0, 0, 2, 1), r,
		mobject.WithFillColor(0xFF0000))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	entries := FromMobject(m)
	// One fill mesh plus two stroke ribbons (outer circle and hole).
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	var fill *Entry
	for i := range entries {
		if entries[i].Name == "ring/fill" {
			fill = &entries[i]
		}
	}
	if fill == nil {
		t.Fatal("no fill entry")
	}
	if len(fill.Positions) == 0 || len(fill.Indices) == 0 {
		t.Error("fill entry has no geometry")
	}
	if fill.BaseColor != [4]float32{1, 0, 0, 1} {
		t.Errorf("fill color = %v", fill.BaseColor)
	}
}

func TestFromMobjectRoundTripsThroughDocument(t *testing.T) {
	r := render.New()
	m, err := mobject.New("sq", mobject.SquareControlPoints(0, 0, 1), r)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	doc := Document(FromMobject(m))
	if len(doc.Meshes) == 0 {
		t.Fatal("no meshes exported")
	}
}
