// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scene provides the minimal composite node graph that positions
// mobjects in 3D: named nodes with TRS transforms, parent/child links, and
// opaque drawable payloads. Rendering backends walk the graph and
// type-switch on the drawables they understand.
package scene
