// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render is the CPU reference implementation of the mobject
// rendering collaborators: fill tessellation (contour flattening plus
// ear-clipping triangulation with hole elimination), line-ribbon building,
// and mesh/material resources with explicit release semantics.
//
// GPU hosts implement the same interfaces against their own device; this
// package exists so the geometry pipeline is usable and testable without
// one, and so exported meshes have CPU-side vertex data.
package render
