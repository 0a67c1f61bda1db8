// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

// Package errors for the CPU renderer.
var (
	// ErrReleased is returned when a geometry is updated after Release.
	ErrReleased = errors.New("render: resource already released")
)
