// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package arch provides the public API for layer descriptors.
//
// # Overview
//
// A Layer is an immutable configuration record over nine kinds:
// Conv2D, MaxPool2D, AvgPool2D, BatchNorm, Dropout, GlobalAvgPool2D,
// Flatten, Dense and Activation. Layers describe network structure
// only; no weights are stored and no tensors are computed.
//
// # Basic Usage
//
//	conv := arch.NewConv2D(64, 3, 1, arch.PaddingValid, "relu", "")
//
//	out := conv.OutputShape(arch.NewShape(224, 224, 3)) // 222x222x64
//	params := conv.ParamCount(arch.NewShape(224, 224, 3)) // 1792
//
// # Factory
//
// Boundary code constructs layers from a type tag and a generic
// configuration map, as decoded from JSON:
//
//	layer, err := arch.New("dense", map[string]any{"units": 10})
//
// Construction fails with ErrUnknownLayerType for unrecognized tags and
// ErrMissingField when a required value is absent.
package arch
