// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package arch defines the layer descriptors of the network analyzer.
//
// A Layer is an immutable configuration record over a closed set of
// nine kinds. Each kind implements four pure calculations: output
// shape, parameter count, receptive-field propagation, and a config
// projection for rendering and serialization. No tensors are ever
// allocated or computed; the package does static bookkeeping only.
package arch
