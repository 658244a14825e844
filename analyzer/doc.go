// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package analyzer provides the public API for network analysis.
//
// An Analyzer owns an input shape and an ordered sequence of layer
// descriptors. After every mutation (add, remove, clear, reshape) it
// recomputes the full chain of per-layer records: input and output
// shapes, parameter counts, receptive fields and effective strides.
//
//	a := analyzer.New(arch.NewShape(224, 224, 3))
//	a.AddLayer(arch.NewConv2D(64, 3, 1, arch.PaddingValid, "relu", ""))
//	a.AddLayer(arch.NewMaxPool2D(2, 0, arch.PaddingValid, ""))
//
//	for _, r := range a.LayerDetails() {
//	    fmt.Println(r.Name, r.OutputShape, r.Params)
//	}
//
// An Analyzer is not safe for concurrent use; front ends sharing one
// instance must serialize access externally.
package analyzer
