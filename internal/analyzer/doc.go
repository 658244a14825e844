// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package analyzer maintains an ordered layer sequence and derives the
// per-layer analysis records: output shapes, parameter counts,
// receptive fields and effective strides, plus network-wide totals.
package analyzer
