// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package analyzer

import (
	"github.com/netscope-ml/netscope/internal/analyzer"
	"github.com/netscope-ml/netscope/internal/arch"
	"github.com/netscope-ml/netscope/internal/render"
)

// Analyzer holds an ordered layer sequence and its derived per-layer
// analysis records.
type Analyzer = analyzer.Analyzer

// Record is the derived analysis of one layer.
type Record = analyzer.Record

// Summary aggregates the analysis over the whole network.
type Summary = analyzer.Summary

// Architecture is the complete exportable snapshot of an analyzer.
type Architecture = analyzer.Architecture

// LayerSpec is the serializable (name, config) pair of one layer.
type LayerSpec = analyzer.LayerSpec

// New creates an analyzer with the given input shape and no layers.
//
// Example:
//
//	a := analyzer.New(arch.NewShape(224, 224, 3))
//	a.AddLayer(arch.NewConv2D(64, 3, 1, arch.PaddingValid, "relu", ""))
//	fmt.Println(a.Summary().TotalParams) // 1792
func New(input arch.Shape) *Analyzer {
	return analyzer.New(input)
}

// Table renders the per-layer analysis as a plain-text table.
func Table(a *Analyzer) string {
	return render.Table(a.LayerDetails(), a.Summary())
}

// Diagram renders the architecture as an SVG document.
func Diagram(a *Analyzer) string {
	return render.Diagram(a.LayerDetails(), a.Summary())
}
