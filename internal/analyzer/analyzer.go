// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package analyzer

import (
	"github.com/netscope-ml/netscope/internal/arch"
)

// Record is the derived analysis of one layer at one position in the
// network. Records are recomputed wholesale on every mutation and never
// updated in place.
type Record struct {
	Index           int            `json:"layer_index"`
	Name            string         `json:"layer_name"`
	Config          map[string]any `json:"layer_info"`
	InputShape      arch.Shape     `json:"input_shape"`
	OutputShape     arch.Shape     `json:"output_shape"`
	Params          int            `json:"parameters"`
	ReceptiveField  arch.Field     `json:"receptive_field"`
	EffectiveStride int            `json:"effective_stride"`
}

// Summary aggregates the analysis over the whole network.
type Summary struct {
	InputShape     arch.Shape `json:"input_shape"`
	OutputShape    arch.Shape `json:"output_shape"`
	TotalParams    int        `json:"total_parameters"`
	TotalLayers    int        `json:"total_layers"`
	ReceptiveField arch.Field `json:"final_receptive_field"`
}

// LayerSpec is the serializable (name, config) pair of one layer, as it
// appears in an exported architecture.
type LayerSpec struct {
	Name   string         `json:"name"`
	Config map[string]any `json:"config"`
}

// Architecture is the complete exportable snapshot of an analyzer:
// enough to rebuild it through the layer factory and to render it
// without recomputation.
type Architecture struct {
	InputShape arch.Shape  `json:"input_shape"`
	Layers     []LayerSpec `json:"layers"`
	Analysis   Summary     `json:"analysis"`
	Details    []Record    `json:"layer_details"`
}

// Analyzer holds an ordered layer sequence and its input shape, and
// maintains the derived per-layer records. The record list is a pure
// function of (input shape, layers): every mutating call recomputes it
// from scratch, so len(records) == len(layers) always holds.
//
// An Analyzer is not safe for concurrent use. A front end sharing one
// instance across goroutines must serialize access externally; see the
// session manager.
type Analyzer struct {
	input   arch.Shape
	layers  []arch.Layer
	records []Record
}

// New creates an analyzer with the given input shape and no layers.
// Dimensions are not validated; degenerate values propagate through the
// arithmetic.
func New(input arch.Shape) *Analyzer {
	return &Analyzer{input: input}
}

// AddLayer appends a layer and recomputes all records. The layer was
// already validated by the factory, so this cannot fail.
func (a *Analyzer) AddLayer(l arch.Layer) {
	a.layers = append(a.layers, l)
	a.recompute()
}

// RemoveLayer removes the layer at index and recomputes. An out-of-range
// index is a silent no-op; callers needing strict bounds must validate
// before calling.
func (a *Analyzer) RemoveLayer(index int) {
	if index < 0 || index >= len(a.layers) {
		return
	}
	a.layers = append(a.layers[:index], a.layers[index+1:]...)
	a.recompute()
}

// ClearLayers removes all layers and records.
func (a *Analyzer) ClearLayers() {
	a.layers = nil
	a.records = nil
}

// SetInputShape replaces the input shape and recomputes the unchanged
// layer sequence against it.
func (a *Analyzer) SetInputShape(h, w, c int) {
	a.input = arch.NewShape(h, w, c)
	a.recompute()
}

// InputShape returns the current input shape.
func (a *Analyzer) InputShape() arch.Shape {
	return a.input
}

// Layers returns a copy of the layer sequence.
func (a *Analyzer) Layers() []arch.Layer {
	out := make([]arch.Layer, len(a.layers))
	copy(out, a.layers)
	return out
}

// LayerDetails returns a copy of the per-layer records. Mutating the
// returned slice does not affect the analyzer.
func (a *Analyzer) LayerDetails() []Record {
	out := make([]Record, len(a.records))
	copy(out, a.records)
	return out
}

// TotalParams returns the sum of all per-layer parameter counts.
func (a *Analyzer) TotalParams() int {
	total := 0
	for _, r := range a.records {
		total += r.Params
	}
	return total
}

// Summary returns the network-wide aggregates. With no layers the
// output shape equals the input shape and the receptive field is 1.
func (a *Analyzer) Summary() Summary {
	if len(a.records) == 0 {
		return Summary{
			InputShape:     a.input,
			OutputShape:    a.input,
			ReceptiveField: arch.Finite(1),
		}
	}
	last := a.records[len(a.records)-1]
	return Summary{
		InputShape:     a.input,
		OutputShape:    last.OutputShape,
		TotalParams:    a.TotalParams(),
		TotalLayers:    len(a.layers),
		ReceptiveField: last.ReceptiveField,
	}
}

// Export returns the complete architecture snapshot for serialization.
func (a *Analyzer) Export() Architecture {
	specs := make([]LayerSpec, len(a.layers))
	for i, l := range a.layers {
		specs[i] = LayerSpec{Name: l.Name(), Config: l.Config()}
	}
	return Architecture{
		InputShape: a.input,
		Layers:     specs,
		Analysis:   a.Summary(),
		Details:    a.LayerDetails(),
	}
}

// recompute rebuilds the record list by forward propagation.
//
// The receptive field carried between layers stays finite: when a layer
// reports an unbounded field (global pooling), the record keeps the
// sentinel but propagation continues from the last finite value, so
// later finite arithmetic is not poisoned.
func (a *Analyzer) recompute() {
	a.records = a.records[:0]
	if len(a.layers) == 0 {
		return
	}

	shape := a.input
	rf := 1
	stride := 1

	for i, l := range a.layers {
		out := l.OutputShape(shape)
		params := l.ParamCount(shape)
		field, outStride := l.Propagate(rf, stride)

		a.records = append(a.records, Record{
			Index:           i,
			Name:            l.Name(),
			Config:          l.Config(),
			InputShape:      shape,
			OutputShape:     out,
			Params:          params,
			ReceptiveField:  field,
			EffectiveStride: outStride,
		})

		shape = out
		stride = outStride
		if !field.IsUnbounded() {
			rf = field.Size()
		}
	}
}
