// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netscope-ml/netscope/internal/arch"
)

func newVGGHead() *Analyzer {
	a := New(arch.NewShape(224, 224, 3))
	a.AddLayer(arch.NewConv2D(64, 3, 1, arch.PaddingValid, "relu", ""))
	a.AddLayer(arch.NewMaxPool2D(2, 2, arch.PaddingValid, ""))
	return a
}

func TestForwardChain(t *testing.T) {
	a := newVGGHead()
	a.AddLayer(arch.NewFlatten(""))
	a.AddLayer(arch.NewDense(10, "softmax", true, ""))

	details := a.LayerDetails()
	require.Len(t, details, 4)

	conv := details[0]
	assert.Equal(t, arch.NewShape(222, 222, 64), conv.OutputShape)
	assert.Equal(t, 1792, conv.Params)
	assert.Equal(t, arch.Finite(3), conv.ReceptiveField)
	assert.Equal(t, 1, conv.EffectiveStride)

	pool := details[1]
	assert.Equal(t, arch.NewShape(111, 111, 64), pool.OutputShape)
	assert.Equal(t, 0, pool.Params)
	assert.Equal(t, arch.Finite(4), pool.ReceptiveField)
	assert.Equal(t, 2, pool.EffectiveStride)

	flat := details[2]
	assert.Equal(t, arch.NewShape(1, 1, 789504), flat.OutputShape)
	assert.Equal(t, 0, flat.Params)
	assert.Equal(t, arch.Finite(4), flat.ReceptiveField)
	assert.Equal(t, 2, flat.EffectiveStride)

	dense := details[3]
	assert.Equal(t, arch.NewShape(1, 1, 10), dense.OutputShape)
	assert.Equal(t, 7895050, dense.Params)

	assert.Equal(t, 1792+7895050, a.TotalParams())
}

func TestShapeChaining(t *testing.T) {
	a := newVGGHead()
	a.AddLayer(arch.NewBatchNorm(""))
	a.AddLayer(arch.NewConv2D(128, 3, 1, arch.PaddingSame, "relu", ""))
	a.AddLayer(arch.NewGlobalAvgPool2D(""))
	a.AddLayer(arch.NewDense(10, "softmax", true, ""))

	details := a.LayerDetails()
	require.Equal(t, len(details), len(a.Layers()))
	assert.Equal(t, a.InputShape(), details[0].InputShape)
	for i := 1; i < len(details); i++ {
		assert.Equal(t, details[i-1].OutputShape, details[i].InputShape, "layer %d", i)
	}
}

func TestDeterminism(t *testing.T) {
	a := newVGGHead()
	first := a.LayerDetails()
	second := a.LayerDetails()
	assert.Equal(t, first, second)
}

func TestParameterAdditivity(t *testing.T) {
	a := newVGGHead()
	a.AddLayer(arch.NewBatchNorm(""))
	a.AddLayer(arch.NewDense(100, "relu", true, ""))

	sum := 0
	for _, r := range a.LayerDetails() {
		sum += r.Params
	}
	assert.Equal(t, sum, a.TotalParams())
	assert.Equal(t, sum, a.Summary().TotalParams)
}

// Once a global pool reports an unbounded field, later layers keep
// propagating from the last finite value: the sentinel is reported but
// never added to.
func TestUnboundedPropagation(t *testing.T) {
	a := newVGGHead()
	a.AddLayer(arch.NewGlobalAvgPool2D(""))
	a.AddLayer(arch.NewBatchNorm(""))
	a.AddLayer(arch.NewDense(10, "softmax", true, ""))

	details := a.LayerDetails()
	gap := details[2]
	assert.True(t, gap.ReceptiveField.IsUnbounded())
	assert.Equal(t, arch.NewShape(1, 1, 64), gap.OutputShape)
	assert.Equal(t, 2, gap.EffectiveStride)

	// Subsequent layers carry the last finite value (4), not inf+delta.
	assert.Equal(t, arch.Finite(4), details[3].ReceptiveField)
	assert.Equal(t, arch.Finite(4), details[4].ReceptiveField)

	// A conv after the global pool resumes finite arithmetic from 4.
	a.RemoveLayer(4)
	a.RemoveLayer(3)
	a.AddLayer(arch.NewConv2D(8, 3, 1, arch.PaddingSame, "relu", ""))
	last := a.LayerDetails()[3]
	assert.Equal(t, arch.Finite(4+(3-1)*2), last.ReceptiveField)
}

func TestRemoveLayer(t *testing.T) {
	a := newVGGHead()
	a.RemoveLayer(0)
	details := a.LayerDetails()
	require.Len(t, details, 1)
	// The pool now sees the network input directly.
	assert.Equal(t, arch.NewShape(224, 224, 3), details[0].InputShape)
	assert.Equal(t, arch.NewShape(112, 112, 3), details[0].OutputShape)
}

func TestRemoveLayer_OutOfRangeIsNoOp(t *testing.T) {
	a := newVGGHead()
	before := a.LayerDetails()
	a.RemoveLayer(-1)
	a.RemoveLayer(2)
	a.RemoveLayer(99)
	assert.Equal(t, before, a.LayerDetails())
}

func TestClearLayers(t *testing.T) {
	a := newVGGHead()
	a.ClearLayers()
	assert.Empty(t, a.Layers())
	assert.Empty(t, a.LayerDetails())

	s := a.Summary()
	assert.Equal(t, 0, s.TotalParams)
	assert.Equal(t, 0, s.TotalLayers)
	assert.Equal(t, arch.Finite(1), s.ReceptiveField)
	assert.Equal(t, a.InputShape(), s.OutputShape)
}

func TestSetInputShape_Recomputes(t *testing.T) {
	a := newVGGHead()
	a.SetInputShape(32, 32, 1)

	details := a.LayerDetails()
	require.Len(t, details, 2)
	assert.Equal(t, arch.NewShape(32, 32, 1), details[0].InputShape)
	assert.Equal(t, arch.NewShape(30, 30, 64), details[0].OutputShape)
	// (3*3*1 + 1) * 64
	assert.Equal(t, 640, details[0].Params)
}

func TestSummary_Populated(t *testing.T) {
	a := newVGGHead()
	s := a.Summary()
	assert.Equal(t, arch.NewShape(224, 224, 3), s.InputShape)
	assert.Equal(t, arch.NewShape(111, 111, 64), s.OutputShape)
	assert.Equal(t, 2, s.TotalLayers)
	assert.Equal(t, 1792, s.TotalParams)
	assert.Equal(t, arch.Finite(4), s.ReceptiveField)
}

func TestLayerDetails_DefensiveCopy(t *testing.T) {
	a := newVGGHead()
	details := a.LayerDetails()
	details[0].Params = -1
	details[0].Name = "tampered"
	assert.Equal(t, 1792, a.LayerDetails()[0].Params)
	assert.Equal(t, "Conv2D_64_3x3", a.LayerDetails()[0].Name)
}

func TestExport_WireFormat(t *testing.T) {
	a := newVGGHead()
	a.AddLayer(arch.NewGlobalAvgPool2D(""))

	data, err := json.Marshal(a.Export())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, []any{float64(224), float64(224), float64(3)}, decoded["input_shape"])

	layers := decoded["layers"].([]any)
	require.Len(t, layers, 3)
	first := layers[0].(map[string]any)
	assert.Equal(t, "Conv2D_64_3x3", first["name"])
	assert.Equal(t, "Conv2D", first["config"].(map[string]any)["type"])

	// The unbounded receptive field serializes as "Global".
	details := decoded["layer_details"].([]any)
	gap := details[2].(map[string]any)
	assert.Equal(t, "Global", gap["receptive_field"])
	assert.Equal(t, float64(4), details[1].(map[string]any)["receptive_field"])

	analysis := decoded["analysis"].(map[string]any)
	assert.Equal(t, "Global", analysis["final_receptive_field"])
	assert.Equal(t, float64(3), analysis["total_layers"])
}
