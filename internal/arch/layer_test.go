// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package arch

import (
	"testing"
)

func TestConv2D_OutputShape(t *testing.T) {
	tests := []struct {
		name  string
		layer Layer
		in    Shape
		want  Shape
	}{
		{
			name:  "valid padding shrinks by kernel",
			layer: NewConv2D(64, 3, 1, PaddingValid, "relu", ""),
			in:    NewShape(224, 224, 3),
			want:  NewShape(222, 222, 64),
		},
		{
			name:  "same padding keeps size at stride 1",
			layer: NewConv2D(32, 5, 1, PaddingSame, "relu", ""),
			in:    NewShape(28, 28, 1),
			want:  NewShape(28, 28, 32),
		},
		{
			name:  "same padding rounds up on odd size",
			layer: NewConv2D(32, 3, 2, PaddingSame, "relu", ""),
			in:    NewShape(7, 7, 16),
			want:  NewShape(4, 4, 32),
		},
		{
			name:  "valid padding with stride",
			layer: NewConv2D(16, 3, 2, PaddingValid, "relu", ""),
			in:    NewShape(224, 224, 3),
			want:  NewShape(111, 111, 16),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layer.OutputShape(tt.in); !got.Equal(tt.want) {
				t.Errorf("OutputShape(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConv2D_ParamCount(t *testing.T) {
	conv := NewConv2D(64, 3, 1, PaddingValid, "relu", "")
	// (3*3*3 + 1) * 64, bias always included.
	if got := conv.ParamCount(NewShape(224, 224, 3)); got != 1792 {
		t.Errorf("ParamCount = %d, want 1792", got)
	}
}

func TestConv2D_DefaultName(t *testing.T) {
	conv := NewConv2D(64, 3, 1, PaddingValid, "relu", "")
	if conv.Name() != "Conv2D_64_3x3" {
		t.Errorf("Name = %q, want Conv2D_64_3x3", conv.Name())
	}
	named := NewConv2D(64, 3, 1, PaddingValid, "relu", "stem")
	if named.Name() != "stem" {
		t.Errorf("Name = %q, want stem", named.Name())
	}
}

func TestPool_StrideDefaultsToPoolSize(t *testing.T) {
	pool := NewMaxPool2D(2, 0, PaddingValid, "")
	out := pool.OutputShape(NewShape(222, 222, 64))
	if !out.Equal(NewShape(111, 111, 64)) {
		t.Errorf("OutputShape = %v, want 111x111x64", out)
	}
	if pool.Name() != "MaxPool2D_2x2" {
		t.Errorf("Name = %q, want MaxPool2D_2x2", pool.Name())
	}
}

func TestPool_KeepsChannelsAndHasNoParams(t *testing.T) {
	for _, l := range []Layer{
		NewMaxPool2D(3, 2, PaddingSame, ""),
		NewAvgPool2D(3, 2, PaddingSame, ""),
	} {
		out := l.OutputShape(NewShape(10, 10, 7))
		if out.Channels != 7 {
			t.Errorf("%s: channels = %d, want 7", l.Kind(), out.Channels)
		}
		if got := l.ParamCount(NewShape(10, 10, 7)); got != 0 {
			t.Errorf("%s: ParamCount = %d, want 0", l.Kind(), got)
		}
	}
}

func TestBatchNorm(t *testing.T) {
	bn := NewBatchNorm("")
	in := NewShape(56, 56, 128)
	if got := bn.OutputShape(in); !got.Equal(in) {
		t.Errorf("OutputShape = %v, want %v", got, in)
	}
	if got := bn.ParamCount(in); got != 256 {
		t.Errorf("ParamCount = %d, want 256", got)
	}
}

func TestDropout_PassThrough(t *testing.T) {
	d := NewDropout(0.25, "")
	in := NewShape(14, 14, 32)
	if got := d.OutputShape(in); !got.Equal(in) {
		t.Errorf("OutputShape = %v, want %v", got, in)
	}
	if got := d.ParamCount(in); got != 0 {
		t.Errorf("ParamCount = %d, want 0", got)
	}
	if d.Name() != "Dropout_0.25" {
		t.Errorf("Name = %q, want Dropout_0.25", d.Name())
	}
}

func TestGlobalAvgPool2D(t *testing.T) {
	gap := NewGlobalAvgPool2D("")
	out := gap.OutputShape(NewShape(7, 7, 512))
	if !out.Equal(NewShape(1, 1, 512)) {
		t.Errorf("OutputShape = %v, want 1x1x512", out)
	}
	field, stride := gap.Propagate(11, 4)
	if !field.IsUnbounded() {
		t.Error("Propagate: field is finite, want unbounded")
	}
	if stride != 4 {
		t.Errorf("Propagate: stride = %d, want 4 (pass-through)", stride)
	}
}

func TestFlatten(t *testing.T) {
	f := NewFlatten("")
	out := f.OutputShape(NewShape(111, 111, 64))
	if !out.Equal(NewShape(1, 1, 789504)) {
		t.Errorf("OutputShape = %v, want 1x1x789504", out)
	}
}

func TestDense_Params(t *testing.T) {
	withBias := NewDense(10, "softmax", true, "")
	if got := withBias.ParamCount(NewShape(1, 1, 789504)); got != 7895050 {
		t.Errorf("ParamCount = %d, want 7895050", got)
	}
	noBias := NewDense(10, "softmax", false, "")
	if got := noBias.ParamCount(NewShape(1, 1, 789504)); got != 7895040 {
		t.Errorf("ParamCount without bias = %d, want 7895040", got)
	}
	if got := withBias.OutputShape(NewShape(4, 4, 8)); !got.Equal(NewShape(1, 1, 10)) {
		t.Errorf("OutputShape = %v, want 1x1x10", got)
	}
}

func TestActivation_PassThrough(t *testing.T) {
	a := NewActivation("sigmoid", "")
	in := NewShape(8, 8, 3)
	if got := a.OutputShape(in); !got.Equal(in) {
		t.Errorf("OutputShape = %v, want %v", got, in)
	}
	field, stride := a.Propagate(5, 2)
	if field.IsUnbounded() || field.Size() != 5 || stride != 2 {
		t.Errorf("Propagate = (%v, %d), want (5, 2)", field, stride)
	}
	if a.Name() != "Activation_sigmoid" {
		t.Errorf("Name = %q, want Activation_sigmoid", a.Name())
	}
}

func TestPropagate_WindowLayers(t *testing.T) {
	conv := NewConv2D(64, 3, 1, PaddingValid, "relu", "")
	field, stride := conv.Propagate(1, 1)
	if field.Size() != 3 || stride != 1 {
		t.Errorf("conv Propagate = (%v, %d), want (3, 1)", field, stride)
	}

	pool := NewMaxPool2D(2, 2, PaddingValid, "")
	field, stride = pool.Propagate(3, 1)
	if field.Size() != 4 || stride != 2 {
		t.Errorf("pool Propagate = (%v, %d), want (4, 2)", field, stride)
	}
}

// Degenerate configurations are accepted and run through the
// arithmetic unvalidated.
func TestDegenerateShapesPropagate(t *testing.T) {
	conv := NewConv2D(8, 5, 1, PaddingValid, "relu", "")
	out := conv.OutputShape(NewShape(3, 3, 0))
	if !out.Equal(NewShape(-1, -1, 8)) {
		t.Errorf("OutputShape = %v, want -1x-1x8", out)
	}
	if got := conv.ParamCount(NewShape(3, 3, 0)); got != 8 {
		t.Errorf("ParamCount with zero channels = %d, want 8 (bias only)", got)
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{10, 2, 5},
		{11, 2, 6},
		{7, 3, 3},
		{-3, 2, -1},
		{0, 4, 0},
	}
	for _, tt := range tests {
		if got := ceilDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("ceilDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
