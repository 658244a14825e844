// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package arch

import (
	"fmt"
	"strconv"
)

// Padding selects the output-size convention of convolution and pooling.
type Padding string

const (
	// PaddingValid shrinks the spatial size by the kernel footprint:
	// out = ceil((in - k + 1) / stride).
	PaddingValid Padding = "valid"
	// PaddingSame keeps the spatial size up to the stride:
	// out = ceil(in / stride), independent of the kernel size.
	PaddingSame Padding = "same"
)

// Layer is an immutable descriptor of one network layer.
//
// A layer carries only its own configuration; shapes, positions and
// analysis results live in the analyzer. The zero-valued fields that do
// not apply to a given kind are never read.
//
// All four calculations are pure functions of the configuration and
// their inputs:
//
//	OutputShape:  (input shape)        -> output shape
//	ParamCount:   (input shape)        -> trainable parameter count
//	Propagate:    (rf, stride)         -> (receptive field, effective stride)
//	Config:       ()                   -> display/serialization projection
type Layer struct {
	kind Kind
	name string

	filters    int
	kernel     int
	pool       int
	stride     int
	padding    Padding
	activation string
	rate       float64
	units      int
	useBias    bool
}

// NewConv2D creates a 2D convolution descriptor.
//
// stride <= 0 defaults to 1, an empty padding to "valid", an empty
// activation to "relu" and an empty name to "Conv2D_<F>_<K>x<K>".
// Parameters count as (K*K*C_in + 1) * F; the bias is always included.
func NewConv2D(filters, kernel, stride int, padding Padding, activation, name string) Layer {
	if stride <= 0 {
		stride = 1
	}
	if padding == "" {
		padding = PaddingValid
	}
	if activation == "" {
		activation = "relu"
	}
	if name == "" {
		name = fmt.Sprintf("Conv2D_%d_%dx%d", filters, kernel, kernel)
	}
	return Layer{
		kind:       Conv2D,
		name:       name,
		filters:    filters,
		kernel:     kernel,
		stride:     stride,
		padding:    padding,
		activation: activation,
	}
}

// NewMaxPool2D creates a max-pooling descriptor. stride <= 0 defaults to
// the pool size.
func NewMaxPool2D(pool, stride int, padding Padding, name string) Layer {
	return newPool(MaxPool2D, pool, stride, padding, name)
}

// NewAvgPool2D creates an average-pooling descriptor. stride <= 0
// defaults to the pool size.
func NewAvgPool2D(pool, stride int, padding Padding, name string) Layer {
	return newPool(AvgPool2D, pool, stride, padding, name)
}

func newPool(kind Kind, pool, stride int, padding Padding, name string) Layer {
	if stride <= 0 {
		stride = pool
	}
	if padding == "" {
		padding = PaddingValid
	}
	if name == "" {
		name = fmt.Sprintf("%s_%dx%d", kind, pool, pool)
	}
	return Layer{
		kind:    kind,
		name:    name,
		pool:    pool,
		stride:  stride,
		padding: padding,
	}
}

// NewBatchNorm creates a batch-normalization descriptor. It contributes
// 2*C parameters (scale and shift per channel) and changes nothing else.
func NewBatchNorm(name string) Layer {
	if name == "" {
		name = "BatchNorm2D"
	}
	return Layer{kind: BatchNorm, name: name}
}

// NewDropout creates a dropout descriptor. The rate is retained only for
// display; dropout affects neither shape nor parameters.
func NewDropout(rate float64, name string) Layer {
	if name == "" {
		name = "Dropout_" + strconv.FormatFloat(rate, 'g', -1, 64)
	}
	return Layer{kind: Dropout, name: name, rate: rate}
}

// NewGlobalAvgPool2D creates a global-average-pooling descriptor. Its
// receptive field is unbounded: one output unit aggregates the whole
// spatial extent.
func NewGlobalAvgPool2D(name string) Layer {
	if name == "" {
		name = "GlobalAvgPool2D"
	}
	return Layer{kind: GlobalAvgPool2D, name: name}
}

// NewFlatten creates a flatten descriptor collapsing (H, W, C) into
// (1, 1, H*W*C).
func NewFlatten(name string) Layer {
	if name == "" {
		name = "Flatten"
	}
	return Layer{kind: Flatten, name: name}
}

// NewDense creates a fully connected descriptor. An empty activation
// defaults to "relu" and an empty name to "Dense_<units>".
func NewDense(units int, activation string, useBias bool, name string) Layer {
	if activation == "" {
		activation = "relu"
	}
	if name == "" {
		name = fmt.Sprintf("Dense_%d", units)
	}
	return Layer{
		kind:       Dense,
		name:       name,
		units:      units,
		activation: activation,
		useBias:    useBias,
	}
}

// NewActivation creates a standalone activation descriptor. It carries
// only a label for rendering; every calculation passes through.
func NewActivation(activation, name string) Layer {
	if activation == "" {
		activation = "relu"
	}
	if name == "" {
		name = "Activation_" + activation
	}
	return Layer{kind: Activation, name: name, activation: activation}
}

// Kind returns the layer kind.
func (l Layer) Kind() Kind { return l.kind }

// Name returns the user-supplied or type-derived layer name.
func (l Layer) Name() string { return l.name }

// OutputShape computes the output shape for the given input shape.
func (l Layer) OutputShape(in Shape) Shape {
	switch l.kind {
	case Conv2D:
		h, w := window(in.Height, in.Width, l.kernel, l.stride, l.padding)
		return Shape{Height: h, Width: w, Channels: l.filters}
	case MaxPool2D, AvgPool2D:
		h, w := window(in.Height, in.Width, l.pool, l.stride, l.padding)
		return Shape{Height: h, Width: w, Channels: in.Channels}
	case GlobalAvgPool2D:
		return Shape{Height: 1, Width: 1, Channels: in.Channels}
	case Flatten:
		return Shape{Height: 1, Width: 1, Channels: in.Size()}
	case Dense:
		return Shape{Height: 1, Width: 1, Channels: l.units}
	case BatchNorm, Dropout, Activation:
		return in
	default:
		panic(fmt.Sprintf("arch: unhandled kind %d", int(l.kind)))
	}
}

// ParamCount computes the trainable parameter count for the given input
// shape. Pooling, dropout, flatten and activation layers have none.
func (l Layer) ParamCount(in Shape) int {
	switch l.kind {
	case Conv2D:
		return (l.kernel*l.kernel*in.Channels + 1) * l.filters
	case BatchNorm:
		return 2 * in.Channels
	case Dense:
		params := in.Size() * l.units
		if l.useBias {
			params += l.units
		}
		return params
	case MaxPool2D, AvgPool2D, Dropout, GlobalAvgPool2D, Flatten, Activation:
		return 0
	default:
		panic(fmt.Sprintf("arch: unhandled kind %d", int(l.kind)))
	}
}

// Propagate advances the receptive-field state through the layer. The
// inputs are the finite receptive field and effective stride accumulated
// so far; the returned field is unbounded only for global pooling.
func (l Layer) Propagate(rf, stride int) (Field, int) {
	switch l.kind {
	case Conv2D:
		return Finite(rf + (l.kernel-1)*stride), stride * l.stride
	case MaxPool2D, AvgPool2D:
		return Finite(rf + (l.pool-1)*stride), stride * l.stride
	case GlobalAvgPool2D:
		return Unbounded(), stride
	case BatchNorm, Dropout, Flatten, Dense, Activation:
		return Finite(rf), stride
	default:
		panic(fmt.Sprintf("arch: unhandled kind %d", int(l.kind)))
	}
}

// Config returns the configuration projection used for display and
// serialization. Keys follow the exported-architecture wire format.
func (l Layer) Config() map[string]any {
	switch l.kind {
	case Conv2D:
		return map[string]any{
			"type":        l.kind.String(),
			"filters":     l.filters,
			"kernel_size": l.kernel,
			"stride":      l.stride,
			"padding":     string(l.padding),
			"activation":  l.activation,
		}
	case MaxPool2D, AvgPool2D:
		return map[string]any{
			"type":      l.kind.String(),
			"pool_size": l.pool,
			"stride":    l.stride,
			"padding":   string(l.padding),
		}
	case Dropout:
		return map[string]any{
			"type": l.kind.String(),
			"rate": l.rate,
		}
	case Dense:
		return map[string]any{
			"type":       l.kind.String(),
			"units":      l.units,
			"activation": l.activation,
			"use_bias":   l.useBias,
		}
	case Activation:
		return map[string]any{
			"type":       l.kind.String(),
			"activation": l.activation,
		}
	case BatchNorm, GlobalAvgPool2D, Flatten:
		return map[string]any{
			"type": l.kind.String(),
		}
	default:
		panic(fmt.Sprintf("arch: unhandled kind %d", int(l.kind)))
	}
}

// window computes the spatial output size of a sliding-window layer,
// independently per dimension.
func window(h, w, k, stride int, padding Padding) (int, int) {
	if padding == PaddingSame {
		return ceilDiv(h, stride), ceilDiv(w, stride)
	}
	return ceilDiv(h-k+1, stride), ceilDiv(w-k+1, stride)
}

// ceilDiv divides rounding toward positive infinity. The numerator may
// be negative for degenerate shapes; those propagate unvalidated.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}
