// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package arch

import (
	"github.com/netscope-ml/netscope/internal/arch"
)

// Shape describes a feature map as (height, width, channels).
type Shape = arch.Shape

// NewShape creates a shape from its three dimensions.
func NewShape(h, w, c int) Shape {
	return arch.NewShape(h, w, c)
}

// Field is a receptive-field value: finite or unbounded.
type Field = arch.Field

// Finite returns a receptive field of n input pixels.
func Finite(n int) Field {
	return arch.Finite(n)
}

// Unbounded returns the receptive field covering the entire input.
func Unbounded() Field {
	return arch.Unbounded()
}

// Kind identifies one of the supported layer kinds.
type Kind = arch.Kind

// Layer kinds.
const (
	Conv2D          Kind = arch.Conv2D
	MaxPool2D       Kind = arch.MaxPool2D
	AvgPool2D       Kind = arch.AvgPool2D
	BatchNorm       Kind = arch.BatchNorm
	Dropout         Kind = arch.Dropout
	GlobalAvgPool2D Kind = arch.GlobalAvgPool2D
	Flatten         Kind = arch.Flatten
	Dense           Kind = arch.Dense
	Activation      Kind = arch.Activation
)

// KindOf resolves a case-insensitive type tag to its Kind.
func KindOf(tag string) (Kind, bool) {
	return arch.KindOf(tag)
}

// Kinds returns the construction tags of all supported layer kinds.
func Kinds() []string {
	return arch.Kinds()
}

// Padding selects the output-size convention of convolution and pooling.
type Padding = arch.Padding

// Padding modes.
const (
	PaddingValid Padding = arch.PaddingValid
	PaddingSame  Padding = arch.PaddingSame
)

// Layer is an immutable descriptor of one network layer.
type Layer = arch.Layer

// Construction errors.
var (
	ErrUnknownLayerType = arch.ErrUnknownLayerType
	ErrMissingField     = arch.ErrMissingField
)

// New builds a layer from a type tag and a configuration map.
//
// Example:
//
//	layer, err := arch.New("conv2d", map[string]any{
//	    "filters":     64,
//	    "kernel_size": 3,
//	    "padding":     "same",
//	})
func New(tag string, cfg map[string]any) (Layer, error) {
	return arch.New(tag, cfg)
}

// NewConv2D creates a 2D convolution descriptor.
func NewConv2D(filters, kernel, stride int, padding Padding, activation, name string) Layer {
	return arch.NewConv2D(filters, kernel, stride, padding, activation, name)
}

// NewMaxPool2D creates a max-pooling descriptor.
func NewMaxPool2D(pool, stride int, padding Padding, name string) Layer {
	return arch.NewMaxPool2D(pool, stride, padding, name)
}

// NewAvgPool2D creates an average-pooling descriptor.
func NewAvgPool2D(pool, stride int, padding Padding, name string) Layer {
	return arch.NewAvgPool2D(pool, stride, padding, name)
}

// NewBatchNorm creates a batch-normalization descriptor.
func NewBatchNorm(name string) Layer {
	return arch.NewBatchNorm(name)
}

// NewDropout creates a dropout descriptor.
func NewDropout(rate float64, name string) Layer {
	return arch.NewDropout(rate, name)
}

// NewGlobalAvgPool2D creates a global-average-pooling descriptor.
func NewGlobalAvgPool2D(name string) Layer {
	return arch.NewGlobalAvgPool2D(name)
}

// NewFlatten creates a flatten descriptor.
func NewFlatten(name string) Layer {
	return arch.NewFlatten(name)
}

// NewDense creates a fully connected descriptor.
func NewDense(units int, activation string, useBias bool, name string) Layer {
	return arch.NewDense(units, activation, useBias, name)
}

// NewActivation creates a standalone activation descriptor.
func NewActivation(activation, name string) Layer {
	return arch.NewActivation(activation, name)
}
