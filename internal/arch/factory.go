// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package arch

// New builds a layer from a case-insensitive type tag and a generic
// configuration map, as received from a JSON boundary. Numeric values
// may arrive as int, int64 or float64 (the encoding/json default).
//
// Required fields per kind: conv2d needs "filters" and "kernel_size",
// both pooling kinds need "pool_size", dense needs "units". Everything
// else is optional with the constructor defaults. Degenerate values
// (zero or negative sizes) are accepted and propagate through the
// arithmetic unvalidated.
func New(tag string, cfg map[string]any) (Layer, error) {
	kind, ok := KindOf(tag)
	if !ok {
		return Layer{}, unknownType(tag)
	}

	name := stringField(cfg, "name", "")

	switch kind {
	case Conv2D:
		filters, ok := intField(cfg, "filters")
		if !ok {
			return Layer{}, missingField(kind, "filters")
		}
		kernel, ok := intField(cfg, "kernel_size")
		if !ok {
			return Layer{}, missingField(kind, "kernel_size")
		}
		stride, _ := intField(cfg, "stride")
		padding := Padding(stringField(cfg, "padding", string(PaddingValid)))
		activation := stringField(cfg, "activation", "relu")
		return NewConv2D(filters, kernel, stride, padding, activation, name), nil

	case MaxPool2D, AvgPool2D:
		pool, ok := intField(cfg, "pool_size")
		if !ok {
			return Layer{}, missingField(kind, "pool_size")
		}
		stride, _ := intField(cfg, "stride")
		padding := Padding(stringField(cfg, "padding", string(PaddingValid)))
		if kind == MaxPool2D {
			return NewMaxPool2D(pool, stride, padding, name), nil
		}
		return NewAvgPool2D(pool, stride, padding, name), nil

	case BatchNorm:
		return NewBatchNorm(name), nil

	case Dropout:
		rate := floatField(cfg, "rate", 0.5)
		return NewDropout(rate, name), nil

	case GlobalAvgPool2D:
		return NewGlobalAvgPool2D(name), nil

	case Flatten:
		return NewFlatten(name), nil

	case Dense:
		units, ok := intField(cfg, "units")
		if !ok {
			return Layer{}, missingField(kind, "units")
		}
		activation := stringField(cfg, "activation", "relu")
		useBias := boolField(cfg, "use_bias", true)
		return NewDense(units, activation, useBias, name), nil

	case Activation:
		activation := stringField(cfg, "activation", "relu")
		return NewActivation(activation, name), nil
	}

	return Layer{}, unknownType(tag)
}

func intField(cfg map[string]any, key string) (int, bool) {
	switch v := cfg[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func floatField(cfg map[string]any, key string, def float64) float64 {
	switch v := cfg[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return def
	}
}

func stringField(cfg map[string]any, key, def string) string {
	if v, ok := cfg[key].(string); ok && v != "" {
		return v
	}
	return def
}

func boolField(cfg map[string]any, key string, def bool) bool {
	if v, ok := cfg[key].(bool); ok {
		return v
	}
	return def
}
