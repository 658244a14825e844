// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package arch

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// GlobalLabel is the wire representation of an unbounded receptive field.
const GlobalLabel = "Global"

// Field is a receptive-field value: either a finite size in input pixels
// or unbounded, meaning the field spans the entire input (global pooling).
//
// The two cases are explicit so that unbounded values cannot leak into
// finite arithmetic; callers must check IsUnbounded before reading Size.
type Field struct {
	size      int
	unbounded bool
}

// Finite returns a receptive field of n input pixels.
func Finite(n int) Field {
	return Field{size: n}
}

// Unbounded returns the receptive field covering the entire input.
func Unbounded() Field {
	return Field{unbounded: true}
}

// IsUnbounded reports whether the field spans the entire input.
func (f Field) IsUnbounded() bool {
	return f.unbounded
}

// Size returns the finite field size. It is meaningless when the field
// is unbounded.
func (f Field) Size() int {
	return f.size
}

func (f Field) String() string {
	if f.unbounded {
		return GlobalLabel
	}
	return strconv.Itoa(f.size)
}

// MarshalJSON encodes a finite field as its integer size and an unbounded
// field as the string "Global".
func (f Field) MarshalJSON() ([]byte, error) {
	if f.unbounded {
		return json.Marshal(GlobalLabel)
	}
	return json.Marshal(f.size)
}

// UnmarshalJSON decodes either an integer or the string "Global".
func (f *Field) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = Finite(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil || s != GlobalLabel {
		return fmt.Errorf("receptive field: expected integer or %q, got %s", GlobalLabel, data)
	}
	*f = Unbounded()
	return nil
}
