// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package arch

import (
	"encoding/json"
	"fmt"
)

// Shape describes a feature map as (height, width, channels).
//
// Height and width collapse to 1 once a layer has removed the spatial
// extent (Flatten, Dense, GlobalAvgPool2D).
type Shape struct {
	Height   int
	Width    int
	Channels int
}

// NewShape creates a shape from its three dimensions.
func NewShape(h, w, c int) Shape {
	return Shape{Height: h, Width: w, Channels: c}
}

// Size returns the total number of elements, height * width * channels.
func (s Shape) Size() int {
	return s.Height * s.Width * s.Channels
}

// Equal reports whether two shapes have identical dimensions.
func (s Shape) Equal(o Shape) bool {
	return s == o
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%d", s.Height, s.Width, s.Channels)
}

// MarshalJSON encodes the shape as the 3-element array [h, w, c].
func (s Shape) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{s.Height, s.Width, s.Channels})
}

// UnmarshalJSON decodes a shape from the [h, w, c] array form.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var dims [3]int
	if err := json.Unmarshal(data, &dims); err != nil {
		return fmt.Errorf("shape: expected [h, w, c]: %w", err)
	}
	s.Height, s.Width, s.Channels = dims[0], dims[1], dims[2]
	return nil
}
