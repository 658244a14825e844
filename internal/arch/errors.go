// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package arch

import (
	"errors"
	"fmt"
)

// ErrUnknownLayerType is returned by New when the type tag does not
// name a supported layer kind.
var ErrUnknownLayerType = errors.New("unknown layer type")

// ErrMissingField is returned by New when a variant-specific required
// configuration value is absent.
var ErrMissingField = errors.New("missing required field")

func unknownType(tag string) error {
	return fmt.Errorf("%w: %q", ErrUnknownLayerType, tag)
}

func missingField(kind Kind, field string) error {
	return fmt.Errorf("%w: %s requires %q", ErrMissingField, kind, field)
}
