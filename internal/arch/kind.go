// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package arch

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported layer kinds. The set is closed:
// every calculation in this package switches exhaustively over it.
type Kind int

const (
	Conv2D Kind = iota
	MaxPool2D
	AvgPool2D
	BatchNorm
	Dropout
	GlobalAvgPool2D
	Flatten
	Dense
	Activation
)

// kindNames holds the display name per kind, indexed by Kind.
var kindNames = [...]string{
	"Conv2D",
	"MaxPool2D",
	"AvgPool2D",
	"BatchNorm2D",
	"Dropout",
	"GlobalAvgPool2D",
	"Flatten",
	"Dense",
	"Activation",
}

// kindTags maps the case-folded construction tags to kinds. Both the
// short "batchnorm" tag and the display-derived "batchnorm2d" are
// accepted so exported architectures load back through the factory.
var kindTags = map[string]Kind{
	"conv2d":          Conv2D,
	"maxpool2d":       MaxPool2D,
	"avgpool2d":       AvgPool2D,
	"batchnorm":       BatchNorm,
	"batchnorm2d":     BatchNorm,
	"dropout":         Dropout,
	"globalavgpool2d": GlobalAvgPool2D,
	"flatten":         Flatten,
	"dense":           Dense,
	"activation":      Activation,
}

// String returns the display name of the kind, e.g. "Conv2D".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindOf resolves a case-insensitive type tag (e.g. "conv2d", "Dense")
// to its Kind.
func KindOf(tag string) (Kind, bool) {
	k, ok := kindTags[strings.ToLower(tag)]
	return k, ok
}

// Kinds returns the construction tags of all supported layer kinds, in
// pipeline order. Used by boundary layers to enumerate the catalog.
func Kinds() []string {
	return []string{
		"conv2d", "maxpool2d", "avgpool2d", "batchnorm", "dropout",
		"globalavgpool2d", "flatten", "dense", "activation",
	}
}
