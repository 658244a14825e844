// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package persist saves and loads exported architectures as JSON files.
// Layers are rebuilt through the factory on load, so a loaded analyzer
// recomputes its records rather than trusting the stored ones.
package persist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/netscope-ml/netscope/internal/analyzer"
	"github.com/netscope-ml/netscope/internal/arch"
)

// Write serializes the analyzer's exported architecture to w.
func Write(w io.Writer, a *analyzer.Analyzer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a.Export()); err != nil {
		return fmt.Errorf("could not encode architecture: %w", err)
	}
	return nil
}

// Read rebuilds an analyzer from an exported architecture. Each stored
// layer goes back through the factory, so unknown types or missing
// fields surface the construction errors.
func Read(r io.Reader) (*analyzer.Analyzer, error) {
	var archive analyzer.Architecture
	if err := json.NewDecoder(r).Decode(&archive); err != nil {
		return nil, fmt.Errorf("could not decode architecture: %w", err)
	}

	a := analyzer.New(archive.InputShape)
	for i, spec := range archive.Layers {
		tag, _ := spec.Config["type"].(string)
		cfg := make(map[string]any, len(spec.Config))
		for k, v := range spec.Config {
			cfg[k] = v
		}
		delete(cfg, "type")
		cfg["name"] = spec.Name

		layer, err := arch.New(tag, cfg)
		if err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, spec.Name, err)
		}
		a.AddLayer(layer)
	}
	return a, nil
}

// SaveFile writes the architecture to a file, truncating it if present.
func SaveFile(path string, a *analyzer.Analyzer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Write(f, a)
}

// LoadFile reads an architecture file written by SaveFile.
func LoadFile(path string) (*analyzer.Analyzer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Read(f)
}
