// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package config loads the server configuration from a YAML file with
// sensible defaults and a NETSCOPE_PORT environment override.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/netscope-ml/netscope/internal/arch"
)

// portEnv overrides the configured port when set.
const portEnv = "NETSCOPE_PORT"

// Config is the server configuration.
type Config struct {
	Port              int       `yaml:"port"`
	InputShape        ShapeYAML `yaml:"input_shape"`
	SessionTTLMinutes int       `yaml:"session_ttl_minutes"`
}

// SessionTTL returns the session idle timeout.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// ShapeYAML is the YAML form of the default input shape.
type ShapeYAML struct {
	Height   int `yaml:"height"`
	Width    int `yaml:"width"`
	Channels int `yaml:"channels"`
}

// Shape converts the YAML form to the core shape.
func (s ShapeYAML) Shape() arch.Shape {
	return arch.NewShape(s.Height, s.Width, s.Channels)
}

// Default returns the configuration used when no file is given: port
// 8000, a 224x224x3 input and a one-hour session TTL.
func Default() Config {
	return Config{
		Port:              8000,
		InputShape:        ShapeYAML{Height: 224, Width: 224, Channels: 3},
		SessionTTLMinutes: 60,
	}
}

// Load reads the configuration from path, starting from Default and
// applying the environment override last. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("could not read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("could not parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv(portEnv); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s value %q: %w", portEnv, v, err)
		}
		cfg.Port = port
	}
	return cfg, nil
}
