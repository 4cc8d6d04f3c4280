// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/hostinfo/pkg/defaults"
	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
	"github.com/NVIDIA/hostinfo/pkg/serializer"
)

// DefaultServerAddress is the serve mode listen address.
const DefaultServerAddress = ":8080"

// Config is the file configuration.
type Config struct {
	Timeout          time.Duration `yaml:"timeout,omitempty"`
	CollectorTimeout time.Duration `yaml:"collectorTimeout,omitempty"`
	Format           string        `yaml:"format,omitempty"`
	Output           string        `yaml:"output,omitempty"`
	Native           *bool         `yaml:"native,omitempty"`
	Disable          []string      `yaml:"disable,omitempty"`
	Server           Server        `yaml:"server,omitempty"`
}

// Server holds serve mode settings.
type Server struct {
	Address   string  `yaml:"address,omitempty"`
	RateLimit float64 `yaml:"rateLimit,omitempty"`
	RateBurst int     `yaml:"rateBurst,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	native := true
	return &Config{
		Timeout:          defaults.CollectionTimeout,
		CollectorTimeout: defaults.CollectorTimeout,
		Format:           string(serializer.FormatJSON),
		Output:           serializer.StdoutPath,
		Native:           &native,
		Server: Server{
			Address:   DefaultServerAddress,
			RateLimit: defaults.ServerRateLimit,
			RateBurst: defaults.ServerRateBurst,
		},
	}
}

// Load reads path over the defaults. An empty path returns Default.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		code := herrors.ErrCodeInternal
		if errors.Is(err, os.ErrNotExist) {
			code = herrors.ErrCodeNotFound
		}
		return nil, herrors.WrapWithContext(code, "failed to read config file", err,
			map[string]any{"path": path})
	}

	cfg, err := Parse(content)
	if err != nil {
		return nil, herrors.WrapWithContext(herrors.ErrCodeInvalidRequest, "invalid config file", err,
			map[string]any{"path": path})
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(content []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, herrors.Wrap(herrors.ErrCodeInvalidRequest, "failed to decode config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and the output format.
func (c *Config) Validate() error {
	if c.Timeout < 0 || c.CollectorTimeout < 0 {
		return herrors.NewWithContext(herrors.ErrCodeInvalidRequest, "timeouts must not be negative",
			map[string]any{"timeout": c.Timeout.String(), "collectorTimeout": c.CollectorTimeout.String()})
	}
	if c.Format != "" {
		if _, err := serializer.ParseFormat(c.Format); err != nil {
			return err
		}
	}
	if c.Server.RateLimit < 0 || c.Server.RateBurst < 0 {
		return herrors.New(herrors.ErrCodeInvalidRequest, "server rate settings must not be negative")
	}
	return nil
}

// NativeEnabled reports whether native sources are on. Unset means on.
func (c *Config) NativeEnabled() bool {
	return c.Native == nil || *c.Native
}
