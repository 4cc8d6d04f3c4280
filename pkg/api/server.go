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

package api

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/NVIDIA/hostinfo/pkg/aggregator"
	"github.com/NVIDIA/hostinfo/pkg/platform"
	"github.com/NVIDIA/hostinfo/pkg/server"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

const name = "hostinfo"

// Config holds the serve mode settings.
type Config struct {
	// Address is host:port; an empty host listens on all interfaces.
	Address string

	RateLimit float64
	RateBurst int

	// Timeout bounds each request's collection.
	Timeout time.Duration

	Version    string
	Platform   *platform.Platform
	Aggregator *aggregator.Aggregator
}

// NewServer builds the HTTP server for cfg.
func NewServer(cfg Config) (*server.Server, error) {
	p := cfg.Platform
	if p == nil {
		p = platform.Current()
	}

	opts := []server.Option{
		server.WithName(name),
		server.WithVersion(cfg.Version),
		server.WithRateLimit(cfg.RateLimit, cfg.RateBurst),
		server.WithHandler(NewHandler(p, cfg.Aggregator, cfg.Timeout).Routes()),
	}

	if cfg.Address != "" {
		host, portStr, err := net.SplitHostPort(cfg.Address)
		if err != nil {
			return nil, herrors.WrapWithContext(herrors.ErrCodeInvalidRequest, "invalid server address", err,
				map[string]any{"address": cfg.Address})
		}
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			return nil, herrors.NewWithContext(herrors.ErrCodeInvalidRequest, "invalid server port",
				map[string]any{"address": cfg.Address})
		}
		opts = append(opts, server.WithAddress(host), server.WithPort(port))
	}

	slog.Debug("api server configured",
		"platform", p.Name,
		"hardwareSources", p.Hardware.Sources(),
		"osSources", p.OS.Sources())

	return server.New(opts...), nil
}

// Serve runs the API until ctx is canceled or a termination signal arrives.
func Serve(ctx context.Context, cfg Config) error {
	s, err := NewServer(cfg)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}
