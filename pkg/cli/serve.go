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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hostinfo/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve descriptors over HTTP",
		Description: `Starts an HTTP server exposing:
  GET /v1/hardware
  GET /v1/os
  GET /v1/system
  GET /health, /ready, /metrics

Each request performs a fresh collection. Add ?format=yaml for YAML.
The server stops on SIGINT or SIGTERM after draining in-flight requests.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagAddress,
				Usage:   "Listen address (host:port)",
				Sources: envVar(flagAddress),
			},
			&cli.FloatFlag{
				Name:    flagRateLimit,
				Usage:   "Sustained requests per second",
				Sources: envVar(flagRateLimit),
			},
			&cli.IntFlag{
				Name:    flagRateBurst,
				Usage:   "Request burst above the sustained rate",
				Sources: envVar(flagRateBurst),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := serveConfig(cmd)
			if err != nil {
				return err
			}
			return api.Serve(ctx, cfg)
		},
	}
}

// serveConfig layers the serve flags over the loaded settings.
func serveConfig(cmd *cli.Command) (api.Config, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return api.Config{}, err
	}

	srv := s.server
	if cmd.IsSet(flagAddress) {
		srv.Address = cmd.String(flagAddress)
	}
	if cmd.IsSet(flagRateLimit) {
		srv.RateLimit = cmd.Float(flagRateLimit)
	}
	if cmd.IsSet(flagRateBurst) {
		srv.RateBurst = int(cmd.Int(flagRateBurst))
	}

	return api.Config{
		Address:    srv.Address,
		RateLimit:  srv.RateLimit,
		RateBurst:  srv.RateBurst,
		Timeout:    s.timeout,
		Version:    version,
		Platform:   s.platform(),
		Aggregator: s.aggregator(),
	}, nil
}
