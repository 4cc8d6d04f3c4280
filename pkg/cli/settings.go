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
	"slices"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hostinfo/pkg/aggregator"
	"github.com/NVIDIA/hostinfo/pkg/config"
	"github.com/NVIDIA/hostinfo/pkg/platform"
	"github.com/NVIDIA/hostinfo/pkg/serializer"
)

// baseOptions are applied before the settings-derived platform options.
var baseOptions []platform.Option

// settings is the effective configuration of one invocation.
type settings struct {
	format           serializer.Format
	output           string
	timeout          time.Duration
	collectorTimeout time.Duration
	native           bool
	disable          []string
	server           config.Server
}

// loadSettings layers flags over the config file over defaults.
func loadSettings(cmd *cli.Command) (*settings, error) {
	cfg, err := config.Load(cmd.String(flagConfig))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet(flagFormat) {
		cfg.Format = cmd.String(flagFormat)
	}
	if cmd.IsSet(flagOutput) {
		cfg.Output = cmd.String(flagOutput)
	}
	if cmd.IsSet(flagTimeout) {
		cfg.Timeout = cmd.Duration(flagTimeout)
	}
	if cmd.IsSet(flagCollectorTimeout) {
		cfg.CollectorTimeout = cmd.Duration(flagCollectorTimeout)
	}
	if cmd.Bool(flagNoNative) {
		native := false
		cfg.Native = &native
	}
	if cmd.IsSet(flagDisable) {
		cfg.Disable = append(cfg.Disable, cmd.StringSlice(flagDisable)...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	format, err := serializer.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	slices.Sort(cfg.Disable)
	return &settings{
		format:           format,
		output:           cfg.Output,
		timeout:          cfg.Timeout,
		collectorTimeout: cfg.CollectorTimeout,
		native:           cfg.NativeEnabled(),
		disable:          slices.Compact(cfg.Disable),
		server:           cfg.Server,
	}, nil
}

func (s *settings) platform() *platform.Platform {
	opts := append(slices.Clone(baseOptions),
		platform.WithNative(s.native),
		platform.WithDisabled(s.disable...),
	)
	return platform.Current(opts...)
}

func (s *settings) aggregator() *aggregator.Aggregator {
	return aggregator.New(
		aggregator.WithCollectorTimeout(s.collectorTimeout),
		aggregator.WithVersion(version),
	)
}
