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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hostinfo/pkg/serializer"
)

type kind int

const (
	kindAll kind = iota
	kindHardware
	kindOS
)

func hardwareCmd() *cli.Command {
	return &cli.Command{
		Name:  "hardware",
		Usage: "Collect the hardware descriptor",
		Description: `Reports manufacturer, model, serial number, BIOS, memory, processor,
architecture, CPU counts and processor feature flags.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return collect(ctx, cmd, kindHardware)
		},
	}
}

func osCmd() *cli.Command {
	return &cli.Command{
		Name:  "os",
		Usage: "Collect the operating system descriptor",
		Description: `Reports OS name, kernel, edition, version, word size, hostname and
the local IP address.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return collect(ctx, cmd, kindOS)
		},
	}
}

func allCmd() *cli.Command {
	return &cli.Command{
		Name:  "all",
		Usage: "Collect both descriptors into one document",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return collect(ctx, cmd, kindAll)
		},
	}
}

// collect gathers one document and writes it to the configured output.
func collect(ctx context.Context, cmd *cli.Command, k kind) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	p := s.platform()
	agg := s.aggregator()

	slog.Debug("collecting",
		"platform", p.Name,
		"hardwareSources", p.Hardware.Sources(),
		"osSources", p.OS.Sources(),
		"timeout", s.timeout)

	collectCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var doc any
	switch k {
	case kindHardware:
		doc = agg.Hardware(collectCtx, p.Hardware)
	case kindOS:
		doc = agg.OS(collectCtx, p.OS)
	default:
		doc = agg.System(collectCtx, p)
	}

	return write(ctx, s, doc)
}

func write(ctx context.Context, s *settings, doc any) error {
	ser, err := serializer.NewFileWriterOrStdout(s.format, s.output)
	if err != nil {
		return err
	}
	defer func() {
		if err := serializer.Close(ser); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, doc)
}
