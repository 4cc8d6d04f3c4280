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
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hostinfo/pkg/logging"
)

const (
	name           = "hostinfo"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the command line and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1) //nolint:gocritic // stop is called explicitly above
	}
}

// NewCommand returns the root command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Describe the hardware and operating system of this host",
		Version:               version,
		EnableShellCompletion: true,
		Description: `Collects a normalized hardware and OS descriptor for the local machine by
querying system utilities, platform APIs and pseudo-files concurrently and
reconciling their partial output.

Without a command, hostinfo collects both descriptors (same as "all").`,
		Flags:  globalFlags(),
		Before: initLogger,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return collect(ctx, cmd, kindAll)
		},
		Commands: []*cli.Command{
			hardwareCmd(),
			osCmd(),
			allCmd(),
			serveCmd(),
			versionCmd(),
		},
	}
}

// initLogger configures slog after flags are parsed so --debug takes effect
// before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := ""
	if cmd.Bool(flagDebug) {
		level = "debug"
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date)
	return ctx, nil
}
