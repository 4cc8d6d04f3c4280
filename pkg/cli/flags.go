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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hostinfo/pkg/collector"
	"github.com/NVIDIA/hostinfo/pkg/defaults"
	"github.com/NVIDIA/hostinfo/pkg/serializer"
)

const (
	flagOutput           = "output"
	flagFormat           = "format"
	flagTimeout          = "timeout"
	flagCollectorTimeout = "collector-timeout"
	flagConfig           = "config"
	flagNoNative         = "no-native"
	flagDisable          = "disable"
	flagDebug            = "debug"
	flagAddress          = "address"
	flagRateLimit        = "rate-limit"
	flagRateBurst        = "rate-burst"
)

func envVar(flag string) cli.ValueSourceChain {
	return cli.EnvVars("HOSTINFO_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_")))
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagOutput,
			Aliases: []string{"o"},
			Usage:   `Output path: "-" for stdout, a file path, or a ConfigMap URI (cm://namespace/name)`,
			Value:   serializer.StdoutPath,
			Sources: envVar(flagOutput),
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"f"},
			Usage:   fmt.Sprintf("Output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
			Value:   string(serializer.FormatJSON),
			Sources: envVar(flagFormat),
		},
		&cli.DurationFlag{
			Name:    flagTimeout,
			Usage:   "Overall collection deadline",
			Value:   defaults.CollectionTimeout,
			Sources: envVar(flagTimeout),
		},
		&cli.DurationFlag{
			Name:    flagCollectorTimeout,
			Usage:   "Deadline for each individual source",
			Value:   defaults.CollectorTimeout,
			Sources: envVar(flagCollectorTimeout),
		},
		&cli.StringFlag{
			Name:      flagConfig,
			Usage:     "Path to a YAML configuration file",
			Sources:   envVar(flagConfig),
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:    flagNoNative,
			Usage:   "Skip native platform API sources and use system utilities only",
			Sources: envVar(flagNoNative),
		},
		&cli.StringSliceFlag{
			Name:    flagDisable,
			Usage:   "Source id to skip, repeatable (e.g. " + collector.SourceLshw + ")",
			Sources: envVar(flagDisable),
		},
		&cli.BoolFlag{
			Name:    flagDebug,
			Usage:   "Enable debug logging",
			Sources: envVar(flagDebug),
		},
	}
}
