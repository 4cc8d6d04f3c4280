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

// Package cli implements the hostinfo command line.
//
// # Commands
//
//	hostinfo hardware   collect the hardware descriptor
//	hostinfo os         collect the OS descriptor
//	hostinfo all        collect both under a document header (default)
//	hostinfo serve      serve descriptors over HTTP
//	hostinfo version    print version information
//
// # Global Flags
//
//	--output, -o            Output path: "-" for stdout, a file, or cm://namespace/name
//	--format, -f            Output format: json, yaml, table (default: json)
//	--timeout               Overall collection deadline
//	--collector-timeout     Per-source deadline
//	--config                YAML configuration file
//	--no-native             Skip native platform API sources
//	--disable               Source ids to skip (repeatable)
//	--debug                 Debug logging
//
// Every flag can also be set through a HOSTINFO_* environment variable, for
// example HOSTINFO_FORMAT=yaml. Flags override the configuration file, which
// overrides the built-in defaults.
//
// # Examples
//
//	hostinfo -f yaml
//	hostinfo hardware --disable lshw -o hw.json
//	hostinfo os -o cm://ops/node-1
//	hostinfo serve --address :8080
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments, configuration or output failure
//
// Collection itself never fails; sources that cannot answer leave their
// fields empty.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/hostinfo/pkg/cli.version=1.0.0'"
package cli
