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

// Package config loads the optional hostinfo configuration file.
//
// The file is YAML; every key is optional:
//
//	timeout: 30s
//	collectorTimeout: 10s
//	format: yaml
//	output: cm://ops/node-1
//	native: true
//	disable: [lshw, system_profiler]
//	server:
//	  address: ":8080"
//	  rateLimit: 10
//	  rateBurst: 20
//
// Command line flags override file values, and file values override the
// constants in pkg/defaults. Unknown keys are rejected.
package config
