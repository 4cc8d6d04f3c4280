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

// Package defaults provides centralized configuration constants for hostinfo.
//
// This package defines timeout values and other defaults used across the
// codebase. Flags and the config file override them.
//
// # Timeout Categories
//
//   - Collection timeouts: for one descriptor collection and each source in it
//   - Handler timeouts: for HTTP request processing
//   - Server timeouts: for HTTP server configuration
//   - ConfigMap timeouts: for Kubernetes output
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CollectionTimeout)
//	defer cancel()
//
// A collection always finishes inside CollectionTimeout; a source that does
// not answer within CollectorTimeout simply has no result.
package defaults
