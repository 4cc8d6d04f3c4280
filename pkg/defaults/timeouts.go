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

package defaults

import "time"

// Collection timeouts for data collection operations.
const (
	// CollectorTimeout is the default timeout for a single source.
	// Sources respect the parent context deadline when shorter.
	CollectorTimeout = 10 * time.Second

	// CollectionTimeout is the default deadline for a complete collection.
	CollectionTimeout = 30 * time.Second

	// CommandWaitDelay bounds how long a finished command may hold its
	// output pipes open.
	CommandWaitDelay = 500 * time.Millisecond
)

// Handler timeouts for HTTP request processing.
const (
	// DescriptorHandlerTimeout is the timeout for descriptor requests.
	DescriptorHandlerTimeout = 30 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// It must exceed DescriptorHandlerTimeout.
	ServerWriteTimeout = 45 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server limits.
const (
	// ServerRateLimit is the sustained request rate, per second.
	ServerRateLimit = 10

	// ServerRateBurst is the request burst allowed above the rate.
	ServerRateBurst = 20

	// ServerMaxHeaderBytes caps request header size.
	ServerMaxHeaderBytes = 1 << 20
)

// ConfigMap timeouts for Kubernetes ConfigMap operations.
const (
	// ConfigMapWriteTimeout is the timeout for writing to ConfigMaps.
	ConfigMapWriteTimeout = 30 * time.Second
)
