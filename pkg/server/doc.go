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

// Package server provides the HTTP runtime for the hostinfo API.
//
// The server carries no domain logic. Callers register handlers by path and
// the server wraps each one in the standard middleware chain:
//
//   - metrics (hostinfo_http_* Prometheus series)
//   - API version negotiation (X-API-Version)
//   - request IDs (X-Request-Id, UUID validated)
//   - panic recovery
//   - token bucket rate limiting (golang.org/x/time/rate)
//   - debug request logging
//
// System endpoints skip the chain:
//
//	GET /        service name, version, readiness and routes
//	GET /health  liveness probe
//	GET /ready   readiness probe, 503 until the server is started
//	GET /metrics Prometheus exposition
//
// Usage:
//
//	s := server.New(
//	    server.WithName("hostinfo"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/hardware": h.HandleHardware,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until SIGINT or SIGTERM, or until ctx is canceled, and then
// drains in-flight requests for up to the configured shutdown timeout.
//
// Errors are written as a JSON envelope:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "details": {"limit": 10, "burst": 20},
//	  "requestId": "4b1c...",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": true
//	}
package server
