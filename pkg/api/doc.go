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

// Package api serves host descriptors over HTTP.
//
// Routes:
//
//	GET /v1/hardware  hardware descriptor
//	GET /v1/os        OS descriptor
//	GET /v1/system    both descriptors under a document header
//
// Every request performs a fresh collection bounded by the handler timeout.
// The response encoding defaults to JSON; ?format=yaml selects YAML.
//
//	curl -s "http://localhost:8080/v1/system?format=yaml"
//
// Health, readiness and metrics endpoints come from pkg/server.
package api
