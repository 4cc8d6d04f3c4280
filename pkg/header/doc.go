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

// Package header provides the envelope header attached to hostinfo output.
//
// A Header carries the kind of document, its API version and a small set of
// metadata: the collection timestamp, the tool version, the run id and the
// platform the descriptors were collected on.
//
//	h := header.New(header.WithKind(header.KindSystem))
//	h.Init(header.KindSystem, header.APIVersion, "v1.0.0")
package header
