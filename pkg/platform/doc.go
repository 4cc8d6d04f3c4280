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

/*
Package platform selects the data sources and merge policies for an
operating system.

A Platform holds two Sets, one per descriptor. Each Set pairs the
collectors to run with the merge.Policy that turns their results into
descriptor fields. The tables are data: adding a source means adding a
collector and naming it in a candidate list.

The running platform is looked up once:

	p := platform.Current(platform.WithNative(true))
	hw := aggregator.Hardware(ctx, p.Hardware)

New builds the tables for any supported GOOS. Tests use it with an
executor.Static to drive another platform's tables deterministically.
*/
package platform
