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
Package aggregator runs a platform's sources concurrently and merges their
results into descriptors.

Each source runs in its own goroutine under an errgroup with its own
deadline. A source that errors, panics or times out leaves its slot empty
and never cancels its siblings; the merge policy then falls back to the
next candidate. Collection therefore never fails:

	agg := aggregator.New(
	    aggregator.WithCollectorTimeout(5*time.Second),
	    aggregator.WithVersion(version),
	)
	sys := agg.System(ctx, platform.Current())

Results are joined in submission order. A source that overruns its
deadline is abandoned: its goroutine may still finish later, but its
result is discarded.
*/
package aggregator
