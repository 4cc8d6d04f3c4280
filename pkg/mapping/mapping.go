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

// Package mapping defines the label to value table produced by parsing
// raw source output.
package mapping

import (
	"maps"
	"slices"
)

// Mapping is a label to value table. Labels are unique; order is irrelevant.
// A nil Mapping is valid and empty.
type Mapping map[string]string

// New returns an empty Mapping.
func New() Mapping {
	return make(Mapping)
}

// Of builds a Mapping from alternating label, value pairs.
// A trailing label without a value is ignored.
func Of(kv ...string) Mapping {
	m := make(Mapping, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return m
}

// Get returns the value for label and whether the label is present.
// A present label with an empty value reports true.
func (m Mapping) Get(label string) (string, bool) {
	v, ok := m[label]
	return v, ok
}

// Has reports whether label is present.
func (m Mapping) Has(label string) bool {
	_, ok := m[label]
	return ok
}

// Set stores value under label, replacing any previous value.
func (m Mapping) Set(label, value string) {
	m[label] = value
}

// Merge returns a new Mapping holding m's entries overlaid with other's.
// On a shared label other wins.
func (m Mapping) Merge(other Mapping) Mapping {
	out := make(Mapping, len(m)+len(other))
	maps.Copy(out, m)
	maps.Copy(out, other)
	return out
}

// Labels returns the labels in sorted order.
func (m Mapping) Labels() []string {
	return slices.Sorted(maps.Keys(m))
}

// Len returns the number of labels.
func (m Mapping) Len() int {
	return len(m)
}
