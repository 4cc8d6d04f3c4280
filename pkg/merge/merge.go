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

package merge

import (
	"log/slog"

	"github.com/NVIDIA/hostinfo/pkg/mapping"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

// Results holds the mappings of the sources that produced a result, keyed
// by source name. A source without a result is simply absent.
type Results map[string]mapping.Mapping

// Candidate addresses one label in one source's result.
type Candidate struct {
	Source string
	Label  string
}

// C is shorthand for Candidate{Source: source, Label: label}.
func C(source, label string) Candidate {
	return Candidate{Source: source, Label: label}
}

// Lookup returns the value of c when its source is present and carries
// the label. An empty value is a successful lookup.
func (r Results) Lookup(c Candidate) (string, bool) {
	m, ok := r[c.Source]
	if !ok {
		return "", false
	}
	return m.Get(c.Label)
}

// Rule resolves one string field.
type Rule struct {
	Field   string
	Resolve Resolver
}

// ListRule resolves one list field.
type ListRule struct {
	Field   string
	Resolve ListResolver
}

// Policy is the ordered rule table for one descriptor on one platform.
type Policy struct {
	Rules []Rule
	Lists []ListRule
}

// Fields returns the field names in rule order.
func (p Policy) Fields() []string {
	out := make([]string, 0, len(p.Rules)+len(p.Lists))
	for _, r := range p.Rules {
		out = append(out, r.Field)
	}
	for _, r := range p.Lists {
		out = append(out, r.Field)
	}
	return out
}

// Apply resolves every rule against r. Unresolved fields take their empty
// default. Apply never fails.
func (p Policy) Apply(r Results) Fields {
	f := Fields{
		values: make(map[string]string, len(p.Rules)),
		lists:  make(map[string][]string, len(p.Lists)),
	}

	for _, rule := range p.Rules {
		v, ok := rule.Resolve(r)
		if !ok {
			slog.Debug("field unresolved",
				slog.String("field", rule.Field),
				slog.String("code", string(herrors.ErrCodeParseMiss)))
			continue
		}
		f.values[rule.Field] = v
	}

	for _, rule := range p.Lists {
		v, ok := rule.Resolve(r)
		if !ok {
			slog.Debug("list field unresolved",
				slog.String("field", rule.Field),
				slog.String("code", string(herrors.ErrCodeParseMiss)))
			continue
		}
		f.lists[rule.Field] = v
	}

	return f
}

// Fields are the resolved values of a Policy.
type Fields struct {
	values map[string]string
	lists  map[string][]string
}

// Value returns the resolved string field, or "".
func (f Fields) Value(field string) string {
	return f.values[field]
}

// List returns the resolved list field, or an empty non-nil slice.
func (f Fields) List(field string) []string {
	if v, ok := f.lists[field]; ok && v != nil {
		return v
	}
	return []string{}
}

// Resolved reports whether field was resolved by a rule.
func (f Fields) Resolved(field string) bool {
	if _, ok := f.values[field]; ok {
		return true
	}
	_, ok := f.lists[field]
	return ok
}
