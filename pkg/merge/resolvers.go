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
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/hostinfo/pkg/descriptor"
	"github.com/NVIDIA/hostinfo/pkg/humanize"
	"github.com/NVIDIA/hostinfo/pkg/version"
)

// Resolver derives a string field from the results.
// The boolean reports whether the field was resolved.
type Resolver func(Results) (string, bool)

// ListResolver derives a list field from the results.
type ListResolver func(Results) ([]string, bool)

// First picks the first candidate whose source is present and carries the
// label. An empty value counts as a pick.
func First(cands ...Candidate) Resolver {
	return func(r Results) (string, bool) {
		for _, c := range cands {
			if v, ok := r.Lookup(c); ok {
				return v, true
			}
		}
		return "", false
	}
}

// FirstNonEmpty is First but skips candidates whose value is empty.
func FirstNonEmpty(cands ...Candidate) Resolver {
	return func(r Results) (string, bool) {
		for _, c := range cands {
			if v, ok := r.Lookup(c); ok && v != "" {
				return v, true
			}
		}
		return "", false
	}
}

// Or returns the result of the first resolver that resolves.
func Or(resolvers ...Resolver) Resolver {
	return func(r Results) (string, bool) {
		for _, res := range resolvers {
			if v, ok := res(r); ok {
				return v, true
			}
		}
		return "", false
	}
}

// Const always resolves to value.
func Const(value string) Resolver {
	return func(Results) (string, bool) {
		return value, true
	}
}

// BIOS joins vendor, version and release date as
// "<vendor> v<version> (<date>)". All three must be present.
func BIOS(vendor, ver, date Candidate) Resolver {
	return func(r Results) (string, bool) {
		v, ok1 := r.Lookup(vendor)
		n, ok2 := r.Lookup(ver)
		d, ok3 := r.Lookup(date)
		if !ok1 || !ok2 || !ok3 {
			return "", false
		}
		return fmt.Sprintf("%s v%s (%s)", v, n, d), true
	}
}

// Pair joins two labels as "<first> (<second>)". Both must be present.
func Pair(first, second Candidate) Resolver {
	return func(r Results) (string, bool) {
		a, ok1 := r.Lookup(first)
		b, ok2 := r.Lookup(second)
		if !ok1 || !ok2 {
			return "", false
		}
		return fmt.Sprintf("%s (%s)", strings.TrimSpace(a), b), true
	}
}

// Bytes parses the candidate as a number, multiplies it by scale and
// formats it with humanize.Bytes. Unparseable values do not resolve.
func Bytes(scale float64, c Candidate) Resolver {
	return func(r Results) (string, bool) {
		v, ok := r.Lookup(c)
		if !ok {
			return "", false
		}
		return humanize.ParseBytes(strings.TrimSpace(v), scale)
	}
}

var upper = cases.Upper(language.Und)

// Upper uppercases the value of res.
func Upper(res Resolver) Resolver {
	return func(r Results) (string, bool) {
		v, ok := res(r)
		if !ok {
			return "", false
		}
		return upper.String(v), true
	}
}

// Width derives the architecture display string from reported word sizes.
// The first candidate yielding a known width wins; otherwise the result is
// the unknown architecture. Width always resolves.
func Width(cands ...Candidate) Resolver {
	return func(r Results) (string, bool) {
		for _, c := range cands {
			v, ok := r.Lookup(c)
			if !ok {
				continue
			}
			if tag := descriptor.ArchitectureOf(v); tag != descriptor.ArchUnknown {
				return tag.String(), true
			}
		}
		return descriptor.ArchUnknown.String(), true
	}
}

// Edition classifies the candidate with version.FromString and looks it up
// with table.
func Edition(c Candidate, table func(version.Value) string) Resolver {
	return func(r Results) (string, bool) {
		v, ok := r.Lookup(c)
		if !ok {
			return "", false
		}
		return table(version.FromString(v)), true
	}
}

// Features concatenates the present candidates, splits on whitespace and
// uppercases each token. It resolves when at least one candidate is present.
func Features(cands ...Candidate) ListResolver {
	return func(r Results) ([]string, bool) {
		var (
			parts []string
			found bool
		)
		for _, c := range cands {
			if v, ok := r.Lookup(c); ok {
				parts = append(parts, v)
				found = true
			}
		}
		if !found {
			return nil, false
		}

		tokens := strings.Fields(strings.Join(parts, " "))
		out := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			out = append(out, strings.ToUpper(tok))
		}
		return out, true
	}
}

// OrList returns the result of the first list resolver that resolves.
func OrList(resolvers ...ListResolver) ListResolver {
	return func(r Results) ([]string, bool) {
		for _, res := range resolvers {
			if v, ok := res(r); ok {
				return v, true
			}
		}
		return nil, false
	}
}
