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

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not an unsigned integer")
)

// Kind discriminates the variants of Value.
type Kind int

const (
	// KindUnknown is a version that could not be determined.
	KindUnknown Kind = iota
	// KindSemantic is a major.minor.patch version.
	KindSemantic
	// KindRolling is a rolling release, optionally dated.
	KindRolling
	// KindCustom is an opaque version string.
	KindCustom
)

// Value is a tagged union over the version shapes reported by operating
// systems. Only the fields of the active Kind are meaningful.
type Value struct {
	Kind  Kind
	Major uint64
	Minor uint64
	Patch uint64
	// Date is the release date of a Rolling version; empty when unknown.
	Date string
	// Text is the verbatim string of a Custom version.
	Text string
}

// Unknown returns the Unknown version.
func Unknown() Value {
	return Value{Kind: KindUnknown}
}

// Semantic returns a Semantic version.
func Semantic(major, minor, patch uint64) Value {
	return Value{Kind: KindSemantic, Major: major, Minor: minor, Patch: patch}
}

// Rolling returns a Rolling version; date may be empty.
func Rolling(date string) Value {
	return Value{Kind: KindRolling, Date: date}
}

// Custom returns a Custom version holding s verbatim.
func Custom(s string) Value {
	return Value{Kind: KindCustom, Text: s}
}

// IsSemantic reports whether v is a Semantic version.
func (v Value) IsSemantic() bool {
	return v.Kind == KindSemantic
}

// String returns the display form of the version.
func (v Value) String() string {
	switch v.Kind {
	case KindSemantic:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	case KindRolling:
		if v.Date != "" {
			return fmt.Sprintf("Rolling Release (%s)", v.Date)
		}
		return "Rolling Release"
	case KindCustom:
		return v.Text
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler using the display form.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Parse parses a dotted numeric string of one to three unsigned integer
// components into a Semantic version. Missing minor and patch default to 0.
// A fourth component fails the whole parse. A single trailing dot is ignored.
//
// Failures are StructuredErrors with ErrCodeMalformedVersion wrapping one of
// the sentinel errors above.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, malformed(s, ErrEmptyVersion)
	}

	parts := strings.Split(strings.TrimSuffix(s, "."), ".")
	if len(parts) > 3 {
		return Value{}, malformed(s, ErrTooManyComponents)
	}

	var nums [3]uint64
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Value{}, malformed(s, fmt.Errorf("%w: %q", ErrNonNumeric, part))
		}
		nums[i] = n
	}

	return Semantic(nums[0], nums[1], nums[2]), nil
}

// MustParse parses s and panics on failure. Only use it for literals.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// FromString classifies s: the empty string is Unknown, a dotted numeric
// string is Semantic and anything else is Custom. It never fails.
func FromString(s string) Value {
	if s == "" {
		return Unknown()
	}
	if v, err := Parse(s); err == nil {
		return v
	}
	return Custom(s)
}

func malformed(input string, cause error) error {
	return herrors.WrapWithContext(herrors.ErrCodeMalformedVersion,
		"malformed version", cause, map[string]any{"input": input})
}
