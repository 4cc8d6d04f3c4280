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

package parser

import (
	"strings"
	"unicode"
)

const tokenTrimChars = " =\""

// Extract returns the first word following the first occurrence of label in
// text. An empty label returns the whole trimmed text. The word ends at the
// next whitespace and is trimmed of spaces, '=' and '"'.
func Extract(text, label string) (string, bool) {
	if label == "" {
		return strings.TrimSpace(text), true
	}

	idx := strings.Index(text, label)
	if idx < 0 {
		return "", false
	}

	rest := strings.TrimLeftFunc(text[idx+len(label):], unicode.IsSpace)
	if end := strings.IndexFunc(rest, unicode.IsSpace); end >= 0 {
		rest = rest[:end]
	}
	return strings.Trim(rest, tokenTrimChars), true
}
