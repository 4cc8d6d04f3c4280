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
	"testing"
)

func FuzzParseMap(f *testing.F) {
	f.Add("Key1: Value1\nKey2: Value2", ":")
	f.Add("NAME=\"Ubuntu\"\nVERSION_ID=24.04", "=")
	f.Add(":\n::\n\"\"", ":")
	f.Add("", "=")

	f.Fuzz(func(t *testing.T, text, delim string) {
		if delim == "" {
			t.Skip()
		}
		p := NewParser(WithKVDelimiter(delim))
		m := p.ParseMap(text)
		for label := range m {
			if label == "" {
				t.Fatalf("empty label in %v", m)
			}
		}
		again := p.ParseMap(text)
		if len(again) != len(m) {
			t.Fatalf("parse not idempotent: %v vs %v", m, again)
		}
	})
}

func BenchmarkParseMap(b *testing.B) {
	text := "Architecture: x86_64\nCPU op-mode(s): 32-bit, 64-bit\nCPU(s): 16\nVendor ID: GenuineIntel\n" +
		"Model name: Intel(R) Core(TM) i7\nFlags: fpu vme de pse tsc msr pae mce cx8 apic sep\n"
	p := NewParser()

	b.ReportAllocs()
	for b.Loop() {
		_ = p.ParseMap(text)
	}
}
