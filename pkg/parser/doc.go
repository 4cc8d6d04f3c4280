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

// Package parser normalizes the textual output of system utilities and
// pseudo-files into mapping.Mapping tables.
//
// Two shapes are handled. Line-oriented "label<delim>value" text goes
// through Parser.ParseMap, which splits each line on the first delimiter
// and trims quotes, '=' and whitespace from both halves:
//
//	p := parser.NewParser(parser.WithKVDelimiter("="))
//	m := p.ParseMap(`PRETTY_NAME="Ubuntu 24.04 LTS"`)
//	// m["PRETTY_NAME"] == "Ubuntu 24.04 LTS"
//
// Prose-like output goes through Extract, which returns the word right
// after a label:
//
//	v, ok := parser.Extract("Microsoft Windows [Version 10.0.22631.2861]", "Version")
//
// Values containing the label delimiter keep everything after the first
// occurrence; there is no escaping.
package parser
