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
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/NVIDIA/hostinfo/pkg/mapping"
)

// TrimChars are stripped from both ends of every label and value.
// Trimming '=' and '"' lets `KEY = "value"` and `KEY: value` normalize
// to the same pair regardless of the configured delimiter.
const TrimChars = " \t\r\n\"="

// Option configures a Parser.
type Option func(*Parser)

// Parser turns delimited key/value text into a Mapping.
type Parser struct {
	delimiter    string
	kvDelimiter  string
	maxSize      int
	skipComments bool
	prefixes     []string
}

// WithDelimiter sets the separator between entries.
// Default is newline ("\n").
func WithDelimiter(delim string) Option {
	return func(p *Parser) {
		p.delimiter = delim
	}
}

// WithKVDelimiter sets the separator between a label and its value.
// Default is ":".
func WithKVDelimiter(kvDelim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = kvDelim
	}
}

// WithMaxSize sets the maximum input size in bytes.
// Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments drops lines starting with '#'.
// Default is false.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithLinePrefixes keeps only lines that start with one of the prefixes
// after surrounding whitespace is removed.
func WithLinePrefixes(prefixes ...string) Option {
	return func(p *Parser) {
		p.prefixes = append(p.prefixes, prefixes...)
	}
}

// NewParser creates a new parser with the provided options.
// Default settings: newline entry delimiter, ":" label delimiter, 1MB max size.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		delimiter:   "\n",
		kvDelimiter: ":",
		maxSize:     1 << 20,
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseMap splits text into entries and each entry on the first label
// delimiter. Entries without the delimiter are dropped and a repeated
// label keeps the last value.
func (p *Parser) ParseMap(text string) mapping.Mapping {
	result := mapping.New()
	for _, line := range p.ParseLines(text) {
		label, value, found := strings.Cut(line, p.kvDelimiter)
		if !found {
			continue
		}

		label = strings.Trim(label, TrimChars)
		if label == "" {
			slog.Debug("skipping entry with empty label", "line", line)
			continue
		}

		result[label] = strings.Trim(value, TrimChars)
	}
	return result
}

// ParseLines splits text on the entry delimiter and returns the non-empty,
// whitespace-trimmed entries that pass the comment and prefix filters.
func (p *Parser) ParseLines(text string) []string {
	parts := strings.Split(text, p.delimiter)

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" {
			continue
		}

		if p.skipComments && strings.HasPrefix(clean, "#") {
			continue
		}

		if len(p.prefixes) > 0 && !hasAnyPrefix(clean, p.prefixes) {
			continue
		}

		result = append(result, clean)
	}
	return result
}

// ReadMap reads the file at path and parses it with ParseMap.
func (p *Parser) ReadMap(path string) (mapping.Mapping, error) {
	text, err := p.read(path)
	if err != nil {
		return nil, err
	}
	return p.ParseMap(text), nil
}

// ReadLines reads the file at path and splits it with ParseLines.
func (p *Parser) ReadLines(path string) ([]string, error) {
	text, err := p.read(path)
	if err != nil {
		return nil, err
	}
	return p.ParseLines(text), nil
}

func (p *Parser) read(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", path, err)
	}

	if len(b) > p.maxSize {
		return "", fmt.Errorf("file %q exceeds maximum size of %d bytes", path, p.maxSize)
	}

	if !utf8.Valid(b) {
		return "", fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	return string(b), nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// ParseKV parses text with the given label delimiter and default settings.
func ParseKV(text string, delim string) mapping.Mapping {
	return NewParser(WithKVDelimiter(delim)).ParseMap(text)
}
