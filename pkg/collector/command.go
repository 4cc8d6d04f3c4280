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

package collector

import (
	"context"
	"log/slog"
	"strings"

	"github.com/NVIDIA/hostinfo/pkg/executor"
	"github.com/NVIDIA/hostinfo/pkg/mapping"
	"github.com/NVIDIA/hostinfo/pkg/parser"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

// ParseFunc turns command output into a mapping.
type ParseFunc func(out string) mapping.Mapping

// ParseWith parses output with p.
func ParseWith(p *parser.Parser) ParseFunc {
	return p.ParseMap
}

// Whole stores the trimmed output under label.
func Whole(label string) ParseFunc {
	return func(out string) mapping.Mapping {
		return mapping.Of(label, strings.TrimSpace(out))
	}
}

// Extracted stores the value following extract in the output under label.
// When extract does not occur the mapping is empty.
func Extracted(label, extract string, cutset string) ParseFunc {
	return func(out string) mapping.Mapping {
		v, ok := parser.Extract(out, extract)
		if !ok {
			return mapping.New()
		}
		return mapping.Of(label, strings.Trim(v, cutset))
	}
}

// CommandOption configures a Command.
type CommandOption func(*Command)

// WithParse sets how the output is parsed. The default is a ":" mapping.
func WithParse(fn ParseFunc) CommandOption {
	return func(c *Command) {
		c.parse = fn
	}
}

// WithParser parses the output with p.
func WithParser(p *parser.Parser) CommandOption {
	return WithParse(ParseWith(p))
}

// WithUnavailable sets output markers meaning the source has no result,
// such as "command not found".
func WithUnavailable(markers ...string) CommandOption {
	return func(c *Command) {
		c.unavailable = append(c.unavailable, markers...)
	}
}

// WithTransform rewrites the raw output before parsing.
func WithTransform(fn func(string) string) CommandOption {
	return func(c *Command) {
		c.transform = fn
	}
}

// Strip returns a transform removing every occurrence of s.
func Strip(s string) func(string) string {
	return func(out string) string {
		return strings.ReplaceAll(out, s, "")
	}
}

// Command is a source backed by one external command.
type Command struct {
	id   string
	exec executor.Executor
	name string
	args []string

	parse       ParseFunc
	unavailable []string
	transform   func(string) string
}

// NewCommand returns a Command source id that runs name with args.
// Options come after the command line:
//
//	NewCommand(SourceMeminfo, exec, "grep", []string{"-i", "memtotal:", "/proc/meminfo"},
//	    WithUnavailable("No such file"))
func NewCommand(id string, exec executor.Executor, name string, args []string, opts ...CommandOption) *Command {
	c := &Command{
		id:    id,
		exec:  exec,
		name:  name,
		args:  args,
		parse: ParseWith(parser.NewParser()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements Collector.
func (c *Command) Name() string {
	return c.id
}

// CommandLine returns the command and its arguments joined by spaces.
func (c *Command) CommandLine() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}

// Collect runs the command and parses its output.
func (c *Command) Collect(ctx context.Context) (mapping.Mapping, error) {
	out, err := c.exec.Run(ctx, c.name, c.args...)
	if err != nil {
		return nil, err
	}

	for _, marker := range c.unavailable {
		if strings.Contains(out, marker) {
			return nil, herrors.NewWithContext(herrors.ErrCodeQueryUnavailable,
				"source reported unavailable", map[string]any{
					"source": c.id,
					"marker": marker,
				})
		}
	}

	if strings.TrimSpace(out) == "" {
		return nil, herrors.NewWithContext(herrors.ErrCodeQueryFailed,
			"command produced no output", map[string]any{"command": c.CommandLine()})
	}

	if c.transform != nil {
		out = c.transform(out)
	}

	m := c.parse(out)
	if m == nil {
		m = mapping.New()
	}

	slog.Debug("command source collected",
		slog.String("source", c.id),
		slog.Int("labels", m.Len()))

	return m, nil
}
