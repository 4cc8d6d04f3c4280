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

package platform

import (
	"context"
	"log/slog"
	"maps"
	"runtime"
	"slices"
	"sync"

	"github.com/NVIDIA/hostinfo/pkg/collector"
	"github.com/NVIDIA/hostinfo/pkg/executor"
	"github.com/NVIDIA/hostinfo/pkg/host"
	"github.com/NVIDIA/hostinfo/pkg/merge"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

// Generic is the name of the fallback platform used when the running
// operating system has no dedicated tables.
const Generic = "generic"

// Set is the collector list and merge policy for one descriptor.
type Set struct {
	Collectors []collector.Collector
	Policy     merge.Policy
}

// Sources returns the collector names in submission order.
func (s Set) Sources() []string {
	out := make([]string, 0, len(s.Collectors))
	for _, c := range s.Collectors {
		out = append(out, c.Name())
	}
	return out
}

// Platform is the full source table for one operating system.
type Platform struct {
	Name     string
	Hardware Set
	OS       Set
}

// Options configure how a Platform is built.
type Options struct {
	goos     string
	exec     executor.Executor
	native   bool
	disabled []string
	hostname func() (string, error)
	localIP  func(context.Context) (string, error)
}

// Option is a functional option for New and Current.
type Option func(*Options)

// WithExecutor sets the executor used by command sources.
func WithExecutor(e executor.Executor) Option {
	return func(o *Options) {
		o.exec = e
	}
}

// WithNative enables or disables native sources. Native sources are only
// compiled in for the running operating system.
func WithNative(enabled bool) Option {
	return func(o *Options) {
		o.native = enabled
	}
}

// WithDisabled removes the named sources from both sets.
func WithDisabled(ids ...string) Option {
	return func(o *Options) {
		o.disabled = append(o.disabled, ids...)
	}
}

// WithHostname overrides the hostname lookup.
func WithHostname(fn func() (string, error)) Option {
	return func(o *Options) {
		o.hostname = fn
	}
}

// WithLocalIP overrides the local address lookup.
func WithLocalIP(fn func(context.Context) (string, error)) Option {
	return func(o *Options) {
		o.localIP = fn
	}
}

func newOptions(goos string, opts ...Option) *Options {
	o := &Options{
		goos:     goos,
		exec:     executor.New(),
		native:   true,
		hostname: host.Hostname,
		localIP:  host.LocalIP,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// nativeEnabled reports whether native sources apply to the platform
// being built.
func (o *Options) nativeEnabled() bool {
	return o.native && o.goos == runtime.GOOS
}

// Builder builds the tables of one platform.
type Builder func(o *Options) *Platform

var registry = map[string]Builder{
	"linux":   buildLinux,
	"darwin":  buildDarwin,
	"windows": buildWindows,
}

// Supported returns the registered platform names in sorted order.
func Supported() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Lookup returns the builder registered for goos.
func Lookup(goos string) (Builder, error) {
	b, ok := registry[goos]
	if !ok {
		return nil, herrors.NewWithContext(herrors.ErrCodeNotFound,
			"unsupported platform", map[string]any{"goos": goos, "supported": Supported()})
	}
	return b, nil
}

// New builds the tables for goos.
func New(goos string, opts ...Option) (*Platform, error) {
	b, err := Lookup(goos)
	if err != nil {
		return nil, err
	}
	return b(newOptions(goos, opts...)), nil
}

var detect = sync.OnceValues(func() (Builder, error) {
	return Lookup(runtime.GOOS)
})

// Current builds the tables for the running operating system. The builder
// is selected on first use. An unsupported system gets the generic tables.
func Current(opts ...Option) *Platform {
	b, err := detect()
	if err != nil {
		slog.Warn("no dedicated source tables, using generic",
			slog.String("goos", runtime.GOOS),
			slog.String("code", string(herrors.CodeOf(err))))
		return NewGeneric(opts...)
	}
	return b(newOptions(runtime.GOOS, opts...))
}

// NewGeneric builds the generic tables, which rely on native sources only.
func NewGeneric(opts ...Option) *Platform {
	return buildGeneric(newOptions(runtime.GOOS, opts...))
}

// set drops disabled sources and pairs the rest with policy.
func (o *Options) set(cs []collector.Collector, policy merge.Policy) Set {
	return Set{Collectors: o.filter(cs), Policy: policy}
}

func (o *Options) filter(cs []collector.Collector) []collector.Collector {
	if len(o.disabled) == 0 {
		return cs
	}
	return slices.DeleteFunc(cs, func(c collector.Collector) bool {
		return slices.Contains(o.disabled, c.Name())
	})
}

// hostSources are the host boundary sources every platform reports.
func hostSources(o *Options) []collector.Collector {
	return []collector.Collector{
		collector.NewHostname(o.hostname),
		collector.NewNetwork(o.localIP),
	}
}

// getconf reports the OS word size on Unix systems.
func getconf(o *Options) collector.Collector {
	return collector.NewCommand(collector.SourceGetconf, o.exec, "getconf", []string{"LONG_BIT"},
		collector.WithParse(collector.Whole("LONG_BIT")),
		collector.WithUnavailable("command not found"))
}
