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

package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/hostinfo/pkg/collector"
	"github.com/NVIDIA/hostinfo/pkg/defaults"
	"github.com/NVIDIA/hostinfo/pkg/descriptor"
	"github.com/NVIDIA/hostinfo/pkg/header"
	"github.com/NVIDIA/hostinfo/pkg/mapping"
	"github.com/NVIDIA/hostinfo/pkg/merge"
	"github.com/NVIDIA/hostinfo/pkg/platform"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

const (
	descriptorHardware = "hardware"
	descriptorOS       = "os"
)

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithCollectorTimeout sets the deadline for each source. Non-positive
// values keep the default.
func WithCollectorTimeout(d time.Duration) Option {
	return func(a *Aggregator) {
		if d > 0 {
			a.collectorTimeout = d
		}
	}
}

// WithVersion sets the tool version recorded in document headers.
func WithVersion(v string) Option {
	return func(a *Aggregator) {
		a.version = v
	}
}

// Aggregator fans out to sources and merges their results.
type Aggregator struct {
	collectorTimeout time.Duration
	version          string
}

// New returns an Aggregator with the options applied.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{collectorTimeout: defaults.CollectorTimeout}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Hardware collects the hardware descriptor with default settings.
func Hardware(ctx context.Context, set platform.Set) descriptor.Hardware {
	return New().Hardware(ctx, set)
}

// OS collects the OS descriptor with default settings.
func OS(ctx context.Context, set platform.Set) descriptor.OS {
	return New().OS(ctx, set)
}

// Hardware collects the hardware descriptor.
func (a *Aggregator) Hardware(ctx context.Context, set platform.Set) descriptor.Hardware {
	return descriptor.HardwareFrom(a.Resolve(ctx, descriptorHardware, set))
}

// OS collects the OS descriptor.
func (a *Aggregator) OS(ctx context.Context, set platform.Set) descriptor.OS {
	return descriptor.OSFrom(a.Resolve(ctx, descriptorOS, set))
}

// System collects both descriptors concurrently into a System document.
func (a *Aggregator) System(ctx context.Context, p *platform.Platform) *descriptor.System {
	sys := &descriptor.System{}
	sys.Init(header.KindSystem, header.APIVersion, a.version)
	sys.Metadata[header.MetadataPlatform] = p.Name

	var g errgroup.Group
	g.Go(func() error {
		sys.Hardware = a.Hardware(ctx, p.Hardware)
		return nil
	})
	g.Go(func() error {
		sys.OS = a.OS(ctx, p.OS)
		return nil
	})
	_ = g.Wait()

	return sys
}

// Resolve runs the set's sources and applies its policy. name labels the
// metrics and logs.
func (a *Aggregator) Resolve(ctx context.Context, name string, set platform.Set) merge.Fields {
	start := time.Now()
	defer func() {
		collectionDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	results := a.Collect(ctx, set.Collectors)
	sourcesPresent.WithLabelValues(name).Set(float64(len(results)))

	slog.Debug("collection complete",
		slog.String("descriptor", name),
		slog.Int("sources", len(set.Collectors)),
		slog.Int("present", len(results)))

	return set.Policy.Apply(results)
}

// Collect runs every source concurrently and returns the results keyed by
// source name. When two sources share a name, the earlier one wins on
// label collisions.
func (a *Aggregator) Collect(ctx context.Context, cs []collector.Collector) merge.Results {
	// Group goroutines always return nil so one source never cancels
	// another; gctx only carries the parent deadline.
	g, gctx := errgroup.WithContext(ctx)

	slots := make([]mapping.Mapping, len(cs))
	for i, c := range cs {
		g.Go(func() error {
			slots[i] = a.run(gctx, c)
			return nil
		})
	}
	_ = g.Wait()

	results := make(merge.Results, len(cs))
	for i, c := range cs {
		m := slots[i]
		if m == nil {
			continue
		}
		if prev, ok := results[c.Name()]; ok {
			m = m.Merge(prev)
		}
		results[c.Name()] = m
	}
	return results
}

type outcome struct {
	m        mapping.Mapping
	err      error
	panicked bool
}

// run collects one source under its own deadline. It returns nil when the
// source has no result.
func (a *Aggregator) run(ctx context.Context, c collector.Collector) mapping.Mapping {
	name := c.Name()
	start := time.Now()
	defer func() {
		collectorDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	cctx, cancel := context.WithTimeout(ctx, a.collectorTimeout)
	defer cancel()

	// Buffered so an abandoned source can still deliver and exit.
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{panicked: true, err: herrors.NewWithContext(herrors.ErrCodeInternal,
					"source panicked", map[string]any{"panic": fmt.Sprint(r)})}
			}
		}()
		m, err := c.Collect(cctx)
		done <- outcome{m: m, err: err}
	}()

	select {
	case o := <-done:
		if o.panicked {
			collectorResults.WithLabelValues(name, resultPanic).Inc()
			slog.Warn("source panicked", slog.String("collector", name), slog.String("error", o.err.Error()))
			return nil
		}
		if o.err != nil {
			a.absent(name, o.err)
			return nil
		}
		if o.m == nil {
			o.m = mapping.New()
		}
		collectorResults.WithLabelValues(name, resultPresent).Inc()
		return o.m
	case <-cctx.Done():
		collectorResults.WithLabelValues(name, resultTimeout).Inc()
		collectorErrors.WithLabelValues(name, string(herrors.ErrCodeTimeout)).Inc()
		slog.Debug("source timed out",
			slog.String("collector", name),
			slog.Duration("timeout", a.collectorTimeout))
		return nil
	}
}

func (a *Aggregator) absent(name string, err error) {
	code := herrors.CodeOf(err)
	result := resultAbsent
	if code == herrors.ErrCodeTimeout {
		result = resultTimeout
	}
	collectorResults.WithLabelValues(name, result).Inc()
	collectorErrors.WithLabelValues(name, string(code)).Inc()
	slog.Debug("source without result",
		slog.String("collector", name),
		slog.String("code", string(code)),
		slog.String("error", err.Error()))
}
