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

	"github.com/NVIDIA/hostinfo/pkg/mapping"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

// Fallback tries its sources in order and returns the first result.
type Fallback struct {
	id      string
	sources []Collector
}

// NewFallback returns a source named id backed by sources in priority order.
func NewFallback(id string, sources ...Collector) *Fallback {
	return &Fallback{id: id, sources: sources}
}

// Name implements Collector.
func (f *Fallback) Name() string {
	return f.id
}

// Collect implements Collector. The error of the last source tried is
// returned when none produced a result.
func (f *Fallback) Collect(ctx context.Context) (mapping.Mapping, error) {
	var lastErr error
	for _, s := range f.sources {
		if err := ctx.Err(); err != nil {
			return nil, herrors.Wrap(herrors.ErrCodeTimeout, "fallback canceled", err)
		}

		m, err := s.Collect(ctx)
		if err == nil {
			return m, nil
		}

		slog.Debug("fallback source without result",
			slog.String("source", f.id),
			slog.String("query", s.Name()),
			slog.String("error", err.Error()))
		lastErr = err
	}

	if lastErr == nil {
		lastErr = herrors.New(herrors.ErrCodeNotFound, "no sources configured")
	}
	return nil, lastErr
}

// Merge runs all of its sources and unions their results. Later sources
// win on label collisions.
type Merge struct {
	id      string
	sources []Collector
}

// NewMerge returns a source named id that unions sources.
func NewMerge(id string, sources ...Collector) *Merge {
	return &Merge{id: id, sources: sources}
}

// Name implements Collector.
func (m *Merge) Name() string {
	return m.id
}

// Collect implements Collector. It has a result when at least one source
// does.
func (m *Merge) Collect(ctx context.Context) (mapping.Mapping, error) {
	var (
		merged  mapping.Mapping
		lastErr error
	)
	for _, s := range m.sources {
		res, err := s.Collect(ctx)
		if err != nil {
			lastErr = err
			continue
		}
		merged = merged.Merge(res)
	}

	if merged == nil {
		if lastErr == nil {
			lastErr = herrors.New(herrors.ErrCodeNotFound, "no sources configured")
		}
		return nil, lastErr
	}
	return merged, nil
}
