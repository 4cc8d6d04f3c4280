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
	"os"

	"github.com/NVIDIA/hostinfo/pkg/mapping"
	"github.com/NVIDIA/hostinfo/pkg/parser"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

var (
	filePathReleasePrimary  = "/etc/os-release"
	filePathReleaseFallback = "/usr/lib/os-release"
	fileKVDelRelease        = "="
)

// OSRelease reads the os-release file directly. It is the native stand-in
// for the "cat /etc/os-release" command source.
//
//	NAME="Ubuntu"
//	VERSION_ID="22.04"
//	VERSION_CODENAME=jammy
type OSRelease struct {
	Paths []string
}

// NewOSRelease returns a source reading /etc/os-release, falling back to
// /usr/lib/os-release per freedesktop.org.
func NewOSRelease() *OSRelease {
	return &OSRelease{Paths: []string{filePathReleasePrimary, filePathReleaseFallback}}
}

// Name implements Collector.
func (r *OSRelease) Name() string {
	return SourceOSRelease
}

// Collect implements Collector.
func (r *OSRelease) Collect(ctx context.Context) (mapping.Mapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeTimeout, "collection canceled", err)
	}

	p := parser.NewParser(
		parser.WithKVDelimiter(fileKVDelRelease),
		parser.WithSkipComments(true),
	)

	for _, path := range r.Paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		m, err := p.ReadMap(path)
		if err != nil {
			return nil, herrors.WrapWithContext(herrors.ErrCodeQueryFailed,
				"failed to read os release", err, map[string]any{"path": path})
		}
		return m, nil
	}

	return nil, herrors.NewWithContext(herrors.ErrCodeQueryUnavailable,
		"os release file not found", map[string]any{"paths": r.Paths})
}

// NewHostname returns the "hostname" source with the label "hostname".
func NewHostname(fn func() (string, error)) *Func {
	return NewFunc(SourceHostname, func(context.Context) (mapping.Mapping, error) {
		name, err := fn()
		if err != nil {
			return nil, err
		}
		return mapping.Of("hostname", name), nil
	})
}

// NewNetwork returns the "network" source with the label "ip_address".
func NewNetwork(fn func(context.Context) (string, error)) *Func {
	return NewFunc(SourceNetwork, func(ctx context.Context) (mapping.Mapping, error) {
		ip, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return mapping.Of("ip_address", ip), nil
	})
}
