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

	"github.com/NVIDIA/hostinfo/pkg/mapping"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

// Source ids. A source id names one slot in a platform table and is the
// key under which its result is merged.
const (
	SourceMeminfo        = "meminfo"
	SourceDmidecode      = "dmidecode"
	SourceLshw           = "lshw"
	SourceLscpu          = "lscpu"
	SourceSMBIOS         = "smbios"
	SourceDMI            = "dmi"
	SourceCPU            = "cpu"
	SourceMemory         = "memory"
	SourceUname          = "uname"
	SourceHostnamectl    = "hostnamectl"
	SourceOSRelease      = "os-release"
	SourceGetconf        = "getconf"
	SourceSystemd        = "systemd"
	SourceHostname       = "hostname"
	SourceNetwork        = "network"
	SourceSystemProfiler = "system_profiler"
	SourceSysctl         = "sysctl"
	SourceUnameM         = "uname-m"
	SourceSwVers         = "sw_vers"
	SourceUnameR         = "uname-r"
	SourceCimBIOS        = "win32_bios"
	SourceCimSystem      = "win32_computersystem"
	SourceCimProcessor   = "win32_processor"
	SourceWmiBIOS        = "wmi_bios"
	SourceWmiSystem      = "wmi_computersystem"
	SourceWmiProcessor   = "wmi_processor"
	SourceWinver         = "winver"
	SourceVer            = "ver"
	SourceBitness        = "bitness"
)

// Collector is one data source.
type Collector interface {
	// Name returns the source id.
	Name() string

	// Collect queries the source. A non-nil error means the source has
	// no result; a nil error always comes with a non-nil mapping.
	Collect(ctx context.Context) (mapping.Mapping, error)
}

// Func adapts a function to the Collector interface.
type Func struct {
	ID string
	Fn func(ctx context.Context) (mapping.Mapping, error)
}

// NewFunc returns a Func collector named id.
func NewFunc(id string, fn func(ctx context.Context) (mapping.Mapping, error)) *Func {
	return &Func{ID: id, Fn: fn}
}

// Name implements Collector.
func (f *Func) Name() string {
	return f.ID
}

// Collect implements Collector.
func (f *Func) Collect(ctx context.Context) (mapping.Mapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, herrors.Wrap(herrors.ErrCodeTimeout, "collection canceled", err)
	}
	m, err := f.Fn(ctx)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = mapping.New()
	}
	return m, nil
}
