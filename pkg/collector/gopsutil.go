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
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	gohost "github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/NVIDIA/hostinfo/pkg/mapping"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

// SourceHost is the gopsutil host summary.
const SourceHost = "host"

// NewCPU returns the "cpu" source. Its labels follow lscpu so the same
// candidates resolve against either: Model name, Vendor ID, Flags,
// Core(s) and CPU(s).
func NewCPU() *Func {
	return NewFunc(SourceCPU, collectCPU)
}

func collectCPU(ctx context.Context) (mapping.Mapping, error) {
	m := mapping.New()

	infos, err := cpu.InfoWithContext(ctx)
	if err == nil && len(infos) > 0 {
		info := infos[0]
		if info.ModelName != "" {
			m.Set("Model name", strings.TrimSpace(info.ModelName))
		}
		if info.VendorID != "" {
			m.Set("Vendor ID", info.VendorID)
		}
		if len(info.Flags) > 0 {
			m.Set("Flags", strings.Join(info.Flags, " "))
		}
	}

	if n, cerr := cpu.CountsWithContext(ctx, false); cerr == nil && n > 0 {
		m.Set("Core(s)", strconv.Itoa(n))
	}
	if n, cerr := cpu.CountsWithContext(ctx, true); cerr == nil && n > 0 {
		m.Set("CPU(s)", strconv.Itoa(n))
	}

	if m.Len() == 0 {
		if err == nil {
			err = herrors.New(herrors.ErrCodeQueryFailed, "no cpu information")
		}
		return nil, herrors.Wrap(herrors.ErrCodeQueryUnavailable, "failed to read cpu information", err)
	}
	return m, nil
}

// NewMemory returns the "memory" source with MemTotal in bytes.
func NewMemory() *Func {
	return NewFunc(SourceMemory, func(ctx context.Context) (mapping.Mapping, error) {
		vm, err := mem.VirtualMemoryWithContext(ctx)
		if err != nil {
			return nil, herrors.Wrap(herrors.ErrCodeQueryUnavailable, "failed to read memory information", err)
		}
		return mapping.Of("MemTotal", strconv.FormatUint(vm.Total, 10)), nil
	})
}

// NewHost returns the gopsutil host summary source with the labels
// platform, platformVersion, kernelVersion, kernelArch and hostname.
func NewHost() *Func {
	return NewFunc(SourceHost, func(ctx context.Context) (mapping.Mapping, error) {
		info, err := gohost.InfoWithContext(ctx)
		if err != nil {
			return nil, herrors.Wrap(herrors.ErrCodeQueryUnavailable, "failed to read host information", err)
		}

		m := mapping.New()
		set := func(label, value string) {
			if value != "" {
				m.Set(label, value)
			}
		}
		set("platform", info.Platform)
		set("platformVersion", info.PlatformVersion)
		set("kernelVersion", info.KernelVersion)
		set("kernelArch", info.KernelArch)
		set("hostname", info.Hostname)
		set("virtualization", info.VirtualizationSystem)
		return m, nil
	})
}
