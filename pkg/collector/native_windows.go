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

//go:build windows

package collector

import (
	"context"
	"runtime"
	"strconv"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/NVIDIA/hostinfo/pkg/mapping"
	"github.com/NVIDIA/hostinfo/pkg/version"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

const (
	currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

	verNTWorkstation = 0x1
	verSuiteWHServer = 0x8000
	smServerR2       = 89
)

var procGetSystemMetrics = windows.NewLazySystemDLL("user32.dll").NewProc("GetSystemMetrics")

// NativeHardware returns the native hardware sources for goos, or nil when
// goos is not the running operating system.
func NativeHardware(goos string) []Collector {
	if goos != runtime.GOOS {
		return nil
	}
	return []Collector{
		NewWMIBIOS(),
		NewWMIComputerSystem(),
		NewWMIProcessor(),
		NewCPU(),
		NewMemory(),
	}
}

// NativeOS returns the native OS sources for goos, or nil when goos is not
// the running operating system.
func NativeOS(goos string) []Collector {
	if goos != runtime.GOOS {
		return nil
	}
	return []Collector{NewWinver(), NewBitness(), NewHost()}
}

// NewWMIBIOS returns the "wmi_bios" source.
func NewWMIBIOS() *Func {
	return NewFunc(SourceWmiBIOS, func(ctx context.Context) (mapping.Mapping, error) {
		var dst []Win32_BIOS
		if err := queryWMI(ctx, "SELECT Caption, SerialNumber, ReleaseDate FROM Win32_BIOS", &dst); err != nil {
			return nil, err
		}
		if len(dst) == 0 {
			return nil, herrors.New(herrors.ErrCodeQueryFailed, "no Win32_BIOS instance")
		}
		return biosMapping(dst[0]), nil
	})
}

// NewWMIComputerSystem returns the "wmi_computersystem" source.
func NewWMIComputerSystem() *Func {
	return NewFunc(SourceWmiSystem, func(ctx context.Context) (mapping.Mapping, error) {
		var dst []Win32_ComputerSystem
		q := "SELECT Manufacturer, Model, SystemType, NumberOfProcessors, " +
			"NumberOfLogicalProcessors, TotalPhysicalMemory FROM Win32_ComputerSystem"
		if err := queryWMI(ctx, q, &dst); err != nil {
			return nil, err
		}
		if len(dst) == 0 {
			return nil, herrors.New(herrors.ErrCodeQueryFailed, "no Win32_ComputerSystem instance")
		}
		return computerSystemMapping(dst[0]), nil
	})
}

// NewWMIProcessor returns the "wmi_processor" source.
func NewWMIProcessor() *Func {
	return NewFunc(SourceWmiProcessor, func(ctx context.Context) (mapping.Mapping, error) {
		var dst []Win32_Processor
		if err := queryWMI(ctx, "SELECT Name, Manufacturer FROM Win32_Processor", &dst); err != nil {
			return nil, err
		}
		if len(dst) == 0 {
			return nil, herrors.New(herrors.ErrCodeQueryFailed, "no Win32_Processor instance")
		}
		return processorMapping(dst[0]), nil
	})
}

// queryWMI runs q and stops waiting when ctx is done. The query itself
// cannot be interrupted.
func queryWMI(ctx context.Context, q string, dst any) error {
	done := make(chan error, 1)
	go func() {
		done <- wmi.Query(q, dst)
	}()

	select {
	case err := <-done:
		if err != nil {
			return herrors.WrapWithContext(herrors.ErrCodeQueryFailed, "wmi query failed", err,
				map[string]any{"query": q})
		}
		return nil
	case <-ctx.Done():
		return herrors.Wrap(herrors.ErrCodeTimeout, "wmi query timed out", ctx.Err())
	}
}

// NewWinver returns the "winver" source built from RtlGetVersion and the
// registry ProductName.
func NewWinver() *Func {
	return NewFunc(SourceWinver, func(context.Context) (mapping.Mapping, error) {
		v := windows.RtlGetVersion()
		if v == nil {
			return nil, herrors.New(herrors.ErrCodeQueryUnavailable, "RtlGetVersion returned no data")
		}

		info := version.WindowsInfo{
			Major:       uint64(v.MajorVersion),
			Minor:       uint64(v.MinorVersion),
			Build:       uint64(v.BuildNumber),
			Workstation: v.ProductType == verNTWorkstation,
			HomeServer:  v.SuiteMask&verSuiteWHServer != 0,
			ServerR2:    serverR2(),
			AMD64:       runtime.GOARCH == "amd64",
		}

		return winverMapping(info, productName()), nil
	})
}

// NewBitness returns the "bitness" source.
func NewBitness() *Func {
	return NewFunc(SourceBitness, func(context.Context) (mapping.Mapping, error) {
		var wow64 bool
		if strconv.IntSize == 32 {
			if err := windows.IsWow64Process(windows.CurrentProcess(), &wow64); err != nil {
				wow64 = false
			}
		}
		return bitnessMapping(strconv.IntSize, wow64), nil
	})
}

func productName() string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()

	name, _, err := k.GetStringValue("ProductName")
	if err != nil {
		return ""
	}
	return name
}

func serverR2() bool {
	if err := procGetSystemMetrics.Find(); err != nil {
		return false
	}
	r, _, _ := procGetSystemMetrics.Call(uintptr(smServerR2))
	return r != 0
}
