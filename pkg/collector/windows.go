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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/hostinfo/pkg/humanize"
	"github.com/NVIDIA/hostinfo/pkg/mapping"
	"github.com/NVIDIA/hostinfo/pkg/version"
)

// Win32_BIOS is the WMI projection read by the wmi_bios source.
type Win32_BIOS struct { //nolint:revive // WMI class name
	Caption      string
	SerialNumber string
	ReleaseDate  time.Time
}

// Win32_ComputerSystem is the WMI projection read by the
// wmi_computersystem source.
type Win32_ComputerSystem struct { //nolint:revive // WMI class name
	Manufacturer              string
	Model                     string
	SystemType                string
	NumberOfProcessors        uint32
	NumberOfLogicalProcessors uint32
	TotalPhysicalMemory       uint64
}

// Win32_Processor is the WMI projection read by the wmi_processor source.
type Win32_Processor struct { //nolint:revive // WMI class name
	Name         string
	Manufacturer string
}

func biosMapping(b Win32_BIOS) mapping.Mapping {
	m := mapping.Of(
		"Caption", strings.TrimSpace(b.Caption),
		"SerialNumber", strings.TrimSpace(b.SerialNumber),
	)
	if d := humanize.Date(b.ReleaseDate); d != "" {
		m.Set("ReleaseDate", d)
	}
	return m
}

func computerSystemMapping(cs Win32_ComputerSystem) mapping.Mapping {
	return mapping.Of(
		"Manufacturer", strings.TrimSpace(cs.Manufacturer),
		"Model", strings.TrimSpace(cs.Model),
		"SystemType", cs.SystemType,
		"NumberOfProcessors", strconv.FormatUint(uint64(cs.NumberOfProcessors), 10),
		"NumberOfLogicalProcessors", strconv.FormatUint(uint64(cs.NumberOfLogicalProcessors), 10),
		"TotalPhysicalMemory", strconv.FormatUint(cs.TotalPhysicalMemory, 10),
	)
}

func processorMapping(p Win32_Processor) mapping.Mapping {
	return mapping.Of(
		"Name", strings.TrimSpace(p.Name),
		"Manufacturer", strings.TrimSpace(p.Manufacturer),
	)
}

// winverMapping builds the winver labels from the kernel version info and
// the registry product name.
func winverMapping(info version.WindowsInfo, productName string) mapping.Mapping {
	edition := version.WindowsProductName(productName, info.Build)
	if edition == "" {
		edition = version.WindowsEdition(info)
	}

	m := mapping.Of(
		"Version", fmt.Sprintf("%d.%d.%d", info.Major, info.Minor, info.Build),
		"Kernel", strconv.FormatUint(info.Build, 10),
	)
	if edition != "" {
		m.Set("Edition", edition)
	}
	if productName != "" {
		m.Set("ProductName", strings.TrimSpace(productName))
	}
	return m
}

// bitnessMapping reports the OS word size. A 32-bit process under WOW64
// runs on a 64-bit OS.
func bitnessMapping(intSize int, wow64 bool) mapping.Mapping {
	if intSize == 32 && wow64 {
		intSize = 64
	}
	return mapping.Of("LONG_BIT", strconv.Itoa(intSize))
}

// VerParse parses "cmd /c ver" output such as
// "Microsoft Windows [Version 10.0.19045.3570]" into Version and Kernel.
func VerParse(out string) mapping.Mapping {
	m := Extracted("Version", "Version", "[]")(out)
	v, ok := m.Get("Version")
	if !ok {
		return m
	}
	if parts := strings.Split(v, "."); len(parts) >= 3 {
		m.Set("Version", strings.Join(parts[:3], "."))
		m.Set("Kernel", parts[2])
	}
	return m
}
