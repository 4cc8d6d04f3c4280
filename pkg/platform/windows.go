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
	"github.com/NVIDIA/hostinfo/pkg/collector"
	"github.com/NVIDIA/hostinfo/pkg/descriptor"
	"github.com/NVIDIA/hostinfo/pkg/merge"
)

// windowsOS is the fixed OS name reported on Windows.
const windowsOS = "Microsoft Windows"

func buildWindows(o *Options) *Platform {
	return &Platform{
		Name:     "windows",
		Hardware: o.set(windowsHardwareSources(o), windowsHardwarePolicy),
		OS:       o.set(windowsOSSources(o), windowsOSPolicy),
	}
}

// cim queries one CIM class through PowerShell and lists props.
func cim(o *Options, id, class, props string) collector.Collector {
	return collector.NewCommand(id, o.exec, "powershell",
		[]string{"-NoProfile", "-Command", "Get-CimInstance " + class + " | Format-List " + props},
		collector.WithUnavailable("is not recognized"))
}

func windowsHardwareSources(o *Options) []collector.Collector {
	cs := []collector.Collector{
		cim(o, collector.SourceCimBIOS, "Win32_BIOS", "Caption,SerialNumber,ReleaseDate"),
		cim(o, collector.SourceCimSystem, "Win32_ComputerSystem",
			"Manufacturer,Model,SystemType,NumberOfProcessors,NumberOfLogicalProcessors,TotalPhysicalMemory"),
		cim(o, collector.SourceCimProcessor, "Win32_Processor", "Name,Manufacturer"),
	}
	if o.nativeEnabled() {
		cs = append(cs, collector.NativeHardware(o.goos)...)
	}
	return cs
}

// cimOrWMI resolves label from the command source, then the native one.
func cimOrWMI(cimSource, wmiSource, label string) merge.Resolver {
	return merge.First(merge.C(cimSource, label), merge.C(wmiSource, label))
}

var windowsHardwarePolicy = merge.Policy{
	Rules: []merge.Rule{
		{Field: descriptor.FieldManufacturer, Resolve: cimOrWMI(collector.SourceCimSystem, collector.SourceWmiSystem, "Manufacturer")},
		{Field: descriptor.FieldModel, Resolve: cimOrWMI(collector.SourceCimSystem, collector.SourceWmiSystem, "Model")},
		{Field: descriptor.FieldSerialNumber, Resolve: cimOrWMI(collector.SourceCimBIOS, collector.SourceWmiBIOS, "SerialNumber")},
		{Field: descriptor.FieldBIOS, Resolve: merge.Or(
			merge.Pair(merge.C(collector.SourceCimBIOS, "Caption"), merge.C(collector.SourceCimBIOS, "ReleaseDate")),
			merge.Pair(merge.C(collector.SourceWmiBIOS, "Caption"), merge.C(collector.SourceWmiBIOS, "ReleaseDate")),
		)},
		{Field: descriptor.FieldMemory, Resolve: merge.Or(
			merge.Bytes(1, merge.C(collector.SourceCimSystem, "TotalPhysicalMemory")),
			merge.Bytes(1, merge.C(collector.SourceWmiSystem, "TotalPhysicalMemory")),
			merge.Bytes(1, merge.C(collector.SourceMemory, "MemTotal")),
		)},
		{Field: descriptor.FieldProcessor, Resolve: merge.Or(
			cimOrWMI(collector.SourceCimProcessor, collector.SourceWmiProcessor, "Name"),
			merge.First(merge.C(collector.SourceCPU, "Model name")),
		)},
		{Field: descriptor.FieldArchitecture, Resolve: cimOrWMI(collector.SourceCimSystem, collector.SourceWmiSystem, "SystemType")},
		{Field: descriptor.FieldVendor, Resolve: merge.Or(
			cimOrWMI(collector.SourceCimProcessor, collector.SourceWmiProcessor, "Manufacturer"),
			merge.First(merge.C(collector.SourceCPU, "Vendor ID")),
		)},
		{Field: descriptor.FieldPhysicalCPUs, Resolve: cimOrWMI(collector.SourceCimSystem, collector.SourceWmiSystem, "NumberOfProcessors")},
		{Field: descriptor.FieldLogicalCPUs, Resolve: merge.Or(
			cimOrWMI(collector.SourceCimSystem, collector.SourceWmiSystem, "NumberOfLogicalProcessors"),
			merge.First(merge.C(collector.SourceCPU, "CPU(s)")),
		)},
	},
	Lists: []merge.ListRule{
		{Field: descriptor.FieldFeatures, Resolve: merge.Features(merge.C(collector.SourceCPU, "Flags"))},
	},
}

func windowsOSSources(o *Options) []collector.Collector {
	cs := []collector.Collector{
		collector.NewCommand(collector.SourceVer, o.exec, "cmd", []string{"/c", "ver"},
			collector.WithParse(collector.VerParse)),
	}
	cs = append(cs, hostSources(o)...)

	if o.nativeEnabled() {
		cs = append(cs, collector.NativeOS(o.goos)...)
	}
	return cs
}

var windowsOSPolicy = merge.Policy{
	Rules: []merge.Rule{
		{Field: descriptor.FieldOS, Resolve: merge.Const(windowsOS)},
		{Field: descriptor.FieldKernel, Resolve: merge.First(
			merge.C(collector.SourceWinver, "Kernel"),
			merge.C(collector.SourceVer, "Kernel"),
		)},
		{Field: descriptor.FieldEdition, Resolve: merge.First(
			merge.C(collector.SourceWinver, "Edition"),
		)},
		{Field: descriptor.FieldVersion, Resolve: merge.First(
			merge.C(collector.SourceWinver, "Version"),
			merge.C(collector.SourceVer, "Version"),
		)},
		{Field: descriptor.FieldArchitecture, Resolve: merge.Width(
			merge.C(collector.SourceBitness, "LONG_BIT"),
			merge.C(collector.SourceHost, "kernelArch"),
		)},
		hostnameRule,
		ipRule,
	},
}
