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
	"github.com/NVIDIA/hostinfo/pkg/version"
)

func buildDarwin(o *Options) *Platform {
	return &Platform{
		Name:     "darwin",
		Hardware: o.set(darwinHardwareSources(o), darwinHardwarePolicy),
		OS:       o.set(darwinOSSources(o), darwinOSPolicy),
	}
}

func darwinHardwareSources(o *Options) []collector.Collector {
	cs := []collector.Collector{
		collector.NewCommand(collector.SourceSystemProfiler, o.exec, "system_profiler", []string{"SPHardwareDataType"}),
		collector.NewCommand(collector.SourceSysctl, o.exec, "sysctl", []string{"machdep.cpu", "hw"}),
		collector.NewCommand(collector.SourceUnameM, o.exec, "uname", []string{"-m"},
			collector.WithParse(collector.Whole("arch"))),
	}
	if o.nativeEnabled() {
		cs = append(cs, collector.NativeHardware(o.goos)...)
	}
	return cs
}

var darwinHardwarePolicy = merge.Policy{
	Rules: []merge.Rule{
		{Field: descriptor.FieldManufacturer, Resolve: merge.Const("Apple")},
		{Field: descriptor.FieldModel, Resolve: merge.Pair(
			merge.C(collector.SourceSystemProfiler, "Model Identifier"),
			merge.C(collector.SourceSystemProfiler, "Model Name"),
		)},
		{Field: descriptor.FieldSerialNumber, Resolve: merge.First(
			merge.C(collector.SourceSystemProfiler, "Serial Number (system)"),
		)},
		{Field: descriptor.FieldBIOS, Resolve: merge.First(
			merge.C(collector.SourceSystemProfiler, "System Firmware Version"),
		)},
		{Field: descriptor.FieldMemory, Resolve: merge.Or(
			merge.First(merge.C(collector.SourceSystemProfiler, "Memory")),
			merge.Bytes(1, merge.C(collector.SourceMemory, "MemTotal")),
		)},
		{Field: descriptor.FieldProcessor, Resolve: merge.First(
			merge.C(collector.SourceSysctl, "machdep.cpu.brand_string"),
			merge.C(collector.SourceCPU, "Model name"),
		)},
		{Field: descriptor.FieldArchitecture, Resolve: merge.First(
			merge.C(collector.SourceUnameM, "arch"),
			merge.C(collector.SourceUname, "machine"),
		)},
		{Field: descriptor.FieldVendor, Resolve: merge.First(
			merge.C(collector.SourceSysctl, "machdep.cpu.vendor"),
			merge.C(collector.SourceCPU, "Vendor ID"),
		)},
		{Field: descriptor.FieldPhysicalCPUs, Resolve: merge.First(
			merge.C(collector.SourceSysctl, "hw.physicalcpu"),
			merge.C(collector.SourceCPU, "Core(s)"),
		)},
		{Field: descriptor.FieldLogicalCPUs, Resolve: merge.First(
			merge.C(collector.SourceSysctl, "hw.logicalcpu"),
			merge.C(collector.SourceCPU, "CPU(s)"),
		)},
	},
	Lists: []merge.ListRule{
		{Field: descriptor.FieldFeatures, Resolve: merge.OrList(
			merge.Features(
				merge.C(collector.SourceSysctl, "machdep.cpu.features"),
				merge.C(collector.SourceSysctl, "machdep.cpu.extfeatures"),
				merge.C(collector.SourceSysctl, "machdep.cpu.leaf7_features"),
			),
			merge.Features(merge.C(collector.SourceCPU, "Flags")),
		)},
	},
}

func darwinOSSources(o *Options) []collector.Collector {
	cs := []collector.Collector{
		collector.NewCommand(collector.SourceSwVers, o.exec, "sw_vers", nil),
		collector.NewCommand(collector.SourceUnameR, o.exec, "uname", []string{"-r"},
			collector.WithParse(collector.Whole("Kernel"))),
		getconf(o),
	}
	cs = append(cs, hostSources(o)...)

	if o.nativeEnabled() {
		cs = append(cs, collector.NativeOS(o.goos)...)
	}
	return cs
}

var darwinOSPolicy = merge.Policy{
	Rules: []merge.Rule{
		{Field: descriptor.FieldOS, Resolve: merge.First(
			merge.C(collector.SourceSwVers, "ProductName"),
		)},
		{Field: descriptor.FieldKernel, Resolve: merge.First(
			merge.C(collector.SourceUnameR, "Kernel"),
			merge.C(collector.SourceUname, "release"),
		)},
		{Field: descriptor.FieldEdition, Resolve: merge.Edition(
			merge.C(collector.SourceSwVers, "ProductVersion"),
			version.MacOSEdition,
		)},
		{Field: descriptor.FieldVersion, Resolve: merge.First(
			merge.C(collector.SourceSwVers, "ProductVersion"),
		)},
		{Field: descriptor.FieldArchitecture, Resolve: merge.Width(
			merge.C(collector.SourceGetconf, "LONG_BIT"),
			merge.C(collector.SourceHost, "kernelArch"),
		)},
		hostnameRule,
		ipRule,
	},
}
