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

func buildGeneric(o *Options) *Platform {
	hw := []collector.Collector{}
	osSources := hostSources(o)
	if o.nativeEnabled() {
		hw = append(hw, collector.NativeHardware(o.goos)...)
		hw = append(hw, collector.NewHost())
		osSources = append(osSources, collector.NativeOS(o.goos)...)
	}

	return &Platform{
		Name:     Generic,
		Hardware: o.set(hw, genericHardwarePolicy),
		OS:       o.set(osSources, genericOSPolicy),
	}
}

var genericHardwarePolicy = merge.Policy{
	Rules: []merge.Rule{
		{Field: descriptor.FieldMemory, Resolve: merge.Bytes(1, merge.C(collector.SourceMemory, "MemTotal"))},
		{Field: descriptor.FieldProcessor, Resolve: merge.First(merge.C(collector.SourceCPU, "Model name"))},
		{Field: descriptor.FieldArchitecture, Resolve: merge.First(
			merge.C(collector.SourceUname, "machine"),
			merge.C(collector.SourceHost, "kernelArch"),
		)},
		{Field: descriptor.FieldVendor, Resolve: merge.First(merge.C(collector.SourceCPU, "Vendor ID"))},
		{Field: descriptor.FieldPhysicalCPUs, Resolve: merge.First(merge.C(collector.SourceCPU, "Core(s)"))},
		{Field: descriptor.FieldLogicalCPUs, Resolve: merge.First(merge.C(collector.SourceCPU, "CPU(s)"))},
	},
	Lists: []merge.ListRule{
		{Field: descriptor.FieldFeatures, Resolve: merge.Features(merge.C(collector.SourceCPU, "Flags"))},
	},
}

var genericOSPolicy = merge.Policy{
	Rules: []merge.Rule{
		{Field: descriptor.FieldOS, Resolve: merge.First(merge.C(collector.SourceHost, "platform"))},
		{Field: descriptor.FieldKernel, Resolve: merge.First(merge.C(collector.SourceHost, "kernelVersion"))},
		{Field: descriptor.FieldVersion, Resolve: merge.First(merge.C(collector.SourceHost, "platformVersion"))},
		{Field: descriptor.FieldArchitecture, Resolve: merge.Width(merge.C(collector.SourceHost, "kernelArch"))},
		hostnameRule,
		ipRule,
	},
}
