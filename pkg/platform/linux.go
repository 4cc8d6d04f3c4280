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
	"github.com/NVIDIA/hostinfo/pkg/parser"
)

const (
	markerNoCommand = "command not found"
	markerNoDMI     = "No SMBIOS nor DMI entry point found"
	markerNoFile    = "No such file"
)

var (
	dmidecodePrefixes = []string{
		"Manufacturer:",
		"Product Name:",
		"Serial Number:",
		"Vendor:",
		"Version",
		"Release Date:",
	}
	lshwPrefixes = []string{"product", "serial"}
)

func buildLinux(o *Options) *Platform {
	return &Platform{
		Name:     "linux",
		Hardware: o.set(linuxHardwareSources(o), linuxHardwarePolicy),
		OS:       o.set(linuxOSSources(o), linuxOSPolicy),
	}
}

func linuxHardwareSources(o *Options) []collector.Collector {
	dmi := parser.NewParser(parser.WithLinePrefixes(dmidecodePrefixes...))
	lshw := parser.NewParser(parser.WithLinePrefixes(lshwPrefixes...))

	cs := []collector.Collector{
		collector.NewCommand(collector.SourceMeminfo, o.exec,
			"grep", []string{"-i", "memtotal:", "/proc/meminfo"},
			collector.WithTransform(collector.Strip(" kB")),
			collector.WithUnavailable(markerNoFile)),
		collector.NewFallback(collector.SourceDmidecode,
			collector.NewMerge(collector.SourceDmidecode,
				collector.NewCommand(collector.SourceDmidecode, o.exec, "dmidecode", []string{"-qt", "system"},
					collector.WithParser(dmi), collector.WithUnavailable(markerNoDMI, markerNoCommand)),
				collector.NewCommand(collector.SourceDmidecode, o.exec, "dmidecode", []string{"-qt", "bios"},
					collector.WithParser(dmi), collector.WithUnavailable(markerNoDMI, markerNoCommand)),
			),
			collector.NewCommand(collector.SourceLshw, o.exec, "lshw", []string{"-quiet", "-C", "system"},
				collector.WithParser(lshw), collector.WithUnavailable(markerNoCommand)),
		),
		collector.NewCommand(collector.SourceLscpu, o.exec, "lscpu", nil,
			collector.WithUnavailable(markerNoCommand)),
	}

	if o.nativeEnabled() {
		cs = append(cs, collector.NativeHardware(o.goos)...)
	}
	return cs
}

var linuxHardwarePolicy = merge.Policy{
	Rules: []merge.Rule{
		{Field: descriptor.FieldManufacturer, Resolve: merge.First(
			merge.C(collector.SourceDmidecode, "Manufacturer"),
			merge.C(collector.SourceDmidecode, "product"),
			merge.C(collector.SourceSMBIOS, "Manufacturer"),
			merge.C(collector.SourceDMI, "Manufacturer"),
		)},
		{Field: descriptor.FieldModel, Resolve: merge.First(
			merge.C(collector.SourceDmidecode, "Product Name"),
			merge.C(collector.SourceSMBIOS, "Product Name"),
			merge.C(collector.SourceDMI, "Product Name"),
		)},
		{Field: descriptor.FieldSerialNumber, Resolve: merge.First(
			merge.C(collector.SourceDmidecode, "Serial Number"),
			merge.C(collector.SourceDmidecode, "serial"),
			merge.C(collector.SourceSMBIOS, "Serial Number"),
			merge.C(collector.SourceDMI, "Serial Number"),
		)},
		{Field: descriptor.FieldBIOS, Resolve: merge.Or(
			biosOf(collector.SourceDmidecode),
			biosOf(collector.SourceSMBIOS),
			biosOf(collector.SourceDMI),
		)},
		{Field: descriptor.FieldMemory, Resolve: merge.Or(
			merge.Bytes(1000, merge.C(collector.SourceMeminfo, "MemTotal")),
			merge.Bytes(1, merge.C(collector.SourceMemory, "MemTotal")),
		)},
		{Field: descriptor.FieldProcessor, Resolve: merge.First(
			merge.C(collector.SourceLscpu, "Model name"),
			merge.C(collector.SourceCPU, "Model name"),
		)},
		{Field: descriptor.FieldArchitecture, Resolve: merge.First(
			merge.C(collector.SourceLscpu, "Architecture"),
			merge.C(collector.SourceUname, "machine"),
		)},
		{Field: descriptor.FieldVendor, Resolve: merge.First(
			merge.C(collector.SourceLscpu, "Vendor ID"),
			merge.C(collector.SourceCPU, "Vendor ID"),
		)},
		{Field: descriptor.FieldPhysicalCPUs, Resolve: merge.First(
			merge.C(collector.SourceLscpu, "Core(s) per socket"),
			merge.C(collector.SourceCPU, "Core(s)"),
		)},
		{Field: descriptor.FieldLogicalCPUs, Resolve: merge.First(
			merge.C(collector.SourceLscpu, "CPU(s)"),
			merge.C(collector.SourceCPU, "CPU(s)"),
		)},
	},
	Lists: []merge.ListRule{
		{Field: descriptor.FieldFeatures, Resolve: merge.OrList(
			merge.Features(merge.C(collector.SourceLscpu, "Flags")),
			merge.Features(merge.C(collector.SourceCPU, "Flags")),
		)},
	},
}

func biosOf(source string) merge.Resolver {
	return merge.BIOS(
		merge.C(source, "Vendor"),
		merge.C(source, "Version"),
		merge.C(source, "Release Date"),
	)
}

func linuxOSSources(o *Options) []collector.Collector {
	release := []collector.Collector{
		collector.NewCommand(collector.SourceOSRelease, o.exec, "cat", []string{"/etc/os-release"},
			collector.WithParser(parser.NewParser(
				parser.WithKVDelimiter("="),
				parser.WithSkipComments(true),
			)),
			collector.WithUnavailable(markerNoFile)),
	}
	if o.nativeEnabled() {
		release = append(release, collector.NewOSRelease())
	}

	cs := []collector.Collector{
		collector.NewCommand(collector.SourceHostnamectl, o.exec, "hostnamectl", nil,
			collector.WithUnavailable(markerNoCommand)),
		collector.NewFallback(collector.SourceOSRelease, release...),
		getconf(o),
	}
	cs = append(cs, hostSources(o)...)

	if o.nativeEnabled() {
		cs = append(cs, collector.NativeOS(o.goos)...)
	}
	return cs
}

var linuxOSPolicy = merge.Policy{
	Rules: []merge.Rule{
		{Field: descriptor.FieldOS, Resolve: merge.First(
			merge.C(collector.SourceOSRelease, "NAME"),
			merge.C(collector.SourceHostnamectl, "Operating System"),
			merge.C(collector.SourceHost, "platform"),
		)},
		{Field: descriptor.FieldKernel, Resolve: merge.First(
			merge.C(collector.SourceHostnamectl, "Kernel"),
			merge.C(collector.SourceUname, "release"),
			merge.C(collector.SourceHost, "kernelVersion"),
		)},
		{Field: descriptor.FieldEdition, Resolve: merge.Upper(merge.FirstNonEmpty(
			merge.C(collector.SourceOSRelease, "VERSION_CODENAME"),
			merge.C(collector.SourceOSRelease, "PRETTY_NAME"),
		))},
		{Field: descriptor.FieldVersion, Resolve: merge.First(
			merge.C(collector.SourceOSRelease, "VERSION"),
			merge.C(collector.SourceOSRelease, "VERSION_ID"),
			merge.C(collector.SourceHost, "platformVersion"),
		)},
		{Field: descriptor.FieldArchitecture, Resolve: merge.Width(
			merge.C(collector.SourceGetconf, "LONG_BIT"),
			merge.C(collector.SourceSystemd, "Architecture"),
			merge.C(collector.SourceHost, "kernelArch"),
		)},
		hostnameRule,
		ipRule,
	},
}

var (
	hostnameRule = merge.Rule{Field: descriptor.FieldHostname, Resolve: merge.First(
		merge.C(collector.SourceHostname, "hostname"),
		merge.C(collector.SourceHost, "hostname"),
	)}
	ipRule = merge.Rule{Field: descriptor.FieldIPAddress, Resolve: merge.First(
		merge.C(collector.SourceNetwork, "ip_address"),
	)}
)
