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

/*
Package collector provides the data sources behind the hardware and OS
descriptors.

Every source implements Collector. A source either produces a label/value
Mapping or reports an error; the caller treats an error as "no result" and
never fails the collection because of it.

# Kinds of sources

Command sources run a system utility through an executor.Executor and parse
its output with a parser.Parser:

	c := collector.NewCommand(collector.SourceLscpu, exec, "lscpu")
	m, err := c.Collect(ctx)

Native sources read the same facts through Go libraries instead of child
processes: gopsutil for CPU and memory, go-smbios and ghw for the DMI tables
on Linux, go-systemd over D-Bus, x/sys for uname and the Windows version API,
and WMI on Windows. NativeHardware and NativeOS return the native sources
compiled in for the running operating system.

# Combinators

Fallback returns the first source that produces a result; Merge unions the
results of several queries into one mapping. Both keep the Collector
contract, so a platform table can treat a composite like any other source.
*/
package collector
