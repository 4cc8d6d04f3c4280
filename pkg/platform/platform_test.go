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

package platform_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/hostinfo/pkg/aggregator"
	"github.com/NVIDIA/hostinfo/pkg/descriptor"
	"github.com/NVIDIA/hostinfo/pkg/executor"
	"github.com/NVIDIA/hostinfo/pkg/platform"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

const (
	lscpuOut = `Architecture:                    x86_64
CPU op-mode(s):                  32-bit, 64-bit
Byte Order:                      Little Endian
CPU(s):                          8
Vendor ID:                       GenuineIntel
Model name:                      Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz
Thread(s) per core:              2
Core(s) per socket:              4
Flags:                           fpu vme de pse
`
	dmiSystemOut = "System Information\n\tManufacturer: Dell Inc.\n\tProduct Name: XPS 13 9370\n" +
		"\tVersion: Not Specified\n\tSerial Number: ABC1234\n\tUUID: 4c4c4544-0000\n"
	dmiBIOSOut = "BIOS Information\n\tVendor: Dell Inc.\n\tVersion: 1.21.0\n" +
		"\tRelease Date: 07/06/2022\n\tROM Size: 16 MB\n"
	hostnamectlOut = ` Static hostname: node-1
       Icon name: computer-laptop
Operating System: Ubuntu 22.04.4 LTS
          Kernel: Linux 5.15.0-91-generic
    Architecture: x86-64
`
	osReleaseOut = `NAME="Ubuntu"
VERSION="22.04.4 LTS (Jammy Jellyfish)"
ID=ubuntu
VERSION_ID="22.04"
VERSION_CODENAME=jammy
PRETTY_NAME="Ubuntu 22.04.4 LTS"
`
)

func build(t *testing.T, goos string, outputs map[string]string, opts ...platform.Option) *platform.Platform {
	t.Helper()
	opts = append([]platform.Option{
		platform.WithExecutor(executor.NewStatic(outputs)),
		platform.WithNative(false),
		platform.WithHostname(func() (string, error) { return "node-1", nil }),
		platform.WithLocalIP(func(context.Context) (string, error) { return "10.0.0.5", nil }),
	}, opts...)

	p, err := platform.New(goos, opts...)
	require.NoError(t, err)
	require.Equal(t, goos, p.Name)
	return p
}

func TestLinux(t *testing.T) {
	p := build(t, "linux", map[string]string{
		"lscpu":                           lscpuOut,
		"grep -i memtotal: /proc/meminfo": "MemTotal:       16318056 kB\n",
		"dmidecode -qt system":            dmiSystemOut,
		"dmidecode -qt bios":              dmiBIOSOut,
		"hostnamectl":                     hostnamectlOut,
		"cat /etc/os-release":             osReleaseOut,
		"getconf LONG_BIT":                "64\n",
	})

	ctx := context.Background()
	hw := aggregator.Hardware(ctx, p.Hardware)
	assert.Equal(t, descriptor.Hardware{
		Manufacturer: "Dell Inc.",
		Model:        "XPS 13 9370",
		SerialNumber: "ABC1234",
		BIOS:         "Dell Inc. v1.21.0 (07/06/2022)",
		Memory:       "16.32 GB",
		Processor:    "Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz",
		Architecture: "x86_64",
		Vendor:       "GenuineIntel",
		PhysicalCPUs: "4",
		LogicalCPUs:  "8",
		Features:     []string{"FPU", "VME", "DE", "PSE"},
	}, hw)

	osd := aggregator.OS(ctx, p.OS)
	assert.Equal(t, descriptor.OS{
		OS:           "Ubuntu",
		Kernel:       "Linux 5.15.0-91-generic",
		Edition:      "JAMMY",
		Version:      "22.04.4 LTS (Jammy Jellyfish)",
		Architecture: "64-bit",
		Hostname:     "node-1",
		IPAddress:    "10.0.0.5",
	}, osd)
}

func TestLinuxLshwFallback(t *testing.T) {
	noDMI := "# dmidecode 3.3\n# No SMBIOS nor DMI entry point found, sorry.\n"
	p := build(t, "linux", map[string]string{
		"dmidecode -qt system":  noDMI,
		"dmidecode -qt bios":    noDMI,
		"lshw -quiet -C system": "vm\n    description: Computer\n    product: KVM\n    serial: 42\n",
	})

	hw := aggregator.Hardware(context.Background(), p.Hardware)
	assert.Equal(t, "KVM", hw.Manufacturer)
	assert.Equal(t, "42", hw.SerialNumber)
	assert.Empty(t, hw.Model)
	assert.Empty(t, hw.BIOS)
	assert.Equal(t, []string{}, hw.Features)
}

func TestLinuxEditionFallsBackToPrettyName(t *testing.T) {
	p := build(t, "linux", map[string]string{
		"cat /etc/os-release": "NAME=\"Arch Linux\"\nPRETTY_NAME=\"Arch Linux\"\nVERSION_CODENAME=\nBUILD_ID=rolling\n",
		"getconf LONG_BIT":    "32\n",
	})

	osd := aggregator.OS(context.Background(), p.OS)
	assert.Equal(t, "Arch Linux", osd.OS)
	assert.Equal(t, "ARCH LINUX", osd.Edition)
	assert.Empty(t, osd.Version)
	assert.Empty(t, osd.Kernel)
	assert.Equal(t, "32-bit", osd.Architecture)
}

func TestLinuxNothingAvailable(t *testing.T) {
	p := build(t, "linux", map[string]string{},
		platform.WithHostname(func() (string, error) {
			return "", herrors.New(herrors.ErrCodeQueryUnavailable, "no hostname")
		}),
		platform.WithLocalIP(func(context.Context) (string, error) {
			return "", herrors.New(herrors.ErrCodeQueryUnavailable, "offline")
		}),
	)

	ctx := context.Background()
	assert.Equal(t, descriptor.NewHardware(), aggregator.Hardware(ctx, p.Hardware))
	assert.Equal(t, descriptor.OS{Architecture: "unknown architecture"}, aggregator.OS(ctx, p.OS))
}

func TestDarwin(t *testing.T) {
	p := build(t, "darwin", map[string]string{
		"system_profiler SPHardwareDataType": `Hardware:

    Hardware Overview:

      Model Name: MacBook Pro
      Model Identifier: MacBookPro16,1
      Processor Name: 8-Core Intel Core i9
      Memory: 16 GB
      System Firmware Version: 2020.41.1.0.0
      Serial Number (system): C02XXXXXXXXX
`,
		"sysctl machdep.cpu hw": `machdep.cpu.brand_string: Intel(R) Core(TM) i9-9880H CPU @ 2.30GHz
machdep.cpu.vendor: GenuineIntel
machdep.cpu.features: FPU VME
machdep.cpu.leaf7_features: RDWRFSGS
machdep.cpu.extfeatures: SYSCALL XD
hw.physicalcpu: 8
hw.logicalcpu: 16
`,
		"uname -m": "x86_64\n",
		"sw_vers":  "ProductName:\t\tmacOS\nProductVersion:\t\t14.4.1\nBuildVersion:\t\t23E224\n",
		"uname -r": "23.4.0\n",
		"getconf LONG_BIT": "64\n",
	})

	ctx := context.Background()
	hw := aggregator.Hardware(ctx, p.Hardware)
	assert.Equal(t, descriptor.Hardware{
		Manufacturer: "Apple",
		Model:        "MacBookPro16,1 (MacBook Pro)",
		SerialNumber: "C02XXXXXXXXX",
		BIOS:         "2020.41.1.0.0",
		Memory:       "16 GB",
		Processor:    "Intel(R) Core(TM) i9-9880H CPU @ 2.30GHz",
		Architecture: "x86_64",
		Vendor:       "GenuineIntel",
		PhysicalCPUs: "8",
		LogicalCPUs:  "16",
		Features:     []string{"FPU", "VME", "SYSCALL", "XD", "RDWRFSGS"},
	}, hw)

	osd := aggregator.OS(ctx, p.OS)
	assert.Equal(t, descriptor.OS{
		OS:           "macOS",
		Kernel:       "23.4.0",
		Edition:      "macOS Sonoma",
		Version:      "14.4.1",
		Architecture: "64-bit",
		Hostname:     "node-1",
		IPAddress:    "10.0.0.5",
	}, osd)
}

func TestDarwinUnknownRelease(t *testing.T) {
	p := build(t, "darwin", map[string]string{
		"sw_vers": "ProductName: macOS\nProductVersion: 99.0\n",
	})
	osd := aggregator.OS(context.Background(), p.OS)
	assert.Equal(t, "Unknown", osd.Edition)
}

func TestWindows(t *testing.T) {
	ps := "powershell -NoProfile -Command Get-CimInstance "
	p := build(t, "windows", map[string]string{
		ps + "Win32_BIOS | Format-List Caption,SerialNumber,ReleaseDate": "\r\n" +
			"Caption      : Hyper-V UEFI Release v4.1\r\n" +
			"SerialNumber : 1234-5678-9012\r\n" +
			"ReleaseDate  : 3/15/2023 12:00:00 AM\r\n\r\n",
		ps + "Win32_ComputerSystem | Format-List Manufacturer,Model,SystemType,NumberOfProcessors," +
			"NumberOfLogicalProcessors,TotalPhysicalMemory": "\r\n" +
			"Manufacturer              : Microsoft Corporation\r\n" +
			"Model                     : Virtual Machine\r\n" +
			"SystemType                : x64-based PC\r\n" +
			"NumberOfProcessors        : 1\r\n" +
			"NumberOfLogicalProcessors : 4\r\n" +
			"TotalPhysicalMemory       : 17179332608\r\n",
		ps + "Win32_Processor | Format-List Name,Manufacturer": "\r\n" +
			"Name         : Intel(R) Xeon(R) Platinum 8272CL CPU @ 2.60GHz\r\n" +
			"Manufacturer : GenuineIntel\r\n",
		"cmd /c ver": "\r\nMicrosoft Windows [Version 10.0.20348.2340]\r\n",
	})

	ctx := context.Background()
	hw := aggregator.Hardware(ctx, p.Hardware)
	assert.Equal(t, descriptor.Hardware{
		Manufacturer: "Microsoft Corporation",
		Model:        "Virtual Machine",
		SerialNumber: "1234-5678-9012",
		BIOS:         "Hyper-V UEFI Release v4.1 (3/15/2023 12:00:00 AM)",
		Memory:       "17.18 GB",
		Processor:    "Intel(R) Xeon(R) Platinum 8272CL CPU @ 2.60GHz",
		Architecture: "x64-based PC",
		Vendor:       "GenuineIntel",
		PhysicalCPUs: "1",
		LogicalCPUs:  "4",
		Features:     []string{},
	}, hw)

	osd := aggregator.OS(ctx, p.OS)
	assert.Equal(t, descriptor.OS{
		OS:           "Microsoft Windows",
		Kernel:       "20348",
		Version:      "10.0.20348",
		Architecture: "unknown architecture",
		Hostname:     "node-1",
		IPAddress:    "10.0.0.5",
	}, osd)
}

func TestDisabledSources(t *testing.T) {
	p := build(t, "linux", map[string]string{"lscpu": lscpuOut},
		platform.WithDisabled("lscpu", "network"))

	assert.Equal(t, []string{"meminfo", "dmidecode"}, p.Hardware.Sources())
	assert.Equal(t, []string{"hostnamectl", "os-release", "getconf", "hostname"}, p.OS.Sources())

	hw := aggregator.Hardware(context.Background(), p.Hardware)
	assert.Empty(t, hw.Processor)
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"darwin", "linux", "windows"}, platform.Supported())

	_, err := platform.New("plan9")
	assert.Equal(t, herrors.ErrCodeNotFound, herrors.CodeOf(err))
	var se *herrors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, platform.Supported(), se.Context["supported"])

	b, err := platform.Lookup("linux")
	require.NoError(t, err)
	assert.NotNil(t, b)
}

func TestCurrent(t *testing.T) {
	p := platform.Current(platform.WithNative(false), platform.WithExecutor(executor.NewStatic(nil)))
	require.NotNil(t, p)
	assert.NotEmpty(t, p.Name)
	assert.NotEmpty(t, p.OS.Collectors)
}

func TestGeneric(t *testing.T) {
	p := platform.NewGeneric(platform.WithNative(false),
		platform.WithHostname(func() (string, error) { return "box", nil }),
		platform.WithLocalIP(func(context.Context) (string, error) { return "192.0.2.1", nil }))

	assert.Equal(t, platform.Generic, p.Name)
	assert.Empty(t, p.Hardware.Collectors)

	osd := aggregator.OS(context.Background(), p.OS)
	assert.Equal(t, "box", osd.Hostname)
	assert.Equal(t, "192.0.2.1", osd.IPAddress)
	assert.Equal(t, "unknown architecture", osd.Architecture)
}
