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

package version

import "strings"

// UnknownEdition is returned for semantic versions missing from a table.
const UnknownEdition = "Unknown"

// WindowsBuild11 is the first build number shipped as Windows 11.
const WindowsBuild11 = 22000

type macRelease struct {
	major, minor uint64
	anyMinor     bool
	name         string
}

var macOSReleases = []macRelease{
	{major: 15, anyMinor: true, name: "macOS Sequoia"},
	{major: 14, anyMinor: true, name: "macOS Sonoma"},
	{major: 13, anyMinor: true, name: "macOS Ventura"},
	{major: 12, anyMinor: true, name: "macOS Monterey"},
	{major: 11, anyMinor: true, name: "macOS Big Sur"},
	{major: 10, minor: 15, name: "macOS Catalina"},
	{major: 10, minor: 14, name: "macOS Mojave"},
	{major: 10, minor: 13, name: "macOS High Sierra"},
	{major: 10, minor: 12, name: "macOS Sierra"},
	{major: 10, minor: 11, name: "OS X El Capitan"},
	{major: 10, minor: 10, name: "OS X Yosemite"},
	{major: 10, minor: 9, name: "OS X Mavericks"},
	{major: 10, minor: 8, name: "OS X Mountain Lion"},
	{major: 10, minor: 7, name: "OS X Lion"},
	{major: 10, minor: 6, name: "Mac OS X Snow Leopard"},
	{major: 10, minor: 5, name: "Mac OS X Leopard"},
	{major: 10, minor: 4, name: "Mac OS X Tiger"},
	{major: 10, minor: 3, name: "Mac OS X Panther"},
	{major: 10, minor: 2, name: "Mac OS X Jaguar"},
	{major: 10, minor: 1, name: "Mac OS X Puma"},
	{major: 10, minor: 0, name: "Mac OS X Cheetah"},
}

// MacOSEdition returns the marketing name of a macOS release.
// Semantic versions missing from the table yield UnknownEdition;
// any other kind yields "".
func MacOSEdition(v Value) string {
	if !v.IsSemantic() {
		return ""
	}
	for _, r := range macOSReleases {
		if r.major == v.Major && (r.anyMinor || r.minor == v.Minor) {
			return r.name
		}
	}
	return UnknownEdition
}

// WindowsInfo is the subset of OSVERSIONINFOEX used to name a release.
type WindowsInfo struct {
	Major       uint64
	Minor       uint64
	Build       uint64
	Workstation bool
	// HomeServer is set when the suite mask carries VER_SUITE_WH_SERVER.
	HomeServer bool
	// ServerR2 is set when GetSystemMetrics(SM_SERVERR2) is non-zero.
	ServerR2 bool
	// AMD64 is set when the native processor architecture is x64.
	AMD64 bool
}

// WindowsEdition returns the release name for info, or "" when the
// version is not in the table.
func WindowsEdition(info WindowsInfo) string {
	ws := info.Workstation
	switch {
	case info.Major == 10 && info.Minor == 0:
		switch {
		case !ws:
			return "Windows Server 2016"
		case info.Build >= WindowsBuild11:
			return "Windows 11"
		default:
			return "Windows 10"
		}
	case info.Major == 6 && info.Minor == 3:
		return pick(ws, "Windows 8.1", "Windows Server 2012 R2")
	case info.Major == 6 && info.Minor == 2:
		return pick(ws, "Windows 8", "Windows Server 2012")
	case info.Major == 6 && info.Minor == 1:
		return pick(ws, "Windows 7", "Windows Server 2008 R2")
	case info.Major == 6 && info.Minor == 0:
		return pick(ws, "Windows Vista", "Windows Server 2008")
	case info.Major == 5 && info.Minor == 2:
		switch {
		case info.ServerR2:
			return "Windows Server 2003 R2"
		case info.HomeServer:
			return "Windows Home Server"
		case ws && info.AMD64:
			return "Windows XP Professional x64 Edition"
		default:
			return "Windows Server 2003"
		}
	case info.Major == 5 && info.Minor == 1:
		return "Windows XP"
	case info.Major == 5 && info.Minor == 0:
		return "Windows 2000"
	default:
		return ""
	}
}

// WindowsProductName corrects the registry ProductName, which still reads
// "Windows 10" on Windows 11 builds.
func WindowsProductName(name string, build uint64) string {
	name = strings.TrimSpace(name)
	if build >= WindowsBuild11 && strings.HasPrefix(name, "Windows 10") {
		return "Windows 11" + strings.TrimPrefix(name, "Windows 10")
	}
	return name
}

func pick(workstation bool, client, server string) string {
	if workstation {
		return client
	}
	return server
}
