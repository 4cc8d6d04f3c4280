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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMacOSEdition(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"15.0", "macOS Sequoia"},
		{"14.4.1", "macOS Sonoma"},
		{"13.6", "macOS Ventura"},
		{"12.7.4", "macOS Monterey"},
		{"11.7", "macOS Big Sur"},
		{"10.15.7", "macOS Catalina"},
		{"10.14", "macOS Mojave"},
		{"10.13.6", "macOS High Sierra"},
		{"10.12", "macOS Sierra"},
		{"10.11.6", "OS X El Capitan"},
		{"10.10", "OS X Yosemite"},
		{"10.9", "OS X Mavericks"},
		{"10.8", "OS X Mountain Lion"},
		{"10.7", "OS X Lion"},
		{"10.6.8", "Mac OS X Snow Leopard"},
		{"10.5", "Mac OS X Leopard"},
		{"10.4", "Mac OS X Tiger"},
		{"10.3", "Mac OS X Panther"},
		{"10.2", "Mac OS X Jaguar"},
		{"10.1", "Mac OS X Puma"},
		{"10.0", "Mac OS X Cheetah"},
		{"10.16", UnknownEdition},
		{"9.2", UnknownEdition},
		{"26.0", UnknownEdition},
		{"", ""},
		{"beta", ""},
		{"1.2.3.4", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, MacOSEdition(FromString(tt.input)))
		})
	}
}

func TestWindowsEdition(t *testing.T) {
	tests := []struct {
		name string
		info WindowsInfo
		want string
	}{
		{"windows 11", WindowsInfo{Major: 10, Build: 22631, Workstation: true}, "Windows 11"},
		{"windows 11 first build", WindowsInfo{Major: 10, Build: 22000, Workstation: true}, "Windows 11"},
		{"windows 10", WindowsInfo{Major: 10, Build: 19045, Workstation: true}, "Windows 10"},
		{"server 2016", WindowsInfo{Major: 10, Build: 20348}, "Windows Server 2016"},
		{"8.1", WindowsInfo{Major: 6, Minor: 3, Workstation: true}, "Windows 8.1"},
		{"2012 r2", WindowsInfo{Major: 6, Minor: 3}, "Windows Server 2012 R2"},
		{"8", WindowsInfo{Major: 6, Minor: 2, Workstation: true}, "Windows 8"},
		{"2012", WindowsInfo{Major: 6, Minor: 2}, "Windows Server 2012"},
		{"7", WindowsInfo{Major: 6, Minor: 1, Workstation: true}, "Windows 7"},
		{"2008 r2", WindowsInfo{Major: 6, Minor: 1}, "Windows Server 2008 R2"},
		{"vista", WindowsInfo{Major: 6, Workstation: true}, "Windows Vista"},
		{"2008", WindowsInfo{Major: 6}, "Windows Server 2008"},
		{"xp", WindowsInfo{Major: 5, Minor: 1, Workstation: true}, "Windows XP"},
		{"2000", WindowsInfo{Major: 5}, "Windows 2000"},
		{"home server", WindowsInfo{Major: 5, Minor: 2, HomeServer: true}, "Windows Home Server"},
		{"xp x64", WindowsInfo{Major: 5, Minor: 2, Workstation: true, AMD64: true}, "Windows XP Professional x64 Edition"},
		{"2003", WindowsInfo{Major: 5, Minor: 2}, "Windows Server 2003"},
		{"2003 r2", WindowsInfo{Major: 5, Minor: 2, ServerR2: true}, "Windows Server 2003 R2"},
		{"unknown", WindowsInfo{Major: 4}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowsEdition(tt.info))
		})
	}
}

func TestWindowsProductName(t *testing.T) {
	assert.Equal(t, "Windows 11 Pro", WindowsProductName("Windows 10 Pro", 22631))
	assert.Equal(t, "Windows 10 Pro", WindowsProductName("Windows 10 Pro", 19045))
	assert.Equal(t, "Windows Server 2022 Datacenter", WindowsProductName(" Windows Server 2022 Datacenter ", 20348))
}
