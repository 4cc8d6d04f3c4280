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

package descriptor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/hostinfo/pkg/header"
)

type fields struct {
	values map[string]string
	lists  map[string][]string
}

func (f fields) Value(name string) string  { return f.values[name] }
func (f fields) List(name string) []string { return f.lists[name] }

func TestArchitectureOf(t *testing.T) {
	tests := []struct {
		in   string
		want ArchitectureTag
	}{
		{"64", Arch64},
		{"64\n", Arch64},
		{"32", Arch32},
		{"x86-64", Arch64},
		{"arm64", Arch64},
		{"", ArchUnknown},
		{"x86", ArchUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ArchitectureOf(tt.in))
		})
	}
}

func TestArchitectureString(t *testing.T) {
	assert.Equal(t, "unknown architecture", ArchUnknown.String())
	assert.Equal(t, "32-bit", Arch32.String())
	assert.Equal(t, "64-bit", Arch64.String())
}

func TestHardwareFromEmpty(t *testing.T) {
	hw := HardwareFrom(fields{})
	assert.Equal(t, NewHardware(), hw)

	b, err := json.Marshal(hw)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"processor_features":[]`)
	assert.Contains(t, string(b), `"system_manufacturer":""`)
}

func TestHardwareFrom(t *testing.T) {
	hw := HardwareFrom(fields{
		values: map[string]string{
			FieldManufacturer: "Dell Inc.",
			FieldBIOS:         "Dell Inc. v2.3.1 (01/02/2024)",
			FieldLogicalCPUs:  "16",
		},
		lists: map[string][]string{FieldFeatures: {"FPU", "SSE2"}},
	})

	assert.Equal(t, "Dell Inc.", hw.Manufacturer)
	assert.Equal(t, "Dell Inc. v2.3.1 (01/02/2024)", hw.BIOS)
	assert.Equal(t, "16", hw.LogicalCPUs)
	assert.Equal(t, []string{"FPU", "SSE2"}, hw.Features)
	assert.Empty(t, hw.Model)
}

func TestOSFromYAMLNames(t *testing.T) {
	osd := OSFrom(fields{values: map[string]string{
		FieldOS:           "Ubuntu",
		FieldArchitecture: Arch64.String(),
		FieldIPAddress:    "10.0.0.5",
	}})

	b, err := yaml.Marshal(osd)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal(b, &decoded))
	assert.Equal(t, map[string]string{
		"os":           "Ubuntu",
		"kernel":       "",
		"edition":      "",
		"version":      "",
		"architecture": "64-bit",
		"hostname":     "",
		"ip_address":   "10.0.0.5",
	}, decoded)
}

func TestDocumentKinds(t *testing.T) {
	assert.Equal(t, header.KindHardware, NewHardware().GetKind())
	assert.Equal(t, header.KindOS, OS{}.GetKind())
	assert.Nil(t, OS{}.GetMetadata())

	sys := &System{}
	sys.Init(header.KindSystem, header.APIVersion, "v1")
	assert.Equal(t, header.KindSystem, sys.GetKind())
	assert.Equal(t, "v1", sys.GetMetadata()[header.MetadataVersion])
}
