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

package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/hostinfo/pkg/descriptor"
	"github.com/NVIDIA/hostinfo/pkg/mapping"
	"github.com/NVIDIA/hostinfo/pkg/version"
)

func TestFirstHonorsPriorityOverEmptiness(t *testing.T) {
	r := Results{
		"a": mapping.Of("other", "x"),
		"b": mapping.Of("L", ""),
		"c": mapping.Of("L", "from-c"),
	}

	v, ok := First(C("a", "L"), C("b", "L"), C("c", "L"))(r)
	assert.True(t, ok)
	assert.Empty(t, v, "an empty value from a present label is a pick")
}

func TestFirstSkipsAbsentSources(t *testing.T) {
	r := Results{"lshw": mapping.Of("product", "ThinkPad")}

	v, ok := First(C("dmidecode", "Manufacturer"), C("lshw", "product"))(r)
	assert.True(t, ok)
	assert.Equal(t, "ThinkPad", v)

	_, ok = First(C("dmidecode", "Manufacturer"))(r)
	assert.False(t, ok)
}

func TestFirstNonEmpty(t *testing.T) {
	r := Results{"os-release": mapping.Of("VERSION_CODENAME", "", "PRETTY_NAME", "Arch Linux")}

	v, ok := FirstNonEmpty(C("os-release", "VERSION_CODENAME"), C("os-release", "PRETTY_NAME"))(r)
	assert.True(t, ok)
	assert.Equal(t, "Arch Linux", v)

	_, ok = FirstNonEmpty(C("os-release", "VERSION_CODENAME"))(r)
	assert.False(t, ok)
}

func TestOrAndConst(t *testing.T) {
	v, ok := Or(First(C("x", "y")), Const("Apple"))(Results{})
	assert.True(t, ok)
	assert.Equal(t, "Apple", v)

	_, ok = Or()(Results{})
	assert.False(t, ok)
}

func TestBIOS(t *testing.T) {
	full := Results{"dmidecode": mapping.Of("Vendor", "LENOVO", "Version", "N2HET77W (1.60 )", "Release Date", "02/06/2024")}
	partial := Results{"dmidecode": mapping.Of("Vendor", "LENOVO", "Version", "1.60")}
	res := BIOS(C("dmidecode", "Vendor"), C("dmidecode", "Version"), C("dmidecode", "Release Date"))

	v, ok := res(full)
	assert.True(t, ok)
	assert.Equal(t, "LENOVO vN2HET77W (1.60 ) (02/06/2024)", v)

	_, ok = res(partial)
	assert.False(t, ok)
}

func TestPair(t *testing.T) {
	res := Pair(C("sp", "Model Identifier"), C("sp", "Model Name"))

	v, ok := res(Results{"sp": mapping.Of("Model Identifier", "Mac15,3", "Model Name", "MacBook Pro")})
	assert.True(t, ok)
	assert.Equal(t, "Mac15,3 (MacBook Pro)", v)

	_, ok = res(Results{"sp": mapping.Of("Model Name", "MacBook Pro")})
	assert.False(t, ok)
}

func TestBytes(t *testing.T) {
	r := Results{"meminfo": mapping.Of("MemTotal", "16318056"), "bad": mapping.Of("MemTotal", "lots")}

	v, ok := Bytes(1000, C("meminfo", "MemTotal"))(r)
	assert.True(t, ok)
	assert.Equal(t, "16.32 GB", v)

	_, ok = Bytes(1, C("bad", "MemTotal"))(r)
	assert.False(t, ok)

	_, ok = Bytes(1, C("missing", "MemTotal"))(r)
	assert.False(t, ok)

	for _, v := range []string{"inf", "Infinity", "NaN"} {
		_, ok = Bytes(1000, C("meminfo", "MemTotal"))(Results{"meminfo": mapping.Of("MemTotal", v)})
		assert.False(t, ok, v)
	}
}

func TestUpper(t *testing.T) {
	v, ok := Upper(Const("noble"))(Results{})
	assert.True(t, ok)
	assert.Equal(t, "NOBLE", v)

	_, ok = Upper(First(C("a", "b")))(Results{})
	assert.False(t, ok)
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		r    Results
		want string
	}{
		{"getconf 64", Results{"getconf": mapping.Of("LONG_BIT", "64")}, "64-bit"},
		{"getconf 32", Results{"getconf": mapping.Of("LONG_BIT", "32")}, "32-bit"},
		{"fallback", Results{"getconf": mapping.Of("LONG_BIT", "??"), "systemd": mapping.Of("Architecture", "x86-64")}, "64-bit"},
		{"nothing", Results{}, "unknown architecture"},
	}

	res := Width(C("getconf", "LONG_BIT"), C("systemd", "Architecture"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := res(tt.r)
			assert.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestEdition(t *testing.T) {
	res := Edition(C("sw_vers", "ProductVersion"), version.MacOSEdition)

	v, ok := res(Results{"sw_vers": mapping.Of("ProductVersion", "14.4.1")})
	assert.True(t, ok)
	assert.Equal(t, "macOS Sonoma", v)

	v, ok = res(Results{"sw_vers": mapping.Of("ProductVersion", "14.4.1.2")})
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = res(Results{})
	assert.False(t, ok)
}

func TestFeatures(t *testing.T) {
	r := Results{"sysctl": mapping.Of(
		"machdep.cpu.features", "FPU vme de",
		"machdep.cpu.leaf7_features", "rdseed  adx",
	)}

	v, ok := Features(
		C("sysctl", "machdep.cpu.features"),
		C("sysctl", "machdep.cpu.extfeatures"),
		C("sysctl", "machdep.cpu.leaf7_features"),
	)(r)
	assert.True(t, ok)
	assert.Equal(t, []string{"FPU", "VME", "DE", "RDSEED", "ADX"}, v)

	_, ok = Features(C("lscpu", "Flags"))(r)
	assert.False(t, ok)

	v, ok = OrList(Features(C("lscpu", "Flags")), Features(C("sysctl", "machdep.cpu.features")))(r)
	assert.True(t, ok)
	assert.Len(t, v, 3)
}

func TestPolicyApply(t *testing.T) {
	p := Policy{
		Rules: []Rule{
			{Field: descriptor.FieldManufacturer, Resolve: First(C("a", "Manufacturer"))},
			{Field: descriptor.FieldModel, Resolve: First(C("a", "Product Name"))},
		},
		Lists: []ListRule{
			{Field: descriptor.FieldFeatures, Resolve: Features(C("b", "Flags"))},
		},
	}

	f := p.Apply(Results{"a": mapping.Of("Manufacturer", "HP")})
	assert.Equal(t, "HP", f.Value(descriptor.FieldManufacturer))
	assert.Empty(t, f.Value(descriptor.FieldModel))
	assert.False(t, f.Resolved(descriptor.FieldModel))
	assert.Equal(t, []string{}, f.List(descriptor.FieldFeatures))
	assert.Equal(t, []string{descriptor.FieldManufacturer, descriptor.FieldModel, descriptor.FieldFeatures}, p.Fields())

	hw := descriptor.HardwareFrom(f)
	assert.Equal(t, "HP", hw.Manufacturer)
	assert.NotNil(t, hw.Features)
}
