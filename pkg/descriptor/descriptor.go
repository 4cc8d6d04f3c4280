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

// Package descriptor defines the normalized hardware and operating system
// records produced by a collection run.
//
// Every field is always present. Missing data is the empty string or the
// empty list, never null, so consumers can rely on the shape regardless of
// which source supplied the values. The serialized field names are a
// compatibility contract.
package descriptor

import (
	"strings"

	"github.com/NVIDIA/hostinfo/pkg/header"
)

// Hardware field names.
const (
	FieldManufacturer = "system_manufacturer"
	FieldModel        = "system_model"
	FieldSerialNumber = "serial_number"
	FieldBIOS         = "bios"
	FieldMemory       = "physical_memory"
	FieldProcessor    = "processor"
	FieldArchitecture = "architecture"
	FieldVendor       = "processor_vendor"
	FieldPhysicalCPUs = "processor_physical_cpus"
	FieldLogicalCPUs  = "processor_logical_cpus"
	FieldFeatures     = "processor_features"
)

// OS field names. Architecture shares FieldArchitecture.
const (
	FieldOS        = "os"
	FieldKernel    = "kernel"
	FieldEdition   = "edition"
	FieldVersion   = "version"
	FieldHostname  = "hostname"
	FieldIPAddress = "ip_address"
)

// FieldSource supplies resolved field values by name.
type FieldSource interface {
	Value(field string) string
	List(field string) []string
}

// Hardware describes the machine.
type Hardware struct {
	Manufacturer string   `json:"system_manufacturer" yaml:"system_manufacturer"`
	Model        string   `json:"system_model" yaml:"system_model"`
	SerialNumber string   `json:"serial_number" yaml:"serial_number"`
	BIOS         string   `json:"bios" yaml:"bios"`
	Memory       string   `json:"physical_memory" yaml:"physical_memory"`
	Processor    string   `json:"processor" yaml:"processor"`
	Architecture string   `json:"architecture" yaml:"architecture"`
	Vendor       string   `json:"processor_vendor" yaml:"processor_vendor"`
	PhysicalCPUs string   `json:"processor_physical_cpus" yaml:"processor_physical_cpus"`
	LogicalCPUs  string   `json:"processor_logical_cpus" yaml:"processor_logical_cpus"`
	Features     []string `json:"processor_features" yaml:"processor_features"`
}

// NewHardware returns a Hardware with every field at its empty default.
func NewHardware() Hardware {
	return Hardware{Features: []string{}}
}

// HardwareFrom builds a Hardware from resolved fields.
func HardwareFrom(src FieldSource) Hardware {
	hw := Hardware{
		Manufacturer: src.Value(FieldManufacturer),
		Model:        src.Value(FieldModel),
		SerialNumber: src.Value(FieldSerialNumber),
		BIOS:         src.Value(FieldBIOS),
		Memory:       src.Value(FieldMemory),
		Processor:    src.Value(FieldProcessor),
		Architecture: src.Value(FieldArchitecture),
		Vendor:       src.Value(FieldVendor),
		PhysicalCPUs: src.Value(FieldPhysicalCPUs),
		LogicalCPUs:  src.Value(FieldLogicalCPUs),
		Features:     src.List(FieldFeatures),
	}
	if hw.Features == nil {
		hw.Features = []string{}
	}
	return hw
}

// GetKind identifies a bare hardware document.
func (Hardware) GetKind() header.Kind { return header.KindHardware }

// GetMetadata returns nil; bare descriptors carry no header.
func (Hardware) GetMetadata() map[string]string { return nil }

// OS describes the operating system.
type OS struct {
	OS           string `json:"os" yaml:"os"`
	Kernel       string `json:"kernel" yaml:"kernel"`
	Edition      string `json:"edition" yaml:"edition"`
	Version      string `json:"version" yaml:"version"`
	Architecture string `json:"architecture" yaml:"architecture"`
	Hostname     string `json:"hostname" yaml:"hostname"`
	IPAddress    string `json:"ip_address" yaml:"ip_address"`
}

// OSFrom builds an OS from resolved fields.
func OSFrom(src FieldSource) OS {
	return OS{
		OS:           src.Value(FieldOS),
		Kernel:       src.Value(FieldKernel),
		Edition:      src.Value(FieldEdition),
		Version:      src.Value(FieldVersion),
		Architecture: src.Value(FieldArchitecture),
		Hostname:     src.Value(FieldHostname),
		IPAddress:    src.Value(FieldIPAddress),
	}
}

// GetKind identifies a bare OS document.
func (OS) GetKind() header.Kind { return header.KindOS }

// GetMetadata returns nil; bare descriptors carry no header.
func (OS) GetMetadata() map[string]string { return nil }

// System bundles both descriptors under a document header.
type System struct {
	header.Header `json:",inline" yaml:",inline"`

	Hardware Hardware `json:"hardware" yaml:"hardware"`
	OS       OS       `json:"os" yaml:"os"`
}

// ArchitectureTag is the word size of the operating system.
type ArchitectureTag int

const (
	ArchUnknown ArchitectureTag = iota
	Arch32
	Arch64
)

// String returns the display form.
func (a ArchitectureTag) String() string {
	switch a {
	case Arch32:
		return "32-bit"
	case Arch64:
		return "64-bit"
	default:
		return "unknown architecture"
	}
}

// ArchitectureOf derives the tag from a reported word size or architecture
// name by substring test: "32" wins over "64".
func ArchitectureOf(reported string) ArchitectureTag {
	switch {
	case strings.Contains(reported, "32"):
		return Arch32
	case strings.Contains(reported, "64"):
		return Arch64
	default:
		return ArchUnknown
	}
}
