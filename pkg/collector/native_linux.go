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

//go:build linux

package collector

import (
	"context"
	"runtime"
	"strings"

	"github.com/coreos/go-systemd/v22/dbus"
	"github.com/jaypipes/ghw"
	"github.com/siderolabs/go-smbios/smbios"

	"github.com/NVIDIA/hostinfo/pkg/mapping"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

// ghw reports unreadable DMI fields with this placeholder.
const ghwUnknown = "unknown"

var systemdManagerProperties = []string{
	"Architecture",
	"Version",
	"Virtualization",
}

// NativeHardware returns the native hardware sources for goos, or nil when
// goos is not the running operating system.
func NativeHardware(goos string) []Collector {
	if goos != runtime.GOOS {
		return nil
	}
	return []Collector{NewSMBIOS(), NewDMI(), NewCPU(), NewMemory(), NewUname()}
}

// NativeOS returns the native OS sources for goos, or nil when goos is not
// the running operating system.
func NativeOS(goos string) []Collector {
	if goos != runtime.GOOS {
		return nil
	}
	return []Collector{NewSystemd(), NewUname(), NewHost()}
}

// NewSMBIOS returns the "smbios" source. It decodes the SMBIOS tables and
// reports them with the dmidecode labels.
func NewSMBIOS() *Func {
	return NewFunc(SourceSMBIOS, func(context.Context) (mapping.Mapping, error) {
		s, err := smbios.New()
		if err != nil {
			return nil, herrors.Wrap(herrors.ErrCodeQueryUnavailable, "failed to read SMBIOS tables", err)
		}

		m := mapping.New()
		setNonEmpty(m, "Manufacturer", s.SystemInformation.Manufacturer)
		setNonEmpty(m, "Product Name", s.SystemInformation.ProductName)
		setNonEmpty(m, "Serial Number", s.SystemInformation.SerialNumber)
		setNonEmpty(m, "Vendor", s.BIOSInformation.Vendor)
		setNonEmpty(m, "Version", s.BIOSInformation.Version)
		setNonEmpty(m, "Release Date", s.BIOSInformation.ReleaseDate)
		return m, nil
	})
}

// NewDMI returns the "dmi" source, the sysfs DMI view via ghw.
func NewDMI() *Func {
	return NewFunc(SourceDMI, func(context.Context) (mapping.Mapping, error) {
		m := mapping.New()

		product, perr := ghw.Product()
		if perr == nil {
			setKnown(m, "Manufacturer", product.Vendor)
			setKnown(m, "Product Name", product.Name)
			setKnown(m, "Serial Number", product.SerialNumber)
		}

		bios, berr := ghw.BIOS()
		if berr == nil {
			setKnown(m, "Vendor", bios.Vendor)
			setKnown(m, "Version", bios.Version)
			setKnown(m, "Release Date", bios.Date)
		}

		if perr != nil && berr != nil {
			return nil, herrors.Wrap(herrors.ErrCodeQueryUnavailable, "failed to read DMI", perr)
		}
		return m, nil
	})
}

// NewSystemd returns the "systemd" source with the manager properties
// Architecture, Version and Virtualization.
func NewSystemd() *Func {
	return NewFunc(SourceSystemd, func(ctx context.Context) (mapping.Mapping, error) {
		conn, err := dbus.NewSystemdConnectionContext(ctx)
		if err != nil {
			return nil, herrors.Wrap(herrors.ErrCodeQueryUnavailable, "failed to connect to systemd", err)
		}
		defer conn.Close()

		m := mapping.New()
		for _, prop := range systemdManagerProperties {
			v, err := conn.GetManagerProperty(prop)
			if err != nil {
				continue
			}
			m.Set(prop, strings.Trim(v, `"`))
		}

		if m.Len() == 0 {
			return nil, herrors.New(herrors.ErrCodeQueryFailed, "no systemd manager properties")
		}
		return m, nil
	})
}

func setNonEmpty(m mapping.Mapping, label, value string) {
	if v := strings.TrimSpace(value); v != "" {
		m.Set(label, v)
	}
}

func setKnown(m mapping.Mapping, label, value string) {
	if !strings.EqualFold(strings.TrimSpace(value), ghwUnknown) {
		setNonEmpty(m, label, value)
	}
}
