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

//go:build linux || darwin || freebsd

package collector

import (
	"context"

	"golang.org/x/sys/unix"

	"github.com/NVIDIA/hostinfo/pkg/mapping"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

// NewUname returns the "uname" source with the labels sysname, release,
// version and machine.
func NewUname() *Func {
	return NewFunc(SourceUname, func(context.Context) (mapping.Mapping, error) {
		var u unix.Utsname
		if err := unix.Uname(&u); err != nil {
			return nil, herrors.Wrap(herrors.ErrCodeQueryUnavailable, "uname failed", err)
		}
		return mapping.Of(
			"sysname", unix.ByteSliceToString(u.Sysname[:]),
			"release", unix.ByteSliceToString(u.Release[:]),
			"version", unix.ByteSliceToString(u.Version[:]),
			"machine", unix.ByteSliceToString(u.Machine[:]),
		), nil
	})
}
