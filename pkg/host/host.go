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

// Package host answers the two questions the OS descriptor asks of the
// local machine itself: its hostname and its outbound IP address.
package host

import (
	"context"
	"net"
	"os"
	"runtime"
	"unicode/utf8"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

// ProbeAddress is the UDP destination used to select the outbound
// interface. No packet is sent.
const ProbeAddress = "8.8.8.8:80"

// MaxHostnameLen returns the longest hostname goos allows, in bytes.
func MaxHostnameLen(goos string) int {
	if goos == "linux" {
		return 64
	}
	return 255
}

// Hostname returns the kernel's hostname truncated to the platform limit.
func Hostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", herrors.Wrap(herrors.ErrCodeQueryUnavailable, "failed to read hostname", err)
	}
	return Truncate(name, MaxHostnameLen(runtime.GOOS)), nil
}

// Truncate shortens name to at most limit bytes without splitting a rune.
func Truncate(name string, limit int) string {
	if len(name) <= limit {
		return name
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}

// LocalIP returns the local address the kernel picks to reach ProbeAddress.
func LocalIP(ctx context.Context) (string, error) {
	return LocalIPFor(ctx, ProbeAddress)
}

// LocalIPFor returns the local address used to reach target over UDP.
func LocalIPFor(ctx context.Context, target string) (string, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", target)
	if err != nil {
		return "", herrors.WrapWithContext(herrors.ErrCodeQueryUnavailable,
			"failed to select outbound interface", err, map[string]any{"target": target})
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || addr.IP == nil {
		return "", herrors.New(herrors.ErrCodeQueryFailed, "unexpected local address type")
	}
	return addr.IP.String(), nil
}
