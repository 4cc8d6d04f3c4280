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

package collector

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/hostinfo/pkg/mapping"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

func TestOSReleaseFallbackPath(t *testing.T) {
	dir := t.TempDir()
	fallback := filepath.Join(dir, "os-release")
	content := "# comment\nNAME=\"Ubuntu\"\nVERSION_ID=\"22.04\"\nVERSION_CODENAME=jammy\n"
	require.NoError(t, os.WriteFile(fallback, []byte(content), 0o600))

	r := &OSRelease{Paths: []string{filepath.Join(dir, "missing"), fallback}}
	got, err := r.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mapping.Of("NAME", "Ubuntu", "VERSION_ID", "22.04", "VERSION_CODENAME", "jammy"), got)
	assert.Equal(t, SourceOSRelease, r.Name())
}

func TestOSReleaseMissing(t *testing.T) {
	r := &OSRelease{Paths: []string{filepath.Join(t.TempDir(), "missing")}}
	_, err := r.Collect(context.Background())
	assert.True(t, herrors.HasCode(err, herrors.ErrCodeQueryUnavailable))
}

func TestHostSources(t *testing.T) {
	h := NewHostname(func() (string, error) { return "node-1", nil })
	got, err := h.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mapping.Of("hostname", "node-1"), got)

	n := NewNetwork(func(context.Context) (string, error) {
		return "", herrors.New(herrors.ErrCodeQueryUnavailable, "offline")
	})
	_, err = n.Collect(context.Background())
	assert.Error(t, err)
	assert.Equal(t, SourceNetwork, n.Name())
}

func TestNativeForeignOS(t *testing.T) {
	assert.Nil(t, NativeHardware("plan9-not-running"))
	assert.Nil(t, NativeOS("plan9-not-running"))
}
