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

package executor

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestCommandRun(t *testing.T) {
	requireShell(t)

	tests := []struct {
		name     string
		script   string
		want     string
		wantCode herrors.ErrorCode
	}{
		{name: "stdout", script: "echo 'MemTotal: 100 kB'", want: "MemTotal: 100 kB\n"},
		{name: "stderr when stdout empty", script: "echo 'No SMBIOS nor DMI entry point found' >&2", want: "No SMBIOS nor DMI entry point found\n"},
		{name: "non-zero with output", script: "echo 'permission denied' >&2; exit 1", want: "permission denied\n"},
		{name: "non-zero without output", script: "exit 3", wantCode: herrors.ErrCodeQueryFailed},
		{name: "empty success", script: "true", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Run(context.Background(), "sh", "-c", tt.script)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, herrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandRunUnavailable(t *testing.T) {
	c := &Command{LookPath: func(string) (string, error) {
		return "", exec.ErrNotFound
	}}

	_, err := c.Run(context.Background(), "dmidecode", "-qt", "bios")
	require.Error(t, err)
	assert.Equal(t, herrors.ErrCodeQueryUnavailable, herrors.CodeOf(err))
	assert.True(t, errors.Is(err, exec.ErrNotFound))
}

func TestCommandRunTimeout(t *testing.T) {
	requireShell(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := New().Run(ctx, "sh", "-c", "sleep 5")
	require.Error(t, err)
	assert.Equal(t, herrors.ErrCodeTimeout, herrors.CodeOf(err))
}

func TestCommandRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Run(ctx, "lscpu")
	assert.Equal(t, herrors.ErrCodeTimeout, herrors.CodeOf(err))
}

func TestStatic(t *testing.T) {
	s := NewStatic(map[string]string{"uname -m": "arm64\n"})
	s.Responses["lshw -quiet -C system"] = Response{Err: herrors.New(herrors.ErrCodeQueryFailed, "boom")}

	out, err := s.Run(context.Background(), "uname", "-m")
	require.NoError(t, err)
	assert.Equal(t, "arm64\n", out)

	_, err = s.Run(context.Background(), "lshw", "-quiet", "-C", "system")
	assert.Equal(t, herrors.ErrCodeQueryFailed, herrors.CodeOf(err))

	_, err = s.Run(context.Background(), "system_profiler")
	assert.Equal(t, herrors.ErrCodeQueryUnavailable, herrors.CodeOf(err))

	assert.Equal(t, []string{"uname -m", "lshw -quiet -C system", "system_profiler"}, s.Calls())
}
