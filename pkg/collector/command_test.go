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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/hostinfo/pkg/executor"
	"github.com/NVIDIA/hostinfo/pkg/mapping"
	"github.com/NVIDIA/hostinfo/pkg/parser"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

func TestCommandCollect(t *testing.T) {
	exec := executor.NewStatic(map[string]string{
		"lscpu":                           "Architecture:  x86_64\nCPU(s):  8\nModel name:  Intel(R) Core(TM) i7\n",
		"grep -i memtotal: /proc/meminfo": "MemTotal:       16318056 kB\n",
		"getconf LONG_BIT":                "64\n",
		"grep -i memtotal: /nope":         "grep: /nope: No such file or directory\n",
		"empty":                           "  \n",
	})

	tests := []struct {
		name     string
		cmd      *Command
		want     mapping.Mapping
		wantCode herrors.ErrorCode
	}{
		{
			name: "colon mapping",
			cmd:  NewCommand(SourceLscpu, exec, "lscpu", nil),
			want: mapping.Of("Architecture", "x86_64", "CPU(s)", "8", "Model name", "Intel(R) Core(TM) i7"),
		},
		{
			name: "transform",
			cmd: NewCommand(SourceMeminfo, exec, "grep", []string{"-i", "memtotal:", "/proc/meminfo"},
				WithTransform(Strip(" kB"))),
			want: mapping.Of("MemTotal", "16318056"),
		},
		{
			name: "whole output",
			cmd:  NewCommand(SourceGetconf, exec, "getconf", []string{"LONG_BIT"}, WithParse(Whole("LONG_BIT"))),
			want: mapping.Of("LONG_BIT", "64"),
		},
		{
			name: "unavailable marker",
			cmd: NewCommand(SourceMeminfo, exec, "grep", []string{"-i", "memtotal:", "/nope"},
				WithUnavailable("No such file")),
			wantCode: herrors.ErrCodeQueryUnavailable,
		},
		{
			name:     "empty output",
			cmd:      NewCommand("empty", exec, "empty", nil),
			wantCode: herrors.ErrCodeQueryFailed,
		},
		{
			name:     "missing command",
			cmd:      NewCommand("missing", exec, "missing", nil),
			wantCode: herrors.ErrCodeQueryUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cmd.Collect(context.Background())
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, herrors.HasCode(err, tt.wantCode), "code %s, got %v", tt.wantCode, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandLinePrefixes(t *testing.T) {
	exec := executor.NewStatic(map[string]string{
		"dmidecode -qt system": "System Information\n\tManufacturer: Dell Inc.\n\tProduct Name: XPS 13\n\tWake-up Type: Power Switch\n",
	})
	p := parser.NewParser(parser.WithLinePrefixes("Manufacturer:", "Product Name:"))
	c := NewCommand(SourceDmidecode, exec, "dmidecode", []string{"-qt", "system"}, WithParser(p))

	got, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mapping.Of("Manufacturer", "Dell Inc.", "Product Name", "XPS 13"), got)
	assert.Equal(t, "dmidecode -qt system", c.CommandLine())
	assert.Equal(t, SourceDmidecode, c.Name())
}

func TestCommandExecError(t *testing.T) {
	exec := &executor.Static{Responses: map[string]executor.Response{
		"lscpu": {Err: herrors.New(herrors.ErrCodeTimeout, "deadline")},
	}}
	_, err := NewCommand(SourceLscpu, exec, "lscpu", nil).Collect(context.Background())
	assert.Equal(t, herrors.ErrCodeTimeout, herrors.CodeOf(err))
}

func TestExtracted(t *testing.T) {
	fn := Extracted("Version", "Version", "[]")
	assert.Equal(t, mapping.Of("Version", "10.0.19045.3570"), fn("Microsoft Windows [Version 10.0.19045.3570]"))
	assert.Equal(t, mapping.New(), fn("no marker here"))
}

func TestFunc(t *testing.T) {
	f := NewFunc("static", func(context.Context) (mapping.Mapping, error) {
		return nil, nil
	})
	got, err := f.Collect(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, "static", f.Name())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.Collect(ctx)
	assert.True(t, herrors.HasCode(err, herrors.ErrCodeTimeout))
}

func TestFuncError(t *testing.T) {
	boom := errors.New("boom")
	f := NewFunc("broken", func(context.Context) (mapping.Mapping, error) {
		return mapping.Of("a", "b"), boom
	})
	got, err := f.Collect(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got)
}
