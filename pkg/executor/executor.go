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

// Package executor runs named queries against the operating system and
// returns their raw text output.
package executor

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/NVIDIA/hostinfo/pkg/defaults"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

// Executor runs a command and returns its textual output.
//
// Output is stdout, or stderr when stdout is empty. An error is returned only
// when there is nothing to report: the command could not be started
// (ErrCodeQueryUnavailable), exited non-zero without output
// (ErrCodeQueryFailed), or ran out of time (ErrCodeTimeout). A command that
// fails but prints something returns that text with a nil error so callers
// can look for "not available" markers.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// Command is an Executor backed by os/exec.
type Command struct {
	// LookPath resolves command names; defaults to exec.LookPath.
	LookPath func(file string) (string, error)
}

// New returns an Executor that spawns processes.
func New() *Command {
	return &Command{LookPath: exec.LookPath}
}

// Run executes name with args.
func (c *Command) Run(ctx context.Context, name string, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", herrors.Wrap(herrors.ErrCodeTimeout, "query canceled before start", err)
	}

	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	path, err := lookPath(name)
	if err != nil {
		return "", herrors.WrapWithContext(herrors.ErrCodeQueryUnavailable,
			"command not found", err, map[string]any{"command": name})
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Grandchildren holding the pipes open must not outlive the deadline.
	cmd.WaitDelay = defaults.CommandWaitDelay

	runErr := cmd.Run()

	out := stdout.String()
	if strings.TrimSpace(out) == "" {
		out = stderr.String()
	}

	if runErr == nil {
		return out, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", herrors.WrapWithContext(herrors.ErrCodeTimeout,
			"query did not finish in time", ctxErr, map[string]any{"command": name})
	}

	var exitErr *exec.ExitError
	if !errors.As(runErr, &exitErr) {
		code := herrors.ErrCodeQueryFailed
		if errors.Is(runErr, fs.ErrPermission) || errors.Is(runErr, exec.ErrNotFound) {
			code = herrors.ErrCodeQueryUnavailable
		}
		return "", herrors.WrapWithContext(code, "failed to start query", runErr,
			map[string]any{"command": name})
	}

	if strings.TrimSpace(out) == "" {
		return "", herrors.WrapWithContext(herrors.ErrCodeQueryFailed,
			"query exited without output", runErr,
			map[string]any{"command": name, "exitCode": exitErr.ExitCode()})
	}

	slog.Debug("query exited non-zero with output",
		slog.String("command", name),
		slog.Int("exitCode", exitErr.ExitCode()))
	return out, nil
}
