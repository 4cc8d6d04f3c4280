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
	"strings"
	"sync"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

// Response is a canned answer for Static.
type Response struct {
	Output string
	Err    error
}

// Static is an Executor that answers from a table keyed by the command line
// ("name arg1 arg2"). Unknown commands report ErrCodeQueryUnavailable.
// It is safe for concurrent use and records every call.
type Static struct {
	Responses map[string]Response

	mu    sync.Mutex
	calls []string
}

// NewStatic returns a Static executor answering with outputs.
func NewStatic(outputs map[string]string) *Static {
	s := &Static{Responses: make(map[string]Response, len(outputs))}
	for k, v := range outputs {
		s.Responses[k] = Response{Output: v}
	}
	return s
}

// Run implements Executor.
func (s *Static) Run(ctx context.Context, name string, args ...string) (string, error) {
	line := strings.Join(append([]string{name}, args...), " ")

	s.mu.Lock()
	s.calls = append(s.calls, line)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", herrors.Wrap(herrors.ErrCodeTimeout, "query canceled before start", err)
	}

	r, ok := s.Responses[line]
	if !ok {
		return "", herrors.NewWithContext(herrors.ErrCodeQueryUnavailable,
			"command not found", map[string]any{"command": line})
	}
	return r.Output, r.Err
}

// Calls returns the command lines run so far.
func (s *Static) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}
