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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeQueryUnavailable, "command not found")

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeQueryUnavailable {
		t.Errorf("expected code %s, got %s", ErrCodeQueryUnavailable, err.Code)
	}
	if err.Message != "command not found" {
		t.Errorf("expected message 'command not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(ErrCodeQueryFailed, "query failed", cause)

	if err.Code != ErrCodeQueryFailed {
		t.Errorf("expected code %s, got %s", ErrCodeQueryFailed, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	ctx := map[string]any{
		"collector": "lscpu",
		"timeout":   "10s",
	}

	err := WrapWithContext(ErrCodeTimeout, "collector timed out", cause, ctx)

	if err.Code != ErrCodeTimeout {
		t.Errorf("expected code %s, got %s", ErrCodeTimeout, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["collector"] != "lscpu" {
		t.Errorf("expected collector to be lscpu")
	}
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeMalformedVersion, "not a version", map[string]any{"input": "abc"})
	if err.Context["input"] != "abc" {
		t.Errorf("expected input context, got %v", err.Context)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeParseMiss, "label absent"),
			expected: "[PARSE_MISS] label absent",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "plain error", err: errors.New("boom"), expected: ErrCodeInternal},
		{name: "structured", err: New(ErrCodeTimeout, "slow"), expected: ErrCodeTimeout},
		{
			name:     "wrapped by fmt",
			err:      fmt.Errorf("collect: %w", New(ErrCodeQueryUnavailable, "missing")),
			expected: ErrCodeQueryUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	inner := New(ErrCodeQueryUnavailable, "missing binary")
	outer := Wrap(ErrCodeTimeout, "collector timed out", inner)

	if !HasCode(outer, ErrCodeTimeout) {
		t.Error("expected outer code to match")
	}
	if !HasCode(outer, ErrCodeQueryUnavailable) {
		t.Error("expected inner code to match")
	}
	if HasCode(outer, ErrCodeQueryFailed) {
		t.Error("unexpected match for QUERY_FAILED")
	}
	if HasCode(errors.New("plain"), ErrCodeInternal) {
		t.Error("plain errors carry no code")
	}
}
