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

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

func TestWriteErrorFromErr(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  herrors.ErrorCode
		wantHTTP  int
		retryable bool
	}{
		{name: "invalid request", err: herrors.New(herrors.ErrCodeInvalidRequest, "bad format"),
			wantCode: herrors.ErrCodeInvalidRequest, wantHTTP: http.StatusBadRequest},
		{name: "timeout", err: herrors.New(herrors.ErrCodeTimeout, "slow"),
			wantCode: herrors.ErrCodeTimeout, wantHTTP: http.StatusGatewayTimeout, retryable: true},
		{name: "wrapped not found", err: fmt.Errorf("outer: %w", herrors.New(herrors.ErrCodeNotFound, "gone")),
			wantCode: herrors.ErrCodeNotFound, wantHTTP: http.StatusNotFound},
		{name: "plain error", err: fmt.Errorf("plain"),
			wantCode: herrors.ErrCodeInternal, wantHTTP: http.StatusInternalServerError, retryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteErrorFromErr(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err, "", nil)

			require.Equal(t, tt.wantHTTP, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, string(tt.wantCode), resp.Code)
			assert.Equal(t, tt.retryable, resp.Retryable)
			assert.NotEmpty(t, resp.Message)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestRetryableFromCode(t *testing.T) {
	tests := []struct {
		code herrors.ErrorCode
		want bool
	}{
		{herrors.ErrCodeInvalidRequest, false},
		{herrors.ErrCodeNotFound, false},
		{herrors.ErrCodeMethodNotAllowed, false},
		{herrors.ErrCodeTimeout, true},
		{herrors.ErrCodeUnavailable, true},
		{herrors.ErrCodeRateLimitExceeded, true},
		{herrors.ErrCodeInternal, true},
		{herrors.ErrorCode("SOMETHING_ELSE"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, retryableFromCode(tt.code))
		})
	}
}

func TestMergeDetails(t *testing.T) {
	assert.Nil(t, mergeDetails(nil, nil))
	assert.Nil(t, mergeDetails(map[string]any{}, map[string]any{}))

	got := mergeDetails(map[string]any{"a": 1, "b": 1}, map[string]any{"b": 2})
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, got)
}
