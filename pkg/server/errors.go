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
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
	"github.com/NVIDIA/hostinfo/pkg/serializer"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes an error envelope with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code herrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr maps err to a status and writes its envelope.
// Errors without a StructuredError in their chain are reported as internal.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, message string, extra map[string]any) {
	code := herrors.ErrCodeInternal
	var details map[string]any

	var se *herrors.StructuredError
	if errors.As(err, &se) {
		code = se.Code
		details = se.Context
		if message == "" {
			message = se.Message
		}
	}
	if message == "" {
		message = "Internal server error"
	}

	WriteError(w, r, statusFromCode(code), code, message, retryableFromCode(code), mergeDetails(details, extra))
}

func statusFromCode(code herrors.ErrorCode) int {
	switch code {
	case herrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case herrors.ErrCodeNotFound:
		return http.StatusNotFound
	case herrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case herrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case herrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case herrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code herrors.ErrorCode) bool {
	switch code {
	case herrors.ErrCodeTimeout,
		herrors.ErrCodeUnavailable,
		herrors.ErrCodeRateLimitExceeded,
		herrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails combines two detail maps; b wins on key collisions.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
