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

package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/NVIDIA/hostinfo/pkg/aggregator"
	"github.com/NVIDIA/hostinfo/pkg/defaults"
	"github.com/NVIDIA/hostinfo/pkg/platform"
	"github.com/NVIDIA/hostinfo/pkg/serializer"
	"github.com/NVIDIA/hostinfo/pkg/server"

	herrors "github.com/NVIDIA/hostinfo/pkg/errors"
)

// Handler serves descriptors for one platform.
type Handler struct {
	platform   *platform.Platform
	aggregator *aggregator.Aggregator
	timeout    time.Duration
}

// NewHandler returns a Handler. A nil aggregator uses defaults, and a
// non-positive timeout uses defaults.DescriptorHandlerTimeout.
func NewHandler(p *platform.Platform, a *aggregator.Aggregator, timeout time.Duration) *Handler {
	if a == nil {
		a = aggregator.New()
	}
	if timeout <= 0 {
		timeout = defaults.DescriptorHandlerTimeout
	}
	return &Handler{platform: p, aggregator: a, timeout: timeout}
}

// Routes returns the descriptor handlers keyed by path.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/hardware": h.HandleHardware,
		"/v1/os":       h.HandleOS,
		"/v1/system":   h.HandleSystem,
	}
}

// HandleHardware serves GET /v1/hardware.
func (h *Handler) HandleHardware(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context) any {
		return h.aggregator.Hardware(ctx, h.platform.Hardware)
	})
}

// HandleOS serves GET /v1/os.
func (h *Handler) HandleOS(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context) any {
		return h.aggregator.OS(ctx, h.platform.OS)
	})
}

// HandleSystem serves GET /v1/system.
func (h *Handler) HandleSystem(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context) any {
		return h.aggregator.System(ctx, h.platform)
	})
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, collect func(context.Context) any) {
	if !server.AllowGet(w, r) {
		return
	}

	format, err := responseFormat(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	doc := collect(ctx)

	w.Header().Set("Cache-Control", "no-store")
	if format == serializer.FormatYAML {
		serializer.RespondYAML(w, http.StatusOK, doc)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, doc)
}

// responseFormat reads ?format=, accepting json and yaml.
func responseFormat(r *http.Request) (serializer.Format, error) {
	raw := r.URL.Query().Get("format")
	if strings.TrimSpace(raw) == "" {
		return serializer.FormatJSON, nil
	}
	f, err := serializer.ParseFormat(raw)
	if err != nil {
		return "", err
	}
	if f == serializer.FormatTable {
		return "", herrors.NewWithContext(herrors.ErrCodeInvalidRequest,
			"table format is not served over HTTP", map[string]any{"format": raw})
	}
	return f, nil
}
