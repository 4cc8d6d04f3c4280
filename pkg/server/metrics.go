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
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	rejectRateLimit = "rate_limit"
	rejectPanic     = "panic"
)

var (
	descriptorRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostinfo_http_requests_total",
			Help: "Descriptor requests by route and status code.",
		},
		[]string{"route", "code"},
	)

	// A request runs a full collection, so buckets reach the collection deadline.
	descriptorLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hostinfo_http_request_duration_seconds",
			Help:    "Time to collect and encode a descriptor.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"route"},
	)

	collectionsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hostinfo_http_collections_in_flight",
			Help: "Descriptor collections currently running for HTTP clients.",
		},
	)

	requestsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostinfo_http_rejected_total",
			Help: "Descriptor requests answered with an error before or during collection.",
		},
		[]string{"reason"},
	)
)

// statusRecorder remembers the first status code a handler sends.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func record(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w}
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.code == 0 {
		sr.code = code
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.code == 0 {
		sr.code = http.StatusOK
	}
	return sr.ResponseWriter.Write(b)
}

// Status returns the recorded code, 200 when nothing was written.
func (sr *statusRecorder) Status() int {
	if sr.code == 0 {
		return http.StatusOK
	}
	return sr.code
}

// metricsMiddleware labels by registered route so unknown paths cannot grow
// the series set.
func (s *Server) metricsMiddleware(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collectionsInFlight.Inc()
		defer collectionsInFlight.Dec()

		sr := record(w)
		timer := prometheus.NewTimer(descriptorLatency.WithLabelValues(route))
		next.ServeHTTP(sr, r)
		timer.ObserveDuration()

		descriptorRequests.WithLabelValues(route, strconv.Itoa(sr.Status())).Inc()
	}
}

