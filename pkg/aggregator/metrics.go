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

package aggregator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Source outcomes recorded in collectorResults.
const (
	resultPresent = "present"
	resultAbsent  = "absent"
	resultPanic   = "panic"
	resultTimeout = "timeout"
)

var (
	// Descriptor collection metrics
	collectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hostinfo_collection_duration_seconds",
			Help:    "Time taken to collect a complete descriptor",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"descriptor"}, // hardware, os
	)

	collectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hostinfo_collector_duration_seconds",
			Help:    "Time taken by individual sources",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"collector"},
	)

	collectorResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostinfo_collector_results_total",
			Help: "Source outcomes by collector",
		},
		[]string{"collector", "result"}, // present, absent, panic, timeout
	)

	collectorErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostinfo_collector_errors_total",
			Help: "Source errors by collector and error code",
		},
		[]string{"collector", "code"},
	)

	sourcesPresent = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hostinfo_sources_present",
			Help: "Number of sources with a result in the last collection",
		},
		[]string{"descriptor"},
	)
)
