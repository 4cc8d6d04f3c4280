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

package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Collection timeouts
		{"CollectorTimeout", CollectorTimeout, 1 * time.Second, 30 * time.Second},
		{"CollectionTimeout", CollectionTimeout, 10 * time.Second, 5 * time.Minute},
		{"CommandWaitDelay", CommandWaitDelay, 100 * time.Millisecond, 5 * time.Second},

		// Handler timeouts
		{"DescriptorHandlerTimeout", DescriptorHandlerTimeout, 10 * time.Second, 60 * time.Second},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerReadHeaderTimeout", ServerReadHeaderTimeout, 1 * time.Second, 10 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 10 * time.Second, 120 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},

		// ConfigMap timeouts
		{"ConfigMapWriteTimeout", ConfigMapWriteTimeout, 10 * time.Second, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s = %v, want >= %v", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s = %v, want <= %v", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestTimeoutRelationships(t *testing.T) {
	if CollectorTimeout >= CollectionTimeout {
		t.Errorf("CollectorTimeout (%v) should be less than CollectionTimeout (%v)",
			CollectorTimeout, CollectionTimeout)
	}

	if ServerWriteTimeout <= DescriptorHandlerTimeout {
		t.Errorf("ServerWriteTimeout (%v) should exceed DescriptorHandlerTimeout (%v)",
			ServerWriteTimeout, DescriptorHandlerTimeout)
	}

	if ServerReadHeaderTimeout >= ServerReadTimeout {
		t.Errorf("ServerReadHeaderTimeout (%v) should be less than ServerReadTimeout (%v)",
			ServerReadHeaderTimeout, ServerReadTimeout)
	}
}

func TestServerLimits(t *testing.T) {
	if ServerRateBurst < ServerRateLimit {
		t.Errorf("ServerRateBurst (%d) should be at least ServerRateLimit (%d)", ServerRateBurst, ServerRateLimit)
	}
}
