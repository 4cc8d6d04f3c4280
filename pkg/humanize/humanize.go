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

// Package humanize formats byte sizes and dates for descriptor fields.
package humanize

import (
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

var units = [...]string{"B", "kB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// Bytes formats x on the decimal (1000-based) ladder B through YB with at
// most two decimals and no trailing zeros, keeping the sign of x.
// Magnitudes below one byte are printed unrounded. Infinite sizes saturate
// at YB.
func Bytes(x float64) string {
	sign := ""
	if math.Signbit(x) {
		sign = "-"
	}
	size := math.Abs(x)

	if size < 1 || math.IsNaN(size) {
		return sign + strconv.FormatFloat(size, 'f', -1, 64) + " B"
	}

	if math.IsInf(size, 1) {
		return sign + "inf " + units[len(units)-1]
	}

	exp := max(0, min(int(math.Floor(math.Log(size)/math.Log(1000))), len(units)-1))
	// The logarithm ratio can land just below an integer at exact powers.
	if exp < len(units)-1 && size >= math.Pow(1000, float64(exp+1)) {
		exp++
	}
	scaled := size / math.Pow(1000, float64(exp))

	// Round through a two-decimal string so values like 1.0249999 settle.
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(scaled, 'f', 2, 64), 64)
	return sign + humanize.Ftoa(rounded) + " " + units[exp]
}

// ParseBytes parses a decimal number of bytes, multiplies it by scale and
// formats the result with Bytes. NaN, infinite and overflowing sizes are
// rejected.
func ParseBytes(s string, scale float64) (string, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", false
	}
	size := f * scale
	if math.IsNaN(size) || math.IsInf(size, 0) {
		return "", false
	}
	return Bytes(size), true
}

// DateLayout is the layout used for firmware release dates.
const DateLayout = time.RFC1123Z

// Date formats t with DateLayout in UTC. The zero time formats as "".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}
