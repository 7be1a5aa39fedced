// Copyright 2025 go-highway Authors
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

package vec

// This file provides saturated arithmetic and related operations.
// Saturated operations clamp results to [0, 255] instead of wrapping.

// SaturatedAdd performs element-wise addition with saturation (vqaddq_u8).
// For example: 250 + 10 = 255 (not 4).
func SaturatedAdd(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = saturatedAdd(a[i], b[i])
	}
	return r
}

// SaturatedSub performs element-wise subtraction with saturation (vqsubq_u8).
// For example: 10 - 20 = 0 (not 246).
func SaturatedSub(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = saturatedSub(a[i], b[i])
	}
	return r
}

// AbsDiff computes |a - b| for each element (vabdq_u8).
func AbsDiff(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		if a[i] > b[i] {
			r[i] = a[i] - b[i]
		} else {
			r[i] = b[i] - a[i]
		}
	}
	return r
}

func saturatedAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func saturatedSub(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}
