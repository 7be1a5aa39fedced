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

// Comparisons return a mask vector: 0xFF in lanes where the predicate holds
// and 0x00 elsewhere. Masks compose with And, Or and BitSelect.

func maskOf(b bool) uint8 {
	if b {
		return 0xFF
	}
	return 0
}

// Equal compares a == b per lane (vceqq_u8).
func Equal(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = maskOf(a[i] == b[i])
	}
	return r
}

// GreaterEqual compares a >= b per lane (vcgeq_u8).
func GreaterEqual(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = maskOf(a[i] >= b[i])
	}
	return r
}

// LessEqual compares a <= b per lane (vcleq_u8).
func LessEqual(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = maskOf(a[i] <= b[i])
	}
	return r
}

// GreaterThan compares a > b per lane (vcgtq_u8).
func GreaterThan(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = maskOf(a[i] > b[i])
	}
	return r
}

// LessThan compares a < b per lane (vcltq_u8).
func LessThan(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = maskOf(a[i] < b[i])
	}
	return r
}

// TestBits sets a lane to 0xFF when a and b share at least one set bit
// (vtstq_u8).
func TestBits(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = maskOf(a[i]&b[i] != 0)
	}
	return r
}
