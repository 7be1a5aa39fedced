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

import "math/bits"

// This file provides bitwise logic and bit counting operations.

// Not inverts every bit (vmvnq_u8).
func Not(a Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = ^a[i]
	}
	return r
}

// LeadingZeroCount counts the leading zero bits of each lane, 0..8 (vclzq_u8).
func LeadingZeroCount(a Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = uint8(bits.LeadingZeros8(a[i]))
	}
	return r
}

// PopCount counts the set bits of each lane, 0..8 (vcntq_u8).
func PopCount(a Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = uint8(bits.OnesCount8(a[i]))
	}
	return r
}

// And computes a & b (vandq_u8).
func And(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = a[i] & b[i]
	}
	return r
}

// Or computes a | b (vorrq_u8).
func Or(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = a[i] | b[i]
	}
	return r
}

// Xor computes a ^ b (veorq_u8).
func Xor(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = a[i] ^ b[i]
	}
	return r
}

// AndNot computes ^a & b.
// The first operand is the one inverted: AndNot(mask, v) clears the lanes
// of v selected by mask. vbicq_u8(v, mask) computes the same value.
func AndNot(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = ^a[i] & b[i]
	}
	return r
}

// OrNot computes ^a | b, inverting the first operand like AndNot.
// vornq_u8(b, a) computes the same value.
func OrNot(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = ^a[i] | b[i]
	}
	return r
}

// BitSelect is a per-bit multiplexer: each result bit comes from b where the
// matching bit of sel is 1 and from a where it is 0.
// vbslq_u8(sel, b, a) computes the same value.
func BitSelect(sel, a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = a[i]&^sel[i] | b[i]&sel[i]
	}
	return r
}
