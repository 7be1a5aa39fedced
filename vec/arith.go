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

// This file provides the wrapping lane arithmetic of 8-bit vectors.
// Mnemonics decode as: v = vector, q = 128-bit register, u8 = unsigned
// 8-bit lanes, h = halving, r = rounding, ml = multiply-accumulate.

// Add performs element-wise addition modulo 256 (vaddq_u8).
func Add(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

// HalvingAdd computes (a + b) >> 1 without overflow, truncating (vhaddq_u8).
func HalvingAdd(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = uint8((uint16(a[i]) + uint16(b[i])) >> 1)
	}
	return r
}

// RoundingHalvingAdd computes (a + b + 1) >> 1 without overflow (vrhaddq_u8).
// For example: 255 + 0 = 128, where HalvingAdd gives 127.
func RoundingHalvingAdd(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = uint8((uint16(a[i]) + uint16(b[i]) + 1) >> 1)
	}
	return r
}

// Sub performs element-wise subtraction modulo 256 (vsubq_u8).
func Sub(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

// HalvingSub computes (a - b) >> 1 on the 9-bit signed difference and keeps
// the low 8 bits (vhsubq_u8). For example: 0 - 1 = 0xFF, 10 - 4 = 3.
func HalvingSub(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = uint8((int16(a[i]) - int16(b[i])) >> 1)
	}
	return r
}

// Mul performs element-wise multiplication modulo 256 (vmulq_u8).
func Mul(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

// MulAdd computes acc + a*b modulo 256 (vmlaq_u8).
func MulAdd(acc, a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = acc[i] + a[i]*b[i]
	}
	return r
}

// MulSub computes acc - a*b modulo 256 (vmlsq_u8).
func MulSub(acc, a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = acc[i] - a[i]*b[i]
	}
	return r
}

// Max returns the element-wise maximum (vmaxq_u8).
func Max(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = max(a[i], b[i])
	}
	return r
}

// Min returns the element-wise minimum (vminq_u8).
func Min(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = min(a[i], b[i])
	}
	return r
}

// PairwiseAdd adds adjacent lanes into 16-bit lanes (vpaddlq_u8).
// [0,1,2,3,...] -> [0+1, 2+3, ...]
func PairwiseAdd(v Uint8x16) Uint16x8 {
	var r Uint16x8
	for i := range r {
		r[i] = uint16(v[2*i]) + uint16(v[2*i+1])
	}
	return r
}

// PairwiseAddAccumulate adds adjacent lanes of v into the 16-bit
// accumulator, wrapping modulo 65536 (vpadalq_u8).
func PairwiseAddAccumulate(acc Uint16x8, v Uint8x16) Uint16x8 {
	var r Uint16x8
	for i := range r {
		r[i] = acc[i] + uint16(v[2*i]) + uint16(v[2*i+1])
	}
	return r
}
