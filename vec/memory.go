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

import "fmt"

// This file provides loads, stores and lane initializers.
// A short source or destination slice is a shape mismatch and panics.

func checkLen(op string, got, want int) {
	if got < want {
		panic(fmt.Sprintf("vec.%s: slice has %d elements, need %d", op, got, want))
	}
}

// LoadU8x16 loads 16 lanes from src (vld1q_u8).
// src must hold at least 16 elements; extra elements are ignored.
func LoadU8x16(src []uint8) Uint8x16 {
	checkLen("LoadU8x16", len(src), 16)
	var v Uint8x16
	copy(v[:], src)
	return v
}

// LoadS8x16 loads 16 signed lanes from src (vld1q_s8).
func LoadS8x16(src []int8) Int8x16 {
	checkLen("LoadS8x16", len(src), 16)
	var v Int8x16
	copy(v[:], src)
	return v
}

// LoadU16x8 loads 8 lanes from src (vld1q_u16).
func LoadU16x8(src []uint16) Uint16x8 {
	checkLen("LoadU16x8", len(src), 8)
	var v Uint16x8
	copy(v[:], src)
	return v
}

// LoadU32x4 loads 4 lanes from src (vld1q_u32).
func LoadU32x4(src []uint32) Uint32x4 {
	checkLen("LoadU32x4", len(src), 4)
	var v Uint32x4
	copy(v[:], src)
	return v
}

// Store writes all 16 lanes to dst (vst1q_u8).
func (v Uint8x16) Store(dst []uint8) {
	checkLen("Uint8x16.Store", len(dst), 16)
	copy(dst, v[:])
}

// Store writes all 16 lanes to dst (vst1q_s8).
func (v Int8x16) Store(dst []int8) {
	checkLen("Int8x16.Store", len(dst), 16)
	copy(dst, v[:])
}

// Store writes all 8 lanes to dst (vst1q_u16).
func (v Uint16x8) Store(dst []uint16) {
	checkLen("Uint16x8.Store", len(dst), 8)
	copy(dst, v[:])
}

// Store writes all 4 lanes to dst (vst1q_u32).
func (v Uint32x4) Store(dst []uint32) {
	checkLen("Uint32x4.Store", len(dst), 4)
	copy(dst, v[:])
}

// SetU8x16 creates a vector with all lanes set to the same value (vdupq_n_u8).
func SetU8x16(value uint8) Uint8x16 {
	var v Uint8x16
	for i := range v {
		v[i] = value
	}
	return v
}

// SetS8x16 creates a signed vector with all lanes set to value (vdupq_n_s8).
func SetS8x16(value int8) Int8x16 {
	var v Int8x16
	for i := range v {
		v[i] = value
	}
	return v
}

// SetU16x8 creates a vector with all lanes set to value (vdupq_n_u16).
func SetU16x8(value uint16) Uint16x8 {
	var v Uint16x8
	for i := range v {
		v[i] = value
	}
	return v
}

// IotaU8x16 returns [start, start+1, ..., start+15], wrapping modulo 256.
func IotaU8x16(start uint8) Uint8x16 {
	var v Uint8x16
	for i := range v {
		v[i] = start + uint8(i)
	}
	return v
}
