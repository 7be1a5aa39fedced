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

import "encoding/binary"

// Reinterpret casts read the same 128 bits under a different lane width
// (vreinterpretq_*). Byte order within a wide lane is little-endian, so
// lane 0 of a Uint16x8 is bytes 0 and 1 of the Uint8x16 with byte 0 low.

// AsU16x8 reinterprets 16 bytes as 8 16-bit lanes (vreinterpretq_u16_u8).
func (v Uint8x16) AsU16x8() Uint16x8 {
	var r Uint16x8
	for i := range r {
		r[i] = binary.LittleEndian.Uint16(v[2*i:])
	}
	return r
}

// AsU32x4 reinterprets 16 bytes as 4 32-bit lanes (vreinterpretq_u32_u8).
func (v Uint8x16) AsU32x4() Uint32x4 {
	var r Uint32x4
	for i := range r {
		r[i] = binary.LittleEndian.Uint32(v[4*i:])
	}
	return r
}

// AsS8x16 reinterprets unsigned lanes as signed lanes (vreinterpretq_s8_u8).
func (v Uint8x16) AsS8x16() Int8x16 {
	var r Int8x16
	for i := range r {
		r[i] = int8(v[i])
	}
	return r
}

// AsU8x16 reinterprets 8 16-bit lanes as 16 bytes (vreinterpretq_u8_u16).
func (v Uint16x8) AsU8x16() Uint8x16 {
	var r Uint8x16
	for i, x := range v {
		binary.LittleEndian.PutUint16(r[2*i:], x)
	}
	return r
}

// AsU32x4 reinterprets 8 16-bit lanes as 4 32-bit lanes
// (vreinterpretq_u32_u16).
func (v Uint16x8) AsU32x4() Uint32x4 {
	return v.AsU8x16().AsU32x4()
}

// AsU8x16 reinterprets 4 32-bit lanes as 16 bytes (vreinterpretq_u8_u32).
func (v Uint32x4) AsU8x16() Uint8x16 {
	var r Uint8x16
	for i, x := range v {
		binary.LittleEndian.PutUint32(r[4*i:], x)
	}
	return r
}

// AsU16x8 reinterprets 4 32-bit lanes as 8 16-bit lanes
// (vreinterpretq_u16_u32).
func (v Uint32x4) AsU16x8() Uint16x8 {
	return v.AsU8x16().AsU16x8()
}

// AsU8x16 reinterprets signed lanes as unsigned lanes (vreinterpretq_u8_s8).
func (v Int8x16) AsU8x16() Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = uint8(v[i])
	}
	return r
}

// WidenLower zero-extends the lower 8 lanes to 16 bits (vmovl_u8).
func WidenLower(v Uint8x16) Uint16x8 {
	var r Uint16x8
	for i := range r {
		r[i] = uint16(v[i])
	}
	return r
}

// WidenUpper zero-extends the upper 8 lanes to 16 bits (vmovl_high_u8).
func WidenUpper(v Uint8x16) Uint16x8 {
	var r Uint16x8
	for i := range r {
		r[i] = uint16(v[8+i])
	}
	return r
}

// NarrowU16x8 truncates two 16-bit vectors to bytes and concatenates them,
// lo first (vmovn_high_u16(vmovn_u16(lo), hi)).
func NarrowU16x8(lo, hi Uint16x8) Uint8x16 {
	var r Uint8x16
	for i := range lo {
		r[i] = uint8(lo[i])
		r[8+i] = uint8(hi[i])
	}
	return r
}
