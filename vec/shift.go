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

// This file provides per-lane variable shifts and immediate shifts.
//
// The variable shifts take a signed count per lane: a positive count shifts
// left, a negative count shifts right logically. Bits shifted past the lane
// are lost and zeros fill in, so any count with magnitude 8 or more clears
// the lane unless a saturating or rounding rule says otherwise.

// ShiftLeft shifts each lane of a by the signed count in the matching lane
// of b (vshlq_u8).
func ShiftLeft(a Uint8x16, b Int8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = shiftLane(a[i], b[i])
	}
	return r
}

// RoundingShiftLeft is ShiftLeft where right shifts round to nearest by
// adding the highest discarded bit (vrshlq_u8).
// For example: 7 shifted by -1 gives 4, not 3.
func RoundingShiftLeft(a Uint8x16, b Int8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = roundingShiftLane(a[i], b[i])
	}
	return r
}

// SaturatedShiftLeft is ShiftLeft where left shifts clamp at 255 instead of
// dropping bits (vqshlq_u8). For example: 0x81 shifted by 1 gives 0xFF.
func SaturatedShiftLeft(a Uint8x16, b Int8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		if b[i] >= 0 {
			r[i] = saturatedShiftLane(a[i], b[i])
		} else {
			r[i] = shiftLane(a[i], b[i])
		}
	}
	return r
}

// SaturatedRoundingShiftLeft combines the saturating rule for left shifts
// with the rounding rule for right shifts (vqrshlq_u8).
func SaturatedRoundingShiftLeft(a Uint8x16, b Int8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		if b[i] >= 0 {
			r[i] = saturatedShiftLane(a[i], b[i])
		} else {
			r[i] = roundingShiftLane(a[i], b[i])
		}
	}
	return r
}

// ShiftLeftN shifts every lane left by the immediate n (vshlq_n_u8).
// n must be in [0, 8].
func ShiftLeftN(a Uint8x16, n int) Uint8x16 {
	checkShiftImm("ShiftLeftN", n)
	var r Uint8x16
	for i := range r {
		r[i] = a[i] << n
	}
	return r
}

// ShiftRightN shifts every lane right logically by the immediate n
// (vshrq_n_u8). n must be in [0, 8].
func ShiftRightN(a Uint8x16, n int) Uint8x16 {
	checkShiftImm("ShiftRightN", n)
	var r Uint8x16
	for i := range r {
		r[i] = a[i] >> n
	}
	return r
}

func checkShiftImm(op string, n int) {
	if n < 0 || n > 8 {
		panic(fmt.Sprintf("vec.%s: shift %d out of range [0, 8]", op, n))
	}
}

func shiftLane(a uint8, s int8) uint8 {
	if s >= 0 {
		return a << uint(s)
	}
	return a >> uint(-int(s))
}

func roundingShiftLane(a uint8, s int8) uint8 {
	if s >= 0 {
		return a << uint(s)
	}
	n := uint(-int(s))
	if n > 8 {
		// The highest discarded bit is above the lane.
		return 0
	}
	return uint8((uint16(a) + 1<<(n-1)) >> n)
}

func saturatedShiftLane(a uint8, s int8) uint8 {
	if a == 0 {
		return 0
	}
	if s >= 8 {
		return 255
	}
	w := uint16(a) << uint(s)
	if w > 255 {
		return 255
	}
	return uint8(w)
}
