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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReinterpretLittleEndian(t *testing.T) {
	v := IotaU8x16(0)

	wide16 := v.AsU16x8()
	want16 := Uint16x8{0x0100, 0x0302, 0x0504, 0x0706, 0x0908, 0x0B0A, 0x0D0C, 0x0F0E}
	if diff := cmp.Diff(want16, wide16); diff != "" {
		t.Errorf("AsU16x8() mismatch (-want +got):\n%s", diff)
	}

	wide32 := v.AsU32x4()
	want32 := Uint32x4{0x03020100, 0x07060504, 0x0B0A0908, 0x0F0E0D0C}
	if diff := cmp.Diff(want32, wide32); diff != "" {
		t.Errorf("AsU32x4() mismatch (-want +got):\n%s", diff)
	}
}

func TestReinterpretRoundTrip(t *testing.T) {
	inputs := []Uint8x16{
		IotaU8x16(0),
		IotaU8x16(240),
		SetU8x16(0xFF),
		{0x80, 0, 0, 0x7F, 1, 2, 3, 4, 0xAA, 0x55, 0xAA, 0x55, 9, 8, 7, 6},
	}
	for _, v := range inputs {
		if got := v.AsU16x8().AsU8x16(); got != v {
			t.Errorf("AsU16x8().AsU8x16() = %v, want %v", got, v)
		}
		if got := v.AsU32x4().AsU8x16(); got != v {
			t.Errorf("AsU32x4().AsU8x16() = %v, want %v", got, v)
		}
		if got := v.AsS8x16().AsU8x16(); got != v {
			t.Errorf("AsS8x16().AsU8x16() = %v, want %v", got, v)
		}
		if got := v.AsU16x8().AsU32x4().AsU16x8(); got != v.AsU16x8() {
			t.Errorf("Uint16x8 -> Uint32x4 -> Uint16x8 = %v, want %v", got, v.AsU16x8())
		}
		if got := v.AsU32x4().AsU16x8(); got != v.AsU16x8() {
			t.Errorf("AsU32x4().AsU16x8() = %v, want %v", got, v.AsU16x8())
		}
	}

	w := Uint32x4{0xDEADBEEF, 0, 1, 0xFFFFFFFF}
	if got := w.AsU8x16().AsU32x4(); got != w {
		t.Errorf("Uint32x4 round trip = %v, want %v", got, w)
	}
}

func TestAsS8x16(t *testing.T) {
	v := LoadU8x16([]uint8{0, 1, 127, 128, 129, 255, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	s := v.AsS8x16()
	want := Int8x16{0, 1, 127, -128, -127, -1}
	if s != want {
		t.Errorf("AsS8x16() = %v, want %v", s, want)
	}
}

func TestWidenNarrow(t *testing.T) {
	v := IotaU8x16(248)
	lo := WidenLower(v)
	hi := WidenUpper(v)

	wantLo := Uint16x8{248, 249, 250, 251, 252, 253, 254, 255}
	wantHi := Uint16x8{0, 1, 2, 3, 4, 5, 6, 7}
	if diff := cmp.Diff(wantLo, lo); diff != "" {
		t.Errorf("WidenLower() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantHi, hi); diff != "" {
		t.Errorf("WidenUpper() mismatch (-want +got):\n%s", diff)
	}

	if got := NarrowU16x8(lo, hi); got != v {
		t.Errorf("NarrowU16x8(WidenLower, WidenUpper) = %v, want %v", got, v)
	}

	// Narrowing truncates.
	got := NarrowU16x8(SetU16x8(0x1234), SetU16x8(0x00FF))
	for i := range got {
		want := uint8(0x34)
		if i >= 8 {
			want = 0xFF
		}
		if got[i] != want {
			t.Errorf("NarrowU16x8: lane %d: got %#x, want %#x", i, got[i], want)
		}
	}
}

func TestPairwiseAddMatchesWiden(t *testing.T) {
	v := LoadU8x16([]uint8{255, 255, 1, 2, 200, 100, 0, 0, 9, 9, 128, 128, 17, 34, 250, 6})
	unz := Unzip(v, v)
	// Even and odd lanes of v land in the lower halves of the unzipped pair.
	got := PairwiseAdd(v)
	evens := WidenLower(unz[0])
	odds := WidenLower(unz[1])
	for i := range got {
		if want := evens[i] + odds[i]; got[i] != want {
			t.Errorf("PairwiseAdd: lane %d: got %d, want %d", i, got[i], want)
		}
	}
}
