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

import "testing"

// forAllPairs calls check once per 16-lane batch so that every (a, b) pair
// of 8-bit values is covered exactly once: a is broadcast, b walks 16
// consecutive values.
func forAllPairs(check func(a, b Uint8x16)) {
	for x := 0; x < 256; x++ {
		a := SetU8x16(uint8(x))
		for base := 0; base < 256; base += Lanes8 {
			check(a, IotaU8x16(uint8(base)))
		}
	}
}

func TestArithExhaustive(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b Uint8x16) Uint8x16
		ref  func(a, b int) int
	}{
		{"Add", Add, func(a, b int) int { return (a + b) & 0xFF }},
		{"HalvingAdd", HalvingAdd, func(a, b int) int { return (a + b) >> 1 }},
		{"RoundingHalvingAdd", RoundingHalvingAdd, func(a, b int) int { return (a + b + 1) >> 1 }},
		{"Sub", Sub, func(a, b int) int { return (a - b) & 0xFF }},
		{"HalvingSub", HalvingSub, func(a, b int) int { return ((a - b) >> 1) & 0xFF }},
		{"Mul", Mul, func(a, b int) int { return (a * b) & 0xFF }},
		{"Max", Max, func(a, b int) int { return max(a, b) }},
		{"Min", Min, func(a, b int) int { return min(a, b) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failures := 0
			forAllPairs(func(a, b Uint8x16) {
				got := tt.op(a, b)
				for i := range got {
					want := tt.ref(int(a[i]), int(b[i]))
					if int(got[i]) != want && failures < 10 {
						failures++
						t.Errorf("%s(%d, %d): got %d, want %d", tt.name, a[i], b[i], got[i], want)
					}
				}
			})
		})
	}
}

func TestHalvingAddNoOverflow(t *testing.T) {
	a := LoadU8x16([]uint8{255, 255, 254, 0, 1, 1, 128, 127, 200, 100, 7, 8, 0, 255, 3, 4})
	b := LoadU8x16([]uint8{255, 0, 255, 0, 0, 1, 128, 128, 201, 101, 8, 7, 1, 254, 4, 3})

	truncated := HalvingAdd(a, b)
	rounded := RoundingHalvingAdd(a, b)

	wantTrunc := []uint8{255, 127, 254, 0, 0, 1, 128, 127, 200, 100, 7, 7, 0, 254, 3, 3}
	wantRound := []uint8{255, 128, 255, 0, 1, 1, 128, 128, 201, 101, 8, 8, 1, 255, 4, 4}
	for i := range wantTrunc {
		if truncated[i] != wantTrunc[i] {
			t.Errorf("HalvingAdd: lane %d: got %d, want %d", i, truncated[i], wantTrunc[i])
		}
		if rounded[i] != wantRound[i] {
			t.Errorf("RoundingHalvingAdd: lane %d: got %d, want %d", i, rounded[i], wantRound[i])
		}
	}
}

func TestHalvingSubNegative(t *testing.T) {
	a := SetU8x16(0)
	b := IotaU8x16(0)
	result := HalvingSub(a, b)

	// (0 - b) >> 1 is computed on the signed 9-bit difference.
	expected := []uint8{0, 0xFF, 0xFF, 0xFE, 0xFE, 0xFD, 0xFD, 0xFC, 0xFC, 0xFB, 0xFB, 0xFA, 0xFA, 0xF9, 0xF9, 0xF8}
	for i := range expected {
		if result[i] != expected[i] {
			t.Errorf("HalvingSub: lane %d: got %#x, want %#x", i, result[i], expected[i])
		}
	}
}

func TestMulAddMulSub(t *testing.T) {
	acc := SetU8x16(100)
	a := IotaU8x16(0)
	b := SetU8x16(20)

	mla := MulAdd(acc, a, b)
	mls := MulSub(acc, a, b)
	for i := range mla {
		wantAdd := uint8(100 + i*20)
		wantSub := uint8(100 - i*20)
		if mla[i] != wantAdd {
			t.Errorf("MulAdd: lane %d: got %d, want %d", i, mla[i], wantAdd)
		}
		if mls[i] != wantSub {
			t.Errorf("MulSub: lane %d: got %d, want %d", i, mls[i], wantSub)
		}
	}

	// MulSub undoes MulAdd.
	if back := MulSub(mla, a, b); back != acc {
		t.Errorf("MulSub(MulAdd(acc, a, b), a, b) = %v, want %v", back, acc)
	}
}

func TestPairwiseAdd(t *testing.T) {
	v := IotaU8x16(0)
	result := PairwiseAdd(v)

	expected := Uint16x8{1, 5, 9, 13, 17, 21, 25, 29}
	if result != expected {
		t.Errorf("PairwiseAdd(%v) = %v, want %v", v, result, expected)
	}

	// Sums do not wrap at 8 bits.
	wide := PairwiseAdd(SetU8x16(255))
	if wide != SetU16x8(510) {
		t.Errorf("PairwiseAdd(255...) = %v, want all 510", wide)
	}
}

func TestPairwiseAddAccumulate(t *testing.T) {
	acc := Uint16x8{1000, 0, 65535, 7, 100, 200, 300, 400}
	v := IotaU8x16(0)
	result := PairwiseAddAccumulate(acc, v)

	expected := Uint16x8{1001, 5, 8, 20, 117, 221, 325, 429}
	if result != expected {
		t.Errorf("PairwiseAddAccumulate = %v, want %v", result, expected)
	}

	if got := PairwiseAddAccumulate(Uint16x8{}, v); got != PairwiseAdd(v) {
		t.Errorf("PairwiseAddAccumulate with zero accumulator = %v, want %v", got, PairwiseAdd(v))
	}
}
