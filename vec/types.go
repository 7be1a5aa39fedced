// Package vec provides the lane algebra of 128-bit vector registers.
//
// A vector is a fixed-size array value: 16 lanes of uint8, with 8x16-bit and
// 4x32-bit reinterpretation forms. Every operation takes vectors by value and
// returns a new vector, so there is no aliasing and no allocation. The
// operations follow the per-lane semantics of the ARM NEON integer
// instructions they are named after.
//
// Basic usage:
//
//	import "github.com/go-highway/neon128/vec"
//
//	a := vec.LoadU8x16(data0)
//	b := vec.LoadU8x16(data1)
//	sum := vec.Add(a, b)
//	sum.Store(result)
package vec

import "fmt"

// Lanes8 is the number of 8-bit lanes in a 128-bit vector.
const Lanes8 = 16

// Uint8x16 is a 128-bit vector of 16 unsigned 8-bit lanes.
type Uint8x16 [16]uint8

// Int8x16 is a 128-bit vector of 16 signed 8-bit lanes.
// It is used as the per-lane shift count operand.
type Int8x16 [16]int8

// Uint16x8 is a 128-bit vector of 8 unsigned 16-bit lanes.
type Uint16x8 [8]uint16

// Uint32x4 is a 128-bit vector of 4 unsigned 32-bit lanes.
type Uint32x4 [4]uint32

// Uint8x16x2 is a pair of vectors produced together by the structural
// permutes (Transpose, Zip, Unzip). Index 0 holds the first result.
type Uint8x16x2 [2]Uint8x16

// NumLanes returns the number of lanes (16).
func (v Uint8x16) NumLanes() int { return len(v) }

// NumLanes returns the number of lanes (16).
func (v Int8x16) NumLanes() int { return len(v) }

// NumLanes returns the number of lanes (8).
func (v Uint16x8) NumLanes() int { return len(v) }

// NumLanes returns the number of lanes (4).
func (v Uint32x4) NumLanes() int { return len(v) }

// String formats the lanes in index order, e.g. "[0 1 2 ... 15]".
func (v Uint8x16) String() string { return fmt.Sprint([16]uint8(v)) }

func (v Int8x16) String() string { return fmt.Sprint([16]int8(v)) }

func (v Uint16x8) String() string { return fmt.Sprint([8]uint16(v)) }

func (v Uint32x4) String() string { return fmt.Sprint([4]uint32(v)) }

// AllTrue reports whether every lane of a comparison result is 0xFF.
func AllTrue(m Uint8x16) bool {
	for _, x := range m {
		if x != 0xFF {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane is non-zero.
func AnyTrue(m Uint8x16) bool {
	for _, x := range m {
		if x != 0 {
			return true
		}
	}
	return false
}

// CountTrue returns the number of non-zero lanes.
func CountTrue(m Uint8x16) int {
	count := 0
	for _, x := range m {
		if x != 0 {
			count++
		}
	}
	return count
}
