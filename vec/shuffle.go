package vec

import "fmt"

// This file provides the structural permutes: extract, reversals and the
// two-vector transpose, zip and unzip.

// Extract returns 16 contiguous lanes starting at lane k of the 32-lane
// concatenation a ++ b (vextq_u8). k must be in [0, 15]; Extract(a, b, 0)
// is a.
// [a0..a15], [b0..b15], k=3 -> [a3,...,a15,b0,b1,b2]
func Extract(a, b Uint8x16, k int) Uint8x16 {
	if k < 0 || k >= Lanes8 {
		panic(fmt.Sprintf("vec.Extract: offset %d out of range [0, 15]", k))
	}
	var r Uint8x16
	n := copy(r[:], a[k:])
	copy(r[n:], b[:k])
	return r
}

// Reverse reverses the order of all 16 lanes.
func Reverse(v Uint8x16) Uint8x16 {
	var r Uint8x16
	for i := range r {
		r[i] = v[Lanes8-1-i]
	}
	return r
}

// Reverse64 reverses the lanes within each 64-bit block (vrev64q_u8).
// [0,1,...,7,8,...,15] -> [7,6,...,0,15,...,8]
func Reverse64(v Uint8x16) Uint8x16 {
	return reverseBlocks(v, 8)
}

// Reverse32 reverses the lanes within each 32-bit block (vrev32q_u8).
// [0,1,2,3,4,5,6,7,...] -> [3,2,1,0,7,6,5,4,...]
func Reverse32(v Uint8x16) Uint8x16 {
	return reverseBlocks(v, 4)
}

// Reverse16 swaps adjacent lanes (vrev16q_u8).
// [0,1,2,3,...] -> [1,0,3,2,...]
func Reverse16(v Uint8x16) Uint8x16 {
	return reverseBlocks(v, 2)
}

func reverseBlocks(v Uint8x16, block int) Uint8x16 {
	var r Uint8x16
	for base := 0; base < Lanes8; base += block {
		for j := 0; j < block; j++ {
			r[base+j] = v[base+block-1-j]
		}
	}
	return r
}

// Transpose treats a and b as the rows of 2x2 blocks and transposes each
// block (vtrnq_u8).
//
//	out[0] = [a0,b0,a2,b2,...,a14,b14]
//	out[1] = [a1,b1,a3,b3,...,a15,b15]
//
// Transpose is its own inverse.
func Transpose(a, b Uint8x16) Uint8x16x2 {
	var r Uint8x16x2
	for i := 0; i < Lanes8; i += 2 {
		r[0][i] = a[i]
		r[0][i+1] = b[i]
		r[1][i] = a[i+1]
		r[1][i+1] = b[i+1]
	}
	return r
}

// Zip interleaves a and b (vzipq_u8).
//
//	out[0] = [a0,b0,a1,b1,...,a7,b7]
//	out[1] = [a8,b8,a9,b9,...,a15,b15]
func Zip(a, b Uint8x16) Uint8x16x2 {
	var r Uint8x16x2
	const half = Lanes8 / 2
	for i := 0; i < half; i++ {
		r[0][2*i] = a[i]
		r[0][2*i+1] = b[i]
		r[1][2*i] = a[half+i]
		r[1][2*i+1] = b[half+i]
	}
	return r
}

// Unzip deinterleaves the concatenation a ++ b (vuzpq_u8).
//
//	out[0] = [a0,a2,...,a14,b0,b2,...,b14]
//	out[1] = [a1,a3,...,a15,b1,b3,...,b15]
//
// Unzip(Zip(a, b)) returns the pair (a, b).
func Unzip(a, b Uint8x16) Uint8x16x2 {
	var r Uint8x16x2
	const half = Lanes8 / 2
	for i := 0; i < half; i++ {
		r[0][i] = a[2*i]
		r[1][i] = a[2*i+1]
		r[0][half+i] = b[2*i]
		r[1][half+i] = b[2*i+1]
	}
	return r
}

// ConcatLowerLower concatenates the lower halves of two vectors
// (vcombine_u8(vget_low_u8(a), vget_low_u8(b))).
// [a0..a15], [b0..b15] -> [a0..a7,b0..b7]
func ConcatLowerLower(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	copy(r[:8], a[:8])
	copy(r[8:], b[:8])
	return r
}

// ConcatUpperUpper concatenates the upper halves of two vectors
// (vcombine_u8(vget_high_u8(a), vget_high_u8(b))).
// [a0..a15], [b0..b15] -> [a8..a15,b8..b15]
func ConcatUpperUpper(a, b Uint8x16) Uint8x16 {
	var r Uint8x16
	copy(r[:8], a[8:])
	copy(r[8:], b[8:])
	return r
}
