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

package main

import (
	"github.com/go-highway/neon128/report"
	"github.com/go-highway/neon128/vec"
)

// Demo operands. data0 and data1 are the classic tutorial vectors; mixed
// and other exercise the wrap, saturate and compare edges; counts covers
// positive, negative and out-of-range shift amounts.
var (
	data0  = vec.IotaU8x16(0)
	data1  = vec.IotaU8x16(16)
	mixed  = vec.Uint8x16{0, 1, 7, 15, 16, 100, 127, 128, 129, 200, 250, 255, 3, 64, 42, 170}
	other  = vec.Uint8x16{0, 255, 9, 15, 240, 100, 1, 128, 127, 100, 10, 255, 5, 64, 24, 85}
	counts = vec.Int8x16{0, 1, -1, 2, -2, 7, -7, 8, -8, 9, -9, 127, -128, 3, -3, -4}
)

// section is one group of demonstrations.
type section struct {
	name string
	doc  string
	run  func(w *report.Writer)
}

var sections = []section{
	{"arith", "wrapping and halving add/subtract", runArith},
	{"saturate", "saturating add/subtract, absolute difference, max, min", runSaturate},
	{"multiply", "multiply, multiply-accumulate, multiply-subtract", runMultiply},
	{"compare", "lane comparisons and bit tests", runCompare},
	{"pairwise", "pairwise widening add and add-accumulate", runPairwise},
	{"shift", "variable and immediate shifts", runShift},
	{"bits", "not, leading zeros, population count", runBits},
	{"logic", "and, or, xor, and-not, or-not, bit select", runLogic},
	{"permute", "extract, reverse, transpose, zip, unzip", runPermute},
	{"cast", "reinterpret casts, widen and narrow", runCast},
}

func findSection(name string) (section, bool) {
	for _, s := range sections {
		if s.name == name {
			return s, true
		}
	}
	return section{}, false
}

func runArith(w *report.Writer) {
	w.Title("addition 8-bit integer (x16)")
	w.Binary("+", data0, data1, vec.Add(data0, data1), report.Decimal)

	w.Title("wrapping addition")
	w.Binary("+", mixed, other, vec.Add(mixed, other), report.Decimal)

	w.Title("halving addition")
	w.Binary("+>>1", mixed, other, vec.HalvingAdd(mixed, other), report.Decimal)

	w.Title("rounding halving addition")
	w.Binary("+>>1r", mixed, other, vec.RoundingHalvingAdd(mixed, other), report.Decimal)

	w.Title("subtraction")
	w.Binary("-", data1, data0, vec.Sub(data1, data0), report.Decimal)

	w.Title("wrapping subtraction")
	w.Binary("-", mixed, other, vec.Sub(mixed, other), report.Decimal)

	w.Title("halving subtraction")
	w.Binary("->>1", mixed, other, vec.HalvingSub(mixed, other), report.Decimal)
}

func runSaturate(w *report.Writer) {
	w.Title("saturating addition")
	w.Binary("+sat", mixed, other, vec.SaturatedAdd(mixed, other), report.Decimal)

	w.Title("saturating subtraction")
	w.Binary("-sat", mixed, other, vec.SaturatedSub(mixed, other), report.Decimal)

	w.Title("absolute difference")
	w.Binary("|-|", mixed, other, vec.AbsDiff(mixed, other), report.Decimal)

	w.Title("maximum")
	w.Binary("max", mixed, other, vec.Max(mixed, other), report.Decimal)

	w.Title("minimum")
	w.Binary("min", mixed, other, vec.Min(mixed, other), report.Decimal)
}

func runMultiply(w *report.Writer) {
	w.Title("multiplication")
	w.Binary("*", data0, data1, vec.Mul(data0, data1), report.Decimal)

	acc := vec.SetU8x16(10)
	w.Title("multiply-accumulate")
	w.Ternary("+", "*", acc, data0, data1, vec.MulAdd(acc, data0, data1), report.Decimal)

	w.Title("multiply-subtract")
	w.Ternary("-", "*", acc, data0, data1, vec.MulSub(acc, data0, data1), report.Decimal)
}

func runCompare(w *report.Writer) {
	w.Title("compare equal")
	w.Binary("==", mixed, other, vec.Equal(mixed, other), report.Hex)

	w.Title("compare greater than or equal")
	w.Binary(">=", mixed, other, vec.GreaterEqual(mixed, other), report.Hex)

	w.Title("compare less than or equal")
	w.Binary("<=", mixed, other, vec.LessEqual(mixed, other), report.Hex)

	w.Title("compare greater than")
	w.Binary(">", mixed, other, vec.GreaterThan(mixed, other), report.Hex)

	w.Title("compare less than")
	w.Binary("<", mixed, other, vec.LessThan(mixed, other), report.Hex)

	w.Title("test bits")
	w.Binary("&?", mixed, other, vec.TestBits(mixed, other), report.Hex)
}

func runPairwise(w *report.Writer) {
	w.Title("pairwise addition (widening)")
	w.Widened(data0, vec.PairwiseAdd(data0), report.Decimal)

	acc := vec.SetU16x8(1000)
	w.Title("pairwise add and accumulate")
	w.Accumulated(acc, mixed, vec.PairwiseAddAccumulate(acc, mixed), report.Decimal)
}

func runShift(w *report.Writer) {
	w.Title("shift left")
	w.Shift("<<", mixed, counts, vec.ShiftLeft(mixed, counts), report.Decimal)

	w.Title("rounding shift left")
	w.Shift("<<r", mixed, counts, vec.RoundingShiftLeft(mixed, counts), report.Decimal)

	w.Title("saturating shift left")
	w.Shift("<<sat", mixed, counts, vec.SaturatedShiftLeft(mixed, counts), report.Decimal)

	w.Title("saturating rounding shift left")
	w.Shift("<<sat,r", mixed, counts, vec.SaturatedRoundingShiftLeft(mixed, counts), report.Decimal)

	const n = 3
	w.Title("shift left by immediate")
	w.Shift("<<", mixed, vec.SetS8x16(n), vec.ShiftLeftN(mixed, n), report.Hex)

	w.Title("shift right by immediate")
	w.Shift(">>", mixed, vec.SetS8x16(n), vec.ShiftRightN(mixed, n), report.Hex)
}

func runBits(w *report.Writer) {
	w.Title("bitwise not")
	w.Unary("~", mixed, vec.Not(mixed), report.Hex)

	w.Title("count leading zeros")
	w.Unary("clz ", mixed, vec.LeadingZeroCount(mixed), report.Decimal)

	w.Title("population count")
	w.Unary("popcount ", mixed, vec.PopCount(mixed), report.Decimal)
}

func runLogic(w *report.Writer) {
	w.Title("bitwise and")
	w.Binary("&", mixed, other, vec.And(mixed, other), report.Hex)

	w.Title("bitwise or")
	w.Binary("|", mixed, other, vec.Or(mixed, other), report.Hex)

	w.Title("bitwise xor")
	w.Binary("^", mixed, other, vec.Xor(mixed, other), report.Hex)

	w.Title("and-not (~a & b)")
	w.Binary("&~", mixed, other, vec.AndNot(mixed, other), report.Hex)

	w.Title("or-not (~a | b)")
	w.Binary("|~", mixed, other, vec.OrNot(mixed, other), report.Hex)

	sel := vec.LessThan(mixed, other)
	w.Title("bit select (b where sel, else a)")
	w.Table(
		report.U8Column("sel", sel, report.Hex),
		report.U8Column("a", mixed, report.Hex),
		report.U8Column("b", other, report.Hex),
		report.U8Column("result", vec.BitSelect(sel, mixed, other), report.Hex),
	)
}

func runPermute(w *report.Writer) {
	const k = 3
	w.Title("vector extract (offset 3)")
	w.Table(
		report.U8Column("a", data0, report.Decimal),
		report.U8Column("b", data1, report.Decimal),
		report.U8Column("ext", vec.Extract(data0, data1, k), report.Decimal),
	)

	w.Title("reverse within blocks")
	w.Table(
		report.U8Column("v", data0, report.Decimal),
		report.U8Column("rev64", vec.Reverse64(data0), report.Decimal),
		report.U8Column("rev32", vec.Reverse32(data0), report.Decimal),
		report.U8Column("rev16", vec.Reverse16(data0), report.Decimal),
		report.U8Column("rev", vec.Reverse(data0), report.Decimal),
	)

	trn := vec.Transpose(data0, data1)
	zip := vec.Zip(data0, data1)
	uzp := vec.Unzip(data0, data1)
	w.Title("transpose, zip, unzip")
	w.Table(
		report.U8Column("a", data0, report.Decimal),
		report.U8Column("b", data1, report.Decimal),
		report.U8Column("trn.0", trn[0], report.Decimal),
		report.U8Column("trn.1", trn[1], report.Decimal),
		report.U8Column("zip.0", zip[0], report.Decimal),
		report.U8Column("zip.1", zip[1], report.Decimal),
		report.U8Column("uzp.0", uzp[0], report.Decimal),
		report.U8Column("uzp.1", uzp[1], report.Decimal),
	)

	w.Title("combine halves")
	w.Table(
		report.U8Column("lo|lo", vec.ConcatLowerLower(data0, data1), report.Decimal),
		report.U8Column("hi|hi", vec.ConcatUpperUpper(data0, data1), report.Decimal),
	)
}

func runCast(w *report.Writer) {
	w.Title("reinterpret cast")
	w.Table(
		report.U8Column("u8", data0, report.Hex),
		report.U16Column("u16", data0.AsU16x8(), report.Hex),
		report.U32Column("u32", data0.AsU32x4(), report.Hex),
	)

	back := data0.AsU32x4().AsU8x16()
	w.Title("reinterpret round trip")
	w.Table(
		report.U8Column("u8", data0, report.Decimal),
		report.U8Column("u32->u8", back, report.Decimal),
		report.U8Column("equal", vec.Equal(data0, back), report.Hex),
	)

	lo := vec.WidenLower(mixed)
	hi := vec.WidenUpper(mixed)
	w.Title("widen and narrow")
	w.Table(
		report.U8Column("v", mixed, report.Decimal),
		report.U16Column("lower", lo, report.Decimal),
		report.U16Column("upper", hi, report.Decimal),
		report.U8Column("narrow", vec.NarrowU16x8(lo, hi), report.Decimal),
	)
}
