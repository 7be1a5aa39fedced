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

// Package report renders lane operations as console text: a title line per
// operation followed by one line per lane, or a table for the permutes.
//
// The output is for people, not for parsing.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/go-highway/neon128/vec"
)

// Format selects how lane values are printed.
type Format int

const (
	// Decimal prints lanes as unsigned decimal numbers.
	Decimal Format = iota
	// Hex prints lanes as 0x-prefixed, zero-padded upper-case hex.
	Hex
)

// String returns "dec" or "hex".
func (f Format) String() string {
	if f == Hex {
		return "hex"
	}
	return "dec"
}

// Writer renders report blocks to an io.Writer.
//
// Write errors are sticky: after the first failure every method is a no-op
// and Err returns that failure.
type Writer struct {
	out    io.Writer
	caser  cases.Caser
	force  *Format
	blocks int
	err    error
}

// Option configures a Writer.
type Option func(*Writer)

// WithFormat forces every block to use f regardless of the format the
// caller passes.
func WithFormat(f Format) Option {
	return func(w *Writer) {
		w.force = &f
	}
}

// NewWriter returns a Writer that renders to out.
func NewWriter(out io.Writer, opts ...Option) *Writer {
	w := &Writer{
		out:   out,
		caser: cases.Title(language.English),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintf(w.out, format, args...); err != nil {
		w.err = fmt.Errorf("report: %w", err)
	}
}

func (w *Writer) format(f Format) Format {
	if w.force != nil {
		return *w.force
	}
	return f
}

// Title starts a new block. Blocks are separated by a blank line and the
// name is title-cased: "saturating add" prints as "Saturating Add:".
func (w *Writer) Title(name string) {
	if w.blocks > 0 {
		w.printf("\n")
	}
	w.blocks++
	w.printf("%s:\n", w.caser.String(name))
}

// Binary prints "a OP b = r" for each lane.
func (w *Writer) Binary(op string, a, b, r vec.Uint8x16, f Format) {
	f = w.format(f)
	for i := range r {
		w.printf("%s %s %s = %s\n", u8(a[i], f), op, u8(b[i], f), u8(r[i], f))
	}
}

// Shift prints "a OP count = r" for each lane. Counts are always signed
// decimal.
func (w *Writer) Shift(op string, a vec.Uint8x16, count vec.Int8x16, r vec.Uint8x16, f Format) {
	f = w.format(f)
	for i := range r {
		w.printf("%s %s %d = %s\n", u8(a[i], f), op, count[i], u8(r[i], f))
	}
}

// Unary prints "OP a = r" for each lane.
func (w *Writer) Unary(op string, a, r vec.Uint8x16, f Format) {
	f = w.format(f)
	for i := range r {
		w.printf("%s%s = %s\n", op, u8(a[i], f), u8(r[i], f))
	}
}

// Ternary prints "c OP1 a OP2 b = r" for each lane, as used by the
// multiply-accumulate family.
func (w *Writer) Ternary(op1, op2 string, c, a, b, r vec.Uint8x16, f Format) {
	f = w.format(f)
	for i := range r {
		w.printf("%s %s %s %s %s = %s\n", u8(c[i], f), op1, u8(a[i], f), op2, u8(b[i], f), u8(r[i], f))
	}
}

// Widened prints "v[2i] + v[2i+1] = r[i]" for each wide lane.
func (w *Writer) Widened(v vec.Uint8x16, r vec.Uint16x8, f Format) {
	f = w.format(f)
	for i := range r {
		w.printf("%s + %s = %s\n", u8(v[2*i], f), u8(v[2*i+1], f), u16(r[i], f))
	}
}

// Accumulated prints "acc[i] + v[2i] + v[2i+1] = r[i]" for each wide lane.
func (w *Writer) Accumulated(acc vec.Uint16x8, v vec.Uint8x16, r vec.Uint16x8, f Format) {
	f = w.format(f)
	for i := range r {
		w.printf("%s + %s + %s = %s\n", u16(acc[i], f), u8(v[2*i], f), u8(v[2*i+1], f), u16(r[i], f))
	}
}

// Column is one named vector column of a Table.
type Column struct {
	Name  string
	Lanes []string
}

// U8Column formats the lanes of v as a table column.
func U8Column(name string, v vec.Uint8x16, f Format) Column {
	c := Column{Name: name, Lanes: make([]string, len(v))}
	for i, x := range v {
		c.Lanes[i] = u8(x, f)
	}
	return c
}

// U16Column formats the lanes of v as a table column.
func U16Column(name string, v vec.Uint16x8, f Format) Column {
	c := Column{Name: name, Lanes: make([]string, len(v))}
	for i, x := range v {
		c.Lanes[i] = u16(x, f)
	}
	return c
}

// U32Column formats the lanes of v as a table column.
func U32Column(name string, v vec.Uint32x4, f Format) Column {
	c := Column{Name: name, Lanes: make([]string, len(v))}
	for i, x := range v {
		c.Lanes[i] = u32(x, f)
	}
	return c
}

// Table prints one row per lane with a leading lane index column.
// Columns may have different lane counts; missing cells are left blank.
func (w *Writer) Table(cols ...Column) {
	if w.err != nil {
		return
	}
	rows := 0
	for _, c := range cols {
		rows = max(rows, len(c.Lanes))
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "lane")
	for _, c := range cols {
		fmt.Fprintf(tw, "\t%s", c.Name)
	}
	fmt.Fprintln(tw)
	for i := 0; i < rows; i++ {
		fmt.Fprint(tw, strconv.Itoa(i))
		for _, c := range cols {
			cell := ""
			if i < len(c.Lanes) {
				cell = c.Lanes[i]
			}
			fmt.Fprintf(tw, "\t%s", cell)
		}
		fmt.Fprintln(tw)
	}
	// Writes to a bytes.Buffer do not fail.
	_ = tw.Flush()
	w.printf("%s", buf.String())
}

func u8(x uint8, f Format) string {
	if f == Hex {
		return fmt.Sprintf("0x%02X", x)
	}
	return strconv.FormatUint(uint64(x), 10)
}

func u16(x uint16, f Format) string {
	if f == Hex {
		return fmt.Sprintf("0x%04X", x)
	}
	return strconv.FormatUint(uint64(x), 10)
}

func u32(x uint32, f Format) string {
	if f == Hex {
		return fmt.Sprintf("0x%08X", x)
	}
	return strconv.FormatUint(uint64(x), 10)
}
