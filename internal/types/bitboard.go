//
// Cobra - tetromino move generator in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard represents a single playfield column as a 64-bit word, one bit
// per row. Row 0 is the floor row, higher bits are higher up the stack.
type Bitboard uint64

// BbZero and BbAll are the obvious special cases, kept as named constants
// since they show up throughout the generator.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^Bitboard(0)
)

// BbOne returns a bitboard with only bit v set.
func BbOne(v int) Bitboard {
	return Bitboard(1) << uint(v)
}

// BbLow returns a bitboard with the v lowest bits set (v in [0, 64]).
func BbLow(v int) Bitboard {
	if v >= 64 {
		return BbAll
	}
	return BbOne(v) - 1
}

// Has reports whether bit v is set.
func (b Bitboard) Has(v int) bool {
	return b&BbOne(v) != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Ctz returns the index of the lowest set bit, or 64 if b is zero.
func (b Bitboard) Ctz() int {
	return bits.TrailingZeros64(uint64(b))
}

// Bitlen returns one past the index of the highest set bit, i.e. the
// number of bits required to represent b. Bitlen of zero is 0.
func (b Bitboard) Bitlen() int {
	return 64 - bits.LeadingZeros64(uint64(b))
}

// Lsb isolates the lowest set bit.
func (b Bitboard) Lsb() Bitboard {
	return b & -b
}

// String renders the bitboard as 64 characters, row 63 first, '#' for
// a set row and '.' for an empty one - used by the debug dump.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := 63; r >= 0; r-- {
		if b.Has(r) {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// GoString supports %#v formatting for debugging/tests.
func (b Bitboard) GoString() string {
	return fmt.Sprintf("Bitboard(%#016x)", uint64(b))
}
