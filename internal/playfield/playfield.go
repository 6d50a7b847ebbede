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

// Package playfield holds the bitboard representation of the stack: one
// 64-bit word per column, one bit per row. It is a plain value type - a
// Playfield is cheap to copy, which is how the perft recursion advances
// to a child node without mutating its parent's board.
package playfield

import (
	"strings"

	"github.com/frankkopp/cobra-go/internal/assert"
	"github.com/frankkopp/cobra-go/internal/types"
)

// Playfield is the 10-column bitboard stack.
type Playfield struct {
	Col [types.Columns]types.Bitboard
}

// New returns an empty playfield.
func New() Playfield {
	return Playfield{}
}

// Occupied reports whether (x, y) holds a block. x and y are assumed in
// range - use Obstructed for a bounds-checked query.
func (pf *Playfield) Occupied(x, y int) bool {
	return pf.Col[x].Has(y)
}

// Obstructed reports whether (x, y) is out of bounds or already occupied.
func (pf *Playfield) Obstructed(x, y int) bool {
	if x < 0 || x >= types.Columns || y < 0 || y >= 64 {
		return true
	}
	return pf.Occupied(x, y)
}

// ObstructedMove reports whether any of move's four cells collide with the
// board or fall outside it.
func (pf *Playfield) ObstructedMove(move types.Move) bool {
	for _, c := range move.Cells() {
		if pf.Obstructed(int(c.X), int(c.Y)) {
			return true
		}
	}
	return false
}

// Empty reports whether the playfield holds no blocks at all.
func (pf *Playfield) Empty() bool {
	for _, c := range pf.Col {
		if c != 0 {
			return false
		}
	}
	return true
}

// LineClears returns a bitmask with one bit set per fully occupied row.
func (pf *Playfield) LineClears() types.Bitboard {
	result := pf.Col[0]
	for x := 1; x < types.Columns && result != 0; x++ {
		result &= pf.Col[x]
	}
	return result
}

// Clear empties the playfield.
func (pf *Playfield) Clear() {
	for i := range pf.Col {
		pf.Col[i] = 0
	}
}

// ClearLines removes every row marked in l and collapses the rows above
// each cleared row down by one, one cleared row at a time. l must be
// non-zero.
func (pf *Playfield) ClearLines(l types.Bitboard) {
	if assert.DEBUG {
		assert.Assert(l != 0, "ClearLines called with no lines to clear")
	}
	for {
		mask := ^((l & -l) - 1)
		for x := range pf.Col {
			c := pf.Col[x]
			pf.Col[x] = c ^ ((c ^ (c >> 1)) & mask)
		}
		l = (l & (l - 1)) >> 1
		if l == 0 {
			break
		}
	}
}

// Place writes move's four cells into the board. The caller is expected to
// have already verified ObstructedMove(move) is false.
func (pf *Playfield) Place(move types.Move) {
	for _, c := range move.Cells() {
		pf.Col[c.X] |= types.BbOne(int(c.Y))
	}
}

// String renders the bottom 21 rows of the playfield as a bordered grid,
// used for debug dumps.
func (pf *Playfield) String() string {
	return pf.dump(types.MoveNone, false)
}

// StringMove renders the playfield the same way as String, additionally
// marking move's cells with '.' so a placement can be inspected before it
// is actually applied to the board.
func (pf *Playfield) StringMove(move types.Move) string {
	return pf.dump(move, true)
}

const dumpRows = 20

func (pf *Playfield) dump(move types.Move, showMove bool) string {
	var sb strings.Builder
	border := " +" + strings.Repeat("---+", types.Columns) + "\n"
	sb.WriteString("\n")
	sb.WriteString(border)

	var markers map[types.Coordinate]bool
	if showMove && !pf.ObstructedMove(move) {
		markers = make(map[types.Coordinate]bool, 4)
		for _, c := range move.Cells() {
			markers[c] = true
		}
	}

	for y := dumpRows; y >= 0; y-- {
		for x := 0; x < types.Columns; x++ {
			sb.WriteString(" | ")
			switch {
			case markers[types.Coordinate{X: int8(x), Y: int8(y)}]:
				sb.WriteByte('.')
			case pf.Occupied(x, y):
				sb.WriteByte('#')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(" |\n")
		sb.WriteString(border)
	}
	return sb.String()
}
