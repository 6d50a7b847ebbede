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

// Package collision precomputes, per piece, a [column][rotation] table of
// "anchor obstruction" bitboards: bit y of Map[x][r] is set when placing
// the piece's anchor cell at (x, y, r) would collide with the stack or
// leave the piece partly off the board. The move generator's entire
// search is built on top of this table instead of re-testing four cells
// against the live board on every candidate placement.
package collision

import (
	"github.com/frankkopp/cobra-go/internal/playfield"
	"github.com/frankkopp/cobra-go/internal/types"
)

// Map is a per-(column, rotation) obstruction table for one piece. It is
// always dimensioned [10][4] so that every caller indexes it uniformly;
// for a piece like O the generator only ever consults the North slot,
// the other three are just filled along the way.
type Map struct {
	Bitmaps [types.Columns][types.RotationCount]types.Bitboard
}

// Build constructs the obstruction table for piece against the given
// playfield.
func Build(pf *playfield.Playfield, piece types.Piece) *Map {
	cm := &Map{}
	for x := 0; x < types.Columns; x++ {
		for r := types.North; r <= types.West; r++ {
			cm.Bitmaps[x][r] = buildOne(pf, piece, r, x)
		}
	}
	return cm
}

func buildOne(pf *playfield.Playfield, piece types.Piece, r types.Rotation, x int) types.Bitboard {
	cells := types.Cells(piece, r)
	var result types.Bitboard
	for _, c := range cells {
		cx := x + int(c.X)
		if cx < 0 || cx >= types.Columns {
			return types.BbAll
		}
		col := pf.Col[cx]
		if c.Y < 0 {
			result |= ^(^col << uint(-c.Y))
		} else {
			result |= col >> uint(c.Y)
		}
	}
	return result
}
