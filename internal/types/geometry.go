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

// Coordinate is a single cell offset within a piece's bounding shape.
type Coordinate struct {
	X, Y int8
}

// PieceCells is the four cell offsets making up one piece in one
// orientation, relative to the piece's anchor column/row.
type PieceCells [4]Coordinate

// Columns is the width of the playfield.
const Columns = 10

// northCells are the canonical, North-facing cell offsets for each of the
// seven pieces, anchored so that rotating in place (see rotateCell) keeps
// the piece roughly centered the way SRS expects.
var northCells = [PieceCount]PieceCells{
	I: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	O: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	T: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
	L: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
	J: {{-1, 0}, {0, 0}, {1, 0}, {-1, 1}},
	S: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
	Z: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
}

// pieceCellsTable[piece][rotation] is precomputed once at package init.
var pieceCellsTable [PieceCount][RotationCount]PieceCells

func init() {
	for p := Piece(0); p < PieceCount; p++ {
		base := northCells[p]
		for r := North; r <= West; r++ {
			var cells PieceCells
			for i, c := range base {
				cells[i] = rotateCell(c, r)
			}
			pieceCellsTable[p][r] = cells
		}
	}
}

// rotateCell applies one of the four SRS orientations to a single cell
// offset. North is the identity; East/South/West follow the standard
// 90 degree rotation matrices used by the generator's kick search.
func rotateCell(c Coordinate, r Rotation) Coordinate {
	switch r {
	case East:
		return Coordinate{c.Y, -c.X}
	case South:
		return Coordinate{-c.X, -c.Y}
	case West:
		return Coordinate{-c.Y, c.X}
	default:
		return c
	}
}

// Cells returns the four cell offsets of p in orientation r. TSpin shares
// T's geometry since it only ever tags a T placement.
func Cells(p Piece, r Rotation) PieceCells {
	if p == TSpin {
		p = T
	}
	return pieceCellsTable[p][r]
}
