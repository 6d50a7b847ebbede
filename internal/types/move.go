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

import "fmt"

// Move packs a single placement into 16 bits: [y:6 | x:4 | piece:3 |
// rotation:2 | spin:1]. Piece carries the TSpin tag instead of T when the
// placement is spin eligible, and the spin bit then distinguishes a mini
// from a full T-spin.
type Move uint16

const (
	moveYShift        = 0
	moveXShift        = 6
	movePieceShift    = 10
	moveRotationShift = 13
	moveSpinShift     = 15

	moveYMask        = Move(0x3F) << moveYShift
	moveXMask        = Move(0xF) << moveXShift
	movePieceMask    = Move(0x7) << movePieceShift
	moveRotationMask = Move(0x3) << moveRotationShift
	moveSpinMask     = Move(0x1) << moveSpinShift
)

// MoveNone is the zero value used to mark an absent/illegal move. It is
// bit-identical to a plain I-piece placement at (0,0,North) - callers must
// not rely on comparing against MoveNone to detect a specific placement,
// only to detect "no move was produced".
const MoveNone Move = 0

// NewMove packs a placement. spin is Full only when the T placement is a
// full T-spin; it is ignored for every piece other than T. Passing TSpin
// as piece always yields a mini T-spin.
func NewMove(piece Piece, rotation Rotation, x, y int, spin SpinType) Move {
	pieceTag := piece
	var spinBit Move
	if piece == T && spin != NoSpin {
		pieceTag = TSpin
		if spin == Full {
			spinBit = 1
		}
	}
	return Move(y)<<moveYShift |
		Move(x)<<moveXShift |
		Move(pieceTag)<<movePieceShift |
		Move(rotation)<<moveRotationShift |
		spinBit<<moveSpinShift
}

// Y returns the row of the move's anchor cell.
func (m Move) Y() int { return int((m & moveYMask) >> moveYShift) }

// X returns the column of the move's anchor cell.
func (m Move) X() int { return int((m & moveXMask) >> moveXShift) }

// rawPiece returns the stored 3-bit piece tag, which may be TSpin.
func (m Move) rawPiece() Piece { return Piece((m & movePieceMask) >> movePieceShift) }

// Piece returns the placed piece. A TSpin tag is reported as T.
func (m Move) Piece() Piece {
	p := m.rawPiece()
	if p == TSpin {
		return T
	}
	return p
}

// Rotation returns the orientation of the placement.
func (m Move) Rotation() Rotation {
	return Rotation((m & moveRotationMask) >> moveRotationShift)
}

// Spin classifies the placement's T-spin status. Always NoSpin for any
// piece other than T.
func (m Move) Spin() SpinType {
	if m.rawPiece() != TSpin {
		return NoSpin
	}
	if m&moveSpinMask != 0 {
		return Full
	}
	return Mini
}

// IsValid performs a structural sanity check on the packed fields. It does
// not check the move against any playfield.
func (m Move) IsValid() bool {
	p := m.rawPiece()
	if p != TSpin && !p.IsValid() {
		return false
	}
	if !m.Rotation().IsValid() {
		return false
	}
	if m.X() < 0 || m.X() >= Columns {
		return false
	}
	return true
}

// Cells returns the four absolute (column, row) cells occupied by this
// placement.
func (m Move) Cells() PieceCells {
	base := Cells(m.rawPiece(), m.Rotation())
	x, y := int8(m.X()), int8(m.Y())
	for i, c := range base {
		base[i] = Coordinate{c.X + x, c.Y + y}
	}
	return base
}

// String renders the move for debugging, e.g. "T@(4,18)N spin=full".
func (m Move) String() string {
	return fmt.Sprintf("%s@(%d,%d)%s spin=%s", m.Piece(), m.X(), m.Y(), m.Rotation(), m.Spin())
}
