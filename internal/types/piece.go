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

// Piece identifies one of the seven standard tetrominoes. TSpin is not a
// placeable piece - it is an internal tag stored in a packed Move to mark
// a T placement as spin-eligible without needing a separate bit field.
type Piece uint8

const (
	I Piece = iota
	O
	T
	L
	J
	S
	Z
	TSpin
	PieceNone
)

// PieceCount is the number of real, placeable pieces.
const PieceCount = 7

// AllPieces lists the seven standard pieces in the order the perft queue
// and the fixture board uses.
var AllPieces = [PieceCount]Piece{I, O, T, L, J, S, Z}

var pieceStrings = [...]string{"I", "O", "T", "L", "J", "S", "Z", "T", "-"}

// IsValid reports whether p is one of the seven real pieces.
func (p Piece) IsValid() bool {
	return p < PieceCount
}

// String returns the single letter name of the piece. TSpin prints as "T"
// since it only ever denotes a spin-eligible T placement.
func (p Piece) String() string {
	if p > PieceNone {
		return "?"
	}
	return pieceStrings[p]
}
