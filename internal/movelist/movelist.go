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

// Package movelist is the façade in front of the move generator: a
// fixed-capacity, non-growable buffer of moves together with the
// invariant checks ("no duplicates", "every move actually rests on
// something") that the generator is expected to uphold. Do not replace
// the backing array with a growable container - the whole point of the
// façade is that a single call can never allocate more than MaxMoves
// slots, matching the generator's own MAX_MOVES contract.
package movelist

import (
	"github.com/frankkopp/cobra-go/internal/config"
	"github.com/frankkopp/cobra-go/internal/movegen"
	"github.com/frankkopp/cobra-go/internal/playfield"
	"github.com/frankkopp/cobra-go/internal/types"
)

// MaxMoves re-exports the generator's fixed buffer capacity.
const MaxMoves = config.MaxMoves

// List is a fixed-capacity buffer of generated moves.
type List struct {
	moves [MaxMoves]types.Move
	n     int
}

// New runs the generator for piece against pf and returns the resulting
// list.
func New(pf *playfield.Playfield, piece types.Piece) *List {
	l := &List{}
	l.n = movegen.Generate(pf, piece, false, l.moves[:])
	return l
}

// NewWithHold runs the generator for piece and, when hold is a distinct
// piece and the first run produced at least one move, runs it again for
// hold, appending into the same buffer. This mirrors the two-piece query
// a player makes when deciding whether to hold.
func NewWithHold(pf *playfield.Playfield, piece, hold types.Piece, force bool) *List {
	l := &List{}
	l.n = movegen.Generate(pf, piece, force, l.moves[:])
	if l.n != 0 && piece != hold {
		l.n += movegen.Generate(pf, hold, force, l.moves[l.n:])
	}
	return l
}

// Len returns the number of moves in the list.
func (l *List) Len() int { return l.n }

// Empty reports whether the list holds no moves.
func (l *List) Empty() bool { return l.n == 0 }

// At returns the i-th move.
func (l *List) At(i int) types.Move { return l.moves[i] }

// Slice returns the populated prefix of the backing array. The caller must
// not grow it.
func (l *List) Slice() []types.Move { return l.moves[:l.n] }

// Contains reports whether m appears anywhere in the list.
func (l *List) Contains(m types.Move) bool {
	for i := 0; i < l.n; i++ {
		if l.moves[i] == m {
			return true
		}
	}
	return false
}

// ForEach calls f for every move in the list.
func (l *List) ForEach(f func(types.Move)) {
	for i := 0; i < l.n; i++ {
		f(l.moves[i])
	}
}

// NoDuplicates reports whether every move in the list is unique. It is an
// O(n^2) check intended for tests and debug assertions, not the hot path.
func (l *List) NoDuplicates() bool {
	for i := 0; i < l.n-1; i++ {
		for j := i + 1; j < l.n; j++ {
			if l.moves[i] == l.moves[j] {
				return false
			}
		}
	}
	return true
}

// AllValid reports whether every move in the list is structurally valid
// and actually rests on something: shifting all four of its cells down by
// one row must leave at least one of them obstructed (floor, wall or
// stack). A move for which all four shifted cells are still free would
// mean the piece could keep falling, so it cannot be a genuine resting
// placement.
func (l *List) AllValid(pf *playfield.Playfield) bool {
	for i := 0; i < l.n; i++ {
		m := l.moves[i]
		if !m.IsValid() {
			return false
		}
		allFree := true
		for _, c := range m.Cells() {
			if pf.Obstructed(int(c.X), int(c.Y)-1) {
				allFree = false
				break
			}
		}
		if allFree {
			return false
		}
	}
	return true
}
