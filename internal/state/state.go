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

// Package state holds the mutable game state around a playfield - the
// hold slot and the back-to-back/combo counters - and applies chosen
// moves to it, turning a raw placement into scoring information. Unlike
// the generator, a State is mutated in place and is not safe for
// concurrent use by multiple goroutines.
package state

import (
	"math"
	"math/bits"

	"github.com/frankkopp/cobra-go/internal/assert"
	"github.com/frankkopp/cobra-go/internal/playfield"
	"github.com/frankkopp/cobra-go/internal/types"
)

// attackTable gives the base number of lines sent for a clear of width
// 1..4, indexed by spin type. A mini T-spin can only ever clear one or
// two lines, so its row is shorter.
var attackTable = [3][4]int{
	types.NoSpin: {0, 1, 2, 4},
	types.Mini:   {0, 1},
	types.Full:   {2, 4, 6},
}

// Info reports the outcome of applying a single move: what was placed,
// how it was classified, how many lines it cleared and the counters'
// values immediately after.
type Info struct {
	Piece        types.Piece
	Spin         types.SpinType
	LinesCleared int
	B2B          int
	Combo        int
	PerfectClear bool
}

// LinesSent computes the attack value (garbage lines sent to an
// opponent) for this move, scaled by multiplier. It is 0 whenever
// LinesCleared is 0 - a non-clearing placement never sends anything.
func (info Info) LinesSent(multiplier float64) int {
	if info.LinesCleared == 0 {
		return 0
	}
	if assert.DEBUG {
		assert.Assert(info.LinesCleared > 0 && info.Combo > 0, "LinesSent called on an inconsistent Info")
	}

	lines := float64(attackTable[info.Spin][info.LinesCleared-1])

	if info.B2B > 1 {
		v := math.Log1p(float64(info.B2B-1) * 0.8)
		bonus := math.Trunc(1 + v)
		if info.B2B != 2 {
			bonus += (1 + v - math.Trunc(v)) / 3
		}
		lines += bonus
	}

	lines *= 1 + 0.25*float64(info.Combo-1)

	if info.Combo > 2 {
		lines = math.Max(math.Log1p(float64(info.Combo-1)*1.25), lines)
	}

	pc := 0.0
	if info.PerfectClear {
		pc = 1.0
	}
	return int(lines*multiplier) + int(pc*10*multiplier)
}

// State is a playfield together with the hold slot and the counters that
// drive back-to-back and combo scoring.
type State struct {
	Board playfield.Playfield
	Hold  types.Piece
	B2B   int
	Combo int
}

// New returns a freshly initialized State: an empty board, no hold piece
// and both counters at zero.
func New() *State {
	s := &State{}
	s.Init()
	return s
}

// Init resets s to its starting condition. It can be called again on a
// State already in play to start a new game without reallocating.
func (s *State) Init() {
	s.Board.Clear()
	s.Hold = types.PieceNone
	s.B2B = 0
	s.Combo = 0
}

// ApplyMove stamps move onto the board, clears any resulting full rows
// and updates the back-to-back/combo counters, returning an Info that
// describes what happened. The caller must ensure move is actually legal
// against the current board - ApplyMove only asserts this in debug
// builds, it never checks it at runtime.
func (s *State) ApplyMove(move types.Move) Info {
	if assert.DEBUG {
		assert.Assert(move.IsValid(), "ApplyMove called with an invalid move")
		assert.Assert(!s.Board.ObstructedMove(move), "ApplyMove called with an obstructed move")
	}

	s.Board.Place(move)

	clears := s.Board.LineClears()
	if clears == 0 {
		s.Combo = 0
		return Info{Piece: move.Piece(), Spin: types.NoSpin, LinesCleared: 0, B2B: s.B2B, Combo: 0, PerfectClear: false}
	}

	s.Board.ClearLines(clears)
	clearCount := bits.OnesCount64(uint64(clears))
	spin := move.Spin()

	if spin != types.NoSpin || clearCount == 4 {
		s.B2B++
	} else {
		s.B2B = 0
	}
	s.Combo++

	return Info{
		Piece:        move.Piece(),
		Spin:         spin,
		LinesCleared: clearCount,
		B2B:          s.B2B,
		Combo:        s.Combo,
		PerfectClear: s.Board.Empty(),
	}
}
