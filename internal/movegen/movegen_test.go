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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/cobra-go/internal/config"
	"github.com/frankkopp/cobra-go/internal/playfield"
	"github.com/frankkopp/cobra-go/internal/state"
	"github.com/frankkopp/cobra-go/internal/types"
)

func generate(pf *playfield.Playfield, piece types.Piece) []types.Move {
	var buf [config.MaxMoves]types.Move
	n := Generate(pf, piece, false, buf[:])
	return buf[:n]
}

// resting reports whether m actually comes to rest on pf: it must not be
// obstructed, and at least one of its four cells, shifted down one row,
// must be obstructed (floor, wall or stack).
func resting(pf *playfield.Playfield, m types.Move) bool {
	if pf.ObstructedMove(m) {
		return false
	}
	for _, c := range m.Cells() {
		if pf.Obstructed(int(c.X), int(c.Y)-1) {
			return true
		}
	}
	return false
}

func noDuplicates(moves []types.Move) bool {
	seen := map[types.Move]bool{}
	for _, m := range moves {
		if seen[m] {
			return false
		}
		seen[m] = true
	}
	return true
}

func TestEmptyBoardOPieceCount(t *testing.T) {
	pf := playfield.New()
	moves := generate(&pf, types.O)
	assert.Len(t, moves, 9)
	assert.True(t, noDuplicates(moves))
	for _, m := range moves {
		assert.True(t, resting(&pf, m), "move %s does not rest", m)
	}
}

func TestEmptyBoardIPieceCount(t *testing.T) {
	pf := playfield.New()
	moves := generate(&pf, types.I)
	assert.Len(t, moves, 17)
	assert.True(t, noDuplicates(moves))
	for _, m := range moves {
		assert.True(t, resting(&pf, m), "move %s does not rest", m)
	}
}

func TestEmptyBoardTPieceCount(t *testing.T) {
	pf := playfield.New()
	moves := generate(&pf, types.T)
	assert.Len(t, moves, 34)
	assert.True(t, noDuplicates(moves))
	for _, m := range moves {
		assert.True(t, resting(&pf, m), "move %s does not rest", m)
		assert.Equal(t, types.T, m.Piece())
	}
}

func TestEveryEmissionIsValidAndResting(t *testing.T) {
	pf := playfield.New()
	// A ragged stack so the search actually explores shifts and kicks
	// instead of just the flat-floor surface sweep.
	pf.Col[0] = types.BbLow(3)
	pf.Col[1] = types.BbLow(1)
	pf.Col[3] = types.BbLow(5)
	pf.Col[7] = types.BbLow(2)
	for _, p := range types.AllPieces {
		moves := generate(&pf, p)
		assert.True(t, noDuplicates(moves), "piece %s produced a duplicate", p)
		for _, m := range moves {
			assert.True(t, resting(&pf, m), "piece %s move %s does not rest", p, m)
		}
	}
}

// TestNoHeadroomYieldsNoMoves covers the boundary case where the stack
// has filled up to the spawn row with the spawn column itself blocked -
// without force, the generator must report zero placements.
func TestNoHeadroomYieldsNoMoves(t *testing.T) {
	pf := playfield.New()
	for x := 0; x < types.Columns; x++ {
		pf.Col[x] = types.BbLow(config.SpawnRow + 1)
	}
	moves := generate(&pf, types.T)
	assert.Empty(t, moves)
}

// TestTSpinDoubleFull reproduces a classic T-slot: floor blocks at
// (3,0)/(5,0) and a single overhang at (3,2) leave a pocket the T can
// only occupy point-down after rotating in from the vertical entry
// position. Three of the four corners around (4,1) are occupied and both
// front corners of the South orientation are among them, so the
// placement must come out as a full spin, never as a plain drop.
func TestTSpinDoubleFull(t *testing.T) {
	pf := playfield.New()
	pf.Col[3] |= types.BbOne(0) | types.BbOne(2)
	pf.Col[5] |= types.BbOne(0)

	moves := generate(&pf, types.T)

	var found, foundOther bool
	for _, m := range moves {
		if m.X() == 4 && m.Y() == 1 && m.Rotation() == types.South {
			if m.Spin() == types.Full {
				found = true
			} else {
				foundOther = true
			}
		}
	}
	assert.True(t, found, "expected a full T-spin at (4,1) South")
	assert.False(t, foundOther, "the same placement must not also appear with another spin class")
}

// TestTSpinMini wedges the T against the left wall: from its resting
// position at (1,1) North a clockwise rotation is wall-kicked one column
// left into (0,1) East. Both left corners are off the board and the
// lower right corner is stacked, but the upper right front corner is
// open, so the arrival classifies as a mini rather than a full spin. The
// block at (0,3) seals the column so the cell cannot also be reached by
// dropping.
func TestTSpinMini(t *testing.T) {
	pf := playfield.New()
	pf.Col[1] |= types.BbOne(0)
	pf.Col[0] |= types.BbOne(3)

	moves := generate(&pf, types.T)

	var foundMini, foundOther bool
	for _, m := range moves {
		if m.X() == 0 && m.Y() == 1 && m.Rotation() == types.East {
			if m.Spin() == types.Mini {
				foundMini = true
			} else {
				foundOther = true
			}
		}
	}
	assert.True(t, foundMini, "expected a mini T-spin at (0,1) East")
	assert.False(t, foundOther, "the same placement must not also appear with another spin class")
}

// TestEverySpinClassificationIsExclusive checks invariant 4: a T
// placement never appears in more than one spin class.
func TestEverySpinClassificationIsExclusive(t *testing.T) {
	pf := playfield.New()
	pf.Col[3] |= types.BbOne(0) | types.BbOne(2)
	pf.Col[5] |= types.BbOne(0) | types.BbOne(2)
	pf.Col[1] |= types.BbOne(0)

	moves := generate(&pf, types.T)
	assert.True(t, noDuplicates(moves))
	placements := map[[3]int]bool{}
	for _, m := range moves {
		key := [3]int{m.X(), m.Y(), int(m.Rotation())}
		assert.False(t, placements[key], "placement %s appears in more than one spin class", m)
		placements[key] = true
	}
}

func TestForceSeedsAboveToppedOutSpawn(t *testing.T) {
	pf := playfield.New()
	for x := 0; x < types.Columns; x++ {
		pf.Col[x] = types.BbLow(config.SpawnRow + 1)
	}

	var buf [config.MaxMoves]types.Move
	n := Generate(&pf, types.T, true, buf[:])
	assert.Greater(t, n, 0)
}

func TestPerftDepthOneMatchesMoveCount(t *testing.T) {
	st := state.New()
	moves := generate(&st.Board, types.I)
	nodes := perft(st, []types.Piece{types.I}, 1)
	assert.Equal(t, uint64(len(moves)), nodes)
}

// TestPerftDepthTwoMatchesManualExpansion cross-checks one recursion step
// of the perft harness against a by-hand expansion that applies each
// first-ply move through the scoring state machine before counting the
// second ply.
func TestPerftDepthTwoMatchesManualExpansion(t *testing.T) {
	st := state.New()
	queue := []types.Piece{types.I, types.O}

	var buf [config.MaxMoves]types.Move
	n := Generate(&st.Board, queue[0], false, buf[:])

	var expected uint64
	for i := 0; i < n; i++ {
		child := *st
		child.ApplyMove(buf[i])
		var buf2 [config.MaxMoves]types.Move
		expected += uint64(Generate(&child.Board, queue[1], false, buf2[:]))
	}

	assert.Equal(t, expected, perft(st, queue, 2))
}
