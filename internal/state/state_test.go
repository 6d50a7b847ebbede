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

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/cobra-go/internal/types"
)

func TestInitialState(t *testing.T) {
	s := New()
	assert.True(t, s.Board.Empty())
	assert.Equal(t, types.PieceNone, s.Hold)
	assert.Equal(t, 0, s.B2B)
	assert.Equal(t, 0, s.Combo)
}

func TestApplyMoveNoClearResetsCombo(t *testing.T) {
	s := New()
	s.Combo = 3
	m := types.NewMove(types.O, types.North, 0, 0, types.NoSpin)
	info := s.ApplyMove(m)
	assert.Equal(t, 0, info.LinesCleared)
	assert.Equal(t, 0, info.Combo)
	assert.Equal(t, 0, s.Combo)
	assert.Equal(t, types.NoSpin, info.Spin)
}

func TestApplyMoveTetrisSetsB2BAndAttack(t *testing.T) {
	s := New()
	for y := 0; y < 4; y++ {
		for x := 0; x < types.Columns; x++ {
			if x == 0 {
				continue
			}
			s.Board.Col[x] |= types.BbOne(y)
		}
	}
	// A stray block above the cleared rows keeps this from being a
	// perfect clear, matching the attack value used by the fixture.
	s.Board.Col[5] |= types.BbOne(10)

	m := types.NewMove(types.I, types.East, 0, 2, types.NoSpin)
	info := s.ApplyMove(m)
	assert.Equal(t, 4, info.LinesCleared)
	assert.Equal(t, 1, info.B2B)
	assert.Equal(t, 1, info.Combo)
	assert.False(t, info.PerfectClear)
	assert.Equal(t, 4, info.LinesSent(1))
}

func TestApplyMovePerfectClearWithO(t *testing.T) {
	s := New()
	for x := 2; x < types.Columns; x++ {
		s.Board.Col[x] |= types.BbOne(0) | types.BbOne(1)
	}
	m := types.NewMove(types.O, types.North, 0, 0, types.NoSpin)
	info := s.ApplyMove(m)
	assert.Equal(t, 2, info.LinesCleared)
	assert.True(t, info.PerfectClear)
	assert.True(t, s.Board.Empty())
}

func TestLinesSentZeroWhenNoClear(t *testing.T) {
	info := Info{LinesCleared: 0}
	assert.Equal(t, 0, info.LinesSent(1))
}

func TestLinesSentMiniSpin(t *testing.T) {
	info := Info{Spin: types.Mini, LinesCleared: 2, B2B: 1, Combo: 1}
	assert.Equal(t, 1, info.LinesSent(1))
}
