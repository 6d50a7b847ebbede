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

package movelist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/cobra-go/internal/playfield"
	"github.com/frankkopp/cobra-go/internal/types"
)

func TestNewRunsGeneratorForPiece(t *testing.T) {
	pf := playfield.New()
	l := New(&pf, types.O)
	assert.Equal(t, 9, l.Len())
	assert.False(t, l.Empty())
	assert.True(t, l.NoDuplicates())
	assert.True(t, l.AllValid(&pf))
}

func TestNewWithHoldSamePieceDoesNotDuplicate(t *testing.T) {
	pf := playfield.New()
	l := NewWithHold(&pf, types.O, types.O, false)
	assert.Equal(t, 9, l.Len())
}

func TestNewWithHoldDistinctPieceAppends(t *testing.T) {
	pf := playfield.New()
	l := NewWithHold(&pf, types.O, types.I, false)
	assert.Equal(t, 9+17, l.Len())
	assert.True(t, l.NoDuplicates())
	assert.True(t, l.AllValid(&pf))
}

func TestContains(t *testing.T) {
	pf := playfield.New()
	l := New(&pf, types.O)
	m := types.NewMove(types.O, types.North, 0, 0, types.NoSpin)
	assert.True(t, l.Contains(m))
	other := types.NewMove(types.O, types.North, 0, 5, types.NoSpin)
	assert.False(t, l.Contains(other))
}

func TestForEachVisitsEveryMove(t *testing.T) {
	pf := playfield.New()
	l := New(&pf, types.O)
	count := 0
	l.ForEach(func(types.Move) { count++ })
	assert.Equal(t, l.Len(), count)
}

func TestSliceMatchesLen(t *testing.T) {
	pf := playfield.New()
	l := New(&pf, types.T)
	assert.Len(t, l.Slice(), l.Len())
}
