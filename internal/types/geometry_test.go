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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotationMatrixOnT(t *testing.T) {
	assert.Equal(t, PieceCells{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}, Cells(T, North))
	assert.Equal(t, PieceCells{{0, 1}, {0, 0}, {0, -1}, {1, 0}}, Cells(T, East))
	assert.Equal(t, PieceCells{{1, 0}, {0, 0}, {-1, 0}, {0, -1}}, Cells(T, South))
	assert.Equal(t, PieceCells{{0, -1}, {0, 0}, {0, 1}, {-1, 0}}, Cells(T, West))
}

func TestTSpinSharesTGeometry(t *testing.T) {
	for r := North; r <= West; r++ {
		assert.Equal(t, Cells(T, r), Cells(TSpin, r))
	}
}

func TestEveryPieceHasFourDistinctCellsPerRotation(t *testing.T) {
	for _, p := range AllPieces {
		for r := North; r <= West; r++ {
			seen := map[Coordinate]bool{}
			for _, c := range Cells(p, r) {
				assert.False(t, seen[c], "duplicate cell %v for piece %s rotation %s", c, p, r)
				seen[c] = true
			}
		}
	}
}

func TestRotationRoundTrip(t *testing.T) {
	for r := North; r <= West; r++ {
		assert.Equal(t, r, r.Rotate(DirCW).Rotate(DirCCW))
		assert.Equal(t, r, r.Rotate(DirFlip).Rotate(DirFlip))
		assert.Equal(t, r.Rotate(DirCW).Rotate(DirCW), r.Rotate(DirFlip))
	}
}
