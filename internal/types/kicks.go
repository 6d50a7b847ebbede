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

// The SRS+ wall kick tables below are indexed [family][rotation] and give,
// in try order, the column/row offsets attempted when rotating a piece
// that is blocked in its target orientation. family 0 covers L, J, S, Z
// and T; family 1 is the I piece, which uses a wider kick set.
//
// KicksFamily reports which family a piece uses. O never rotates and has
// no entry.
func KicksFamily(p Piece) int {
	if p == I {
		return 1
	}
	return 0
}

// KicksCW/KicksCCW hold the five candidate offsets tried, in order, when
// rotating clockwise or counter-clockwise out of rotation r.
var KicksCW = [2][RotationCount][5]Coordinate{
	{ // LJSZT
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	},
	{ // I
		{{1, 0}, {2, 0}, {-1, 0}, {-1, -1}, {2, 2}},
		{{0, -1}, {-1, -1}, {2, -1}, {-1, 1}, {2, -2}},
		{{-1, 0}, {1, 0}, {-2, 0}, {1, 1}, {-2, -2}},
		{{0, 1}, {1, 1}, {-2, 1}, {1, -1}, {-2, 2}},
	},
}

var KicksCCW = [2][RotationCount][5]Coordinate{
	{ // LJSZT
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	},
	{ // I
		{{0, -1}, {-1, -1}, {2, -1}, {2, -2}, {-1, 1}},
		{{-1, 0}, {-2, 0}, {1, 0}, {-2, -2}, {1, 1}},
		{{0, 1}, {-2, 1}, {1, 1}, {-2, 2}, {1, -1}},
		{{1, 0}, {2, 0}, {-1, 0}, {2, 2}, {-1, -1}},
	},
}

// Kicks180 holds the six candidate offsets tried when flipping a piece
// 180 degrees out of rotation r.
var Kicks180 = [2][RotationCount][6]Coordinate{
	{ // LJSZT
		{{0, 0}, {0, 1}, {1, 1}, {-1, 1}, {1, 0}, {-1, 0}},
		{{0, 0}, {1, 0}, {1, 2}, {1, 1}, {0, 2}, {0, 1}},
		{{0, 0}, {0, -1}, {-1, -1}, {1, -1}, {-1, 0}, {1, 0}},
		{{0, 0}, {-1, 0}, {-1, 2}, {-1, 1}, {0, 2}, {0, 1}},
	},
	{ // I
		{{1, -1}, {1, 0}, {2, 0}, {0, 0}, {2, -1}, {0, -1}},
		{{-1, -1}, {0, -1}, {0, 1}, {0, 0}, {-1, 1}, {-1, 0}},
		{{-1, 1}, {-1, 0}, {-2, 0}, {0, 0}, {-2, 1}, {0, 1}},
		{{1, 1}, {0, 1}, {0, 3}, {0, 2}, {1, 3}, {1, 2}},
	},
}
