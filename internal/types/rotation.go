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

// Rotation is one of the four SRS orientations of a piece.
type Rotation uint8

const (
	North Rotation = iota
	East
	South
	West
	RotationCount
)

var rotationStrings = [...]string{"N", "E", "S", "W"}

// IsValid reports whether r is one of the four orientations.
func (r Rotation) IsValid() bool {
	return r < RotationCount
}

// String returns the single letter name of the orientation.
func (r Rotation) String() string {
	if !r.IsValid() {
		return "?"
	}
	return rotationStrings[r]
}

// Direction is a rotation request: clockwise, counter-clockwise or a
// full 180 degree flip.
type Direction uint8

const (
	DirCW Direction = iota
	DirCCW
	DirFlip
)

// rotationDelta maps a Direction to the amount added to a Rotation modulo 4.
var rotationDelta = [...]Rotation{DirCW: 1, DirCCW: 3, DirFlip: 2}

// Rotate returns the orientation reached from r by applying d.
func (r Rotation) Rotate(d Direction) Rotation {
	return Rotation((uint8(r) + uint8(rotationDelta[d])) & 3)
}
