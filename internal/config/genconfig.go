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

package config

// genConfiguration groups settings for the move generator and the
// perft benchmark harness that can be overridden from the config file.
type genConfiguration struct {
	// ForceSeed mirrors the generator's "force" flag default - when true
	// and the stack leaves no headroom, the initial seed is the lowest
	// free cell of the spawn column at or above the spawn row instead of
	// only the exact spawn cell.
	ForceSeed bool
	// PerftDepth is the default recursion depth used by the perft command
	// when none is given on the command line.
	PerftDepth int
	// Workers is the number of goroutines used to fan out independent
	// perft sub-trees. A value <= 0 means "use runtime.NumCPU()".
	Workers int
}

// MaxMoves is the fixed capacity of a single move generation call as
// required by the move-list façade. It is not read from the config file
// since callers rely on it being a compile time constant for buffer sizing.
const MaxMoves = 256

// SpawnColumn and SpawnRow describe where a new piece appears on the
// 10-wide playfield before the generator searches for placements.
const (
	SpawnColumn = 4
	SpawnRow    = 21
)

func init() {
	Settings.Gen.ForceSeed = false
	Settings.Gen.PerftDepth = 6
	Settings.Gen.Workers = 0
}

func setupGen() {
	if Settings.Gen.PerftDepth <= 0 {
		Settings.Gen.PerftDepth = 6
	}
}
