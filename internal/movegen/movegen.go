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

// Package movegen enumerates every reachable final resting placement of a
// falling piece on a bitboard playfield. When the stack leaves enough
// headroom the search is seeded with every pose above the stack surface;
// otherwise it starts from the spawn cell alone. From there it
// flood-fills outward through soft
// drops, hard drops, horizontal shifts and kicked rotations until no new
// poses remain to explore. T placements are additionally classified as a
// mini or full T-spin from the board cells diagonal to the piece's
// center.
package movegen

import (
	myLogging "github.com/frankkopp/cobra-go/internal/logging"
	"github.com/frankkopp/cobra-go/internal/assert"
	"github.com/frankkopp/cobra-go/internal/collision"
	"github.com/frankkopp/cobra-go/internal/config"
	"github.com/frankkopp/cobra-go/internal/playfield"
	"github.com/frankkopp/cobra-go/internal/types"
)

var log = myLogging.GetGenLog()

// remainingIndex packs a (column, rotation) pair into the bit index used
// by the `remaining` worklist mask.
func remainingIndex(x int, r types.Rotation) int {
	return x*int(types.RotationCount) + int(r)
}

// movesetSize returns how many of the four rotation slots are distinct
// landing spots for a piece, once symmetric orientations are collapsed:
// O has one, I/S/Z have two (North/East, South/West fold back), and
// L/J/T all have four.
func movesetSize(p types.Piece) int {
	switch p {
	case types.O:
		return 1
	case types.I, types.S, types.Z:
		return 2
	default:
		return 4
	}
}

// canonicalizeLanding folds a hard-drop landing found in orientation r at
// column x into the symmetry-reduced (column, rotation) slot used to
// de-duplicate moveset bookkeeping, shifting the landing bitmap m to
// match.
func canonicalizeLanding(p types.Piece, x int, r types.Rotation, m types.Bitboard) (cx int, cr types.Rotation, cm types.Bitboard) {
	switch p {
	case types.O:
		cr = types.North
		if r == types.West || r == types.South {
			cx = x - 1
		} else {
			cx = x
		}
		if r == types.East || r == types.South {
			m >>= 1
		}
	case types.I:
		cr = types.Rotation(int(r) & 1)
		if r == types.South {
			cx = x - 1
		} else {
			cx = x
		}
		if r == types.West {
			m <<= 1
		}
	case types.S, types.Z:
		cr = types.Rotation(int(r) & 1)
		if r == types.West {
			cx = x - 1
		} else {
			cx = x
		}
		if r == types.South {
			m >>= 1
		}
	default: // L, J, T
		cx, cr = x, r
	}
	return cx, cr, m
}

// Generate runs the reachability search for piece against pf and writes
// every distinct final placement into dst, returning the number of moves
// written. dst must have capacity for at least config.MaxMoves entries.
//
// When force is true and the stack leaves no headroom, the search is
// seeded from the lowest open cell of the spawn column at or above the
// spawn row instead of only the exact spawn cell - used when a caller
// wants moves even while the stack has topped out past the spawn point.
// With enough headroom force has no effect.
//
// Each T landing is emitted once: where a landing was reached both with
// and without a spin, the classes are taken in the order none, mini,
// full and the first one that holds the landing wins.
func Generate(pf *playfield.Playfield, piece types.Piece, force bool, dst []types.Move) int {
	if assert.DEBUG {
		assert.Assert(piece.IsValid(), "Generate called with invalid piece %s", piece)
		assert.Assert(len(dst) >= config.MaxMoves, "Generate destination buffer too small")
	}

	cm := collision.Build(pf, piece)
	isT := piece == types.T
	msSize := movesetSize(piece)

	var toSearch, searched [types.Columns][types.RotationCount]types.Bitboard
	var moveset [types.Columns][types.RotationCount]types.Bitboard
	var spinset [types.Columns][types.RotationCount][3]types.Bitboard
	var remaining uint64

	n := 0
	total := 0
	if isT {
		total = -1
	}

	for x := 0; x < types.Columns; x++ {
		for r := types.North; r <= types.West; r++ {
			searched[x][r] = cm.Bitmaps[x][r]
		}
	}

	highest := pf.Col[0]
	for x := 1; x < types.Columns; x++ {
		highest |= pf.Col[x]
	}

	if highest.Bitlen() > config.SpawnRow-3 {
		// Not enough headroom for a full top-down sweep: seed only the
		// spawn cell (or, under force, the first open cell at or above it).
		var spawn types.Bitboard
		if force {
			bbAll := types.BbAll
			s := ^cm.Bitmaps[config.SpawnColumn][types.North] & (bbAll << uint(config.SpawnRow))
			spawn = s.Lsb()
		} else {
			spawn = ^cm.Bitmaps[config.SpawnColumn][types.North] & types.BbOne(config.SpawnRow)
		}
		if spawn == 0 {
			return n
		}
		toSearch[config.SpawnColumn][types.North] = spawn
		remaining |= uint64(types.BbOne(remainingIndex(config.SpawnColumn, types.North)))
		if isT {
			spinset[config.SpawnColumn][types.North][types.NoSpin] = spawn
		}
	} else {
		searchRotations := types.RotationCount
		if piece == types.O {
			searchRotations = 1
		}
		for x := 0; x < types.Columns; x++ {
			for r := types.North; r < searchRotations; r++ {
				if cm.Bitmaps[x][r] == types.BbAll {
					// Piece geometry puts a cell outside the playfield for
					// this (column, rotation) pair - nothing to search.
					continue
				}
				y := cm.Bitmaps[x][r].Bitlen()
				surface := types.BbLow(config.SpawnRow) &^ types.BbLow(y)

				searched[x][r] |= surface
				toSearch[x][r] = surface
				remaining |= uint64(types.BbOne(remainingIndex(x, r)))
				if isT {
					spinset[x][r][types.NoSpin] = surface
				}

				if !isT && int(r) < msSize {
					dst[n] = types.NewMove(piece, r, x, y, types.NoSpin)
					n++
					total += (^cm.Bitmaps[x][r] & ((cm.Bitmaps[x][r] << 1) | 1)).PopCount() - 1
				}
			}
		}
		if !isT && total == 0 {
			return n
		}
	}

	for remaining != 0 {
		index := types.Bitboard(remaining).Ctz()
		x := index / int(types.RotationCount)
		r := types.Rotation(index % int(types.RotationCount))

		// Soft drop: flood the reachable cells below the current frontier.
		if isT {
			m := (toSearch[x][r] >> 1) &^ cm.Bitmaps[x][r]
			for (m & toSearch[x][r]) != m {
				toSearch[x][r] |= m
				m |= (m >> 1) &^ cm.Bitmaps[x][r]
			}
			spinset[x][r][types.NoSpin] |= m
		} else {
			m := (toSearch[x][r] >> 1) &^ toSearch[x][r] &^ searched[x][r]
			for m != 0 {
				toSearch[x][r] |= m
				m = (m >> 1) &^ searched[x][r]
			}
		}

		// Hard drop: any cell of the frontier that rests directly on the
		// stack or floor is a genuine placement.
		{
			m := toSearch[x][r] & ((cm.Bitmaps[x][r] << 1) | 1)
			if !isT {
				m &^= searched[x][r]
			}
			if m != 0 {
				x1, r1, cm1 := canonicalizeLanding(piece, x, r, m)
				if !isT {
					if fresh := cm1 &^ moveset[x1][r1]; fresh != 0 {
						moveset[x1][r1] |= fresh
						total -= fresh.PopCount()
						for fresh != 0 {
							y := fresh.Ctz()
							dst[n] = types.NewMove(piece, r1, x1, y, types.NoSpin)
							n++
							fresh &= fresh - 1
						}
						if total == 0 {
							return n
						}
					}
				} else {
					moveset[x1][r1] |= cm1
				}
			}
		}

		// Shift: push the frontier into the neighboring columns.
		{
			shift := func(nx int) {
				m := toSearch[x][r] &^ searched[nx][r]
				if m != 0 {
					toSearch[nx][r] |= m
					remaining |= uint64(types.BbOne(remainingIndex(nx, r)))
					if isT {
						spinset[nx][r][types.NoSpin] |= m
					}
				}
			}
			if x > 0 {
				shift(x - 1)
			}
			if x < types.Columns-1 {
				shift(x + 1)
			}
		}

		// Rotate: try every kick offset for CW, CCW and a full flip.
		if piece != types.O {
			family := types.KicksFamily(piece)

			tryKicks := func(offsets []types.Coordinate, r1 types.Rotation) {
				current := toSearch[x][r]
				for i := 0; i < len(offsets) && current != 0; i++ {
					x1 := x + int(offsets[i].X)
					if x1 < 0 || x1 >= types.Columns {
						continue
					}
					y1 := 3 + int(offsets[i].Y)

					m := ((current << uint(y1)) >> 3) &^ cm.Bitmaps[x1][r1]
					current ^= (m << 3) >> uint(y1)

					if isT {
						corners := [4]types.Bitboard{types.BbAll, types.BbAll, types.BbAll, types.BbAll}
						if x1 > 0 {
							corners[0] = pf.Col[x1-1] >> 1
							corners[3] = pf.Col[x1-1]<<1 | 1
						}
						if x1 < types.Columns-1 {
							corners[1] = pf.Col[x1+1] >> 1
							corners[2] = pf.Col[x1+1]<<1 | 1
						}

						spins := m & ((corners[0] & corners[1] & (corners[2] | corners[3])) |
							(corners[2] & corners[3] & (corners[0] | corners[1])))

						spinset[x1][r1][types.NoSpin] |= m ^ spins

						if spins != 0 {
							if i >= 4 {
								spinset[x1][r1][types.Full] |= spins
							} else {
								full := spins & corners[r1] & corners[r1.Rotate(types.DirCW)]
								spinset[x1][r1][types.Mini] |= spins ^ full
								spinset[x1][r1][types.Full] |= full
							}
						}
					}

					if m &^= searched[x1][r1]; m != 0 {
						toSearch[x1][r1] |= m
						remaining |= uint64(types.BbOne(remainingIndex(x1, r1)))
					}
				}
			}

			tryKicks(types.KicksCW[family][r][:], r.Rotate(types.DirCW))
			tryKicks(types.KicksCCW[family][r][:], r.Rotate(types.DirCCW))
			tryKicks(types.Kicks180[family][r][:], r.Rotate(types.DirFlip))
		}

		searched[x][r] |= toSearch[x][r]
		toSearch[x][r] = 0
		remaining ^= uint64(types.BbOne(index))
	}

	if isT {
		for x := 0; x < types.Columns; x++ {
			for r := types.North; int(r) < msSize; r++ {
				if moveset[x][r] == 0 {
					continue
				}
				for _, s := range [3]types.SpinType{types.NoSpin, types.Mini, types.Full} {
					current := moveset[x][r] & spinset[x][r][s]
					moveset[x][r] &^= current
					for current != 0 {
						y := current.Ctz()
						dst[n] = types.NewMove(types.T, r, x, y, s)
						n++
						current &= current - 1
					}
				}
			}
		}
	}

	return n
}
