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
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/frankkopp/cobra-go/internal/config"
	"github.com/frankkopp/cobra-go/internal/state"
	"github.com/frankkopp/cobra-go/internal/types"
)

// Perft counts the number of distinct placement sequences reachable from
// an empty playfield by exhaustively enumerating moves for a fixed queue
// of upcoming pieces, the classic move generator benchmark.
type Perft struct {
	Nodes    uint64
	Duration time.Duration
}

// perftQueue is the fixed piece queue used by the benchmark, one of each
// tetromino in a fixed order. depth must not exceed its length; perft
// does not check this, and a deeper request indexes past the end of the
// queue.
var perftQueue = [...]types.Piece{types.I, types.O, types.T, types.L, types.J, types.S, types.Z}

// NewPerft creates an idle Perft counter.
func NewPerft() *Perft {
	return &Perft{}
}

// StartPerft runs perft to depth on a fresh game state, consuming the
// fixed seven-piece queue, and records the resulting node count and wall
// clock duration.
func (p *Perft) StartPerft(depth int) {
	log.Infof("Starting Perft to depth %d", depth)

	st := state.New()
	start := time.Now()
	p.Nodes = perft(st, perftQueue[:], depth)
	p.Duration = time.Since(start)

	log.Infof("Depth: %d Nodes: %d Time: %dms NPS: %d",
		depth, p.Nodes, p.Duration.Milliseconds(), p.Nps())
}

// StartPerftParallel runs StartPerft, but fans the top-level moves of the
// first piece in the queue out across goroutines via an errgroup - each
// goroutine walks an independent State copy, so no locking is needed.
// The per-depth behavior and resulting node count are identical to
// StartPerft; only the wall clock time differs.
func (p *Perft) StartPerftParallel(depth int) error {
	if depth < 1 {
		p.Nodes, p.Duration = 0, 0
		return nil
	}

	workers := config.Settings.Gen.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	st := state.New()
	var buf [config.MaxMoves]types.Move
	n := Generate(&st.Board, perftQueue[0], config.Settings.Gen.ForceSeed, buf[:])

	start := time.Now()

	if depth == 1 {
		p.Nodes = uint64(n)
		p.Duration = time.Since(start)
	} else {
		counts := make([]uint64, n)
		g, _ := errgroup.WithContext(context.Background())
		sem := make(chan struct{}, workers)

		for i := 0; i < n; i++ {
			i, move := i, buf[i]
			g.Go(func() error {
				sem <- struct{}{}
				defer func() { <-sem }()
				child := *st
				child.ApplyMove(move)
				counts[i] = perft(&child, perftQueue[1:], depth-1)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}

		var total uint64
		for _, c := range counts {
			total += c
		}
		p.Nodes = total
		p.Duration = time.Since(start)
	}

	log.Infof("Depth: %d Nodes: %d Time: %dms NPS: %d",
		depth, p.Nodes, p.Duration.Milliseconds(), p.Nps())

	return nil
}

// Nps returns nodes searched per second for the last run, guarding against
// division by a zero duration.
func (p *Perft) Nps() uint64 {
	ms := p.Duration.Milliseconds()
	return p.Nodes * 1000 / uint64(ms+1)
}

// perft recursively counts the leaves of the placement tree rooted at st,
// advancing next one piece per ply. Each child move is applied through the
// scoring state machine so full rows disappear before the next ply is
// enumerated. At the final ply the move count itself is the answer, so
// the children are not expanded. Seeding honors Settings.Gen.ForceSeed;
// the default (off) reproduces the reference node counts.
func perft(st *state.State, next []types.Piece, depth int) uint64 {
	var buf [config.MaxMoves]types.Move
	n := Generate(&st.Board, next[0], config.Settings.Gen.ForceSeed, buf[:])
	if depth == 1 {
		return uint64(n)
	}

	var nodes uint64
	for i := 0; i < n; i++ {
		child := *st
		child.ApplyMove(buf[i])
		nodes += perft(&child, next[1:], depth-1)
	}
	return nodes
}
