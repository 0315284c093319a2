/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package search implements iterative-deepening negamax with alpha-beta
// pruning and a quiescence extension over captures and checks, sharpened
// at the leaves by the one-ply checkmate detector.
package search

import (
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/toduq/gogo-shogi/board"
	"github.com/toduq/gogo-shogi/checkmate"
	"github.com/toduq/gogo-shogi/config"
	"github.com/toduq/gogo-shogi/evaluator"
	"github.com/toduq/gogo-shogi/logging"
	"github.com/toduq/gogo-shogi/movegen"
	"github.com/toduq/gogo-shogi/moveorder"
	. "github.com/toduq/gogo-shogi/types"
)

var out = message.NewPrinter(language.German)
var log = logging.GetSearchLog()

// Result is the outcome of a completed search: the chosen move, its score
// from the side-to-move's perspective, and the number of leaves visited.
type Result struct {
	Move     Move
	Score    int
	Searched int
}

// Searcher owns the scratch state for repeated searches: the move-ordering
// statistics table and a reentrancy guard. The zero value is not usable;
// construct with New.
type Searcher struct {
	table     *moveorder.Table
	isRunning *semaphore.Weighted
}

// New returns a ready-to-use Searcher with its own statistics table.
func New() *Searcher {
	return &Searcher{
		table:     moveorder.NewTable(),
		isRunning: semaphore.NewWeighted(1),
	}
}

// NewWithTable returns a Searcher sharing table with other Searchers, so a
// caller running several searches can pool move-ordering statistics. table
// must not be nil.
func NewWithTable(table *moveorder.Table) *Searcher {
	return &Searcher{
		table:     table,
		isRunning: semaphore.NewWeighted(1),
	}
}

// FindBestMove runs iterative deepening from depth 1 to config.Settings.Search.Depth
// and returns the last completed iteration's result. Returns ok=false if b
// has no legal move for the side to move. Guards against concurrent
// invocation on the same Searcher with a try-acquire: a second caller gets
// ok=false immediately rather than blocking or corrupting shared state.
func (s *Searcher) FindBestMove(b *board.Board) (Result, bool) {
	if !s.isRunning.TryAcquire(1) {
		return Result{}, false
	}
	defer s.isRunning.Release(1)

	limit := config.Settings.Search.ScoreLimit
	winThreshold := config.Settings.Search.WinThreshold

	last := Result{Move: NoMove, Score: -limit}
	for depth := 1; depth <= config.Settings.Search.Depth; depth++ {
		last = s.recSearch(b, 0, depth, -limit, limit)
		if last.Move.Piece.IsAbsent() {
			return Result{}, false
		}
		log.Debug(out.Sprintf("depth %d: move=%s score=%d nodes=%d", depth, last.Move, last.Score, last.Searched))
		if last.Score > winThreshold {
			break
		}
	}
	return last, true
}

// recSearch is negamax with alpha-beta over all pseudo-legal moves down to
// max_depth, then handing off to quiescence. b is never mutated; a scratch
// board local to this frame is reused across sibling trials via CopyFrom so
// no board is heap-allocated per candidate move.
func (s *Searcher) recSearch(b *board.Board, depth, maxDepth, alpha, beta int) Result {
	limit := config.Settings.Search.ScoreLimit

	if _, won := b.Won(); won {
		return Result{Move: NoMove, Score: -limit + depth, Searched: 1}
	}
	if depth >= maxDepth {
		return s.qSearch(b, depth, depth+config.Settings.Search.QSearchDepth, evaluator.Evaluate(b), beta)
	}

	moves := moveorder.Reorder(b, movegen.AllValidMoves(b), s.table)
	best := Result{Move: NoMove, Score: alpha}

	var next board.Board
	for _, m := range moves {
		next.CopyFrom(b)
		next.PutMove(m)

		child := s.recSearch(&next, depth+1, maxDepth, -beta, -best.Score)
		score := -child.Score
		best.Searched += child.Searched
		if score > best.Score {
			best.Move = m
			best.Score = score
		}
		if score > beta || score > config.Settings.Search.WinThreshold {
			return best
		}
	}

	s.table.Record(best.Move)
	return best
}

// qSearch extends the line over captures-and-checks (or evasions, if the
// side to move is already in check) until the list is exhausted or maxDepth
// is reached, at which point the leaf is scored by the checkmate detector
// falling back to the static evaluator.
func (s *Searcher) qSearch(b *board.Board, depth, maxDepth, alpha, beta int) Result {
	limit := config.Settings.Search.ScoreLimit

	if _, won := b.Won(); won {
		return Result{Move: NoMove, Score: -limit + depth, Searched: 1}
	}
	if depth >= maxDepth {
		return evaluateLeaf(b, depth)
	}

	moves := movegen.CapturesAndChecks(b)
	if len(moves) == 0 {
		return evaluateLeaf(b, depth)
	}
	moves = moveorder.Reorder(b, moves, s.table)

	best := Result{Move: NoMove, Score: alpha}

	var next board.Board
	for _, m := range moves {
		next.CopyFrom(b)
		next.PutMove(m)

		child := s.qSearch(&next, depth+1, maxDepth, -beta, -best.Score)
		score := -child.Score
		best.Searched += child.Searched
		if score > best.Score {
			best.Move = m
			best.Score = score
		}
		if score > beta || score > config.Settings.Search.WinThreshold {
			return best
		}
	}
	return best
}

// evaluateLeaf scores a quiescence leaf with the one-ply checkmate
// detector, falling back to the static evaluator when it finds nothing.
func evaluateLeaf(b *board.Board, depth int) Result {
	limit := config.Settings.Search.ScoreLimit
	switch checkmate.IsCheckmate(b) {
	case checkmate.Win:
		return Result{Move: NoMove, Score: limit - depth, Searched: 1}
	case checkmate.Lose:
		return Result{Move: NoMove, Score: -limit + depth, Searched: 1}
	default:
		return Result{Move: NoMove, Score: evaluator.Evaluate(b), Searched: 1}
	}
}
