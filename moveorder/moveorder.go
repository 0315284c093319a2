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

// Package moveorder sorts candidate moves so alpha-beta sees the most
// promising ones first: captures, on-board moves over drops, piece
// strength, proximity to the enemy king, a history of past best moves,
// and a small random tiebreak.
package moveorder

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/toduq/gogo-shogi/board"
	"github.com/toduq/gogo-shogi/config"
	. "github.com/toduq/gogo-shogi/types"
)

// statCap is the per-entry count above which the whole Table is halved.
const statCap = 1000

// Table is the move-ordering statistics table: how often (piece, dst) has
// been the best move found at the end of a completed subtree. It is safe
// for concurrent use; a Searcher normally keeps one as an instance field,
// but several Searchers may share one if a caller constructs them that way.
type Table struct {
	mu     sync.Mutex
	counts [PieceLength][board.NumSquares]int
}

// NewTable returns an empty statistics table.
func NewTable() *Table {
	return &Table{}
}

// Record increments the entry for best's (piece, dst), halving every entry
// once that entry exceeds statCap. A no-op for the zero Move.
func (t *Table) Record(best Move) {
	if best.Piece.IsAbsent() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[best.Piece][best.Dst]++
	if t.counts[best.Piece][best.Dst] > statCap {
		for p := range t.counts {
			for d := range t.counts[p] {
				t.counts[p][d] /= 2
			}
		}
	}
}

func (t *Table) score(piece Piece, dst int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[piece][dst]
}

// scored pairs a candidate move with its one-time-computed priority, so
// sorting never needs to recompute or re-look-up a score by value.
type scored struct {
	move     Move
	priority int
}

// Reorder sorts moves (a copy, moves itself is left untouched) by
// descending priority and returns the sorted slice. table may be nil, in
// which case the statistics term contributes nothing.
func Reorder(b *board.Board, moves []Move, table *Table) []Move {
	support := supportingMoveCounts(moves)
	enemyKing := enemyKingSquare(b)

	pairs := make([]scored, len(moves))
	for i, m := range moves {
		pairs[i] = scored{move: m, priority: priority(b, m, support, enemyKing, table)}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].priority > pairs[j].priority
	})

	sorted := make([]Move, len(pairs))
	for i, sc := range pairs {
		sorted[i] = sc.move
	}
	return sorted
}

// supportingMoveCounts maps each destination square to the number of
// on-board (non-drop) candidate moves targeting it, used to discourage
// dropping onto a square nothing defends.
func supportingMoveCounts(moves []Move) map[int]int {
	counts := make(map[int]int, len(moves))
	for _, m := range moves {
		if !m.IsDrop() {
			counts[m.Dst]++
		}
	}
	return counts
}

func enemyKingSquare(b *board.Board) int {
	enemy := BKing.OfTurn(b.Turn.Next())
	for pos := 0; pos < board.NumSquares; pos++ {
		if b.At(pos) == enemy {
			return pos
		}
	}
	return -1
}

// priority computes the compound move-ordering score for a single
// candidate move m on board b.
func priority(b *board.Board, m Move, support map[int]int, enemyKing int, table *Table) int {
	score := 0

	if target := b.At(m.Dst); !target.IsAbsent() {
		score += (5000 + abs(target.Value())) * 100
	}

	if m.IsDrop() {
		if support[m.Dst] == 0 {
			score -= 100 * 100
		}
	} else {
		score += 100 * 100
	}

	score += abs(m.Piece.Value())

	if enemyKing >= 0 {
		dr, dc := rowColDelta(m.Dst, enemyKing)
		score += (4 - abs(dr)) * 500
		score += (4 - abs(dc)) * 500
	}

	if table != nil {
		score += table.score(m.Piece, m.Dst)
	}

	score += rand.Intn(config.Settings.Search.RandomizationRange)

	return score
}

func rowColDelta(a, b int) (int, int) {
	ar, ac := a/5, a%5
	br, bc := b/5, b%5
	return ar - br, ac - bc
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
