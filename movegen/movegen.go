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

// Package movegen produces pseudo-legal moves for a board.Board: on-board
// slides/steps plus drops, and the specialized filters the searcher needs
// for quiescence (captures-and-checks, evasions).
package movegen

import (
	"github.com/toduq/gogo-shogi/board"
	. "github.com/toduq/gogo-shogi/types"
)

// AllValidMoves returns every pseudo-legal move for b.Turn: on-board moves
// plus drops. Returns nil if the game has already ended.
func AllValidMoves(b *board.Board) []Move {
	if _, won := b.Won(); won {
		return nil
	}
	moves := onBoardMoves(b, b.Turn)
	moves = append(moves, dropMoves(b, b.Turn)...)
	return moves
}

// onBoardMoves enumerates moves for side's own pieces already on the board,
// ignoring drops. Used both by AllValidMoves and by IsChecked (which must
// not consider drops when asking "does the opponent threaten this square").
func onBoardMoves(b *board.Board, side Turn) []Move {
	var moves []Move
	for pos := 0; pos < board.NumSquares; pos++ {
		p := b.At(pos)
		if p.IsAbsent() || p.Turn() != side {
			continue
		}
		for _, ray := range board.Rays(p, pos) {
			for _, step := range ray {
				occupant := b.At(step.Dst)
				if occupant.IsAbsent() {
					moves = append(moves, step.Moves...)
					continue
				}
				if occupant.Turn() != side {
					moves = append(moves, step.Moves...)
				}
				break
			}
		}
	}
	return moves
}

// dropMoves enumerates one drop move per distinct unpromoted piece kind
// held in side's hand, onto every empty square. Duplicate pieces of the
// same kind in hand would produce an identical move set, so only the first
// occurrence of each kind is used.
func dropMoves(b *board.Board, side Turn) []Move {
	var moves []Move
	seen := make(map[Piece]bool, NumHandSlots)
	for slot, p := range b.Hands {
		if p.IsAbsent() || p.Turn() != side || seen[p] {
			continue
		}
		seen[p] = true
		for pos := 0; pos < board.NumSquares; pos++ {
			if b.At(pos).IsAbsent() {
				moves = append(moves, Move{Piece: p, Src: HandBase + slot, Dst: pos, Promote: false})
			}
		}
	}
	return moves
}

// kingSquare returns the board index of side's King, or -1 if it has
// already been captured. It panics if side has more than one King on the
// board, which no sequence of generated moves can produce.
func kingSquare(b *board.Board, side Turn) int {
	king := BKing.OfTurn(side)
	found := -1
	for pos := 0; pos < board.NumSquares; pos++ {
		if b.At(pos) == king {
			if found >= 0 {
				panic("movegen: more than one King of the same color on the board")
			}
			found = pos
		}
	}
	return found
}

// IsChecked reports whether side's King is attacked by the opponent's
// on-board pieces. A side with no King left on the board is not "checked" -
// it has already lost.
func IsChecked(b *board.Board, side Turn) bool {
	king := kingSquare(b, side)
	if king < 0 {
		return false
	}
	for _, m := range onBoardMoves(b, side.Next()) {
		if m.Dst == king {
			return true
		}
	}
	return false
}

// applied returns a scratch copy of b with m applied, without mutating b.
func applied(b *board.Board, m Move) board.Board {
	next := b.Clone()
	next.PutMove(m)
	return next
}

// EvasionMoves returns every move that resolves an existing check against
// the mover's own King. Used both as the quiescence seed when in check and
// by the checkmate detector.
func EvasionMoves(b *board.Board) []Move {
	mover := b.Turn
	var out []Move
	for _, m := range AllValidMoves(b) {
		next := applied(b, m)
		if !IsChecked(&next, mover) {
			out = append(out, m)
		}
	}
	return out
}

// CapturesAndChecks returns the quiescence-search seed: if the mover is in
// check, the set of evasions; otherwise every move that either captures or
// gives check.
func CapturesAndChecks(b *board.Board) []Move {
	if IsChecked(b, b.Turn) {
		return EvasionMoves(b)
	}
	mover := b.Turn
	var out []Move
	for _, m := range AllValidMoves(b) {
		if !b.At(m.Dst).IsAbsent() {
			out = append(out, m)
			continue
		}
		next := applied(b, m)
		if IsChecked(&next, mover.Next()) {
			out = append(out, m)
		}
	}
	return out
}
