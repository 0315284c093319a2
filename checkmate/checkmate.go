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

// Package checkmate implements a one-ply mate detector used by the searcher
// to sharpen leaf scores. It is not a full mate solver: it only looks one
// move ahead.
package checkmate

import (
	"github.com/toduq/gogo-shogi/board"
	"github.com/toduq/gogo-shogi/movegen"
)

// Result is the outcome of a one-ply mate check for the side to move on a
// leaf board.
type Result int

const (
	Unknown Result = iota
	Win
	Lose
)

// IsCheckmate evaluates b's side to move one ply deep: Lose if it is
// checked with no evasion, Win if some move leaves the opponent checked
// with no evasion, Unknown otherwise.
func IsCheckmate(b *board.Board) Result {
	if movegen.IsChecked(b, b.Turn) && len(movegen.EvasionMoves(b)) == 0 {
		return Lose
	}

	mover := b.Turn
	for _, m := range movegen.CapturesAndChecks(b) {
		next := b.Clone()
		next.PutMove(m)
		if movegen.IsChecked(&next, mover.Next()) && len(movegen.EvasionMoves(&next)) == 0 {
			return Win
		}
	}
	return Unknown
}
