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

// Package evaluator gives a static scalar score to a board.Board from the
// side-to-move's perspective: material on the board, material in hand
// (discounted), and a positional term rewarding proximity to the enemy
// King.
package evaluator

import (
	"github.com/toduq/gogo-shogi/board"
	"github.com/toduq/gogo-shogi/config"
	. "github.com/toduq/gogo-shogi/types"
)

// Evaluate returns the static score of b from b.Turn's perspective: higher
// is better for the side to move.
func Evaluate(b *board.Board) int {
	sum := materialSum(b)
	sum += positionalTerm(b)
	return sum * b.Turn.Val()
}

// materialSum adds every piece's side-signed value once per board square
// and at config.Settings.Eval.HandDiscountNum/Den strength per hand piece.
func materialSum(b *board.Board) int {
	sum := 0
	for _, p := range b.Squares {
		sum += pieceSum(p)
	}
	num, den := config.Settings.Eval.HandDiscountNum, config.Settings.Eval.HandDiscountDen
	for _, p := range b.Hands {
		sum += pieceSum(p) * num / den
	}
	return sum
}

// pieceSum returns p's side-signed material value, substituting the
// configured KingValue for a King in place of types.Piece's compiled-in
// constant.
func pieceSum(p Piece) int {
	switch p {
	case BKing:
		return config.Settings.Eval.KingValue
	case WKing:
		return -config.Settings.Eval.KingValue
	default:
		return p.Value()
	}
}

// positionalTerm sums, for every piece on the board, the Chebyshev distance
// to the square's own color's enemy King, subtracted so that being closer
// to the opponent's King scores higher. Symmetric by construction: it is
// computed once per side and combined with the same sign convention as
// material (Black contributes positively, White negatively).
func positionalTerm(b *board.Board) int {
	if config.Settings.Eval.PositionalWeight == 0 {
		return 0
	}

	blackKing, whiteKing := -1, -1
	for pos, p := range b.Squares {
		switch p {
		case BKing:
			blackKing = pos
		case WKing:
			whiteKing = pos
		}
	}

	total := 0
	for pos, p := range b.Squares {
		if p.IsAbsent() {
			continue
		}
		var enemyKing int
		if p.Turn() == Black {
			if whiteKing < 0 {
				continue
			}
			enemyKing = whiteKing
		} else {
			if blackKing < 0 {
				continue
			}
			enemyKing = blackKing
		}
		dist := chebyshev(pos, enemyKing)
		term := -dist * config.Settings.Eval.PositionalWeight
		if p.Turn() == White {
			term = -term
		}
		total += term
	}
	return total
}

func chebyshev(a, b int) int {
	ay, ax := a/5, a%5
	by, bx := b/5, b%5
	dy, dx := abs(ay-by), abs(ax-bx)
	if dy > dx {
		return dy
	}
	return dx
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
