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

// Package board holds the Minishogi position: a 5x5 squares array, both
// hands, the side to move, and a terminal flag. The only mutator is
// PutMove; it trusts its caller (the movegen package) to have produced a
// legal move.
package board

import (
	. "github.com/toduq/gogo-shogi/types"
)

// NumSquares is the number of squares on the 5x5 board.
const NumSquares = 25

// Board is the complete position.
type Board struct {
	// Squares is the 5x5 grid, row-major. Row 0 is White's back rank, row 4
	// is Black's back rank. pos = row*5 + col.
	Squares [NumSquares]Piece

	// Hands holds captured pieces available for dropping. Absent marks an
	// empty slot. Slot order carries no game meaning.
	Hands [NumHandSlots]Piece

	// Turn is the side to move.
	Turn Turn

	// wonSet/wonBy encode the optional "a king has been captured" flag.
	wonSet bool
	wonBy  Turn
}

// Won reports whether the game has ended by king capture, and if so, which
// side won.
func (b *Board) Won() (Turn, bool) {
	return b.wonBy, b.wonSet
}

// Empty returns a Board with no pieces on the board or in hand, Black to
// move.
func Empty() Board {
	var b Board
	for i := range b.Squares {
		b.Squares[i] = Absent
	}
	for i := range b.Hands {
		b.Hands[i] = Absent
	}
	b.Turn = Black
	return b
}

// Init returns the Minishogi starting position: White's back rank (files
// 5->1) is Rook, Bishop, Silver, Gold, King with a Pawn one rank in front of
// the King; Black is the mirror image on the bottom two ranks. Hands are
// empty and Black moves first.
func Init() Board {
	b := Empty()
	b.Squares[0] = WRook
	b.Squares[1] = WBishop
	b.Squares[2] = WSilver
	b.Squares[3] = WGold
	b.Squares[4] = WKing
	b.Squares[9] = WPawn
	for i := 0; i <= 9; i++ {
		if !b.Squares[i].IsAbsent() {
			b.Squares[24-i] = b.Squares[i].Flip()
		}
	}
	return b
}

// At returns the piece on square pos.
func (b *Board) At(pos int) Piece {
	return b.Squares[pos]
}

// PutMove applies m to b. It performs no legality check; callers (the
// movegen package and the searcher) are expected to only pass pseudo-legal
// moves. Captures are demoted and recolored into the mover's hand; if the
// capture is a king, Won is set.
func (b *Board) PutMove(m Move) {
	captured := b.Squares[m.Dst]

	if m.IsDrop() {
		b.Hands[m.HandSlot()] = Absent
	} else {
		b.Squares[m.Src] = Absent
	}

	if m.Promote {
		b.Squares[m.Dst] = m.Piece.Promoted()
	} else {
		b.Squares[m.Dst] = m.Piece
	}

	b.Turn = b.Turn.Next()

	if !captured.IsAbsent() {
		toHand := captured.Flip()
		if toHand.IsPromoted() {
			toHand = toHand.Demoted()
		}
		for i := range b.Hands {
			if b.Hands[i].IsAbsent() {
				b.Hands[i] = toHand
				break
			}
		}
		if captured.IsKing() {
			b.wonSet = true
			b.wonBy = captured.Flip().Turn()
		}
	}
}

// FlipTurn toggles the side to move in place without applying a move. It is
// used to query "is my opponent in check" from a position built with the
// other side already to move.
func (b *Board) FlipTurn() {
	b.Turn = b.Turn.Next()
}

// CopyFrom overwrites b with other's contents. The searcher keeps one
// scratch Board and calls CopyFrom before every trial move instead of
// allocating a fresh Board per recursion frame.
func (b *Board) CopyFrom(other *Board) {
	*b = *other
}

// Clone returns an independent copy of b.
func (b *Board) Clone() Board {
	return *b
}
