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

package types

import "fmt"

// HandBase is the src value below which a Move is an on-board move. Src
// values at or above HandBase encode a drop from hand slot (src - HandBase).
const HandBase = 100

// NumHandSlots is the number of hand slots a side can hold.
const NumHandSlots = 10

// Move is the quadruple (piece, src, dst, promote). Dst is always a board
// index 0..24. Src is either a board index (on-board move) or
// HandBase+handSlot (a drop). The zero Move (Piece Absent, src 0, dst 0,
// promote false) is used as the sentinel "no move found".
type Move struct {
	Piece   Piece
	Src     int
	Dst     int
	Promote bool
}

// NoMove is the sentinel returned when a search or generator has nothing to
// offer.
var NoMove = Move{Piece: Absent, Src: 0, Dst: 0, Promote: false}

// IsDrop reports whether m places a piece from hand rather than moving one
// already on the board.
func (m Move) IsDrop() bool {
	return m.Src >= HandBase
}

// HandSlot returns the hand slot index a drop move draws from. Only valid
// when m.IsDrop() is true.
func (m Move) HandSlot() int {
	return m.Src - HandBase
}

// String renders a Move for logs and debugging using the piece glyph, e.g.
// "歩 9->14" or "銀 drop->6" (the glyph does not show the piece's color).
func (m Move) String() string {
	if m.IsDrop() {
		return fmt.Sprintf("%s drop->%d", m.Piece, m.Dst)
	}
	suffix := ""
	if m.Promote {
		suffix = "+"
	}
	return fmt.Sprintf("%s %d->%d%s", m.Piece, m.Src, m.Dst, suffix)
}
