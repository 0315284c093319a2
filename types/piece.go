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

// Package types holds the immutable value types shared by every other
// package: Piece, Turn and Move. Keeping the Piece <-> id arithmetic in one
// place is deliberate - the rest of the engine relies on "id xor 1 flips
// color" and "id + 8 promotes" and must never reimplement them.
package types

import "fmt"

// Piece is a tagged atom drawn from a closed set of 22 ids. Ids are chosen
// so that two invariants hold for every pair of ids:
//
//   - id xor 1 flips the color of a piece (same shape, other side)
//   - id + 8 promotes an unpromoted promotable piece (Silver/Bishop/Rook/Pawn)
//
// Absent and Invalid are not real pieces; every other id is a (color, kind)
// pair with Black at the even id and White at the odd id.
type Piece int8

// Piece ids. Unpromoted pairs occupy 2..13, promoted variants occupy 14..21
// (base id + 8, only defined for Silver/Bishop/Rook/Pawn).
const (
	Absent  Piece = 0
	Invalid Piece = 1

	BKing   Piece = 2
	WKing   Piece = 3
	BGold   Piece = 4
	WGold   Piece = 5
	BSilver Piece = 6
	WSilver Piece = 7
	BBishop Piece = 8
	WBishop Piece = 9
	BRook   Piece = 10
	WRook   Piece = 11
	BPawn   Piece = 12
	WPawn   Piece = 13

	BSilverP Piece = 14
	WSilverP Piece = 15
	BBishopP Piece = 16
	WBishopP Piece = 17
	BRookP   Piece = 18
	WRookP   Piece = 19
	BPawnP   Piece = 20
	WPawnP   Piece = 21

	// PieceLength is one past the highest valid piece id.
	PieceLength = 22
)

// pieceGlyphs holds a display glyph per piece id, indexed directly by id.
var pieceGlyphs = [PieceLength]string{
	"  ", "  ",
	"王", "王", "金", "金", "銀", "銀", "角", "角", "飛", "飛", "歩", "歩",
	"全", "全", "馬", "馬", "龍", "龍", "と", "と",
}

// IsAbsent reports whether p represents an empty square or hand slot.
func (p Piece) IsAbsent() bool {
	return p == Absent
}

// Turn returns the side of p. Only defined for non-Absent, non-Invalid
// pieces: ids are laid out so that the even id of every pair is Black.
func (p Piece) Turn() Turn {
	if p%2 == 0 {
		return Black
	}
	return White
}

// Flip returns the same piece with its color toggled.
func (p Piece) Flip() Piece {
	return p ^ 1
}

// OfTurn returns p recolored to t, leaving it unchanged if it already is t.
func (p Piece) OfTurn(t Turn) Piece {
	if p.Turn() == t {
		return p
	}
	return p.Flip()
}

// IsPromotable reports whether p is an unpromoted Silver, Bishop, Rook or
// Pawn - the only pieces for which Promoted is defined.
func (p Piece) IsPromotable() bool {
	return p >= BSilver && p <= WPawn
}

// IsPromoted reports whether p is one of the four promoted variants.
func (p Piece) IsPromoted() bool {
	return p >= BSilverP && p <= WPawnP
}

// Promoted returns the promoted variant of p. Only valid when
// p.IsPromotable() is true.
func (p Piece) Promoted() Piece {
	return p + 8
}

// Demoted returns the unpromoted variant of p. Only valid when
// p.IsPromoted() is true.
func (p Piece) Demoted() Piece {
	return p - 8
}

// String returns a display glyph for p.
func (p Piece) String() string {
	if p < 0 || int(p) >= PieceLength {
		return "??"
	}
	return pieceGlyphs[p]
}

// Value returns the material value of p (side-signed: positive for
// Black, negative for White, zero for Absent/Invalid).
func (p Piece) Value() int {
	if p < 0 || int(p) >= PieceLength {
		return 0
	}
	return pieceValue[p]
}

// pieceValue is indexed directly by piece id. The magnitudes are grounded
// on the original evaluator: king dwarfs every other piece but stays well
// below WIN_THRESHOLD so mate scores are never confused with material.
var pieceValue = [PieceLength]int{
	0, 0,
	100000, -100000, // King
	567, -567, // Gold
	528, -528, // Silver
	951, -951, // Bishop
	1087, -1087, // Rook
	93, -93, // Pawn
	582, -582, // Silver+
	1101, -1101, // Bishop+
	1550, -1550, // Rook+
	598, -598, // Pawn+
}

// MakePiece builds the unpromoted piece of kind base (BKing, BGold, ...)
// recolored to t. base must be one of the Black-side unpromoted constants.
func MakePiece(base Piece, t Turn) Piece {
	return base.OfTurn(t)
}

// IsKing reports whether p is either color's King.
func (p Piece) IsKing() bool {
	return p == BKing || p == WKing
}

func init() {
	// Guard the two arithmetic invariants the rest of the engine depends on.
	for p := BSilver; p <= WPawn; p++ {
		if p.Promoted()-8 != p || p.Flip().Turn() == p.Turn() {
			panic(fmt.Sprintf("piece id arithmetic broken for %d", p))
		}
	}
}
