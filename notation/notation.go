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

// Package notation parses and formats the comma-separated board notation
// used by test fixtures and the CLI, and the short move-string grammar the
// CLI reads from a human player.
package notation

import (
	"fmt"
	"strings"

	"github.com/toduq/gogo-shogi/board"
	. "github.com/toduq/gogo-shogi/types"
)

// pieceGlyph maps a notation kind letter to its Black-side, unpromoted
// Piece; the caller recolors with OfTurn and promotes separately.
var pieceGlyph = map[byte]Piece{
	'k': BKing,
	'g': BGold,
	's': BSilver,
	'b': BBishop,
	'r': BRook,
	'p': BPawn,
	'S': BSilverP,
	'B': BBishopP,
	'R': BRookP,
	'P': BPawnP,
}

// ParseBoard parses the comma-separated token notation: an on-board token
// is "<col><row><side><kind>" (e.g. "31wk"), a hand token is
// "__<side><kind>" (e.g. "__bg"). Promoted pieces use an uppercase kind
// letter. Returns an error naming the offending token on malformed input.
func ParseBoard(s string) (*board.Board, error) {
	b := board.Empty()
	for _, tok := range strings.Split(strings.TrimSpace(s), ",") {
		if len(tok) != 4 {
			return nil, fmt.Errorf("notation: token %q is not 4 characters", tok)
		}
		side, err := parseSide(tok[2])
		if err != nil {
			return nil, fmt.Errorf("notation: token %q: %w", tok, err)
		}
		base, ok := pieceGlyph[tok[3]]
		if !ok {
			return nil, fmt.Errorf("notation: token %q has unknown kind %q", tok, tok[3])
		}
		piece := base.OfTurn(side)

		if tok[0] == '_' {
			slot := firstEmptyHandSlot(&b)
			if slot < 0 {
				return nil, fmt.Errorf("notation: no free hand slot for token %q", tok)
			}
			b.Hands[slot] = piece
			continue
		}

		pos, err := parsePos(tok[0], tok[1])
		if err != nil {
			return nil, fmt.Errorf("notation: token %q: %w", tok, err)
		}
		b.Squares[pos] = piece
	}
	return &b, nil
}

func firstEmptyHandSlot(b *board.Board) int {
	for i, p := range b.Hands {
		if p.IsAbsent() {
			return i
		}
	}
	return -1
}

func parseSide(c byte) (Turn, error) {
	switch c {
	case 'b':
		return Black, nil
	case 'w':
		return White, nil
	default:
		return Black, fmt.Errorf("notation: unknown side %q", c)
	}
}

// parsePos converts a (col, row) digit pair ('1'..'5' each) to a board
// index: pos = (row-1)*5 + (5-col).
func parsePos(col, row byte) (int, error) {
	if col < '1' || col > '5' || row < '1' || row > '5' {
		return 0, fmt.Errorf("notation: position %q%q out of range 1..5", col, row)
	}
	c := int(col - '0')
	r := int(row - '0')
	return (r-1)*5 + (5 - c), nil
}

// ParseMove parses the CLI move grammar: "<colFrom><rowFrom><colTo><rowTo>[p]"
// for an on-board move (trailing "p" means promote), or
// "<kind><colTo><rowTo>" for a drop, resolving the hand slot by scanning b's
// hand for a matching piece of the side to move.
func ParseMove(b *board.Board, s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return NoMove, fmt.Errorf("notation: empty move string")
	}

	if s[0] >= '1' && s[0] <= '5' {
		if len(s) < 4 {
			return NoMove, fmt.Errorf("notation: move %q too short", s)
		}
		src, err := parsePos(s[0], s[1])
		if err != nil {
			return NoMove, err
		}
		dst, err := parsePos(s[2], s[3])
		if err != nil {
			return NoMove, err
		}
		promote := len(s) >= 5 && s[4] == 'p'
		return Move{Piece: b.At(src), Src: src, Dst: dst, Promote: promote}, nil
	}

	if len(s) < 3 {
		return NoMove, fmt.Errorf("notation: drop %q too short", s)
	}
	base, ok := pieceGlyph[s[0]]
	if !ok {
		return NoMove, fmt.Errorf("notation: drop %q has unknown kind %q", s, s[0])
	}
	piece := base.OfTurn(b.Turn)
	dst, err := parsePos(s[1], s[2])
	if err != nil {
		return NoMove, err
	}
	for slot, p := range b.Hands {
		if p == piece {
			return Move{Piece: piece, Src: HandBase + slot, Dst: dst, Promote: false}, nil
		}
	}
	return NoMove, fmt.Errorf("notation: no %q in hand to drop", s[0])
}

// files lists the display column header, 5..1 left to right - the reverse
// of the board index's column order. Keep this separate from parsePos:
// display order and index order deliberately do not match.
var files = [board.NumSquares / 5]string{"5", "4", "3", "2", "1"}

// FormatBoard renders b as a fixed-width grid (files 5..1 left to right,
// ranks 1..5 top to bottom) followed by both hands' contents.
func FormatBoard(b *board.Board) string {
	var sb strings.Builder
	sb.WriteString("   5  4  3  2  1 \n")
	sb.WriteString("   --------------\n")
	for row := 0; row < len(files); row++ {
		fmt.Fprintf(&sb, "%d |", row+1)
		for col := 0; col < 5; col++ {
			fmt.Fprintf(&sb, "%s ", b.At(row*5+col))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("Hands: ")
	for _, p := range b.Hands {
		if !p.IsAbsent() {
			fmt.Fprintf(&sb, "%s ", p)
		}
	}
	return sb.String()
}
