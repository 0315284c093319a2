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

package board

import (
	"sync"

	. "github.com/toduq/gogo-shogi/types"
)

// offset is a (dy, dx) step relative to a square, Black-forward being -y.
type offset struct{ dy, dx int }

// RayStep is one square along a ray: the destination and the Move(s) that
// land on it (two moves only for a Silver reaching the mover's last rank -
// promote and non-promote are both legal there).
type RayStep struct {
	Dst   int
	Moves []Move
}

// table[piece][pos] is the list of rays a piece standing on pos may walk.
// Built once, lazily, on first access; immutable afterwards.
var (
	table     [PieceLength][NumSquares][][]RayStep
	tableOnce sync.Once
)

func moveTable() *[PieceLength][NumSquares][][]RayStep {
	tableOnce.Do(buildMoveTable)
	return &table
}

func buildMoveTable() {
	for p := BKing; p <= WPawnP; p++ {
		rays := kindRays(p)
		for pos := 0; pos < NumSquares; pos++ {
			table[p][pos] = raysForSquare(p, pos, rays)
		}
	}
}

// kindRays returns the Black-forward-normalized rays for p's kind, negated
// for White. Rays are ordered by increasing distance from the origin
// square; each ray is a distinct direction.
func kindRays(p Piece) [][]offset {
	black := p.OfTurn(Black)

	var rays [][]offset
	switch black {
	case BKing:
		rays = singleSteps(
			offset{-1, -1}, offset{-1, 0}, offset{-1, 1},
			offset{0, -1}, offset{0, 1},
			offset{1, -1}, offset{1, 0}, offset{1, 1},
		)
	case BGold, BSilverP, BPawnP:
		rays = singleSteps(
			offset{-1, -1}, offset{-1, 0}, offset{-1, 1},
			offset{0, -1}, offset{0, 1},
			offset{1, 0},
		)
	case BSilver:
		rays = singleSteps(
			offset{-1, -1}, offset{-1, 0}, offset{-1, 1},
			offset{1, -1}, offset{1, 1},
		)
	case BBishop:
		rays = longRays(offset{-1, -1}, offset{-1, 1}, offset{1, -1}, offset{1, 1})
	case BRook:
		rays = longRays(offset{-1, 0}, offset{0, -1}, offset{0, 1}, offset{1, 0})
	case BPawn:
		rays = singleSteps(offset{-1, 0})
	case BBishopP:
		rays = append(longRays(offset{-1, -1}, offset{-1, 1}, offset{1, -1}, offset{1, 1}),
			singleSteps(offset{-1, 0}, offset{0, -1}, offset{0, 1}, offset{1, 0})...)
	case BRookP:
		rays = append(longRays(offset{-1, 0}, offset{0, -1}, offset{0, 1}, offset{1, 0}),
			singleSteps(offset{-1, -1}, offset{-1, 1}, offset{1, -1}, offset{1, 1})...)
	default:
		return nil
	}

	if p.Turn() == White {
		negated := make([][]offset, len(rays))
		for i, ray := range rays {
			flipped := make([]offset, len(ray))
			for j, o := range ray {
				flipped[j] = offset{-o.dy, o.dx}
			}
			negated[i] = flipped
		}
		return negated
	}
	return rays
}

func singleSteps(offs ...offset) [][]offset {
	rays := make([][]offset, len(offs))
	for i, o := range offs {
		rays[i] = []offset{o}
	}
	return rays
}

// longRays turns each direction into a 4-step ray (the longest possible
// slide on a 5x5 board), to be clipped to the grid per origin square.
func longRays(dirs ...offset) [][]offset {
	rays := make([][]offset, len(dirs))
	for i, d := range dirs {
		ray := make([]offset, 4)
		for step := 1; step <= 4; step++ {
			ray[step-1] = offset{d.dy * step, d.dx * step}
		}
		rays[i] = ray
	}
	return rays
}

// lastRankFor returns the board row that is the mover's last rank.
func lastRankFor(t Turn) int {
	if t == Black {
		return 0
	}
	return 4
}

// raysForSquare clips patternRays to the grid from pos and materializes the
// resulting destinations into Move values, expanding promotion choices on
// the mover's last rank.
func raysForSquare(p Piece, pos int, patternRays [][]offset) [][]RayStep {
	y, x := pos/5, pos%5
	mover := p.Turn()
	last := lastRankFor(mover)

	result := make([][]RayStep, 0, len(patternRays))
	for _, ray := range patternRays {
		var steps []RayStep
		for _, o := range ray {
			ny, nx := y+o.dy, x+o.dx
			if ny < 0 || ny > 4 || nx < 0 || nx > 4 {
				break
			}
			dst := ny*5 + nx
			steps = append(steps, RayStep{Dst: dst, Moves: movesTo(p, pos, dst, ny == last)})
		}
		if len(steps) > 0 {
			result = append(result, steps)
		}
	}
	return result
}

// movesTo builds the Move(s) landing on dst. A Silver reaching the last
// rank may promote or not; Bishop/Rook/Pawn must promote there; everything
// else never promotes.
func movesTo(p Piece, src, dst int, onLastRank bool) []Move {
	if onLastRank && p.IsPromotable() {
		if p.OfTurn(Black) == BSilver {
			return []Move{
				{Piece: p, Src: src, Dst: dst, Promote: false},
				{Piece: p, Src: src, Dst: dst, Promote: true},
			}
		}
		return []Move{{Piece: p, Src: src, Dst: dst, Promote: true}}
	}
	return []Move{{Piece: p, Src: src, Dst: dst, Promote: false}}
}
