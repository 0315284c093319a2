package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toduq/gogo-shogi/board"
	. "github.com/toduq/gogo-shogi/types"
)

func TestInitialPositionMoveCount(t *testing.T) {
	b := board.Init()
	moves := AllValidMoves(&b)
	assert.NotEmpty(t, moves)
	for _, m := range moves {
		assert.False(t, m.IsDrop(), "initial position has empty hands, no drops possible")
	}
}

func TestRayStopsAtFirstOccupant(t *testing.T) {
	b := board.Empty()
	b.Squares[20] = BRook // bottom-left corner, ray going up the file
	b.Squares[10] = WGold // blocker two ranks up
	b.Turn = Black

	moves := AllValidMoves(&b)
	dsts := map[int]bool{}
	for _, m := range moves {
		if m.Piece == BRook && m.Src == 20 {
			dsts[m.Dst] = true
		}
	}
	assert.True(t, dsts[15], "rook should reach the empty square just below the blocker")
	assert.True(t, dsts[10], "rook should be able to capture the blocker")
	assert.False(t, dsts[5], "rook must not jump over the blocker")
}

func TestRayStopsBeforeFriendlyPiece(t *testing.T) {
	b := board.Empty()
	b.Squares[20] = BRook
	b.Squares[10] = BGold // friendly blocker
	b.Turn = Black

	moves := AllValidMoves(&b)
	for _, m := range moves {
		if m.Piece == BRook && m.Src == 20 {
			assert.NotEqual(t, 10, m.Dst, "must not capture own piece")
			assert.NotEqual(t, 5, m.Dst, "must not pass through own piece")
		}
	}
}

func TestDropsDedupeByKindAndTargetEmptySquares(t *testing.T) {
	b := board.Empty()
	b.Squares[0] = WKing
	b.Squares[24] = BKing
	b.Hands[0] = BGold
	b.Hands[1] = BGold // duplicate kind, should not double the move set
	b.Turn = Black

	moves := AllValidMoves(&b)
	count := 0
	for _, m := range moves {
		if m.IsDrop() {
			assert.True(t, b.At(m.Dst).IsAbsent())
			count++
		}
	}
	assert.Equal(t, board.NumSquares-2, count)
}

func TestIsCheckedDetectsAttackOnKing(t *testing.T) {
	b := board.Empty()
	b.Squares[0] = WKing
	b.Squares[5] = BRook
	b.Squares[24] = BKing
	b.Turn = White

	assert.True(t, IsChecked(&b, White))
}

func TestIsCheckedFalseWhenNoKing(t *testing.T) {
	b := board.Empty()
	b.Squares[24] = BKing
	b.Turn = White

	assert.False(t, IsChecked(&b, White))
}

func TestEvasionMovesEmptyAfterBlockedMate(t *testing.T) {
	// White King at 2, Black Gold at 7 (giving check) backed by a Black
	// Pawn at 12 covering the capture square. No escape, no evasion.
	b := board.Empty()
	b.Squares[2] = WKing
	b.Squares[7] = BGold
	b.Squares[12] = BPawn
	b.Squares[20] = BKing
	b.Turn = White

	assert.True(t, IsChecked(&b, White))
	evasions := EvasionMoves(&b)
	assert.Empty(t, evasions)
}
