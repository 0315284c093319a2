package checkmate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toduq/gogo-shogi/board"
	"github.com/toduq/gogo-shogi/movegen"
	. "github.com/toduq/gogo-shogi/types"
)

func TestKingInFrontOfGoldIsLose(t *testing.T) {
	b := board.Empty()
	b.Squares[2] = WKing
	b.Squares[7] = BGold
	b.Squares[12] = BPawn
	b.Squares[20] = BKing
	b.Turn = White

	assert.Equal(t, Lose, IsCheckmate(&b))
}

func TestKingInFrontOfSilverIsUnknown(t *testing.T) {
	// Silver at 7 gives check straight forward, but unlike Gold it does not
	// cover the sideways squares 6 and 8 - the King can step sideways to
	// escape.
	b := board.Empty()
	b.Squares[2] = WKing
	b.Squares[7] = BSilver
	b.Squares[12] = BPawn
	b.Squares[20] = BKing
	b.Turn = White

	assert.Equal(t, Unknown, IsCheckmate(&b))
}

func TestSilverDropDeliversMateInOne(t *testing.T) {
	// White King at 1, Black Gold at 11, Black King at 24, Black holds a
	// Silver in hand and drops it at 6 to checkmate.
	b := board.Empty()
	b.Squares[1] = WKing
	b.Squares[11] = BGold
	b.Squares[24] = BKing
	b.Hands[0] = BSilver
	b.Turn = Black

	assert.Equal(t, Win, IsCheckmate(&b))
}

func TestLoseImpliesCheckedWithNoEvasion(t *testing.T) {
	b := board.Empty()
	b.Squares[2] = WKing
	b.Squares[7] = BGold
	b.Squares[12] = BPawn
	b.Squares[20] = BKing
	b.Turn = White

	require := assert.New(t)
	if IsCheckmate(&b) == Lose {
		require.Empty(movegen.EvasionMoves(&b))
		require.True(movegen.IsChecked(&b, White))
	}
}
