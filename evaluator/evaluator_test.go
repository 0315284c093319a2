package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toduq/gogo-shogi/board"
	"github.com/toduq/gogo-shogi/config"
	. "github.com/toduq/gogo-shogi/types"
)

func init() {
	config.Setup()
}

func TestInitialPositionIsBalanced(t *testing.T) {
	b := board.Init()
	assert.Equal(t, 0, Evaluate(&b), "symmetric starting position scores 0 for the side to move")
}

func TestMaterialAdvantageFavorsSideHoldingIt(t *testing.T) {
	b := board.Empty()
	b.Squares[0] = BKing
	b.Squares[24] = WKing
	b.Squares[12] = BRook
	b.Turn = Black

	assert.Greater(t, Evaluate(&b), 0, "Black up a Rook should score positively for Black to move")
}

// mirror swaps every piece's color and reverses the board through its
// center (pos -> 24-pos, the same point reflection board.Init() uses to
// derive Black's back rank from White's), leaving the side to move
// unchanged - this is the "relabel Black and White" transform P5 requires
// the evaluator to be odd under.
func mirror(b *board.Board) board.Board {
	m := board.Empty()
	m.Turn = b.Turn
	for pos, p := range b.Squares {
		if p.IsAbsent() {
			continue
		}
		m.Squares[24-pos] = p.Flip()
	}
	for i, p := range b.Hands {
		if !p.IsAbsent() {
			m.Hands[i] = p.Flip()
		}
	}
	return m
}

func TestMirrorNegatesScore(t *testing.T) {
	b := board.Empty()
	b.Squares[0] = BKing
	b.Squares[24] = WKing
	b.Squares[12] = BRook
	b.Squares[7] = WGold
	b.Hands[0] = BSilver
	b.Turn = White

	m := mirror(&b)
	assert.Equal(t, -Evaluate(&b), Evaluate(&m))
}
