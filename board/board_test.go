package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	. "github.com/toduq/gogo-shogi/types"
)

func TestInitPlacesBackRanksAsMirrorImages(t *testing.T) {
	b := Init()
	assert.Equal(t, WRook, b.Squares[0])
	assert.Equal(t, WKing, b.Squares[4])
	assert.Equal(t, WPawn, b.Squares[9])
	assert.Equal(t, BPawn, b.Squares[15])
	assert.Equal(t, BKing, b.Squares[20])
	assert.Equal(t, BRook, b.Squares[24])
	assert.Equal(t, Black, b.Turn)
}

func TestPutMoveCapturesIntoHandDemotedAndRecolored(t *testing.T) {
	b := Empty()
	b.Squares[0] = BRook
	b.Squares[5] = WSilverP
	b.Turn = Black

	b.PutMove(Move{Piece: BRook, Src: 0, Dst: 5})

	assert.True(t, b.Squares[0].IsAbsent())
	assert.Equal(t, BRook, b.Squares[5])
	assert.Equal(t, BSilver, b.Hands[0], "captured promoted White Silver becomes an unpromoted Black Silver in hand")
	assert.Equal(t, White, b.Turn)
}

func TestPutMoveCapturingKingSetsWon(t *testing.T) {
	b := Empty()
	b.Squares[0] = BRook
	b.Squares[5] = WKing
	b.Turn = Black

	b.PutMove(Move{Piece: BRook, Src: 0, Dst: 5})

	winner, won := b.Won()
	assert.True(t, won)
	assert.Equal(t, Black, winner)
}

func TestCopyFromOverwritesReceiver(t *testing.T) {
	src := Init()
	var dst Board
	dst.Squares[0] = BGold
	dst.Turn = White

	dst.CopyFrom(&src)
	assert.Equal(t, src, dst)
}

// shapeOf collapses a Piece to one of six kind buckets regardless of color
// or promotion, for material-conservation bookkeeping.
func shapeOf(p Piece) int {
	if p.IsAbsent() {
		return -1
	}
	if p.IsPromoted() {
		p = p.Demoted()
	}
	return (int(p) - int(BKing)) / 2
}

func countShapes(b *Board) map[int]int {
	counts := make(map[int]int)
	for _, p := range b.Squares {
		if s := shapeOf(p); s >= 0 {
			counts[s]++
		}
	}
	for _, p := range b.Hands {
		if s := shapeOf(p); s >= 0 {
			counts[s]++
		}
	}
	return counts
}

// TestHandConservationAcrossMoves checks P2: total material (board + hands,
// promoted counted as its base kind) is invariant under any sequence of
// PutMove applications starting from Init(), since every capture demotes
// and recolors the taken piece straight into the taker's hand rather than
// removing it.
func TestHandConservationAcrossMoves(t *testing.T) {
	b := Init()
	before := countShapes(&b)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 40; i++ {
		if _, won := b.Won(); won {
			break
		}
		moves := pseudoLegalMoves(&b)
		if len(moves) == 0 {
			break
		}
		b.PutMove(moves[rng.Intn(len(moves))])
	}

	after := countShapes(&b)
	assert.Equal(t, before, after)
}

// pseudoLegalMoves is a tiny stand-in for movegen.AllValidMoves kept local
// to this test to avoid an import cycle (movegen already imports board).
func pseudoLegalMoves(b *Board) []Move {
	var moves []Move
	for pos := 0; pos < NumSquares; pos++ {
		p := b.At(pos)
		if p.IsAbsent() || p.Turn() != b.Turn {
			continue
		}
		for _, ray := range Rays(p, pos) {
			for _, step := range ray {
				occupant := b.At(step.Dst)
				if occupant.IsAbsent() {
					moves = append(moves, step.Moves...)
					continue
				}
				if occupant.Turn() != b.Turn {
					moves = append(moves, step.Moves...)
				}
				break
			}
		}
	}
	return moves
}
