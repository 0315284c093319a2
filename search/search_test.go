package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toduq/gogo-shogi/board"
	"github.com/toduq/gogo-shogi/config"
	"github.com/toduq/gogo-shogi/movegen"
	"github.com/toduq/gogo-shogi/notation"
	. "github.com/toduq/gogo-shogi/types"
)

func init() {
	config.Setup()
}

func TestTakesKingImmediately(t *testing.T) {
	b := board.Init()
	b.PutMove(Move{Piece: BKing, Src: 20, Dst: 14})

	result, ok := New().FindBestMove(&b)
	assert.True(t, ok)
	assert.Equal(t, Move{Piece: WPawn, Src: 9, Dst: 14, Promote: false}, result.Move)
}

func TestTakesKingEvenWhenOwnKingIsCapturableNext(t *testing.T) {
	b := board.Init()
	b.PutMove(Move{Piece: BKing, Src: 20, Dst: 9})
	b.FlipTurn()

	result, ok := New().FindBestMove(&b)
	assert.True(t, ok)
	assert.Equal(t, Move{Piece: BKing, Src: 9, Dst: 4, Promote: false}, result.Move)
}

func TestAvoidsCheckmate(t *testing.T) {
	b, err := notation.ParseBoard("41wk,43bg,22bg,15bk")
	assert.NoError(t, err)
	b.FlipTurn()

	result, ok := New().FindBestMove(b)
	assert.True(t, ok)
	assert.Equal(t, Move{Piece: WKing, Src: 1, Dst: 0, Promote: false}, result.Move)
}

func TestAvoidsCheckmateByCapturing(t *testing.T) {
	b, err := notation.ParseBoard("51wk,11br,12br,52bs,42bs,15bk")
	assert.NoError(t, err)
	b.FlipTurn()

	result, ok := New().FindBestMove(b)
	assert.True(t, ok)
	assert.Equal(t, Move{Piece: WKing, Src: 0, Dst: 5, Promote: false}, result.Move)
}

func TestFindsMateInOneBySilverDrop(t *testing.T) {
	b, err := notation.ParseBoard("41wk,43bg,15bk,__bs")
	assert.NoError(t, err)

	result, ok := New().FindBestMove(b)
	assert.True(t, ok)
	assert.Equal(t, Move{Piece: BSilver, Src: HandBase, Dst: 6, Promote: false}, result.Move)
}

func TestFindsMateInThreeWithPromotedPawn(t *testing.T) {
	b, err := notation.ParseBoard("11wr,21wk,41bP,52bR,55bk,__bs,__wg,__ws")
	assert.NoError(t, err)

	result, ok := New().FindBestMove(b)
	assert.True(t, ok)
	assert.Equal(t, Move{Piece: BPawnP, Src: 1, Dst: 2, Promote: false}, result.Move)
}

func TestAlternatesTurnAfterEveryMove(t *testing.T) {
	b := board.Init()
	for _, m := range movegen.AllValidMoves(&b) {
		next := b.Clone()
		before := next.Turn
		next.PutMove(m)
		assert.Equal(t, before.Next(), next.Turn)
	}
}

func TestForcedMateScoresAboveWinThreshold(t *testing.T) {
	b, err := notation.ParseBoard("41wk,43bg,15bk,__bs")
	assert.NoError(t, err)

	result, ok := New().FindBestMove(b)
	assert.True(t, ok)
	assert.Greater(t, result.Score, config.Settings.Search.WinThreshold)
}
