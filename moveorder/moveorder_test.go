package moveorder

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

func TestReorderPutsKingCaptureFirstThenCaptureThenQuiet(t *testing.T) {
	// White's back rank from board.Init(): 0=Rook, 1=Bishop, 2=Silver,
	// 3=Gold, 4=King; square 8 is empty. Reorder scores the candidates as
	// given without checking them against the board: one takes the King at
	// 4, one takes the Rook at 0, and one lands quietly on 8.
	b := board.Init()
	b.Turn = Black

	candidates := []Move{
		{Piece: BBishop, Src: 14, Dst: 8, Promote: false},
		{Piece: BBishop, Src: 14, Dst: 0, Promote: true},
		{Piece: BBishop, Src: 14, Dst: 4, Promote: true},
	}

	sorted := Reorder(&b, candidates, nil)

	assert.Equal(t, 4, sorted[0].Dst, "king capture must sort first")
	assert.Equal(t, 0, sorted[1].Dst, "piece capture must sort before a quiet move")
	assert.Equal(t, 8, sorted[2].Dst, "quiet move sorts last")
}

func TestRecordHalvesTableOnOverflow(t *testing.T) {
	tbl := NewTable()
	best := Move{Piece: BGold, Src: 1, Dst: 6}
	for i := 0; i < statCap; i++ {
		tbl.Record(best)
	}
	assert.Equal(t, statCap, tbl.score(BGold, 6))

	tbl.Record(best)
	assert.Less(t, tbl.score(BGold, 6), statCap)
}

func TestRecordIgnoresAbsentMove(t *testing.T) {
	tbl := NewTable()
	tbl.Record(NoMove)
	assert.Equal(t, 0, tbl.score(Absent, 0))
}
