package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toduq/gogo-shogi/board"
	. "github.com/toduq/gogo-shogi/types"
)

func TestParseBoardOnBoardAndHandTokens(t *testing.T) {
	b, err := ParseBoard("31wk,33bp,15bk,__bg,__wp")
	assert.NoError(t, err)
	assert.Equal(t, WKing, b.Squares[2])
	assert.Equal(t, BPawn, b.Squares[12])
	assert.Equal(t, BKing, b.Squares[24])
	assert.Equal(t, BGold, b.Hands[0])
	assert.Equal(t, WPawn, b.Hands[1])
}

func TestParseBoardMatchesInitFromCanonicalString(t *testing.T) {
	b, err := ParseBoard("11wk,21wg,31ws,41wb,51wr,12wp,54bp,15br,25bb,35bs,45bg,55bk")
	assert.NoError(t, err)
	want := board.Init()
	assert.Equal(t, want, *b)
}

func TestParseBoardRejectsUnknownKind(t *testing.T) {
	_, err := ParseBoard("31wz")
	assert.Error(t, err)
}

func TestParseBoardRejectsShortToken(t *testing.T) {
	_, err := ParseBoard("31w")
	assert.Error(t, err)
}

func TestParseMoveOnBoardWithPromotion(t *testing.T) {
	b := board.Init()
	m, err := ParseMove(&b, "1155p")
	assert.NoError(t, err)
	assert.Equal(t, b.Squares[4], m.Piece)
	assert.Equal(t, 4, m.Src)
	assert.Equal(t, 20, m.Dst)
	assert.True(t, m.Promote)
}

func TestParseMoveDropResolvesHandSlot(t *testing.T) {
	b := board.Empty()
	b.Turn = Black
	b.Hands[3] = BSilver
	m, err := ParseMove(&b, "s32")
	assert.NoError(t, err)
	assert.Equal(t, BSilver, m.Piece)
	assert.Equal(t, HandBase+3, m.Src)
	assert.True(t, m.IsDrop())
}

func TestParseMoveDropMissingFromHandErrors(t *testing.T) {
	b := board.Empty()
	_, err := ParseMove(&b, "s32")
	assert.Error(t, err)
}

func TestFormatBoardContainsHandsLabel(t *testing.T) {
	b := board.Init()
	out := FormatBoard(&b)
	assert.Contains(t, out, "Hands:")
	assert.Contains(t, out, "5  4  3  2  1")
}
