package types

import "testing"

func TestFlipTogglesColorOnly(t *testing.T) {
	cases := []struct{ p, want Piece }{
		{BKing, WKing}, {WKing, BKing},
		{BGold, WGold}, {BPawnP, WPawnP},
	}
	for _, c := range cases {
		if got := c.p.Flip(); got != c.want {
			t.Errorf("%v.Flip() = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestPromotedAddsEight(t *testing.T) {
	cases := []struct{ p, want Piece }{
		{BSilver, BSilverP}, {WSilver, WSilverP},
		{BBishop, BBishopP}, {BRook, BRookP}, {BPawn, BPawnP},
	}
	for _, c := range cases {
		if got := c.p.Promoted(); got != c.want {
			t.Errorf("%v.Promoted() = %v, want %v", c.p, got, c.want)
		}
		if got := c.want.Demoted(); got != c.p {
			t.Errorf("%v.Demoted() = %v, want %v", c.want, got, c.p)
		}
	}
}

func TestTurnParity(t *testing.T) {
	for p := BKing; p <= WPawnP; p++ {
		want := Black
		if p%2 != 0 {
			want = White
		}
		if got := p.Turn(); got != want {
			t.Errorf("%v.Turn() = %v, want %v", p, got, want)
		}
	}
}

func TestOfTurnIsIdempotent(t *testing.T) {
	if got := BGold.OfTurn(Black); got != BGold {
		t.Errorf("OfTurn same color changed piece: %v", got)
	}
	if got := BGold.OfTurn(White); got != WGold {
		t.Errorf("OfTurn(White) = %v, want WGold", got)
	}
}

func TestIsPromotableExcludesKingAndGold(t *testing.T) {
	for _, p := range []Piece{BKing, WKing, BGold, WGold} {
		if p.IsPromotable() {
			t.Errorf("%v should not be promotable", p)
		}
	}
	for _, p := range []Piece{BSilver, WSilver, BBishop, WBishop, BRook, WRook, BPawn, WPawn} {
		if !p.IsPromotable() {
			t.Errorf("%v should be promotable", p)
		}
	}
}
