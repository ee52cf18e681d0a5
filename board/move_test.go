package board_test

import (
	"testing"

	"chess-board/board"
)

func TestMoveFields(t *testing.T) {
	m := board.NewMove(sq("e2"), sq("e4"), true)
	if m.From() != sq("e2") || m.To() != sq("e4") {
		t.Fatalf("from/to mismatch: %v -> %v", m.From(), m.To())
	}
	if !m.IsCapture() || m.IsDoublePush() || m.Promotion() != board.NoPieceType {
		t.Fatal("flag mismatch on ordinary capture")
	}
	if _, ok := m.CastleSide(); ok {
		t.Fatal("ordinary move should carry no castle side")
	}

	d := board.NewDoublePushMove(sq("a2"), sq("a4"))
	if !d.IsDoublePush() || d.IsCapture() {
		t.Fatal("flag mismatch on double push")
	}

	p := board.NewPromotionMove(sq("e7"), sq("e8"), board.Queen, false)
	if p.Promotion() != board.Queen {
		t.Fatalf("promotion = %v, want queen", p.Promotion())
	}

	c := board.NewCastleMove(board.Queenside)
	if s, ok := c.CastleSide(); !ok || s != board.Queenside {
		t.Fatal("castle side mismatch")
	}
}

func TestMoveString(t *testing.T) {
	cases := map[board.Move]string{
		board.NewMove(sq("e2"), sq("e4"), false):                             "e2e4",
		board.NewPromotionMove(sq("e7"), sq("e8"), board.Queen, false):       "e7e8q",
		board.NewCastleMove(board.Kingside):                                  "O-O",
		board.NewCastleMove(board.Queenside):                                 "O-O-O",
	}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
