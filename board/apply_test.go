package board_test

import (
	"testing"

	"chess-board/board"
)

func mustParse(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func TestApplyDoublePushSetsEnPassant(t *testing.T) {
	b := board.NewBoard()
	b.Set(sq("e2"), board.NewPiece(board.Mover, board.Pawn))
	b.Set(sq("d4"), board.NewPiece(board.Opponent, board.Pawn))

	b.Apply(board.NewDoublePushMove(sq("e2"), sq("e4")))

	if b.EnPassant() != sq("e3") {
		t.Fatalf("en passant = %v, want e3", b.EnPassant())
	}
	if !b.Validate() {
		t.Fatal("board inconsistent after double push")
	}
}

func TestApplyDoublePushNoNeighborClearsEnPassant(t *testing.T) {
	b := board.NewBoard()
	b.Set(sq("a2"), board.NewPiece(board.Mover, board.Pawn))
	b.Set(sq("h5"), board.NewPiece(board.Opponent, board.Pawn))

	b.Apply(board.NewDoublePushMove(sq("a2"), sq("a4")))

	if b.EnPassant() != board.NoSquare {
		t.Fatalf("en passant = %v, want none", b.EnPassant())
	}
}

func TestApplyClearsStaleEnPassant(t *testing.T) {
	b := mustParse(t, "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")
	// Black to move: the board arrives flipped and the stale target must be
	// gone after any quiet reply.
	from := b.Pieces(board.Knight).LSB()
	var to board.Square
	for _, s := range board.Tables().KnightMoves(from).Squares() {
		if b.Get(s) == board.Empty {
			to = s
			break
		}
	}
	b.Apply(board.NewMove(from, to, false))
	if b.EnPassant() != board.NoSquare {
		t.Fatalf("en passant = %v, want cleared", b.EnPassant())
	}
}

func TestApplyCastleKingside(t *testing.T) {
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	b.Apply(board.NewCastleMove(board.Kingside))

	if got := b.Get(sq("g1")); got != board.NewPiece(board.Mover, board.King) {
		t.Errorf("g1 = %v, want the king", got)
	}
	if got := b.Get(sq("f1")); got != board.NewPiece(board.Mover, board.Rook) {
		t.Errorf("f1 = %v, want the rook", got)
	}
	if b.Get(sq("e1")) != board.Empty || b.Get(sq("h1")) != board.Empty {
		t.Error("e1 and h1 should be vacated")
	}
	if b.CastlingGet(board.Mover, board.Kingside) || b.CastlingGet(board.Mover, board.Queenside) {
		t.Error("both Mover rights should be cleared")
	}
	if !b.CastlingGet(board.Opponent, board.Kingside) || !b.CastlingGet(board.Opponent, board.Queenside) {
		t.Error("Opponent rights must be untouched")
	}
	if !b.Validate() {
		t.Fatal("board inconsistent after castling")
	}
}

func TestApplyCastleQueenside(t *testing.T) {
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	b.Apply(board.NewCastleMove(board.Queenside))

	if got := b.Get(sq("c1")); got != board.NewPiece(board.Mover, board.King) {
		t.Errorf("c1 = %v, want the king", got)
	}
	if got := b.Get(sq("d1")); got != board.NewPiece(board.Mover, board.Rook) {
		t.Errorf("d1 = %v, want the rook", got)
	}
	if b.Get(sq("a1")) != board.Empty {
		t.Error("a1 should be vacated")
	}
}

func TestApplyCastleAsBlack(t *testing.T) {
	// Black is the Mover, so the board is mirrored: the king sits on d1 and
	// the kingside rook on a1 from the Mover's viewpoint.
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")

	b.Apply(board.NewCastleMove(board.Kingside))

	if got := b.ToFEN(); got != "r4rk1/8/8/8/8/8/8/R3K2R b KQ - 1 2" {
		t.Fatalf("position after black O-O = %q", got)
	}
	if !b.Validate() {
		t.Fatal("board inconsistent after black castling")
	}
}

func TestApplyPromotion(t *testing.T) {
	b := board.NewBoard()
	b.Set(sq("e7"), board.NewPiece(board.Mover, board.Pawn))

	b.Apply(board.NewPromotionMove(sq("e7"), sq("e8"), board.Queen, false))

	if got := b.Get(sq("e8")); got != board.NewPiece(board.Mover, board.Queen) {
		t.Fatalf("e8 = %v, want the new queen", got)
	}
	if b.Get(sq("e7")) != board.Empty {
		t.Fatal("e7 should be vacated")
	}
	if b.Pieces(board.Pawn).PopCount() != 0 {
		t.Fatal("the pawn should be gone")
	}
	if !b.Validate() {
		t.Fatal("board inconsistent after promotion")
	}
}

func TestApplyPromotionCapture(t *testing.T) {
	b := board.NewBoard()
	b.Set(sq("e7"), board.NewPiece(board.Mover, board.Pawn))
	b.Set(sq("d8"), board.NewPiece(board.Opponent, board.Rook))

	b.Apply(board.NewPromotionMove(sq("e7"), sq("d8"), board.Knight, true))

	if got := b.Get(sq("d8")); got != board.NewPiece(board.Mover, board.Knight) {
		t.Fatalf("d8 = %v, want the new knight", got)
	}
	if b.Pieces(board.Rook).PopCount() != 0 {
		t.Fatal("the captured rook should be evicted everywhere")
	}
	if b.HalfMoves() != 0 {
		t.Fatal("half-move clock should reset on a pawn move")
	}
	if !b.Validate() {
		t.Fatal("board inconsistent after capturing promotion")
	}
}

func TestApplyKingMoveClearsRights(t *testing.T) {
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	b.Apply(board.NewMove(sq("e1"), sq("e2"), false))

	if b.CastlingGet(board.Mover, board.Kingside) || b.CastlingGet(board.Mover, board.Queenside) {
		t.Error("a king move clears both Mover rights")
	}
	if !b.CastlingGet(board.Opponent, board.Kingside) {
		t.Error("Opponent rights must survive")
	}
}

func TestApplyRookMoveClearsMatchingRight(t *testing.T) {
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	b.Apply(board.NewMove(sq("h1"), sq("h4"), false))

	if b.CastlingGet(board.Mover, board.Kingside) {
		t.Error("the kingside right should be cleared")
	}
	if !b.CastlingGet(board.Mover, board.Queenside) {
		t.Error("the queenside right should survive")
	}
}

func TestApplyClocks(t *testing.T) {
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 4 10")

	b.Apply(board.NewMove(sq("a1"), sq("a3"), false))
	if b.HalfMoves() != 5 {
		t.Errorf("half-move clock = %d, want 5", b.HalfMoves())
	}
	if b.FullMoves() != 10 {
		t.Errorf("full-move number = %d, want 10 after a White move", b.FullMoves())
	}

	b.Flip()
	b.Apply(board.NewMove(b.KingSquare(board.Mover), b.KingSquare(board.Mover).RankUp(), false))
	if b.FullMoves() != 11 {
		t.Errorf("full-move number = %d, want 11 after a Black move", b.FullMoves())
	}
}

func TestApplyEmptyOriginPanics(t *testing.T) {
	b := board.NewBoard()
	defer func() {
		if recover() == nil {
			t.Fatal("Apply with an empty origin should panic")
		}
	}()
	b.Apply(board.NewMove(sq("e2"), sq("e4"), false))
}
