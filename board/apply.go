package board

// Castle geometry, indexed by the Mover's color and the requested side. The
// board is point-reflected when Black is the Mover, so the black king starts
// on d1 and the kingside rook on a1 from the Mover's viewpoint.
type castleSquares struct {
	kingFrom, kingTo Square
	rookFrom, rookTo Square
}

var castleGeometry = [2][2]castleSquares{
	White: {
		Kingside:  {kingFrom: 4, kingTo: 6, rookFrom: 7, rookTo: 5},
		Queenside: {kingFrom: 4, kingTo: 2, rookFrom: 0, rookTo: 3},
	},
	Black: {
		Kingside:  {kingFrom: 3, kingTo: 1, rookFrom: 0, rookTo: 2},
		Queenside: {kingFrom: 3, kingTo: 5, rookFrom: 7, rookTo: 4},
	},
}

// rookStart returns the Mover rook's starting square for a castling side,
// given the Mover's color.
func rookStart(c Color, s Side) Square {
	return castleGeometry[c][s].rookFrom
}

// Apply mutates the board by one Mover half-move. The move is trusted: it
// must come from a generator that already filtered for legality, and Apply
// performs no check or pin verification. Applying a move whose origin is
// empty is a caller error. The caller flips the board afterwards to hand the
// turn over.
func (b *Board) Apply(m Move) {
	b.enPassant = NoSquare

	if side, ok := m.CastleSide(); ok {
		b.applyCastle(side)
		b.halfMoves++
		b.advanceFullMoves()
		return
	}

	from, to := m.From(), m.To()
	p := b.Get(from)
	if p == Empty {
		panic("board: Apply with empty origin square")
	}
	capture := m.IsCapture() || b.Get(to) != Empty

	if promo := m.Promotion(); promo != NoPieceType {
		// Set evicts any occupant of the destination, so a capturing
		// promotion needs no special handling.
		b.Set(from, Empty)
		b.Set(to, NewPiece(Mover, promo))
	} else {
		b.MovePiece(to, from)
		switch p.Type() {
		case King:
			b.castling.Reset(Mover, Kingside)
			b.castling.Reset(Mover, Queenside)
		case Rook:
			if from == rookStart(b.color, Kingside) {
				b.castling.Reset(Mover, Kingside)
			} else if from == rookStart(b.color, Queenside) {
				b.castling.Reset(Mover, Queenside)
			}
		}
		if m.IsDoublePush() {
			b.setEnPassant(from, to)
		}
	}

	if p.Type() == Pawn || capture {
		b.halfMoves = 0
	} else {
		b.halfMoves++
	}
	b.advanceFullMoves()
}

// applyCastle relocates the Mover's king and rook and clears both Mover
// rights. The squares are derived from the Mover's color and the requested
// side, not stored on the move.
func (b *Board) applyCastle(side Side) {
	g := castleGeometry[b.color][side]
	b.MovePiece(g.kingTo, g.kingFrom)
	b.MovePiece(g.rookTo, g.rookFrom)
	b.castling.Reset(Mover, Kingside)
	b.castling.Reset(Mover, Queenside)
}

// setEnPassant records the en-passant target behind a double pawn push, but
// only when an Opponent pawn on an adjacent file of the landing rank could
// actually take it.
func (b *Board) setEnPassant(from, to Square) {
	oppPawn := NewPiece(Opponent, Pawn)
	if left := to.FileDown(); left != NoSquare && b.Get(left) == oppPawn {
		b.enPassant = from.RankUp()
		return
	}
	if right := to.FileUp(); right != NoSquare && b.Get(right) == oppPawn {
		b.enPassant = from.RankUp()
	}
}

// advanceFullMoves bumps the full-move number after a Black half-move.
func (b *Board) advanceFullMoves() {
	if b.color == Black {
		b.fullMoves++
	}
}
