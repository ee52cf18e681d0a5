package board

// Move encodes a half-move in a 32-bit value. Bitfield layout from the LSB:
// from 6 | to 6 | promotion type 3 | capture 1 | double push 1 | castle 2.
// Castling moves carry only the side; the king and rook squares are derived
// from the Mover's color when the move is applied.
type Move uint32

const (
	moveFromShift    = 0
	moveToShift      = 6
	movePromoteShift = 12
	moveCaptureBit   = 1 << 15
	moveDoubleBit    = 1 << 16
	moveCastleShift  = 17
)

// NewMove constructs an ordinary move.
func NewMove(from, to Square, capture bool) Move {
	if from == NoSquare || to == NoSquare {
		panic("board: NewMove with NoSquare")
	}
	m := Move(from) | Move(to)<<moveToShift
	if capture {
		m |= moveCaptureBit
	}
	return m
}

// NewDoublePushMove constructs a two-square pawn advance.
func NewDoublePushMove(from, to Square) Move {
	return NewMove(from, to, false) | moveDoubleBit
}

// NewPromotionMove constructs a promotion to pt.
func NewPromotionMove(from, to Square, pt PieceType, capture bool) Move {
	return NewMove(from, to, capture) | Move(pt)<<movePromoteShift
}

// NewCastleMove constructs a castling move for the requested side.
func NewCastleMove(s Side) Move {
	return Move(s+1) << moveCastleShift
}

// From returns the origin square.
func (m Move) From() Square { return Square(m >> moveFromShift & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square(m >> moveToShift & 0x3F) }

// Promotion returns the promoted piece type, or NoPieceType.
func (m Move) Promotion() PieceType { return PieceType(m >> movePromoteShift & 0x7) }

// IsCapture reports whether the move was flagged as a capture.
func (m Move) IsCapture() bool { return m&moveCaptureBit != 0 }

// IsDoublePush reports whether the move is a two-square pawn advance.
func (m Move) IsDoublePush() bool { return m&moveDoubleBit != 0 }

// CastleSide returns the requested castling side, if any.
func (m Move) CastleSide() (Side, bool) {
	c := m >> moveCastleShift & 0x3
	if c == 0 {
		return 0, false
	}
	return Side(c - 1), true
}

// String returns the coordinate form of the move, e.g. "e2e4" or "e7e8q";
// castling prints as "O-O" or "O-O-O".
func (m Move) String() string {
	if s, ok := m.CastleSide(); ok {
		if s == Queenside {
			return "O-O-O"
		}
		return "O-O"
	}
	str := m.From().String() + m.To().String()
	if pt := m.Promotion(); pt != NoPieceType {
		str += string(pieceChars[pt])
	}
	return str
}
