package board

// Whose is a side-relative owner: Mover is whichever color is about to move.
// Flip exchanges the two roles each half-move.
type Whose uint8

const (
	Mover    Whose = 0
	Opponent Whose = 1
)

// Flipped returns the other role.
func (w Whose) Flipped() Whose { return 1 - w }

// PieceType is a colorless piece kind.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// Piece is the occupant of a square: Empty, or an owner/type pair.
// The type lives in the low three bits; bit 3 marks the Opponent, so
// piece & 7 gives the type and piece & 8 the owner.
type Piece uint8

const (
	Empty Piece = 0

	pieceOpponentBit Piece = 8
)

// NewPiece combines an owner and a type. NoPieceType yields Empty.
func NewPiece(w Whose, pt PieceType) Piece {
	if pt == NoPieceType {
		return Empty
	}
	p := Piece(pt)
	if w == Opponent {
		p |= pieceOpponentBit
	}
	return p
}

// Type returns the colorless kind of the piece (NoPieceType for Empty).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Whose returns the owner of the piece. Empty defaults to Mover.
func (p Piece) Whose() Whose {
	if p&pieceOpponentBit != 0 {
		return Opponent
	}
	return Mover
}

// flipped returns the piece with its ownership exchanged, used when the
// whole board is re-expressed from the other side's perspective.
func (p Piece) flipped() Piece {
	if p == Empty {
		return Empty
	}
	return p ^ pieceOpponentBit
}

var pieceChars = [7]byte{'.', 'p', 'n', 'b', 'r', 'q', 'k'}

// Char returns the display letter of the piece: uppercase for the Mover,
// lowercase for the Opponent, '.' for Empty.
func (p Piece) Char() byte {
	ch := pieceChars[p.Type()]
	if p != Empty && p.Whose() == Mover {
		ch -= 'a' - 'A'
	}
	return ch
}

// pieceFromChar maps a placement letter to a piece: uppercase letters belong
// to the Mover, lowercase to the Opponent. Unknown letters yield Empty.
func pieceFromChar(ch byte) Piece {
	w := Mover
	if ch >= 'a' && ch <= 'z' {
		w = Opponent
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return NewPiece(w, Pawn)
	case 'N':
		return NewPiece(w, Knight)
	case 'B':
		return NewPiece(w, Bishop)
	case 'R':
		return NewPiece(w, Rook)
	case 'Q':
		return NewPiece(w, Queen)
	case 'K':
		return NewPiece(w, King)
	default:
		return Empty
	}
}
