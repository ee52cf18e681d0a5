package board

// Color is the actual color of the side to move.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Flipped returns the other color.
func (c Color) Flipped() Color { return 1 - c }

// numPieceTypeBBs counts the per-type bitboards. Kings are excluded: each
// side has exactly one, tracked in the king cache instead.
const numPieceTypeBBs = 5

// Board is an aggregate chess position expressed from the Mover's
// perspective: the side about to move always plays "up" the board, and
// Flip re-expresses the whole position after every half-move.
//
// A Board is a plain value with no internal synchronization; parallel
// workers must each hold their own copy.
type Board struct {
	whoseBBs     [2]Bitboard
	pieceTypeBBs [numPieceTypeBBs]Bitboard
	kings        [2]Square
	lut          squareLUT
	castling     CastlingRights
	color        Color
	enPassant    Square
	halfMoves    int
	fullMoves    int
}

// NewBoard returns an empty board with White as the Mover.
func NewBoard() *Board {
	return &Board{
		kings:     [2]Square{NoSquare, NoSquare},
		enPassant: NoSquare,
		fullMoves: 1,
	}
}

// Clear resets the board to the empty position.
func (b *Board) Clear() {
	*b = *NewBoard()
}

// Get returns the piece on sq.
func (b *Board) Get(sq Square) Piece {
	if sq == NoSquare {
		panic("board: Get with NoSquare")
	}
	return b.lut.get(sq)
}

// Set places p on sq, first evicting whatever occupied the square from every
// bitboard and the king cache. Setting Empty just evicts.
func (b *Board) Set(sq Square, p Piece) {
	if sq == NoSquare {
		panic("board: Set with NoSquare")
	}
	prev := b.lut.get(sq)
	if prev != Empty {
		w := prev.Whose()
		b.whoseBBs[w].Reset(sq)
		if prev.Type() == King {
			b.kings[w] = NoSquare
		} else {
			b.pieceTypeBBs[prev.Type()-Pawn].Reset(sq)
		}
	}
	if p != Empty {
		w := p.Whose()
		b.whoseBBs[w].Set(sq)
		if p.Type() == King {
			b.kings[w] = sq
		} else {
			b.pieceTypeBBs[p.Type()-Pawn].Set(sq)
		}
	}
	b.lut.set(sq, p)
}

// MovePiece relocates the piece on from to to, silently discarding whatever
// occupied the destination. Moving from an empty square is a caller error.
func (b *Board) MovePiece(to, from Square) {
	p := b.Get(from)
	if p == Empty {
		panic("board: MovePiece from empty square")
	}
	b.Set(from, Empty)
	b.Set(to, p)
}

// All returns the occupancy of both sides.
func (b *Board) All() Bitboard { return b.whoseBBs[Mover] | b.whoseBBs[Opponent] }

// Whose returns the occupancy of one side.
func (b *Board) Whose(w Whose) Bitboard { return b.whoseBBs[w] }

// Pieces returns the squares holding the given piece type for both sides.
// King queries are answered from the king cache.
func (b *Board) Pieces(pt PieceType) Bitboard {
	if pt == NoPieceType {
		panic("board: Pieces of NoPieceType")
	}
	if pt == King {
		var bb Bitboard
		for _, k := range b.kings {
			if k != NoSquare {
				bb.Set(k)
			}
		}
		return bb
	}
	return b.pieceTypeBBs[pt-Pawn]
}

// PiecesOf returns the squares holding the given piece type for one side.
func (b *Board) PiecesOf(w Whose, pt PieceType) Bitboard {
	return b.Pieces(pt) & b.whoseBBs[w]
}

// KingSquare returns the cached king location for a side, or NoSquare when
// that king has not been placed.
func (b *Board) KingSquare(w Whose) Square { return b.kings[w] }

// CastlingGet reports whether a side retains a castling right.
func (b *Board) CastlingGet(w Whose, s Side) bool { return b.castling.Get(w, s) }

// CastlingSet grants a castling right.
func (b *Board) CastlingSet(w Whose, s Side) { b.castling.Set(w, s) }

// CastlingReset revokes a castling right.
func (b *Board) CastlingReset(w Whose, s Side) { b.castling.Reset(w, s) }

// Color returns the actual color of the Mover.
func (b *Board) Color() Color { return b.color }

// EnPassant returns the en-passant target square, or NoSquare when none.
func (b *Board) EnPassant() Square { return b.enPassant }

// HalfMoves returns the half-move clock (for the fifty-move rule).
func (b *Board) HalfMoves() int { return b.halfMoves }

// FullMoves returns the full-move number (incremented after Black moves).
func (b *Board) FullMoves() int { return b.fullMoves }

// Flip re-expresses the whole position from the other side's perspective:
// every bitboard is point-reflected, ownership is exchanged everywhere (the
// whose-bitboards and king-cache entries swap slots, each lookup occupant
// changes hands), castling rights swap pairs, and the Mover's color toggles.
// Flip must run exactly once per half-move and is its own inverse.
func (b *Board) Flip() {
	m, o := b.whoseBBs[Mover].Flipped(), b.whoseBBs[Opponent].Flipped()
	b.whoseBBs[Mover], b.whoseBBs[Opponent] = o, m

	for i := range b.pieceTypeBBs {
		b.pieceTypeBBs[i].Flip()
	}

	km, ko := b.kings[Mover], b.kings[Opponent]
	if km != NoSquare {
		km = km.Flipped()
	}
	if ko != NoSquare {
		ko = ko.Flipped()
	}
	b.kings[Mover], b.kings[Opponent] = ko, km

	b.lut.flip()
	b.castling.Flip()
	b.color = b.color.Flipped()
	if b.enPassant != NoSquare {
		b.enPassant = b.enPassant.Flipped()
	}
}

// Validate checks internal consistency between the lookup, the bitboards and
// the king cache. It returns false on any disagreement.
func (b *Board) Validate() bool {
	var whose [2]Bitboard
	var types [numPieceTypeBBs]Bitboard
	kings := [2]Square{NoSquare, NoSquare}
	for sq := Square(0); sq != NoSquare; sq = sq.Next() {
		p := b.lut.get(sq)
		if p == Empty {
			continue
		}
		w := p.Whose()
		whose[w].Set(sq)
		if p.Type() == King {
			if kings[w] != NoSquare {
				return false
			}
			kings[w] = sq
		} else {
			types[p.Type()-Pawn].Set(sq)
		}
	}
	return whose == b.whoseBBs && types == b.pieceTypeBBs && kings == b.kings
}
