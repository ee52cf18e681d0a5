package board

// Side distinguishes the two castling directions.
type Side uint8

const (
	Kingside  Side = 0
	Queenside Side = 1
)

// CastlingRights is a 4-bit word tracking who may still castle where:
// bit 3 Mover kingside, bit 2 Mover queenside, bit 1 Opponent kingside,
// bit 0 Opponent queenside. Rights only ever clear during a game.
type CastlingRights uint8

const (
	CastlingNone CastlingRights = 0b0000
	CastlingFull CastlingRights = 0b1111
)

func castlingBit(w Whose, s Side) CastlingRights {
	return 1 << uint(3-2*int(w)-int(s))
}

// Get reports whether the given owner retains the given right.
func (c CastlingRights) Get(w Whose, s Side) bool {
	return c&castlingBit(w, s) != 0
}

// Set grants the given right.
func (c *CastlingRights) Set(w Whose, s Side) {
	*c |= castlingBit(w, s)
}

// Reset revokes the given right.
func (c *CastlingRights) Reset(w Whose, s Side) {
	*c &^= castlingBit(w, s)
}

// Flipped exchanges the Mover bit pair with the Opponent bit pair, keeping
// the kingside/queenside distinction intact.
func (c CastlingRights) Flipped() CastlingRights {
	return (c&0b1100)>>2 | (c&0b0011)<<2
}

// Flip exchanges the bit pairs in place.
func (c *CastlingRights) Flip() { *c = c.Flipped() }
