package board

import "math/bits"

// Bitboard is a 64-bit occupancy set: bit i is set iff Square(i) is a member.
// The least-significant bit is a1 and the most-significant bit is h8, in
// rank-major order.
type Bitboard uint64

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^EmptyBB

	// Files (LSB = rank 1)
	FileABB Bitboard = 0x0101010101010101
	FileBBB Bitboard = FileABB << 1
	FileCBB Bitboard = FileABB << 2
	FileDBB Bitboard = FileABB << 3
	FileEBB Bitboard = FileABB << 4
	FileFBB Bitboard = FileABB << 5
	FileGBB Bitboard = FileABB << 6
	FileHBB Bitboard = FileABB << 7

	// Ranks (LSB = file a)
	Rank1BB Bitboard = 0xFF
	Rank2BB Bitboard = Rank1BB << (8 * 1)
	Rank3BB Bitboard = Rank1BB << (8 * 2)
	Rank4BB Bitboard = Rank1BB << (8 * 3)
	Rank5BB Bitboard = Rank1BB << (8 * 4)
	Rank6BB Bitboard = Rank1BB << (8 * 5)
	Rank7BB Bitboard = Rank1BB << (8 * 6)
	Rank8BB Bitboard = Rank1BB << (8 * 7)
)

// IsEmpty reports whether no bits are set.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// Get reports whether the bit for sq is set. Passing NoSquare is a caller
// error: offset arithmetic clips to NoSquare at board edges, so callers must
// filter before querying.
func (b Bitboard) Get(sq Square) bool {
	if sq == NoSquare {
		panic("board: Bitboard.Get with NoSquare")
	}
	return b&sq.Bitboard() != 0
}

// Set sets the bit for sq.
func (b *Bitboard) Set(sq Square) {
	if sq == NoSquare {
		panic("board: Bitboard.Set with NoSquare")
	}
	*b |= sq.Bitboard()
}

// Reset clears the bit for sq.
func (b *Bitboard) Reset(sq Square) {
	if sq == NoSquare {
		panic("board: Bitboard.Reset with NoSquare")
	}
	*b &^= sq.Bitboard()
}

// IsSingular reports whether exactly one bit is set.
func (b Bitboard) IsSingular() bool { return bits.OnesCount64(uint64(b)) == 1 }

// ToSquare converts a singular bitboard to its square. It panics on any
// other population count.
func (b Bitboard) ToSquare() Square {
	if !b.IsSingular() {
		panic("board: ToSquare of non-singular Bitboard")
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest set square, or NoSquare when empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the highest set square, or NoSquare when empty.
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// Flipped returns the bitboard bit-reversed across all 64 positions,
// re-expressing the occupancy from the opposite perspective.
func (b Bitboard) Flipped() Bitboard { return Bitboard(bits.Reverse64(uint64(b))) }

// Flip bit-reverses the bitboard in place.
func (b *Bitboard) Flip() { *b = b.Flipped() }

// PopLSB removes and returns the lowest set square from the mask. It panics
// when the mask is empty. Iterating with PopLSB consumes the bitboard;
// duplicate it first if the contents are still needed.
func PopLSB(b *Bitboard) Square {
	if *b == 0 {
		panic("board: PopLSB of empty Bitboard")
	}
	sq := Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

// Squares returns the set squares in ascending order without consuming the
// bitboard.
func (b Bitboard) Squares() []Square {
	sqs := make([]Square, 0, b.PopCount())
	for m := b; m != 0; {
		sqs = append(sqs, PopLSB(&m))
	}
	return sqs
}
