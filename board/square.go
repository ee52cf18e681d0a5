package board

// Rank is a row of the board, 0 (rank 1) through 7 (rank 8).
type Rank int

// File is a column of the board, 0 (file a) through 7 (file h).
type File int

const (
	NoRank Rank = -1
	NoFile File = -1
)

// RankOf maps an integer to a Rank. Out-of-range values map to NoRank.
func RankOf(v int) Rank {
	if v < 0 || v > 7 {
		return NoRank
	}
	return Rank(v)
}

// FileOf maps an integer to a File. Out-of-range values map to NoFile.
func FileOf(v int) File {
	if v < 0 || v > 7 {
		return NoFile
	}
	return File(v)
}

// Flipped returns the rank as seen from the other side of the board.
func (r Rank) Flipped() Rank {
	if r == NoRank {
		return NoRank
	}
	return 7 - r
}

// Flipped returns the file as seen from the other side of the board.
func (f File) Flipped() File {
	if f == NoFile {
		return NoFile
	}
	return 7 - f
}

// Square is a board position in rank-major order: 0 is a1, 7 is h1, 63 is h8.
type Square int

// NoSquare marks the absence of a square, typically produced by step
// arithmetic that left the board. Accessors panic on it; callers must check.
const NoSquare Square = -1

// NewSquare maps an integer to a Square. Out-of-range values map to NoSquare.
func NewSquare(v int) Square {
	if v < 0 || v > 63 {
		return NoSquare
	}
	return Square(v)
}

// SquareAt combines a file and rank into a Square. Either input being absent
// yields NoSquare.
func SquareAt(f File, r Rank) Square {
	if f == NoFile || r == NoRank {
		return NoSquare
	}
	return Square(int(r)*8 + int(f))
}

// Rank returns the rank of the square.
func (s Square) Rank() Rank {
	if s == NoSquare {
		panic("board: Rank of NoSquare")
	}
	return Rank(s / 8)
}

// File returns the file of the square.
func (s Square) File() File {
	if s == NoSquare {
		panic("board: File of NoSquare")
	}
	return File(s % 8)
}

// RankUp returns the square one rank above, or NoSquare from rank 8.
func (s Square) RankUp() Square {
	if s == NoSquare {
		panic("board: RankUp of NoSquare")
	}
	if s.Rank() == 7 {
		return NoSquare
	}
	return s + 8
}

// RankDown returns the square one rank below, or NoSquare from rank 1.
func (s Square) RankDown() Square {
	if s == NoSquare {
		panic("board: RankDown of NoSquare")
	}
	if s.Rank() == 0 {
		return NoSquare
	}
	return s - 8
}

// FileUp returns the square one file to the right, or NoSquare from file h.
func (s Square) FileUp() Square {
	if s == NoSquare {
		panic("board: FileUp of NoSquare")
	}
	if s.File() == 7 {
		return NoSquare
	}
	return s + 1
}

// FileDown returns the square one file to the left, or NoSquare from file a.
func (s Square) FileDown() Square {
	if s == NoSquare {
		panic("board: FileDown of NoSquare")
	}
	if s.File() == 0 {
		return NoSquare
	}
	return s - 1
}

// Offset returns the square df files and dr ranks away, or NoSquare when the
// destination leaves the board. Steps never wrap around an edge.
func (s Square) Offset(df, dr int) Square {
	if s == NoSquare {
		panic("board: Offset of NoSquare")
	}
	f := FileOf(int(s.File()) + df)
	r := RankOf(int(s.Rank()) + dr)
	return SquareAt(f, r)
}

// Next returns the next square in rank-major order, or NoSquare after h8.
func (s Square) Next() Square {
	if s == NoSquare {
		panic("board: Next of NoSquare")
	}
	if s >= 63 {
		return NoSquare
	}
	return s + 1
}

// Flipped returns the point reflection of the square through the board
// center, re-expressing it from the opposite perspective.
func (s Square) Flipped() Square {
	if s == NoSquare {
		panic("board: Flipped of NoSquare")
	}
	return 63 - s
}

// Bitboard returns a singular bitboard with only this square set.
func (s Square) Bitboard() Bitboard {
	if s == NoSquare {
		panic("board: Bitboard of NoSquare")
	}
	return Bitboard(1) << uint(s)
}

// String returns the coordinate form of the square, e.g. "e4".
func (s Square) String() string {
	if s == NoSquare {
		panic("board: String of NoSquare")
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}
