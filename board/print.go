package board

import "strings"

// String renders the bitboard as an 8x8 grid with rank 8 on top, 'x' for a
// set square and '.' for a clear one. Display only.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank(7); r >= 0; r-- {
		for f := File(0); f < 8; f++ {
			if b.Get(SquareAt(f, r)) {
				sb.WriteString("x ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the board as an 8x8 grid of piece letters with rank 8 on
// top; uppercase letters belong to the Mover. Display only.
func (b *Board) String() string {
	var sb strings.Builder
	for r := Rank(7); r >= 0; r-- {
		for f := File(0); f < 8; f++ {
			sb.WriteByte(b.Get(SquareAt(f, r)).Char())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
