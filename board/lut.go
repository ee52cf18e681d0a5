package board

// squareLUT is a dense square-to-piece lookup mirroring the bitboards. The
// zero value is an all-Empty table.
type squareLUT [64]Piece

func (l *squareLUT) get(sq Square) Piece {
	if sq == NoSquare {
		panic("board: lookup get with NoSquare")
	}
	return l[sq]
}

func (l *squareLUT) set(sq Square, p Piece) {
	if sq == NoSquare {
		panic("board: lookup set with NoSquare")
	}
	l[sq] = p
}

// flip re-expresses the table from the other side's perspective: every
// square is point-reflected through the board center and every occupant
// changes ownership.
func (l *squareLUT) flip() {
	for i := 0; i < 32; i++ {
		l[i], l[63-i] = l[63-i].flipped(), l[i].flipped()
	}
}
