package board

import (
	"errors"
	"strconv"
	"strings"
)

// StartPos is the FEN string for the standard initial position.
const StartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a board. This is the one boundary where
// untrusted input enters, so it validates and returns errors instead of
// panicking. Pieces are placed with White as the Mover; when the FEN says
// Black is to move, the finished board is flipped once so that the Mover is
// always the side on turn.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("invalid FEN: not enough fields")
	}

	b := NewBoard()

	// 1. Piece placement, rank 8 down to rank 1.
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("invalid FEN: incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				f += int(ch - '0')
				continue
			}
			p := pieceFromChar(ch)
			if p == Empty {
				return nil, errors.New("invalid FEN: unrecognized piece character")
			}
			if f >= 8 {
				return nil, errors.New("invalid FEN: too many squares in rank")
			}
			b.Set(SquareAt(File(f), r), p)
			f++
		}
		if f != 8 {
			return nil, errors.New("invalid FEN: rank does not have 8 columns")
		}
	}

	// 2. Side to move.
	var blackToMove bool
	switch fields[1] {
	case "w":
	case "b":
		blackToMove = true
	default:
		return nil, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	// 3. Castling rights. Uppercase letters belong to White, which is the
	// Mover until the final flip.
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castling.Set(Mover, Kingside)
			case 'Q':
				b.castling.Set(Mover, Queenside)
			case 'k':
				b.castling.Set(Opponent, Kingside)
			case 'q':
				b.castling.Set(Opponent, Queenside)
			default:
				return nil, errors.New("invalid FEN: invalid castling rights character")
			}
		}
	}

	// 4. En-passant target square.
	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return nil, errors.New("invalid FEN: invalid en passant square")
		}
		fc, rc := fields[3][0], fields[3][1]
		if fc < 'a' || fc > 'h' || rc < '1' || rc > '8' {
			return nil, errors.New("invalid FEN: en passant square out of range")
		}
		b.enPassant = SquareAt(File(fc-'a'), Rank(rc-'1'))
	}

	// 5. Half-move clock.
	if len(fields) > 4 {
		halfMoves, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, errors.New("invalid FEN: halfmove clock is not a number")
		}
		b.halfMoves = halfMoves
	}

	// 6. Full-move number.
	if len(fields) > 5 {
		fullMoves, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, errors.New("invalid FEN: fullmove number is not a number")
		}
		b.fullMoves = fullMoves
	}

	if blackToMove {
		b.Flip()
	}
	return b, nil
}

// ToFEN emits the position as a FEN string in fixed colors. When Black is
// the Mover the emission works on a flipped copy, so external consumers see
// the conventional White-at-bottom orientation.
func (b *Board) ToFEN() string {
	c := *b
	if c.color == Black {
		c.Flip()
	}

	var sb strings.Builder

	for r := Rank(7); r >= 0; r-- {
		empty := 0
		for f := File(0); f < 8; f++ {
			p := c.Get(SquareAt(f, r))
			if p == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.color == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if c.castling == CastlingNone {
		sb.WriteByte('-')
	} else {
		if c.castling.Get(Mover, Kingside) {
			sb.WriteByte('K')
		}
		if c.castling.Get(Mover, Queenside) {
			sb.WriteByte('Q')
		}
		if c.castling.Get(Opponent, Kingside) {
			sb.WriteByte('k')
		}
		if c.castling.Get(Opponent, Queenside) {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if c.enPassant != NoSquare {
		sb.WriteString(c.enPassant.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.halfMoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullMoves))
	return sb.String()
}
