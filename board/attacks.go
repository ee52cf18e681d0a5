package board

import "sync"

// Direction is one of the eight sliding-piece ray directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	Northeast
	Southeast
	Southwest
	Northwest
	NumDirections
)

// Offsets are (file, rank) deltas applied per step.
var dirOffsets = [NumDirections][2]int{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
	{1, 1}, {1, -1}, {-1, -1}, {-1, 1},
}

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// AttackTables holds the precomputed per-square move and ray bitboards every
// move generator queries. The tables are built once and never mutated, so
// concurrent readers need no locking.
//
// All pawn tables are mover-relative: the board is always expressed from the
// perspective of the side to move, so pawns only ever advance toward rank 8
// and a single table per concern suffices.
type AttackTables struct {
	fileBB [8]Bitboard
	rankBB [8]Bitboard

	pawnMoves   [64]Bitboard
	pawnAttacks [64]Bitboard
	knight      [64]Bitboard
	king        [64]Bitboard

	rays [NumDirections][64]Bitboard
}

var sharedTables = sync.OnceValue(NewAttackTables)

// Tables returns the process-wide attack tables, building them on first use.
func Tables() *AttackTables { return sharedTables() }

// NewAttackTables builds a fresh set of attack tables from square arithmetic.
func NewAttackTables() *AttackTables {
	t := &AttackTables{}
	t.buildLines()
	t.buildPawnMoves()
	t.buildPawnAttacks()
	t.buildLeapers()
	t.buildRays()
	return t
}

func (t *AttackTables) buildLines() {
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			t.fileBB[i].Set(SquareAt(File(i), Rank(j)))
			t.rankBB[i].Set(SquareAt(File(j), Rank(i)))
		}
	}
}

func (t *AttackTables) buildPawnMoves() {
	for sq := Square(0); sq != NoSquare; sq = sq.Next() {
		switch sq.Rank() {
		case 0, 7:
			// No pawns live on the back ranks.
		case 1:
			t.pawnMoves[sq].Set(sq.RankUp())
			t.pawnMoves[sq].Set(sq.RankUp().RankUp())
		default:
			t.pawnMoves[sq].Set(sq.RankUp())
		}
	}
}

func (t *AttackTables) buildPawnAttacks() {
	for sq := Square(0); sq != NoSquare; sq = sq.Next() {
		if r := sq.Rank(); r == 0 || r == 7 {
			continue
		}
		if left := sq.RankUp().FileDown(); left != NoSquare {
			t.pawnAttacks[sq].Set(left)
		}
		if right := sq.RankUp().FileUp(); right != NoSquare {
			t.pawnAttacks[sq].Set(right)
		}
	}
}

func (t *AttackTables) buildLeapers() {
	for sq := Square(0); sq != NoSquare; sq = sq.Next() {
		for _, off := range knightOffsets {
			if dst := sq.Offset(off[0], off[1]); dst != NoSquare {
				t.knight[sq].Set(dst)
			}
		}
		for _, off := range kingOffsets {
			if dst := sq.Offset(off[0], off[1]); dst != NoSquare {
				t.king[sq].Set(dst)
			}
		}
	}
}

func (t *AttackTables) buildRays() {
	for d := Direction(0); d < NumDirections; d++ {
		df, dr := dirOffsets[d][0], dirOffsets[d][1]
		for sq := Square(0); sq != NoSquare; sq = sq.Next() {
			for cur := sq.Offset(df, dr); cur != NoSquare; cur = cur.Offset(df, dr) {
				t.rays[d][sq].Set(cur)
			}
		}
	}
}

// FileMask returns the bitboard of all squares on the given file.
func (t *AttackTables) FileMask(f File) Bitboard {
	if f == NoFile {
		panic("board: FileMask of NoFile")
	}
	return t.fileBB[f]
}

// RankMask returns the bitboard of all squares on the given rank.
func (t *AttackTables) RankMask(r Rank) Bitboard {
	if r == NoRank {
		panic("board: RankMask of NoRank")
	}
	return t.rankBB[r]
}

// PawnMoves returns the push destinations of a Mover pawn on sq, including
// the double push from rank 2.
func (t *AttackTables) PawnMoves(sq Square) Bitboard {
	if sq == NoSquare {
		panic("board: PawnMoves of NoSquare")
	}
	return t.pawnMoves[sq]
}

// PawnAttacks returns the capture destinations of a Mover pawn on sq.
func (t *AttackTables) PawnAttacks(sq Square) Bitboard {
	if sq == NoSquare {
		panic("board: PawnAttacks of NoSquare")
	}
	return t.pawnAttacks[sq]
}

// KnightMoves returns the knight destinations from sq.
func (t *AttackTables) KnightMoves(sq Square) Bitboard {
	if sq == NoSquare {
		panic("board: KnightMoves of NoSquare")
	}
	return t.knight[sq]
}

// KingMoves returns the king destinations from sq.
func (t *AttackTables) KingMoves(sq Square) Bitboard {
	if sq == NoSquare {
		panic("board: KingMoves of NoSquare")
	}
	return t.king[sq]
}

// Ray returns the unobstructed sliding reach from sq in direction d, up to
// the board edge. A move generator intersects it with live occupancy.
func (t *AttackTables) Ray(d Direction, sq Square) Bitboard {
	if sq == NoSquare {
		panic("board: Ray of NoSquare")
	}
	if d < 0 || d >= NumDirections {
		panic("board: Ray of invalid direction")
	}
	return t.rays[d][sq]
}
