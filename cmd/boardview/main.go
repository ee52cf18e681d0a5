package main

import (
	"flag"
	"fmt"
	"os"

	"chess-board/board"
)

func main() {
	fen := flag.String("fen", board.StartPos, "FEN string (defaults to initial position)")
	sqArg := flag.String("square", "", "Overlay attack tables for a square, e.g. e4")
	flag.Parse()

	b, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	fmt.Print(b)
	fmt.Printf("mover color: %v  castling: K%v Q%v k%v q%v\n",
		colorName(b.Color()),
		b.CastlingGet(board.Mover, board.Kingside),
		b.CastlingGet(board.Mover, board.Queenside),
		b.CastlingGet(board.Opponent, board.Kingside),
		b.CastlingGet(board.Opponent, board.Queenside))
	if ep := b.EnPassant(); ep != board.NoSquare {
		fmt.Printf("en passant: %s\n", ep)
	}

	if *sqArg == "" {
		return
	}
	sq, err := parseSquare(*sqArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	t := board.Tables()
	fmt.Printf("\nknight moves from %s:\n%v", sq, t.KnightMoves(sq))
	fmt.Printf("\nking moves from %s:\n%v", sq, t.KingMoves(sq))
	fmt.Printf("\npawn pushes from %s:\n%v", sq, t.PawnMoves(sq))
	fmt.Printf("\npawn captures from %s:\n%v", sq, t.PawnAttacks(sq))
	fmt.Printf("\nnorth ray from %s:\n%v", sq, t.Ray(board.North, sq))
}

func colorName(c board.Color) string {
	if c == board.White {
		return "white"
	}
	return "black"
}

func parseSquare(s string) (board.Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return board.NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return board.SquareAt(board.File(s[0]-'a'), board.Rank(s[1]-'1')), nil
}
