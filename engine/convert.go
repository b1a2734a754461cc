package engine

import (
	"fmt"
	"strings"
)

type castleInfo struct {
	Castle Castle
	Piece  [2]Piece
	Square [2]Square
}

var (
	itoa          = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8"}
	colorToSymbol = []string{"", "w", "b"}
	pieceToSymbol = []string{
		".", "P", "p", "N", "n", "B", "b", "R", "r", "Q", "q", "K", "k",
	}
	symbolToCastleInfo = map[rune]castleInfo{
		'K': {Castle: WhiteOO, Piece: [2]Piece{WhiteKing, WhiteRook}, Square: [2]Square{SquareE1, SquareH1}},
		'k': {Castle: BlackOO, Piece: [2]Piece{BlackKing, BlackRook}, Square: [2]Square{SquareE8, SquareH8}},
		'Q': {Castle: WhiteOOO, Piece: [2]Piece{WhiteKing, WhiteRook}, Square: [2]Square{SquareE1, SquareA1}},
		'q': {Castle: BlackOOO, Piece: [2]Piece{BlackKing, BlackRook}, Square: [2]Square{SquareE8, SquareA8}},
	}
	symbolToColor = map[string]Color{"w": White, "b": Black}
	symbolToPiece = map[rune]Piece{
		'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop,
		'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
		'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop,
		'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	}
)

func parsePiecePlacement(str string, pos *Position) error {
	ranks := strings.Split(str, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("expected 8 ranks, got %d", len(ranks))
	}
	for r := range ranks {
		f := 0
		for _, p := range ranks[r] {
			pi, ok := symbolToPiece[p]
			if !ok {
				if '1' <= p && p <= '8' {
					f += int(p) - int('0') - 1
				} else {
					return fmt.Errorf("expected rank or number, got %s", string(p))
				}
			}
			if f >= 8 {
				return fmt.Errorf("rank %d too long (%d cells)", 8-r, f)
			}
			if ok {
				// 7-r because FEN describes the table from the 8th rank down.
				pos.put(RankFile(7-r, f), pi)
			}
			f++
		}
		if f < 8 {
			return fmt.Errorf("rank %d too short (%d cells)", 8-r, f)
		}
	}
	return nil
}

func formatPiecePlacement(pos *Position) string {
	s := ""
	for r := 7; r >= 0; r-- {
		space := 0
		for f := 0; f < 8; f++ {
			sq := RankFile(r, f)
			pi := pos.Get(sq)
			if pi == NoPiece {
				space++
			} else {
				if space != 0 {
					s += itoa[space]
					space = 0
				}
				s += pieceToSymbol[pi]
			}
		}
		if space != 0 {
			s += itoa[space]
		}
		if r != 0 {
			s += "/"
		}
	}
	return s
}

func parseEnpassantSquare(str string, pos *Position) error {
	if str[:1] == "-" {
		pos.curr.EnpassantSquare = SquareA1
		return nil
	}
	sq, err := SquareFromString(str)
	if err != nil {
		return err
	}
	pos.curr.EnpassantSquare = sq
	return nil
}

func formatEnpassantSquare(pos *Position) string {
	if pos.EnpassantSquare() != SquareA1 {
		return pos.EnpassantSquare().String()
	}
	return "-"
}

func parseSideToMove(str string, pos *Position) error {
	col, ok := symbolToColor[str]
	if !ok {
		return fmt.Errorf("invalid color %s", str)
	}
	pos.SideToMove = col
	return nil
}

func formatSideToMove(pos *Position) string {
	return colorToSymbol[pos.SideToMove]
}

func parseCastlingAbility(str string, pos *Position) error {
	if str == "-" {
		pos.curr.CastlingAbility = NoCastle
		return nil
	}

	ability := NoCastle
	for _, p := range str {
		info, ok := symbolToCastleInfo[p]
		if !ok {
			return fmt.Errorf("invalid castling ability %s", str)
		}
		ability |= info.Castle
		for i := 0; i < 2; i++ {
			if info.Piece[i] != pos.Get(info.Square[i]) {
				return fmt.Errorf("expected %v at %v, got %v",
					info.Piece[i], info.Square[i], pos.Get(info.Square[i]))
			}
		}
	}
	pos.curr.CastlingAbility = ability
	return nil
}

func formatCastlingAbility(pos *Position) string {
	return pos.CastlingAbility().String()
}
