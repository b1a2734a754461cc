// moves.go converts between the packed Move encoding and the UCI
// long-algebraic notation a GUI sends over the wire. SAN parsing is
// dropped: nothing past the UCI boundary ever needs it.

package engine

import "fmt"

var errNoSuchMove = fmt.Errorf("no such move in this position")

var symbolToFigure = map[byte]Figure{
	'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen,
	'N': Knight, 'B': Bishop, 'R': Rook, 'Q': Queen,
}

// UCIToMove parses s ("e2e4", "e7e8q", ...) against the legal moves of
// pos, returning an error if it names no legal move. Matching against the
// legal move list, rather than reconstructing the move type by hand,
// keeps this immune to UCI clients sending a promotion letter on a
// non-promoting move. A promoting move without its letter matches no
// legal move and is rejected.
func (pos *Position) UCIToMove(s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NullMove, fmt.Errorf("malformed UCI move %q", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return NullMove, err
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return NullMove, err
	}
	var promo Figure
	if len(s) == 5 {
		var ok bool
		promo, ok = symbolToFigure[s[4]]
		if !ok {
			return NullMove, fmt.Errorf("unknown promotion figure %q", s[4:5])
		}
	}

	var buf [64]Move
	for _, m := range pos.GenerateMoves(All, buf[:0]) {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() && m.PromotionFigure() != promo {
			continue
		}
		return m, nil
	}
	return NullMove, errNoSuchMove
}

// MoveToUCI formats m in UCI long algebraic notation.
func MoveToUCI(m Move) string {
	return m.String()
}
