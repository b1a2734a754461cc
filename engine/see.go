// see.go implements static exchange evaluation: the material balance of
// the capture sequence on one square if both sides keep recapturing with
// their least valuable attacker.
//
// https://www.chessprogramming.org/Static_Exchange_Evaluation

package engine

// seeValue gives each figure a fixed value for exchange evaluation,
// deliberately coarser than the tapered eval terms in eval.go: SEE only
// needs to rank figures, not price them precisely.
var seeValue = [FigureArraySize]int32{
	NoFigure: 0,
	Pawn:     100,
	Knight:   320,
	Bishop:   330,
	Rook:     500,
	Queen:    950,
	King:     20000,
}

// leastValuableAttacker returns the smallest-value piece in attackers that
// belongs to us, along with its square, or NoFigure if none does.
func leastValuableAttacker(pos *Position, attackers Bitboard, us Color) (Figure, Square) {
	for fig := Pawn; fig <= King; fig++ {
		bb := attackers & pos.ByPiece(us, fig)
		if bb != 0 {
			return fig, bb.LSB().AsSquare()
		}
	}
	return NoFigure, SquareA1
}

// SEE runs the swap algorithm for a capture (or quiet move, trivially) on
// m.To(), and returns the net material gain for the side making m, in
// centipawns, assuming both sides always recapture with their cheapest
// attacker.
func SEE(pos *Position, m Move) int32 {
	to := m.To()
	from := m.From()
	us := pos.SideToMove

	var captured Figure
	if m.Type() == EnPassant {
		captured = Pawn
	} else {
		captured = pos.Get(to).Figure()
	}

	attackerFig := pos.Get(from).Figure()
	if m.IsPromotion() {
		attackerFig = Pawn
	}

	occ := pos.occupied() &^ from.Bitboard()
	if m.Type() == EnPassant {
		occ &^= m.CaptureSquare().Bitboard()
	}

	gains := make([]int32, 0, 32)
	gains = append(gains, seeValue[captured])
	if m.IsPromotion() {
		gains[0] += seeValue[m.PromotionFigure()] - seeValue[Pawn]
	}

	attackers := attackersTo(pos, to, occ)
	side := us.Opposite()
	onSquare := attackerFig
	if m.IsPromotion() {
		onSquare = m.PromotionFigure()
	}

	for {
		fig, sq := leastValuableAttacker(pos, attackers&occ, side)
		if fig == NoFigure {
			break
		}
		gains = append(gains, seeValue[onSquare]-gains[len(gains)-1])
		occ &^= sq.Bitboard()
		attackers &^= sq.Bitboard()
		// Removing a piece can reveal a sliding attacker behind it.
		attackers |= (rookMagic[to].Attack(occ) & (pos.ByFigure[Rook] | pos.ByFigure[Queen])) & occ
		attackers |= (bishopMagic[to].Attack(occ) & (pos.ByFigure[Bishop] | pos.ByFigure[Queen])) & occ
		onSquare = fig
		side = side.Opposite()
	}

	for i := len(gains) - 2; i >= 0; i-- {
		if -gains[i+1] < gains[i] {
			gains[i] = -gains[i+1]
		}
	}
	return gains[0]
}

// SEEGreaterOrEqual reports whether the static exchange evaluation of m
// is at least threshold, by running the full SEE and comparing (used for
// pruning low-value captures).
func SEEGreaterOrEqual(pos *Position, m Move, threshold int32) bool {
	return SEE(pos, m) >= threshold
}
