// histories.go tracks how well quiet moves have performed historically,
// so the move picker can try the moves most likely to cause a cutoff
// before the ones least likely to.

package engine

const maxHistory = 1 << 14

// historyTable is a butterfly history: indexed by the moving side, the
// move's from and to squares, same as the classic approach, except
// updates use a gravity formula (bonus shrinks as the slot saturates)
// instead of a flat increment so good scores can't run away unboundedly.
// Two extra bits record whether the from/to squares are currently
// attacked by the opponent, so a quiet move escaping a threatened square
// or walking into one is scored separately from an otherwise-identical
// move played in a quiet position.
type historyTable struct {
	butterfly [ColorArraySize][64][64][2][2]int32
}

// threatIndex reports whether sq is attacked by color them on pos.
func threatIndex(pos *Position, them Color, sq Square) int {
	if attackersTo(pos, sq, pos.occupied())&pos.ByColor[them] != 0 {
		return 1
	}
	return 0
}

func (h *historyTable) get(pos *Position, us Color, m Move) int32 {
	them := us.Opposite()
	tf := threatIndex(pos, them, m.From())
	tt := threatIndex(pos, them, m.To())
	return h.butterfly[us][m.From()][m.To()][tf][tt]
}

func (h *historyTable) update(pos *Position, us Color, m Move, bonus int32) {
	them := us.Opposite()
	tf := threatIndex(pos, them, m.From())
	tt := threatIndex(pos, them, m.To())
	v := &h.butterfly[us][m.From()][m.To()][tf][tt]
	bonus = clampBonus(bonus)
	*v += bonus - *v*abs32(bonus)/maxHistory
}

func clampBonus(b int32) int32 {
	if b > maxHistory {
		return maxHistory
	}
	if b < -maxHistory {
		return -maxHistory
	}
	return b
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// captureHistory tracks how well captures of a given attacker/victim pair
// have performed, used to break ties among captures of equal SEE sign.
type captureHistory struct {
	table [FigureArraySize][64][FigureArraySize]int32
}

func (h *captureHistory) get(attacker Figure, to Square, victim Figure) int32 {
	return h.table[attacker][to][victim]
}

func (h *captureHistory) update(attacker Figure, to Square, victim Figure, bonus int32) {
	v := &h.table[attacker][to][victim]
	bonus = clampBonus(bonus)
	*v += bonus - *v*abs32(bonus)/maxHistory
}

// continuationOffsets are the plies-back a continuation history table
// looks at: the immediately preceding (opponent's) move, our own last
// move two plies back, and four plies back (our own move before that).
var continuationOffsets = [3]int{1, 2, 4}

// continuationTable indexes history by one prior move's piece/to square
// plus the current move, capturing "this move follows well after that
// move" patterns a plain butterfly table can't see.
type continuationTable struct {
	table [PieceArraySize][64][PieceArraySize][64]int32
}

func (h *continuationTable) get(prevPiece Piece, prevTo Square, pi Piece, to Square) int32 {
	return h.table[prevPiece][prevTo][pi][to]
}

func (h *continuationTable) update(prevPiece Piece, prevTo Square, pi Piece, to Square, bonus int32) {
	v := &h.table[prevPiece][prevTo][pi][to]
	bonus = clampBonus(bonus)
	*v += bonus - *v*abs32(bonus)/maxHistory
}

// continuationHistory bundles one continuationTable per offset in
// continuationOffsets.
type continuationHistory struct {
	tables [len(continuationOffsets)]continuationTable
}

// priorMove describes one move ago, for continuation-history lookups;
// Piece is NoPiece when that far back predates the search root.
type priorMove struct {
	Piece Piece
	To    Square
}

func (h *continuationHistory) get(priors []priorMove, pi Piece, to Square) int32 {
	var s int32
	for i, off := range continuationOffsets {
		if off > len(priors) {
			continue
		}
		p := priors[len(priors)-off]
		if p.Piece == NoPiece {
			continue
		}
		s += h.tables[i].get(p.Piece, p.To, pi, to)
	}
	return s
}

func (h *continuationHistory) update(priors []priorMove, pi Piece, to Square, bonus int32) {
	for i, off := range continuationOffsets {
		if off > len(priors) {
			continue
		}
		p := priors[len(priors)-off]
		if p.Piece == NoPiece {
			continue
		}
		h.tables[i].update(p.Piece, p.To, pi, to, bonus)
	}
}

// correctionHistory biases the static evaluation by a learned delta
// between the static eval and the search result actually obtained,
// looked up by a coarse structural hash so similar pawn/material
// skeletons share a correction even when the rest of the position
// differs.
const correctionHistoryBits = 14
const correctionHistorySize = 1 << correctionHistoryBits
const correctionHistoryScale = 256
const maxCorrection = 32 * correctionHistoryScale

type correctionTable [ColorArraySize][correctionHistorySize]int32

func (c *correctionTable) get(us Color, hash uint64) int32 {
	return c[us][hash&uint64(correctionHistorySize-1)] / correctionHistoryScale
}

func (c *correctionTable) update(us Color, hash uint64, staticEval, searchScore int32, weight int32) {
	idx := hash & uint64(correctionHistorySize-1)
	delta := (searchScore - staticEval) * correctionHistoryScale
	v := &c[us][idx]
	*v += (delta*weight - *v*weight/16) / 16
	if *v > maxCorrection {
		*v = maxCorrection
	} else if *v < -maxCorrection {
		*v = -maxCorrection
	}
}

// correctionHistories bundles the pawn/non-pawn/minor/material correction
// tables the static eval is adjusted by before being used as a search
// bound. material is keyed by the full material signature (piece counts
// per side, independent of square) so positions that transpose to the
// same material balance through different move orders share a learned
// correction even when their pawn/minor skeletons differ.
type correctionHistories struct {
	pawn     correctionTable
	nonPawn  correctionTable
	minor    correctionTable
	material correctionTable
}

// correct adjusts a raw static evaluation using all four tables.
func (c *correctionHistories) correct(us Color, pawnHash, nonPawnHash, minorHash, materialHash uint64, staticEval int32) int32 {
	adj := c.pawn.get(us, pawnHash) + c.nonPawn.get(us, nonPawnHash) + c.minor.get(us, minorHash) + c.material.get(us, materialHash)
	return staticEval + adj
}

func (c *correctionHistories) update(us Color, pawnHash, nonPawnHash, minorHash, materialHash uint64, staticEval, searchScore int32, weight int32) {
	c.pawn.update(us, pawnHash, staticEval, searchScore, weight)
	c.nonPawn.update(us, nonPawnHash, staticEval, searchScore, weight)
	c.minor.update(us, minorHash, staticEval, searchScore, weight)
	c.material.update(us, materialHash, staticEval, searchScore, weight)
}

const maxPly = 128

// killerTable keeps the two most recent quiet moves that caused a beta
// cutoff at each ply, tried before other quiet moves on a sibling node.
type killerTable struct {
	killers [maxPly][2]Move
}

func (k *killerTable) get(ply int) (Move, Move) {
	if ply >= maxPly {
		return NullMove, NullMove
	}
	return k.killers[ply][0], k.killers[ply][1]
}

func (k *killerTable) add(ply int, m Move) {
	if ply >= maxPly {
		return
	}
	if k.killers[ply][0] == m {
		return
	}
	k.killers[ply][1] = k.killers[ply][0]
	k.killers[ply][0] = m
}

// counterMoveTable maps the last move played to the quiet move that most
// recently refuted it.
type counterMoveTable struct {
	table [PieceArraySize][64]Move
}

func (c *counterMoveTable) get(prevPiece Piece, prevTo Square) Move {
	return c.table[prevPiece][prevTo]
}

func (c *counterMoveTable) set(prevPiece Piece, prevTo Square, m Move) {
	c.table[prevPiece][prevTo] = m
}
