// move_ordering.go scores and sorts one ply's legal moves so the search
// tries the moves most likely to be best first: the TT move, then
// winning captures, then killers and the counter move, then quiets by
// history, then losing captures last.

package engine

const (
	scoreHashMove    = 1 << 30
	scoreGoodCapture = 1 << 20
	scoreKiller1     = 1 << 19
	scoreKiller2     = scoreKiller1 - 1
	scoreCounterMove = scoreKiller2 - 1
	scoreQuietBase   = 0
	scoreBadCapture  = -(1 << 20)
)

// mvvlvaBonus is indexed by figure; used to rank captures by victim value
// first, attacker value second (Most Valuable Victim / Least Valuable
// Aggressor). scoreMove scales the victim term by 64, which makes it
// dominate except between knight (32) and bishop (33) victims, where the
// attacker term can outweigh the one-point victim gap (a king taking a
// bishop ranks below a pawn taking a knight).
var mvvlvaBonus = [FigureArraySize]int32{0, 10, 32, 33, 50, 90, 200}

type scoredMove struct {
	move  Move
	score int32
}

// searchStack holds per-ply move-ordering state shared across the whole
// search: move lists are generated fresh each node, but killers/history
// persist across the tree.
type searchStack struct {
	history      historyTable
	captures     captureHistory
	continuation continuationHistory
	killers      killerTable
	counters     counterMoveTable

	list [maxPly][]scoredMove
}

func newSearchStack() *searchStack {
	return &searchStack{}
}

// isViolent reports whether m is a capture, en passant or promotion, the
// three move shapes that bypass ordinary quiet-move ordering. The move's
// own tag carries this directly, so no board lookup is needed.
func isViolent(pos *Position, m Move) bool {
	return m.IsCapture() || m.IsPromotion()
}

func capturedFigure(pos *Position, m Move) Figure {
	if m.Type() == EnPassant {
		return Pawn
	}
	return pos.Get(m.To()).Figure()
}

// scoreMove assigns m an ordering score for the current node. priors holds
// the moves played to reach this node (oldest first), used for the
// counter-move and continuation-history lookups.
func (ss *searchStack) scoreMove(pos *Position, ply int, m, hashMove Move, priors []priorMove) int32 {
	if m == hashMove {
		return scoreHashMove
	}

	us := pos.SideToMove
	if isViolent(pos, m) {
		attacker := pos.Get(m.From()).Figure()
		victim := capturedFigure(pos, m)
		base := mvvlvaBonus[victim]*64 - mvvlvaBonus[attacker]
		hist := ss.captures.get(attacker, m.To(), victim)
		if SEE(pos, m) >= 0 {
			return scoreGoodCapture + base*256 + hist
		}
		return scoreBadCapture + base*256 + hist
	}

	k1, k2 := ss.killers.get(ply)
	switch m {
	case k1:
		return scoreKiller1
	case k2:
		return scoreKiller2
	}
	if last, ok := lastPrior(priors); ok && ss.counters.get(last.Piece, last.To) == m {
		return scoreCounterMove
	}

	pi := pos.Get(m.From())
	cont := ss.continuation.get(priors, pi, m.To())
	return scoreQuietBase + ss.history.get(pos, us, m) + cont
}

func lastPrior(priors []priorMove) (priorMove, bool) {
	if len(priors) == 0 {
		return priorMove{}, false
	}
	return priors[len(priors)-1], true
}

// GenerateOrdered returns every legal move at ply, sorted best-first.
func (ss *searchStack) GenerateOrdered(pos *Position, ply int, hashMove Move, priors []priorMove) []scoredMove {
	var buf [64]Move
	moves := pos.GenerateMoves(All, buf[:0])

	list := ss.list[ply][:0]
	for _, m := range moves {
		list = append(list, scoredMove{m, ss.scoreMove(pos, ply, m, hashMove, priors)})
	}
	ss.list[ply] = list
	insertionSortMoves(list)
	return list
}

// GenerateOrderedViolent returns only the violent (capture/promotion/en
// passant) legal moves at ply, sorted best-first; used by quiescence
// search, which never considers quiet moves.
func (ss *searchStack) GenerateOrderedViolent(pos *Position, ply int, priors []priorMove) []scoredMove {
	var buf [32]Move
	moves := pos.GenerateMoves(Violent, buf[:0])

	list := ss.list[ply][:0]
	for _, m := range moves {
		list = append(list, scoredMove{m, ss.scoreMove(pos, ply, m, NullMove, priors)})
	}
	ss.list[ply] = list
	insertionSortMoves(list)
	return list
}

// insertionSortMoves sorts descending by score. Move lists are short (a
// few dozen entries at most) so insertion sort beats the overhead of a
// general-purpose sort.
func insertionSortMoves(list []scoredMove) {
	for i := 1; i < len(list); i++ {
		v := list[i]
		j := i - 1
		for j >= 0 && list[j].score < v.score {
			list[j+1] = list[j]
			j--
		}
		list[j+1] = v
	}
}

// OnBetaCutoff records a fail-high at ply: quiet moves get killer/history/
// continuation-history credit, captures get capture-history credit, and
// every move tried before the cutoff gets a matching malus so the scores
// stay well separated over time.
func (ss *searchStack) OnBetaCutoff(pos *Position, ply int, best Move, tried []Move, depth int, priors []priorMove) {
	bonus := int32(depth * depth * 16)
	us := pos.SideToMove

	if isViolent(pos, best) {
		attacker := pos.Get(best.From()).Figure()
		victim := capturedFigure(pos, best)
		ss.captures.update(attacker, best.To(), victim, bonus)
	} else {
		ss.killers.add(ply, best)
		if last, ok := lastPrior(priors); ok {
			ss.counters.set(last.Piece, last.To, best)
		}
		ss.history.update(pos, us, best, bonus)
		pi := pos.Get(best.From())
		ss.continuation.update(priors, pi, best.To(), bonus)
	}

	for _, m := range tried {
		if m == best {
			continue
		}
		if isViolent(pos, m) {
			attacker := pos.Get(m.From()).Figure()
			victim := capturedFigure(pos, m)
			ss.captures.update(attacker, m.To(), victim, -bonus)
		} else {
			ss.history.update(pos, us, m, -bonus)
			pi := pos.Get(m.From())
			ss.continuation.update(priors, pi, m.To(), -bonus)
		}
	}
}
