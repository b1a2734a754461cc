// search.go implements the principal variation search: iterative
// deepening with aspiration windows at the root, and inside each
// iteration a negamax tree carrying null-move pruning, reverse futility
// pruning, internal iterative reduction, singular extensions, late move
// reductions/pruning, SEE and history pruning, and quiescence at the
// leaves.

package engine

import "math"

const (
	checkDepthExtension  int32 = 1 // extend one ply when a move gives check
	nullMoveDepthLimit   int32 = 2 // disable null-move at/below this depth
	lmrDepthLimit        int32 = 3 // disable LMR at/below this depth
	futilityDepthLimit   int32 = 7 // disable futility/RFP above this depth
	lmpDepthLimit        int32 = 8 // disable late-move pruning above this depth
	seePruningDepthLimit int32 = 8 // disable SEE pruning above this depth
	iirDepthLimit        int32 = 4 // reduce depth by 1 with no TT move at/above this
	singularDepthLimit   int32 = 7 // minimum depth to try a singular extension

	initialAspirationWindow = 21  // ~a quarter of a pawn
	futilityMargin          = 150 // ~one and a half pawns per ply of margin
	checkpointStep          = HardNodeCheckInterval
)

// lmrTable[depth][moveIndex] is the base late-move reduction, following
// the usual log(depth)*log(moveIndex) shape so reductions grow gently at
// low depth/move counts and aggressively deep into the move list.
var lmrTable [64][64]int32

func init() {
	for d := 1; d < 64; d++ {
		for m := 1; m < 64; m++ {
			r := 0.3 + math.Log(float64(d))*math.Log(float64(m))/2.25
			lmrTable[d][m] = int32(r)
		}
	}
}

// Options keeps engine-wide search options.
type Options struct {
	AnalyseMode bool  // true to display info strings
	Contempt    int32 // centipawns subtracted from a draw score for the side to move
}

// Stats stores statistics about the search.
type Stats struct {
	CacheHit  uint64
	CacheMiss uint64
	Nodes     uint64
	Depth     int32
	SelDepth  int32
}

func (s *Stats) CacheHitRatio() float32 {
	return float32(s.CacheHit) / float32(s.CacheHit+s.CacheMiss)
}

// Logger logs search progress to the UCI front end.
type Logger interface {
	BeginSearch()
	EndSearch()
	PrintPV(stats Stats, score int32, pv []Move)
	CurrMove(depth int32, move Move, num int)
}

// NulLogger discards everything; used when no UCI front end is attached.
type NulLogger struct{}

func (nl *NulLogger) BeginSearch()                 {}
func (nl *NulLogger) EndSearch()                   {}
func (nl *NulLogger) PrintPV(Stats, int32, []Move) {}
func (nl *NulLogger) CurrMove(int32, Move, int)    {}

// Engine searches for the best move in a position, sharing its
// transposition table, PV table and correction histories with any sibling
// engines in a lazy-SMP pool. Its Stack (move-ordering histories, killers,
// counter moves) is its own.
type Engine struct {
	Options  Options
	Log      Logger
	Stats    Stats
	Position *Position

	TT    *HashTable
	PV    pvTable
	Stack *searchStack
	Corr  *correctionHistories

	rootPly       int
	priors        []priorMove
	evalStack     [maxPly]int32
	evalValid     [maxPly]bool
	rootMoveNodes map[Move]uint64

	timeControl *TimeControl
	stopped     bool
	checkpoint  uint64
}

// NewEngine creates an engine sharing tt/pv/corr with the rest of a
// lazy-SMP pool and searching with its own stack. pos may be nil, in which
// case the start position is set.
func NewEngine(pos *Position, log Logger, options Options, tt *HashTable, pv pvTable, stack *searchStack, corr *correctionHistories) *Engine {
	if log == nil {
		log = &NulLogger{}
	}
	eng := &Engine{
		Options: options,
		Log:     log,
		TT:      tt,
		PV:      pv,
		Stack:   stack,
		Corr:    corr,
	}
	eng.SetPosition(pos)
	return eng
}

func (eng *Engine) SetPosition(pos *Position) {
	if pos != nil {
		eng.Position = pos
	} else {
		eng.Position, _ = PositionFromFEN(FENStartPos)
	}
}

func (eng *Engine) doMove(m Move) {
	moved := eng.Position.Get(m.From())
	eng.Position.DoMove(m)
	eng.priors = append(eng.priors, priorMove{Piece: moved, To: m.To()})
}

func (eng *Engine) undoMove() {
	eng.Position.UndoMove()
	eng.priors = eng.priors[:len(eng.priors)-1]
}

func (eng *Engine) doNullMove() {
	eng.Position.DoNullMove()
	eng.priors = append(eng.priors, priorMove{Piece: NoPiece, To: SquareA1})
}

func (eng *Engine) undoNullMove() {
	eng.Position.UndoNullMove()
	eng.priors = eng.priors[:len(eng.priors)-1]
}

func (eng *Engine) ply() int32 { return int32(eng.Position.Ply - eng.rootPly) }

func colorSign(c Color) int32 {
	if c == White {
		return 1
	}
	return -1
}

// rawEval returns the static evaluation from the side-to-move's POV,
// corrected by the learned correction-history delta.
func (eng *Engine) rawEval() int32 {
	pos := eng.Position
	cp := Evaluate(pos) * colorSign(pos.SideToMove)
	us := pos.SideToMove
	return eng.Corr.correct(us, pawnHash(pos), nonPawnHash(pos), minorHash(pos), materialHash(pos), cp)
}

func pawnHash(pos *Position) uint64 {
	var h uint64
	for bb := pos.ByFigure[Pawn]; bb != 0; {
		sq := bb.Pop()
		h ^= zobristPiece[pos.Get(sq)][sq]
	}
	return h
}

func nonPawnHash(pos *Position) uint64 {
	var h uint64
	for fig := Knight; fig <= King; fig++ {
		for bb := pos.ByFigure[fig]; bb != 0; {
			sq := bb.Pop()
			h ^= zobristPiece[pos.Get(sq)][sq]
		}
	}
	return h
}

func minorHash(pos *Position) uint64 {
	var h uint64
	for _, fig := range [2]Figure{Knight, Bishop} {
		for bb := pos.ByFigure[fig]; bb != 0; {
			sq := bb.Pop()
			h ^= zobristPiece[pos.Get(sq)][sq]
		}
	}
	return h
}

// materialHashWeights are arbitrary odd multipliers, one per figure, used
// to fold per-side piece counts into a single hash independent of where
// those pieces actually stand.
var materialHashWeights = [FigureArraySize]uint64{
	Pawn:   0x9E3779B97F4A7C15,
	Knight: 0xC2B2AE3D27D4EB4F,
	Bishop: 0x165667B19E3779F9,
	Rook:   0x27D4EB2F165667C5,
	Queen:  0x85EBCA6B9E3779B1,
	King:   0xD6E8FEB86659FD93,
}

// materialHash keys the correction table on material balance alone (piece
// counts per side, per figure), so transpositions that reach the same
// material through a different move order share a learned correction.
func materialHash(pos *Position) uint64 {
	var h uint64
	for fig := Pawn; fig <= King; fig++ {
		wc := uint64(pos.ByPiece(White, fig).Count())
		bc := uint64(pos.ByPiece(Black, fig).Count())
		h ^= materialHashWeights[fig] * (wc*16 + bc)
	}
	return h
}

func mateIn(ply int32) int32  { return MateScore - ply }
func matedIn(ply int32) int32 { return MatedScore + ply }

// drawScore applies a small contempt penalty against the side to move,
// so the engine avoids steering drawn-looking positions when it believes
// itself to be ahead.
func (eng *Engine) drawScore() int32 {
	return -eng.Options.Contempt
}

// endPosition reports a terminal score for draws; mate/stalemate can only
// be detected after the move loop finds no legal moves.
func (eng *Engine) endPosition() (int32, bool) {
	pos := eng.Position
	if isInsufficientMaterial(pos) {
		return eng.drawScore(), true
	}
	if pos.IsFiftyMoveRule() {
		return eng.drawScore(), true
	}
	if pos.IsThreeFoldRepetition() {
		return eng.drawScore(), true
	}
	return 0, false
}

func minorsAndMajors(pos *Position, us Color) Bitboard {
	return pos.ByPiece(us, Knight) | pos.ByPiece(us, Bishop) | pos.ByPiece(us, Rook) | pos.ByPiece(us, Queen)
}

func countMax2(bb Bitboard) int32 {
	if n := bb.Count(); n < 2 {
		return int32(n)
	}
	return 2
}

// isFutile reports whether m cannot plausibly raise static above alpha,
// even granting it the best-case capture gain.
func isFutile(pos *Position, static, alpha, margin int32, m Move) bool {
	if m.IsPromotion() {
		return false
	}
	delta := seeValue[capturedFigure(pos, m)]
	return static+delta+margin < alpha
}

func rfpMargin(depth int32, improving bool) int32 {
	m := int32(80) * depth
	if improving {
		m -= 60
	}
	return m
}

func nullMoveReduction(depth, eval, beta int32) int32 {
	r := int32(3) + depth/4
	if d := (eval - beta) / 200; d > 0 {
		r += minI32(d, 3)
	}
	return r
}

func lmpThreshold(depth int32, improving bool) int32 {
	t := 3 + depth*depth
	if !improving {
		t /= 2
	}
	return t
}

func seeQuietMargin(depth int32) int32   { return -64 * depth }
func seeCaptureMargin(depth int32) int32 { return -20 * depth * depth }

func lmrReduction(depth, moveIndex int32) int32 {
	d, m := int(depth), int(moveIndex)
	if d >= 64 {
		d = 63
	}
	if m >= 64 {
		m = 63
	}
	if d < 1 || m < 1 {
		return 0
	}
	return lmrTable[d][m]
}

// negamax searches the subtree rooted at the current position to depth,
// returning a fail-soft score from the side-to-move's POV. excluded, when
// not NullMove, is skipped in the move loop (used by singular extension
// verification searches).
func (eng *Engine) negamax(alpha, beta, depth int32, pvNode, cutNode bool, excluded Move) int32 {
	ply := eng.ply()
	pos := eng.Position

	eng.Stats.Nodes++
	if !eng.stopped && eng.Stats.Nodes >= eng.checkpoint {
		eng.checkpoint = eng.Stats.Nodes + checkpointStep
		limit := eng.timeControl.NodeLimit
		if eng.timeControl.HardExceeded() || (limit != 0 && eng.Stats.Nodes >= limit) {
			eng.stopped = true
		}
	}
	if eng.stopped {
		return alpha
	}
	if pvNode && ply > eng.Stats.SelDepth {
		eng.Stats.SelDepth = ply
	}
	if ply >= maxPly-1 {
		return eng.rawEval()
	}

	if ply > 0 {
		if score, done := eng.endPosition(); done {
			return score
		}
		// Mate-distance pruning: tighten the window to what's actually
		// reachable so deeper search can't find a "better" mate than one
		// already guaranteed higher in the tree.
		alpha = maxI32(alpha, matedIn(ply))
		beta = minI32(beta, mateIn(ply))
		if alpha >= beta {
			return alpha
		}
	}

	inCheck := pos.IsChecked()

	if depth <= 0 && !inCheck {
		return eng.searchQuiescence(alpha, beta)
	}
	if depth <= 0 {
		depth = 1 // never quiesce while in check: look for the only legal replies
	}

	origAlpha := alpha
	hash := NullMove
	var ttEntry ttEntry
	var ttHit bool
	if excluded == NullMove {
		ttEntry, ttHit = eng.TT.Probe(pos.Zobrist())
		if ttHit {
			eng.Stats.CacheHit++
			hash = ttEntry.Move()
			if !pvNode && int32(ttEntry.Depth()) >= depth {
				if score, ok := ttEntry.UsableScore(alpha, beta); ok {
					return AdjustScoreFromProbe(score, int(ply))
				}
			}
		} else {
			eng.Stats.CacheMiss++
		}
	}

	var static int32
	if inCheck {
		static = matedIn(ply)
		eng.evalValid[ply] = false
	} else if ttHit {
		static = AdjustScoreFromProbe(ttEntry.Eval(), int(ply))
		eng.evalStack[ply] = static
		eng.evalValid[ply] = true
	} else {
		static = eng.rawEval()
		eng.evalStack[ply] = static
		eng.evalValid[ply] = true
	}

	improving := false
	if !inCheck && ply >= 2 && eng.evalValid[ply-2] {
		improving = static > eng.evalStack[ply-2]
	}

	if !pvNode && !inCheck && excluded == NullMove {
		// Reverse futility pruning: the static eval is already so far
		// above beta that no reply search is likely to change that.
		if depth <= futilityDepthLimit && beta < KnownWinScore &&
			static-rfpMargin(depth, improving) >= beta {
			return static
		}

		// Null-move pruning: if passing still doesn't let the opponent
		// catch up, the position is too good to need a real move here.
		if depth > nullMoveDepthLimit && static >= beta &&
			minorsAndMajors(pos, pos.SideToMove) != 0 &&
			KnownLossScore < alpha && beta < KnownWinScore {
			r := nullMoveReduction(depth, static, beta)
			eng.doNullMove()
			score := -eng.negamax(-beta, -beta+1, depth-1-r, false, !cutNode, NullMove)
			eng.undoNullMove()
			if eng.stopped {
				return alpha
			}
			if score >= beta {
				if score >= KnownWinScore {
					score = beta
				}
				return score
			}
		}
	}

	// Internal iterative reduction: no TT move to trust at a deep node,
	// so shrink the search a touch rather than spend a full-depth pass
	// finding out there was nothing better.
	if hash == NullMove && depth >= iirDepthLimit && excluded == NullMove {
		depth--
	}

	moves := eng.Stack.GenerateOrdered(pos, int(ply), hash, eng.priors)
	if len(moves) == 0 {
		if inCheck {
			return matedIn(ply)
		}
		return eng.drawScore()
	}

	bestMove, bestScore := NullMove, int32(-InfinityScore)
	var allTried []Move
	numQuiets := int32(0)

	for i, sm := range moves {
		move := sm.move
		if move == excluded {
			continue
		}
		quiet := !isViolent(pos, move)
		numQuiets += boolToI32(quiet)
		numMoves := int32(i + 1)

		eng.doMove(move)
		givesCheck := pos.IsChecked()
		eng.undoMove()

		// Late move pruning: at shallow depth, once enough quiets have
		// already been tried without success, stop looking at more.
		if !pvNode && quiet && !givesCheck && !inCheck && depth <= lmpDepthLimit &&
			numQuiets > lmpThreshold(depth, improving) {
			continue
		}

		// Futility pruning: a quiet move this far below alpha is very
		// unlikely to be the one that changes the verdict.
		if !pvNode && !inCheck && quiet && !givesCheck && depth <= futilityDepthLimit &&
			isFutile(pos, static, alpha, futilityMargin*depth, move) {
			continue
		}

		// SEE pruning: skip moves that lose material beyond the
		// depth-scaled threshold for their shape.
		if !pvNode && depth <= seePruningDepthLimit && !givesCheck {
			margin := seeCaptureMargin(depth)
			if quiet {
				margin = seeQuietMargin(depth)
			}
			if !SEEGreaterOrEqual(pos, move, margin) {
				continue
			}
		}

		// History pruning: quiet moves with a bad track record from this
		// context are skipped at low depth rather than searched out.
		if !pvNode && quiet && !givesCheck && !inCheck && depth <= 4 {
			pi := pos.Get(move.From())
			hist := eng.Stack.history.get(pos, pos.SideToMove, move) + eng.Stack.continuation.get(eng.priors, pi, move.To())
			if hist < -2000*depth {
				continue
			}
		}

		newDepth := depth
		if givesCheck {
			newDepth += checkDepthExtension
		}

		// Singular extension: verify the TT move is really the only
		// good move here by searching everything else with a tight
		// window just below its score; extend if nothing else comes
		// close, cut the node (multicut) if another move also beats beta.
		extension := int32(0)
		if move == hash && excluded == NullMove && depth >= singularDepthLimit &&
			ttHit && int32(ttEntry.Depth()) >= depth-3 &&
			(ttEntry.Bound() == boundExact || ttEntry.Bound() == boundLower) {
			ttScore := AdjustScoreFromProbe(ttEntry.Score(), int(ply))
			if ttScore > KnownLossScore && ttScore < KnownWinScore {
				singularBeta := ttScore - 2*depth
				singularDepth := (depth - 1) / 2
				score := eng.negamax(singularBeta-1, singularBeta, singularDepth, false, cutNode, move)
				if score < singularBeta {
					extension = 1
					if !pvNode && score < singularBeta-24 {
						extension = 2
					}
				} else if singularBeta >= beta {
					return singularBeta // multicut
				} else if cutNode {
					extension = -1
				}
			}
		}
		newDepth += extension

		// Late move reductions: later, quiet, unremarkable moves get a
		// shallower look first and only a full-depth re-search if they
		// beat expectations.
		reduction := int32(0)
		if !inCheck && !givesCheck && depth > lmrDepthLimit && numMoves > 1 && quiet {
			reduction = lmrReduction(depth, numMoves)
			if !pvNode {
				reduction++
			}
			if cutNode {
				reduction++
			}
			pi := pos.Get(move.From())
			hist := eng.Stack.history.get(pos, pos.SideToMove, move) + eng.Stack.continuation.get(eng.priors, pi, move.To())
			reduction -= clampI32(hist/4000, -2, 2)
			reduction = maxI32(reduction, 0)
			if newDepth-reduction < 1 {
				reduction = newDepth - 1
			}
		}

		if ply == 0 {
			eng.Log.CurrMove(depth, move, int(numMoves))
		}

		eng.doMove(move)
		nodesBefore := eng.Stats.Nodes

		var score int32
		if numMoves == 1 {
			score = -eng.negamax(-beta, -alpha, newDepth-1, pvNode, false, NullMove)
		} else {
			score = -eng.negamax(-alpha-1, -alpha, newDepth-1-reduction, false, true, NullMove)
			if score > alpha && reduction > 0 {
				score = -eng.negamax(-alpha-1, -alpha, newDepth-1, false, true, NullMove)
			}
			if score > alpha && (pvNode || reduction > 0) {
				score = -eng.negamax(-beta, -alpha, newDepth-1, pvNode, false, NullMove)
			}
		}
		eng.undoMove()

		if ply == 0 && eng.rootMoveNodes != nil {
			eng.rootMoveNodes[move] += eng.Stats.Nodes - nodesBefore
		}

		if eng.stopped {
			return alpha
		}

		allTried = append(allTried, move)

		if score > bestScore {
			bestScore, bestMove = score, move
		}
		if score > alpha {
			alpha = score
			if alpha < beta {
				eng.PV.Put(pos, move)
			}
		}
		if alpha >= beta {
			eng.Stack.OnBetaCutoff(pos, int(ply), move, allTried, int(depth), eng.priors)
			break
		}
	}

	if !eng.stopped && excluded == NullMove {
		bound := boundExact
		if bestScore <= origAlpha {
			bound = boundUpper
		} else if bestScore >= beta {
			bound = boundLower
		}
		eng.TT.Store(pos.Zobrist(), bestMove, bestScore, static, int(depth), bound, int(ply))

		// Correction history update: only meaningful away from forced
		// lines (check, mate scores, fail-low-with-no-improvement), and
		// only pulls the static eval toward what search actually found.
		if !inCheck && bestMove != NullMove &&
			bestScore > KnownLossScore && bestScore < KnownWinScore &&
			!(bound == boundLower && bestScore <= static) &&
			!(bound == boundUpper && bestScore >= static) {
			us := pos.SideToMove
			eng.Corr.update(us, pawnHash(pos), nonPawnHash(pos), minorHash(pos), materialHash(pos), static, bestScore, int32(depth))
		}
	}

	return bestScore
}

func clampI32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func boolToI32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// searchQuiescence resolves captures/promotions (and, in check, every
// legal reply) until the position is quiet, then returns the static eval.
func (eng *Engine) searchQuiescence(alpha, beta int32) int32 {
	ply := eng.ply()
	pos := eng.Position

	eng.Stats.Nodes++
	if score, done := eng.endPosition(); done {
		return score
	}
	if ply >= maxPly-1 {
		return eng.rawEval()
	}

	inCheck := pos.IsChecked()
	static := eng.rawEval()
	if !inCheck {
		if static >= beta {
			return static
		}
		alpha = maxI32(alpha, static)
	}

	var moves []scoredMove
	if inCheck {
		moves = eng.Stack.GenerateOrdered(pos, int(ply), NullMove, eng.priors)
	} else {
		moves = eng.Stack.GenerateOrderedViolent(pos, int(ply), eng.priors)
	}

	bestScore := static
	if inCheck {
		bestScore = matedIn(ply)
	}

	for _, sm := range moves {
		move := sm.move
		if !inCheck && !SEEGreaterOrEqual(pos, move, 0) {
			continue
		}
		eng.doMove(move)
		score := -eng.searchQuiescence(-beta, -alpha)
		eng.undoMove()

		if score > bestScore {
			bestScore = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	return bestScore
}

// search runs one iterative-deepening iteration with an aspiration
// window around estimated, widening on repeated fail low/high until it
// lands inside the true score or the time control stops the search.
func (eng *Engine) search(depth, estimated int32) int32 {
	gamma, delta := estimated, int32(initialAspirationWindow)
	alpha, beta := maxI32(gamma-delta, -InfinityScore), minI32(gamma+delta, InfinityScore)
	score := estimated

	if depth < 4 {
		alpha, beta = -InfinityScore, InfinityScore
	}

	for !eng.stopped {
		score = eng.negamax(alpha, beta, depth, true, false, NullMove)
		if score <= alpha {
			alpha = maxI32(alpha-delta, -InfinityScore)
			delta += delta / 2
		} else if score >= beta {
			beta = minI32(beta+delta, InfinityScore)
			delta += delta / 2
		} else {
			return score
		}
	}
	return score
}

// Play runs iterative deepening until tc calls time, returning the
// principal variation (moves[0] is the move to play, moves[1] the move to
// ponder). tc must already be started.
func (eng *Engine) Play(tc *TimeControl) (moves []Move) {
	eng.Log.BeginSearch()
	eng.Stats = Stats{Depth: -1}

	eng.rootPly = eng.Position.Ply
	eng.timeControl = tc
	eng.stopped = false
	eng.checkpoint = checkpointStep
	eng.priors = eng.priors[:0]
	eng.TT.NewSearch()

	score := int32(0)
	var best Move
	for depth := int32(1); depth <= int32(tc.Depth); depth++ {
		if !tc.NextDepth(int(depth)) {
			break
		}
		eng.rootMoveNodes = make(map[Move]uint64)
		nodesBefore := eng.Stats.Nodes

		eng.Stats.Depth = depth
		score = eng.search(depth, score)

		if !eng.stopped {
			moves = eng.PV.Get(eng.Position)
			if len(moves) > 0 {
				best = moves[0]
			}
			eng.Log.PrintPV(eng.Stats, score, moves)

			totalNodes := eng.Stats.Nodes - nodesBefore
			tc.RecordIteration(best, score, totalNodes, eng.rootMoveNodes[best])
		}
	}

	eng.Log.EndSearch()
	return moves
}
