// pv.go keeps a separate principal-variation table alongside the main
// transposition table, so the PV line reported to the UCI front end
// survives TT replacement pressure from the rest of the tree.
//
// http://www.talkchess.com/forum/viewtopic.php?topic_view=threads&p=369163&t=35982

package engine

const (
	pvTableSize = 1 << 16
	pvTableMask = pvTableSize - 1
)

type pvEntry struct {
	lock uint64 // the position's Zobrist key, for collision detection
	move Move
}

// pvTable is a second, PV-only hash table: entries are only ever written
// along the currently best line, so they don't compete with the bulk of
// the search tree for transposition-table slots.
type pvTable []pvEntry

func newPvTable() pvTable {
	return make(pvTable, pvTableSize)
}

// Put records move as the best move found in pos.
func (pv pvTable) Put(pos *Position, move Move) {
	if move == NullMove {
		return
	}
	zobrist := pos.Zobrist()
	pv[zobrist&pvTableMask] = pvEntry{lock: zobrist, move: move}
}

func (pv pvTable) get(pos *Position) Move {
	zobrist := pos.Zobrist()
	if entry := &pv[zobrist&pvTableMask]; entry.lock == zobrist {
		return entry.move
	}
	return NullMove
}

// Get extracts the principal variation starting at pos by repeatedly
// following recorded moves, stopping at a repetition or a position with
// no recorded move. pos is left unchanged on return.
func (pv pvTable) Get(pos *Position) []Move {
	seen := make(map[uint64]bool)
	var moves []Move

	next := pv.get(pos)
	for next != NullMove && !seen[pos.Zobrist()] {
		seen[pos.Zobrist()] = true
		moves = append(moves, next)
		pos.DoMove(next)
		next = pv.get(pos)
	}

	for range moves {
		pos.UndoMove()
	}
	return moves
}
