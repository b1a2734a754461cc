// Package perft counts the leaf nodes of the legal move tree to a fixed
// depth: the standard cross-check for move generator correctness, and the
// regression fixture for movegen.go's legal-generation changes.
//
// Expected counts for the well-known test positions are published at
// https://www.chessprogramming.org/Perft_Results.
package perft

import "github.com/sroelants/simbelmyne/engine"

// Counts breaks a perft total down by move category, the traditional
// reporting shape that catches bugs a bare node total would hide (e.g. a
// movegen that drops en passant but happens to keep the same node count).
type Counts struct {
	Nodes      uint64
	Captures   uint64
	Enpassant  uint64
	Castles    uint64
	Promotions uint64
}

func (c *Counts) add(o Counts) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.Enpassant += o.Enpassant
	c.Castles += o.Castles
	c.Promotions += o.Promotions
}

type hashEntry struct {
	zobrist uint64
	depth   int
	counts  Counts
}

// Table is an optional perft-local transposition table, keyed purely by
// Zobrist hash and depth; perft results don't depend on alpha/beta, so a
// single counts value per key is all a slot needs.
type Table []hashEntry

// NewTable allocates a perft hash table sized to hold about n entries.
func NewTable(n int) Table {
	if n <= 0 {
		n = 1
	}
	return make(Table, n)
}

// Count runs perft to depth and returns the leaf node count, using table
// (which may be nil) to skip already-seen subtrees.
func Count(pos *engine.Position, depth int, table Table) Counts {
	if depth == 0 {
		return Counts{Nodes: 1}
	}

	if table != nil {
		idx := pos.Zobrist() % uint64(len(table))
		if table[idx].depth == depth && table[idx].zobrist == pos.Zobrist() {
			return table[idx].counts
		}
	}

	var buf [256]engine.Move
	moves := pos.GenerateMoves(engine.All, buf[:0])

	r := Counts{}
	for _, move := range moves {
		if depth == 1 {
			switch move.Type() {
			case engine.EnPassant:
				r.Enpassant++
				r.Captures++
			case engine.KingCastle, engine.QueenCastle:
				r.Castles++
			default:
				if move.IsPromotion() {
					r.Promotions++
				}
				if move.IsCapture() {
					r.Captures++
				}
			}
		}

		pos.DoMove(move)
		r.add(Count(pos, depth-1, table))
		pos.UndoMove()
	}

	if table != nil {
		idx := pos.Zobrist() % uint64(len(table))
		table[idx] = hashEntry{zobrist: pos.Zobrist(), depth: depth, counts: r}
	}
	return r
}

// Split runs perft at depth, returning the per-root-move subtree count,
// the traditional debugging aid for finding exactly which branch of the
// move tree diverges from a reference engine.
func Split(pos *engine.Position, depth int) (Counts, map[string]uint64) {
	var buf [256]engine.Move
	moves := pos.GenerateMoves(engine.All, buf[:0])

	total := Counts{}
	perMove := make(map[string]uint64, len(moves))
	for _, move := range moves {
		pos.DoMove(move)
		c := Count(pos, depth-1, nil)
		pos.UndoMove()
		perMove[move.String()] = c.Nodes
		total.add(c)
	}
	return total, perMove
}
