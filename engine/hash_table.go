// hash_table.go implements the transposition table: a fixed-size,
// open-addressed cache of search results keyed by Zobrist hash, shared
// by every worker in the pool.

package engine

import (
	"math/bits"
	"sync/atomic"
)

// DefaultHashTableSizeMB is the default transposition table size.
var DefaultHashTableSizeMB = 64

// ttBound classifies how a stored score relates to the window it was
// found with.
type ttBound uint8

const (
	boundNone ttBound = iota
	boundExact
	boundLower // search failed high: score is at least this
	boundUpper // search failed low: score is at most this
)

// ttEntry is one slot in a bucket. Its fields take 11 bytes, a 16-bit
// verifier plus 9 bytes of payload, which Go pads to 12, so four of them
// share a 48-byte bucket.
type ttEntry struct {
	verifier uint16
	move     Move
	score    int16
	eval     int16
	depth    uint8
	bound    ttBound
	gen      uint8
}

const ttBucketSize = 4

type ttBucket struct {
	entries [ttBucketSize]ttEntry
}

// HashTable is the shared transposition table. Lookups are lock-free:
// concurrent writers can race on a bucket, but the verifier field catches
// the resulting corruption and callers treat it as a miss.
type HashTable struct {
	buckets    []ttBucket
	generation uint32
}

// NewHashTable allocates a table of roughly sizeMB megabytes.
func NewHashTable(sizeMB int) *HashTable {
	n := uint64(sizeMB) << 20 / uint64(len(ttBucket{}.entries)*10)
	if n == 0 {
		n = 1
	}
	return &HashTable{buckets: make([]ttBucket, n)}
}

// Resize reallocates the table, discarding all entries.
func (ht *HashTable) Resize(sizeMB int) {
	n := uint64(sizeMB) << 20 / uint64(len(ttBucket{}.entries)*10)
	if n == 0 {
		n = 1
	}
	ht.buckets = make([]ttBucket, n)
	ht.generation = 0
}

// Clear empties the table without reallocating.
func (ht *HashTable) Clear() {
	for i := range ht.buckets {
		ht.buckets[i] = ttBucket{}
	}
	ht.generation = 0
}

// NewSearch bumps the generation counter, used to distinguish entries
// from the current search from stale ones left by previous searches when
// choosing a replacement victim.
func (ht *HashTable) NewSearch() {
	atomic.AddUint32(&ht.generation, 1)
}

// index applies the fixed-point multiplication trick: (hash * n) >> 64
// distributes uniformly over [0,n) for any table size, avoiding a modulo
// and working for non-power-of-two sizes.
func (ht *HashTable) index(hash uint64) uint64 {
	hi, _ := bits.Mul64(hash, uint64(len(ht.buckets)))
	return hi
}

func verifierOf(hash uint64) uint16 { return uint16(hash >> 48) }

// Probe looks up hash and returns the entry and whether it was found
// (verifier matched some slot in the bucket).
func (ht *HashTable) Probe(hash uint64) (ttEntry, bool) {
	bucket := &ht.buckets[ht.index(hash)]
	v := verifierOf(hash)
	for i := range bucket.entries {
		if bucket.entries[i].verifier == v && bucket.entries[i].bound != boundNone {
			return bucket.entries[i], true
		}
	}
	return ttEntry{}, false
}

// Store writes a search result into the table, replacing the weakest
// entry in the bucket: prefer an empty slot, then the oldest generation,
// then the shallowest depth.
func (ht *HashTable) Store(hash uint64, move Move, score, eval int32, depth int, bound ttBound, ply int) {
	bucket := &ht.buckets[ht.index(hash)]
	v := verifierOf(hash)

	victim := 0
	for i := range bucket.entries {
		e := &bucket.entries[i]
		if e.bound == boundNone || e.verifier == v {
			victim = i
			break
		}
		wv := &bucket.entries[victim]
		if e.gen < wv.gen || (e.gen == wv.gen && e.depth < wv.depth) {
			victim = i
		}
	}

	e := &bucket.entries[victim]
	// Keep the previous best move if this store has none and the slot
	// already held one for the same position: a shallower re-probe (e.g.
	// from quiescence) shouldn't erase a deeper search's PV move.
	if move == NullMove && e.verifier == v {
		move = e.move
	}
	e.verifier = v
	e.move = move
	e.score = int16(adjustScoreToStore(score, ply))
	e.eval = int16(clampInt32(eval, -32000, 32000))
	e.depth = uint8(clampInt32(int32(depth), 0, 255))
	e.bound = bound
	e.gen = uint8(ht.generation)
}

func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// adjustScoreToStore rewrites a root-relative mate score found ply levels
// into the search as a mate distance counted from this node, so it stays meaningful
// when retrieved from a different ply with the same remaining distance.
func adjustScoreToStore(score int32, ply int) int32 {
	if score >= KnownWinScore {
		return score + int32(ply)
	}
	if score <= KnownLossScore {
		return score - int32(ply)
	}
	return score
}

// AdjustScoreFromProbe reverses adjustScoreToStore when a stored score is
// read back at a different ply than it was stored at.
func AdjustScoreFromProbe(score int32, ply int) int32 {
	if score >= KnownWinScore {
		return score - int32(ply)
	}
	if score <= KnownLossScore {
		return score + int32(ply)
	}
	return score
}

// Hashfull estimates table occupancy in permille, sampling the first
// 1000 buckets rather than walking the whole table.
func (ht *HashTable) Hashfull() int {
	sample := len(ht.buckets)
	if sample > 1000 {
		sample = 1000
	}
	if sample == 0 {
		return 0
	}
	used := 0
	for i := 0; i < sample; i++ {
		for _, e := range ht.buckets[i].entries {
			if e.bound != boundNone && e.gen == uint8(ht.generation) {
				used++
				break
			}
		}
	}
	return used * 1000 / sample
}

func (e ttEntry) Score() int32 { return int32(e.score) }
func (e ttEntry) Eval() int32  { return int32(e.eval) }
func (e ttEntry) Depth() int   { return int(e.depth) }
func (e ttEntry) Move() Move   { return e.move }
func (e ttEntry) Bound() ttBound { return e.bound }

// UsableScore reports whether the entry's bound lets its score be used
// directly as the node's result against the window (alpha, beta).
func (e ttEntry) UsableScore(alpha, beta int32) (int32, bool) {
	switch e.Bound() {
	case boundExact:
		return e.Score(), true
	case boundLower:
		if e.Score() >= beta {
			return e.Score(), true
		}
	case boundUpper:
		if e.Score() <= alpha {
			return e.Score(), true
		}
	}
	return 0, false
}
