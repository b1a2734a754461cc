// workerpool.go implements lazy-SMP: several engines share the
// transposition table, PV table and correction histories but search their
// own copy of the position with their own move-ordering histories,
// contending on nothing except those shared caches. One worker is the
// "main" thread and owns the returned principal variation; the rest
// search the same root and feed the shared TT.

package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// WorkerPool runs a lazy-SMP search across Threads workers, all feeding
// the same transposition table and correction histories.
type WorkerPool struct {
	Options Options
	Log     Logger

	tt    *HashTable
	pv    pvTable
	corr  *correctionHistories
	stack [](*searchStack) // one per worker, each with its own history tables

	threads   int
	lastNodes uint64 // main worker's node count from the last Play call
}

// NewWorkerPool allocates a pool with hashSizeMB megabytes of shared
// transposition table and threads workers.
func NewWorkerPool(hashSizeMB, threads int) *WorkerPool {
	if threads < 1 {
		threads = 1
	}
	wp := &WorkerPool{
		Log:     &NulLogger{},
		tt:      NewHashTable(hashSizeMB),
		pv:      newPvTable(),
		corr:    &correctionHistories{},
		threads: threads,
	}
	wp.stack = make([]*searchStack, threads)
	for i := range wp.stack {
		wp.stack[i] = newSearchStack()
	}
	return wp
}

// SetThreads resizes the worker pool, keeping the shared tables.
func (wp *WorkerPool) SetThreads(threads int) {
	if threads < 1 {
		threads = 1
	}
	wp.threads = threads
	wp.stack = make([]*searchStack, threads)
	for i := range wp.stack {
		wp.stack[i] = newSearchStack()
	}
}

// SetHashSize reallocates the shared transposition table, discarding its
// contents.
func (wp *WorkerPool) SetHashSize(sizeMB int) {
	wp.tt.Resize(sizeMB)
}

// Hash returns the shared transposition table, so the UCI front end's
// logger can report hashfull without the worker pool owning logging.
func (wp *WorkerPool) Hash() *HashTable {
	return wp.tt
}

// NewGame clears everything that must not leak across UCI "ucinewgame"
// boundaries: the TT, the PV table and every worker's history tables.
func (wp *WorkerPool) NewGame() {
	wp.tt.Clear()
	for i := range wp.pv {
		wp.pv[i] = pvEntry{}
	}
	*wp.corr = correctionHistories{}
	for _, s := range wp.stack {
		*s = *newSearchStack()
	}
}

// Play runs the lazy-SMP search on pos and returns the main worker's
// principal variation. Non-main workers run the same iterative deepening
// on the same root, from depth 1 like the main worker; their starting
// depths are not varied, and their own result is discarded.
func (wp *WorkerPool) Play(ctx context.Context, pos *Position, tc *TimeControl) []Move {
	g, _ := errgroup.WithContext(ctx)

	var mainPV []Move
	for i := 0; i < wp.threads; i++ {
		i := i
		workerPos := clonePosition(pos)
		eng := NewEngine(workerPos, wp.Log, wp.Options, wp.tt, wp.pv, wp.stack[i], wp.corr)
		if i > 0 {
			eng.Log = &NulLogger{}
		}

		g.Go(func() error {
			pv := eng.Play(tc)
			if i == 0 {
				mainPV = pv
				wp.lastNodes = eng.Stats.Nodes
			}
			return nil
		})
	}

	_ = g.Wait()
	tc.Stop()
	return mainPV
}

// LastNodes returns the main worker's node count from the most recent
// Play call, used for bench/info reporting.
func (wp *WorkerPool) LastNodes() uint64 { return wp.lastNodes }

// clonePosition deep-copies pos so each worker mutates its own board
// state; only the state-frame stack is copied since the worker starts
// its own search fresh from the root.
func clonePosition(pos *Position) *Position {
	clone := *pos
	clone.states = append([]state(nil), pos.states...)
	clone.curr = &clone.states[len(clone.states)-1]
	return &clone
}
