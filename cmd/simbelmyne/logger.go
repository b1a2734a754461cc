// logger.go formats search progress as UCI info lines, buffering a whole
// line before writing it so stdout never interleaves partial lines with
// a concurrent bestmove write.

package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"golang.org/x/time/rate"

	. "github.com/sroelants/simbelmyne/engine"
)

// uciLogger writes info lines to stdout in UCI format and throttles the
// CurrMove progress line so a GUI isn't flooded during fast iterations.
type uciLogger struct {
	start   time.Time
	buf     *bytes.Buffer
	hash    *HashTable
	limiter *rate.Limiter
}

func newUCILogger(hash *HashTable) *uciLogger {
	return &uciLogger{
		buf:     &bytes.Buffer{},
		hash:    hash,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

func (ul *uciLogger) BeginSearch() {
	ul.start = time.Now()
	ul.buf.Reset()
}

func (ul *uciLogger) EndSearch() {
	ul.flush()
}

func (ul *uciLogger) PrintPV(stats Stats, score int32, pv []Move) {
	now := time.Now()
	fmt.Fprintf(ul.buf, "info depth %d seldepth %d ", stats.Depth, stats.SelDepth)

	if score > KnownWinScore {
		fmt.Fprintf(ul.buf, "score mate %d ", (MateScore-score+1)/2)
	} else if score < KnownLossScore {
		fmt.Fprintf(ul.buf, "score mate %d ", (MatedScore-score)/2)
	} else {
		fmt.Fprintf(ul.buf, "score cp %d ", score)
	}

	elapsed := maxDuration(now.Sub(ul.start), time.Microsecond)
	millis := uint64(elapsed / time.Millisecond)
	nps := stats.Nodes * uint64(time.Second) / uint64(elapsed)
	fmt.Fprintf(ul.buf, "nodes %d nps %d time %d hashfull %d ",
		stats.Nodes, nps, millis, ul.hash.Hashfull())

	fmt.Fprint(ul.buf, "pv")
	for _, m := range pv {
		fmt.Fprintf(ul.buf, " %s", MoveToUCI(m))
	}
	fmt.Fprint(ul.buf, "\n")

	ul.flush()
}

// CurrMove reports the move currently being searched at the root, rate
// limited so only one such line is emitted per second.
func (ul *uciLogger) CurrMove(depth int32, move Move, num int) {
	if !ul.limiter.Allow() {
		return
	}
	fmt.Fprintf(ul.buf, "info depth %d currmove %s currmovenumber %d\n", depth, MoveToUCI(move), num)
	ul.flush()
}

func (ul *uciLogger) flush() {
	os.Stdout.Write(ul.buf.Bytes())
	ul.buf.Reset()
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
