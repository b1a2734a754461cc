package mates

import (
	"context"
	"testing"

	"github.com/sroelants/simbelmyne/engine"
	"github.com/sroelants/simbelmyne/notation"
)

// mateIn1 is a small, hand-verified mate battery, inlined rather than read
// from an EPD testdata file (the teacher's tree referenced testdata/*.epd
// files that were never present in the retrieved pack; see DESIGN.md).
var mateIn1 = []string{
	// Back-rank mate: Ra1-a8#, king boxed in by its own pawns.
	"6k1/5ppp/8/8/8/8/8/R6K w - - bm Ra8;",
	// Queen delivers mate on the back rank (from d8 or e8), king has no
	// flight square.
	"6k1/4Qppp/8/8/8/8/8/7K w - - bm Qd8 Qe8;",
}

func helper(t *testing.T, epds []string, depth, allowedFailures int) {
	failed, total := 0, 0
	for _, line := range epds {
		epd, err := notation.ParseEPD(line)
		if err != nil {
			t.Fatal(err)
		}
		if len(epd.BestMove) == 0 {
			continue
		}

		pool := engine.NewWorkerPool(8, 1)
		tc := engine.NewFixedDepthTimeControl(depth)
		tc.Start()
		pv := pool.Play(context.Background(), epd.Position, tc)

		solved := false
		for _, want := range epd.BestMove {
			if len(pv) > 0 && pv[0] == want {
				solved = true
				break
			}
		}

		total++
		if !solved {
			failed++
			t.Logf("failed %s: expected one of %v, got pv %v", epd.Position, epd.BestMove, pv)
		}
	}

	if failed > allowedFailures {
		t.Errorf("failed %d out of %d (allowed %d)", failed, total, allowedFailures)
	}
}

func TestMateIn1(t *testing.T) {
	helper(t, mateIn1, 3, 0)
}
