package engine

import "testing"

func TestGenerateOrderedPutsHashMoveFirst(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}

		var buf [256]Move
		legal := pos.GenerateMoves(All, buf[:0])
		if len(legal) == 0 {
			continue
		}
		hash := legal[len(legal)/2]

		ss := newSearchStack()
		ordered := ss.GenerateOrdered(pos, 0, hash, nil)
		if len(ordered) == 0 || ordered[0].move != hash {
			t.Errorf("%s: expected hash move %v first, got %v", fen, hash, ordered)
		}
	}
}

func TestGenerateOrderedSortsDescending(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}

		ss := newSearchStack()
		ordered := ss.GenerateOrdered(pos, 0, NullMove, nil)
		for i := 1; i < len(ordered); i++ {
			if ordered[i].score > ordered[i-1].score {
				t.Errorf("%s: moves not sorted best-first at index %d", fen, i)
			}
		}
	}
}

func TestGenerateOrderedViolentOnlyReturnsCapturesAndPromotions(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}

		ss := newSearchStack()
		for _, sm := range ss.GenerateOrderedViolent(pos, 0, nil) {
			if !isViolent(pos, sm.move) {
				t.Errorf("%s: quiet move %v returned by GenerateOrderedViolent", fen, sm.move)
			}
		}
	}
}

func TestOnBetaCutoffRewardsQuietMoveHistory(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}

	m, err := pos.UCIToMove("e2e4")
	if err != nil {
		t.Fatal(err)
	}

	ss := newSearchStack()
	before := ss.history.get(pos, pos.SideToMove, m)
	ss.OnBetaCutoff(pos, 0, m, nil, 4, nil)
	after := ss.history.get(pos, pos.SideToMove, m)

	if after <= before {
		t.Errorf("expected history score to increase after a beta cutoff, got %d -> %d", before, after)
	}
}
