package engine

import "testing"

func TestUCIToMoveAndBack(t *testing.T) {
	pos, err := PositionFromFEN(fenKiwipete)
	if err != nil {
		t.Fatal(err)
	}

	for _, uci := range []string{"f3f5", "e2b5", "a1b1", "e1g1"} {
		m, err := pos.UCIToMove(uci)
		if err != nil {
			t.Fatalf("UCIToMove(%q): %v", uci, err)
		}
		if got := MoveToUCI(m); got != uci {
			t.Errorf("expected %q to round-trip, got %q", uci, got)
		}
	}
}

func TestUCIToMoveRejectsIllegalMove(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := pos.UCIToMove("e2e5"); err == nil {
		t.Fatal("expected an error for an illegal move")
	}
}

func TestUCIToMoveDisambiguatesPromotion(t *testing.T) {
	pos, err := PositionFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	for _, uci := range []string{"a7a8n", "a7a8b", "a7a8r", "a7a8q"} {
		m, err := pos.UCIToMove(uci)
		if err != nil {
			t.Fatalf("UCIToMove(%q): %v", uci, err)
		}
		if got := MoveToUCI(m); got != uci {
			t.Errorf("expected %q, got %q", uci, got)
		}
	}
}

func TestMoveStringIsNullMoveForNullMove(t *testing.T) {
	if got := NullMove.String(); got != "0000" {
		t.Errorf("expected null move to format as 0000, got %q", got)
	}
}
