package engine

import "testing"

func mustMove(t *testing.T, pos *Position, uci string) Move {
	t.Helper()
	m, err := pos.UCIToMove(uci)
	if err != nil {
		t.Fatalf("UCIToMove(%q): %v", uci, err)
	}
	return m
}

func TestDoMoveUndoMoveRoundTrip(t *testing.T) {
	pos, err := PositionFromFEN(fenKiwipete)
	if err != nil {
		t.Fatal(err)
	}
	before := pos.String()

	for _, uci := range []string{"f3f5", "h3g2", "a1b1", "g2h1n"} {
		m := mustMove(t, pos, uci)
		pos.DoMove(m)
	}
	for i := 0; i < 4; i++ {
		pos.UndoMove()
	}

	if after := pos.String(); after != before {
		t.Fatalf("round trip changed position:\nbefore %s\nafter  %s", before, after)
	}
}

func TestCastleMovesPieces(t *testing.T) {
	pos, err := PositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	m := mustMove(t, pos, "e1c1")
	pos.DoMove(m)
	if pos.Get(SquareA1) != NoPiece || pos.Get(SquareC1) != WhiteKing || pos.Get(SquareD1) != WhiteRook {
		t.Fatalf("queenside castle didn't move rook and king correctly")
	}
	pos.UndoMove()
	if pos.Get(SquareA1) != WhiteRook || pos.Get(SquareE1) != WhiteKing {
		t.Fatalf("undo didn't restore pre-castle position")
	}
}

func TestCastleRightsLostOnRookMove(t *testing.T) {
	pos, err := PositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	pos.DoMove(mustMove(t, pos, "a1a2"))
	pos.DoMove(mustMove(t, pos, "a8a7"))
	if pos.CastlingAbility()&WhiteOOO != 0 {
		t.Fatalf("moving the a1 rook should drop white's queenside rights")
	}

	var buf [64]Move
	for _, m := range pos.GenerateMoves(All, buf[:0]) {
		if m.Type() == QueenCastle {
			t.Fatalf("no queenside castle should remain after losing its rights, got %v", m)
		}
	}
}

func TestCastleBlockedWhenInCheck(t *testing.T) {
	pos, err := PositionFromFEN(fenKiwipete)
	if err != nil {
		t.Fatal(err)
	}

	pos.DoMove(mustMove(t, pos, "f3f5"))
	pos.DoMove(mustMove(t, pos, "d7d6"))
	pos.DoMove(mustMove(t, pos, "e2b5"))

	var buf [64]Move
	for _, m := range pos.GenerateMoves(All, buf[:0]) {
		if m.Type() == QueenCastle && m.From() == SquareE8 {
			t.Fatalf("black shouldn't be able to castle queenside while Bb5 gives check")
		}
	}
}

func TestEnPassantCaptureAndUndo(t *testing.T) {
	pos, err := PositionFromFEN("4k3/8/8/1pP5/8/8/8/4K3 w - b6 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if pos.EnpassantSquare() != SquareB6 {
		t.Fatalf("expected en passant square b6, got %v", pos.EnpassantSquare())
	}

	m := mustMove(t, pos, "c5b6")
	if m.Type() != EnPassant {
		t.Fatalf("expected EnPassant move type, got %v", m.Type())
	}
	if m.CaptureSquare() != SquareB5 {
		t.Fatalf("expected capture square b5, got %v", m.CaptureSquare())
	}

	pos.DoMove(m)
	if pos.Get(SquareB5) != NoPiece {
		t.Fatalf("captured pawn should be removed")
	}
	if pos.Get(SquareB6) != WhitePawn {
		t.Fatalf("capturing pawn should land on b6")
	}

	pos.UndoMove()
	if pos.Get(SquareB5) != BlackPawn || pos.Get(SquareC5) != WhitePawn {
		t.Fatalf("undo didn't restore the captured pawn")
	}
}

func TestPromotionGeneratesAllFourFigures(t *testing.T) {
	pos, err := PositionFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	var buf [16]Move
	moves := pos.GenerateMoves(All, buf[:0])
	seen := map[Figure]bool{}
	for _, m := range moves {
		if m.From() == SquareA7 {
			if !m.IsPromotion() {
				t.Fatalf("pawn push to the back rank must be tagged as a promotion")
			}
			seen[m.PromotionFigure()] = true
		}
	}
	for _, f := range []Figure{Knight, Bishop, Rook, Queen} {
		if !seen[f] {
			t.Errorf("missing promotion to %v", f)
		}
	}
}

func TestPromotionCaptureTagsCaptureAndPromotion(t *testing.T) {
	pos, err := PositionFromFEN("1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	m := mustMove(t, pos, "a7b8q")
	if !m.IsCapture() || !m.IsPromotion() {
		t.Fatalf("a7b8q should be tagged as both a capture and a promotion, got %v", m.Type())
	}
	if m.PromotionFigure() != Queen {
		t.Fatalf("expected promotion figure queen, got %v", m.PromotionFigure())
	}
}

func TestIsThreeFoldRepetition(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}

	shuffle := []string{"b1c3", "b8c6", "c3b1", "c6b8"}
	play := func() {
		for _, uci := range shuffle {
			pos.DoMove(mustMove(t, pos, uci))
		}
	}

	play()
	if pos.IsThreeFoldRepetition() {
		t.Errorf("position has only repeated twice so far")
	}
	play()
	if !pos.IsThreeFoldRepetition() {
		t.Errorf("position should now have occurred three times")
	}
}

func TestNullMoveRestoresStateOnUndo(t *testing.T) {
	pos, err := PositionFromFEN(fenKiwipete)
	if err != nil {
		t.Fatal(err)
	}
	before := pos.String()
	rights := pos.CastlingAbility()

	pos.DoNullMove()
	if pos.SideToMove != Black {
		t.Fatalf("null move should flip the side to move")
	}
	if pos.EnpassantSquare() != SquareA1 {
		t.Fatalf("null move should clear the en passant square")
	}
	pos.UndoNullMove()

	if pos.String() != before {
		t.Fatalf("undoing a null move should restore the position exactly")
	}
	if pos.CastlingAbility() != rights {
		t.Fatalf("undoing a null move should restore castling rights")
	}
}

func TestGenerateMovesKindPartitionsAllMoves(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}

		var quiet, violent, all [256]Move
		q := pos.GenerateMoves(Quiet, quiet[:0])
		v := pos.GenerateMoves(Violent, violent[:0])
		a := pos.GenerateMoves(All, all[:0])

		if len(q)+len(v) != len(a) {
			t.Errorf("%s: quiet (%d) + violent (%d) != all (%d)", fen, len(q), len(v), len(a))
		}
		for _, m := range v {
			if !m.IsCapture() && !m.IsPromotion() {
				t.Errorf("%s: violent move %v is neither a capture nor a promotion", fen, m)
			}
		}
		for _, m := range q {
			if m.IsCapture() {
				t.Errorf("%s: quiet move %v is a capture", fen, m)
			}
		}
	}
}

func TestGenerateMovesStayOnSideToMove(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}

		var buf [256]Move
		for _, m := range pos.GenerateMoves(All, buf[:0]) {
			if pos.Get(m.From()).Color() != pos.SideToMove {
				t.Errorf("%s: move %v doesn't move a piece of the side to move", fen, m)
			}
		}
	}
}
