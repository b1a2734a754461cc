package engine

import "testing"

func TestPositionFromFENAndBack(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Errorf("%s failed with %v", fen, err)
			continue
		}
		if got := pos.String(); got != fen {
			t.Errorf("expected %s, got %s", fen, got)
		}
	}
}

func BenchmarkPositionFromFEN(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, fen := range testFENs {
			PositionFromFEN(fen)
		}
	}
}
