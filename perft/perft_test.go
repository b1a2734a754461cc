package perft

import (
	"testing"

	"github.com/sroelants/simbelmyne/engine"
)

const (
	kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	duplainFEN  = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
)

var startposCounts = []Counts{
	{Nodes: 1},
	{Nodes: 20},
	{Nodes: 400},
	{Nodes: 8902, Captures: 34},
	{Nodes: 197281, Captures: 1576},
	{Nodes: 4865609, Captures: 82719, Enpassant: 258},
}

var kiwipeteCounts = []Counts{
	{Nodes: 1},
	{Nodes: 48, Captures: 8, Castles: 2},
	{Nodes: 2039, Captures: 351, Enpassant: 1, Castles: 91},
	{Nodes: 97862, Captures: 17102, Enpassant: 45, Castles: 3162},
	{Nodes: 4085603, Captures: 757163, Enpassant: 1929, Castles: 128013, Promotions: 15172},
}

var duplainCounts = []Counts{
	{Nodes: 1},
	{Nodes: 14, Captures: 1},
	{Nodes: 191, Captures: 14},
	{Nodes: 2812, Captures: 209, Enpassant: 2},
	{Nodes: 43238, Captures: 3348, Enpassant: 123},
	{Nodes: 674624, Captures: 52051, Enpassant: 1165},
	{Nodes: 11030083, Captures: 940350, Enpassant: 33325, Promotions: 7552},
}

func testHelper(t *testing.T, fen string, expected []Counts) {
	for depth, want := range expected {
		if testing.Short() && want.Nodes > 200000 {
			return
		}
		pos, err := engine.PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("invalid FEN %q: %v", fen, err)
		}
		got := Count(pos, depth, nil)
		if got != want {
			t.Errorf("at depth %d expected %+v, got %+v", depth, want, got)
		}
	}
}

func TestPerftInitial(t *testing.T) {
	testHelper(t, engine.FENStartPos, startposCounts)
}

func TestPerftKiwipete(t *testing.T) {
	testHelper(t, kiwipeteFEN, kiwipeteCounts)
}

func TestPerftDuplain(t *testing.T) {
	testHelper(t, duplainFEN, duplainCounts)
}

func benchHelper(b *testing.B, fen string, depth int) {
	pos, _ := engine.PositionFromFEN(fen)
	for i := 0; i < b.N; i++ {
		Count(pos, depth, nil)
	}
}

func BenchmarkPerftInitial(b *testing.B)  { benchHelper(b, engine.FENStartPos, 4) }
func BenchmarkPerftKiwipete(b *testing.B) { benchHelper(b, kiwipeteFEN, 3) }
func BenchmarkPerftDuplain(b *testing.B)  { benchHelper(b, duplainFEN, 4) }
