// Command perft cross-checks move generation against the published node
// counts for a handful of well-known test positions.
//
// Examples:
//
//	$ perft --fen startpos --max_depth 6
//	$ perft --fen kiwipete --max_depth 5 --split 1
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/sroelants/simbelmyne/engine"
	"github.com/sroelants/simbelmyne/perft"
)

var (
	fen        = flag.String("fen", "startpos", "position to search, or one of the known position names")
	minDepth   = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth   = flag.Int("max_depth", 5, "maximum depth to search (inclusive)")
	depth      = flag.Int("depth", 0, "if non zero, searches only this depth")
	splitDepth = flag.Int("split", 0, "print the per-root-move breakdown at this depth")
)

var known = map[string]string{
	"startpos": engine.FENStartPos,
	"kiwipete": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"duplain":  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

// published holds the node counts from chessprogramming.org/Perft_Results,
// indexed by FEN then depth.
var published = map[string][]uint64{
	known["startpos"]: {1, 20, 400, 8902, 197281, 4865609, 119060324, 3195901860},
	known["kiwipete"]: {1, 48, 2039, 97862, 4085603, 193690690, 8031647685},
	known["duplain"]:  {1, 14, 191, 2812, 43238, 674624, 11030083, 178633661},
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	if s, ok := known[*fen]; ok {
		*fen = s
	}
	if *depth != 0 {
		*minDepth, *maxDepth = *depth, *depth
	}

	pos, err := engine.PositionFromFEN(*fen)
	if err != nil {
		log.Fatalln("cannot parse --fen:", err)
	}
	fmt.Printf("searching FEN %q\n", *fen)

	expected := published[*fen]
	fmt.Printf("depth        nodes   captures enpassant castles promotions   ok    KNps   elapsed\n")

	for d := *minDepth; d <= *maxDepth; d++ {
		start := time.Now()

		var counts perft.Counts
		if d == *splitDepth {
			var perMove map[string]uint64
			counts, perMove = perft.Split(pos, d)
			printSplit(perMove)
		} else {
			counts = perft.Count(pos, d, perft.NewTable(1<<20))
		}
		elapsed := time.Since(start)

		ok := ""
		if d < len(expected) {
			if expected[d] == counts.Nodes {
				ok = "good"
			} else {
				ok = "BAD"
			}
		}

		fmt.Printf("%6d %12d %10d %9d %8d %10d %5s %7.0f %v\n",
			d, counts.Nodes, counts.Captures, counts.Enpassant, counts.Castles, counts.Promotions,
			ok, float64(counts.Nodes)/elapsed.Seconds()/1e3, elapsed)

		if ok == "BAD" {
			fmt.Printf("%6d %12d expected\n", d, expected[d])
			break
		}
	}
}

func printSplit(perMove map[string]uint64) {
	moves := make([]string, 0, len(perMove))
	for m := range perMove {
		moves = append(moves, m)
	}
	sort.Strings(moves)
	for _, m := range moves {
		fmt.Printf("  %s: %d\n", m, perMove[m])
	}
}
