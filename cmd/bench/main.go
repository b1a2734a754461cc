// Command bench runs internal/bench's fixed game suite and prints total
// nodes and nodes per second, the fixed-depth throughput number tracked
// across commits to catch non-functional regressions in the search.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/sroelants/simbelmyne/engine"
	"github.com/sroelants/simbelmyne/internal/bench"
)

var (
	depth  = flag.Int("depth", 5, "depth to search to")
	report = flag.String("report", "", "write a TOML report to this path (requires a -tags coach build)")
)

func main() {
	flag.Parse()
	pool := engine.NewWorkerPool(16, 1)

	if *report == "" {
		nodes, nps := bench.Run(pool, *depth)
		fmt.Printf("nodes %d\n", nodes)
		fmt.Printf("  nps %.0f\n", nps)
		return
	}

	r, nps := bench.RunReport(pool, *depth)
	fmt.Printf("nodes %d\n", r.Nodes)
	fmt.Printf("  nps %.0f\n", nps)
	if err := bench.WriteReport(*report, r); err != nil {
		log.Fatalf("writing report: %v", err)
	}
}
