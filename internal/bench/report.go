package bench

// Report summarizes one bench run for the optional on-disk report, keyed
// the way a human comparing two commits would read it: total throughput
// plus a per-game breakdown.
type Report struct {
	Depth int          `toml:"depth"`
	Nodes uint64       `toml:"nodes"`
	NPS   float64      `toml:"nps"`
	Games []GameReport `toml:"game"`
}

// GameReport is one fixture's contribution to a Report.
type GameReport struct {
	Description string `toml:"description"`
	Nodes       uint64 `toml:"nodes"`
}
