// options.go declares the UCI `setoption` surface: the option name, type,
// range and default that the front end reports in response to `uci`, and
// that `setoption` calls back into.

package engine

// OptionType mirrors the value kinds the UCI protocol's `option` line
// supports.
type OptionType int

const (
	OptionSpin OptionType = iota
	OptionCheck
	OptionString
)

// OptionSpec describes one declared UCI option.
type OptionSpec struct {
	Name    string
	Type    OptionType
	Default int
	Min     int
	Max     int
}

// StandardOptions is the always-present option surface: transposition
// table size, worker thread count, scheduling overhead compensation, and
// pondering support (accepted but not acted on, per spec.md's Non-goals).
var StandardOptions = []OptionSpec{
	{Name: "Hash", Type: OptionSpin, Default: DefaultHashTableSizeMB, Min: 1, Max: 65536},
	{Name: "Threads", Type: OptionSpin, Default: 1, Min: 1, Max: 256},
	{Name: "Move Overhead", Type: OptionSpin, Default: 10, Min: 0, Max: 5000},
	{Name: "Ponder", Type: OptionCheck, Default: 0},
}

func clampOption(spec OptionSpec, v int) int {
	if v < spec.Min {
		return spec.Min
	}
	if v > spec.Max {
		return spec.Max
	}
	return v
}

// ApplyOption clamps value against spec's declared range, returning the
// value to actually use. Unknown option names are the caller's concern:
// this only validates a value against a known spec.
func ApplyOption(spec OptionSpec, value int) int {
	return clampOption(spec, value)
}
