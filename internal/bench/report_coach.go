// +build coach

// report_coach.go wires the optional on-disk bench report, gated behind
// the same -tags coach build used for the SPSA tunable surface since its
// only real consumer is a tuning session comparing runs across commits.

package bench

import (
	"os"

	"github.com/BurntSushi/toml"
)

// WriteReport encodes report as TOML to path.
func WriteReport(path string, report Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(report)
}
