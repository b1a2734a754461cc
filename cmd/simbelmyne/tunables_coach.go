// +build coach

// tunables_coach.go exposes the SPSA-tunable evaluation weights through
// UCI setoption, present only in -tags coach builds used by an external
// tuner, exactly as engine/score_coach.go gates the registry itself.

package main

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/sroelants/simbelmyne/engine"
)

func printTunableOptions() {
	for _, t := range Tunables() {
		fmt.Printf("option name %s type string default %d,%d\n", t.Name, t.Value.MG(), t.Value.EG())
	}
}

// setTunable applies a "mg,eg" value to a registered tunable term,
// reporting whether name matched one.
func setTunable(name, value string) bool {
	for _, t := range Tunables() {
		if t.Name != name {
			continue
		}
		parts := strings.SplitN(value, ",", 2)
		if len(parts) != 2 {
			return true
		}
		mg, err1 := strconv.Atoi(parts[0])
		eg, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return true
		}
		*t.Value = S(int16(mg), int16(eg))
		return true
	}
	return false
}
