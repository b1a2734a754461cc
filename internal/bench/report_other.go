// +build !coach

// report_other.go is the default build's stand-in for report_coach.go:
// outside a -tags coach build there is no TOML report writer linked in.

package bench

import "errors"

// WriteReport is unavailable outside a -tags coach build.
func WriteReport(path string, report Report) error {
	return errors.New("bench report requires a -tags coach build")
}
