// +build !coach

// tunables.go is the default (non-coach) build's stand-in for
// tunables_coach.go: the tunable-weight surface does not exist outside a
// -tags coach build, so there is nothing to print or apply.

package main

func printTunableOptions() {}

func setTunable(name, value string) bool { return false }
