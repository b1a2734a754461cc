// +build coach

package engine

import "sync"

// Score is identical in representation to the !coach build's Score: a
// packed midgame/endgame pair in a single int32. The coach build adds a
// name registry alongside it so an external SPSA/Texel harness can list
// and rewrite tunable terms through the `setoption` surface without the
// hot-path representation changing shape between builds.
type Score int32

func S(mg, eg int16) Score {
	return Score(uint32(uint16(mg)) | uint32(uint16(eg))<<16)
}

func (s Score) MG() int32 { return int32(int16(uint16(s))) }
func (s Score) EG() int32 { return int32(int16(uint16(uint32(s) >> 16))) }

func (s Score) Feed(phase int32) int32 {
	return (s.MG()*phase + s.EG()*(24-phase)) / 24
}

func Phase(pos *Position) int32 {
	p := 4*pos.ByFigure[Queen].Count() + 2*pos.ByFigure[Rook].Count() +
		pos.ByFigure[Knight].Count() + pos.ByFigure[Bishop].Count()
	if p > 24 {
		p = 24
	}
	return int32(p)
}

// TunableTerm is one named entry in the SPSA-tunable weight registry.
type TunableTerm struct {
	Name  string
	Value *Score
}

var (
	tunableLock sync.Mutex
	tunables    []TunableTerm
)

// Tunable registers name -> *slot so a coach build can enumerate and
// mutate evaluation weights at runtime (via UCI setoption) without eval.go
// needing to know tuning is happening.
func Tunable(name string, slot *Score) {
	tunableLock.Lock()
	defer tunableLock.Unlock()
	tunables = append(tunables, TunableTerm{Name: name, Value: slot})
}

// Tunables returns the registered tunable terms, in registration order.
func Tunables() []TunableTerm {
	tunableLock.Lock()
	defer tunableLock.Unlock()
	return append([]TunableTerm(nil), tunables...)
}

var pawnsCache [ColorArraySize]pawnHashTable

func evaluatePawnsCached(pos *Position, us Color) Score {
	ours := pos.ByPiece(us, Pawn)
	theirs := pos.ByPiece(us.Opposite(), Pawn)
	kings := pos.ByFigure[King]
	if s, ok := pawnsCache[us].get(ours, theirs, kings); ok {
		return s
	}
	s := evaluatePawns(pos, us)
	pawnsCache[us].put(ours, theirs, kings, s)
	return s
}
