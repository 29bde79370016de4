package sim

import "sort"

// Chamber and force bounds.
const (
	MinChamber = 1
	MaxChamber = 50
	MinForce   = 1
	MaxForce   = 10
)

// Symbols used in chamber strings and rendered frames.
const (
	Empty   = '.'
	Bomb    = 'B'
	Left    = '<'
	Right   = '>'
	Overlap = 'X'
)

// Positions is an unordered set of chamber indices.
type Positions map[int]struct{}

func NewPositions(ps ...int) Positions {
	s := make(Positions, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

func (s Positions) Add(p int) { s[p] = struct{}{} }
func (s Positions) Len() int  { return len(s) }

func (s Positions) Has(p int) bool {
	_, ok := s[p]
	return ok
}

// Sorted returns the positions in ascending order.
func (s Positions) Sorted() []int {
	out := make([]int, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// Shrapnel holds the two independent populations of moving pieces.
type Shrapnel struct {
	Left  Positions
	Right Positions
}

func (s Shrapnel) Empty() bool { return len(s.Left) == 0 && len(s.Right) == 0 }

// Count returns the number of pieces in flight; an overlapping cell counts twice.
func (s Shrapnel) Count() int { return len(s.Left) + len(s.Right) }

type Config struct {
	Chamber string
	Force   int
}

type Result struct {
	Frames []string
	Steps  int
}

// Final returns the last frame of the animation.
func (r *Result) Final() string {
	if len(r.Frames) == 0 {
		return ""
	}
	return r.Frames[len(r.Frames)-1]
}

type Observer interface {
	OnStep(step int, s Shrapnel, frame string)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(step int, s Shrapnel, frame string)

func (f ObserverFunc) OnStep(step int, s Shrapnel, frame string) { f(step, s, frame) }
