package sim

import "strings"

type Simulator struct {
	observers []Observer
}

func New() *Simulator {
	return &Simulator{observers: make([]Observer, 0)}
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Simulate returns the animation of the given chamber for the given force.
func Simulate(chamber string, force int) ([]string, error) {
	res, err := New().Run(Config{Chamber: chamber, Force: force})
	if err != nil {
		return nil, err
	}
	return res.Frames, nil
}

// Run validates cfg and steps the shrapnel until none is left in the chamber.
// The first frame is the chamber exactly as given; the last is all Empty.
func (s *Simulator) Run(cfg Config) (*Result, error) {
	if err := Validate(cfg.Chamber, cfg.Force); err != nil {
		return nil, err
	}

	n := len(cfg.Chamber)
	result := &Result{
		Frames: make([]string, 0, n+1),
	}
	result.Frames = append(result.Frames, cfg.Chamber)

	state := InitShrapnel(cfg.Chamber)
	for !state.Empty() {
		state = Step(state, cfg.Force, n)
		frame := Render(state, n)
		result.Steps++
		result.Frames = append(result.Frames, frame)

		for _, obs := range s.observers {
			obs.OnStep(result.Steps, state, frame)
		}
	}

	return result, nil
}

// Validate checks chamber size, then force, then symbols, and reports the
// first violation.
func Validate(chamber string, force int) error {
	if n := len(chamber); n < MinChamber || n > MaxChamber {
		return &ChamberSizeError{Length: n}
	}
	if force < MinForce || force > MaxForce {
		return &ForceRangeError{Force: force}
	}
	for i, c := range chamber {
		if c != Empty && c != Bomb {
			return &InvalidSymbolError{Chamber: chamber, Symbol: c, Index: i}
		}
	}
	return nil
}

// InitShrapnel places one left-moving and one right-moving piece on every bomb.
func InitShrapnel(chamber string) Shrapnel {
	s := Shrapnel{Left: NewPositions(), Right: NewPositions()}
	for i := 0; i < len(chamber); i++ {
		if chamber[i] == Bomb {
			s.Left.Add(i)
			s.Right.Add(i)
		}
	}
	return s
}

// Step moves every piece force cells in its direction and drops pieces that
// land outside [0, n-1]. The input sets are not modified.
func Step(s Shrapnel, force, n int) Shrapnel {
	next := Shrapnel{
		Left:  make(Positions, len(s.Left)),
		Right: make(Positions, len(s.Right)),
	}
	for p := range s.Left {
		if q := p - force; q >= 0 && q < n {
			next.Left.Add(q)
		}
	}
	for p := range s.Right {
		if q := p + force; q >= 0 && q < n {
			next.Right.Add(q)
		}
	}
	return next
}

// Render projects the shrapnel sets onto a chamber of length n.
func Render(s Shrapnel, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		left, right := s.Left.Has(i), s.Right.Has(i)
		switch {
		case left && right:
			sb.WriteByte(Overlap)
		case left:
			sb.WriteByte(Left)
		case right:
			sb.WriteByte(Right)
		default:
			sb.WriteByte(Empty)
		}
	}
	return sb.String()
}
