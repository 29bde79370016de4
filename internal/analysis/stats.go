package analysis

import "github.com/san-kum/blastsim/internal/sim"

// FrameStats counts the symbols of one frame. Overlap cells hold one piece of
// each direction and are also included in Left and Right.
type FrameStats struct {
	Step    int `json:"step"`
	Bombs   int `json:"bombs"`
	Left    int `json:"left"`
	Right   int `json:"right"`
	Overlap int `json:"overlap"`
}

// Shrapnel returns the number of pieces in flight.
func (f FrameStats) Shrapnel() int { return f.Left + f.Right }

func Frame(step int, frame string) FrameStats {
	st := FrameStats{Step: step}
	for i := 0; i < len(frame); i++ {
		switch frame[i] {
		case sim.Bomb:
			st.Bombs++
		case sim.Left:
			st.Left++
		case sim.Right:
			st.Right++
		case sim.Overlap:
			st.Overlap++
			st.Left++
			st.Right++
		}
	}
	return st
}

func Frames(frames []string) []FrameStats {
	out := make([]FrameStats, len(frames))
	for i, f := range frames {
		out[i] = Frame(i, f)
	}
	return out
}

type Summary struct {
	Chamber      int `json:"chamber"`
	Frames       int `json:"frames"`
	Steps        int `json:"steps"`
	Bombs        int `json:"bombs"`
	PeakShrapnel int `json:"peak_shrapnel"`
	PeakOverlap  int `json:"peak_overlap"`
	// FirstExit is the first step at which a piece has left the chamber, or 0
	// when the animation has no steps.
	FirstExit    int `json:"first_exit"`
}

func Summarize(frames []string) Summary {
	s := Summary{Frames: len(frames)}
	if len(frames) == 0 {
		return s
	}
	s.Chamber = len(frames[0])
	s.Steps = len(frames) - 1

	stats := Frames(frames)
	s.Bombs = stats[0].Bombs
	s.PeakShrapnel = 2 * s.Bombs
	for _, st := range stats[1:] {
		if st.Shrapnel() > s.PeakShrapnel {
			s.PeakShrapnel = st.Shrapnel()
		}
		if st.Overlap > s.PeakOverlap {
			s.PeakOverlap = st.Overlap
		}
	}

	// Same-direction pieces move in lockstep, so the population only shrinks
	// when pieces leave the chamber.
	prev := 2 * s.Bombs
	for _, st := range stats[1:] {
		if st.Shrapnel() < prev {
			s.FirstExit = st.Step
			break
		}
		prev = st.Shrapnel()
	}
	return s
}

// Series extracts one value per frame, suitable for plotting.
func Series(stats []FrameStats, fn func(FrameStats) int) []float64 {
	out := make([]float64, len(stats))
	for i, st := range stats {
		out[i] = float64(fn(st))
	}
	return out
}
