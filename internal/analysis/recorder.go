package analysis

import "github.com/san-kum/blastsim/internal/sim"

// Recorder is a sim.Observer that keeps the live shrapnel counts of every step.
type Recorder struct {
	Left  []int
	Right []int
}

func NewRecorder() *Recorder {
	return &Recorder{Left: make([]int, 0), Right: make([]int, 0)}
}

func (r *Recorder) OnStep(step int, s sim.Shrapnel, frame string) {
	r.Left = append(r.Left, s.Left.Len())
	r.Right = append(r.Right, s.Right.Len())
}

// Total returns the pieces in flight after each step.
func (r *Recorder) Total() []float64 {
	out := make([]float64, len(r.Left))
	for i := range r.Left {
		out[i] = float64(r.Left[i] + r.Right[i])
	}
	return out
}

func (r *Recorder) Reset() {
	r.Left = r.Left[:0]
	r.Right = r.Right[:0]
}
