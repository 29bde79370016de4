package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/san-kum/blastsim/internal/sim"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer redraws the chamber after every simulation step using plain
// ANSI escapes, pacing output to the frame rate.
type LiveRenderer struct {
	out       io.Writer
	frameRate int
	sleep     func(time.Duration)
	frames    int
}

func NewLiveRenderer(out io.Writer, frameRate int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 1
	}
	return &LiveRenderer{out: out, frameRate: frameRate, sleep: time.Sleep}
}

// Start draws the initial chamber before any step is taken.
func (r *LiveRenderer) Start(chamber string) {
	fmt.Fprint(r.out, hideCursor)
	r.draw(0, chamber)
}

func (r *LiveRenderer) OnStep(step int, s sim.Shrapnel, frame string) {
	r.sleep(time.Second / time.Duration(r.frameRate))
	r.draw(step, frame)
}

// Stop restores the cursor.
func (r *LiveRenderer) Stop() {
	fmt.Fprint(r.out, showCursor)
}

// Frames returns how many frames have been drawn.
func (r *LiveRenderer) Frames() int { return r.frames }

func (r *LiveRenderer) draw(step int, frame string) {
	fmt.Fprint(r.out, clearScreen)
	fmt.Fprintf(r.out, "step %d\n\n  %s\n", step, frame)
	r.frames++
}
