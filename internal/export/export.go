package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/san-kum/blastsim/internal/analysis"
	"github.com/san-kum/blastsim/internal/sim"
)

// Animation is a finished simulation together with its inputs.
type Animation struct {
	Chamber string
	Force   int
	Frames  []string
}

type exportData struct {
	Chamber string                `json:"chamber"`
	Force   int                   `json:"force"`
	Steps   int                   `json:"steps"`
	Frames  []string              `json:"frames"`
	Stats   []analysis.FrameStats `json:"stats"`
	Summary analysis.Summary      `json:"summary"`
}

type writerFunc func(io.Writer, Animation) error

var formats = map[string]writerFunc{
	"text": Text,
	"json": JSON,
	"csv":  CSV,
	"svg":  SVG,
}

// Formats returns the names accepted by Write.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Write(w io.Writer, format string, a Animation) error {
	fn, ok := formats[format]
	if !ok {
		return fmt.Errorf("unknown format: %s (available: %v)", format, Formats())
	}
	return fn(w, a)
}

// Text writes one frame per line.
func Text(w io.Writer, a Animation) error {
	for _, f := range a.Frames {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}

func JSON(w io.Writer, a Animation) error {
	data := exportData{
		Chamber: a.Chamber,
		Force:   a.Force,
		Steps:   len(a.Frames) - 1,
		Frames:  a.Frames,
		Stats:   analysis.Frames(a.Frames),
		Summary: analysis.Summarize(a.Frames),
	}
	if data.Steps < 0 {
		data.Steps = 0
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func CSV(w io.Writer, a Animation) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"step", "frame", "left", "right", "overlap"}); err != nil {
		return err
	}
	for _, st := range analysis.Frames(a.Frames) {
		row := []string{
			strconv.Itoa(st.Step),
			a.Frames[st.Step],
			strconv.Itoa(st.Left),
			strconv.Itoa(st.Right),
			strconv.Itoa(st.Overlap),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// cellColors maps frame symbols to SVG fill colors.
var cellColors = map[byte]string{
	sim.Bomb:    "#ffff00",
	sim.Left:    "#00ffff",
	sim.Right:   "#ff00ff",
	sim.Overlap: "#ffffff",
}
