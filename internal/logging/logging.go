package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/san-kum/blastsim/internal/sim"
)

// ParseLevel maps a level name to a zerolog level. Unknown names are info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(name) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New returns a logger writing to w, in console format unless jsonOut is set.
func New(w io.Writer, level string, jsonOut bool) zerolog.Logger {
	out := w
	if !jsonOut {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// StepLogger is a sim.Observer that emits one debug record per step.
type StepLogger struct {
	log zerolog.Logger
}

func NewStepLogger(log zerolog.Logger) *StepLogger {
	return &StepLogger{log: log}
}

func (l *StepLogger) OnStep(step int, s sim.Shrapnel, frame string) {
	l.log.Debug().
		Int("step", step).
		Ints("left", s.Left.Sorted()).
		Ints("right", s.Right.Sorted()).
		Str("frame", frame).
		Msg("step")
}
