package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/blastsim/internal/analysis"
)

const progressWidth = 40

var (
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Player steps through a finished animation.
type Player struct {
	title   string
	frames  []string
	stats   []analysis.FrameStats
	summary analysis.Summary
	series  []float64
	pos     int
	playing bool
	loop    bool
	fps     int
	theme   int
}

// NewPlayer builds a player for frames, starting paused on the first frame
// when autoplay is false.
func NewPlayer(title string, frames []string, fps int, theme string, autoplay bool) Player {
	if fps <= 0 {
		fps = 1
	}
	stats := analysis.Frames(frames)
	return Player{
		title:   title,
		frames:  frames,
		stats:   stats,
		summary: analysis.Summarize(frames),
		series:  analysis.Series(stats, analysis.FrameStats.Shrapnel),
		playing: autoplay,
		fps:     fps,
		theme:   themeIndex(theme),
	}
}

func (m Player) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Player) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances playback.
func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			if !m.playing && m.atEnd() {
				m.pos = 0
			}
			m.playing = !m.playing
		case "n", "right":
			m.playing = false
			m.seek(1)
		case "p", "left":
			m.playing = false
			m.seek(-1)
		case "r":
			m.pos = 0
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		case "l":
			m.loop = !m.loop
		}
	case TickMsg:
		if m.playing {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Player) advance() {
	if !m.atEnd() {
		m.pos++
		return
	}
	if m.loop {
		m.pos = 0
		return
	}
	m.playing = false
}

func (m *Player) seek(dir int) {
	m.pos += dir
	if m.pos < 0 {
		m.pos = 0
	}
	if last := len(m.frames) - 1; m.pos > last {
		m.pos = last
	}
}

func (m Player) atEnd() bool { return m.pos >= len(m.frames)-1 }

// Frame returns the index and contents of the frame being shown.
func (m Player) Frame() (int, string) {
	if len(m.frames) == 0 {
		return 0, ""
	}
	return m.pos, m.frames[m.pos]
}

func (m Player) Playing() bool { return m.playing }
func (m Player) Theme() Theme  { return Themes[m.theme] }

// View renders the chamber, playback status and frame statistics.
func (m Player) View() string {
	theme := m.Theme()
	idx, frame := m.Frame()

	var s strings.Builder
	s.WriteString(headerStyle.Foreground(theme.Title).Render(strings.ToUpper(m.title)) + "\n")

	status := StatusPaused.Render("PAUSED")
	if m.playing {
		status = StatusRunning.Render("PLAYING")
	}
	if m.loop {
		status += Subtle.Render(" (loop)")
	}
	s.WriteString(status + "\n\n")

	chamber := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(Colorize(frame, theme))
	s.WriteString(chamber + "\n")

	progress := 1.0
	if len(m.frames) > 1 {
		progress = float64(idx) / float64(len(m.frames)-1)
	}
	s.WriteString(fmt.Sprintf("%s %d/%d\n\n", ProgressBar(progress, progressWidth), idx, m.summary.Steps))

	if idx < len(m.stats) {
		st := m.stats[idx]
		s.WriteString(MetricLabel.Render("left") + MetricValue.Render(fmt.Sprint(st.Left)) + "\n")
		s.WriteString(MetricLabel.Render("right") + MetricValue.Render(fmt.Sprint(st.Right)) + "\n")
		s.WriteString(MetricLabel.Render("overlap") + MetricValue.Render(fmt.Sprint(st.Overlap)) + "\n")
	}
	s.WriteString(MetricLabel.Render("shrapnel") + SparklineChart(m.series, progressWidth) + "\n")
	s.WriteString(MetricLabel.Render("theme") + Subtle.Render(theme.Name) + "\n")

	s.WriteString(helpStyle.Render(KeyHint.Render("space play/pause • n/p step • r restart • t theme • l loop • q quit")))
	return s.String()
}
