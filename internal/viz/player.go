package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
)

const (
	canvasWidth  = 40
	canvasHeight = 10
	speedFactor  = 1.5
)

// tickMsg is an autoplay tick scheduled under a Player epoch. Ticks for
// another Player are dropped, since epochs restart with every Player.
type tickMsg struct {
	player *playback.Player
	epoch  uint64
}

// PlayerModel is the interactive replay screen for one sequence.
type PlayerModel struct {
	player   *playback.Player
	title    string
	keys     keyMap
	help     help.Model
	progress progress.Model
	canvas   *Canvas
	series   []float64
	width    int
	stats    bool
	autoplay bool
	quitting bool
}

// NewPlayerModel loads seq into a fresh Player. With autoplay set, playback
// starts as soon as the program does.
func NewPlayerModel(seq *step.Sequence, title string, speed time.Duration, autoplay bool) PlayerModel {
	p := playback.New(playback.WithSpeed(speed))
	p.Load(seq)
	if title == "" {
		title = seq.Algorithm()
	}
	return PlayerModel{
		player:   p,
		title:    title,
		keys:     playerKeys,
		help:     help.New(),
		progress: progress.New(progress.WithSolidFill(string(CurrentTheme.Primary)), progress.WithoutPercentage()),
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		series:   metrics.Series(seq, metrics.CounterPickers["comparisons"]),
		width:    80,
		autoplay: autoplay,
	}
}

// Player exposes the underlying transport, mainly for tests.
func (m PlayerModel) Player() *playback.Player { return m.player }

func (m PlayerModel) Init() tea.Cmd {
	if !m.autoplay {
		return nil
	}
	m.player.Play()
	return m.schedule()
}

// schedule arms one tick for the current epoch.
func (m PlayerModel) schedule() tea.Cmd {
	p, epoch := m.player, m.player.Epoch()
	return tea.Tick(p.Speed(), func(time.Time) tea.Msg {
		return tickMsg{player: p, epoch: epoch}
	})
}

func (m PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.player == m.player && m.player.Tick(msg.epoch) && m.player.IsPlaying() {
			return m, m.schedule()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = max(msg.Width-20, 10)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey applies a transport key. A new tick is armed only when the key
// started a new epoch while playing, so at most one tick is ever live.
func (m PlayerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.player.Epoch()
	p := m.player

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Play):
		p.Toggle()
	case key.Matches(msg, m.keys.Forward):
		p.StepForward()
	case key.Matches(msg, m.keys.Back):
		p.StepBackward()
	case key.Matches(msg, m.keys.Reset):
		p.Reset()
	case key.Matches(msg, m.keys.End):
		p.GoToStep(p.Len() - 1)
	case key.Matches(msg, m.keys.Faster):
		p.SetSpeed(time.Duration(float64(p.Speed()) / speedFactor))
	case key.Matches(msg, m.keys.Slower):
		p.SetSpeed(time.Duration(float64(p.Speed()) * speedFactor))
	case key.Matches(msg, m.keys.Stats):
		m.stats = !m.stats
	case key.Matches(msg, m.keys.Theme):
		NextTheme()
		m.progress = progress.New(progress.WithSolidFill(string(CurrentTheme.Primary)), progress.WithoutPercentage())
		m.progress.Width = max(m.width-20, 10)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	if p.IsPlaying() && p.Epoch() != before {
		return m, m.schedule()
	}
	return m, nil
}

func (m PlayerModel) View() string {
	if m.quitting {
		return ""
	}
	f := m.player.Frame()

	var b strings.Builder
	b.WriteString(current.title.Render(strings.ToUpper(m.title)) + "  " + stateBadge(f.State) + "\n")
	b.WriteString(current.subtitle.Render(fmt.Sprintf("step %d/%d  ·  %s/step  ·  theme %s",
		min(f.Cursor+1, f.Len), f.Len, f.Speed, CurrentTheme.Name)) + "\n")
	b.WriteString(m.progress.ViewAs(f.Progress) + "\n\n")

	PlotStep(m.canvas, f.Step)
	left := current.panel.Render(m.canvas.String())
	right := current.panel.Render(Render(f.Step, max(m.width-canvasWidth-10, 30)))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n")

	if m.stats {
		b.WriteString(m.statsView(f.Cursor) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

// statsView charts comparisons up to the cursor.
func (m PlayerModel) statsView(cursor int) string {
	upto := m.series[:min(cursor+1, len(m.series))]
	if len(upto) < 2 {
		return current.muted.Render("comparisons: not enough steps to chart")
	}
	chart := asciigraph.Plot(upto,
		asciigraph.Height(5),
		asciigraph.Width(min(len(upto), 60)),
		asciigraph.Caption("comparisons"))
	return current.pending.Render(chart)
}

func stateBadge(s playback.State) string {
	switch s {
	case playback.Playing:
		return current.playing.Render("▶ PLAYING")
	case playback.Paused:
		return current.paused.Render("⏸ PAUSED")
	}
	return current.muted.Render("EMPTY")
}
