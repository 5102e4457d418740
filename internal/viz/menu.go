package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/config"
)

const (
	stateMenu = iota
	statePreset
	statePlay
)

const defaultPreset = "default"

// MenuModel lets the user pick an algorithm and a preset, then replays it.
type MenuModel struct {
	registry *catalog.Registry
	entries  []*catalog.Entry
	speed    time.Duration

	state    int
	cursor   int
	selected *catalog.Entry
	presets  []string
	pcursor  int
	err      error

	player PlayerModel
	width  int
}

// NewMenu lists every algorithm in reg.
func NewMenu(reg *catalog.Registry, speed time.Duration) MenuModel {
	return MenuModel{
		registry: reg,
		entries:  reg.Entries(),
		speed:    speed,
		width:    80,
	}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.state == statePlay {
			next, cmd := m.player.Update(msg)
			m.player = next.(PlayerModel)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		switch m.state {
		case stateMenu:
			return m.menuKey(msg)
		case statePreset:
			return m.presetKey(msg)
		case statePlay:
			return m.playKey(msg)
		}
	case tickMsg:
		if m.state == statePlay {
			next, cmd := m.player.Update(msg)
			m.player = next.(PlayerModel)
			return m, cmd
		}
	}
	return m, nil
}

func (m MenuModel) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.entries) == 0 {
			return m, nil
		}
		m.selected = m.entries[m.cursor]
		m.presets = append([]string{defaultPreset}, config.ListPresets(m.selected.Name)...)
		m.state, m.pcursor, m.err = statePreset, 0, nil
	case "t":
		NextTheme()
	}
	return m, nil
}

func (m MenuModel) presetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.pcursor > 0 {
			m.pcursor--
		}
	case "down", "j":
		if m.pcursor < len(m.presets)-1 {
			m.pcursor++
		}
	case "enter", " ":
		return m.start()
	}
	return m, nil
}

func (m MenuModel) playKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.player.player.Pause()
		m.state = statePreset
		return m, nil
	}
	next, cmd := m.player.Update(msg)
	m.player = next.(PlayerModel)
	return m, cmd
}

func (m MenuModel) start() (tea.Model, tea.Cmd) {
	var params map[string]any
	if name := m.presets[m.pcursor]; name != defaultPreset {
		p, err := config.GetPreset(m.selected.Name, name)
		if err != nil {
			m.err = err
			return m, nil
		}
		params = p.Params
	}
	seq, err := m.registry.Generate(m.selected.Name, params)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.player = NewPlayerModel(seq, m.selected.Title, m.speed, true)
	m.player.width = m.width
	m.state, m.err = statePlay, nil
	return m, m.player.Init()
}

func (m MenuModel) View() string {
	switch m.state {
	case statePreset:
		return m.viewPresets()
	case statePlay:
		return m.player.View()
	}
	return m.viewMenu()
}

func (m MenuModel) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + current.title.Render("ALGOVIZ") + "\n    " +
		current.subtitle.Render("step-by-step algorithm replay") + "\n    " +
		current.muted.Render("─────────────────────────────") + "\n")

	family := ""
	for i, e := range m.entries {
		if string(e.Family) != family {
			family = string(e.Family)
			b.WriteString("\n    " + current.label.Render(strings.ToUpper(family)) + "\n")
		}
		name := fmt.Sprintf("%-16s", e.Name)
		if i == m.cursor {
			b.WriteString("    " + current.focus.Render("▸ ") + current.value.Render(name) + " " + current.pending.Render(e.Title) + "\n")
		} else {
			b.WriteString("      " + current.muted.Render(name) + " " + current.muted.Render(e.Title) + "\n")
		}
	}
	b.WriteString("\n    " + hints("j/k", "navigate", "enter", "select", "t", "theme", "q", "quit") + "\n")
	return b.String()
}

func (m MenuModel) viewPresets() string {
	var b strings.Builder
	b.WriteString("\n\n    " + current.title.Render(strings.ToUpper(m.selected.Name)) + "\n    " +
		current.subtitle.Render(m.selected.Title) + "\n\n")
	for i, name := range m.presets {
		desc := "built-in defaults"
		if p, err := config.GetPreset(m.selected.Name, name); err == nil {
			desc = p.Description
		}
		if i == m.pcursor {
			b.WriteString("    " + current.focus.Render("▸ ") + current.value.Render(fmt.Sprintf("%-12s", name)) + " " + current.pending.Render(desc) + "\n")
		} else {
			b.WriteString("      " + current.muted.Render(fmt.Sprintf("%-12s", name)) + " " + current.muted.Render(desc) + "\n")
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + current.fail.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + hints("j/k", "select", "enter", "play", "esc", "back") + "\n")
	return b.String()
}

func hints(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, current.focus.Render(pairs[i])+" "+current.keyHint.Render(pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}

// RunMenu starts the menu app on the alternate screen.
func RunMenu(reg *catalog.Registry, speed time.Duration) error {
	_, err := tea.NewProgram(NewMenu(reg, speed), tea.WithAltScreen()).Run()
	return err
}

// RunPlayer replays seq interactively on the alternate screen.
func RunPlayer(m PlayerModel) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
