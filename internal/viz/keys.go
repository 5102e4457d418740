package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Play    key.Binding
	Forward key.Binding
	Back    key.Binding
	Reset   key.Binding
	End     key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Stats   key.Binding
	Theme   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var playerKeys = keyMap{
	Play: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "play/pause"),
	),
	Forward: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "step"),
	),
	Back: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "back"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r", "home"),
		key.WithHelp("r", "reset"),
	),
	End: key.NewBinding(
		key.WithKeys("e", "end"),
		key.WithHelp("e", "last step"),
	),
	Faster: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "slower"),
	),
	Stats: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "counters"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Forward, k.Back, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Forward, k.Back, k.Reset, k.End},
		{k.Faster, k.Slower, k.Stats, k.Theme},
		{k.Help, k.Quit},
	}
}
