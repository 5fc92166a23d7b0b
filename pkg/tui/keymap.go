package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Back      key.Binding
	Enter     key.Binding
	Add       key.Binding
	Resolve   key.Binding
	Rank      key.Binding
	Export    key.Binding
	Import    key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Add, k.Rank, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Enter, k.Add, k.Resolve, k.Rank},
		{k.Export, k.Import},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

var defaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp(upArrow+"/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp(downArrow+"/j", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g/home", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G/end", "bottom"),
	),
	Help: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "force quit"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "view details"),
	),
	Add: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new incident"),
	),
	Resolve: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "resolve"),
	),
	Rank: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "toggle all/ranked"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export html report"),
	),
	Import: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "import from pagerduty"),
	),
}

// modeKeyMap is a help.KeyMap showing only the bindings active in one focus mode
type modeKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k modeKeyMap) ShortHelp() []key.Binding { return k.short }

func (k modeKeyMap) FullHelp() [][]key.Binding {
	if k.full == nil {
		return [][]key.Binding{k.short}
	}
	return k.full
}

var incidentViewKeyMap = modeKeyMap{
	short: []key.Binding{defaultKeyMap.Back, defaultKeyMap.Resolve, defaultKeyMap.Help},
	full: [][]key.Binding{
		{defaultKeyMap.Up, defaultKeyMap.Down},
		{defaultKeyMap.Back, defaultKeyMap.Resolve},
		{defaultKeyMap.Help, defaultKeyMap.ForceQuit},
	},
}

// Letters are typed into the prompt, so only non-printable keys are bound
var inputModeKeyMap = modeKeyMap{
	short: []key.Binding{
		withHelp(defaultKeyMap.Enter, "enter", "submit"),
		withHelp(defaultKeyMap.Back, "esc", "cancel"),
		defaultKeyMap.ForceQuit,
	},
}

var errorViewKeyMap = modeKeyMap{
	short: []key.Binding{defaultKeyMap.Back, defaultKeyMap.ForceQuit},
}

// withHelp returns a copy of b with different help text
func withHelp(b key.Binding, keys, desc string) key.Binding {
	b.SetHelp(keys, desc)
	return b
}
