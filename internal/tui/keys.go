package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// globalKeys work in every scene
type globalKeys struct {
	Simulator key.Binding
	Scenarios key.Binding
	Compare   key.Binding
	Help      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

var keys = globalKeys{
	Simulator: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "simulator")),
	Scenarios: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "scenarios")),
	Compare:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "compare")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k globalKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Simulator, k.Scenarios, k.Compare, k.Help, k.Quit}
}

func (k globalKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Simulator, k.Scenarios, k.Compare}, {k.Help, k.Back, k.Quit}}
}

// Scene keys are handled by the scene models; these copies only label the help screen
var (
	simulatorHelp = [][]key.Binding{
		{
			key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "select parameter")),
			key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "adjust")),
			key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "large step")),
		},
		{
			key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "flip toggle")),
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset to loaded scenario")),
			key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save edited scenario")),
		},
	}
	compareHelp = [][]key.Binding{
		{
			key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select template")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "compare current inputs")),
			key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear selection and results")),
		},
	}
)

func newHelp() help.Model {
	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = StatusKeyStyle
	h.Styles.FullKey = StatusKeyStyle
	return h
}
