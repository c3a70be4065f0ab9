package components

import "github.com/vetfin/vetplan/internal/tui/tuistyles"

// Toggle is a labelled on/off switch
type Toggle struct {
	Label     string
	On        bool
	IsFocused bool
}

// NewToggle creates a toggle in the given state
func NewToggle(label string, on bool) *Toggle {
	return &Toggle{Label: label, On: on}
}

// Flip inverts the toggle
func (t *Toggle) Flip() { t.On = !t.On }

// SetFocused sets the focus state
func (t *Toggle) SetFocused(focused bool) *Toggle {
	t.IsFocused = focused
	return t
}

// Render returns "[x] Label" or "[ ] Label"
func (t *Toggle) Render() string {
	box := "[ ]"
	if t.On {
		box = "[x]"
	}
	labelStyle := tuistyles.ParameterLabelStyle
	boxStyle := tuistyles.ParameterValueStyle
	if t.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary).Bold(true)
		boxStyle = boxStyle.Foreground(tuistyles.ColorAccent)
	}
	return boxStyle.Render(box) + " " + labelStyle.Render(t.Label)
}
