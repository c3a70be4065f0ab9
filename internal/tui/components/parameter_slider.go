package components

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vetfin/vetplan/internal/tui/tuistyles"
)

// ParameterSlider edits one numeric plan input within [Min, Max]
type ParameterSlider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	BigStep   float64 // defaults to ten steps
	Formatter func(float64) string
	Width     int
	IsFocused bool
	Hint      string // shown under the bar while focused
}

// NewParameterSlider creates a slider with the value clamped into range
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	p := &ParameterSlider{
		Label:     label,
		Min:       min,
		Max:       max,
		Step:      step,
		BigStep:   step * 10,
		Width:     30,
		Formatter: func(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) },
	}
	p.SetValue(value)
	return p
}

func (p *ParameterSlider) WithFormatter(f func(float64) string) *ParameterSlider {
	p.Formatter = f
	return p
}

func (p *ParameterSlider) WithBigStep(step float64) *ParameterSlider {
	p.BigStep = step
	return p
}

func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

func (p *ParameterSlider) WithHint(hint string) *ParameterSlider {
	p.Hint = hint
	return p
}

func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// Nudge moves the value by n fine steps and reports whether it changed
func (p *ParameterSlider) Nudge(n int) bool {
	return p.SetValue(p.Value + float64(n)*p.Step)
}

// Jump moves the value by n coarse steps and reports whether it changed
func (p *ParameterSlider) Jump(n int) bool {
	return p.SetValue(p.Value + float64(n)*p.BigStep)
}

// SetValue clamps value into range and reports whether the slider moved
func (p *ParameterSlider) SetValue(value float64) bool {
	before := p.Value
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
	return p.Value != before
}

// Percentage is the value's position in the range, 0 for an empty range
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

func (p *ParameterSlider) FormattedValue() string {
	return p.Formatter(p.Value)
}

func (p *ParameterSlider) styles() (label, value lipgloss.Style) {
	label, value = tuistyles.ParameterLabelStyle, tuistyles.ParameterValueStyle
	if p.IsFocused {
		label = label.Foreground(tuistyles.ColorPrimary).Bold(true)
		value = value.Foreground(tuistyles.ColorAccent)
	}
	return label, value
}

// Render draws the label, the value and a [━━●──] bar
func (p *ParameterSlider) Render() string {
	label, value := p.styles()
	lines := []string{label.Render(p.Label) + " " + value.Render(p.FormattedValue()), p.bar()}
	if p.IsFocused && p.Hint != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Italic(true).Render(p.Hint))
	}
	return strings.Join(lines, "\n")
}

func (p *ParameterSlider) bar() string {
	track := max(p.Width-1, 0)
	filled := max(0, min(int(math.Round(float64(track)*p.Percentage())), track))

	thumb := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumb = thumb.Foreground(tuistyles.ColorAccent)
	}
	return "[" + thumb.Render(strings.Repeat("━", filled)+"●") +
		tuistyles.SliderTrackStyle.Render(strings.Repeat("─", track-filled)) + "]"
}

// RenderCompact draws "Label: value" on one line
func (p *ParameterSlider) RenderCompact() string {
	label, value := p.styles()
	return label.Render(p.Label+":") + " " + value.Render(p.FormattedValue())
}
