package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vetfin/vetplan/internal/tui/tuistyles"
)

// Gauge renders a 0-100 score as a coloured horizontal bar
type Gauge struct {
	Label string
	Value float64
	Width int
}

// NewGauge creates a gauge for a percentage value
func NewGauge(label string, value float64) *Gauge {
	return &Gauge{Label: label, Value: value, Width: 30}
}

// WithWidth sets the bar width
func (g *Gauge) WithWidth(width int) *Gauge {
	g.Width = width
	return g
}

// Color picks red below 40, amber below 70 and green otherwise
func (g *Gauge) Color() lipgloss.Color {
	switch {
	case g.Value < 40:
		return tuistyles.ColorDanger
	case g.Value < 70:
		return tuistyles.ColorAccent
	default:
		return tuistyles.ColorSuccess
	}
}

// Render returns "Label  [█████░░░░░] 42.0%"
func (g *Gauge) Render() string {
	v := math.Max(0, math.Min(100, g.Value))
	filled := int(math.Round(float64(g.Width) * v / 100))

	bar := lipgloss.NewStyle().Foreground(g.Color()).Render(strings.Repeat("█", filled)) +
		tuistyles.SliderTrackStyle.Render(strings.Repeat("░", g.Width-filled))

	return fmt.Sprintf("%s [%s] %.1f%%", tuistyles.MetricLabelStyle.Render(g.Label), bar, v)
}
