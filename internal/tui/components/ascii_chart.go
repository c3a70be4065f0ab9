package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vetfin/vetplan/internal/domain"
	"github.com/vetfin/vetplan/internal/tui/tuistyles"
)

// DataSeries represents a single line in a chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart displays a simple line chart
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Labels     []string // X-axis labels, one per point
	Marker     int      // point index drawn as a vertical marker; -1 for none
	Width      int
	Height     int
	ShowLegend bool
}

const yAxisWidth = 10

// NewASCIIChart creates a new ASCII chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Marker:     -1,
		Width:      60,
		Height:     12,
		ShowLegend: true,
	}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// WithLabels sets the X-axis labels
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithMarker draws a vertical marker at the given point index
func (c *ASCIIChart) WithMarker(index int) *ASCIIChart {
	c.Marker = index
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// ProjectionChart plots savings and total wealth by age, marking retirement
func ProjectionChart(plan *domain.RetirementPlan) *ASCIIChart {
	savings := make([]float64, len(plan.Projection))
	totals := make([]float64, len(plan.Projection))
	labels := make([]string, len(plan.Projection))
	marker := -1
	for i, pt := range plan.Projection {
		savings[i] = pt.Savings
		totals[i] = pt.Total
		labels[i] = strconv.Itoa(pt.Age)
		if pt.Age == plan.Inputs.RetirementAge {
			marker = i
		}
	}

	return NewASCIIChart("Projection by Age").
		AddSeries("Savings", savings, tuistyles.ColorChartLine1).
		AddSeries("Savings + Benefits", totals, tuistyles.ColorChartLine2).
		WithLabels(labels).
		WithMarker(marker)
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 || c.pointCount() == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		content.WriteString("\n\n")
	}

	lo, hi := c.bounds()
	content.WriteString(c.renderGrid(lo, hi))

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n")
		content.WriteString(c.renderLegend())
	}
	return content.String()
}

func (c *ASCIIChart) pointCount() int {
	n := 0
	for _, s := range c.Series {
		n = max(n, len(s.Points))
	}
	return n
}

// bounds returns the value range with 10% headroom. The floor never drops
// below zero for non-negative data.
func (c *ASCIIChart) bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	if hi == lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.1
	if lo >= 0 {
		return math.Max(0, lo-pad), hi + pad
	}
	return lo - pad, hi + pad
}

// column maps a point index to a grid column
func (c *ASCIIChart) column(i, n, width int) int {
	if n <= 1 {
		return 0
	}
	return int(math.Round(float64(i) / float64(n-1) * float64(width-1)))
}

func (c *ASCIIChart) row(v, lo, hi float64) int {
	return c.Height - 1 - int(math.Round((v-lo)/(hi-lo)*float64(c.Height-1)))
}

func (c *ASCIIChart) renderGrid(lo, hi float64) string {
	chartWidth := max(2, c.Width-yAxisWidth-3)

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", chartWidth))
	}

	n := c.pointCount()
	if c.Marker >= 0 && c.Marker < n {
		x := c.column(c.Marker, n, chartWidth)
		for y := range grid {
			grid[y][x] = '┊'
		}
	}

	// Later series are drawn first so the first series stays on top
	for s := len(c.Series) - 1; s >= 0; s-- {
		series := c.Series[s]
		char := seriesChar(s)
		for i, p := range series.Points {
			x, y := c.column(i, len(series.Points), chartWidth), c.row(p, lo, hi)
			if i > 0 {
				px, py := c.column(i-1, len(series.Points), chartWidth), c.row(series.Points[i-1], lo, hi)
				drawLine(grid, px, py, x, y, char)
			}
			plot(grid, x, y, char)
		}
	}

	axisStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)

	var out strings.Builder
	for i, row := range grid {
		value := hi - float64(i)/float64(max(1, c.Height-1))*(hi-lo)
		label := ""
		if i == 0 || i == c.Height-1 || i == c.Height/2 {
			label = formatChartValue(value)
		}
		out.WriteString(axisStyle.Render(label))
		out.WriteString(" │ ")
		out.WriteString(string(row))
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └─")
	out.WriteString(strings.Repeat("─", chartWidth))
	out.WriteString("\n")

	if len(c.Labels) > 0 {
		out.WriteString(c.renderXAxisLabels(chartWidth))
	}
	return out.String()
}

func plot(grid [][]rune, x, y int, char rune) {
	if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
		grid[y][x] = char
	}
}

// drawLine connects two points using Bresenham's algorithm
func drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(grid, x0, y0, char)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// renderXAxisLabels places up to five labels under their columns
func (c *ASCIIChart) renderXAxisLabels(chartWidth int) string {
	line := []rune(strings.Repeat(" ", chartWidth+8))
	n := len(c.Labels)
	const maxLabels = 5
	step := max(1, (n-1)/(maxLabels-1))

	next := 0
	for i := 0; i < n; i += step {
		x := c.column(i, n, chartWidth)
		if x < next {
			continue
		}
		for j, r := range c.Labels[i] {
			if x+j < len(line) {
				line[x+j] = r
			}
		}
		next = x + len(c.Labels[i]) + 1
	}

	return strings.Repeat(" ", yAxisWidth+3) +
		lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(strings.TrimRight(string(line), " "))
}

func (c *ASCIIChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, s := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesChar(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, s.Name))
	}
	if c.Marker >= 0 {
		items = append(items, "┊ retirement")
	}
	return tuistyles.MetricLabelStyle.Render("Legend: " + strings.Join(items, " • "))
}

func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// formatChartValue formats a value for display on the Y-axis
func formatChartValue(value float64) string {
	switch {
	case math.Abs(value) >= 1_000_000:
		return fmt.Sprintf("$%.1fM", value/1_000_000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
