package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

// Chart rendering constants. All metric series share the fixed 1-5 rating
// scale, so a single axis serves every series.
const (
	DefaultChartHeight  = 10
	minChartWidth       = 10
	axisSeparator       = " │ "
	terminalWidthBackup = 80
)

var axisLabels = [3]string{"5", "3", "1"}

var chartColors = []string{
	"\x1b[36m", // Produttività
	"\x1b[32m", // Felicità
	"\x1b[31m", // Stress
	"\x1b[33m", // Stanchezza
}

const colorReset = "\x1b[0m"

// RenderChart draws a braille line chart for the metric series on the shared
// 1-5 axis. Empty series are skipped; with nothing to draw it renders
// nothing.
func RenderChart(w io.Writer, series []Series, width, height int, useColor bool) error {
	drawable := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) > 0 {
			drawable = append(drawable, s)
		}
	}
	if len(drawable) == 0 {
		return nil
	}
	if height <= 0 {
		height = DefaultChartHeight
	}
	if width <= 0 {
		width = ChartWidthFor(terminalWidth())
	}
	if width < minChartWidth {
		width = minChartWidth
	}

	grid := newBrailleGrid(width, height)
	for i, s := range drawable {
		grid.plotSeries(i, resample(s.Values, width))
	}

	labelWidth := len(axisLabels[0])
	for y := 0; y < height; y++ {
		label := ""
		switch y {
		case 0:
			label = axisLabels[0]
		case height / 2:
			label = axisLabels[1]
		case height - 1:
			label = axisLabels[2]
		}
		var row strings.Builder
		fmt.Fprintf(&row, "%*s%s", labelWidth, label, axisSeparator)
		for x := 0; x < width; x++ {
			mask, seriesIdx := grid.cell(x, y)
			ch := rune(0x2800 + int(mask))
			if useColor && seriesIdx >= 0 {
				row.WriteString(chartColors[seriesIdx%len(chartColors)])
				row.WriteRune(ch)
				row.WriteString(colorReset)
			} else {
				row.WriteRune(ch)
			}
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}
	return renderLegend(w, drawable, useColor)
}

func renderLegend(w io.Writer, series []Series, useColor bool) error {
	parts := make([]string, 0, len(series))
	for i, s := range series {
		label := fmt.Sprintf("⠁ %s", s.Name)
		if useColor {
			label = chartColors[i%len(chartColors)] + label + colorReset
		}
		parts = append(parts, label)
	}
	_, err := fmt.Fprintln(w, "Legenda: "+strings.Join(parts, "  "))
	return err
}

// ChartWidthFor computes a chart width that fits within the total available
// width next to the axis labels.
func ChartWidthFor(totalWidth int) int {
	width := totalWidth - len(axisLabels[0]) - len([]rune(axisSeparator))
	if width < minChartWidth {
		return minChartWidth
	}
	return width
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// ShouldColor reports whether w is a color-capable terminal.
func ShouldColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// brailleGrid accumulates per-series dot masks over a cell grid. Each cell is
// a 2x4 braille block; overlapping series merge their dots and the earliest
// series wins the cell color.
type brailleGrid struct {
	width  int
	height int
	layers [][][]uint8
}

func newBrailleGrid(width, height int) *brailleGrid {
	return &brailleGrid{width: width, height: height}
}

func (g *brailleGrid) layer(idx int) [][]uint8 {
	for len(g.layers) <= idx {
		cells := make([][]uint8, g.height)
		for y := range cells {
			cells[y] = make([]uint8, g.width)
		}
		g.layers = append(g.layers, cells)
	}
	return g.layers[idx]
}

func (g *brailleGrid) plotSeries(idx int, values []float64) {
	cells := g.layer(idx)
	dotRows := g.height * 4
	prevX, prevY := -1, -1
	for x, v := range values {
		px := x * 2
		py := ratingToDotRow(v, dotRows)
		if prevX >= 0 {
			drawSegment(prevX, prevY, px, py, func(dx, dy int) {
				setDot(cells, dx, dy)
			})
		} else {
			setDot(cells, px, py)
		}
		prevX, prevY = px, py
	}
}

func (g *brailleGrid) cell(x, y int) (uint8, int) {
	var mask uint8
	seriesIdx := -1
	for i, cells := range g.layers {
		if y >= len(cells) || x >= len(cells[y]) {
			continue
		}
		if cells[y][x] == 0 {
			continue
		}
		if seriesIdx == -1 {
			seriesIdx = i
		}
		mask |= cells[y][x]
	}
	return mask, seriesIdx
}

// ratingToDotRow maps a 1-5 rating onto the dot rows, top row = 5.
func ratingToDotRow(v float64, dotRows int) int {
	if dotRows <= 1 {
		return 0
	}
	pos := (v - RatingMin) / float64(RatingMax-RatingMin)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	row := int(math.Round((1 - pos) * float64(dotRows-1)))
	if row < 0 {
		row = 0
	}
	if row >= dotRows {
		row = dotRows - 1
	}
	return row
}

func resample(values []float64, width int) []float64 {
	if len(values) == 0 || width <= 0 {
		return nil
	}
	if len(values) == width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	if len(values) == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	if len(values) > width {
		// Bucket mean when shrinking.
		for i := 0; i < width; i++ {
			start := i * len(values) / width
			end := (i + 1) * len(values) / width
			if end <= start {
				end = start + 1
			}
			if end > len(values) {
				end = len(values)
			}
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
		return out
	}
	// Linear interpolation when stretching.
	for i := 0; i < width; i++ {
		pos := float64(i) * float64(len(values)-1) / float64(width-1)
		idx := int(math.Floor(pos))
		if idx >= len(values)-1 {
			out[i] = values[len(values)-1]
			continue
		}
		frac := pos - float64(idx)
		out[i] = values[idx]*(1-frac) + values[idx+1]*frac
	}
	return out
}

func setDot(cells [][]uint8, x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cellY := y / 4
	cellX := x / 2
	if cellY >= len(cells) || cellX >= len(cells[cellY]) {
		return
	}
	cells[cellY][cellX] |= dotMask(x%2, y%4)
}

var dotMasks = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func dotMask(x, y int) uint8 {
	if x < 0 || x > 1 || y < 0 || y > 3 {
		return 0
	}
	return dotMasks[x][y]
}

// drawSegment rasterizes a line between dot coordinates (Bresenham).
func drawSegment(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				return
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}
