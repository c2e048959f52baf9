package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

// Series is a named value sequence for plotting.
type Series struct {
	Name   string
	Values []float64
}

const (
	defaultPlotHeight = 10
	minPlotWidth      = 10
	fallbackTermWidth = 80
	axisSeparator     = " | "
	colorReset        = "\x1b[0m"
)

var plotColors = []string{
	"\x1b[36m", // cyan
	"\x1b[35m", // magenta
	"\x1b[33m", // yellow
	"\x1b[32m", // green
}

// canvas is a braille dot grid: each cell packs 2x4 dots, and each dot
// remembers which series drew it first.
type canvas struct {
	width, height int
	masks         [][]uint8
	owners        [][]int
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height}
	c.masks = make([][]uint8, height)
	c.owners = make([][]int, height)
	for y := range c.masks {
		c.masks[y] = make([]uint8, width)
		c.owners[y] = make([]int, width)
		for x := range c.owners[y] {
			c.owners[y][x] = -1
		}
	}
	return c
}

// brailleDots maps (x%2, y%4) to its bit in the braille mask.
var brailleDots = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func (c *canvas) dot(x, y, series int) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cy >= c.height || cx >= c.width {
		return
	}
	c.masks[cy][cx] |= brailleDots[x%2][y%4]
	if c.owners[cy][cx] == -1 {
		c.owners[cy][cx] = series
	}
}

// line draws a Bresenham segment in dot coordinates.
func (c *canvas) line(x0, y0, x1, y1, series int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.dot(x0, y0, series)
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

// PlotSeries renders a multi-series braille plot. Each series is scaled
// to its own min/max, noted above the plot. Zero width picks a width
// from the terminal; zero height uses the default.
func PlotSeries(w io.Writer, title string, series []Series, width, height int, useColor bool) error {
	kept := series[:0:0]
	for _, s := range series {
		if len(s.Values) > 0 {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	if width <= 0 {
		width = PlotWidthFor(terminalWidth())
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}

	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	c := newCanvas(width, height)
	for si, s := range kept {
		values := resample(s.Values, width)
		lo, hi := minMax(values)
		if math.Abs(hi-lo) < 1e-9 {
			lo--
			hi++
		}
		if _, err := fmt.Fprintf(w, "%s: min=%.2f max=%.2f\n", s.Name, lo, hi); err != nil {
			return err
		}
		dotRows := height * 4
		prevX, prevY := -1, -1
		for x, v := range values {
			row := int(math.Round((1 - (v-lo)/(hi-lo)) * float64(dotRows-1)))
			row = clamp(row, 0, dotRows-1)
			if prevX >= 0 {
				c.line(prevX, prevY, x*2, row, si)
			} else {
				c.dot(x*2, row, si)
			}
			prevX, prevY = x*2, row
		}
	}

	labels := axisLabels(height)
	for y := 0; y < height; y++ {
		var row strings.Builder
		fmt.Fprintf(&row, "%4s%s", labels[y], axisSeparator)
		for x := 0; x < width; x++ {
			ch := rune(0x2800 + int(c.masks[y][x]))
			if owner := c.owners[y][x]; useColor && owner >= 0 {
				row.WriteString(plotColors[owner%len(plotColors)])
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

	legend := make([]string, 0, len(kept))
	for i, s := range kept {
		label := fmt.Sprintf("%c %s", rune(0x2800+0x01), s.Name)
		if useColor {
			label = plotColors[i%len(plotColors)] + label + colorReset
		}
		legend = append(legend, label)
	}
	if _, err := fmt.Fprintln(w, "Legend: "+strings.Join(legend, "  ")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// PlotWidthFor computes a plot width fitting within the total width.
func PlotWidthFor(totalWidth int) int {
	plotWidth := totalWidth - 4 - len(axisSeparator)
	if plotWidth < minPlotWidth {
		plotWidth = minPlotWidth
	}
	return plotWidth
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackTermWidth
	}
	return width
}

func axisLabels(height int) []string {
	labels := make([]string, height)
	labels[0] = "100%"
	if height > 2 {
		labels[height/2] = "50%"
	}
	if height > 1 {
		labels[height-1] = "0%"
	}
	return labels
}

// resample squeezes or stretches values to exactly width samples:
// bucket averages when shrinking, linear interpolation when growing.
func resample(values []float64, width int) []float64 {
	if len(values) == width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	if len(values) > width {
		for i := 0; i < width; i++ {
			start := i * len(values) / width
			end := (i + 1) * len(values) / width
			if end <= start {
				end = start + 1
			}
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
		return out
	}
	if len(values) == 1 || width == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	for i := 0; i < width; i++ {
		pos := float64(i) * float64(len(values)-1) / float64(width-1)
		idx := int(pos)
		if idx >= len(values)-1 {
			out[i] = values[len(values)-1]
			continue
		}
		frac := pos - float64(idx)
		out[i] = values[idx]*(1-frac) + values[idx+1]*frac
	}
	return out
}

func minMax(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
