package stats

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlotSeries(t *testing.T) {
	var buf bytes.Buffer
	err := PlotSeries(&buf, "Progress", []Series{
		{Name: "Score", Values: []float64{100, 250, 400, 300, 500}},
		{Name: "WPM", Values: []float64{30, 35, 40, 38, 45}},
	}, 20, 5, false)
	if err != nil {
		t.Fatalf("plot series: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Progress") {
		t.Fatalf("title missing:\n%s", out)
	}
	if !strings.Contains(out, "Score: min=100.00 max=500.00") {
		t.Fatalf("per-series range missing:\n%s", out)
	}
	if !strings.Contains(out, "Legend:") {
		t.Fatalf("legend missing:\n%s", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Title, two range lines, five plot rows, legend.
	if len(lines) < 9 {
		t.Fatalf("expected at least 9 lines, got %d:\n%s", len(lines), out)
	}
}

func TestPlotSeriesSkipsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotSeries(&buf, "Empty", nil, 20, 5, false); err != nil {
		t.Fatalf("plot series: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("empty input must render nothing, got:\n%s", buf.String())
	}
}

func TestPlotWidthFor(t *testing.T) {
	if got := PlotWidthFor(80); got != 80-4-len(axisSeparator) {
		t.Fatalf("width for 80: got %d", got)
	}
	if got := PlotWidthFor(5); got != minPlotWidth {
		t.Fatalf("narrow terminals must clamp to minimum, got %d", got)
	}
}

func TestResample(t *testing.T) {
	up := resample([]float64{0, 10}, 5)
	if len(up) != 5 || up[0] != 0 || up[4] != 10 {
		t.Fatalf("upsample endpoints wrong: %v", up)
	}
	down := resample([]float64{1, 1, 5, 5}, 2)
	if len(down) != 2 || down[0] != 1 || down[1] != 5 {
		t.Fatalf("downsample buckets wrong: %v", down)
	}
}
