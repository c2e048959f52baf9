// Package stats computes and renders play statistics.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/halcyonix/typestorm/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summary aggregates a set of stored sessions.
type Summary struct {
	Sessions    int
	BestScore   int
	AvgScore    float64
	BestLevel   int
	BestWPM     float64
	AvgWPM      float64
	AvgAccuracy float64
	TotalPlay   time.Duration
}

// Summarize computes the aggregate summary for sessions.
func Summarize(sessions []model.SessionAggregate) Summary {
	var sum Summary
	sum.Sessions = len(sessions)
	if len(sessions) == 0 {
		return sum
	}
	var scoreTotal, wpmTotal, accTotal float64
	for _, s := range sessions {
		if s.Score > sum.BestScore {
			sum.BestScore = s.Score
		}
		if s.Level > sum.BestLevel {
			sum.BestLevel = s.Level
		}
		if s.PeakWPM > sum.BestWPM {
			sum.BestWPM = s.PeakWPM
		}
		scoreTotal += float64(s.Score)
		wpmTotal += s.PeakWPM
		accTotal += s.Accuracy
		sum.TotalPlay += time.Duration(s.DurationMs) * time.Millisecond
	}
	count := float64(len(sessions))
	sum.AvgScore = scoreTotal / count
	sum.AvgWPM = wpmTotal / count
	sum.AvgAccuracy = accTotal / count
	return sum
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints the aggregate summary for sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	sum := Summarize(sessions)
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d", sum.Sessions),
		fmt.Sprintf("Best Score: %d", sum.BestScore),
		fmt.Sprintf("Avg Score: %.0f", sum.AvgScore),
		fmt.Sprintf("Best Level: %d", sum.BestLevel),
		fmt.Sprintf("Best WPM: %.2f", sum.BestWPM),
		fmt.Sprintf("Avg WPM: %.2f", sum.AvgWPM),
		fmt.Sprintf("Avg Accuracy: %.2f%%", sum.AvgAccuracy),
		fmt.Sprintf("Time Played: %s", sum.TotalPlay.Round(time.Second)),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderScores prints the high-score table.
func RenderScores(w io.Writer, rows []model.ScoreRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No scores yet.")
		return err
	}
	headers := []string{"Rank", "Player", "Score", "Level", "Peak WPM", "Mode", "Lang", "Date"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			fmt.Sprintf("%d", r.Rank),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
			fmt.Sprintf("%.1f", r.PeakWPM),
			string(r.Mode),
			r.Language,
			r.EndedAt.Format("2006-01-02"),
		})
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderAchievements prints the achievements list with progress.
func RenderAchievements(w io.Writer, achievements []model.Achievement) error {
	if len(achievements) == 0 {
		_, err := fmt.Fprintln(w, "No achievements defined.")
		return err
	}
	headers := []string{"", "Achievement", "Progress"}
	tableRows := make([][]string, 0, len(achievements))
	for _, a := range achievements {
		mark := " "
		if a.Unlocked {
			mark = "*"
		}
		progress := a.Progress
		if progress > a.Goal {
			progress = a.Goal
		}
		tableRows = append(tableRows, []string{
			mark,
			a.Name,
			fmt.Sprintf("%d/%d", progress, a.Goal),
		})
	}
	rightAlign := map[int]bool{2: true}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderCurves prints score and WPM progress curves over sessions.
func RenderCurves(w io.Writer, sessions []model.SessionAggregate, window, totalWidth, height int, useColor bool) error {
	if len(sessions) == 0 {
		return nil
	}
	scores := make([]float64, len(sessions))
	wpms := make([]float64, len(sessions))
	for i, s := range sessions {
		scores[i] = float64(s.Score)
		wpms[i] = s.PeakWPM
	}
	scores = MovingAverage(scores, window)
	wpms = MovingAverage(wpms, window)

	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	return PlotSeries(w, "Progress", []Series{
		{Name: "Score", Values: scores},
		{Name: "Peak WPM", Values: wpms},
	}, width, height, useColor)
}
