package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/halcyonix/typestorm/internal/game"
)

const (
	hudRows       = 4
	defaultWidth  = 80
	defaultHeight = 24
)

// cell is one screen position with its style. A nil style is plain.
type cell struct {
	r     rune
	style *lipgloss.Style
}

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	fieldRows := height - hudRows
	if fieldRows < 5 {
		fieldRows = 5
	}

	switch {
	case m.session.State == game.StateOver:
		return m.viewGameOver(width, height)
	case m.session.State == game.StateTrivia:
		return m.viewTrivia(width, height)
	case m.paused:
		return m.viewPaused(width, height)
	}

	grid := m.renderField(width, fieldRows)
	return grid + "\n" + m.renderHUD(width)
}

// toCell maps logical field coordinates to a screen cell.
func toCell(x, y float64, cols, rows int) (int, int) {
	col := int(x / game.FieldWidth * float64(cols))
	row := int(y / game.FieldHeight * float64(rows))
	return col, row
}

func (m *Model) renderField(cols, rows int) string {
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}

	put := func(col, row int, text string, style *lipgloss.Style) {
		if row < 0 || row >= rows {
			return
		}
		for i, r := range []rune(text) {
			c := col + i
			if c < 0 || c >= cols {
				continue
			}
			grid[row][c] = cell{r: r, style: style}
		}
	}

	// Enemies render centered on their position, typed prefix first.
	for _, e := range m.session.Enemies {
		col, row := toCell(e.X, e.Y, cols, rows)
		start := col - e.Len()/2
		remainingStyle := &pendingStyle
		switch {
		case e.Frozen:
			remainingStyle = &frozenStyle
		case e.IsBoss():
			remainingStyle = &bossStyle
		case e.Active:
			remainingStyle = &targetStyle
		}
		typed := e.TypedPrefix()
		put(start, row, typed, &typedStyle)
		put(start+len([]rune(typed)), row, e.Remaining(), remainingStyle)
	}

	for _, fx := range m.effects {
		col, row := toCell(fx.x, fx.y, cols, rows)
		switch fx.kind {
		case effectExplosion:
			put(col, row, string(explosionGlyph(fx)), &effectStyle)
		case effectLaser:
			put(col, row+1, "|", &laserStyle)
		}
	}

	// Player ship.
	col, row := toCell(game.PlayerX, game.PlayerY, cols, rows)
	put(col-2, row, "<=A=>", &playerStyle)

	var b strings.Builder
	for y := 0; y < rows; y++ {
		b.WriteString(renderRow(grid[y]))
		if y < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// renderRow groups runs of equally-styled cells to keep escape
// sequences down.
func renderRow(row []cell) string {
	var b strings.Builder
	var run []rune
	var runStyle *lipgloss.Style
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runStyle != nil {
			b.WriteString(runStyle.Render(string(run)))
		} else {
			b.WriteString(string(run))
		}
		run = run[:0]
	}
	for _, c := range row {
		if c.style != runStyle {
			flush()
			runStyle = c.style
		}
		run = append(run, c.r)
	}
	flush()
	return strings.TrimRight(b.String(), " ")
}

func (m *Model) renderHUD(width int) string {
	s := m.session

	healthBar := renderBar(s.Health, game.MaxHealth, 12)
	hStyle := &healthStyle
	if s.Health <= 25 {
		hStyle = &healthLowSt
	}
	line1 := fmt.Sprintf("%s %s %3d   %s %s %3d",
		hudStyle.Render("HP"), hStyle.Render(healthBar), s.Health,
		hudStyle.Render("SH"), shieldStyle.Render(renderBar(s.Shield, game.MaxShield, 12)), s.Shield)

	line2 := hudStyle.Render("Score ") + hudValueStyle.Render(fmt.Sprintf("%d", s.Score)) +
		hudStyle.Render("  Level ") + hudValueStyle.Render(fmt.Sprintf("%d", s.Level)) +
		hudStyle.Render("  WPM ") + hudValueStyle.Render(fmt.Sprintf("%.1f", s.WPM)) +
		hudStyle.Render("  Acc ") + hudValueStyle.Render(fmt.Sprintf("%.0f%%", s.Accuracy)) +
		hudStyle.Render("  Streak ") + hudValueStyle.Render(fmt.Sprintf("%d", s.PerfectStreak))

	line3 := m.renderItems()
	line4 := hudStyle.Render("esc pause · arrows target/items · type to shoot")
	if m.notice != "" {
		line4 = noticeStyle.Render(m.notice)
	}

	lines := []string{line1, line2, line3, line4}
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Left, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderItems() string {
	s := m.session
	parts := make([]string, 0, game.ItemKindCount+1)
	for k := 0; k < game.ItemKindCount; k++ {
		kind := game.ItemKind(k)
		label := fmt.Sprintf("%s x%d", game.ItemName(kind), s.Items.Count(kind))
		if kind == s.Items.Selected {
			label = targetStyle.Render("[" + label + "]")
		} else {
			label = hudStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}
	if s.FreezeActive() {
		secs := float64(s.FreezeTicksLeft()) / game.TicksPerSecond
		parts = append(parts, frozenStyle.Render(fmt.Sprintf("FROZEN %.1fs", secs)))
	}
	return strings.Join(parts, " ")
}

// renderBar draws a fixed-width fill bar.
func renderBar(value, max, width int) string {
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	filled := 0
	if max > 0 {
		filled = value * width / max
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func (m *Model) viewPaused(width, height int) string {
	body := strings.Join([]string{
		noticeStyle.Render("PAUSED"),
		"",
		fmt.Sprintf("Score %d · Level %d", m.session.Score, m.session.Level),
		"",
		hudStyle.Render("esc/r resume · q save and quit"),
	}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlayStyle.Render(body))
}

func (m *Model) viewTrivia(width, height int) string {
	t := m.session.Trivia
	var b strings.Builder
	b.WriteString(noticeStyle.Render("TRIVIA · " + t.Question.Category))
	b.WriteString("\n\n")
	b.WriteString(t.Question.Prompt)
	b.WriteString("\n\n")
	for i, option := range t.Question.Options {
		label := fmt.Sprintf("%d. %s", i+1, option)
		switch {
		case t.State == game.TriviaAnswered && i == t.Question.Answer:
			label = correctStyle.Render(label)
		case t.State == game.TriviaAnswered && i == t.Selected:
			label = wrongStyle.Render(label)
		case i == t.Selected:
			label = optionSelectedStyle.Render("> " + label)
		default:
			label = optionStyle.Render("  " + label)
		}
		b.WriteString(label)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	switch t.State {
	case game.TriviaAnswered:
		if t.Correct {
			b.WriteString(correctStyle.Render("Correct!"))
		} else {
			b.WriteString(wrongStyle.Render("Wrong."))
		}
		b.WriteString(hudStyle.Render("  enter to continue"))
	default:
		b.WriteString(hudStyle.Render("1-3 or arrows to select · enter to answer"))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlayStyle.Render(b.String()))
}

func (m *Model) viewGameOver(width, height int) string {
	s := m.session
	var b strings.Builder
	b.WriteString(gameOverStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Score      %d\n", s.Score)
	fmt.Fprintf(&b, "Level      %d\n", s.Level)
	fmt.Fprintf(&b, "Words      %d\n", s.WordsDestroyed)
	fmt.Fprintf(&b, "Bosses     %d\n", s.BossesDefeated)
	fmt.Fprintf(&b, "Peak WPM   %.1f\n", s.PeakWPM)
	fmt.Fprintf(&b, "Accuracy   %.0f%%\n", s.Accuracy)
	b.WriteByte('\n')
	if !m.saved {
		b.WriteString(m.nameInput.View())
		b.WriteByte('\n')
		b.WriteString(hudStyle.Render("enter to save score"))
	} else {
		if m.finalRank > 0 {
			fmt.Fprintf(&b, "Rank #%d on the board\n", m.finalRank)
		}
		for _, a := range m.newUnlocks {
			b.WriteString(noticeStyle.Render("Unlocked: " + a.Name))
			b.WriteByte('\n')
		}
		b.WriteString(hudStyle.Render("q to exit"))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlayStyle.Render(b.String()))
}
