package scoresui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/halcyonix/typestorm/internal/model"
	"github.com/halcyonix/typestorm/internal/store"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "typestorm.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	rec := model.SessionRecord{
		EndedAt:  time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Player:   "ada",
		Mode:     model.ModeNormal,
		Language: "en",
		Score:    4200,
		Level:    6,
		PeakWPM:  72.5,
		Accuracy: 93.5,
	}
	if _, err := st.InsertSession(context.Background(), rec); err != nil {
		t.Fatalf("insert session: %v", err)
	}
	return NewModel(st, model.StatsConfig{})
}

func TestModelLoadsData(t *testing.T) {
	m := newTestModel(t)
	if m.errMsg != "" {
		t.Fatalf("unexpected load error: %s", m.errMsg)
	}
	if len(m.scores) != 1 || m.scores[0].Player != "ada" {
		t.Fatalf("scores not loaded: %+v", m.scores)
	}
	if len(m.achievements) == 0 {
		t.Fatalf("achievement catalog must load")
	}
}

func TestMoveTabWraps(t *testing.T) {
	m := newTestModel(t)
	m.moveTab(-1)
	if m.activeTab != tabAchievements {
		t.Fatalf("backwards from the first tab must wrap, got %d", m.activeTab)
	}
	m.moveTab(1)
	if m.activeTab != tabScores {
		t.Fatalf("forwards must wrap to the first tab, got %d", m.activeTab)
	}
}

func TestScoreTableRows(t *testing.T) {
	m := newTestModel(t)
	m.width = 100
	m.height = 30
	m.layout()

	view := m.scoreTable.View()
	for _, want := range []string{"ada", "4200", "72.5"} {
		if !strings.Contains(view, want) {
			t.Fatalf("score table missing %q:\n%s", want, view)
		}
	}
}

func TestProgressContent(t *testing.T) {
	m := newTestModel(t)
	m.width = 100
	m.height = 30
	m.layout()

	content := m.renderProgress()
	if !strings.Contains(content, "Sessions: 1") {
		t.Fatalf("progress content missing summary:\n%s", content)
	}
}
