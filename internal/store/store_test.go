package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/halcyonix/typestorm/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "typestorm.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return s
}

func testRecord(player string, score int) model.SessionRecord {
	return model.SessionRecord{
		EndedAt:        time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Player:         player,
		Mode:           model.ModeNormal,
		Language:       "en",
		Score:          score,
		Level:          7,
		PeakWPM:        84.5,
		Accuracy:       95.5,
		WordsDestroyed: 60,
		BossesDefeated: 1,
		PerfectWords:   12,
		DurationMs:     180000,
	}
}

func TestInsertAndTopScores(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, row := range []struct {
		player string
		score  int
	}{
		{"ada", 4200},
		{"linus", 9000},
		{"grace", 6100},
	} {
		if _, err := s.InsertSession(ctx, testRecord(row.player, row.score)); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}

	scores, err := s.TopScores(ctx, "", "", 10)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(scores))
	}
	if scores[0].Player != "linus" || scores[0].Rank != 1 {
		t.Fatalf("rank 1 wrong: %+v", scores[0])
	}
	if scores[2].Player != "ada" || scores[2].Rank != 3 {
		t.Fatalf("rank 3 wrong: %+v", scores[2])
	}
	if scores[0].Mode != model.ModeNormal || scores[0].Language != "en" {
		t.Fatalf("mode/lang not round-tripped: %+v", scores[0])
	}
}

func TestTopScoresFilters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	recNormal := testRecord("ada", 100)
	recProg := testRecord("ada", 200)
	recProg.Mode = model.ModeProgramming
	recProg.Language = "go"
	for _, rec := range []model.SessionRecord{recNormal, recProg} {
		if _, err := s.InsertSession(ctx, rec); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}

	scores, err := s.TopScores(ctx, string(model.ModeProgramming), "go", 10)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 200 {
		t.Fatalf("filter failed: %+v", scores)
	}
}

func TestScoreRank(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, score := range []int{1000, 2000, 3000} {
		if _, err := s.InsertSession(ctx, testRecord("p", score)); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}

	for _, tc := range []struct {
		score int
		want  int
	}{
		{5000, 1},
		{2500, 2},
		{2000, 2},
		{500, 4},
	} {
		rank, err := s.ScoreRank(ctx, tc.score)
		if err != nil {
			t.Fatalf("score rank: %v", err)
		}
		if rank != tc.want {
			t.Fatalf("rank of %d: got %d want %d", tc.score, rank, tc.want)
		}
	}
}

func TestListSessionsSinceAndLast(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := testRecord("p", 100*i)
		rec.EndedAt = base.AddDate(0, 0, i)
		if _, err := s.InsertSession(ctx, rec); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}

	since := base.AddDate(0, 0, 2)
	sessions, err := s.ListSessions(ctx, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("since filter: got %d sessions, want 3", len(sessions))
	}
	for i := 1; i < len(sessions); i++ {
		if sessions[i].EndedAt.Before(sessions[i-1].EndedAt) {
			t.Fatalf("sessions not in ascending order")
		}
	}

	sessions, err = s.ListSessions(ctx, model.StatsConfig{Last: 2})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 2 || sessions[1].Score != 400 {
		t.Fatalf("last filter: %+v", sessions)
	}
}

func TestSaveSlotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := s.LoadGame(ctx); err != nil || ok {
		t.Fatalf("empty slot: ok=%v err=%v", ok, err)
	}

	save := model.SaveState{
		Mode:                 model.ModeProgramming,
		Language:             "python",
		Score:                1234,
		Level:                9,
		Health:               70,
		Shield:               25,
		MissedShips:          3,
		WordsDestroyed:       80,
		TotalKeystrokes:      500,
		CorrectKeystrokes:    470,
		PeakWPM:              92.5,
		PerfectWords:         14,
		BossSpawned:          true,
		EnemiesDefeatedLevel: 4,
		BossesDefeated:       1,
		BossDefeatsLifetime:  5,
		Items:                [4]int{2, 0, 1, 1},
	}
	if err := s.SaveGame(ctx, save); err != nil {
		t.Fatalf("save game: %v", err)
	}

	loaded, ok, err := s.LoadGame(ctx)
	if err != nil || !ok {
		t.Fatalf("load game: ok=%v err=%v", ok, err)
	}
	if loaded != save {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", loaded, save)
	}

	// A second save replaces the slot.
	save.Score = 4321
	if err := s.SaveGame(ctx, save); err != nil {
		t.Fatalf("second save: %v", err)
	}
	loaded, _, err = s.LoadGame(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Score != 4321 {
		t.Fatalf("slot not replaced: %+v", loaded)
	}

	if err := s.ClearSave(ctx); err != nil {
		t.Fatalf("clear save: %v", err)
	}
	if _, ok, _ := s.LoadGame(ctx); ok {
		t.Fatalf("slot must be empty after clear")
	}
	if err := s.ClearSave(ctx); err != nil {
		t.Fatalf("clearing an empty slot must not fail: %v", err)
	}
}

func TestAchievementsProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	all, err := s.ListAchievements(ctx)
	if err != nil {
		t.Fatalf("list achievements: %v", err)
	}
	if len(all) != len(achievementCatalog) {
		t.Fatalf("catalog size: got %d want %d", len(all), len(achievementCatalog))
	}
	for _, a := range all {
		if a.Progress != 0 || a.Unlocked {
			t.Fatalf("fresh achievement must start locked: %+v", a)
		}
	}

	rec := testRecord("p", 12000)
	rec.WordsDestroyed = 60
	rec.PeakWPM = 95
	unlocked, err := s.UpdateAchievements(ctx, rec)
	if err != nil {
		t.Fatalf("update achievements: %v", err)
	}
	ids := map[string]bool{}
	for _, a := range unlocked {
		ids[a.ID] = true
	}
	if !ids["score-10000"] || !ids["wpm-80"] {
		t.Fatalf("expected score and wpm unlocks, got %v", ids)
	}
	if ids["words-100"] {
		t.Fatalf("words-100 needs 100 cumulative, only 60 played")
	}

	// Second session pushes the cumulative counter over the line, and
	// already-unlocked achievements do not unlock twice.
	unlocked, err = s.UpdateAchievements(ctx, rec)
	if err != nil {
		t.Fatalf("update achievements: %v", err)
	}
	ids = map[string]bool{}
	for _, a := range unlocked {
		ids[a.ID] = true
	}
	if !ids["words-100"] {
		t.Fatalf("cumulative achievement must unlock at 120 words")
	}
	if ids["score-10000"] || ids["wpm-80"] {
		t.Fatalf("achievements must unlock once, got %v", ids)
	}

	all, err = s.ListAchievements(ctx)
	if err != nil {
		t.Fatalf("list achievements: %v", err)
	}
	for _, a := range all {
		if a.ID == "words-100" && a.Progress != 120 {
			t.Fatalf("cumulative progress: got %d want 120", a.Progress)
		}
		if a.ID == "score-10000" && a.Progress != 12000 {
			t.Fatalf("high-water progress: got %d want 12000", a.Progress)
		}
	}
}
