package store

import (
	"context"

	"github.com/halcyonix/typestorm/internal/model"
)

// achievementDef is a catalog entry. Cumulative metrics add the
// session's contribution to the stored progress; high-water metrics
// keep the maximum seen.
type achievementDef struct {
	id         string
	name       string
	goal       int
	cumulative bool
	metric     func(rec model.SessionRecord) int
}

var achievementCatalog = []achievementDef{
	{id: "words-100", name: "Word Hunter", goal: 100, cumulative: true,
		metric: func(r model.SessionRecord) int { return r.WordsDestroyed }},
	{id: "words-1000", name: "Word Reaper", goal: 1000, cumulative: true,
		metric: func(r model.SessionRecord) int { return r.WordsDestroyed }},
	{id: "bosses-10", name: "Boss Breaker", goal: 10, cumulative: true,
		metric: func(r model.SessionRecord) int { return r.BossesDefeated }},
	{id: "perfect-50", name: "Flawless Fifty", goal: 50, cumulative: true,
		metric: func(r model.SessionRecord) int { return r.PerfectWords }},
	{id: "score-10000", name: "High Roller", goal: 10000,
		metric: func(r model.SessionRecord) int { return r.Score }},
	{id: "level-25", name: "Storm Chaser", goal: 25,
		metric: func(r model.SessionRecord) int { return r.Level }},
	{id: "level-100", name: "Eye of the Storm", goal: 100,
		metric: func(r model.SessionRecord) int { return r.Level }},
	{id: "wpm-80", name: "Fast Fingers", goal: 80,
		metric: func(r model.SessionRecord) int { return int(r.PeakWPM) }},
	{id: "wpm-120", name: "Lightning Hands", goal: 120,
		metric: func(r model.SessionRecord) int { return int(r.PeakWPM) }},
}

// ListAchievements returns the full catalog with stored progress merged
// in. Entries without a stored row report zero progress.
func (s *Store) ListAchievements(ctx context.Context) ([]model.Achievement, error) {
	stored := map[string]model.Achievement{}
	rows, err := s.db.QueryContext(ctx, `SELECT id, progress, unlocked FROM achievements`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	for rows.Next() {
		var a model.Achievement
		var unlocked int
		if err := rows.Scan(&a.ID, &a.Progress, &unlocked); err != nil {
			return nil, err
		}
		a.Unlocked = unlocked != 0
		stored[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make([]model.Achievement, 0, len(achievementCatalog))
	for _, def := range achievementCatalog {
		a := model.Achievement{ID: def.id, Name: def.name, Goal: def.goal}
		if st, ok := stored[def.id]; ok {
			a.Progress = st.Progress
			a.Unlocked = st.Unlocked
		}
		result = append(result, a)
	}
	return result, nil
}

// UpdateAchievements folds a finished session into achievement progress
// and returns the achievements newly unlocked by it.
func (s *Store) UpdateAchievements(ctx context.Context, rec model.SessionRecord) ([]model.Achievement, error) {
	current, err := s.ListAchievements(ctx)
	if err != nil {
		return nil, err
	}
	byID := map[string]model.Achievement{}
	for _, a := range current {
		byID[a.ID] = a
	}

	var unlocked []model.Achievement
	for _, def := range achievementCatalog {
		a := byID[def.id]
		value := def.metric(rec)
		if def.cumulative {
			a.Progress += value
		} else if value > a.Progress {
			a.Progress = value
		}
		justUnlocked := !a.Unlocked && a.Progress >= def.goal
		if justUnlocked {
			a.Unlocked = true
		}
		if _, err := s.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO achievements (id, progress, unlocked) VALUES (?, ?, ?)`,
			a.ID, a.Progress, boolToInt(a.Unlocked)); err != nil {
			return nil, err
		}
		if justUnlocked {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
