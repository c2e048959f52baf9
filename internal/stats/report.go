package stats

import (
	"context"
	"io"

	"github.com/halcyonix/typestorm/internal/model"
	"github.com/halcyonix/typestorm/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Sessions     []model.SessionAggregate
	TopScores    []model.ScoreRow
	Achievements []model.Achievement
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	sessions, err := st.ListSessions(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	scores, err := st.TopScores(ctx, cfg.Mode, cfg.Language, 10)
	if err != nil {
		return Report{}, err
	}
	achievements, err := st.ListAchievements(ctx)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Sessions:     sessions,
		TopScores:    scores,
		Achievements: achievements,
	}, nil
}

// Render prints the full stats report.
func Render(w io.Writer, report Report, cfg model.StatsConfig, totalWidth int, useColor bool) error {
	if err := RenderSummary(w, report.Sessions); err != nil {
		return err
	}
	if err := RenderScores(w, report.TopScores); err != nil {
		return err
	}
	if err := RenderAchievements(w, report.Achievements); err != nil {
		return err
	}
	window := cfg.CurveWindow
	if window <= 0 {
		window = 5
	}
	return RenderCurves(w, report.Sessions, window, totalWidth, 10, useColor)
}
