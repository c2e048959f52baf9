// Package store handles SQLite persistence for sessions, the save
// slot, and achievements.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/halcyonix/typestorm/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for game data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY,
			ended_at TEXT NOT NULL,
			player TEXT NOT NULL,
			mode TEXT NOT NULL,
			lang TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			peak_wpm REAL NOT NULL,
			accuracy REAL NOT NULL,
			words_destroyed INTEGER NOT NULL,
			bosses_defeated INTEGER NOT NULL,
			perfect_words INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS save_state (
			slot INTEGER PRIMARY KEY CHECK (slot = 1),
			mode TEXT NOT NULL,
			lang TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			health INTEGER NOT NULL,
			shield INTEGER NOT NULL,
			missed_ships INTEGER NOT NULL,
			words_destroyed INTEGER NOT NULL,
			total_keystrokes INTEGER NOT NULL,
			correct_keystrokes INTEGER NOT NULL,
			peak_wpm REAL NOT NULL,
			perfect_words INTEGER NOT NULL,
			boss_spawned INTEGER NOT NULL,
			enemies_defeated_level INTEGER NOT NULL,
			bosses_defeated INTEGER NOT NULL,
			boss_defeats_lifetime INTEGER NOT NULL,
			item_missiles INTEGER NOT NULL,
			item_shield INTEGER NOT NULL,
			item_heal INTEGER NOT NULL,
			item_freeze INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			progress INTEGER NOT NULL,
			unlocked INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_score ON sessions(score);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSession stores a completed session and returns its row id.
func (s *Store) InsertSession(ctx context.Context, rec model.SessionRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (ended_at, player, mode, lang, score, level, peak_wpm, accuracy, words_destroyed, bosses_defeated, perfect_words, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.EndedAt.Format(time.RFC3339Nano),
		rec.Player,
		string(rec.Mode),
		rec.Language,
		rec.Score,
		rec.Level,
		rec.PeakWPM,
		rec.Accuracy,
		rec.WordsDestroyed,
		rec.BossesDefeated,
		rec.PerfectWords,
		rec.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// TopScores returns the highest-scoring sessions, ranked from 1.
// Empty mode or lang means no filter on that column.
func (s *Store) TopScores(ctx context.Context, mode, lang string, limit int) ([]model.ScoreRow, error) {
	if limit <= 0 {
		return nil, nil
	}
	query := `SELECT player, score, level, peak_wpm, mode, lang, ended_at
		FROM sessions
		WHERE (? = '' OR mode = ?) AND (? = '' OR lang = ?)
		ORDER BY score DESC, ended_at ASC
		LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, mode, mode, lang, lang, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.ScoreRow
	for rows.Next() {
		var row model.ScoreRow
		var mode, endedAt string
		if err := rows.Scan(&row.Player, &row.Score, &row.Level, &row.PeakWPM, &mode, &row.Language, &endedAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		row.Mode = model.Mode(mode)
		row.EndedAt = parsed
		row.Rank = len(result) + 1
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ScoreRank returns the 1-based rank a score would take on the board.
func (s *Store) ScoreRank(ctx context.Context, score int) (int, error) {
	var higher int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sessions WHERE score > ?`, score).Scan(&higher)
	if err != nil {
		return 0, err
	}
	return higher + 1, nil
}

// ListSessions returns session aggregates filtered by stats config,
// oldest first.
func (s *Store) ListSessions(ctx context.Context, cfg model.StatsConfig) ([]model.SessionAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Mode != "" {
		clauses = append(clauses, "mode = ?")
		args = append(args, cfg.Mode)
	}
	if cfg.Language != "" {
		clauses = append(clauses, "lang = ?")
		args = append(args, cfg.Language)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, ended_at, score, level, peak_wpm, accuracy, duration_ms
		FROM sessions
		WHERE %s
		ORDER BY ended_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.SessionAggregate
	for rows.Next() {
		var agg model.SessionAggregate
		var endedAt string
		if err := rows.Scan(&agg.SessionID, &endedAt, &agg.Score, &agg.Level, &agg.PeakWPM, &agg.Accuracy, &agg.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		sessions = append(sessions, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(sessions) > cfg.Last {
		sessions = sessions[len(sessions)-cfg.Last:]
	}
	return sessions, nil
}

// SaveGame writes the single save slot, replacing any previous save.
func (s *Store) SaveGame(ctx context.Context, save model.SaveState) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO save_state (slot, mode, lang, score, level, health, shield, missed_ships, words_destroyed, total_keystrokes, correct_keystrokes, peak_wpm, perfect_words, boss_spawned, enemies_defeated_level, bosses_defeated, boss_defeats_lifetime, item_missiles, item_shield, item_heal, item_freeze)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(save.Mode),
		save.Language,
		save.Score,
		save.Level,
		save.Health,
		save.Shield,
		save.MissedShips,
		save.WordsDestroyed,
		save.TotalKeystrokes,
		save.CorrectKeystrokes,
		save.PeakWPM,
		save.PerfectWords,
		boolToInt(save.BossSpawned),
		save.EnemiesDefeatedLevel,
		save.BossesDefeated,
		save.BossDefeatsLifetime,
		save.Items[0],
		save.Items[1],
		save.Items[2],
		save.Items[3],
	)
	return err
}

// LoadGame reads the save slot. The second result is false when no save
// exists.
func (s *Store) LoadGame(ctx context.Context) (model.SaveState, bool, error) {
	var save model.SaveState
	var mode string
	err := s.db.QueryRowContext(ctx,
		`SELECT mode, lang, score, level, health, shield, missed_ships, words_destroyed, total_keystrokes, correct_keystrokes, peak_wpm, perfect_words, boss_spawned, enemies_defeated_level, bosses_defeated, boss_defeats_lifetime, item_missiles, item_shield, item_heal, item_freeze
		 FROM save_state WHERE slot = 1`).Scan(
		&mode,
		&save.Language,
		&save.Score,
		&save.Level,
		&save.Health,
		&save.Shield,
		&save.MissedShips,
		&save.WordsDestroyed,
		&save.TotalKeystrokes,
		&save.CorrectKeystrokes,
		&save.PeakWPM,
		&save.PerfectWords,
		&save.BossSpawned,
		&save.EnemiesDefeatedLevel,
		&save.BossesDefeated,
		&save.BossDefeatsLifetime,
		&save.Items[0],
		&save.Items[1],
		&save.Items[2],
		&save.Items[3],
	)
	if err == sql.ErrNoRows {
		return model.SaveState{}, false, nil
	}
	if err != nil {
		return model.SaveState{}, false, err
	}
	save.Mode = model.Mode(mode)
	return save, true, nil
}

// ClearSave deletes the save slot. A missing save is not an error.
func (s *Store) ClearSave(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM save_state WHERE slot = 1`)
	return err
}
