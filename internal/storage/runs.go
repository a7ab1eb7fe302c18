package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome values stored for a run.
const (
	OutcomeEscaped    = "escaped"
	OutcomeGameOver   = "game_over"
	OutcomeUnfinished = "unfinished"
)

// Run is one finished (or abandoned) snake.
type Run struct {
	ID        string
	Seed      int64
	Outcome   string
	Reason    string
	Scenario  string
	Score     int
	Length    int
	Level     int
	Ticks     uint64
	Glitches  int
	CreatedAt time.Time
}

// RunStats aggregates the run history.
type RunStats struct {
	Runs       int
	Escaped    int
	GameOvers  int
	Unfinished int
	BestScore  int
	AvgLength  float64
	MaxLevel   int
	Scenarios  map[string]int // escapes per scenario
}

// SaveRun records a run and returns its ID. A fresh UUID is assigned when
// run.ID is empty.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, seed, outcome, reason, scenario, score, length, level, ticks, glitches)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Seed, run.Outcome, run.Reason, run.Scenario,
		run.Score, run.Length, run.Level, int64(run.Ticks), run.Glitches,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

const runColumns = `id, seed, outcome, reason, scenario, score, length, level, ticks, glitches, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	var ticks int64
	var createdAt any
	err := row.Scan(&r.ID, &r.Seed, &r.Outcome, &r.Reason, &r.Scenario,
		&r.Score, &r.Length, &r.Level, &ticks, &r.Glitches, &createdAt)
	if err != nil {
		return Run{}, err
	}
	r.Ticks = uint64(ticks)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RecentRuns returns the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RunByID looks a run up. Returns nil without error when it does not exist.
func (s *Store) RunByID(id string) (*Run, error) {
	r, err := scanRun(s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RunStats aggregates every recorded run.
func (s *Store) RunStats() (*RunStats, error) {
	stats := &RunStats{Scenarios: make(map[string]int)}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = ?), 0),
		        COALESCE(SUM(outcome = ?), 0),
		        COALESCE(SUM(outcome = ?), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(length), 0),
		        COALESCE(MAX(level), 0)
		 FROM runs`,
		OutcomeEscaped, OutcomeGameOver, OutcomeUnfinished,
	).Scan(&stats.Runs, &stats.Escaped, &stats.GameOvers, &stats.Unfinished,
		&stats.BestScore, &stats.AvgLength, &stats.MaxLevel)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT scenario, COUNT(*) FROM runs WHERE outcome = ? GROUP BY scenario`,
		OutcomeEscaped,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scenario stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var scenario string
		var n int
		if err := rows.Scan(&scenario, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan scenario row: %w", err)
		}
		stats.Scenarios[scenario] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRuns deletes the whole run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
