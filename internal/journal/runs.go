package journal

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// timeFormat is fixed-width so stored timestamps sort as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Run is one invocation of the animator.
type Run struct {
	RunID      string
	StartedAt  time.Time
	EndedAt    *time.Time
	SourceMode string
	Seed       *int64
	Script     *string
	MoveCount  int
	Solved     *bool
	AppVersion *string
}

// RunRepository provides CRUD operations for runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create starts a new run and returns its ID. seed is stored for random
// runs, script for scripted ones. Seeds above MaxInt64 do not fit the
// INTEGER column and are rejected.
func (r *RunRepository) Create(mode string, seed uint64, script, appVersion string) (string, error) {
	if seed > math.MaxInt64 {
		return "", fmt.Errorf("seed %d does not fit in a signed 64-bit column", seed)
	}
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var seedPtr *int64
	if mode == "random" {
		s := int64(seed)
		seedPtr = &s
	}
	var scriptPtr, versionPtr *string
	if script != "" {
		scriptPtr = &script
	}
	if appVersion != "" {
		versionPtr = &appVersion
	}

	_, err := r.db.Exec(`
		INSERT INTO runs (run_id, started_at, source_mode, seed, script, app_version)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, startedAt.Format(timeFormat), mode, seedPtr, scriptPtr, versionPtr)
	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// End marks a run as finished and records whether the cube ended solved.
func (r *RunRepository) End(runID string, solved bool) error {
	res, err := r.db.Exec(`
		UPDATE runs SET ended_at = ?, solved = ? WHERE run_id = ?
	`, time.Now().UTC().Format(timeFormat), solved, runID)
	if err != nil {
		return fmt.Errorf("failed to end run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to end run: %s not found", runID)
	}
	return nil
}

// Get retrieves a run by ID. It returns nil when no such run exists.
func (r *RunRepository) Get(runID string) (*Run, error) {
	row := r.db.QueryRow(`
		SELECT run_id, started_at, ended_at, source_mode, seed, script, move_count, solved, app_version
		FROM runs WHERE run_id = ?
	`, runID)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT run_id, started_at, ended_at, source_mode, seed, script, move_count, solved, app_version
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var run Run
	var startedAt string
	var endedAt sql.NullString
	var solved sql.NullBool
	err := s.Scan(&run.RunID, &startedAt, &endedAt, &run.SourceMode, &run.Seed,
		&run.Script, &run.MoveCount, &solved, &run.AppVersion)
	if err != nil {
		return nil, err
	}

	run.StartedAt, err = time.Parse(timeFormat, startedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start time: %w", err)
	}
	if endedAt.Valid {
		t, err := time.Parse(timeFormat, endedAt.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end time: %w", err)
		}
		run.EndedAt = &t
	}
	if solved.Valid {
		run.Solved = &solved.Bool
	}
	return &run, nil
}
