package journal

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_animator/internal/driver"
	"github.com/SeamusWaldron/gocube_animator/internal/notation"
	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTemp(t)
	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Reopening must not re-run the migration.
	path := db.Path()
	require.NoError(t, db.Close())
	again, err := Open(path)
	require.NoError(t, err)
	defer again.Close()
	v, err = again.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestRunLifecycle(t *testing.T) {
	db := openTemp(t)
	runs := NewRunRepository(db)

	id, err := runs.Create("random", 42, "", "dev")
	require.NoError(t, err)

	run, err := runs.Get(id)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, "random", run.SourceMode)
	require.NotNil(t, run.Seed)
	assert.Equal(t, int64(42), *run.Seed)
	assert.Nil(t, run.EndedAt)
	assert.Nil(t, run.Solved)

	require.NoError(t, runs.End(id, true))
	run, err = runs.Get(id)
	require.NoError(t, err)
	require.NotNil(t, run.EndedAt)
	require.NotNil(t, run.Solved)
	assert.True(t, *run.Solved)

	assert.Error(t, runs.End("missing", false))

	missing, err := runs.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateRejectsOversizedSeed(t *testing.T) {
	runs := NewRunRepository(openTemp(t))

	_, err := runs.Create("random", uint64(math.MaxInt64)+1, "", "")
	assert.Error(t, err)

	id, err := runs.Create("random", math.MaxInt64, "", "")
	require.NoError(t, err)
	run, err := runs.Get(id)
	require.NoError(t, err)
	require.NotNil(t, run.Seed)
	assert.Equal(t, int64(math.MaxInt64), *run.Seed)
}

func TestListNewestFirst(t *testing.T) {
	db := openTemp(t)
	runs := NewRunRepository(db)
	first, err := runs.Create("script", 0, "R U", "")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := runs.Create("random", 1, "", "")
	require.NoError(t, err)

	list, err := runs.List(10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0].RunID)
	assert.Equal(t, first, list[1].RunID)
	require.NotNil(t, list[1].Script)
	assert.Equal(t, "R U", *list[1].Script)
	assert.Nil(t, list[1].Seed)
}

func TestMovesRoundTripInOrder(t *testing.T) {
	db := openTemp(t)
	runID, err := NewRunRepository(db).Create("script", 0, "R U' F2", "")
	require.NoError(t, err)
	repo := NewMoveRepository(db)

	moves, err := notation.ParseSequence("R U' F2")
	require.NoError(t, err)
	for i, m := range moves {
		_, err := repo.Create(runID, i, m, notation.Decode(m), int64(i*100))
		require.NoError(t, err)
	}

	recs, err := repo.ListByRun(runID)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "U'", recs[1].Notation)
	assert.Equal(t, types.AxisY, recs[1].Rotation.Axis)
	assert.Equal(t, 1, recs[1].Rotation.Layer)
	assert.InDelta(t, -math.Pi/2, recs[1].Rotation.Angle, 1e-12)

	got, err := repo.Moves(runID)
	require.NoError(t, err)
	assert.Equal(t, moves, got)

	run, err := NewRunRepository(db).Get(runID)
	require.NoError(t, err)
	assert.Equal(t, 3, run.MoveCount)

	// Same index twice violates the unique key.
	_, err = repo.Create(runID, 0, moves[0], notation.Decode(moves[0]), 0)
	assert.Error(t, err)
}

func TestRecorderStoresCompletedMovesOnly(t *testing.T) {
	db := openTemp(t)
	rec, err := NewRecorder(db, "random", 7, "", "dev")
	require.NoError(t, err)

	m := types.Move{Face: types.FaceR, Turn: types.TurnCW}
	rot := notation.Decode(m)
	rec.Observe(driver.Event{Kind: driver.MoveStarted, Index: 0, Move: m, Rotation: rot})
	rec.Observe(driver.Event{Kind: driver.MoveCompleted, Index: 0, Move: m, Rotation: rot, Elapsed: 400 * time.Millisecond})
	require.NoError(t, rec.Close(false))

	recs, err := NewMoveRepository(db).ListByRun(rec.RunID())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, int64(400), recs[0].TsMs)
}
