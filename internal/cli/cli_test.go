package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_animator"
	"github.com/SeamusWaldron/gocube_animator/internal/config"
	"github.com/SeamusWaldron/gocube_animator/internal/journal"
	"github.com/SeamusWaldron/gocube_animator/internal/logging"
)

func newTestModel(t *testing.T, script string) *runModel {
	t.Helper()
	moves, err := gocube.ParseMoves(script)
	require.NoError(t, err)
	anim, err := gocube.NewAnimator(
		gocube.WithScript(moves, false),
		gocube.WithDuration(160*time.Millisecond),
		gocube.WithSettleDelay(32*time.Millisecond),
	)
	require.NoError(t, err)
	return newRunModel(anim, 60)
}

// frames feeds n frames 16ms apart, continuing from the model's clock.
func frames(m *runModel, n int) {
	t := m.lastFrame
	if t.IsZero() {
		t = time.Unix(0, 0)
	}
	for i := 0; i < n && !m.quitting; i++ {
		t = t.Add(16 * time.Millisecond)
		m.Update(frameMsg(t))
	}
}

func TestViewportDebounce(t *testing.T) {
	var v viewport
	assert.Nil(t, v.request(100, 40), "first size applies at once")
	assert.Equal(t, 100, v.width)

	require.NotNil(t, v.request(90, 30))
	require.NotNil(t, v.request(60, 20))
	cmd := v.request(120, 50)
	require.NotNil(t, cmd)
	assert.Equal(t, 100, v.width, "size holds until the burst settles")

	assert.False(t, v.settle(resizeSettledMsg{gen: 2}), "stale confirmation")
	assert.Equal(t, 100, v.width)

	assert.True(t, v.settle(resizeSettledMsg{gen: v.gen}))
	assert.Equal(t, 120, v.width)
	assert.Equal(t, 50, v.height)
	assert.True(t, v.wide())
}

func TestResizeDoesNotDisturbAnimation(t *testing.T) {
	m := newTestModel(t, "R U R' U'")
	frames(m, 5)
	require.Equal(t, "rotating", m.anim.Phase())

	count, progress := m.anim.Count(), m.anim.Progress()
	before := m.anim.Facelets()
	for w := 40; w < 140; w += 10 {
		m.Update(tea.WindowSizeMsg{Width: w, Height: 30})
	}
	m.Update(resizeSettledMsg{gen: m.view.gen})

	assert.Equal(t, count, m.anim.Count())
	assert.Equal(t, progress, m.anim.Progress())
	assert.Equal(t, before, m.anim.Facelets())
	assert.Equal(t, 130, m.view.width)
	assert.NotEmpty(t, m.View())
}

func TestQuitWaitsForMoveBoundary(t *testing.T) {
	m := newTestModel(t, "R U R' U'")
	frames(m, 4)
	require.False(t, m.anim.AtBoundary())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, m.stopping)
	assert.False(t, m.quitting)

	frames(m, 50)
	assert.True(t, m.quitting)
	assert.Equal(t, 1, m.anim.Count())
	assert.NoError(t, m.anim.Verify())
}

func TestPauseFreezesAnimation(t *testing.T) {
	m := newTestModel(t, "F")
	frames(m, 3)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})
	require.True(t, m.paused)

	p := m.anim.Progress()
	frames(m, 10)
	assert.Equal(t, p, m.anim.Progress())
	assert.Contains(t, m.View(), "PAUSED")
}

func TestRecentMovesAreCapped(t *testing.T) {
	m := newTestModel(t, strings.Repeat("R U ", 10))
	frames(m, 2000)
	require.True(t, m.anim.Finished())
	assert.Len(t, m.recent, recentMoves)
	assert.Equal(t, "U", m.recent[len(m.recent)-1])
}

func TestNewAnimatorFromScriptConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Source.Mode = "script"
	cfg.Source.Moves = "R2 L2"
	anim, err := newAnimator(cfg, logging.Discard())
	require.NoError(t, err)

	for i := 0; i < 1000 && !anim.Finished(); i++ {
		anim.Tick(16 * time.Millisecond)
	}
	assert.True(t, anim.Finished())
	assert.Equal(t, 2, anim.Count())
}

func TestNewAnimatorMixedCaseMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source:\n  mode: Script\n  moves: \"R2 L2\"\n"), 0o644))
	cfg, err := config.Load(path)
	require.NoError(t, err)

	anim, err := newAnimator(cfg, logging.Discard())
	require.NoError(t, err)
	for i := 0; i < 2000 && !anim.Finished(); i++ {
		anim.Tick(16 * time.Millisecond)
	}
	assert.True(t, anim.Finished(), "script mode stops after the last move")
	assert.Equal(t, 2, anim.Count())
}

func TestJournalErrorShownInStatus(t *testing.T) {
	m := newTestModel(t, "R U")
	var fail error
	m.journalErr = func() error { return fail }

	frames(m, 5)
	assert.NotContains(t, m.View(), "Error:")

	fail = errors.New("disk full")
	frames(m, 5)
	assert.Contains(t, m.View(), "Error: disk full")

	fail = nil
	frames(m, 5)
	assert.Contains(t, m.View(), "disk full", "the first failure sticks")
}

func TestScrambleNeverRepeatsFace(t *testing.T) {
	moves := scramble(5, 200)
	require.Len(t, moves, 200)
	for i := 1; i < len(moves); i++ {
		assert.NotEqual(t, moves[i-1].Face, moves[i].Face, "index %d", i)
	}
	assert.Equal(t, moves, scramble(5, 200))
}

func TestDecodeCommand(t *testing.T) {
	var out bytes.Buffer
	decodeCmd.SetOut(&out)
	require.NoError(t, runDecode(decodeCmd, []string{"U", "D'"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "+90")
	assert.Contains(t, lines[1], "Up clockwise")
	assert.Contains(t, lines[2], "-1")
	assert.Contains(t, lines[2], "+90", "D' undoes D, which is -90 on Y")

	assert.Error(t, runDecode(decodeCmd, []string{"Q"}))
}

func TestHistoryListsRecordedRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	dbPath = path
	t.Cleanup(func() { dbPath, historyStats = "", false })

	cfg := config.Default()
	cfg.Journal.Enabled = true
	cfg.Journal.Path = path
	cfg.Source.Mode = "script"
	cfg.Source.Moves = "R U R' U'"
	s, err := newSession(cfg, logging.Discard())
	require.NoError(t, err)
	for i := 0; i < 1000 && !s.anim.Finished(); i++ {
		s.anim.Tick(16 * time.Millisecond)
	}
	require.NoError(t, s.Close())

	db, err := journal.Open(path)
	require.NoError(t, err)
	runs, err := journal.NewRunRepository(db).List(1)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	require.Len(t, runs, 1)
	assert.Equal(t, 4, runs[0].MoveCount)

	var out bytes.Buffer
	historyCmd.SetOut(&out)
	require.NoError(t, runHistory(historyCmd, nil))
	assert.Contains(t, out.String(), runs[0].RunID[:8])

	out.Reset()
	require.NoError(t, runHistory(historyCmd, []string{runs[0].RunID[:8]}))
	assert.Contains(t, out.String(), "Right anti-clockwise")

	out.Reset()
	historyStats = true
	require.NoError(t, runHistory(historyCmd, []string{runs[0].RunID}))
	assert.Contains(t, out.String(), "Quarter turns:   4")
}
