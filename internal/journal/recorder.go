package journal

import (
	"sync"

	"github.com/SeamusWaldron/gocube_animator/internal/driver"
)

// Recorder writes completed moves of one run to the journal. Attach Observe
// to a driver with OnMove.
type Recorder struct {
	moves *MoveRepository
	runs  *RunRepository
	runID string

	mu  sync.Mutex
	err error
}

// NewRecorder starts a run in db and returns a recorder for it.
func NewRecorder(db *DB, mode string, seed uint64, script, appVersion string) (*Recorder, error) {
	runs := NewRunRepository(db)
	id, err := runs.Create(mode, seed, script, appVersion)
	if err != nil {
		return nil, err
	}
	return &Recorder{moves: NewMoveRepository(db), runs: runs, runID: id}, nil
}

// RunID returns the ID of the run being recorded.
func (r *Recorder) RunID() string { return r.runID }

// Observe stores MoveCompleted events. The first write error is kept and
// later events are dropped; the animation itself is never interrupted.
func (r *Recorder) Observe(ev driver.Event) {
	if ev.Kind != driver.MoveCompleted {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return
	}
	_, r.err = r.moves.Create(r.runID, ev.Index, ev.Move, ev.Rotation, ev.Elapsed.Milliseconds())
}

// Err returns the first write error, if any.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Close ends the run.
func (r *Recorder) Close(solved bool) error {
	if err := r.runs.End(r.runID, solved); err != nil {
		return err
	}
	return r.Err()
}
