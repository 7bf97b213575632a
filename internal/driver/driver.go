// Package driver sequences moves: it draws a move, applies it to the logical
// cube, animates the matching layer through the pivot, and waits for the
// layer to settle before drawing the next one.
//
// The driver is an explicit state machine advanced by Tick, one call per
// rendered frame. Exactly one move is in flight at any time.
package driver

import (
	"context"
	"time"

	"github.com/SeamusWaldron/gocube_animator/internal/cube"
	"github.com/SeamusWaldron/gocube_animator/internal/notation"
	"github.com/SeamusWaldron/gocube_animator/internal/pivot"
	"github.com/SeamusWaldron/gocube_animator/internal/scene"
	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

// Phase is the driver's position in the move cycle.
type Phase int

const (
	PhaseDraw     Phase = iota // next Tick draws and starts a move
	PhaseRotating              // a layer is turning
	PhaseSettling              // waiting out the settle delay
	PhaseFinished              // the source ran out
)

func (p Phase) String() string {
	switch p {
	case PhaseDraw:
		return "draw"
	case PhaseRotating:
		return "rotating"
	case PhaseSettling:
		return "settling"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// EventKind says what happened to a move.
type EventKind int

const (
	MoveStarted   EventKind = iota // logical state updated, layer grouped and turning
	MoveCompleted                  // layer ungrouped and pivot reset
)

func (k EventKind) String() string {
	if k == MoveStarted {
		return "started"
	}
	return "completed"
}

// Event reports a move transition to observers.
type Event struct {
	Kind     EventKind
	Index    int // zero-based move number
	Move     types.Move
	Rotation types.Rotation
	Elapsed  time.Duration // driver clock at the transition
}

// Logger is the subset of a structured logger the driver writes to.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}

// Driver runs the move loop.
type Driver struct {
	source    notation.Source
	state     *cube.State
	pivot     *pivot.Pivot
	container scene.NodeID
	pieces    []scene.NodeID
	settle    time.Duration
	logger    Logger

	phase      Phase
	last       *types.Move
	current    types.Move
	rotation   types.Rotation
	done       <-chan struct{}
	settleLeft time.Duration
	count      int
	clock      time.Duration
	observers  []func(Event)
}

// New creates a driver. pieces are the renderables the pivot may group;
// container is where they live between moves.
func New(source notation.Source, state *cube.State, pv *pivot.Pivot, container scene.NodeID, pieces []scene.NodeID, opts ...Option) *Driver {
	d := &Driver{
		source:    source,
		state:     state,
		pivot:     pv,
		container: container,
		pieces:    append([]scene.NodeID(nil), pieces...),
		settle:    DefaultSettle,
		logger:    nopLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// OnMove registers an observer called synchronously on every move event.
func (d *Driver) OnMove(fn func(Event)) {
	d.observers = append(d.observers, fn)
}

// Phase returns the current phase.
func (d *Driver) Phase() Phase { return d.phase }

// Count returns how many moves have completed.
func (d *Driver) Count() int { return d.count }

// Current returns the move in flight, or the last one once it has completed.
func (d *Driver) Current() (types.Move, types.Rotation) { return d.current, d.rotation }

// Last returns the last completed move.
func (d *Driver) Last() (types.Move, bool) {
	if d.last == nil {
		return types.Move{}, false
	}
	return *d.last, true
}

// Elapsed returns the total time fed to Tick.
func (d *Driver) Elapsed() time.Duration { return d.clock }

// Progress returns how far the current rotation has run, in [0, 1].
func (d *Driver) Progress() float64 { return d.pivot.Progress() }

// AtBoundary reports whether no move is in flight, so the loop can stop
// without leaving a layer grouped.
func (d *Driver) AtBoundary() bool {
	return d.phase != PhaseRotating
}

func (d *Driver) emit(kind EventKind) {
	idx := d.count
	if kind == MoveCompleted {
		idx = d.count - 1
	}
	ev := Event{Kind: kind, Index: idx, Move: d.current, Rotation: d.rotation, Elapsed: d.clock}
	for _, fn := range d.observers {
		fn(ev)
	}
}

// Tick advances the loop by one frame of length dt.
func (d *Driver) Tick(dt time.Duration) {
	if dt > 0 {
		d.clock += dt
	}
	switch d.phase {
	case PhaseDraw:
		d.begin()
	case PhaseRotating:
		d.pivot.Tick(dt)
		select {
		case <-d.done:
			d.finish()
		default:
		}
	case PhaseSettling:
		d.settleLeft -= dt
		if d.settleLeft <= 0 {
			d.phase = PhaseDraw
			d.begin()
		}
	}
}

// begin draws the next move, updates the logical cube, then groups and
// starts turning the layer.
func (d *Driver) begin() {
	m, ok := d.source.Next(d.last)
	if !ok {
		d.phase = PhaseFinished
		d.logger.Info("move source exhausted", "moves", d.count)
		return
	}
	r := notation.Decode(m)
	d.current, d.rotation = m, r

	// Logical state first: it must never lag a rotation already on screen.
	d.state.ApplyRotation(r)

	d.pivot.Group(r.Axis, r.Layer, d.pieces)
	d.done = d.pivot.Rotate(r.Axis, r.Angle)
	d.phase = PhaseRotating

	d.logger.Debug("move started", "index", d.count, "move", m.Notation(), "axis", r.Axis.String(), "layer", r.Layer, "angle", r.Angle)
	d.emit(MoveStarted)
}

// finish hands the layer back to the container and starts the settle delay.
func (d *Driver) finish() {
	d.pivot.Ungroup(d.container)
	d.pivot.ResetPivot()

	m := d.current
	d.last = &m
	d.count++
	d.done = nil
	d.phase = PhaseSettling
	d.settleLeft = d.settle

	d.logger.Debug("move completed", "index", d.count-1, "move", m.Notation())
	d.emit(MoveCompleted)
}

// Run feeds frame durations from frames into Tick until the source is
// exhausted, frames is closed, or ctx is cancelled. Cancellation takes
// effect at the next move boundary so no layer is left grouped.
func (d *Driver) Run(ctx context.Context, frames <-chan time.Duration) error {
	cancelled := ctx.Done()
	for {
		if ctx.Err() != nil {
			if d.AtBoundary() {
				return ctx.Err()
			}
			cancelled = nil
		}
		select {
		case <-cancelled:
		case dt, ok := <-frames:
			if !ok {
				return nil
			}
			d.Tick(dt)
			if d.phase == PhaseFinished {
				return nil
			}
		}
	}
}
