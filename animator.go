package gocube

import (
	"context"
	"fmt"
	"time"

	"github.com/SeamusWaldron/gocube_animator/internal/cube"
	"github.com/SeamusWaldron/gocube_animator/internal/driver"
	"github.com/SeamusWaldron/gocube_animator/internal/notation"
	"github.com/SeamusWaldron/gocube_animator/internal/pivot"
	"github.com/SeamusWaldron/gocube_animator/internal/render"
	"github.com/SeamusWaldron/gocube_animator/internal/scene"
	"github.com/SeamusWaldron/gocube_animator/internal/tween"
)

// MoveEvent reports a move starting or completing.
type MoveEvent = driver.Event

// Facelets holds the sticker colors of each face, indexed by face then
// by position in reading order.
type Facelets = cube.Facelets

// CubeState is the logical cube: where each piece is and how it is turned.
type CubeState = cube.State

const (
	MoveStarted   = driver.MoveStarted
	MoveCompleted = driver.MoveCompleted
)

// Animator wires a logical cube, a scene graph and a move driver together.
// It is not safe for concurrent use; call it from one frame loop.
type Animator struct {
	graph  *scene.Graph
	model  *render.Model
	state  *cube.State
	pivot  *pivot.Pivot
	driver *driver.Driver
	script bool
}

// NewAnimator builds a solved cube and a driver ready for its first Tick.
func NewAnimator(opts ...Option) (*Animator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	ease, err := tween.Lookup(cfg.easing)
	if err != nil {
		return nil, err
	}
	if cfg.duration <= 0 {
		return nil, fmt.Errorf("gocube: rotation duration must be positive, got %v", cfg.duration)
	}
	if cfg.spacing <= 0 {
		return nil, fmt.Errorf("gocube: spacing must be positive, got %v", cfg.spacing)
	}

	g := scene.New()
	model, err := render.NewModel(g, cfg.spacing)
	if err != nil {
		return nil, fmt.Errorf("failed to build cube model: %w", err)
	}
	pv, err := pivot.New(g, g.Root(),
		pivot.WithDuration(cfg.duration),
		pivot.WithEase(ease),
		pivot.WithSpacing(cfg.spacing),
		pivot.WithSnap(cfg.snap),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create pivot: %w", err)
	}

	var src notation.Source
	if cfg.script != nil {
		src = notation.NewScriptSource(cfg.script, cfg.loop)
	} else {
		seed := cfg.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		src = notation.NewRandomSource(seed)
	}

	state := cube.New()
	dopts := []driver.Option{driver.WithSettle(cfg.settle)}
	if cfg.logger != nil {
		dopts = append(dopts, driver.WithLogger(cfg.logger))
	}

	return &Animator{
		graph:  g,
		model:  model,
		state:  state,
		pivot:  pv,
		driver: driver.New(src, state, pv, model.Container, model.Nodes(), dopts...),
		script: cfg.script != nil,
	}, nil
}

// OnMove registers a callback for move events. Callbacks run on the
// goroutine calling Tick.
func (a *Animator) OnMove(fn func(MoveEvent)) {
	a.driver.OnMove(fn)
}

// Tick advances the animation by one frame.
func (a *Animator) Tick(dt time.Duration) {
	a.driver.Tick(dt)
}

// Run ticks at fps frames per second until ctx is cancelled or a
// non-looping script finishes. Cancellation waits for the move in flight
// to complete.
func (a *Animator) Run(ctx context.Context, fps int) error {
	// The frame clock outlives ctx so an in-flight move can finish.
	frameCtx, stop := context.WithCancel(context.Background())
	defer stop()
	return a.driver.Run(ctx, driver.Frames(frameCtx, fps))
}

// Finished reports whether a non-looping script has run out.
func (a *Animator) Finished() bool {
	return a.driver.Phase() == driver.PhaseFinished
}

// AtBoundary reports whether no layer is mid-turn, so the animation can
// stop without leaving cubelets grouped under the pivot.
func (a *Animator) AtBoundary() bool {
	return a.driver.AtBoundary()
}

// Phase names the driver phase: draw, rotating, settling or finished.
func (a *Animator) Phase() string {
	return a.driver.Phase().String()
}

// Count returns the number of completed moves.
func (a *Animator) Count() int {
	return a.driver.Count()
}

// Current returns the move in flight, or the last one to complete.
func (a *Animator) Current() (Move, Rotation) {
	return a.driver.Current()
}

// Progress returns how far the current rotation has run, in [0, 1].
func (a *Animator) Progress() float64 {
	return a.driver.Progress()
}

// Elapsed returns the animation clock.
func (a *Animator) Elapsed() time.Duration {
	return a.driver.Elapsed()
}

// Solved reports whether the logical cube is solved.
func (a *Animator) Solved() bool {
	return a.state.IsSolved()
}

// Facelets returns the sticker colors as drawn: the scene graph projected
// onto the six faces, including any layer part-way through a turn.
func (a *Animator) Facelets() Facelets {
	return a.model.Facelets()
}

// State returns a copy of the logical cube.
func (a *Animator) State() *CubeState {
	return a.state.Clone()
}

// Net renders the visible cube as a colored unfolded net with cell-wide
// stickers.
func (a *Animator) Net(cell int) string {
	return render.Net(a.model.Facelets(), cell)
}

// Verify checks that the scene matches the logical cube. It only holds
// between moves; mid-rotation the logical cube is already one move ahead.
func (a *Animator) Verify() error {
	if err := a.state.Validate(); err != nil {
		return err
	}
	for _, c := range a.model.Cubelets {
		p, ok := a.state.Locate(c.Home)
		if !ok {
			return fmt.Errorf("gocube: piece %v missing from cube state", c.Home)
		}
		if got := a.model.GridPosition(c); got != p.Position {
			return fmt.Errorf("gocube: cubelet %v drawn at %v, cube state has %v", c.Home, got, p.Position)
		}
		if got := a.model.GridOrientation(c); got != p.Orientation {
			return fmt.Errorf("gocube: cubelet %v orientation differs from cube state", c.Home)
		}
	}
	return nil
}
