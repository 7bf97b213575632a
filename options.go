package gocube

import (
	"time"

	"github.com/SeamusWaldron/gocube_animator/internal/driver"
	"github.com/SeamusWaldron/gocube_animator/internal/pivot"
)

// Option configures an Animator.
type Option func(*config)

// Logger receives driver progress messages. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

type config struct {
	duration time.Duration
	settle   time.Duration
	easing   string
	spacing  float64
	snap     bool
	seed     uint64
	script   []Move
	loop     bool
	logger   Logger
}

func defaultConfig() *config {
	return &config{
		duration: pivot.DefaultDuration,
		settle:   driver.DefaultSettle,
		easing:   "quad-in-out",
		spacing:  1,
		snap:     true,
	}
}

// WithDuration sets how long one layer rotation takes.
func WithDuration(d time.Duration) Option {
	return func(c *config) {
		c.duration = d
	}
}

// WithSettleDelay sets the pause between one move completing and the next
// starting.
func WithSettleDelay(d time.Duration) Option {
	return func(c *config) {
		c.settle = d
	}
}

// WithEasing selects the rotation easing curve by name: linear,
// quad-in-out, cubic-in-out or sine-in-out.
func WithEasing(name string) Option {
	return func(c *config) {
		c.easing = name
	}
}

// WithSpacing sets the distance between neighbouring cubelet centers.
func WithSpacing(s float64) Option {
	return func(c *config) {
		c.spacing = s
	}
}

// WithSnap enables or disables snapping cubelet transforms onto the grid
// after each move. Enabled by default.
func WithSnap(enabled bool) Option {
	return func(c *config) {
		c.snap = enabled
	}
}

// WithSeed seeds the random move source. Zero (the default) seeds from the
// clock. Ignored when a script is set.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithScript plays moves in order instead of drawing random ones. With loop
// the script restarts when it runs out; otherwise the animator finishes.
func WithScript(moves []Move, loop bool) Option {
	return func(c *config) {
		c.script = append([]Move(nil), moves...)
		c.loop = loop
	}
}

// WithLogger sets the logger used for move progress.
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
