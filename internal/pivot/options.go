package pivot

import (
	"time"

	"github.com/SeamusWaldron/gocube_animator/internal/tween"
)

// DefaultDuration is how long one layer rotation takes.
const DefaultDuration = 400 * time.Millisecond

// Option configures a Pivot.
type Option func(*config)

type config struct {
	duration time.Duration
	ease     tween.Ease
	spacing  float64
	snap     bool
}

func defaultConfig() config {
	return config{
		duration: DefaultDuration,
		ease:     tween.QuadInOut,
		spacing:  1,
		snap:     true,
	}
}

// WithDuration sets how long each rotation takes.
func WithDuration(d time.Duration) Option {
	return func(c *config) {
		c.duration = d
	}
}

// WithEase sets the easing curve of each rotation.
func WithEase(e tween.Ease) Option {
	return func(c *config) {
		if e != nil {
			c.ease = e
		}
	}
}

// WithSpacing sets the distance between neighbouring cubelet centers.
// Layer selection and snapping are measured in this unit.
func WithSpacing(s float64) Option {
	return func(c *config) {
		if s > 0 {
			c.spacing = s
		}
	}
}

// WithSnap enables or disables grid snapping on Ungroup.
func WithSnap(enabled bool) Option {
	return func(c *config) {
		c.snap = enabled
	}
}
