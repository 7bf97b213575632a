// Package tween interpolates a value over time with an easing curve,
// advanced one frame at a time by the caller.
package tween

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Ease maps normalized time in [0, 1] to normalized progress in [0, 1].
// Every Ease in this package is monotonic and fixes 0 and 1.
type Ease func(t float64) float64

func Linear(t float64) float64 { return t }

func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

var eases = map[string]Ease{
	"linear":       Linear,
	"quad-in-out":  QuadInOut,
	"cubic-in-out": CubicInOut,
	"sine-in-out":  SineInOut,
}

// Lookup returns the named easing curve.
func Lookup(name string) (Ease, error) {
	e, ok := eases[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (known: %v)", name, Names())
	}
	return e, nil
}

// Names lists the known easing names, sorted.
func Names() []string {
	out := make([]string, 0, len(eases))
	for n := range eases {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Tween moves a value from From to To over Duration.
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Ease     Ease

	elapsed time.Duration
}

// New creates a tween. A nil ease means Linear.
func New(from, to float64, d time.Duration, ease Ease) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{From: from, To: to, Duration: d, Ease: ease}
}

// Update advances the tween by dt and returns the current value. Once done
// is true the value is exactly To.
func (tw *Tween) Update(dt time.Duration) (value float64, done bool) {
	if dt > 0 {
		tw.elapsed += dt
	}
	if tw.Duration <= 0 || tw.elapsed >= tw.Duration {
		tw.elapsed = tw.Duration
		return tw.To, true
	}
	t := float64(tw.elapsed) / float64(tw.Duration)
	return tw.From + (tw.To-tw.From)*tw.Ease(t), false
}

// Progress returns elapsed time as a fraction of Duration.
func (tw *Tween) Progress() float64 {
	if tw.Duration <= 0 {
		return 1
	}
	return math.Min(1, float64(tw.elapsed)/float64(tw.Duration))
}
