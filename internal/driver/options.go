package driver

import "time"

// DefaultSettle is the pause between the end of one move and the next.
const DefaultSettle = 350 * time.Millisecond

// Option configures a Driver.
type Option func(*Driver)

// WithSettle sets the pause between moves.
func WithSettle(d time.Duration) Option {
	return func(dr *Driver) {
		if d >= 0 {
			dr.settle = d
		}
	}
}

// WithLogger sets where the driver logs move transitions.
func WithLogger(l Logger) Option {
	return func(dr *Driver) {
		if l != nil {
			dr.logger = l
		}
	}
}
