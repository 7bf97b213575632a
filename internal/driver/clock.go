package driver

import (
	"context"
	"time"
)

// Frames emits the measured time between frames at roughly fps frames per
// second until ctx is done, then closes the channel.
func Frames(ctx context.Context, fps int) <-chan time.Duration {
	if fps <= 0 {
		fps = 60
	}
	out := make(chan time.Duration)
	go func() {
		defer close(out)
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()

		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				dt := now.Sub(last)
				last = now
				select {
				case out <- dt:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
