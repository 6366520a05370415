package schedule

import (
	"context"
	"time"
)

// Run advances clock in step with wall time, once per frame, until ctx is
// done. afterFrame, if set, is called after each advance; it is where a
// surface presents what the frame drew.
func Run(ctx context.Context, clock *Clock, frame time.Duration, afterFrame func()) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			clock.Advance(now.Sub(last))
			last = now

			if afterFrame != nil {
				afterFrame()
			}
		}
	}
}
