package timer

import (
	"context"
	"fmt"
	"time"
)

// FormatClock renders seconds as MM:SS. Minutes are not wrapped into hours,
// so 3600 renders as "60:00" and 6000 as "100:00".
func FormatClock(seconds uint32) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Clock sleeps between ticks. Sleep returns ctx.Err() if ctx is cancelled
// before d has elapsed.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock sleeps on the wall clock.
type RealClock struct{}

func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
