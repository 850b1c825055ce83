package timer

import (
	"context"
	"fmt"
)

// Plan describes one work/break cycle and the views used for each phase.
type Plan struct {
	WorkSec  uint32
	BreakSec uint32

	Work        Renderer
	Break       Renderer
	BreakPrompt Prompt
	WorkPrompt  Prompt
}

// Cycle runs WorkTimer → BreakPrompt → BreakTimer → WorkPrompt and around
// again until a phase reports quit (nil is returned) or fails.
func (r *Runner) Cycle(ctx context.Context, plan Plan) error {
	r.phase = WorkTimer
	for {
		quited, err := r.runPhase(ctx, plan)
		if err != nil {
			return fmt.Errorf("%s: %w", r.phase, err)
		}
		r.log().PhaseEnd(r.phase.String(), quited)
		if quited {
			return nil
		}
		switch r.phase {
		case WorkTimer:
			r.workDone++
		case BreakTimer:
			r.breaksDone++
		}
		r.phase = r.phase.Next()
	}
}

func (r *Runner) runPhase(ctx context.Context, plan Plan) (bool, error) {
	switch r.phase {
	case WorkTimer:
		r.log().PhaseStart(r.phase.String(), plan.WorkSec)
		return r.Countdown(ctx, plan.WorkSec, plan.Work)
	case BreakPrompt:
		r.log().PhaseStart(r.phase.String(), 0)
		return r.Interval(ctx, plan.BreakPrompt)
	case BreakTimer:
		r.log().PhaseStart(r.phase.String(), plan.BreakSec)
		return r.Countdown(ctx, plan.BreakSec, plan.Break)
	default:
		r.log().PhaseStart(r.phase.String(), 0)
		return r.Interval(ctx, plan.WorkPrompt)
	}
}
