package timer

import (
	"context"
	"fmt"
	"time"

	"pomo/internal/activitylog"
	"pomo/internal/input"
)

const (
	// DefaultTick is the countdown period.
	DefaultTick = time.Second
	// DefaultPoll is how often a prompt checks for input.
	DefaultPoll = 100 * time.Millisecond
)

// Source is the consuming end of the action queue. TryPop must not block.
type Source interface {
	TryPop() (input.Action, bool)
}

// Terminal is the exclusive terminal mode held for the whole run.
// Release must be safe to call more than once.
type Terminal interface {
	Release() error
}

// Renderer draws the remaining time of a countdown, already formatted as MM:SS.
type Renderer interface {
	Render(remaining string) error
}

// Prompt draws the message shown while waiting for the user to confirm
// the next phase.
type Prompt interface {
	Show() error
}

// Runner owns the countdown state machine. Its zero value is not usable;
// Source and Term are required.
type Runner struct {
	Source Source
	Term   Terminal
	Clock  Clock
	Tick   time.Duration
	Poll   time.Duration
	Log    *activitylog.Logger

	phase      Phase
	workDone   int
	breaksDone int
}

func (r *Runner) clock() Clock {
	if r.Clock == nil {
		return RealClock{}
	}
	return r.Clock
}

func (r *Runner) tick() time.Duration {
	if r.Tick <= 0 {
		return DefaultTick
	}
	return r.Tick
}

func (r *Runner) poll() time.Duration {
	if r.Poll <= 0 {
		return DefaultPoll
	}
	return r.Poll
}

func (r *Runner) log() *activitylog.Logger {
	if r.Log == nil {
		return activitylog.Nop()
	}
	return r.Log
}

// Completed returns how many work and break countdowns ran to zero.
func (r *Runner) Completed() (work, breaks int) {
	return r.workDone, r.breaksDone
}

// quit releases the terminal on the way out of a phase. A release failure
// is returned alongside quited=true.
func (r *Runner) quit(remaining uint32) (bool, error) {
	r.log().Quit(r.phase.String(), remaining)
	if err := r.Term.Release(); err != nil {
		return true, fmt.Errorf("restore terminal: %w", err)
	}
	return true, nil
}

// Countdown counts total seconds down to zero, rendering once per tick
// while not paused. At most one action is consumed per tick. Quit (or
// ctx cancellation) releases the terminal and returns true without
// rendering or decrementing the current second.
func (r *Runner) Countdown(ctx context.Context, total uint32, view Renderer) (bool, error) {
	remaining := total
	paused := false
	for remaining != 0 {
		if a, ok := r.Source.TryPop(); ok {
			switch a {
			case input.Quit:
				return r.quit(remaining)
			case input.Pause:
				paused = !paused
				r.log().Pause(r.phase.String(), remaining, paused)
			}
		}
		if !paused {
			if err := view.Render(FormatClock(remaining)); err != nil {
				return false, err
			}
			remaining--
		}
		if err := r.clock().Sleep(ctx, r.tick()); err != nil {
			return r.quit(remaining)
		}
	}
	return false, nil
}

// Interval shows prompt once and waits for Ok or Quit, polling at the
// prompt cadence. Everything else is ignored.
func (r *Runner) Interval(ctx context.Context, prompt Prompt) (bool, error) {
	if err := prompt.Show(); err != nil {
		return false, err
	}
	for {
		if a, ok := r.Source.TryPop(); ok {
			switch a {
			case input.Ok:
				return false, nil
			case input.Quit:
				return r.quit(0)
			}
		}
		if err := r.clock().Sleep(ctx, r.poll()); err != nil {
			return r.quit(0)
		}
	}
}
