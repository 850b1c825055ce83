package timer

import (
	"context"
	"errors"
	"time"

	"pomo/internal/input"
)

// fakeClock never actually sleeps. It records every requested duration and
// calls onSleep with the 1-based sleep count before returning.
type fakeClock struct {
	sleeps  []time.Duration
	onSleep func(n int)
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	if c.onSleep != nil {
		c.onSleep(len(c.sleeps))
	}
	return ctx.Err()
}

type fakeTerm struct {
	releases int
	err      error
}

func (t *fakeTerm) Release() error {
	t.releases++
	return t.err
}

// recorder collects every render and prompt in call order.
type recorder struct {
	events []string
}

type recordingView struct {
	rec    *recorder
	name   string
	err    error
	onCall func(n int)
	calls  int
}

func (v *recordingView) Render(remaining string) error {
	v.calls++
	if v.err != nil {
		return v.err
	}
	v.rec.events = append(v.rec.events, v.name+" "+remaining)
	if v.onCall != nil {
		v.onCall(v.calls)
	}
	return nil
}

type recordingPrompt struct {
	rec    *recorder
	name   string
	err    error
	onShow func()
	shows  int
}

func (p *recordingPrompt) Show() error {
	p.shows++
	if p.err != nil {
		return p.err
	}
	p.rec.events = append(p.rec.events, "prompt "+p.name)
	if p.onShow != nil {
		p.onShow()
	}
	return nil
}

func newTestRunner(clock *fakeClock) (*Runner, *input.Queue, *fakeTerm) {
	q := input.NewQueue()
	term := &fakeTerm{}
	return &Runner{Source: q, Term: term, Clock: clock}, q, term
}

var errBoom = errors.New("write /dev/tty: input/output error")

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
