package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"pomo/internal/activitylog"
	"pomo/internal/config"
	"pomo/internal/input"
	"pomo/internal/termstyle"
	"pomo/internal/timer"
	"pomo/internal/view"
)

// stdin is the key source; tests swap it for a pipe or pty.
var stdin = os.Stdin

// runTimer holds the terminal in raw mode for the whole cycle and restores
// it on every way out, including errors.
func runTimer(ctx context.Context, opts config.Options, in *os.File, out io.Writer) (err error) {
	if opts.NoColor {
		termstyle.SetEnabled(false)
	}

	log := activitylog.New(opts.LogEnabled(), opts.LogFile, "pomo")
	defer log.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	term, err := view.Acquire(in, out)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := term.Release(); rerr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", rerr)
		}
	}()

	queue := input.NewQueue()
	defer queue.Close()
	(&input.Reader{Src: in, Queue: queue, Backoff: input.DefaultBackoff}).Start()

	r := &timer.Runner{
		Source: queue,
		Term:   term,
		Tick:   config.TickPeriod,
		Poll:   config.PollPeriod,
		Log:    log,
	}
	log.SessionStart(opts.WorkSec, opts.BreakSec)
	defer func() {
		work, breaks := r.Completed()
		log.SessionSummary(work, breaks)
	}()

	return r.Cycle(ctx, timer.Plan{
		WorkSec:     opts.WorkSec,
		BreakSec:    opts.BreakSec,
		Work:        term.Timer(view.Work),
		Break:       term.Timer(view.Break),
		BreakPrompt: term.Prompt(view.Break),
		WorkPrompt:  term.Prompt(view.Work),
	})
}
