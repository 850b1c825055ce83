package view

import (
	"pomo/internal/termstyle"
)

// Kind selects the work or break variant of a view.
type Kind int

const (
	Work Kind = iota
	Break
)

const (
	timerHint       = "[p] pause  [q] quit"
	breakPromptText = "Break time! Press [o] to start the break, [q] to quit."
	workPromptText  = "Break is over. Press [o] to start working, [q] to quit."
)

// TimerView renders a running countdown.
type TimerView struct {
	t    *Terminal
	kind Kind
}

// Timer returns the countdown view for kind.
func (t *Terminal) Timer(kind Kind) *TimerView {
	return &TimerView{t: t, kind: kind}
}

// Render draws remaining (MM:SS) in place of the previous frame.
func (v *TimerView) Render(remaining string) error {
	label := termstyle.Work("Work")
	if v.kind == Break {
		label = termstyle.Break("Break")
	}
	return v.t.overwrite(label + " " + termstyle.Clock(remaining) + "  " + termstyle.Hint(timerHint))
}

// PromptView renders the confirm message shown between countdowns.
type PromptView struct {
	t    *Terminal
	kind Kind
}

// Prompt returns the view asking to start the next phase. Break asks to
// start the break, Work asks to start working again.
func (t *Terminal) Prompt(kind Kind) *PromptView {
	return &PromptView{t: t, kind: kind}
}

func (v *PromptView) Show() error {
	text := breakPromptText
	if v.kind == Work {
		text = workPromptText
	}
	return v.t.overwrite(termstyle.Prompt(text))
}
