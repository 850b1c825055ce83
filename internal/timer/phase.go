package timer

// Phase is one state of the work/break cycle.
type Phase int

const (
	WorkTimer Phase = iota
	BreakPrompt
	BreakTimer
	WorkPrompt
)

func (p Phase) String() string {
	switch p {
	case WorkTimer:
		return "work_timer"
	case BreakPrompt:
		return "break_prompt"
	case BreakTimer:
		return "break_timer"
	case WorkPrompt:
		return "work_prompt"
	default:
		return "unknown"
	}
}

// Next returns the phase entered after p completes normally.
func (p Phase) Next() Phase {
	switch p {
	case WorkTimer:
		return BreakPrompt
	case BreakPrompt:
		return BreakTimer
	case BreakTimer:
		return WorkPrompt
	default:
		return WorkTimer
	}
}

// IsCountdown reports whether p is a timed phase rather than a prompt.
func (p Phase) IsCountdown() bool {
	return p == WorkTimer || p == BreakTimer
}
