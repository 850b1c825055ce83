package activitylog

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// Logger writes structured JSONL entries describing a timer run.
// All methods are safe for concurrent use. When disabled (w is nil),
// all methods are no-ops.
type Logger struct {
	mu        sync.Mutex
	w         *os.File
	lock      *flock.Flock
	actor     string
	sessionID string
}

// New creates a Logger that appends to logPath. If enabled is false or the
// file cannot be opened, returns a no-op logger (safe to call methods on).
// Every run gets a fresh session ID so several runs can share one file.
func New(enabled bool, logPath, actor string) *Logger {
	if !enabled {
		return &Logger{}
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &Logger{}
	}
	return &Logger{
		w:         f,
		lock:      flock.New(logPath + ".lock"),
		actor:     actor,
		sessionID: uuid.New().String(),
	}
}

// Nop returns a disabled logger. All methods are no-ops.
func Nop() *Logger {
	return &Logger{}
}

// SessionID returns the ID stamped on every entry, or "" when disabled.
func (l *Logger) SessionID() string {
	return l.sessionID
}

// entry is the common envelope for all log lines.
type entry struct {
	Timestamp string `json:"ts"`
	Actor     string `json:"actor"`
	SessionID string `json:"session_id"`
	Event     string `json:"event"`
}

// SessionStart logs the configured durations at startup.
func (l *Logger) SessionStart(workSec, breakSec uint32) {
	l.log(struct {
		entry
		WorkSec  uint32 `json:"work_sec"`
		BreakSec uint32 `json:"break_sec"`
	}{
		entry:    l.entry("session_start"),
		WorkSec:  workSec,
		BreakSec: breakSec,
	})
}

// PhaseStart logs entry into a phase. seconds is zero for prompts.
func (l *Logger) PhaseStart(phase string, seconds uint32) {
	l.log(struct {
		entry
		Phase   string `json:"phase"`
		Seconds uint32 `json:"seconds,omitempty"`
	}{
		entry:   l.entry("phase_start"),
		Phase:   phase,
		Seconds: seconds,
	})
}

// PhaseEnd logs that a phase finished, either normally or by quit.
func (l *Logger) PhaseEnd(phase string, quited bool) {
	l.log(struct {
		entry
		Phase  string `json:"phase"`
		Quited bool   `json:"quited"`
	}{
		entry:  l.entry("phase_end"),
		Phase:  phase,
		Quited: quited,
	})
}

// Pause logs a pause toggle during a countdown.
func (l *Logger) Pause(phase string, remaining uint32, paused bool) {
	event := "resume"
	if paused {
		event = "pause"
	}
	l.log(struct {
		entry
		Phase     string `json:"phase"`
		Remaining uint32 `json:"remaining"`
	}{
		entry:     l.entry(event),
		Phase:     phase,
		Remaining: remaining,
	})
}

// Quit logs an explicit quit and where it happened.
func (l *Logger) Quit(phase string, remaining uint32) {
	l.log(struct {
		entry
		Phase     string `json:"phase"`
		Remaining uint32 `json:"remaining,omitempty"`
	}{
		entry:     l.entry("quit"),
		Phase:     phase,
		Remaining: remaining,
	})
}

// SessionSummary logs how many countdowns ran to completion.
func (l *Logger) SessionSummary(workDone, breaksDone int) {
	l.log(struct {
		entry
		WorkDone   int `json:"work_done"`
		BreaksDone int `json:"breaks_done"`
	}{
		entry:      l.entry("session_summary"),
		WorkDone:   workDone,
		BreaksDone: breaksDone,
	})
}

// Close closes the underlying file.
func (l *Logger) Close() error {
	if l.w == nil {
		return nil
	}
	return l.w.Close()
}

func (l *Logger) entry(event string) entry {
	return entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Actor:     l.actor,
		SessionID: l.sessionID,
		Event:     event,
	}
}

func (l *Logger) log(v any) {
	if l.w == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	data = append(data, '\n')
	l.mu.Lock()
	defer l.mu.Unlock()
	// Other pomo processes may append to the same file.
	if err := l.lock.Lock(); err == nil {
		defer l.lock.Unlock()
	}
	l.w.Write(data)
}
