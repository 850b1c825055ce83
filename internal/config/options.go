package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultWorkSec  uint32 = 1500
	DefaultBreakSec uint32 = 300

	// TickPeriod is the countdown resolution.
	TickPeriod = time.Second
	// PollPeriod is how often a confirm prompt checks for input.
	PollPeriod = 100 * time.Millisecond
)

// Options is everything a run is configured with. It only ever comes from
// command-line flags.
type Options struct {
	WorkSec  uint32
	BreakSec uint32

	// LogFile is an optional JSONL activity log. Empty disables logging.
	LogFile string
	NoColor bool
}

// Defaults returns the options used when no flags are given.
func Defaults() Options {
	return Options{
		WorkSec:  DefaultWorkSec,
		BreakSec: DefaultBreakSec,
	}
}

// Validate checks options that flag parsing alone cannot.
func (o Options) Validate() error {
	if o.LogFile == "" {
		return nil
	}
	dir := filepath.Dir(o.LogFile)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("log file directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("log file directory %q is not a directory", dir)
	}
	if info, err := os.Stat(o.LogFile); err == nil && info.IsDir() {
		return fmt.Errorf("log file %q is a directory", o.LogFile)
	}
	return nil
}

// LogEnabled reports whether an activity log was requested.
func (o Options) LogEnabled() bool {
	return o.LogFile != ""
}
