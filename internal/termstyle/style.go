package termstyle

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// enabled tracks whether ANSI styling is active.
// Defaults to true if stdout is a TTY.
var enabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// SetEnabled overrides the auto-detected TTY check.
func SetEnabled(on bool) {
	enabled = on
}

// Enabled returns whether styling is currently active.
func Enabled() bool {
	return enabled
}

func profile() termenv.Profile {
	if !enabled {
		return termenv.Ascii
	}
	return termenv.ANSI
}

func style(s string) termenv.Style {
	return profile().String(s)
}

func color(c string) termenv.Color {
	return profile().Color(c)
}

// Work renders the label of a work countdown.
func Work(s string) string { return style(s).Foreground(color("1")).Bold().String() }

// Break renders the label of a break countdown.
func Break(s string) string { return style(s).Foreground(color("2")).Bold().String() }

// Clock renders the remaining time.
func Clock(s string) string { return style(s).Bold().String() }

// Prompt renders a confirm message between phases.
func Prompt(s string) string { return style(s).Foreground(color("3")).String() }

// Hint renders key help.
func Hint(s string) string { return style(s).Faint().String() }
