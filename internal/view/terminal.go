package view

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Terminal is the screen the timer draws on. When acquired from a TTY it
// holds raw mode until Release.
type Terminal struct {
	w   io.Writer
	out *termenv.Output

	fd    int
	state *term.State // original mode; nil when raw mode was never entered

	once       sync.Once
	releaseErr error
}

// Acquire puts in into raw mode so single keypresses reach the key reader
// unbuffered and unechoed, and hides the cursor on out.
func Acquire(in *os.File, out io.Writer) (*Terminal, error) {
	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("set raw mode: %w", err)
	}
	t := New(out)
	t.fd = fd
	t.state = state
	t.out.HideCursor()
	return t, nil
}

// New returns a Terminal that writes to out without touching terminal modes.
func New(out io.Writer) *Terminal {
	return &Terminal{
		w:   out,
		out: termenv.NewOutput(out),
	}
}

// Release restores the original terminal mode and cursor. Only the first
// call does anything; later calls return the same result.
func (t *Terminal) Release() error {
	t.once.Do(func() {
		t.out.ShowCursor()
		io.WriteString(t.w, "\r\n")
		if t.state != nil {
			t.releaseErr = term.Restore(t.fd, t.state)
		}
	})
	return t.releaseErr
}

// overwrite replaces the current line with s. Raw mode does not translate
// \n, so lines are always rewritten from column zero.
func (t *Terminal) overwrite(s string) error {
	_, err := io.WriteString(t.w, "\r"+termenv.CSI+termenv.EraseEntireLineSeq+s)
	return err
}
