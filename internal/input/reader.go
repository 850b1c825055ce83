package input

import (
	"errors"
	"io"
	"os"
	"time"
)

// DefaultBackoff is how long the reader waits after a failed read before
// trying again.
const DefaultBackoff = 10 * time.Millisecond

// Reader reads raw single-byte keypresses from Src and publishes the
// recognized ones to Queue. It runs for the lifetime of the process; there
// is no cancellation other than Src reaching EOF or the queue closing.
type Reader struct {
	Src     io.Reader
	Queue   *Queue
	Backoff time.Duration

	// OnError, if set, is called for each swallowed read error.
	OnError func(error)
}

// Start runs the reader on its own goroutine.
func (r *Reader) Start() {
	go r.Run()
}

// Run blocks reading Src until it is exhausted or the queue is closed.
func (r *Reader) Run() {
	buf := make([]byte, 1)
	for {
		n, err := r.Src.Read(buf)
		if n > 0 {
			if a := FromByte(buf[0]); a != None {
				if !r.Queue.Push(a) {
					return
				}
			}
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
			return
		}
		// A failed read is just a cycle with no action.
		if r.OnError != nil {
			r.OnError(err)
		}
		if r.Backoff > 0 {
			time.Sleep(r.Backoff)
		}
	}
}
