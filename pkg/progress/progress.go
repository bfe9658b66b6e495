// 13 Oct 2026

// Package progress counts jobs as workers finish them and prints a
// running total. Jobs report from any goroutine.
package progress

import (
	"fmt"
	"io"
)

// Progress collects results on a channel. The zero value is not
// usable, get one from New.
type Progress struct {
	errs   chan error
	done   chan struct{}
	nerr   int
	nfinal int
}

// New starts the counting goroutine. Output goes to w. A nil w
// means count quietly.
func New(total int, w io.Writer) *Progress {
	if w == nil {
		w = io.Discard
	}
	p := &Progress{errs: make(chan error), done: make(chan struct{})}
	go func() {
		completed := 0
		for err := range p.errs {
			if err == nil {
				completed++
			} else {
				p.nerr++
				fmt.Fprintf(w, "\r%s\n", err)
			}
			ratio := 100.0
			if total > 0 {
				ratio = 100.0 * float64(completed) / float64(total)
			}
			fmt.Fprintf(w, "\r%d of %d frames (%0.1f%% done, %d errors)",
				completed, total, ratio, p.nerr)
		}
		if completed+p.nerr > 0 {
			fmt.Fprintln(w)
		}
		p.nfinal = completed
		close(p.done)
	}()
	return p
}

// JobDone says one job has finished, successfully if err is nil.
func (p *Progress) JobDone(err error) { p.errs <- err }

// Close waits for the counter to finish. Call it once, after every
// JobDone has returned.
func (p *Progress) Close() {
	close(p.errs)
	<-p.done
}

// Counts returns the number of successful and failed jobs. It is only
// meaningful after Close.
func (p *Progress) Counts() (ok, failed int) { return p.nfinal, p.nerr }
