// 13 Oct 2026

package dmat

import (
	"sync"

	"github.com/andrew-torda/qcontact/pdb/cmmn"
	"github.com/andrew-torda/qcontact/pkg/progress"
	"github.com/andrew-torda/qcontact/traj"
)

// FrameFunc does the work for one sampled frame. k is the position in
// the list of sampled frames, so results can go straight into slot k.
type FrameFunc func(k int, s *cmmn.Structure) error

// pool is a set of workers pulling slot numbers off a channel. Each
// slot is written by exactly one worker.
type pool struct {
	wg   *sync.WaitGroup
	jobs chan int
}

func newFrameWorkers(t traj.Trajectory, frames []int, fn FrameFunc,
	errs []error, prog *progress.Progress, numWorkers int) pool {
	jobs := make(chan int, numWorkers*2)
	wg := &sync.WaitGroup{}
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range jobs {
				s, err := t.Frame(frames[k])
				if err == nil {
					err = fn(k, s)
				}
				errs[k] = err
				prog.JobDone(err)
			}
		}()
	}
	return pool{wg, jobs}
}

func (p pool) enqueue(k int) { p.jobs <- k }

// done waits for the workers to finish everything queued.
func (p pool) done() {
	close(p.jobs)
	p.wg.Wait()
}
