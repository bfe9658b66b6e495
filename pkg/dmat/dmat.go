// 13 Oct 2026

// Package dmat builds per frame distance and contact matrices over a
// trajectory. Frames are independent, so they are farmed out to
// workers and the results put back in frame order.
package dmat

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/qcontact/pdb/cmmn"
	"github.com/andrew-torda/qcontact/pdb/sel"
	"github.com/andrew-torda/qcontact/pkg/geom"
	"github.com/andrew-torda/qcontact/pkg/progress"
	"github.com/andrew-torda/qcontact/traj"
	"gonum.org/v1/gonum/mat"
)

// ErrSelMismatch means a frame's selection did not have the same atoms
// as the first frame.
var ErrSelMismatch = errors.New("selection atom count differs between frames")

// Options says which atoms and frames to use. The zero value takes
// every atom of every frame, with one worker per CPU.
type Options struct {
	Sel      sel.Sel
	Range    traj.Range
	Flatten  bool      // one row per frame instead of a matrix
	NWorker  int       // < 1 means runtime.NumCPU()
	Progress io.Writer // nil for no progress output
}

// Stack is the result of a frame loop. Mats has one matrix per sampled
// frame, unless the caller asked for Flatten. Then Flat has one row of
// length n*n per frame and Mats is nil.
type Stack struct {
	Frames []int
	Times  []float64 // ps, or 0 when the trajectory does not know
	Mats   []*mat.Dense
	Flat   *mat.Dense
	NAtom  int
}

func (o *Options) nworker() int {
	if o.NWorker < 1 {
		return runtime.NumCPU()
	}
	return o.NWorker
}

// Frames returns the frame indices picked by the range. No frames is
// an error, since nothing downstream can use an empty series.
func Frames(t traj.Trajectory, r traj.Range) ([]int, error) {
	frames, err := r.Indices(t.Len())
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("range %+v of %d frames: %w", r, t.Len(), traj.ErrEmpty)
	}
	return frames, nil
}

// Each calls fn for every frame in frames, using nworker goroutines.
// Progress, if w is not nil, goes to w. The first error, in frame
// order, is returned.
func Each(t traj.Trajectory, frames []int, nworker int, w io.Writer, fn FrameFunc) error {
	if nworker < 1 {
		nworker = runtime.NumCPU()
	}
	errs := make([]error, len(frames))
	prog := progress.New(len(frames), w)
	p := newFrameWorkers(t, frames, fn, errs, prog, nworker)
	for k := range frames {
		p.enqueue(k)
	}
	p.done()
	prog.Close()
	for k, err := range errs {
		if err != nil {
			return fmt.Errorf("frame %d: %w", frames[k], err)
		}
	}
	return nil
}

// selected applies the selection and checks the atom count.
func selected(s *cmmn.Structure, sl *sel.Sel, natom int) (cmmn.XyzSl, error) {
	ndx := sl.Apply(s)
	if len(ndx) != natom {
		return nil, fmt.Errorf("%d atoms selected, first frame had %d: %w",
			len(ndx), natom, ErrSelMismatch)
	}
	pos := make(cmmn.XyzSl, len(ndx))
	for i, n := range ndx {
		pos[i] = s.Atoms[n].Xyz
	}
	return pos, nil
}

// Distances computes the atom-atom distance matrix of the selection
// for every sampled frame. Every frame has to select the same number
// of atoms as the topology.
func Distances(t traj.Trajectory, opts Options) (*Stack, error) {
	frames, err := Frames(t, opts.Range)
	if err != nil {
		return nil, err
	}
	natom := len(opts.Sel.Apply(t.Topology()))
	stk := &Stack{
		Frames: frames,
		Times:  make([]float64, len(frames)),
		Mats:   make([]*mat.Dense, len(frames)),
		NAtom:  natom,
	}
	for k, f := range frames {
		stk.Times[k] = float64(f) * t.Dt()
	}
	err = Each(t, frames, opts.nworker(), opts.Progress, func(k int, s *cmmn.Structure) error {
		pos, err := selected(s, &opts.Sel, natom)
		if err != nil {
			return err
		}
		stk.Mats[k] = geom.SelfDistArray(pos)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if opts.Flatten {
		stk.flatten()
	}
	return stk, nil
}

// flatten copies each matrix into one row of Flat.
func (stk *Stack) flatten() {
	n2 := stk.NAtom * stk.NAtom
	if n2 == 0 {
		stk.Flat = &mat.Dense{}
		stk.Mats = nil
		return
	}
	stk.Flat = mat.NewDense(len(stk.Mats), n2, nil)
	for k, m := range stk.Mats {
		copy(stk.Flat.RawRowView(k), m.RawMatrix().Data)
	}
	stk.Mats = nil
}

// Len is the number of sampled frames.
func (stk *Stack) Len() int { return len(stk.Frames) }

// Matrix returns the distance matrix of sampled frame k, whether or
// not the stack was flattened.
func (stk *Stack) Matrix(k int) *mat.Dense {
	if stk.Mats != nil {
		return stk.Mats[k]
	}
	if stk.NAtom == 0 {
		return &mat.Dense{}
	}
	row := stk.Flat.RawRowView(k)
	return mat.NewDense(stk.NAtom, stk.NAtom, row)
}

// Contacts thresholds every frame of the stack. An entry is 1 when the
// distance is <= cutoff. The diagonal is always set.
func Contacts(stk *Stack, cutoff float64) []*matrix.BMatrix2d {
	ret := make([]*matrix.BMatrix2d, stk.Len())
	for k := range ret {
		ret[k] = geom.Threshold(stk.Matrix(k), cutoff)
	}
	return ret
}

// ContactMaps builds contact matrices directly from the trajectory,
// without keeping the distances.
func ContactMaps(t traj.Trajectory, cutoff float64, opts Options) ([]int, []*matrix.BMatrix2d, error) {
	frames, err := Frames(t, opts.Range)
	if err != nil {
		return nil, nil, err
	}
	natom := len(opts.Sel.Apply(t.Topology()))
	cms := make([]*matrix.BMatrix2d, len(frames))
	err = Each(t, frames, opts.nworker(), opts.Progress, func(k int, s *cmmn.Structure) error {
		pos, err := selected(s, &opts.Sel, natom)
		if err != nil {
			return err
		}
		cms[k] = geom.ContactMatrix(pos, cutoff)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return frames, cms, nil
}
