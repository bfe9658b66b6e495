// 12 Oct 2026

// Package traj gives one view of things with frames. A multi-model
// PDB file, a DCD trajectory with its topology and a list of separate
// structure files all look the same to the frame loops.
package traj

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/qcontact/pdb"
	"github.com/andrew-torda/qcontact/pdb/cmmn"
	"github.com/andrew-torda/qcontact/pdb/dcd"
)

var (
	ErrAtomCount    = errors.New("topology and trajectory atom counts differ")
	ErrNotStructure = errors.New("not a structure file (want .pdb, .ent or .cif)")
	ErrBadRange     = errors.New("bad frame range")
	ErrEmpty        = errors.New("no frames")
)

// Trajectory is anything we can pull frames out of. Frame must be safe
// to call from several goroutines and must not hand back shared atoms.
type Trajectory interface {
	Len() int
	Topology() *cmmn.Structure
	Frame(i int) (*cmmn.Structure, error)
	Dt() float64 // time between frames, ps. 0 if unknown
}

// Models is a set of structures from one file, usually NMR models.
type Models struct {
	strs []*cmmn.Structure
}

// NewModels wraps structures we already have.
func NewModels(strs []*cmmn.Structure) (*Models, error) {
	if len(strs) == 0 {
		return nil, ErrEmpty
	}
	return &Models{strs: strs}, nil
}

// OpenModels reads every model from a PDB or mmcif file.
func OpenModels(fname string) (*Models, error) {
	strs, err := pdb.ReadCoord(fname)
	if err != nil {
		return nil, err
	}
	return NewModels(strs)
}

func (m *Models) Len() int { return len(m.strs) }
func (m *Models) Topology() *cmmn.Structure { return m.strs[0] }
func (m *Models) Dt() float64 { return 0 }
func (m *Models) Frame(i int) (*cmmn.Structure, error) {
	if i < 0 || i >= len(m.strs) {
		return nil, fmt.Errorf("model %d of %d: %w", i, len(m.strs), ErrBadRange)
	}
	return m.strs[i].Copy(), nil
}

// DCD is a topology from a structure file plus coordinates from a DCD
// trajectory.
type DCD struct {
	top *cmmn.Structure
	d   *dcd.Dcd
}

// OpenDCD reads the topology and maps the trajectory. The atom counts
// have to agree.
func OpenDCD(topName, dcdName string) (*DCD, error) {
	top, err := pdb.ReadFirst(topName)
	if err != nil {
		return nil, err
	}
	d, err := dcd.Open(dcdName)
	if err != nil {
		return nil, err
	}
	if d.NAtom() != top.Len() {
		d.Close()
		return nil, fmt.Errorf("%s has %d atoms, %s has %d: %w",
			topName, top.Len(), dcdName, d.NAtom(), ErrAtomCount)
	}
	return &DCD{top: top, d: d}, nil
}

func (t *DCD) Len() int { return t.d.Len() }
func (t *DCD) Topology() *cmmn.Structure { return t.top }
func (t *DCD) Dt() float64 { return t.d.Dt() }
func (t *DCD) Close() error { return t.d.Close() }

// Frame puts the coordinates of frame i on a copy of the topology.
func (t *DCD) Frame(i int) (*cmmn.Structure, error) {
	xyz := make(cmmn.XyzSl, t.top.Len())
	if err := t.d.Frame(i, xyz); err != nil {
		return nil, err
	}
	s := t.top.Copy()
	s.SetPositions(xyz)
	return s, nil
}

// Files is a list of separate structure files. Each is one frame and
// only its first model is used.
type Files struct {
	names []string
	top   *cmmn.Structure
}

// NewFiles checks the names and reads the first file as topology.
// Anything without a structure file suffix is refused.
func NewFiles(names []string) (*Files, error) {
	if len(names) == 0 {
		return nil, ErrEmpty
	}
	for _, n := range names {
		if !pdb.KnownSuffix(n) {
			return nil, fmt.Errorf("%s: %w", n, ErrNotStructure)
		}
	}
	top, err := pdb.ReadFirst(names[0])
	if err != nil {
		return nil, err
	}
	return &Files{names: names, top: top}, nil
}

func (f *Files) Len() int { return len(f.names) }
func (f *Files) Topology() *cmmn.Structure { return f.top }
func (f *Files) Dt() float64 { return 0 }
func (f *Files) Frame(i int) (*cmmn.Structure, error) {
	if i < 0 || i >= len(f.names) {
		return nil, fmt.Errorf("file %d of %d: %w", i, len(f.names), ErrBadRange)
	}
	if i == 0 {
		return f.top.Copy(), nil
	}
	return pdb.ReadFirst(f.names[i])
}

// Open guesses what kind of trajectory the caller wants. With only a
// structure file, its models are the frames. A structure file and a
// .dcd give a DCD trajectory. Otherwise every name is a frame.
func Open(names ...string) (Trajectory, error) {
	switch {
	case len(names) == 0:
		return nil, ErrEmpty
	case len(names) == 1:
		return OpenModels(names[0])
	case len(names) == 2 && strings.EqualFold(filepath.Ext(names[1]), ".dcd"):
		return OpenDCD(names[0], names[1])
	}
	return NewFiles(names)
}

// Range picks frames, like a python slice. Stop is exclusive.
// A zero Stop means the end and a zero Step means 1. Negative Start and
// Stop count back from the end.
type Range struct {
	Start, Stop, Step int
}

// Indices returns the frames picked from n frames, in order.
func (r Range) Indices(n int) ([]int, error) {
	if r.Step < 0 {
		return nil, fmt.Errorf("step %d: %w", r.Step, ErrBadRange)
	}
	step := r.Step
	if step == 0 {
		step = 1
	}
	fix := func(i int) int {
		if i < 0 {
			i += n
		}
		if i < 0 {
			return 0
		}
		if i > n {
			return n
		}
		return i
	}
	start := fix(r.Start)
	stop := n
	if r.Stop != 0 {
		stop = fix(r.Stop)
	}
	var ret []int
	for i := start; i < stop; i += step {
		ret = append(ret, i)
	}
	return ret, nil
}
