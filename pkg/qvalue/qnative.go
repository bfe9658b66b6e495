// 13 Oct 2026

// Package qvalue follows the fraction of a set of contacts that are
// formed as a trajectory goes along. Qnative uses the contacts of a
// reference structure. Qbias uses a list of predicted residue pairs.
package qvalue

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/andrew-torda/qcontact/pdb/cmmn"
	"github.com/andrew-torda/qcontact/pdb/sel"
	"github.com/andrew-torda/qcontact/pkg/dmat"
	"github.com/andrew-torda/qcontact/pkg/geom"
	"github.com/andrew-torda/qcontact/traj"
)

var (
	ErrEmptyTarget   = errors.New("no contacts to follow")
	ErrUnknownMethod = errors.New("unknown q value method")
	ErrPairRange     = errors.New("contact pair outside contact matrix")
)

// Method is the way a reference contact counts as formed.
type Method byte

const (
	RadiusCut Method = iota // r <= Radius
	SoftCut                 // 1 / (1 + exp(Beta (r - Lambda r0)))
	HardCut                 // r <= r0, the reference distance
)

func (m Method) String() string {
	switch m {
	case RadiusCut:
		return "radius_cut"
	case SoftCut:
		return "soft_cut"
	case HardCut:
		return "hard_cut"
	}
	return fmt.Sprintf("Method(%d)", byte(m))
}

// ParseMethod accepts the names printed by String. "hardcut" is an
// old spelling of hard_cut.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "radius_cut":
		return RadiusCut, nil
	case "soft_cut":
		return SoftCut, nil
	case "hard_cut", "hardcut":
		return HardCut, nil
	}
	return RadiusCut, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// QnativeOpts controls Qnative. Sel1 and Sel2 are the two groups whose
// contacts are followed. They may be the same.
type QnativeOpts struct {
	Method   Method
	Radius   float64 // reference contacts are pairs within Radius
	Beta     float64 // soft_cut steepness
	Lambda   float64 // soft_cut tolerance on r0
	Sel1     sel.Sel
	Sel2     sel.Sel
	Range    traj.Range
	Norm     bool // renumber residues of both structures from 1
	NWorker  int
	Progress io.Writer
}

// DefaultQnativeOpts uses alpha carbons and a 6 Angstrom radius.
func DefaultQnativeOpts() QnativeOpts {
	return QnativeOpts{
		Method: RadiusCut,
		Radius: 6.0,
		Beta:   5.0,
		Lambda: 1.8,
		Sel1:   sel.CA,
		Sel2:   sel.CA,
		Norm:   true,
	}
}

// refContact is a pair of atoms, as indices into the two selections,
// and their distance in the reference.
type refContact struct {
	a, b int
	r0   float64
}

// groups renumbers a copy and applies both selections.
func groups(s *cmmn.Structure, opts *QnativeOpts) ([]int, []int) {
	if opts.Norm {
		s = s.Copy()
		sel.NormResIDs(s)
	}
	return opts.Sel1.Apply(s), opts.Sel2.Apply(s)
}

// refContacts finds every pair across the two groups within the radius.
// If the groups overlap, an atom is in contact with itself.
func refContacts(ref *cmmn.Structure, ndx1, ndx2 []int, radius float64) []refContact {
	p1 := sel.Subset(ref, ndx1).Positions()
	p2 := sel.Subset(ref, ndx2).Positions()
	d := geom.DistArray(p1, p2)
	var ret []refContact
	for a := range p1 {
		for b := range p2 {
			if r := d.At(a, b); r <= radius {
				ret = append(ret, refContact{a, b, r})
			}
		}
	}
	return ret
}

// fraction scores one frame. r holds the current distance of each
// reference contact.
func (opts *QnativeOpts) fraction(r []float64, cts []refContact) float64 {
	var sum float64
	for k, c := range cts {
		switch opts.Method {
		case RadiusCut:
			if r[k] <= opts.Radius {
				sum++
			}
		case HardCut:
			if r[k] <= c.r0 {
				sum++
			}
		case SoftCut:
			sum += 1 / (1 + math.Exp(opts.Beta*(r[k]-opts.Lambda*c.r0)))
		}
	}
	return sum / float64(len(cts))
}

// Qnative finds the contacts between Sel1 and Sel2 in ref and reports,
// for each sampled frame of mobile, the fraction that are formed.
// mobile and ref must select the same number of atoms in each group.
func Qnative(mobile traj.Trajectory, ref *cmmn.Structure, opts QnativeOpts) (*Series, error) {
	switch opts.Method {
	case RadiusCut, SoftCut, HardCut:
	default:
		return nil, fmt.Errorf("%v: %w", opts.Method, ErrUnknownMethod)
	}
	r1, r2 := groups(ref, &opts)
	top := mobile.Topology()
	m1, m2 := groups(top, &opts)
	if len(r1) != len(m1) || len(r2) != len(m2) {
		return nil, fmt.Errorf("reference groups %d, %d atoms, mobile %d, %d: %w",
			len(r1), len(r2), len(m1), len(m2), dmat.ErrSelMismatch)
	}
	cts := refContacts(ref, r1, r2, opts.Radius)
	if len(cts) == 0 {
		return nil, fmt.Errorf("reference within %g: %w", opts.Radius, ErrEmptyTarget)
	}
	frames, err := dmat.Frames(mobile, opts.Range)
	if err != nil {
		return nil, err
	}
	ser := newSeries(frames, mobile.Dt())
	natom := top.Len()
	err = dmat.Each(mobile, frames, opts.NWorker, opts.Progress, func(k int, s *cmmn.Structure) error {
		if s.Len() != natom {
			return fmt.Errorf("%d atoms, topology has %d: %w", s.Len(), natom, dmat.ErrSelMismatch)
		}
		r := make([]float64, len(cts))
		for i, c := range cts {
			r[i] = geom.Dist(s.Atoms[m1[c.a]].Xyz, s.Atoms[m2[c.b]].Xyz)
		}
		ser.Q[k] = opts.fraction(r, cts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ser, nil
}
