// 13 Oct 2026

package qvalue

import (
	"errors"
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/qcontact/pdb/sel"
	"github.com/andrew-torda/qcontact/pkg/bias"
	"github.com/andrew-torda/qcontact/pkg/dmat"
	"github.com/andrew-torda/qcontact/traj"
)

// NormMode picks the denominator of Qbias.
type NormMode byte

const (
	NormBias NormMode = iota // count / len(bias pairs)
	NormSelf                 // (count + n) / (len(bias pairs) + n), n atoms on the diagonal
)

// ErrUnknownNorm comes from ParseNorm.
var ErrUnknownNorm = errors.New("unknown qbias normalisation")

// ParseNorm accepts "bias" and "self".
func ParseNorm(s string) (NormMode, error) {
	switch s {
	case "bias", "":
		return NormBias, nil
	case "self":
		return NormSelf, nil
	}
	return NormBias, fmt.Errorf("%q: %w", s, ErrUnknownNorm)
}

// QbiasOpts controls Qbias. Atoms are always the alpha carbons, since
// a bias pair names residues, not atoms.
type QbiasOpts struct {
	Cutoff   float64
	Mode     NormMode
	Range    traj.Range
	NWorker  int
	Progress io.Writer
}

func DefaultQbiasOpts() QbiasOpts { return QbiasOpts{Cutoff: 6.0} }

// Fraction counts the bias pairs set in one contact matrix. Residue
// numbers are 1-based, so pair (i, j) is looked up at [i-1][j-1].
func Fraction(cm *matrix.BMatrix2d, bc []bias.Pair, mode NormMode) (float64, error) {
	if len(bc) == 0 {
		return 0, ErrEmptyTarget
	}
	n, nc := cm.Size()
	count := 0
	for _, p := range bc {
		i, j := p.I-1, p.J-1
		if i < 0 || j < 0 || i >= n || j >= nc {
			return 0, fmt.Errorf("pair %d %d, %d residues: %w", p.I, p.J, n, ErrPairRange)
		}
		if cm.Mat[i][j] != 0 {
			count++
		}
	}
	if mode == NormSelf {
		return float64(count+n) / float64(len(bc)+n), nil
	}
	return float64(count) / float64(len(bc)), nil
}

// Qbias builds a CA contact matrix for each sampled frame and reports
// the fraction of bias pairs that are formed. The matrices come back
// too.
func Qbias(mobile traj.Trajectory, bc []bias.Pair, opts QbiasOpts) (*Series, []*matrix.BMatrix2d, error) {
	if len(bc) == 0 {
		return nil, nil, ErrEmptyTarget
	}
	dopts := dmat.Options{
		Sel:      sel.CA,
		Range:    opts.Range,
		NWorker:  opts.NWorker,
		Progress: opts.Progress,
	}
	frames, cms, err := dmat.ContactMaps(mobile, opts.Cutoff, dopts)
	if err != nil {
		return nil, nil, err
	}
	ser := newSeries(frames, mobile.Dt())
	for k, cm := range cms {
		if ser.Q[k], err = Fraction(cm, bc, opts.Mode); err != nil {
			return nil, nil, fmt.Errorf("frame %d: %w", frames[k], err)
		}
	}
	return ser, cms, nil
}
