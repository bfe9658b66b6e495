// 13 Oct 2026

// Package tpr scores a ranked list of predicted contacts against a
// reference structure. After k predictions, the true positive rate is
// the percentage of the first k that are real contacts.
package tpr

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/andrew-torda/qcontact/pkg/bias"
	"gonum.org/v1/gonum/mat"
)

// ErrPairRange means a predicted pair names a residue that is not in
// the reference.
var ErrPairRange = errors.New("predicted pair outside reference residues")

// OptFrac of the residue count, rounded up to a multiple of OptBase,
// is the number of predictions usually worth looking at.
const (
	OptFrac = 0.75
	OptBase = 5
)

// Result holds TPR[k-1] for k = 1, 2, ... predictions.
type Result struct {
	TPR    []float64
	NRes   int
	Opt    int     // suggested number of predictions
	OptTPR float64 // TPR at Opt, NaN if there were fewer predictions than Opt
}

// RoundUp gives the smallest multiple of base that is >= x.
func RoundUp(x float64, base int) int {
	b := float64(base)
	return int(math.Ceil(x/b-1e-9) * b)
}

// Compute walks through pairs in rank order. sd is the shortest
// residue distance matrix of the reference and resMin the residue id
// of its first row. A prediction is a true positive when the residues
// are no further than cutoff apart. n limits how many predictions are
// used. n <= 0 means all.
func Compute(sd *mat.Dense, resMin int, pairs []bias.Pair, cutoff float64, n int) (*Result, error) {
	if n <= 0 || n > len(pairs) {
		n = len(pairs)
	}
	nr, nc := sd.Dims()
	res := &Result{TPR: make([]float64, n)}
	z := 0
	for k, p := range pairs[:n] {
		i, j := p.I-resMin, p.J-resMin
		if i < 0 || j < 0 || i >= nr || j >= nc {
			return nil, fmt.Errorf("pair %d %d, residues %d to %d: %w",
				p.I, p.J, resMin, resMin+nr-1, ErrPairRange)
		}
		if sd.At(i, j) <= cutoff {
			z++
		}
		res.TPR[k] = 100 * float64(z) / float64(k+1)
	}
	res.SetNRes(nr)
	return res, nil
}

// SetNRes sets the residue count the suggested number of predictions
// comes from and recalculates Opt and OptTPR. Compute uses the rows of
// the distance matrix. Callers that selected residues can give the
// size of the whole chain instead.
func (r *Result) SetNRes(nres int) {
	r.NRes = nres
	r.Opt = RoundUp(OptFrac*float64(nres), OptBase)
	r.OptTPR = math.NaN()
	if r.Opt >= 1 && r.Opt <= len(r.TPR) {
		r.OptTPR = r.TPR[r.Opt-1]
	}
}

// Rank is a number of predictions and the TPR there.
type Rank struct {
	K   int
	TPR float64
}

// Best returns up to k ranks with the highest distinct TPR values
// under 100. Where a value occurs more than once, the smallest rank
// holding it is given.
func (r *Result) Best(k int) []Rank {
	all := make([]Rank, len(r.TPR))
	for i, t := range r.TPR {
		all[i] = Rank{i + 1, t}
	}
	sort.SliceStable(all, func(a, b int) bool { return all[a].TPR > all[b].TPR })
	var ret []Rank
	for _, rk := range all {
		if len(ret) == k {
			break
		}
		if rk.TPR >= 100 || (len(ret) > 0 && ret[len(ret)-1].TPR == rk.TPR) {
			continue
		}
		ret = append(ret, rk)
	}
	return ret
}

// ffmt writes a float the short way, but always with a decimal point.
func ffmt(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// WriteLog writes the ten best values under 100 %, then the whole
// series, starting from zero predictions.
func (r *Result) WriteLog(w io.Writer) error {
	var b strings.Builder
	b.WriteString("Format:\nNumber of DCA Contacts \t True Positive Rate (%)\n\n")
	b.WriteString("10 Best values (100% excluded):\n")
	for _, rk := range r.Best(10) {
		b.WriteString(strconv.Itoa(rk.K) + "\t" + ffmt(rk.TPR) + "\n")
	}
	if !math.IsNaN(r.OptTPR) {
		fmt.Fprintf(&b, "\nSuggested number of contacts (%g L, %d residues):\n%d\t%s\n",
			OptFrac, r.NRes, r.Opt, ffmt(r.OptTPR))
	}
	b.WriteString("\nFull list:\n0\t0.0\n")
	for i, t := range r.TPR {
		b.WriteString(strconv.Itoa(i+1) + "\t" + ffmt(t) + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
