// 12 Oct 2026

// Package resdist builds the matrix of shortest distances between
// residues. Element [i][j] is the smallest distance between any atom
// of residue i and any atom of residue j, where i and j count residues
// in the order they appear in the selection.
package resdist

import (
	"math"

	"github.com/andrew-torda/qcontact/pdb/cmmn"
	"github.com/andrew-torda/qcontact/pdb/sel"
	"github.com/andrew-torda/qcontact/pkg/geom"
	"gonum.org/v1/gonum/mat"
)

// Detail says which atoms made the shortest distance for a pair of
// residues.
type Detail struct {
	Dist     float64
	ResPair  [2]int    // residue ids
	AtomPair [2]int    // atom ids from the file
	NamePair [2]string // atom names
}

// Options for ForSelection.
type Options struct {
	NormResIDs bool // renumber residues from 1 before selecting
	IgnoreH    bool // drop atoms lighter than cmmn.HeavyMass
	Sel        sel.Sel
	Vbsty      int
}

// DefaultOptions renumbers residues and keeps all atoms.
func DefaultOptions() Options {
	return Options{NormResIDs: true}
}

// Shortest returns the symmetric residue x residue matrix of shortest
// atom-atom distances and one Detail per residue pair i < j, in the
// order (0,1), (0,2), .. (1,2), ...
// Only the upper triangle is calculated. It is then merged with its
// transpose by taking the larger value, so the lower triangle gets
// filled in. The diagonal is zero. With no atoms, the matrix is 0 x 0.
func Shortest(s *cmmn.Structure) (*mat.Dense, []Detail) {
	res := s.Residues()
	n := len(res)
	if n == 0 {
		return &mat.Dense{}, nil
	}
	pos := make([]cmmn.XyzSl, n)
	for i, r := range res {
		pos[i] = make(cmmn.XyzSl, len(r.Ndx))
		for k, ndx := range r.Ndx {
			pos[i][k] = s.Atoms[ndx].Xyz
		}
	}
	sd := mat.NewDense(n, n, nil)
	details := make([]Detail, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, ki, kj := geom.MinDist(pos[i], pos[j])
			ai := &s.Atoms[res[i].Ndx[ki]]
			aj := &s.Atoms[res[j].Ndx[kj]]
			sd.Set(i, j, d)
			details = append(details, Detail{
				Dist:     d,
				ResPair:  [2]int{res[i].ID, res[j].ID},
				AtomPair: [2]int{ai.ID, aj.ID},
				NamePair: [2]string{ai.Name, aj.Name},
			})
		}
	}
	symmetrize(sd)
	return sd, details
}

// symmetrize sets m to the element-wise maximum of m and its transpose.
func symmetrize(m *mat.Dense) {
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			x := math.Max(m.At(i, j), m.At(j, i))
			m.Set(i, j, x)
			m.Set(j, i, x)
		}
	}
}

// ForSelection works on a copy of s. It renumbers residues if asked,
// applies the selection and calls Shortest. It also returns the
// selected atoms, since callers need them to interpret indices.
func ForSelection(s *cmmn.Structure, opts Options) (*mat.Dense, []Detail, *cmmn.Structure) {
	c := s.Copy()
	if opts.NormResIDs {
		sel.NormResIDs(c)
	}
	sl := opts.Sel
	if opts.IgnoreH {
		sl.Heavy = true
	}
	c = sl.Take(c)
	sd, det := Shortest(c)
	return sd, det, c
}

// MinResID is the smallest residue id in s. Matrix index i belongs to
// residue MinResID + i when residue ids are contiguous. An empty
// structure gives 0.
func MinResID(s *cmmn.Structure) int {
	if len(s.Atoms) == 0 {
		return 0
	}
	m := s.Atoms[0].ResID
	for _, a := range s.Atoms[1:] {
		if a.ResID < m {
			m = a.ResID
		}
	}
	return m
}
