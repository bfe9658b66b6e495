// 12 Oct 2026

// Package natcon finds native contacts in a reference structure. Two
// residues are in contact if any pair of their atoms is within a cutoff
// and the residues are far enough apart along the chain.
package natcon

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/qcontact/pdb/cmmn"
	"github.com/andrew-torda/qcontact/pdb/sel"
	"github.com/andrew-torda/qcontact/pkg/geom"
)

var (
	ErrUnknownMethod  = errors.New("unknown native contact method")
	ErrNotImplemented = errors.New("native contact method not implemented")
	ErrShape          = errors.New("contact matrix shape does not match the atoms")
	ErrNoLogAtom      = errors.New("no atom to label residue in log")
)

// Method is the way we decide on contacts.
type Method byte

const (
	ContactMatrix Method = iota // atom contact matrix with a distance cutoff
	ShadowMap                   // not written
)

func (m Method) String() string {
	switch m {
	case ContactMatrix:
		return "contact_matrix"
	case ShadowMap:
		return "shadow_map"
	}
	return fmt.Sprintf("Method(%d)", byte(m))
}

// ParseMethod accepts the names a user might type.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "1", "Contact_Matrix", "contact_matrix":
		return ContactMatrix, nil
	case "2", "Shadow_Map", "shadow_map":
		return ShadowMap, nil
	}
	return ContactMatrix, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// Options controls Native. Get a copy from DefaultOptions and change it.
type Options struct {
	Cutoff        float64 // contact distance
	MinSeparation int     // residues i and j must have j - i > MinSeparation
	Method        Method
	Norm          bool // renumber residues from 1 first
	IgnoreH       bool // ignore atoms lighter than cmmn.HeavyMass
	Sel           sel.Sel
	Vbsty         int
}

// DefaultOptions is what people normally want for proteins.
func DefaultOptions() Options {
	return Options{
		Cutoff:        6.0,
		MinSeparation: 3,
		Method:        ContactMatrix,
		Norm:          true,
		IgnoreH:       true,
		Sel:           sel.Sel{Class: sel.Protein},
	}
}

// Pair is a pair of residue ids with I < J.
type Pair struct{ I, J int }

func less(a, b Pair) bool {
	if a.I != b.I {
		return a.I < b.I
	}
	return a.J < b.J
}

// Detail is the first atom pair found for a contact.
type Detail struct {
	Pair
	Dist     float64
	AtomPair [2]int
	NamePair [2]string
}

// prepare copies the reference, renumbers and selects.
func prepare(ref *cmmn.Structure, opts *Options) *cmmn.Structure {
	s := ref.Copy()
	if opts.Norm {
		sel.NormResIDs(s)
	}
	sl := opts.Sel
	if opts.IgnoreH {
		sl.Heavy = true
	}
	return sl.Take(s)
}

// Native returns the sorted list of residue pairs in contact and, for
// each, the atom pair that was seen first. Walking the upper triangle
// of the atom contact matrix, a residue pair is recorded on its first
// hit. This is not necessarily the closest atom pair.
func Native(ref *cmmn.Structure, opts Options) ([]Pair, []Detail, error) {
	switch opts.Method {
	case ContactMatrix:
	case ShadowMap:
		return nil, nil, fmt.Errorf("%v: %w", opts.Method, ErrNotImplemented)
	default:
		return nil, nil, fmt.Errorf("%v: %w", opts.Method, ErrUnknownMethod)
	}
	s := prepare(ref, &opts)
	pos := s.Positions()
	cm := geom.ContactMatrix(pos, opts.Cutoff)
	seen := make(map[Pair]bool)
	var pairs []Pair
	var details []Detail
	for i := range s.Atoms {
		ai := &s.Atoms[i]
		row := cm.Mat[i]
		for j := i + 1; j < len(s.Atoms); j++ {
			aj := &s.Atoms[j]
			if aj.ResID-ai.ResID <= opts.MinSeparation || row[j] == 0 {
				continue
			}
			p := Pair{ai.ResID, aj.ResID}
			if seen[p] {
				continue
			}
			seen[p] = true
			pairs = append(pairs, p)
			details = append(details, Detail{
				Pair:     p,
				Dist:     geom.Dist(ai.Xyz, aj.Xyz),
				AtomPair: [2]int{ai.ID, aj.ID},
				NamePair: [2]string{ai.Name, aj.Name},
			})
		}
	}
	sort.Slice(pairs, func(a, b int) bool { return less(pairs[a], pairs[b]) })
	sort.Slice(details, func(a, b int) bool { return less(details[a].Pair, details[b].Pair) })
	return pairs, details, nil
}

// hasNucleic says if any atom is in a nucleotide.
func hasNucleic(s *cmmn.Structure) bool {
	for i := range s.Atoms {
		if sel.IsNucleic(s.Atoms[i].ResName) {
			return true
		}
	}
	return false
}

// WriteLog writes the contacts as a tab separated table. Each residue
// is labelled by the id of its alpha carbon or, for nucleic acids, its
// N1 or N3 atom. ref is the structure given to Native, with the same
// options, so residue numbers agree.
func WriteLog(w io.Writer, ref *cmmn.Structure, pairs []Pair, opts Options) error {
	s := ref.Copy()
	if opts.Norm {
		sel.NormResIDs(s)
	}
	lbl := sel.CA
	if hasNucleic(s) {
		lbl = sel.NucleicN1N3
	}
	ids := sel.ResAtomIDs(s, lbl)
	var b strings.Builder
	b.WriteString("#RESi\tRESj\tATOMi\tATOMj\n")
	for _, p := range pairs {
		ai, ok1 := ids[p.I]
		aj, ok2 := ids[p.J]
		if !ok1 || !ok2 {
			return fmt.Errorf("residues %d %d: %w", p.I, p.J, ErrNoLogAtom)
		}
		fmt.Fprintf(&b, "%d\t%d\t%d\t%d\n", p.I, p.J, ai, aj)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FormedPairs turns one contact matrix back into residue pairs. s holds
// the atoms the matrix was built from, in the same order. Only the
// upper triangle is read. With includeSelf, the diagonal is too.
func FormedPairs(s *cmmn.Structure, cm *matrix.BMatrix2d, includeSelf bool) ([]Pair, error) {
	nr, nc := cm.Size()
	if nr != nc || nr != s.Len() {
		return nil, fmt.Errorf("matrix %d x %d for %d atoms: %w", nr, nc, s.Len(), ErrShape)
	}
	var ret []Pair
	off := 1
	if includeSelf {
		off = 0
	}
	for i := 0; i < nr; i++ {
		for j := i + off; j < nc; j++ {
			if cm.Mat[i][j] != 0 {
				ret = append(ret, Pair{s.Atoms[i].ResID, s.Atoms[j].ResID})
			}
		}
	}
	return ret, nil
}
