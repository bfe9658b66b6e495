// 12 Oct 2026

// Package sel picks atoms out of a structure. A selection is a plain
// struct, not a string to be parsed. Every field that is set narrows
// the selection. Atoms always come back in file order, so matrix
// indices from two calls on the same structure agree.
package sel

import (
	"errors"
	"strings"

	"github.com/andrew-torda/qcontact/pdb/cmmn"
)

// Class restricts atoms to proteins or nucleic acids.
type Class byte

const (
	Any Class = iota
	Protein
	Nucleic
)

var ErrUnknownClass = errors.New("unknown residue class")

// ParseClass turns "protein", "nucleic" or "all" into a Class.
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(s) {
	case "", "all", "any":
		return Any, nil
	case "protein":
		return Protein, nil
	case "nucleic":
		return Nucleic, nil
	}
	return Any, errors.New(s + ": " + ErrUnknownClass.Error())
}

// Sel is a selection. The zero value takes everything.
type Sel struct {
	Names    []string // atom names like CA
	ResNames []string
	Chains   []string
	ResMin   int // residue ids in [ResMin, ResMax].
	ResMax   int // ResMax == 0 means no window
	Class    Class
	Heavy    bool // only atoms with mass >= HeavyMass
}

// CA is the alpha carbon selection.
var CA = Sel{Names: []string{"CA"}, Class: Protein}

// NucleicN1N3 picks the atoms one uses to label nucleic acid contacts.
var NucleicN1N3 = Sel{Names: []string{"N1", "N3"}, Class: Nucleic}

var protRes = map[string]bool{
	"ALA": true, "ARG": true, "ASN": true, "ASP": true, "CYS": true,
	"GLN": true, "GLU": true, "GLY": true, "HIS": true, "ILE": true,
	"LEU": true, "LYS": true, "MET": true, "PHE": true, "PRO": true,
	"SER": true, "THR": true, "TRP": true, "TYR": true, "VAL": true,
	"HSD": true, "HSE": true, "HSP": true, "HID": true, "HIE": true,
	"HIP": true, "CYX": true, "ASH": true, "GLH": true, "LYN": true,
	"MSE": true, "SEC": true, "PYL": true,
}

var nucRes = map[string]bool{
	"A": true, "C": true, "G": true, "U": true, "T": true, "I": true,
	"DA": true, "DC": true, "DG": true, "DT": true, "DU": true,
	"ADE": true, "CYT": true, "GUA": true, "URA": true, "THY": true,
	"RA": true, "RC": true, "RG": true, "RU": true,
	"A3": true, "A5": true, "C3": true, "C5": true, "G3": true, "G5": true,
	"U3": true, "U5": true,
}

// IsProtein says if a residue name is an amino acid.
func IsProtein(resname string) bool { return protRes[strings.ToUpper(resname)] }

// IsNucleic says if a residue name is a nucleotide.
func IsNucleic(resname string) bool { return nucRes[strings.ToUpper(resname)] }

func inList(s string, l []string) bool {
	if len(l) == 0 {
		return true
	}
	for _, t := range l {
		if s == t {
			return true
		}
	}
	return false
}

// Match says if one atom is selected.
func (sl *Sel) Match(a *cmmn.Atom) bool {
	if !inList(a.Name, sl.Names) || !inList(a.ResName, sl.ResNames) || !inList(a.Chain, sl.Chains) {
		return false
	}
	if sl.ResMax != 0 && (a.ResID < sl.ResMin || a.ResID > sl.ResMax) {
		return false
	}
	switch sl.Class {
	case Protein:
		if !IsProtein(a.ResName) {
			return false
		}
	case Nucleic:
		if !IsNucleic(a.ResName) {
			return false
		}
	}
	if sl.Heavy && a.Mass < cmmn.HeavyMass {
		return false
	}
	return true
}

// Apply returns the indices of selected atoms, in order.
func (sl *Sel) Apply(s *cmmn.Structure) []int {
	var ndx []int
	for i := range s.Atoms {
		if sl.Match(&s.Atoms[i]) {
			ndx = append(ndx, i)
		}
	}
	return ndx
}

// Take returns a new structure holding only the selected atoms.
func (sl *Sel) Take(s *cmmn.Structure) *cmmn.Structure {
	return Subset(s, sl.Apply(s))
}

// Subset copies the atoms at ndx into a new structure.
func Subset(s *cmmn.Structure, ndx []int) *cmmn.Structure {
	t := &cmmn.Structure{Name: s.Name, Atoms: make([]cmmn.Atom, len(ndx))}
	for i, j := range ndx {
		t.Atoms[i] = s.Atoms[j]
	}
	return t
}

// NormResIDs renumbers residues in place so they run 1, 2, 3, ... in the
// order they are met. A change of chain with the same residue number
// still counts as a new residue.
func NormResIDs(s *cmmn.Structure) {
	n := 0
	var lastID int
	var lastChain string
	for i := range s.Atoms {
		a := &s.Atoms[i]
		if n == 0 || a.ResID != lastID || a.Chain != lastChain {
			n++
			lastID, lastChain = a.ResID, a.Chain
		}
		a.ResID = n
	}
}

// ResAtomIDs maps residue id to atom id for atoms picked by sl. With
// the CA selection, this tells one which alpha carbon belongs to
// which residue. If a residue has two matching atoms, the first wins.
func ResAtomIDs(s *cmmn.Structure, sl Sel) map[int]int {
	ret := make(map[int]int)
	for _, i := range sl.Apply(s) {
		a := &s.Atoms[i]
		if _, ok := ret[a.ResID]; !ok {
			ret[a.ResID] = a.ID
		}
	}
	return ret
}
