// Package pdb/cmmn has common definitions for atoms, coordinates and
// structures. Everything that reads a structure or a trajectory returns
// these types, so the numeric code does not care about file formats.
package cmmn

import (
	"strings"
)

// HeavyMass is the boundary for "heavy" atoms. Anything lighter is
// treated as a hydrogen when hydrogens are to be ignored.
const HeavyMass = 1.2

type Xyz struct{ X, Y, Z float64 }
type XyzSl []Xyz // xyz's are coordinates

// BrokenResNum is the residue number of an atom whose residue
// number was missing.
var BrokenResNum int = -9999

// Atom is one atom in one frame. Everything except Xyz is topology and
// does not change from frame to frame.
type Atom struct {
	ID      int    // serial number from the file
	Name    string // like "CA" or "N1"
	ResName string // residue name, like "ALA"
	ResID   int    // residue number. Not an index.
	Chain   string
	Element string
	Mass    float64
	Het     bool // HETATM record ?
	Xyz
}

// Structure is an ordered set of atoms. The order is the order in the
// file and it is the order used for every matrix index.
type Structure struct {
	Name  string
	Atoms []Atom
}

// Residue is a contiguous run of atoms with the same residue id, as
// seen walking down a structure. Ndx holds indices into Structure.Atoms.
type Residue struct {
	ID   int
	Name string
	Ndx  []int
}

// Len returns the number of atoms
func (s *Structure) Len() int { return len(s.Atoms) }

// Positions returns the coordinates as a fresh slice.
func (s *Structure) Positions() XyzSl {
	ret := make(XyzSl, len(s.Atoms))
	for i := range s.Atoms {
		ret[i] = s.Atoms[i].Xyz
	}
	return ret
}

// ResIDs returns the residue id of every atom.
func (s *Structure) ResIDs() []int {
	ret := make([]int, len(s.Atoms))
	for i := range s.Atoms {
		ret[i] = s.Atoms[i].ResID
	}
	return ret
}

// Residues groups atoms by residue. Residues come out in the order they
// are first seen. If a residue number turns up again later (another
// chain, for example), it is the same residue only if it is adjacent.
func (s *Structure) Residues() []Residue {
	var ret []Residue
	for i, a := range s.Atoms {
		if n := len(ret); n > 0 && ret[n-1].ID == a.ResID {
			ret[n-1].Ndx = append(ret[n-1].Ndx, i)
			continue
		}
		ret = append(ret, Residue{ID: a.ResID, Name: a.ResName, Ndx: []int{i}})
	}
	return ret
}

// Copy returns a deep copy. Frames are cheap to copy compared to the
// distance calculations, so we do not share atom slices.
func (s *Structure) Copy() *Structure {
	t := &Structure{Name: s.Name, Atoms: make([]Atom, len(s.Atoms))}
	copy(t.Atoms, s.Atoms)
	return t
}

// SetPositions replaces the coordinates. The caller has checked lengths.
func (s *Structure) SetPositions(xyz XyzSl) {
	for i := range s.Atoms {
		s.Atoms[i].Xyz = xyz[i]
	}
}

// masses of elements we are likely to see in proteins, nucleic acids
// and simulation boxes.
var masses = map[string]float64{
	"H": 1.008, "D": 2.014, "C": 12.011, "N": 14.007, "O": 15.999,
	"P": 30.974, "S": 32.06, "F": 18.998, "NA": 22.990, "MG": 24.305,
	"CL": 35.45, "K": 39.098, "CA": 40.078, "MN": 54.938, "FE": 55.845,
	"CO": 58.933, "NI": 58.693, "CU": 63.546, "ZN": 65.38, "SE": 78.971,
	"BR": 79.904, "I": 126.90,
}

// GuessMass returns a mass from the element symbol. If there is no
// element, we use the first letter of the atom name that is not a digit,
// which is what everybody does with old PDB files. Unknown gives 0.
func GuessMass(element, name string) float64 {
	if e := strings.ToUpper(strings.TrimSpace(element)); e != "" {
		if m, ok := masses[e]; ok {
			return m
		}
	}
	for _, c := range strings.ToUpper(name) {
		if c >= '0' && c <= '9' {
			continue
		}
		return masses[string(c)]
	}
	return 0
}
