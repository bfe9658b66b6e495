// Parsing atom_site rows.
package mmcif

import (
	"errors"
	"strconv"

	"github.com/andrew-torda/qcontact/pdb/cmmn"
)

const atomSite = "_atom_site."

type cifCol struct {
	cifName string // name in mmcif file, like auth_asym_id
	altName string // an alternative, label_asym_id is the alt for auth_asym_id
	n       int    // column, or -1 if not there
}

// acn holds the column positions we care about.
type acn struct {
	groupPDB,
	id,
	typeSymbol,
	atomID,
	altID,
	compID,
	asymID,
	seqID,
	cartnX,
	cartnY,
	cartnZ,
	modelNum cifCol
}

func newAcn() acn {
	return acn{
		groupPDB:   cifCol{cifName: "group_PDB"},
		id:         cifCol{cifName: "id"},
		typeSymbol: cifCol{cifName: "type_symbol"},
		atomID:     cifCol{cifName: "auth_atom_id", altName: "label_atom_id"},
		altID:      cifCol{cifName: "label_alt_id"},
		compID:     cifCol{cifName: "auth_comp_id", altName: "label_comp_id"},
		asymID:     cifCol{cifName: "auth_asym_id", altName: "label_asym_id"},
		seqID:      cifCol{cifName: "auth_seq_id", altName: "label_seq_id"},
		cartnX:     cifCol{cifName: "Cartn_x"},
		cartnY:     cifCol{cifName: "Cartn_y"},
		cartnZ:     cifCol{cifName: "Cartn_z"},
		modelNum:   cifCol{cifName: "pdbx_PDB_model_num"},
	}
}

// find looks for the column in the list of headers. The main name
// wins over the alternative.
func (cf *cifCol) find(names map[string]int) {
	cf.n = -1
	if i, ok := names[cf.cifName]; ok {
		cf.n = i
	} else if i, ok := names[cf.altName]; ok && cf.altName != "" {
		cf.n = i
	}
}

// setCols finds every column. Coordinates, atom names and residue
// numbers have to be there. The rest are optional.
func (a *acn) setCols(headers []string) error {
	*a = newAcn()
	names := make(map[string]int, len(headers))
	for i, h := range headers {
		if len(h) > len(atomSite) {
			names[h[len(atomSite):]] = i
		}
	}
	all := []*cifCol{&a.groupPDB, &a.id, &a.typeSymbol, &a.atomID, &a.altID,
		&a.compID, &a.asymID, &a.seqID, &a.cartnX, &a.cartnY, &a.cartnZ, &a.modelNum}
	for _, cf := range all {
		cf.find(names)
	}
	for _, cf := range []*cifCol{&a.atomID, &a.seqID, &a.cartnX, &a.cartnY, &a.cartnZ} {
		if cf.n < 0 {
			return errors.New("Could not find atomsite column: " + cf.cifName)
		}
	}
	return nil
}

// str returns the column as a string. Missing columns, dots and
// question marks give "".
func (cf *cifCol) str(words [][]byte) string {
	if cf.n < 0 || isDotOrQ(words[cf.n]) {
		return ""
	}
	return string(words[cf.n])
}

// integer returns the column as an int, with dflt for missing values.
func (cf *cifCol) integer(words [][]byte, dflt int) (int, error) {
	s := cf.str(words)
	if s == "" {
		return dflt, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return dflt, errors.New(err.Error() + ". Looked for " + cf.cifName)
	}
	return i, nil
}

// keepAlt accepts atoms with no alternative location or the first one.
func keepAlt(s string) bool {
	return s == "" || s == "A" || s == "1"
}

// atom fills out atm from one row and returns its model number. keep
// is false for second and later alternative locations.
func (a *acn) atom(words [][]byte, atm *cmmn.Atom) (mdl int, keep bool, err error) {
	if !keepAlt(a.altID.str(words)) {
		return 0, false, nil
	}
	if mdl, err = a.modelNum.integer(words, 1); err != nil {
		return 0, false, err
	}
	if atm.ID, err = a.id.integer(words, 0); err != nil {
		return 0, false, err
	}
	if atm.ResID, err = a.seqID.integer(words, cmmn.BrokenResNum); err != nil {
		return 0, false, err
	}
	atm.Name = a.atomID.str(words)
	atm.ResName = a.compID.str(words)
	atm.Chain = a.asymID.str(words)
	atm.Element = a.typeSymbol.str(words)
	atm.Het = a.groupPDB.str(words) == "HETATM"
	ff := func(cf *cifCol) float64 {
		if err != nil {
			return 0
		}
		var x float64
		x, err = strconv.ParseFloat(string(words[cf.n]), 64)
		return x
	}
	atm.X = ff(&a.cartnX)
	atm.Y = ff(&a.cartnY)
	atm.Z = ff(&a.cartnZ)
	if err != nil {
		return 0, false, errors.New("coordinates: " + err.Error())
	}
	atm.Mass = cmmn.GuessMass(atm.Element, atm.Name)
	return mdl, true, nil
}
