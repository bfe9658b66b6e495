// 12 Oct 2026
// Reading old fashioned, fixed column PDB files.

package pdb

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/andrew-torda/qcontact/pdb/cmmn"
)

// Columns of an ATOM / HETATM record, counting from zero and
// exclusive at the end, the way one slices in go.
const (
	colSerial0, colSerial1 = 6, 11
	colName0, colName1     = 12, 16
	colAlt                 = 16
	colRes0, colRes1       = 17, 20
	colChain               = 21
	colResNum0, colResNum1 = 22, 26
	colX0, colX1           = 30, 38
	colY0, colY1           = 38, 46
	colZ0, colZ1           = 46, 54
	colEl0, colEl1         = 76, 78
	minAtomLine            = colZ1
)

// field returns the trimmed bytes in [i, j) or nothing if the line
// is too short.
func field(line []byte, i, j int) []byte {
	if i >= len(line) {
		return nil
	}
	if j > len(line) {
		j = len(line)
	}
	return bytes.TrimSpace(line[i:j])
}

// lineErr puts the line number in front of an error from a reader.
func lineErr(name string, n int, err error) error {
	return fmt.Errorf("%s line %d: %w", name, n, err)
}

// parseAtom fills out an atom from one ATOM or HETATM line.
func parseAtom(line []byte, atm *cmmn.Atom) error {
	if len(line) < minAtomLine {
		return fmt.Errorf("atom record too short (%d chars)", len(line))
	}
	var err error
	if atm.ID, err = strconv.Atoi(string(field(line, colSerial0, colSerial1))); err != nil {
		return fmt.Errorf("atom serial: %w", err)
	}
	if atm.ResID, err = strconv.Atoi(string(field(line, colResNum0, colResNum1))); err != nil {
		return fmt.Errorf("residue number: %w", err)
	}
	atm.Name = string(field(line, colName0, colName1))
	atm.ResName = string(field(line, colRes0, colRes1))
	atm.Chain = string(field(line, colChain, colChain+1))
	atm.Element = string(field(line, colEl0, colEl1))
	atm.Het = line[0] == 'H'
	ff := func(i, j int) float64 {
		if err != nil {
			return 0
		}
		var x float64
		x, err = strconv.ParseFloat(string(field(line, i, j)), 64)
		return x
	}
	atm.X = ff(colX0, colX1)
	atm.Y = ff(colY0, colY1)
	atm.Z = ff(colZ0, colZ1)
	if err != nil {
		return fmt.Errorf("coordinates: %w", err)
	}
	atm.Mass = cmmn.GuessMass(atm.Element, atm.Name)
	return nil
}

// keepAlt says if we want an atom. Of alternative locations, we keep
// only the first, which is conventionally blank or 'A'.
func keepAlt(line []byte) bool {
	if len(line) <= colAlt {
		return true
	}
	c := line[colAlt]
	return c == ' ' || c == 'A' || c == '1'
}

// readOld reads every model from an old format PDB file. Atoms before
// any MODEL record are a model of their own. An END record stops us.
func readOld(rdr io.Reader, name string) ([]*cmmn.Structure, error) {
	var ret []*cmmn.Structure
	var cur *cmmn.Structure
	scnr := bufio.NewScanner(rdr)
	scnr.Buffer(make([]byte, 0, 1024), 1024*1024)
	n := 0
	flush := func() {
		if cur != nil && len(cur.Atoms) > 0 {
			ret = append(ret, cur)
		}
		cur = nil
	}
	for scnr.Scan() {
		n++
		line := scnr.Bytes()
		switch {
		case bytes.HasPrefix(line, []byte("MODEL")):
			flush()
			cur = &cmmn.Structure{Name: name}
		case bytes.HasPrefix(line, []byte("ENDMDL")):
			flush()
		case bytes.HasPrefix(line, []byte("ATOM  ")), bytes.HasPrefix(line, []byte("HETATM")):
			if !keepAlt(line) {
				continue
			}
			if cur == nil {
				cur = &cmmn.Structure{Name: name}
			}
			var atm cmmn.Atom
			if err := parseAtom(line, &atm); err != nil {
				if e := scnr.Err(); e != nil {
					return nil, lineErr(name, n, e)
				}
				return nil, lineErr(name, n, err)
			}
			cur.Atoms = append(cur.Atoms, atm)
		case bytes.Equal(bytes.TrimSpace(line), []byte("END")):
			if err := scnr.Err(); err != nil {
				return nil, lineErr(name, n, err)
			}
			flush()
			return ret, nil
		}
	}
	if err := scnr.Err(); err != nil {
		return nil, lineErr(name, n, err)
	}
	flush()
	return ret, nil
}
