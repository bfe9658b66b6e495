// This is the upper level for reading PDB files.
// Decide if a file is compressed or not, and what format
// we are going to read. Then call the corresponding pdb or mmcif
// format reader.

package pdb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/qcontact/pdb/cmmn"
	"github.com/andrew-torda/qcontact/pdb/mmcif"
	"github.com/andrew-torda/qcontact/pdb/zwrap"
)

const (
	oldFmt byte = iota
	mmcifFmt
	unkFmt
)

// ErrNoAtoms comes back if a file was read, but had no atoms in it.
var ErrNoAtoms = errors.New("no atoms found")

// comparefirst says if a line starts with a word.
func comparefirst(s, w string) bool {
	return strings.HasPrefix(s, w)
}

// lookInFile guesses, from the first lines, if a file is in old PDB
// format or in mmcif.
func lookInFile(fname string) (byte, error) {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES",
		"CRYST1", "MODEL", "HETATM", "ATOM"}
	mmcifWords := []string{"data_", "_entry.id", "loop_"}
	rdr, err := zwrap.Open(fname)
	if err != nil {
		return unkFmt, err
	}
	defer rdr.Close()

	const maxTestLines = 5000
	scnnr := bufio.NewScanner(rdr)
	for i := 0; scnnr.Scan() && i < maxTestLines; i++ {
		s := scnnr.Text()
		for _, w := range mmcifWords {
			if comparefirst(s, w) {
				return mmcifFmt, nil
			}
		}
		for _, w := range pdbWords {
			if comparefirst(s, w) {
				return oldFmt, nil
			}
		}
	}
	return unkFmt, errors.New(fname + ": cannot recognise format")
}

// suffix strips directories and any .gz from a file name and returns
// what follows the first dot, in lower case. We cannot use the function
// from filepath, since it will return .gz if we feed it a.pdb.gz.
func suffix(fname string) string {
	s := strings.ToLower(filepath.Base(fname))
	s = strings.TrimSuffix(s, ".gz")
	if i := strings.IndexByte(s, '.'); i != -1 {
		return s[i+1:]
	}
	return ""
}

// KnownSuffix says if the file name looks like a structure file, a .pdb,
// .ent or .cif, maybe gzipped.
func KnownSuffix(fname string) bool {
	switch suffix(fname) {
	case "pdb", "ent", "cif", "mmcif":
		return true
	}
	return false
}

// oldOrMmcif decides what format we will use.
// Maybe it uses the file name or maybe it peeks inside.
func oldOrMmcif(fname string) (byte, error) {
	s := suffix(fname)
	switch {
	case strings.Contains(s, "pdb") || strings.Contains(s, "ent"):
		return oldFmt, nil
	case strings.Contains(s, "cif"):
		return mmcifFmt, nil
	}
	return lookInFile(fname)
}

// ReadCoord reads every model from a file in old PDB or mmcif format.
// The file may be gzipped. Each model comes back as a structure.
func ReadCoord(fname string) ([]*cmmn.Structure, error) {
	typ, err := oldOrMmcif(fname)
	if err != nil {
		return nil, err
	}
	rdr, err := zwrap.Open(fname)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()
	return readFmt(rdr, fname, typ)
}

// readFmt calls the reader for a format. It is separate from ReadCoord
// so we can give it broken readers in testing.
func readFmt(rdr io.Reader, fname string, typ byte) ([]*cmmn.Structure, error) {
	var strs []*cmmn.Structure
	var err error
	if typ == oldFmt {
		strs, err = readOld(rdr, fname)
	} else {
		strs, err = mmcif.Read(rdr, fname)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	if len(strs) == 0 {
		return nil, fmt.Errorf("%s: %w", fname, ErrNoAtoms)
	}
	return strs, nil
}

// ReadFirst reads a file and returns only the first model.
func ReadFirst(fname string) (*cmmn.Structure, error) {
	strs, err := ReadCoord(fname)
	if err != nil {
		return nil, err
	}
	return strs[0], nil
}

// NatomsTot returns the total number of atoms in a set of models.
func NatomsTot(strs []*cmmn.Structure) int {
	var n int
	for _, s := range strs {
		n += s.Len()
	}
	return n
}
