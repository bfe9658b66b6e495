// 12 Oct 2026
// The reader and its states. Build a Reader, then call Read.

package mmcif

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/andrew-torda/qcontact/pdb/cmmn"
)

// cmmtScanner is a wrapper around bufio.Scanner that jumps over blank
// lines and lines starting with a comment character. It counts lines
// in n, so we can print the line number in error messages.
type cmmtScanner struct {
	*bufio.Scanner
	err    error  // first error seen
	ctoken []byte // what cbytes() will return
	n      int    // line number in the file
	cmmt   byte   // comment character
}

func newCmmtScanner(r io.Reader, cmmt byte) cmmtScanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), 1024*1024)
	return cmmtScanner{Scanner: s, cmmt: cmmt}
}

// cscan moves to the next interesting line. It returns false at the
// end of input or after an error. Comment characters are only
// recognised as the first character, since they are legitimate
// elsewhere in the text.
func (s *cmmtScanner) cscan() bool {
	if s.err != nil {
		s.ctoken = nil
		return false
	}
	for s.Scan() {
		s.n++
		b := bytes.TrimRight(s.Bytes(), " \t\r")
		if len(b) == 0 || b[0] == s.cmmt {
			continue
		}
		s.ctoken = b
		return true
	}
	s.ctoken = nil
	if e := s.Err(); e != nil {
		s.fill(e.Error())
	}
	return false
}

// cbytes is like Bytes from the library, but returns the line we
// stopped on. It is only valid until the next cscan.
func (s *cmmtScanner) cbytes() []byte { return s.ctoken }

// Reader reads atoms from an mmcif source. The caller has decided
// if it is a file, a compressed file or whatever.
type Reader struct {
	cmmtScanner
	name     string
	modelMax int // 0 means read everything
	headers  []string
	acn      acn
	words    [][]byte
	pending  [][]byte // a row that has been broken over lines
	strs     []*cmmn.Structure
	lastMdl  int
}

// NewReader returns an object to read atom sites. name is only used
// to label the structures we return.
func NewReader(r io.Reader, name string) *Reader {
	return &Reader{
		cmmtScanner: newCmmtScanner(r, '#'),
		name:        name,
		words:       make([][]byte, 0, 25),
	}
}

// SetModelMax tells us the maximum number of models to read.
// Zero or less means get everything.
func (mr *Reader) SetModelMax(n int) { mr.modelMax = n }

// stateFn is the type of state function. It returns the next
// state function that should act on the current line.
type stateFn func(*Reader) stateFn

// stateTop looks at the current line and decides what to do.
// Everything outside a loop is uninteresting.
func stateTop(mr *Reader) stateFn {
	b := mr.cbytes()
	if b == nil {
		return nil
	}
	if bytes.HasPrefix(b, []byte("loop_")) {
		if !mr.cscan() {
			return nil
		}
		return stateLoopHdr
	}
	if !mr.cscan() {
		return nil
	}
	return stateTop
}

// stateLoopHdr collects the headers from a loop and decides if we want
// the table.
func stateLoopHdr(mr *Reader) stateFn {
	mr.headers = mr.headers[:0]
	for b := mr.cbytes(); b != nil && b[0] == '_'; b = mr.cbytes() {
		mr.headers = append(mr.headers, string(bytes.TrimSpace(b)))
		if !mr.cscan() {
			break
		}
	}
	if len(mr.headers) == 0 {
		mr.fill("no contents found while reading loop headers")
		return nil
	}
	if !bytes.HasPrefix([]byte(mr.headers[0]), []byte(atomSite)) {
		return stateSkipLoopTable
	}
	if err := mr.acn.setCols(mr.headers); err != nil {
		mr.fill(err.Error())
		return nil
	}
	return stateAtomTable
}

// isSpecial returns true if the line is not simply more of a table.
// Usually this means there is a new directive coming.
func isSpecial(inline []byte) bool {
	switch {
	case inline == nil:
		return true
	case inline[0] == '_':
		return true
	case bytes.HasPrefix(inline, []byte("loop_")):
		return true
	case bytes.HasPrefix(inline, []byte("data_")):
		return true
	default:
		return false
	}
}

// stateSkipLoopTable jumps over a table we do not care about.
func stateSkipLoopTable(mr *Reader) stateFn {
	for b := mr.cbytes(); !isSpecial(b); b = mr.cbytes() {
		if !mr.cscan() {
			return nil
		}
	}
	return stateTop
}

// stateAtomTable reads atom rows until the table ends.
func stateAtomTable(mr *Reader) stateFn {
	ncol := len(mr.headers)
	for b := mr.cbytes(); !isSpecial(b); b = mr.cbytes() {
		words, err := splitCifLine(b, mr.words)
		if err != nil {
			mr.fill(err.Error())
			return nil
		}
		if len(mr.pending) > 0 || len(words) < ncol {
			for _, w := range words {
				mr.pending = append(mr.pending, append([]byte(nil), w...))
			}
			words = mr.pending
		}
		switch {
		case len(words) == ncol:
			if more := mr.addAtom(words); !more {
				return nil
			}
			mr.pending = mr.pending[:0]
		case len(words) > ncol:
			mr.fill("atom site row has " + strconv.Itoa(len(words)) +
				" fields, wanted " + strconv.Itoa(ncol))
			return nil
		}
		if !mr.cscan() {
			break
		}
	}
	if len(mr.pending) != 0 {
		mr.fill("atom site table ends in the middle of a row")
		return nil
	}
	if mr.cbytes() == nil {
		return nil
	}
	return stateTop
}

// addAtom converts one row and puts it in the right model. It returns
// false if we have an error or have read enough models.
func (mr *Reader) addAtom(words [][]byte) bool {
	var atm cmmn.Atom
	mdl, keep, err := mr.acn.atom(words, &atm)
	if err != nil {
		mr.fill(err.Error())
		return false
	}
	if !keep {
		return true
	}
	if len(mr.strs) == 0 || mdl != mr.lastMdl {
		if mr.modelMax > 0 && len(mr.strs) == mr.modelMax {
			return false
		}
		mr.strs = append(mr.strs, &cmmn.Structure{Name: mr.name})
		mr.lastMdl = mdl
	}
	s := mr.strs[len(mr.strs)-1]
	s.Atoms = append(s.Atoms, atm)
	return true
}

// Read goes through the input and returns one structure per model.
func (mr *Reader) Read() ([]*cmmn.Structure, error) {
	if !mr.cscan() {
		if mr.err != nil {
			return nil, mr.err
		}
		return nil, nil
	}
	for state := stateTop; state != nil; {
		state = state(mr)
	}
	if mr.err != nil {
		return nil, mr.err
	}
	return mr.strs, nil
}

// Read is a shortcut for NewReader(r, name).Read().
func Read(r io.Reader, name string) ([]*cmmn.Structure, error) {
	return NewReader(r, name).Read()
}
