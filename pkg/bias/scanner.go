// 13 Oct 2026

package bias

import (
	"bufio"
	"bytes"
	"io"
)

// cmmtScanner is a wrapper around bufio.Scanner that will ignore
// anything after a comment character, remove leading and trailing white
// space and jump over blank lines. It counts lines, so errors can say
// where they happened.
type cmmtScanner struct {
	bufio.Scanner
	cmmt byte // Comment character
	n    int  // line number of the last line returned
}

func newCmmtScanner(r io.Reader, cmmt byte) *cmmtScanner {
	s := bufio.NewScanner(r)
	return &cmmtScanner{Scanner: *s, cmmt: cmmt}
}

// cbytes scans to the next line with something on it, after comments
// are removed. Like Bytes, what it returns lives in the i/o buffer. It
// returns nil at the end of input.
func (s *cmmtScanner) cbytes() []byte {
	for s.Scan() {
		s.n++
		b := s.Bytes()
		if i := bytes.IndexByte(b, s.cmmt); i >= 0 {
			b = b[:i]
		}
		if b = bytes.TrimSpace(b); len(b) > 0 {
			return b
		}
	}
	return nil
}
