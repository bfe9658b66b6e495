// An error implementation that saves the line number and the
// line we were trying to read.
// The key is to call xxxx.fill() where xxxx is the comment scanner
// inside the reader.
package mmcif

import (
	"strconv"
)

const maxMsgLen = 70

type readError struct {
	n      int    // line number
	inline string // The line that provoked the error
	desc   string // Description of error
}

// fill stores the first problem we have seen. Later ones are
// dropped, since they are usually a consequence of the first.
func (s *cmmtScanner) fill(desc string) {
	if s.err != nil {
		return
	}
	s.err = &readError{n: s.n, inline: string(s.ctoken), desc: desc}
}

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

// Error returns the line number, the description and the start of the
// offending line.
func (e *readError) Error() string {
	var errmsg string
	if e.n != 0 {
		errmsg = "Line: " + strconv.Itoa(e.n) + " "
	}
	errmsg += e.desc
	if e.n != 0 && e.inline != "" {
		errmsg += "\nLine starting with\n" + firstPart(e.inline)
	}
	return errmsg
}

// Line says where the error was found.
func (e *readError) Line() int { return e.n }
