// Splitting lines at spaces and quotes.

/* from https://www.iucr.org/resources/cif/spec/version1.1/cifsyntax
               character or string role
_ (underscore) identifies data name
#              identifies comment
'              delimits non-simple data values
"              delimits non-simple data values
; at beginning of line of text delimits non-simple data values
data_          identifies data block header (case-insensitive)
*/

package mmcif

import (
	"errors"
)

const (
	squote byte = '\''
	dquote byte = '"'
)

// iswhite only works for ascii spaces
var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

func iswhite(b byte) bool { return asciiSpace[b] }

// splitCifLine breaks a line into words. A word is either a run of
// non-space characters or something in matching quotes. A quote only
// closes if it is followed by white space or the end of the line, so
// O5' and "O5'" are both one word. The words are slices of the input
// appended to ret[:0], so nothing is allocated if ret is big enough.
func splitCifLine(b []byte, ret [][]byte) ([][]byte, error) {
	ret = ret[:0]
	i := 0
	for {
		for i < len(b) && iswhite(b[i]) {
			i++
		}
		if i == len(b) {
			return ret, nil
		}
		if q := b[i]; q == squote || q == dquote {
			start := i + 1
			j := start
			for ; j < len(b); j++ {
				if b[j] == q && (j+1 == len(b) || iswhite(b[j+1])) {
					break
				}
			}
			if j == len(b) {
				return nil, errors.New("unterminated quote line: " + string(b))
			}
			ret = append(ret, b[start:j])
			i = j + 1
			continue
		}
		start := i
		for i < len(b) && !iswhite(b[i]) {
			i++
		}
		ret = append(ret, b[start:i])
	}
}

// isDotOrQ returns true if the word is a lone dot or question mark
func isDotOrQ(s []byte) bool {
	return len(s) == 1 && (s[0] == '.' || s[0] == '?')
}
