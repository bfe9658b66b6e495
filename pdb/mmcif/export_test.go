package mmcif

// Export some internal functions for testing

var SplitCifLine = splitCifLine
var IsDotOrQ = isDotOrQ

// ErrLine returns the line number stored in a read error, or -1.
func ErrLine(err error) int {
	if e, ok := err.(*readError); ok {
		return e.Line()
	}
	return -1
}
