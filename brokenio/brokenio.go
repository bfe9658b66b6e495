// brokenio is a wrapper around an io.Reader which lets us break
// reading, so we can see how the structure and contact file readers
// cope.
// Typical use: you have a file pointer or a reader from a compressed
// source. You write
// reader = brokenio.NewReader(reader) to wrap the old reader. Everything
// then functions as before, but with artificial errors.
// Errors come two ways. With SetFailAfter, reading stops with ErrBroken
// after a fixed number of bytes, which is what tests usually want.
// With SetProbFail, a random fraction of reads have the end of their
// buffer zeroed. Randomness comes from a seeded source, so runs repeat.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is returned when we stop reading deliberately.
var ErrBroken = errors.New("brokenio: deliberate read failure")

// BrknRdrClsr looks like a ReadCloser, but with variables controlling
// the frequency of errors. Probabilities are fractions, so 0.05 means
// failure in 5% of the cases.
type BrknRdrClsr struct {
	rdrOrig      io.Reader
	rnd          *rand.Rand
	probZeroFile float32 // Probability of returning a zero length file
	probFail     float32
	fracFail     float32
	failAfter    int // stop after this many bytes, if >= 0
	nCalled      int
	nByte        int
	verbose      bool
}

const dfltSeed = 1637

// NewReader returns a new Reader, a wrapper around the old one.
func NewReader(rIn io.Reader) *BrknRdrClsr {
	return &BrknRdrClsr{
		rdrOrig:   rIn,
		rnd:       rand.New(rand.NewSource(dfltSeed)),
		fracFail:  0.5,
		failAfter: -1,
	}
}

// SetVerbose sets the verbosity flag to true or false
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// SetSeed restarts the random number generator.
func (r *BrknRdrClsr) SetSeed(seed int64) { r.rnd = rand.New(rand.NewSource(seed)) }

// SetFracFail sets the fraction of a buffer which will be trashed
func (r *BrknRdrClsr) SetFracFail(frac float32) { r.fracFail = frac }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. We do not check if the argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a file reading failure.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes reading fail with ErrBroken once n bytes have been
// delivered. A negative n turns this off.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// trashSlice wipes out the second part of a slice.
// The amount to wipe out is given by a fraction, so 0.3
// will wipe out the second 30 % of a slice
func trashSlice(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1. - frac))
	if nkeep == len(p) {
		return nkeep, nil
	}
	for i := nkeep; i < len(p); i++ {
		p[i] = 0
	}
	return nkeep, fmt.Errorf("randomly wiped out last %d of %d: %w", len(p)-nkeep, len(p), ErrBroken)
}

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		return 0, io.EOF
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nCalled++
	r.nByte += n
	if r.probFail > 0 && r.fracFail > 0 && r.rnd.Float32() < r.probFail {
		return trashSlice(p[:n], r.fracFail)
	}
	return n, err
}

// Close closes the original reader if it can be closed.
func (r *BrknRdrClsr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	if c, ok := r.rdrOrig.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
