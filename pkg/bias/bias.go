// 13 Oct 2026

// Package bias reads lists of predicted residue contacts, like the
// output of DCA programs. Each row has two residue numbers, maybe a
// score, and rows come in rank order, best first.
package bias

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/andrew-torda/qcontact/pdb/zwrap"
)

// Pair is one predicted contact. Score is zero if the file has none.
type Pair struct {
	I, J  int
	Score float64
}

// AutoSkip is the SkipRows value that means "jump over everything at
// the top that does not look like data".
const AutoSkip = -1

var ErrNoPairs = errors.New("no contact pairs found")

// Options control reading. Cols are counted from zero.
type Options struct {
	Cols     [2]int
	ScoreCol int    // -1 means no score column
	SkipRows int    // header rows, or AutoSkip
	Filter   bool   // drop pairs closer than MinSep in sequence
	MinSep   int    // with Filter, keep |i-j| >= MinSep
	ResRange [2]int // keep pairs with both residues in range. 0 is no limit
	N        int    // keep the first N pairs after filtering, 0 for all
}

// DefaultOptions reads the first two columns, guesses the header and
// drops pairs with |i-j| < 4.
func DefaultOptions() Options {
	return Options{
		Cols:     [2]int{0, 1},
		ScoreCol: -1,
		SkipRows: AutoSkip,
		Filter:   true,
		MinSep:   4,
	}
}

type lineErr struct {
	n   int
	err error
}

func (e *lineErr) Error() string { return "line " + strconv.Itoa(e.n) + ": " + e.err.Error() }
func (e *lineErr) Unwrap() error { return e.err }

// ints pulls the two residue columns from a line.
func ints(fields [][]byte, cols [2]int) (int, int, error) {
	for _, c := range cols {
		if c < 0 || c >= len(fields) {
			return 0, 0, fmt.Errorf("wanted column %d, only %d on line", c, len(fields))
		}
	}
	i, err := strconv.Atoi(string(fields[cols[0]]))
	if err != nil {
		return 0, 0, err
	}
	j, err := strconv.Atoi(string(fields[cols[1]]))
	if err != nil {
		return 0, 0, err
	}
	return i, j, nil
}

// keep applies the sequence separation and range filters.
func (o *Options) keep(p Pair) bool {
	if o.Filter {
		d := p.I - p.J
		if d < 0 {
			d = -d
		}
		if d < o.MinSep {
			return false
		}
	}
	lo, hi := o.ResRange[0], o.ResRange[1]
	for _, r := range []int{p.I, p.J} {
		if (lo != 0 && r < lo) || (hi != 0 && r > hi) {
			return false
		}
	}
	return true
}

// Read gets pairs from r in the order they appear. '#' starts a
// comment. With AutoSkip, leading lines whose residue columns are not
// integers are header. Once data has started, a bad line is an error.
func Read(r io.Reader, opts Options) ([]Pair, error) {
	scnr := newCmmtScanner(r, '#')
	var ret []Pair
	skipped := 0
	started := false
	for line := scnr.cbytes(); line != nil; line = scnr.cbytes() {
		if opts.SkipRows > 0 && skipped < opts.SkipRows {
			skipped++
			continue
		}
		fields := bytes.Fields(line)
		i, j, err := ints(fields, opts.Cols)
		if err != nil {
			if !started && opts.SkipRows == AutoSkip {
				continue
			}
			return nil, &lineErr{scnr.n, err}
		}
		started = true
		p := Pair{I: i, J: j}
		if opts.ScoreCol >= 0 {
			if opts.ScoreCol >= len(fields) {
				return nil, &lineErr{scnr.n, fmt.Errorf("no score column %d", opts.ScoreCol)}
			}
			if p.Score, err = strconv.ParseFloat(string(fields[opts.ScoreCol]), 64); err != nil {
				return nil, &lineErr{scnr.n, err}
			}
		}
		if !opts.keep(p) {
			continue
		}
		ret = append(ret, p)
		if opts.N > 0 && len(ret) == opts.N {
			break
		}
	}
	if err := scnr.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

// ReadFile is Read on a file, which may be gzipped. No pairs at all is
// an error, since a contact file with nothing in it is probably a
// mistake.
func ReadFile(fname string, opts Options) ([]Pair, error) {
	rdr, err := zwrap.Open(fname)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()
	pairs, err := Read(rdr, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%s: %w", fname, ErrNoPairs)
	}
	return pairs, nil
}
