// 13 Oct 2026

package qvalue

import (
	"fmt"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Series is a fraction of formed contacts per sampled frame.
type Series struct {
	Frames []int
	Times  []float64 // ps, zero if the trajectory had no time step
	Q      []float64
}

func newSeries(frames []int, dt float64) *Series {
	s := &Series{
		Frames: frames,
		Times:  make([]float64, len(frames)),
		Q:      make([]float64, len(frames)),
	}
	for k, f := range frames {
		s.Times[k] = float64(f) * dt
	}
	return s
}

// Len is the number of frames.
func (s *Series) Len() int { return len(s.Q) }

// Mean is the average Q. An empty series gives NaN.
func (s *Series) Mean() float64 {
	if len(s.Q) == 0 {
		return math.NaN()
	}
	return stat.Mean(s.Q, nil)
}

// WriteTo writes a header line, then frame, time and Q, tab separated.
func (s *Series) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	b.WriteString("#frame\ttime\tQ\n")
	for k := range s.Q {
		fmt.Fprintf(&b, "%d\t%g\t%.4f\n", s.Frames[k], s.Times[k], s.Q[k])
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
