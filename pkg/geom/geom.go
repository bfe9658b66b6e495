// Distances between sets of points. Everything is brute force over all
// pairs. No periodic boundaries.

package geom

import (
	"math"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/qcontact/pdb/cmmn"
	"gonum.org/v1/gonum/mat"
)

// xyzDiff gets the difference of two vectors
func xyzDiff(start, end cmmn.Xyz) (diff cmmn.Xyz) {
	diff.X = end.X - start.X
	diff.Y = end.Y - start.Y
	diff.Z = end.Z - start.Z
	return diff
}

// Dist2 is the squared distance between two points.
func Dist2(x1, x2 cmmn.Xyz) float64 {
	d := xyzDiff(x1, x2)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// Dist is the distance between two points.
func Dist(x1, x2 cmmn.Xyz) float64 { return math.Sqrt(Dist2(x1, x2)) }

// empty returns a matrix with no rows. gonum will not make a zero
// sized matrix with NewDense, but the zero value is fine.
func empty() *mat.Dense { return &mat.Dense{} }

// DistArray returns the len(a) x len(b) matrix of distances. If either
// set is empty, so is the matrix.
func DistArray(a, b []cmmn.Xyz) *mat.Dense {
	if len(a) == 0 || len(b) == 0 {
		return empty()
	}
	d := mat.NewDense(len(a), len(b), nil)
	for i := range a {
		row := d.RawRowView(i)
		for j := range b {
			row[j] = Dist(a[i], b[j])
		}
	}
	return d
}

// SelfDistArray is DistArray(a, a), but only does half the work. The
// diagonal is zero.
func SelfDistArray(a []cmmn.Xyz) *mat.Dense {
	n := len(a)
	if n == 0 {
		return empty()
	}
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := Dist(a[i], a[j])
			d.Set(i, j, r)
			d.Set(j, i, r)
		}
	}
	return d
}

// MinDist returns the smallest distance between the two sets and the
// indices of the pair that made it. On ties, the first pair in row
// order wins. With an empty set, it returns +Inf and -1, -1.
func MinDist(a, b []cmmn.Xyz) (float64, int, int) {
	dmin := math.Inf(1)
	imin, jmin := -1, -1
	for i := range a {
		for j := range b {
			if r := Dist2(a[i], b[j]); r < dmin {
				dmin, imin, jmin = r, i, j
			}
		}
	}
	if imin < 0 {
		return dmin, imin, jmin
	}
	return math.Sqrt(dmin), imin, jmin
}

// ContactMatrix marks with 1 every pair of points no further apart
// than cutoff. The diagonal is always set.
func ContactMatrix(pos []cmmn.Xyz, cutoff float64) *matrix.BMatrix2d {
	n := len(pos)
	cm := matrix.NewBMatrix2d(n, n)
	c2 := cutoff * cutoff
	for i := 0; i < n; i++ {
		cm.Mat[i][i] = 1
		for j := i + 1; j < n; j++ {
			if Dist2(pos[i], pos[j]) <= c2 {
				cm.Mat[i][j] = 1
				cm.Mat[j][i] = 1
			}
		}
	}
	return cm
}

// Threshold turns a distance matrix into a contact matrix.
func Threshold(d mat.Matrix, cutoff float64) *matrix.BMatrix2d {
	nr, nc := d.Dims()
	cm := matrix.NewBMatrix2d(nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if d.At(i, j) <= cutoff {
				cm.Mat[i][j] = 1
			}
		}
	}
	return cm
}
