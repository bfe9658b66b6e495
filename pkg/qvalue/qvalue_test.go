package qvalue_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/qcontact/pdb/cmmn"
	"github.com/andrew-torda/qcontact/pkg/bias"
	"github.com/andrew-torda/qcontact/pkg/dmat"
	. "github.com/andrew-torda/qcontact/pkg/qvalue"
	"github.com/andrew-torda/qcontact/traj"
)

// chain puts one alpha carbon per residue at each position.
func chain(firstRes int, pos ...cmmn.Xyz) *cmmn.Structure {
	s := &cmmn.Structure{}
	for i, x := range pos {
		s.Atoms = append(s.Atoms, cmmn.Atom{ID: i + 1, Name: "CA", ResName: "ALA",
			ResID: firstRes + i, Element: "C", Mass: 12, Xyz: x})
	}
	return s
}

// Five residues, four apart on a line, or the same with the last one
// folded back next to the first.
var (
	straight = []cmmn.Xyz{{X: 0}, {X: 4}, {X: 8}, {X: 12}, {X: 16}}
	folded   = []cmmn.Xyz{{X: 0}, {X: 4}, {X: 8}, {X: 12}, {Y: 4}}
)

func mobile(t *testing.T) traj.Trajectory {
	t.Helper()
	m, err := traj.NewModels([]*cmmn.Structure{chain(1, straight...), chain(1, folded...)})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestFraction(t *testing.T) {
	cm := matrix.NewBMatrix2d(5, 5)
	for i := 0; i < 5; i++ {
		cm.Mat[i][i] = 1
	}
	cm.Mat[0][4], cm.Mat[1][4] = 1, 1
	bc := []bias.Pair{{I: 1, J: 5}, {I: 2, J: 5}, {I: 1, J: 4}}
	if q, err := Fraction(cm, bc, NormBias); err != nil || q != 2.0/3.0 {
		t.Error("wanted 2/3, got", q, err)
	}
	if q, err := Fraction(cm, bc, NormSelf); err != nil || q != 7.0/8.0 {
		t.Error("with self contacts wanted 7/8, got", q, err)
	}
	if _, err := Fraction(cm, []bias.Pair{{I: 1, J: 9}}, NormBias); !errors.Is(err, ErrPairRange) {
		t.Error("wanted ErrPairRange, got", err)
	}
	if _, err := Fraction(cm, nil, NormBias); !errors.Is(err, ErrEmptyTarget) {
		t.Error("wanted ErrEmptyTarget, got", err)
	}
}

func TestQbias(t *testing.T) {
	bc := []bias.Pair{{I: 1, J: 5}, {I: 2, J: 5}}
	ser, cms, err := Qbias(mobile(t), bc, DefaultQbiasOpts())
	if err != nil {
		t.Fatal(err)
	}
	if len(cms) != 2 || ser.Len() != 2 {
		t.Fatal("wanted two frames")
	}
	if ser.Q[0] != 0 || ser.Q[1] != 1 {
		t.Error("wrong qbias", ser.Q)
	}
	if ser.Mean() != 0.5 {
		t.Error("wrong mean", ser.Mean())
	}
	if _, _, err := Qbias(mobile(t), nil, DefaultQbiasOpts()); !errors.Is(err, ErrEmptyTarget) {
		t.Error("no bias pairs should be ErrEmptyTarget")
	}
	for _, s := range []string{"bias", "self"} {
		if _, err := ParseNorm(s); err != nil {
			t.Error(err)
		}
	}
	if _, err := ParseNorm("both"); !errors.Is(err, ErrUnknownNorm) {
		t.Error("ParseNorm took rubbish")
	}
}

// In the folded reference, there are 15 ordered contacts within 6
// counting each atom with itself. The straight chain keeps 11.
func TestQnative(t *testing.T) {
	ref := chain(101, folded...)
	for _, m := range []Method{RadiusCut, HardCut} {
		opts := DefaultQnativeOpts()
		opts.Method = m
		ser, err := Qnative(mobile(t), ref, opts)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(ser.Q[0]-11.0/15.0) > 1e-12 || ser.Q[1] != 1 {
			t.Errorf("%v: got %v", m, ser.Q)
		}
	}
	opts := DefaultQnativeOpts()
	opts.Method = SoftCut
	ser, err := Qnative(mobile(t), ref, opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range ser.Q {
		if q <= 0 || q > 1 {
			t.Error("soft cut q out of range", q)
		}
	}
	if ser.Q[0] >= ser.Q[1] {
		t.Error("straight chain should have lower soft q than folded")
	}
}

func TestQnativeErrors(t *testing.T) {
	opts := DefaultQnativeOpts()
	short := chain(1, folded[:4]...)
	if _, err := Qnative(mobile(t), short, opts); !errors.Is(err, dmat.ErrSelMismatch) {
		t.Error("wanted ErrSelMismatch, got", err)
	}
	opts.Method = Method(9)
	if _, err := Qnative(mobile(t), chain(1, folded...), opts); !errors.Is(err, ErrUnknownMethod) {
		t.Error("wanted ErrUnknownMethod, got", err)
	}
	opts = DefaultQnativeOpts()
	opts.Radius = -1
	if _, err := Qnative(mobile(t), chain(1, folded...), opts); !errors.Is(err, ErrEmptyTarget) {
		t.Error("wanted ErrEmptyTarget, got", err)
	}
	for _, s := range []string{"radius_cut", "soft_cut", "hard_cut", "hardcut"} {
		m, err := ParseMethod(s)
		if err != nil {
			t.Error(err)
		}
		if s != "hardcut" && m.String() != s {
			t.Error("String does not give back", s)
		}
	}
	if _, err := ParseMethod("cut"); !errors.Is(err, ErrUnknownMethod) {
		t.Error("ParseMethod took rubbish")
	}
}

func TestSeriesWrite(t *testing.T) {
	ser := &Series{Frames: []int{0, 2}, Times: []float64{0, 1}, Q: []float64{0.5, 1}}
	var b bytes.Buffer
	n, err := ser.WriteTo(&b)
	if err != nil {
		t.Fatal(err)
	}
	const want = "#frame\ttime\tQ\n0\t0\t0.5000\n2\t1\t1.0000\n"
	if b.String() != want || n != int64(len(want)) {
		t.Errorf("got %q", b.String())
	}
	if !math.IsNaN((&Series{}).Mean()) {
		t.Error("mean of nothing should be NaN")
	}
}
