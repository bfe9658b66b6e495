package dmat_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/andrew-torda/qcontact/pdb/cmmn"
	"github.com/andrew-torda/qcontact/pdb/sel"
	. "github.com/andrew-torda/qcontact/pkg/dmat"
	"github.com/andrew-torda/qcontact/traj"
	"gonum.org/v1/gonum/mat"
)

// fiveFrames has three atoms on the x axis. In frame f the last atom
// is at x = 2 + f.
func fiveFrames(t *testing.T) *traj.Models {
	t.Helper()
	var strs []*cmmn.Structure
	for f := 0; f < 5; f++ {
		s := &cmmn.Structure{}
		for i, x := range []float64{0, 1, float64(2 + f)} {
			s.Atoms = append(s.Atoms, cmmn.Atom{ID: i + 1, Name: "CA", ResName: "GLY",
				ResID: i + 1, Mass: 12, Xyz: cmmn.Xyz{X: x}})
		}
		strs = append(strs, s)
	}
	m, err := traj.NewModels(strs)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestStepTwo(t *testing.T) {
	var prog bytes.Buffer
	stk, err := Distances(fiveFrames(t), Options{Range: traj.Range{Step: 2}, Progress: &prog})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(stk.Frames, []int{0, 2, 4}) {
		t.Fatal("wanted frames 0 2 4, got", stk.Frames)
	}
	for k, f := range stk.Frames {
		m := stk.Mats[k]
		if r, c := m.Dims(); r != 3 || c != 3 {
			t.Fatalf("frame %d matrix is %d x %d", f, r, c)
		}
		if m.At(0, 2) != float64(2+f) || m.At(2, 0) != float64(2+f) {
			t.Errorf("frame %d: distance 0-2 is %g", f, m.At(0, 2))
		}
		if m.At(1, 1) != 0 {
			t.Error("diagonal not zero")
		}
	}
	if !strings.Contains(prog.String(), "3 of 3 frames") {
		t.Error("no progress output:", prog.String())
	}
}

func TestWorkersAgree(t *testing.T) {
	tr := fiveFrames(t)
	one, err := Distances(tr, Options{NWorker: 1})
	if err != nil {
		t.Fatal(err)
	}
	many, err := Distances(tr, Options{NWorker: 7})
	if err != nil {
		t.Fatal(err)
	}
	for k := range one.Mats {
		if !mat.Equal(one.Mats[k], many.Mats[k]) {
			t.Error("worker count changed the result in frame", k)
		}
	}
}

func TestFlatten(t *testing.T) {
	stk, err := Distances(fiveFrames(t), Options{Flatten: true, Range: traj.Range{Start: 1, Stop: 3}})
	if err != nil {
		t.Fatal(err)
	}
	if stk.Mats != nil {
		t.Error("flattened stack kept its matrices")
	}
	if r, c := stk.Flat.Dims(); r != 2 || c != 9 {
		t.Fatalf("flat is %d x %d, wanted 2 x 9", r, c)
	}
	if stk.Flat.At(1, 2) != 4 {
		t.Error("wrong flattened distance", stk.Flat.At(1, 2))
	}
	if stk.Matrix(1).At(2, 0) != 4 {
		t.Error("Matrix did not unflatten")
	}
}

func TestSelection(t *testing.T) {
	stk, err := Distances(fiveFrames(t), Options{Sel: sel.Sel{ResMin: 2, ResMax: 3}})
	if err != nil {
		t.Fatal(err)
	}
	if stk.NAtom != 2 || stk.Mats[4].At(0, 1) != 5 {
		t.Error("selection not applied")
	}
}

func TestMismatch(t *testing.T) {
	strs := []*cmmn.Structure{
		{Atoms: []cmmn.Atom{{ResID: 1}, {ResID: 2}}},
		{Atoms: []cmmn.Atom{{ResID: 1}}},
	}
	tr, _ := traj.NewModels(strs)
	if _, err := Distances(tr, Options{}); !errors.Is(err, ErrSelMismatch) {
		t.Error("wanted ErrSelMismatch, got", err)
	}
	if _, _, err := ContactMaps(tr, 1, Options{}); !errors.Is(err, ErrSelMismatch) {
		t.Error("contact maps: wanted ErrSelMismatch, got", err)
	}
}

func TestEmptyRange(t *testing.T) {
	if _, err := Distances(fiveFrames(t), Options{Range: traj.Range{Start: 5}}); !errors.Is(err, traj.ErrEmpty) {
		t.Error("no frames should be traj.ErrEmpty, got", err)
	}
	if _, err := Distances(fiveFrames(t), Options{Range: traj.Range{Step: -1}}); !errors.Is(err, traj.ErrBadRange) {
		t.Error("negative step should be traj.ErrBadRange, got", err)
	}
}

func TestContacts(t *testing.T) {
	tr := fiveFrames(t)
	stk, err := Distances(tr, Options{})
	if err != nil {
		t.Fatal(err)
	}
	cms := Contacts(stk, 3)
	frames, direct, err := ContactMaps(tr, 3, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(cms) != 5 || len(direct) != 5 || len(frames) != 5 {
		t.Fatal("wrong number of contact matrices")
	}
	for k := range cms {
		want := byte(0)
		if 2+k <= 3 {
			want = 1
		}
		if cms[k].Mat[0][2] != want || direct[k].Mat[2][0] != want {
			t.Errorf("frame %d contact 0-2 wrong", k)
		}
		if cms[k].Mat[0][0] != 1 || direct[k].Mat[1][1] != 1 {
			t.Error("diagonal of contact matrix not set")
		}
	}
}
