package tpr_test

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/qcontact/pkg/bias"
	"github.com/andrew-torda/qcontact/pkg/common"
	. "github.com/andrew-torda/qcontact/pkg/tpr"
	"gonum.org/v1/gonum/mat"
)

// sdline is a shortest distance matrix for n residues on a line, 1
// apart, so residues i and j are |i-j| apart.
func sdline(n int) *mat.Dense {
	sd := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sd.Set(i, j, math.Abs(float64(i-j)))
		}
	}
	return sd
}

func TestAllOrNothing(t *testing.T) {
	sd := sdline(20)
	good := []bias.Pair{{I: 1, J: 5}, {I: 2, J: 7}, {I: 10, J: 16}}
	res, err := Compute(sd, 1, good, 6, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.TPR[len(good)-1] != 100 {
		t.Error("all natives should give 100, got", res.TPR)
	}
	bad := []bias.Pair{{I: 1, J: 15}, {I: 2, J: 20}}
	res, err = Compute(sd, 1, bad, 6, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range res.TPR {
		if v != 0 {
			t.Error("no natives should give 0, got", res.TPR)
		}
	}
}

func TestSeries(t *testing.T) {
	sd := sdline(8)
	pairs := []bias.Pair{{I: 11, J: 12}, {I: 11, J: 18}, {I: 13, J: 15}, {I: 12, J: 18}}
	res, err := Compute(sd, 11, pairs, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{100, 50, 200.0 / 3.0, 50}
	for i := range want {
		if math.Abs(res.TPR[i]-want[i]) > 1e-12 {
			t.Errorf("TPR(%d) = %g, wanted %g", i+1, res.TPR[i], want[i])
		}
	}
	if res.Opt != 10 || !math.IsNaN(res.OptTPR) {
		t.Error("8 residues should give opt 10 with no value, got", res.Opt, res.OptTPR)
	}
	if res, _ = Compute(sd, 11, pairs, 3, 2); len(res.TPR) != 2 {
		t.Error("n did not limit predictions")
	}
	if _, err := Compute(sd, 11, []bias.Pair{{I: 1, J: 12}}, 3, 0); !errors.Is(err, ErrPairRange) {
		t.Error("wanted ErrPairRange, got", err)
	}
}

func TestRoundUp(t *testing.T) {
	for _, tt := range []struct {
		x    float64
		want int
	}{{15, 15}, {15.75, 20}, {0.1, 5}, {0, 0}, {52.5, 55}} {
		if got := RoundUp(tt.x, 5); got != tt.want {
			t.Errorf("RoundUp(%g) = %d, wanted %d", tt.x, got, tt.want)
		}
	}
}

func TestBest(t *testing.T) {
	res := &Result{TPR: []float64{100, 50, 66.5, 50, 75, 100}}
	got := res.Best(3)
	want := []Rank{{5, 75}, {3, 66.5}, {2, 50}}
	if len(got) != len(want) {
		t.Fatal("got", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rank %d: got %v wanted %v", i, got[i], want[i])
		}
	}
}

// TestBestDistinct has 50 three times and 75 twice. Each value is
// listed once, at its first rank.
func TestBestDistinct(t *testing.T) {
	res := &Result{TPR: []float64{100, 50, 75, 50, 75, 50, 60}}
	got := res.Best(10)
	want := []Rank{{3, 75}, {7, 60}, {2, 50}}
	if len(got) != len(want) {
		t.Fatal("got", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rank %d: got %v wanted %v", i, got[i], want[i])
		}
	}
}

func TestSetNRes(t *testing.T) {
	sd := sdline(8)
	pairs := []bias.Pair{{I: 1, J: 2}, {I: 1, J: 8}, {I: 3, J: 5}, {I: 2, J: 8}, {I: 4, J: 6}, {I: 1, J: 3}}
	res, err := Compute(sd, 1, pairs, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.NRes != 8 || res.Opt != 10 || !math.IsNaN(res.OptTPR) {
		t.Error("from the matrix wanted 8 residues, opt 10, no value, got", res.NRes, res.Opt, res.OptTPR)
	}
	res.SetNRes(6)
	if res.NRes != 6 || res.Opt != 5 || res.OptTPR != 60 {
		t.Error("6 residues should give opt 5 at 60 %, got", res.NRes, res.Opt, res.OptTPR)
	}
}

func TestWriteLog(t *testing.T) {
	res := &Result{TPR: []float64{100, 50}, OptTPR: math.NaN()}
	var b strings.Builder
	if err := res.WriteLog(&b); err != nil {
		t.Fatal(err)
	}
	s := b.String()
	if !strings.Contains(s, "10 Best values (100% excluded):\n2\t50.0\n") {
		t.Error("best values wrong:\n", s)
	}
	if !strings.HasSuffix(s, "Full list:\n0\t0.0\n1\t100.0\n2\t50.0\n") {
		t.Error("full list wrong:\n", s)
	}
}

func TestMymain(t *testing.T) {
	var pdbtxt strings.Builder
	for i := 0; i < 8; i++ {
		pdbtxt.WriteString(pdbLine(i+1, i+1, float64(i)*2))
	}
	ref, err := common.WrtTemp(pdbtxt.String(), ".pdb")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(ref)
	bfile, err := common.WrtTemp("i j\n1 5\n1 8\n2 6\n", ".txt")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(bfile)
	out, err := common.WrtTemp("", ".log")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(out)
	flags := &CmdFlag{Cutoff: 9, Cols: [2]int{0, 1}, SkipRows: -1}
	if err := Mymain(flags, ref, bfile, out); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(b), "0\t0.0\n1\t100.0\n2\t50.0\n3\t66.66666666666667\n") {
		t.Error("unexpected log:\n", string(b))
	}
}

// pdbLine is one alpha carbon on the x axis.
func pdbLine(serial, resnum int, x float64) string {
	return fmt.Sprintf("ATOM  %5d  CA  ALA A%4d    %8.3f%8.3f%8.3f  1.00  0.00           C\n",
		serial, resnum, x, 0.0, 0.0)
}
