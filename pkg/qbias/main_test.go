package qbias_test

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/qcontact/pkg/common"
	. "github.com/andrew-torda/qcontact/pkg/qbias"
)

func model(b *strings.Builder, n int, xyz [][3]float64) {
	fmt.Fprintf(b, "MODEL     %4d\n", n)
	for i, x := range xyz {
		fmt.Fprintf(b, "ATOM  %5d  CA  ALA A%4d    %8.3f%8.3f%8.3f  1.00  0.00           C\n",
			i+1, i+1, x[0], x[1], x[2])
	}
	b.WriteString("ENDMDL\n")
}

func TestMymain(t *testing.T) {
	var b strings.Builder
	model(&b, 1, [][3]float64{{0, 0, 0}, {4, 0, 0}, {8, 0, 0}, {12, 0, 0}, {16, 0, 0}})
	model(&b, 2, [][3]float64{{0, 0, 0}, {4, 0, 0}, {8, 0, 0}, {12, 0, 0}, {0, 4, 0}})
	mobile, err := common.WrtTemp(b.String(), ".pdb")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(mobile)
	bfile, err := common.WrtTemp("# i j\n1 5\n2 5\n", ".txt")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(bfile)
	out, err := common.WrtTemp("", ".txt")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(out)

	flags := &CmdFlag{Cols: [2]int{0, 1}, SkipRows: -1, NoFilter: true}
	if err := Mymain(flags, bfile, []string{mobile}, out); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	const want = "#frame\ttime\tQ\n0\t0\t0.0000\n1\t0\t1.0000\n"
	if string(got) != want {
		t.Errorf("got\n%s\nwanted\n%s", got, want)
	}
	flags.Norm = "self"
	if err := Mymain(flags, bfile, []string{mobile}, out); err != nil {
		t.Fatal(err)
	}
	if got, _ = os.ReadFile(out); !strings.Contains(string(got), "0\t0\t0.7143\n") {
		t.Error("self normalised qbias wrong:", string(got))
	}
	flags.Norm = "other"
	if err := Mymain(flags, bfile, []string{mobile}, out); err == nil {
		t.Error("bad norm accepted")
	}
}
