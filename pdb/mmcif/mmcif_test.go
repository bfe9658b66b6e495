package mmcif_test

import (
	"strings"
	"testing"

	. "github.com/andrew-torda/qcontact/pdb/mmcif"
)

func TestSplitCifLine(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"ATOM 1 N N . MET", []string{"ATOM", "1", "N", "N", ".", "MET"}},
		{`ATOM "O5'" 'C 1' x`, []string{"ATOM", "O5'", "C 1", "x"}},
		{"  lead   and trail  ", []string{"lead", "and", "trail"}},
		{`'it's' here`, []string{"it's", "here"}},
		{"O5' C5'", []string{"O5'", "C5'"}},
		{"", nil},
	}
	scratch := make([][]byte, 0, 10)
	for _, tt := range tests {
		got, err := SplitCifLine([]byte(tt.in), scratch)
		if err != nil {
			t.Error(tt.in, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("%q: got %d words, wanted %d", tt.in, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if string(got[i]) != tt.want[i] {
				t.Errorf("%q: word %d got %q want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
	if _, err := SplitCifLine([]byte(`a 'unterminated`), scratch); err == nil {
		t.Error("missed unterminated quote")
	}
}

func TestDotOrQ(t *testing.T) {
	for s, want := range map[string]bool{".": true, "?": true, "..": false, "A": false, "": false} {
		if IsDotOrQ([]byte(s)) != want {
			t.Error("isDotOrQ wrong on", s)
		}
	}
}

const twoModel = `data_TEST
#
_entry.id TEST
#
loop_
_chem_comp.id
_chem_comp.type
ALA 'L-peptide linking'
GLY 'L-peptide linking'
#
loop_
_atom_site.group_PDB
_atom_site.id
_atom_site.type_symbol
_atom_site.label_atom_id
_atom_site.label_alt_id
_atom_site.label_comp_id
_atom_site.label_asym_id
_atom_site.label_seq_id
_atom_site.Cartn_x
_atom_site.Cartn_y
_atom_site.Cartn_z
_atom_site.auth_seq_id
_atom_site.auth_atom_id
_atom_site.pdbx_PDB_model_num
ATOM 1 N N . ALA A 1 1.000 2.000 3.000 10 N 1
ATOM 2 C CA . ALA A 1 2.000 2.000 3.000 10 CA 1
ATOM 3 C CB A ALA A 1 3.000 2.000 3.000 10 CB 1
ATOM 4 C CB B ALA A 1 3.500 2.000 3.000 10 CB 1
ATOM 5 H H . ALA A 1
 0.5 2.000 3.000 10 H 1
ATOM 1 N N . ALA A 1 1.100 2.000 3.000 10 N 2
ATOM 2 C CA . ALA A 1 2.100 2.000 3.000 10 CA 2
#
_other.item x
`

func TestRead(t *testing.T) {
	strs, err := Read(strings.NewReader(twoModel), "test")
	if err != nil {
		t.Fatal(err)
	}
	if len(strs) != 2 {
		t.Fatal("wanted 2 models, got", len(strs))
	}
	if n := strs[0].Len(); n != 4 {
		t.Fatal("model 1 wanted 4 atoms (alt B dropped), got", n)
	}
	if n := strs[1].Len(); n != 2 {
		t.Error("model 2 wanted 2 atoms, got", n)
	}
	a := strs[0].Atoms[1]
	if a.Name != "CA" || a.ResID != 10 || a.ResName != "ALA" || a.ID != 2 || a.X != 2 {
		t.Errorf("second atom read wrong: %+v", a)
	}
	if h := strs[0].Atoms[3]; h.Name != "H" || h.X != 0.5 || h.Mass > 1.2 {
		t.Errorf("row broken over lines read wrong: %+v", h)
	}
	if strs[1].Atoms[0].X != 1.1 {
		t.Error("second model coordinates wrong")
	}
}

func TestModelMax(t *testing.T) {
	mr := NewReader(strings.NewReader(twoModel), "test")
	mr.SetModelMax(1)
	strs, err := mr.Read()
	if err != nil {
		t.Fatal(err)
	}
	if len(strs) != 1 {
		t.Error("wanted 1 model, got", len(strs))
	}
}

func TestBroken(t *testing.T) {
	tests := []struct {
		name, in string
	}{
		{"no coords", "loop_\n_atom_site.id\n_atom_site.label_atom_id\n1 CA\n"},
		{"bad float", "loop_\n_atom_site.label_atom_id\n_atom_site.label_seq_id\n" +
			"_atom_site.Cartn_x\n_atom_site.Cartn_y\n_atom_site.Cartn_z\nCA 1 x 0 0\n"},
		{"short row", "loop_\n_atom_site.label_atom_id\n_atom_site.label_seq_id\n" +
			"_atom_site.Cartn_x\n_atom_site.Cartn_y\n_atom_site.Cartn_z\nCA 1 0 0\n_x.y 1\n"},
	}
	for _, tt := range tests {
		_, err := Read(strings.NewReader(tt.in), "broken")
		if err == nil {
			t.Error(tt.name, "should have failed")
			continue
		}
		if ErrLine(err) < 1 {
			t.Error(tt.name, "error without line number:", err)
		}
	}
}

func TestEmpty(t *testing.T) {
	strs, err := Read(strings.NewReader("# nothing here\n\n"), "empty")
	if err != nil || len(strs) != 0 {
		t.Error("empty input gave", strs, err)
	}
}

func BenchmarkSplit(b *testing.B) {
	line := []byte(`ATOM   1    N  N    . MET A 1 1   ? 27.340  24.430  2.614   1.00 9.67  ? 1   MET A N    1`)
	scratch := make([][]byte, 0, 25)
	for i := 0; i < b.N; i++ {
		if _, err := SplitCifLine(line, scratch); err != nil {
			b.Fatal(err)
		}
	}
}
