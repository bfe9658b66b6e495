package sel_test

import (
	"reflect"
	"testing"

	"github.com/andrew-torda/qcontact/pdb/cmmn"
	. "github.com/andrew-torda/qcontact/pdb/sel"
)

func mkStruct() *cmmn.Structure {
	return &cmmn.Structure{Atoms: []cmmn.Atom{
		{ID: 1, Name: "N", ResName: "ALA", ResID: 10, Chain: "A", Mass: 14},
		{ID: 2, Name: "CA", ResName: "ALA", ResID: 10, Chain: "A", Mass: 12},
		{ID: 3, Name: "HA", ResName: "ALA", ResID: 10, Chain: "A", Mass: 1},
		{ID: 4, Name: "CA", ResName: "GLY", ResID: 11, Chain: "A", Mass: 12},
		{ID: 5, Name: "N1", ResName: "G", ResID: 1, Chain: "B", Mass: 14},
		{ID: 6, Name: "N3", ResName: "G", ResID: 1, Chain: "B", Mass: 14},
		{ID: 7, Name: "CA", ResName: "SOL", ResID: 12, Chain: "A", Mass: 12},
	}}
}

func TestApply(t *testing.T) {
	s := mkStruct()
	tests := []struct {
		name string
		sl   Sel
		want []int
	}{
		{"all", Sel{}, []int{0, 1, 2, 3, 4, 5, 6}},
		{"CA", CA, []int{1, 3}},
		{"nucleic", NucleicN1N3, []int{4, 5}},
		{"heavy", Sel{Heavy: true}, []int{0, 1, 3, 4, 5, 6}},
		{"window", Sel{ResMin: 11, ResMax: 12}, []int{3, 6}},
		{"chain", Sel{Chains: []string{"B"}}, []int{4, 5}},
		{"resname", Sel{ResNames: []string{"ALA"}, Names: []string{"HA"}}, []int{2}},
	}
	for _, tt := range tests {
		if got := tt.sl.Apply(s); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: got %v want %v", tt.name, got, tt.want)
		}
	}
}

func TestTake(t *testing.T) {
	s := mkStruct()
	ca := CA.Take(s)
	if ca.Len() != 2 || ca.Atoms[1].ID != 4 {
		t.Error("Take gave wrong atoms", ca.Atoms)
	}
	ca.Atoms[0].X = 5
	if s.Atoms[1].X != 0 {
		t.Error("Take shares atoms with original")
	}
}

func TestNormResIDs(t *testing.T) {
	s := mkStruct()
	NormResIDs(s)
	want := []int{1, 1, 1, 2, 3, 3, 4}
	if got := s.ResIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestResAtomIDs(t *testing.T) {
	m := ResAtomIDs(mkStruct(), NucleicN1N3)
	if len(m) != 1 || m[1] != 5 {
		t.Error("nucleic lookup wrong", m)
	}
}

func TestParseClass(t *testing.T) {
	for s, want := range map[string]Class{"": Any, "protein": Protein, "Nucleic": Nucleic} {
		if c, err := ParseClass(s); err != nil || c != want {
			t.Error("ParseClass wrong on", s)
		}
	}
	if _, err := ParseClass("lipid"); err == nil {
		t.Error("lipid should not be a class")
	}
}
