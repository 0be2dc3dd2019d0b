package merge3

import (
	"reflect"
	"testing"
)

func strs(s ...string) []string { return s }

func TestMerge_Identity(t *testing.T) {
	a := strs("A", "B", "C")
	r := Merge(a, a, a)
	if !r.Success() {
		t.Fatalf("expected success, got conflict: %+v", r)
	}
	if !reflect.DeepEqual(r.Sequence, a) {
		t.Fatalf("Sequence = %v, want %v", r.Sequence, a)
	}
}

func TestMerge_FastPaths(t *testing.T) {
	base := strs("A", "B")
	ours := strs("A", "X")
	theirs := strs("A", "B", "Y")

	if r := Merge(base, base, theirs); !r.Success() || !reflect.DeepEqual(r.Sequence, theirs) {
		t.Fatalf("merge(b,b,t) = %+v, want Success(%v)", r, theirs)
	}
	if r := Merge(base, ours, base); !r.Success() || !reflect.DeepEqual(r.Sequence, ours) {
		t.Fatalf("merge(b,o,b) = %+v, want Success(%v)", r, ours)
	}
	if r := Merge(base, ours, ours); !r.Success() || !reflect.DeepEqual(r.Sequence, ours) {
		t.Fatalf("merge(b,x,x) = %+v, want Success(%v)", r, ours)
	}
}

func TestMerge_NonOverlapping(t *testing.T) {
	base := strs("A", "B", "C", "D")
	ours := strs("A", "X", "C", "D")
	theirs := strs("A", "B", "C", "Y")

	r := Merge(base, ours, theirs)
	if !r.Success() {
		t.Fatalf("expected success, got %+v", r)
	}
	want := strs("A", "X", "C", "Y")
	if !reflect.DeepEqual(r.Sequence, want) {
		t.Fatalf("Sequence = %v, want %v", r.Sequence, want)
	}
}

func TestMerge_ConflictingReplacement(t *testing.T) {
	base := strs("A", "B", "C")
	ours := strs("A", "X", "C")
	theirs := strs("A", "Y", "C")

	r := Merge(base, ours, theirs)
	if r.Success() {
		t.Fatalf("expected conflict, got success: %v", r.Sequence)
	}
	if len(r.Conflicts) != 1 {
		t.Fatalf("len(Conflicts) = %d, want 1", len(r.Conflicts))
	}
	c := r.Conflicts[0]
	if !reflect.DeepEqual(c.Base, strs("B")) || !reflect.DeepEqual(c.Ours, strs("X")) || !reflect.DeepEqual(c.Theirs, strs("Y")) {
		t.Fatalf("conflict = %+v, want base=[B] ours=[X] theirs=[Y]", c)
	}
}

func TestMerge_DeleteVsModify(t *testing.T) {
	base := strs("A", "B", "C")
	ours := strs("A", "C")
	theirs := strs("A", "X", "C")

	r := Merge(base, ours, theirs)
	if r.Success() {
		t.Fatalf("expected conflict, got success: %v", r.Sequence)
	}
	if len(r.Conflicts) != 1 {
		t.Fatalf("len(Conflicts) = %d, want 1", len(r.Conflicts))
	}
	c := r.Conflicts[0]
	if len(c.Ours) != 0 {
		t.Errorf("Ours = %v, want empty", c.Ours)
	}
	if !reflect.DeepEqual(c.Theirs, strs("X")) {
		t.Errorf("Theirs = %v, want [X]", c.Theirs)
	}
}

func TestMerge_IdenticalChangeBothSides(t *testing.T) {
	base := strs("A", "B", "C")
	ours := strs("A", "X", "C")
	theirs := strs("A", "X", "C")

	r := Merge(base, ours, theirs)
	if !r.Success() {
		t.Fatalf("expected success, got %+v", r)
	}
	if !reflect.DeepEqual(r.Sequence, ours) {
		t.Fatalf("Sequence = %v, want %v", r.Sequence, ours)
	}
}

func TestMerge_MultipleNonOverlapping(t *testing.T) {
	base := strs("A", "B", "C", "D", "E", "F")
	ours := strs("A", "X", "C", "D", "E", "F")
	theirs := strs("A", "B", "C", "Y", "E", "F")

	r := Merge(base, ours, theirs)
	if !r.Success() {
		t.Fatalf("expected success, got %+v", r)
	}
	want := strs("A", "X", "C", "Y", "E", "F")
	if !reflect.DeepEqual(r.Sequence, want) {
		t.Fatalf("Sequence = %v, want %v", r.Sequence, want)
	}
}

func TestMerge_CompetingAppends(t *testing.T) {
	base := strs("A", "B")
	ours := strs("A", "B", "X")
	theirs := strs("A", "B", "Y")

	r := Merge(base, ours, theirs)
	if r.Success() {
		t.Fatalf("expected conflict, got success: %v", r.Sequence)
	}
	if len(r.Conflicts) != 1 {
		t.Fatalf("len(Conflicts) = %d, want 1", len(r.Conflicts))
	}
}

func TestMerge_EmptyBaseBothAdd(t *testing.T) {
	var base []string
	ours := strs("X")
	theirs := strs("Y")

	r := Merge(base, ours, theirs)
	if r.Success() {
		t.Fatalf("expected conflict, got success: %v", r.Sequence)
	}
	if len(r.Conflicts) != 1 {
		t.Fatalf("len(Conflicts) = %d, want 1", len(r.Conflicts))
	}
	c := r.Conflicts[0]
	if len(c.Base) != 0 {
		t.Errorf("Base = %v, want empty", c.Base)
	}
}

func TestMerge_PartialOmitsConflictContent(t *testing.T) {
	base := strs("A", "B", "C", "D")
	ours := strs("A", "X", "C", "D")
	theirs := strs("A", "Y", "C", "D")

	r := Merge(base, ours, theirs)
	if r.Success() {
		t.Fatalf("expected conflict")
	}
	// partial keeps neither side's replacement for the conflicting
	// region: the shared prefix "A" is copied before the conflict is
	// detected, and "C","D" are copied after, but "X"/"Y" never appear.
	want := strs("A", "C", "D")
	if !reflect.DeepEqual(r.Partial, want) {
		t.Fatalf("Partial = %v, want %v", r.Partial, want)
	}
	if r.Conflicts[0].StartIndex != 1 {
		t.Fatalf("StartIndex = %d, want 1", r.Conflicts[0].StartIndex)
	}
}

func TestMerge_Symmetry(t *testing.T) {
	base := strs("A", "B", "C", "D", "E", "F")
	ours := strs("A", "X", "C", "D", "E", "F")
	theirs := strs("A", "B", "C", "Y", "E", "F")

	r1 := Merge(base, ours, theirs)
	r2 := Merge(base, theirs, ours)
	if r1.Success() != r2.Success() {
		t.Fatalf("symmetry: success mismatch %v vs %v", r1.Success(), r2.Success())
	}
	if r1.Success() && !reflect.DeepEqual(r1.Sequence, r2.Sequence) {
		t.Fatalf("symmetry: %v vs %v", r1.Sequence, r2.Sequence)
	}
}
