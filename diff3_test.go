package diff3

import (
	"reflect"
	"testing"
)

func TestFacade_Diff(t *testing.T) {
	got := Diff([]string{"A", "B", "C"}, []string{"A", "X", "C"})
	want := []Change[string]{
		{Type: Equal, Index: 0, Element: "A"},
		{Type: Delete, Index: 1, Element: "B"},
		{Type: Insert, Index: 1, Element: "X"},
		{Type: Equal, Index: 2, Element: "C"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Diff() = %+v, want %+v", got, want)
	}
}

func TestFacade_ThreeWay(t *testing.T) {
	r := ThreeWay([]string{"A", "B", "C"}, []string{"A", "X", "C"}, []string{"A", "B", "C"})
	if !r.Success() {
		t.Fatalf("expected success, got %+v", r)
	}
	if !reflect.DeepEqual(r.Sequence, []string{"A", "X", "C"}) {
		t.Fatalf("Sequence = %v", r.Sequence)
	}
}

func TestFacade_Lines(t *testing.T) {
	r := MergeLines("A\nB\nC", "A\nX\nC", "A\nB\nC")
	if !r.Success() || r.Merged != "A\nX\nC" {
		t.Fatalf("MergeLines = %+v", r)
	}

	changes := DiffLines("a\nb", "a\nc")
	if len(changes) != 3 {
		t.Fatalf("DiffLines len = %d, want 3", len(changes))
	}
}
