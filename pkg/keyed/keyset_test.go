package keyed

import (
	"slices"
	"testing"
)

func TestKeySetCaseInsensitive(t *testing.T) {
	s := NewKeySet("Alpha")

	if !s.Contains("alpha") || !s.Contains("ALPHA") {
		t.Error("Contains should ignore case")
	}
	if s.Add("ALPHA") {
		t.Error("Add of a different casing should not grow the set")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if got := s.Values(); !slices.Equal(got, []string{"Alpha"}) {
		t.Errorf("Values() = %v, want [Alpha] (first spelling wins)", got)
	}
}

func TestKeySetValuesSorted(t *testing.T) {
	s := NewKeySet("c", "B", "a")
	if got := s.Values(); !slices.Equal(got, []string{"a", "B", "c"}) {
		t.Errorf("Values() = %v, want [a B c]", got)
	}
}

func TestKeySetAlgebra(t *testing.T) {
	ab := NewKeySet("a", "b")
	bc := NewKeySet("B", "c")

	tests := []struct {
		name string
		got  *KeySet
		want []string
	}{
		{"Union", ab.Union(bc), []string{"a", "b", "c"}},
		{"Intersect", ab.Intersect(bc), []string{"b"}},
		{"Difference", ab.Difference(bc), []string{"a"}},
		{"SymmetricDifference", ab.SymmetricDifference(bc), []string{"a", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.Values(); !slices.Equal(got, tt.want) {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestKeySetRelations(t *testing.T) {
	ab := NewKeySet("a", "b")
	abc := NewKeySet("A", "B", "C")
	cd := NewKeySet("c", "d")

	if !ab.SubsetOf(abc) {
		t.Error("ab should be a subset of abc")
	}
	if !abc.SupersetOf(ab) {
		t.Error("abc should be a superset of ab")
	}
	if ab.Overlaps(cd) {
		t.Error("ab should not overlap cd")
	}
	if !abc.Overlaps(cd) {
		t.Error("abc should overlap cd")
	}
	if !abc.OverlapsAny("x", "c") {
		t.Error("OverlapsAny should find c")
	}
	if !ab.Equal(NewKeySet("B", "A")) {
		t.Error("Equal should ignore case and order")
	}
}

func TestKeySetCloneIndependent(t *testing.T) {
	s := NewKeySet("a")
	c := s.Clone()
	c.Add("b")

	if s.Contains("b") {
		t.Error("mutating the clone should not affect the original")
	}
}

func TestKeySetUnionWithNil(t *testing.T) {
	s := NewKeySet("a")
	s.UnionWith(nil)
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}
