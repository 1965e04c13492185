package keyed

import (
	"slices"
	"testing"
)

func TestKeyMapCaseInsensitive(t *testing.T) {
	m := NewKeyMap[int]()
	m.Set("Key", 1)
	m.Set("KEY", 2)

	if got, _ := m.Get("key"); got != 2 {
		t.Errorf("Get(key) = %d, want 2", got)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
	if got := m.Keys(); !slices.Equal(got, []string{"Key"}) {
		t.Errorf("Keys() = %v, want [Key] (first spelling wins)", got)
	}
}

func TestKeyMapAllSorted(t *testing.T) {
	m := NewKeyMap[int]()
	m.Set("b", 2)
	m.Set("A", 1)
	m.Set("c", 3)

	var keys []string
	m.All(func(key string, _ int) bool {
		keys = append(keys, key)
		return true
	})
	if !slices.Equal(keys, []string{"A", "b", "c"}) {
		t.Errorf("All order = %v, want [A b c]", keys)
	}
}

func TestKeySetMapAddPair(t *testing.T) {
	sm := NewKeySetMap()

	if !sm.AddPair("k", "v1") {
		t.Error("AddPair should report growth for a new pair")
	}
	if sm.AddPair("K", "V1") {
		t.Error("AddPair should dedupe case-insensitively")
	}
	sm.AddPair("k", "v2")

	set, ok := sm.Get("k")
	if !ok || set.Len() != 2 {
		t.Fatalf("set at k has %d members, want 2", set.Len())
	}
	if sm.PairCount() != 2 {
		t.Errorf("PairCount() = %d, want 2", sm.PairCount())
	}
}

func TestKeySetMapRemovePair(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		prune     bool
		wantHas   bool
		wantFound bool
	}{
		{"NoPruneKeepsEmptyEntry", "v", false, true, true},
		{"PruneDropsEmptyEntry", "v", true, false, true},
		{"PruneAppliesWhenValueAbsent", "missing", true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewKeySetMap()
			sm.AddPair("k", "v")
			if tt.value == "missing" {
				sm.RemovePair("k", "v", false) // empty the set first
			}

			found := sm.RemovePair("k", tt.value, tt.prune)
			if found != tt.wantFound {
				t.Errorf("RemovePair found = %v, want %v", found, tt.wantFound)
			}
			if sm.Has("k") != tt.wantHas {
				t.Errorf("Has(k) = %v, want %v", sm.Has("k"), tt.wantHas)
			}
		})
	}
}

func TestKeySetMapUnionWith(t *testing.T) {
	a := NewKeySetMap()
	a.AddPair("k", "v1")
	b := NewKeySetMap()
	b.AddPair("K", "v2")
	b.AddPair("other", "x")

	a.UnionWith(b)

	set, _ := a.Get("k")
	if set.Len() != 2 {
		t.Errorf("set at k has %d members, want 2", set.Len())
	}
	if !a.Has("other") {
		t.Error("UnionWith should copy missing keys")
	}

	// The copied set must be independent of the source.
	other, _ := a.Get("other")
	other.Add("y")
	src, _ := b.Get("other")
	if src.Contains("y") {
		t.Error("UnionWith should deep-copy sets it adopts")
	}
}
