package keyed

import (
	"maps"
	"slices"
)

type mapEntry[V any] struct {
	key   string // first-seen spelling
	value V
}

// KeyMap is a case-insensitive map from string keys to V.
// The spelling of the first insertion is preserved for iteration.
// The zero value is not usable - use NewKeyMap.
type KeyMap[V any] struct {
	items map[string]mapEntry[V] // fold -> entry
}

// NewKeyMap creates an empty map.
func NewKeyMap[V any]() *KeyMap[V] {
	return &KeyMap[V]{items: make(map[string]mapEntry[V])}
}

// Set stores value under key, replacing any previous value.
// The original spelling of an existing key is kept.
func (m *KeyMap[V]) Set(key string, value V) {
	f := Fold(key)
	if e, ok := m.items[f]; ok {
		e.value = value
		m.items[f] = e
		return
	}
	m.items[f] = mapEntry[V]{key: key, value: value}
}

// Get returns the value for key and whether it exists.
func (m *KeyMap[V]) Get(key string) (V, bool) {
	e, ok := m.items[Fold(key)]
	return e.value, ok
}

// Has reports whether key exists.
func (m *KeyMap[V]) Has(key string) bool {
	_, ok := m.items[Fold(key)]
	return ok
}

// Delete removes key and reports whether it was present.
func (m *KeyMap[V]) Delete(key string) bool {
	f := Fold(key)
	if _, ok := m.items[f]; !ok {
		return false
	}
	delete(m.items, f)
	return true
}

// Len returns the number of entries.
func (m *KeyMap[V]) Len() int { return len(m.items) }

// Keys returns the stored key spellings in ascending fold order.
func (m *KeyMap[V]) Keys() []string {
	out := make([]string, 0, len(m.items))
	for _, f := range slices.Sorted(maps.Keys(m.items)) {
		out = append(out, m.items[f].key)
	}
	return out
}

// All calls fn for every entry in ascending fold order.
// Iteration stops early when fn returns false.
func (m *KeyMap[V]) All(fn func(key string, value V) bool) {
	for _, f := range slices.Sorted(maps.Keys(m.items)) {
		e := m.items[f]
		if !fn(e.key, e.value) {
			return
		}
	}
}

// KeySetMap is a KeyMap from string to *KeySet with pairwise convenience
// operations. The zero value is not usable - use NewKeySetMap.
type KeySetMap struct {
	m *KeyMap[*KeySet]
}

// NewKeySetMap creates an empty map of sets.
func NewKeySetMap() *KeySetMap {
	return &KeySetMap{m: NewKeyMap[*KeySet]()}
}

// Set stores the set under key, replacing any previous set.
func (sm *KeySetMap) Set(key string, set *KeySet) { sm.m.Set(key, set) }

// Get returns the set for key and whether it exists.
func (sm *KeySetMap) Get(key string) (*KeySet, bool) { return sm.m.Get(key) }

// Has reports whether key exists.
func (sm *KeySetMap) Has(key string) bool { return sm.m.Has(key) }

// Delete removes key and reports whether it was present.
func (sm *KeySetMap) Delete(key string) bool { return sm.m.Delete(key) }

// Len returns the number of keys.
func (sm *KeySetMap) Len() int { return sm.m.Len() }

// Keys returns the stored key spellings in ascending fold order.
func (sm *KeySetMap) Keys() []string { return sm.m.Keys() }

// All calls fn for every entry in ascending fold order.
func (sm *KeySetMap) All(fn func(key string, set *KeySet) bool) { sm.m.All(fn) }

// AddPair inserts value into the set at key, creating the set if needed.
// Reports whether the set grew.
func (sm *KeySetMap) AddPair(key, value string) bool {
	set, ok := sm.m.Get(key)
	if !ok {
		set = NewKeySet()
		sm.m.Set(key, set)
	}
	return set.Add(value)
}

// RemovePair removes value from the set at key. When prune is true and the
// set is empty afterwards, the entry itself is dropped; pruning applies even
// when value was not a member. Reports whether value was removed.
func (sm *KeySetMap) RemovePair(key, value string, prune bool) bool {
	set, ok := sm.m.Get(key)
	if !ok {
		return false
	}
	removed := set.Remove(value)
	if prune && set.Len() == 0 {
		sm.m.Delete(key)
	}
	return removed
}

// UnionWith merges other into sm, unioning sets with matching keys.
func (sm *KeySetMap) UnionWith(other *KeySetMap) {
	if other == nil {
		return
	}
	other.All(func(key string, set *KeySet) bool {
		mine, ok := sm.m.Get(key)
		if !ok {
			sm.m.Set(key, set.Clone())
			return true
		}
		mine.UnionWith(set)
		return true
	})
}

// PairCount returns the sum of all set sizes.
func (sm *KeySetMap) PairCount() int {
	total := 0
	sm.m.All(func(_ string, set *KeySet) bool {
		total += set.Len()
		return true
	})
	return total
}

// Clone returns a deep copy of the map and its sets.
func (sm *KeySetMap) Clone() *KeySetMap {
	out := NewKeySetMap()
	sm.All(func(key string, set *KeySet) bool {
		out.m.Set(key, set.Clone())
		return true
	})
	return out
}

// View returns a read-only projection of sm.
// The view reflects subsequent mutation of sm; callers needing an
// independent snapshot must Clone first.
func (sm *KeySetMap) View() MapView { return MapView{m: sm} }
