package keyed

// Set is the read-only face of [KeySet]. MapView hands out owned sets
// through this interface so analyses cannot mutate the host map.
type Set interface {
	Contains(v string) bool
	Len() int
	Values() []string
}

// MapView exposes a [KeySetMap] as an immutable mapping from key to
// immutable set. It also provides the projection operators the analysis
// pipeline is built on: the image of a seed set under the mapping, and its
// complement, which is the transitive-reduction primitive used by purify.
type MapView struct {
	m *KeySetMap
}

// Has reports whether key exists.
func (v MapView) Has(key string) bool { return v.m.Has(key) }

// Get returns the set mapped by key, or nil when absent.
func (v MapView) Get(key string) Set {
	set, ok := v.m.Get(key)
	if !ok {
		return nil
	}
	return set
}

// Keys returns the mapped keys in ascending fold order.
func (v MapView) Keys() []string { return v.m.Keys() }

// Len returns the number of mapped keys.
func (v MapView) Len() int { return v.m.Len() }

// All calls fn for every entry in ascending fold order.
func (v MapView) All(fn func(key string, set Set) bool) {
	v.m.All(func(key string, set *KeySet) bool { return fn(key, set) })
}

// Project returns the union of the sets mapped by each seed.
// Seeds without a mapping are ignored. The result is owned by the caller.
func (v MapView) Project(seeds []string) *KeySet {
	out := NewKeySet()
	v.ProjectInto(seeds, out)
	return out
}

// ProjectInto accumulates the union of the seeds' images into target.
func (v MapView) ProjectInto(seeds []string, target *KeySet) {
	for _, seed := range seeds {
		if set, ok := v.m.Get(seed); ok {
			target.UnionWith(set)
		}
	}
}

// ProjectMap maps each (key, seeds) entry of seedMap to (key, Project(seeds)),
// producing a new KeySetMap.
func (v MapView) ProjectMap(seedMap *KeySetMap) *KeySetMap {
	out := NewKeySetMap()
	seedMap.All(func(key string, seeds *KeySet) bool {
		out.Set(key, v.Project(seeds.Values()))
		return true
	})
	return out
}

// NotInProjection returns the subset of keys that does not appear in the
// union of the seeds' images. The union is never materialized; each
// candidate is tested against the seed images directly.
func (v MapView) NotInProjection(keys *KeySet, seeds []string) *KeySet {
	out := NewKeySet()
	for _, k := range keys.Values() {
		if !v.inProjection(k, seeds) {
			out.Add(k)
		}
	}
	return out
}

// NotInSelfProjection returns the subset of keys not covered by the images
// of keys itself. Over a reach map this keeps exactly the edges that no
// sibling target already implies.
func (v MapView) NotInSelfProjection(keys *KeySet) *KeySet {
	return v.NotInProjection(keys, keys.Values())
}

// NotInSelfProjectionMap applies NotInSelfProjection to every entry of
// seedMap, producing a new KeySetMap.
func (v MapView) NotInSelfProjectionMap(seedMap *KeySetMap) *KeySetMap {
	out := NewKeySetMap()
	seedMap.All(func(key string, seeds *KeySet) bool {
		out.Set(key, v.NotInSelfProjection(seeds))
		return true
	})
	return out
}

func (v MapView) inProjection(key string, seeds []string) bool {
	for _, seed := range seeds {
		if set, ok := v.m.Get(seed); ok && set.Contains(key) {
			return true
		}
	}
	return false
}
