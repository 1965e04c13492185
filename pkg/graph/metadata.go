package graph

import (
	"github.com/depsight/graphops/pkg/keyed"
)

// Reserved field names of the JSON wire format. They are never read from or
// written into a metadata object as properties.
const (
	FieldNodes   = "nodes"
	FieldTags    = "tags"
	FieldKeyTags = "keytags"
	FieldKey     = "key"
	FieldTargets = "targets"
)

// UnkeyedTagKey is the tag-set key holding tags without a category.
const UnkeyedTagKey = ""

// Metadata is the attribute bag carried by graphs, nodes and edges:
// string properties and keyed tag sets, both with case-insensitive keys.
// The unkeyed tag set (key "") always exists but may be empty.
// The zero value is not usable - use NewMetadata.
type Metadata struct {
	props *keyed.KeyMap[string]
	tags  *keyed.KeySetMap
}

// NewMetadata creates an empty metadata bag.
func NewMetadata() *Metadata {
	md := &Metadata{
		props: keyed.NewKeyMap[string](),
		tags:  keyed.NewKeySetMap(),
	}
	md.tags.Set(UnkeyedTagKey, keyed.NewKeySet())
	return md
}

// SetProperty stores value under key, replacing any previous value.
func (md *Metadata) SetProperty(key, value string) { md.props.Set(key, value) }

// DeleteProperty removes key and reports whether it was present.
// A deleted property is indistinguishable from one never set.
func (md *Metadata) DeleteProperty(key string) bool { return md.props.Delete(key) }

// Property returns the value for key and whether it is set.
func (md *Metadata) Property(key string) (string, bool) { return md.props.Get(key) }

// Properties returns the live property map. It is owned by the metadata;
// mutations through it are visible to the holder.
func (md *Metadata) Properties() *keyed.KeyMap[string] { return md.props }

// Tags returns the mutable tag set for key, creating an empty one on first
// read. Use UnkeyedTagKey (the empty string) for uncategorized tags.
func (md *Metadata) Tags(key string) *keyed.KeySet {
	set, ok := md.tags.Get(key)
	if !ok {
		set = keyed.NewKeySet()
		md.tags.Set(key, set)
	}
	return set
}

// TryTags returns the tag set for key only if it exists and is non-empty.
// Empty sets are treated as absent for read purposes.
func (md *Metadata) TryTags(key string) (*keyed.KeySet, bool) {
	set, ok := md.tags.Get(key)
	if !ok || set.Len() == 0 {
		return nil, false
	}
	return set, true
}

// HasAnyTag reports whether the set for key shares at least one element
// with the given values.
func (md *Metadata) HasAnyTag(key string, values ...string) bool {
	set, ok := md.TryTags(key)
	return ok && set.OverlapsAny(values...)
}

// KeyedTags returns the live map of tag sets, including the unkeyed entry.
func (md *Metadata) KeyedTags() *keyed.KeySetMap { return md.tags }

// Import copies data from src: properties overwrite existing values, tag
// sets are unioned per key. Either side can be disabled.
func (md *Metadata) Import(src *Metadata, tags, props bool) {
	if src == nil {
		return
	}
	if props {
		src.props.All(func(key, value string) bool {
			md.props.Set(key, value)
			return true
		})
	}
	if tags {
		md.tags.UnionWith(src.tags)
	}
}

// Clone returns an independent copy of the metadata.
func (md *Metadata) Clone() *Metadata {
	out := NewMetadata()
	out.Import(md, true, true)
	return out
}

// IsEmpty reports whether the metadata has no properties and no tags.
func (md *Metadata) IsEmpty() bool {
	return md.props.Len() == 0 && md.tags.PairCount() == 0
}

// AddToObject projects the metadata into a JSON-style object: properties
// become sibling string fields, non-empty unkeyed tags an array under
// "tags", and non-empty keyed sets an object under "keytags" whose values
// collapse to a single string for one-element sets.
func (md *Metadata) AddToObject(obj map[string]any) {
	md.props.All(func(key, value string) bool {
		if !isReservedField(key) {
			obj[key] = value
		}
		return true
	})

	if unkeyed, ok := md.TryTags(UnkeyedTagKey); ok {
		vals := unkeyed.Values()
		arr := make([]any, len(vals))
		for i, v := range vals {
			arr[i] = v
		}
		obj[FieldTags] = arr
	}

	keytags := map[string]any{}
	md.tags.All(func(key string, set *keyed.KeySet) bool {
		if key == UnkeyedTagKey || set.Len() == 0 {
			return true
		}
		vals := set.Values()
		if len(vals) == 1 {
			keytags[key] = vals[0]
			return true
		}
		arr := make([]any, len(vals))
		for i, v := range vals {
			arr[i] = v
		}
		keytags[key] = arr
		return true
	})
	if len(keytags) > 0 {
		obj[FieldKeyTags] = keytags
	}
}

// FillFromObject imports metadata from a JSON-style object. Unreserved
// string fields become properties; the "tags" array fills the unkeyed set;
// the "keytags" object fills keyed sets, accepting a single string or an
// array per key. Malformed values are silently skipped: metadata is
// best-effort annotation and a bad tag must not lose the rest of the graph.
func (md *Metadata) FillFromObject(obj map[string]any) {
	for key, raw := range obj {
		if isReservedField(key) {
			continue
		}
		if s, ok := raw.(string); ok {
			md.props.Set(key, s)
		}
	}

	if raw, ok := obj[FieldTags]; ok {
		fillTagSet(md.Tags(UnkeyedTagKey), raw)
	}

	if raw, ok := obj[FieldKeyTags].(map[string]any); ok {
		for key, val := range raw {
			fillTagSet(md.Tags(key), val)
		}
	}
}

func fillTagSet(set *keyed.KeySet, raw any) {
	switch v := raw.(type) {
	case string:
		set.Add(v)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				set.Add(s)
			}
		}
	}
}

func isReservedField(key string) bool {
	switch keyed.Fold(key) {
	case FieldNodes, FieldTags, FieldKeyTags, FieldKey, FieldTargets:
		return true
	}
	return false
}
