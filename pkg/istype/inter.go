package istype

import "iter"

// ReadonlyCollection is the minimal membership-test capability: a sized
// collection that can be probed and enumerated but not mutated.
type ReadonlyCollection[K any] interface {
	// Size returns the number of elements.
	Size() int
	// Has reports membership.
	Has(k K) bool
	// Keys enumerates the element keys.
	Keys() iter.Seq[K]
}

// SetLike extends ReadonlyCollection with the mutating and enumerating
// surface of a set.
type SetLike[K any] interface {
	ReadonlyCollection[K]
	Add(k K)
	// Delete reports whether the element was present.
	Delete(k K) bool
	Clear()
	Values() iter.Seq[K]
	Entries() iter.Seq2[K, K]
	ForEach(fn func(k K))
	// All makes the set rangeable.
	All() iter.Seq[K]
}

// ExtendedSetLike extends SetLike with the set-composition surface.
type ExtendedSetLike[K any] interface {
	SetLike[K]
	Union(other SetLike[K]) SetLike[K]
	Intersection(other SetLike[K]) SetLike[K]
	Difference(other SetLike[K]) SetLike[K]
	SymmetricDifference(other SetLike[K]) SetLike[K]
	IsSubsetOf(other SetLike[K]) bool
	IsSupersetOf(other SetLike[K]) bool
	IsDisjointFrom(other SetLike[K]) bool
}

// MapLike is the keyed-collection capability.
type MapLike[K comparable, V any] interface {
	Size() int
	Has(k K) bool
	Get(k K) (V, bool)
	Set(k K, v V)
	Delete(k K) bool
	Clear()
	Keys() iter.Seq[K]
	Values() iter.Seq[V]
	Entries() iter.Seq2[K, V]
	ForEach(fn func(k K, v V))
	All() iter.Seq2[K, V]
}
