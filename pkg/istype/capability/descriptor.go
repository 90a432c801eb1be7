package capability

// Descriptor names a structural capability tier: the callable members a
// value must expose, plus optional Size and iterability requirements.
// Stronger tiers point at their Base tier instead of repeating its members.
// Descriptors are immutable constants; define new tiers at init time only.
type Descriptor struct {
	// Name identifies the tier in diagnostics.
	Name string
	// Base is the weaker tier checked before this one, if any.
	Base *Descriptor
	// Methods lists required callable members.
	Methods []string
	// Size requires a Size member; existence only, any shape.
	Size bool
	// Iterable requires the value to satisfy iterable.IsIterable.
	Iterable bool
}

// The capability ladder. Each tier adds members to its base; see the
// package documentation for the classification rules.
var (
	ReadonlyCollection = &Descriptor{
		Name:    "ReadonlyCollection",
		Size:    true,
		Methods: []string{"Has", "Keys"},
	}

	SetLike = &Descriptor{
		Name:     "SetLike",
		Base:     ReadonlyCollection,
		Iterable: true,
		Methods:  []string{"Add", "Delete", "Clear", "Values", "Entries", "ForEach"},
	}

	ExtendedSetLike = &Descriptor{
		Name: "ExtendedSetLike",
		Base: SetLike,
		Methods: []string{
			"Union", "Intersection", "Difference", "SymmetricDifference",
			"IsSubsetOf", "IsSupersetOf", "IsDisjointFrom",
		},
	}

	MapLike = &Descriptor{
		Name:     "MapLike",
		Size:     true,
		Iterable: true,
		Methods:  []string{"Get", "Set", "Delete", "Clear", "Has", "Keys", "Values", "Entries", "ForEach"},
	}
)
