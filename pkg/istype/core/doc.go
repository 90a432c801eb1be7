// Package core contains member-probing plumbing shared by the iterable and
// capability packages. It does not define any capability tiers; it provides
// the reflective primitives they are built from.
//
// Key constructs:
// - HasCallable/HasMember: probe a value for an invocable or merely present member
// - TypeHasCallable/TypeHasMember: type-level variants for constructor checks
// - IsSeqFunc: recognize iter.Seq / iter.Seq2 shaped function types
//
// Probing is read-only: members are located but never invoked.
package core
