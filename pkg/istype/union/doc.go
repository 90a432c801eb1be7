// Package union folds an explicitly declared, ordered list of member types
// into an intersection shape, a flattened merge, or a positional tuple.
//
// Go cannot enumerate the alternatives of a sum type reflectively, so the
// union is declared: Declare(Of[A](), Of[B](), ...) captures the members
// and their order. Enumeration order is declaration order — deterministic
// and stable by construction, never inferred from type-system internals.
//
// Key operations:
// - Of/Declare: capture member types into an ordered Set
// - Tuple/TupleOr: positional conversion, each member exactly once
// - Intersection: merged structural requirements of all members
// - Flatten: intersection with embedded fields promoted to one level
// - Contains: runtime membership of a value in the union
//
// Mutually incompatible members legitimately collapse the intersection to
// the bottom shape, which nothing satisfies.
package union
