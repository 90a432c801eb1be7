// Package primitive provides leaf predicates over the built-in kinds:
// strings, numbers, booleans, nil, funcs, maps, slices and friends.
//
// Every predicate is total: any input, including malformed or unusual
// values, produces a boolean and never a panic. These are the leaves the
// iterable and capability packages build on.
package primitive
