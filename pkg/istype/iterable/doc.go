// Package iterable provides predicates over the iteration protocol:
// rangeable values, seq-shaped functions and iterator objects.
//
// A value is considered iterable when Go's range statement accepts it
// (slices, arrays, strings, maps, receivable channels, integers, seq
// funcs) or when it exposes a callable All member that takes no
// arguments and returns a seq func, the convention custom collections
// use to make themselves rangeable. The member's shape is verified; a
// callable All returning anything else does not make a value iterable.
package iterable
