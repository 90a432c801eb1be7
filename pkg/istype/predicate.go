package istype

import (
	"github.com/pkg/errors"
)

// Both composes two predicates into their logical AND. The arguments are
// accepted dynamically so that callers holding predicates as plain values
// can compose them; each must be a Predicate, a func(any) bool, or a func
// value invocable with one interface argument returning one bool.
//
// A non-callable argument fails fast with an error naming the argument
// position and its reported type ("nil" when the value is absent).
func Both(first, second any) (Predicate, error) {
	a, ok := asPredicate(first)
	if !ok {
		return nil, errors.Errorf("istype: first argument to Both is not a predicate: %s", TypeName(first))
	}
	b, ok := asPredicate(second)
	if !ok {
		return nil, errors.Errorf("istype: second argument to Both is not a predicate: %s", TypeName(second))
	}
	return func(v any) bool {
		return a(v) && b(v)
	}, nil
}

// MustBoth is Both for static composition sites; it panics on a
// non-callable argument.
func MustBoth(first, second any) Predicate {
	p, err := Both(first, second)
	if err != nil {
		panic(err)
	}
	return p
}

// Either composes two predicates into their logical OR, with the same
// argument validation as Both.
func Either(first, second any) (Predicate, error) {
	a, ok := asPredicate(first)
	if !ok {
		return nil, errors.Errorf("istype: first argument to Either is not a predicate: %s", TypeName(first))
	}
	b, ok := asPredicate(second)
	if !ok {
		return nil, errors.Errorf("istype: second argument to Either is not a predicate: %s", TypeName(second))
	}
	return func(v any) bool {
		return a(v) || b(v)
	}, nil
}

// Not negates a predicate. A nil predicate accepts nothing, so its
// negation is Always.
func Not(p Predicate) Predicate {
	if p == nil {
		return Always
	}
	return func(v any) bool {
		return !p(v)
	}
}
