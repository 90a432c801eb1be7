package istype

import (
	"fmt"
	"reflect"
)

// Predicate is the universal dynamic predicate shape: one value in, one
// boolean out. Predicates are pure and total; they never panic and never
// mutate or retain their argument.
type Predicate func(v any) bool

// Always accepts every value.
func Always(any) bool {
	return true
}

// Never rejects every value.
func Never(any) bool {
	return false
}

// Is reports whether v's dynamic type is exactly assignable to T.
// It is the nominal counterpart of the structural checks in the
// capability package.
func Is[T any](v any) bool {
	_, ok := v.(T)
	return ok
}

// TypeName reports the type of v for diagnostics. Untyped nil is reported
// as "nil" rather than as an empty interface type.
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

// asPredicate converts a dynamically supplied value into a Predicate.
// Accepted shapes: Predicate, func(any) bool, or any func value that
// reflect can invoke with a single interface argument and a single bool
// result.
func asPredicate(v any) (Predicate, bool) {
	switch p := v.(type) {
	case nil:
		return nil, false
	case Predicate:
		if p == nil {
			return nil, false
		}
		return p, true
	case func(any) bool:
		if p == nil {
			return nil, false
		}
		return p, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, false
	}
	t := rv.Type()
	if t.NumIn() != 1 || t.NumOut() != 1 || t.IsVariadic() {
		return nil, false
	}
	if t.Out(0).Kind() != reflect.Bool {
		return nil, false
	}
	anyType := reflect.TypeOf((*any)(nil)).Elem()
	if t.In(0) != anyType {
		return nil, false
	}
	return func(in any) bool {
		return rv.Call([]reflect.Value{reflect.ValueOf(&in).Elem()})[0].Bool()
	}, true
}
