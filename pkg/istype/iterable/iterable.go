package iterable

import (
	"reflect"

	"github.com/davrell/istype/pkg/istype/core"
)

// IsIterable reports whether v can be iterated: either range accepts it
// directly or it exposes a callable All member taking no arguments and
// returning a seq-shaped func. A member named All with any other shape
// does not count.
func IsIterable(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rangeableKind(rv.Type()) {
		return true
	}
	t, ok := core.CallableType(rv, "All")
	return ok && producesSeq(t)
}

// IsIterableType is the type-level variant of IsIterable, used for
// constructor classification where no value exists to probe.
func IsIterableType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if rangeableKind(t) {
		return true
	}
	mt, ok := core.TypeCallableType(t, "All")
	return ok && producesSeq(mt)
}

// IsIterator reports whether v exposes a callable Next member, the
// iterator-object protocol.
func IsIterator(v any) bool {
	if v == nil {
		return false
	}
	return core.HasCallable(reflect.ValueOf(v), "Next")
}

// IsSeq reports whether v is a seq-shaped func whose yield accepts one
// value (the iter.Seq shape).
func IsSeq(v any) bool {
	return isSeqWithArity(v, 1)
}

// IsSeq2 reports whether v is a seq-shaped func whose yield accepts two
// values (the iter.Seq2 shape).
func IsSeq2(v any) bool {
	return isSeqWithArity(v, 2)
}

// isSeqWithArity reports whether v is a seq-shaped func whose yield
// accepts exactly arity values.
func isSeqWithArity(v any, arity int) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	return core.IsSeqFunc(t) && t.In(0).NumIn() == arity
}

// rangeableKind reports whether Go's range statement accepts t directly.
func rangeableKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.String, reflect.Map:
		return true
	case reflect.Chan:
		return t.ChanDir() != reflect.SendDir
	case reflect.Pointer:
		return t.Elem().Kind() == reflect.Array
	case reflect.Func:
		return core.IsSeqFunc(t)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		// range over integers
		return true
	}
	return false
}

// producesSeq reports whether t is a niladic func whose single result is
// seq-shaped, the shape an iterator accessor must have.
func producesSeq(t reflect.Type) bool {
	return t.Kind() == reflect.Func && !t.IsVariadic() &&
		t.NumIn() == 0 && t.NumOut() == 1 && core.IsSeqFunc(t.Out(0))
}
