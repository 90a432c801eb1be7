package capability

import (
	"reflect"

	"github.com/davrell/istype/pkg/istype/core"
	"github.com/davrell/istype/pkg/istype/iterable"
)

// SatisfiesConstructor reports whether v is a constructor of the tier
// described by d: a func value with at least one result whose first result
// type satisfies d at the type level. The candidate is never called; the
// result type's method set (value and pointer receivers), func-typed
// struct fields and type-level iterability stand in for an instance.
// Map-bag shapes carry no type-level members and never classify.
func SatisfiesConstructor(v any, d *Descriptor) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	if v == nil || d == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return false
	}
	t := rv.Type()
	if t.NumOut() == 0 {
		return false
	}
	return typeSatisfies(t.Out(0), d)
}

func typeSatisfies(t reflect.Type, d *Descriptor) bool {
	if d.Base != nil && !typeSatisfies(t, d.Base) {
		return false
	}
	if d.Size && !core.TypeHasMember(t, "Size") {
		return false
	}
	if d.Iterable && !iterable.IsIterableType(t) {
		return false
	}
	for _, name := range d.Methods {
		if !core.TypeHasCallable(t, name) {
			return false
		}
	}
	return true
}

// IsReadonlyCollectionConstructor reports whether v constructs readonly
// collections.
func IsReadonlyCollectionConstructor(v any) bool {
	return SatisfiesConstructor(v, ReadonlyCollection)
}

// IsSetLikeConstructor reports whether v constructs set-like values.
func IsSetLikeConstructor(v any) bool {
	return SatisfiesConstructor(v, SetLike)
}

// IsExtendedSetLikeConstructor reports whether v constructs extended
// set-like values.
func IsExtendedSetLikeConstructor(v any) bool {
	return SatisfiesConstructor(v, ExtendedSetLike)
}

// IsMapLikeConstructor reports whether v constructs map-like values.
func IsMapLikeConstructor(v any) bool {
	return SatisfiesConstructor(v, MapLike)
}
