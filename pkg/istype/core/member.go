package core

import "reflect"

// CallableType returns the func type of the invocable member called name
// on v: a method in its method set, an exported struct field of func kind
// holding a non-nil func, or a string-keyed map entry holding a non-nil
// func. A member holding a non-func value never satisfies a callable
// requirement. The member is located, never invoked.
func CallableType(v reflect.Value, name string) (reflect.Type, bool) {
	if !probeable(v) {
		return nil, false
	}
	if m := v.MethodByName(name); m.IsValid() {
		return m.Type(), true
	}

	elem := v
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	switch elem.Kind() {
	case reflect.Struct:
		f := elem.FieldByName(name)
		if f.IsValid() && f.CanInterface() && f.Kind() == reflect.Func && !f.IsNil() {
			return f.Type(), true
		}
	case reflect.Map:
		mv := mapMember(elem, name)
		if mv.Kind() == reflect.Interface {
			mv = mv.Elem()
		}
		if mv.IsValid() && mv.Kind() == reflect.Func && !mv.IsNil() {
			return mv.Type(), true
		}
	}
	return nil, false
}

// HasCallable reports whether v exposes an invocable member called name.
func HasCallable(v reflect.Value, name string) bool {
	_, ok := CallableType(v, name)
	return ok
}

// HasMember reports whether v exposes a member called name at all, callable
// or not. Used for existence-only requirements such as Size.
func HasMember(v reflect.Value, name string) bool {
	if !probeable(v) {
		return false
	}
	if m := v.MethodByName(name); m.IsValid() {
		return true
	}

	elem := v
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	switch elem.Kind() {
	case reflect.Struct:
		f := elem.FieldByName(name)
		return f.IsValid() && f.CanInterface()
	case reflect.Map:
		return mapMember(elem, name).IsValid()
	}
	return false
}

// TypeCallableType is the type-level variant of CallableType, consulting
// the method sets of both t and *t plus exported func-typed struct
// fields. Concrete method types are normalized to drop the receiver, so
// the returned shape matches what CallableType reports for an instance.
// Map shapes carry no type-level members and always fail.
func TypeCallableType(t reflect.Type, name string) (reflect.Type, bool) {
	if t == nil {
		return nil, false
	}
	if m, ok := t.MethodByName(name); ok {
		return methodType(t, m), true
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		pt := reflect.PointerTo(t)
		if m, ok := pt.MethodByName(name); ok {
			return methodType(pt, m), true
		}
	}

	elem := t
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() == reflect.Struct {
		if f, ok := elem.FieldByName(name); ok && f.IsExported() && f.Type.Kind() == reflect.Func {
			return f.Type, true
		}
	}
	return nil, false
}

// TypeHasCallable reports whether t exposes an invocable member called
// name at the type level.
func TypeHasCallable(t reflect.Type, name string) bool {
	_, ok := TypeCallableType(t, name)
	return ok
}

// TypeHasMember is the type-level variant of HasMember.
func TypeHasMember(t reflect.Type, name string) bool {
	if t == nil {
		return false
	}
	if TypeHasCallable(t, name) {
		return true
	}

	elem := t
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() == reflect.Struct {
		f, ok := elem.FieldByName(name)
		return ok && f.IsExported()
	}
	return false
}

// mapMember looks up name in a string-keyed map bag. Maps whose key type
// cannot hold a string carry no named members, so the lookup fails.
func mapMember(m reflect.Value, name string) reflect.Value {
	if m.Type().Key().Kind() != reflect.String {
		return reflect.Value{}
	}
	return m.MapIndex(reflect.ValueOf(name).Convert(m.Type().Key()))
}

// probeable rejects values whose members could never be invoked: invalid
// values and nil pointers or maps, whose method sets reflect still reports.
func probeable(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		return !v.IsNil()
	}
	return true
}

// methodType strips the receiver that reflect prepends to concrete method
// signatures; interface methods already come without one.
func methodType(t reflect.Type, m reflect.Method) reflect.Type {
	mt := m.Type
	if t.Kind() == reflect.Interface {
		return mt
	}
	in := make([]reflect.Type, 0, mt.NumIn()-1)
	for i := 1; i < mt.NumIn(); i++ {
		in = append(in, mt.In(i))
	}
	out := make([]reflect.Type, 0, mt.NumOut())
	for i := 0; i < mt.NumOut(); i++ {
		out = append(out, mt.Out(i))
	}
	return reflect.FuncOf(in, out, mt.IsVariadic())
}
