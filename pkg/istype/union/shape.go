package union

import "reflect"

// Shape is the structural result of intersecting union members: the
// fields and methods a value must expose, plus an optional exact-type
// constraint contributed by non-structural members. The bottom shape is
// the uninhabited intersection; nothing satisfies it.
type Shape struct {
	bottom  bool
	exact   reflect.Type
	fields  map[string]reflect.Type
	methods map[string]reflect.Type
}

// Bottom returns the uninhabited shape.
func Bottom() Shape {
	return Shape{bottom: true}
}

// Intersection merges the structural requirements of every member: struct
// members contribute their exported fields, interface members their
// methods, and any other member an exact-type constraint. Conflicting
// requirements (same name, different type; two distinct exact types)
// collapse to the bottom shape, as does the empty union.
func (s Set) Intersection() Shape {
	return s.merge(false)
}

// Flatten is Intersection with embedded struct fields promoted, so the
// merged shape exposes every requirement at a single level instead of
// keeping embedded types as opaque members. Purely cosmetic for values
// that expose their promoted fields; non-struct members pass through
// unchanged.
func (s Set) Flatten() Shape {
	return s.merge(true)
}

func (s Set) merge(flatten bool) Shape {
	if s.IsEmpty() {
		return Bottom()
	}
	sh := Shape{
		fields:  map[string]reflect.Type{},
		methods: map[string]reflect.Type{},
	}
	for _, t := range s.members {
		if !sh.absorb(t, flatten) {
			return Bottom()
		}
	}
	return sh
}

func (sh *Shape) absorb(t reflect.Type, flatten bool) bool {
	switch t.Kind() {
	case reflect.Struct:
		return sh.absorbStruct(t, flatten)
	case reflect.Interface:
		for i := 0; i < t.NumMethod(); i++ {
			m := t.Method(i)
			if !put(sh.methods, m.Name, m.Type) {
				return false
			}
		}
		return true
	default:
		if sh.exact != nil && sh.exact != t {
			return false
		}
		sh.exact = t
		return true
	}
}

func (sh *Shape) absorbStruct(t reflect.Type, flatten bool) bool {
	if flatten {
		for _, f := range reflect.VisibleFields(t) {
			if f.Anonymous || !f.IsExported() {
				continue
			}
			if !put(sh.fields, f.Name, f.Type) {
				return false
			}
		}
		return true
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if !put(sh.fields, f.Name, f.Type) {
			return false
		}
	}
	return true
}

// IsBottom reports whether the shape is uninhabited.
func (sh Shape) IsBottom() bool {
	return sh.bottom
}

// Exact returns the exact-type constraint, if any member contributed one.
func (sh Shape) Exact() reflect.Type {
	return sh.exact
}

// Fields returns a copy of the required field names and types.
func (sh Shape) Fields() map[string]reflect.Type {
	return copyTypes(sh.fields)
}

// Methods returns a copy of the required method names and signatures.
func (sh Shape) Methods() map[string]reflect.Type {
	return copyTypes(sh.methods)
}

// Satisfies reports whether v exposes every requirement of the shape:
// each required field with its exact type (promoted fields count), each
// required method with its exact signature, and assignability to the
// exact-type constraint when present. Nothing satisfies bottom.
func (sh Shape) Satisfies(v any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	if sh.bottom || v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if sh.exact != nil && !rv.Type().AssignableTo(sh.exact) {
		return false
	}

	if len(sh.fields) > 0 {
		sv := rv
		if sv.Kind() == reflect.Pointer {
			if sv.IsNil() {
				return false
			}
			sv = sv.Elem()
		}
		if sv.Kind() != reflect.Struct {
			return false
		}
		for name, want := range sh.fields {
			f, found := sv.Type().FieldByName(name)
			if !found || !f.IsExported() || f.Type != want {
				return false
			}
		}
	}

	for name, want := range sh.methods {
		m := rv.MethodByName(name)
		if !m.IsValid() || m.Type() != want {
			return false
		}
	}
	return true
}

func put(into map[string]reflect.Type, name string, t reflect.Type) bool {
	if have, exists := into[name]; exists {
		return have == t
	}
	into[name] = t
	return true
}

func copyTypes(src map[string]reflect.Type) map[string]reflect.Type {
	out := make(map[string]reflect.Type, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
