package primitive

import "reflect"

// IsString reports whether v is of string kind, including named string types.
func IsString(v any) bool {
	return kindOf(v) == reflect.String
}

// IsBool reports whether v is of bool kind.
func IsBool(v any) bool {
	return kindOf(v) == reflect.Bool
}

// IsInt reports whether v is of a signed integer kind.
func IsInt(v any) bool {
	switch kindOf(v) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// IsUint reports whether v is of an unsigned integer kind.
func IsUint(v any) bool {
	switch kindOf(v) {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// IsFloat reports whether v is of a floating-point kind.
func IsFloat(v any) bool {
	switch kindOf(v) {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// IsComplex reports whether v is of a complex kind.
func IsComplex(v any) bool {
	switch kindOf(v) {
	case reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// IsNumber reports whether v is of any numeric kind.
func IsNumber(v any) bool {
	return IsInt(v) || IsUint(v) || IsFloat(v) || IsComplex(v)
}

// IsPrimitive reports whether v is a boolean, a number or a string.
func IsPrimitive(v any) bool {
	return IsBool(v) || IsNumber(v) || IsString(v)
}

// IsNil reports whether v is untyped nil or a nil value of a nilable kind
// (pointer, map, slice, chan, func, interface).
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsFunc reports whether v is a non-nil func value.
func IsFunc(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// IsMap reports whether v is of map kind.
func IsMap(v any) bool {
	return kindOf(v) == reflect.Map
}

// IsSlice reports whether v is of slice kind.
func IsSlice(v any) bool {
	return kindOf(v) == reflect.Slice
}

// IsArray reports whether v is of array kind.
func IsArray(v any) bool {
	return kindOf(v) == reflect.Array
}

// IsStruct reports whether v is of struct kind.
func IsStruct(v any) bool {
	return kindOf(v) == reflect.Struct
}

// IsPointer reports whether v is a non-nil pointer.
func IsPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && !rv.IsNil()
}

// IsChan reports whether v is of channel kind.
func IsChan(v any) bool {
	return kindOf(v) == reflect.Chan
}

// IsError reports whether v implements the error interface.
func IsError(v any) bool {
	_, ok := v.(error)
	return ok
}

// IsZero reports whether v is its type's zero value. Untyped nil counts
// as zero.
func IsZero(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}

// IsComparable reports whether v's dynamic type supports == without
// panicking.
func IsComparable(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Comparable()
}

func kindOf(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(v).Kind()
}
