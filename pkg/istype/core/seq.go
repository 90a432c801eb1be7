package core

import "reflect"

// IsSeqFunc reports whether t is a range-over-func shape: a func taking a
// single yield func that returns bool and accepts zero, one (iter.Seq) or
// two (iter.Seq2) values, with no results of its own.
func IsSeqFunc(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Func {
		return false
	}
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.IsVariadic() {
		return false
	}
	if yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return false
	}
	return yield.NumIn() <= 2
}
