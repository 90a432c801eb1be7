package union

import "reflect"

// Member is one alternative of a declared union.
type Member struct {
	t reflect.Type
}

// Of captures T as a union member. Interface types are captured as the
// interface itself, not as their dynamic implementations.
func Of[T any]() Member {
	return Member{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// OfType captures an already reflected type as a union member.
func OfType(t reflect.Type) Member {
	return Member{t: t}
}

// Type returns the captured type; nil for the zero Member.
func (m Member) Type() reflect.Type {
	return m.t
}

func (m Member) String() string {
	if m.t == nil {
		return "<invalid>"
	}
	return m.t.String()
}

// Set is an ordered union of member types. The order is the declaration
// order passed to Declare; it is the enumeration order of every
// conversion. The zero Set is the empty union.
type Set struct {
	members []reflect.Type
}

// Declare builds a Set from members in declaration order. Duplicates and
// invalid members collapse: a union contains each alternative exactly
// once, at its first occurrence.
func Declare(members ...Member) Set {
	out := make([]reflect.Type, 0, len(members))
	for _, m := range members {
		if m.t == nil {
			continue
		}
		if !containsType(out, m.t) {
			out = append(out, m.t)
		}
	}
	return Set{members: out}
}

// Members returns the member types in declaration order. The slice is a
// fresh copy on every call.
func (s Set) Members() []Member {
	out := make([]Member, len(s.members))
	for i, t := range s.members {
		out[i] = Member{t: t}
	}
	return out
}

// Len returns the number of distinct members.
func (s Set) Len() int {
	return len(s.members)
}

// IsEmpty reports whether the union has no members (the bottom union).
func (s Set) IsEmpty() bool {
	return len(s.members) == 0
}

// Tuple converts the union to a positional tuple: each member exactly
// once, in declaration order. The empty union converts to the empty
// tuple. The result is a fresh copy on every call, so callers cannot
// mutate the set through it.
func (s Set) Tuple() []Member {
	return s.Members()
}

// TupleOr is Tuple with an explicit base case: when the union is empty the
// fallback is returned instead of the empty tuple.
func (s Set) TupleOr(fallback []Member) []Member {
	if s.IsEmpty() {
		return fallback
	}
	return s.Members()
}

// Contains reports whether v's dynamic type is assignable to at least one
// member: runtime membership in the union.
func (s Set) Contains(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	for _, m := range s.members {
		if t.AssignableTo(m) {
			return true
		}
	}
	return false
}

func containsType(ts []reflect.Type, t reflect.Type) bool {
	for _, have := range ts {
		if have == t {
			return true
		}
	}
	return false
}
