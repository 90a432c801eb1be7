package chain

import "github.com/davrell/istype/pkg/istype"

// Builder accumulates a composite predicate. The zero value behaves like
// New. Builders are values: every step returns a new Builder and never
// mutates its receiver.
type Builder struct {
	p istype.Predicate
}

// New begins a builder that accepts everything until narrowed.
func New() Builder {
	return Builder{p: istype.Always}
}

// From begins a builder from an existing predicate.
func From(p istype.Predicate) Builder {
	if p == nil {
		return New()
	}
	return Builder{p: p}
}

// And narrows the composite: both the current composite and p must hold.
func (b Builder) And(p istype.Predicate) Builder {
	if p == nil {
		return b
	}
	cur := b.predicate()
	return Builder{p: func(v any) bool {
		return cur(v) && p(v)
	}}
}

// AndNot narrows the composite with the negation of p.
func (b Builder) AndNot(p istype.Predicate) Builder {
	if p == nil {
		return b
	}
	return b.And(istype.Not(p))
}

// Or widens the composite: either the current composite or p must hold.
func (b Builder) Or(p istype.Predicate) Builder {
	if p == nil {
		return b
	}
	cur := b.predicate()
	return Builder{p: func(v any) bool {
		return cur(v) || p(v)
	}}
}

// Build produces the composite predicate.
func (b Builder) Build() istype.Predicate {
	return b.predicate()
}

// Test evaluates the composite against v without building it.
func (b Builder) Test(v any) bool {
	return b.predicate()(v)
}

func (b Builder) predicate() istype.Predicate {
	if b.p == nil {
		return istype.Always
	}
	return b.p
}
