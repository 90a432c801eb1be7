// Package chain provides a minimal fluent builder for composite
// predicates.
//
// It parallels the root composition helpers but keeps API surface very
// small:
// - New/From: begin a builder from Always or an existing predicate
// - And/AndNot/Or: extend the composite left to right
// - Build: produce the final Predicate
// - Test: evaluate without building
//
// Evaluation short-circuits in declaration order. A nil predicate passed
// to any step is skipped rather than failing the whole composite.
package chain
