// Package capability classifies arbitrary values against a layered
// hierarchy of structural capability shapes: ReadonlyCollection, SetLike,
// ExtendedSetLike and MapLike. Classification is by member presence only;
// nominal identity is never consulted, so drop-in alternative collection
// implementations are recognized.
//
// Key constructs:
// - Descriptor: a named tier listing the members a value must expose
// - Satisfies/Require: the single generic routine every tier consults
// - IsSetLike, IsMapLike, ...: predicate wrappers per tier
// - IsSetLikeConstructor, ...: classify factory funcs by their result type
//
// Stronger tiers re-check their base tier and add incremental member
// requirements; base logic is never duplicated. Probing locates members
// but never invokes them, and any reflective panic is absorbed as a
// negative result.
package capability
