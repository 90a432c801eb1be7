// Package format provides string-format predicates: UUIDs, semantic
// versions, glob patterns, JSON and YAML documents.
//
// Every predicate accepts any value; only strings (and []byte) can
// satisfy a format, everything else is false. Like the rest of the
// module, format predicates are total and never panic.
package format
