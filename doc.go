// Package maydoc reads, traverses and transforms JSON-like documents with
// Option-typed results.
//
// # Overview
//
// A Document is a tree of typed nodes (null, booleans, integers, floats,
// strings, arrays, objects) parsed from YAML or JSON text. Lookups descend
// the tree step by step and return opt.Option values: Some of what was
// reached, or None when any step does not apply. There is no error channel
// for absence; a missing field, an out-of-range index and a type-shaped
// mismatch all look the same.
//
//	doc, err := maydoc.ParseString(`{"applications": [{"name": "cool programming"}]}`)
//	if err != nil { ... }
//	o := doc.Dig(dig.Key("applications"), dig.Index(0), dig.Key("name"))
//	name, err := opt.Unwrap[string](doc.DigAny(dig.Key("applications"), dig.Index(0), dig.Key("name")))
//
// DigAny converts leaves to natural Go values, with document null becoming
// Some(nil), present and distinct from None. Typed extraction goes through
// opt.Unwrap and friends, which widen numerics but never narrow.
//
// Documents also support path strings ("applications[0].name"), expression
// queries (Eval), RFC 6902 and RFC 7386 patching, and line diffs.
//
// # Packages
//
//   - opt: the Option type and its combinators
//   - ir: the node tree
//   - dig: step-wise traversal
//   - parse: YAML/JSON decoding
//   - encode: JSON rendering
//   - eval: expression queries
//   - debug: env-gated diagnostics
package maydoc
