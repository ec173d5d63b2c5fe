// Package dig traverses document trees with Option results.
//
// A dig is a sequence of steps from a root node, each step selecting a
// field of an object or an element of an array. Every failure mode, a
// missing field, an out-of-range index, a step applied to the wrong shape,
// uniformly yields opt.None; traversal never returns errors:
//
//	doc, _ := parse.String(`{"applications": [{"name": "cool programming"}]}`)
//	steps := []dig.Step{dig.Key("applications"), dig.Index(0), dig.Key("name")}
//	o := dig.Dig(doc, steps...)
//	name, _ := opt.Unwrap[string](dig.DigAny(doc, steps...))
//
// Dig returns the reached *ir.Node; DigAny converts leaves to natural Go
// scalars, with document null becoming Some(nil), which is present and
// therefore distinct from a failed dig.
//
// Paths also have a compact string syntax, "applications[0].name", parsed
// by ParsePath and produced by Path.String and PathTo.
package dig
