// Package eval runs expressions against documents.
//
// Expressions use the expr language (github.com/expr-lang/expr). Object
// fields are in scope by name, and the dig and has functions reach into the
// document by path string. Results come back as Options so that expression
// queries compose with the rest of the module:
//
//	o, err := eval.Eval(doc, `has("applications") ? dig("applications[0].name") : "none"`)
package eval
