// Package parse decodes YAML and JSON text into document trees.
//
// The package does not implement a parser. It delegates decoding to
// github.com/goccy/go-yaml and converts the decoder's generic output into
// ir.Node trees, preserving object field order. JSON input parses because
// YAML accepts it as a subset.
package parse
