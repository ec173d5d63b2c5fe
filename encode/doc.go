// Package encode renders document trees as JSON.
//
// Encode pretty-prints by default; the Compact option produces the
// single-line form used for machine consumption, and EncodeColors or
// AutoColors add ANSI colors for terminal display. Field order in the
// output follows the tree, no sorting happens here.
package encode
