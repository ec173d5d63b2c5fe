// Package ir provides the intermediate representation (IR) for maydoc
// documents.
//
// # Overview
//
// The IR package defines the core data structure for representing documents
// as a tree of nodes. All documents, whether parsed from text or created
// programmatically, are represented as ir.Node trees.
//
// The IR is a simple recursive tagged union: values are placed in fields
// depending on the node type, and the tree carries no position information
// from input documents, making it purely semantic.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - IntType: signed integer (64-bit)
//   - UintType: unsigned integer (64-bit)
//   - FloatType: floating point number (64-bit IEEE float)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// FromAny builds nodes from natural Go values (nil, booleans, strings,
// numbers, slices, string-keyed maps), and ToAny converts a tree back.
//
// # Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there are always as many fields as values. Fields are string typed. Field
// order is significant and preserved; FromMap sorts keys for determinism
// while FromKeyVals keeps the order given.
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships:
//
//   - Parent: parent node (nil for root)
//   - ParentIndex: index in parent's array/object
//   - ParentField: field name if parent is object
//
// Get and At look up object fields and array elements without mutating the
// tree; both return nil when the step does not apply.
//
// # Comparison
//
// Nodes compare with a total order:
//
//	equal := ir.Compare(a, b) == 0
//
// Numbers compare by value across the Int, Uint and Float variants, so a
// document holding 2 and one holding 2.0 compare equal.
//
// # Thread Safety
//
// Nodes are safe for concurrent reads: parsing produces an immutable
// snapshot, and traversal never writes. Mutating a tree while other
// goroutines read it requires synchronization or a Clone per goroutine.
//
// # Related Packages
//
//   - github.com/maydoc/go-maydoc/parse - Parses text into IR nodes
//   - github.com/maydoc/go-maydoc/encode - Encodes IR nodes to text
//   - github.com/maydoc/go-maydoc/dig - Optional traversal over IR nodes
package ir
