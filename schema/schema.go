// Package schema holds the inferred schema tree and the merge rules
// that collapse repeated observations of the same slot into one node.
package schema

// MaxExamples caps how many literal values a node remembers.
const MaxExamples = 5

// Node is one point in the inferred schema tree. Parents own their
// children outright, there are no back references.
type Node struct {
	Kind   Kind
	Format string // date/time or uuid token, string kind only

	Properties []Property // object kind only, document order
	Items      *Node      // array kind only

	// Optional is true when at least one sibling instance of the
	// enclosing object did not carry this property.
	Optional bool

	// Examples keeps up to MaxExamples raw values seen at this node,
	// first observed first. Leaf nodes only.
	Examples []any

	// Count is how many instances merged into this node. Zero means no
	// observation at all, e.g. the items of an empty array. Count is
	// not part of the printed schema.
	Count int
}

// Property is a named child of an object node. Keys are unique within
// one node.
type Property struct {
	Key   string
	Value *Node
}

// Property returns the child node for key, or nil.
func (n *Node) Property(key string) *Node {
	for _, p := range n.Properties {
		if p.Key == key {
			return p.Value
		}
	}
	return nil
}
