package kdtree

import "github.com/mrigankad/offlinerender/geometry"

// Node is a tagged union {leaf, middle}; the traversal functions in
// query.go are parameterised over the primitive test instead of
// relying on dynamic dispatch.
type Node struct {
	Region geometry.AABB

	// Leaf holds entry indices when IsLeaf is true.
	IsLeaf  bool
	Entries []int

	// Middle holds up to two children when IsLeaf is false. Either may
	// be nil.
	Left, Right *Node
}

func newLeaf(region geometry.AABB, entries []int) *Node {
	return &Node{Region: region, IsLeaf: true, Entries: entries}
}

func newMiddle(region geometry.AABB) *Node {
	return &Node{Region: region, IsLeaf: false}
}
