package kdtree

import "github.com/mrigankad/offlinerender/geometry"

const (
	MaxElems = 1
	MaxDepth = 20
)

// Tree owns the root node and every entry; entries are referenced from
// nodes by index so an entry straddling a split plane can legitimately
// appear in more than one leaf.
type Tree struct {
	Root        *Node
	Entries     []Entry
	AchievedMax int
}

// Build constructs the tree from a flat list of entries: computes the
// enclosing bounding box, creates a middle root on the X plane, and
// recursively splits.
func Build(entries []Entry) *Tree {
	box := geometry.EmptyAABB()
	for _, e := range entries {
		box = box.ExtendToPoint(e.V0.Position).ExtendToPoint(e.V1.Position).ExtendToPoint(e.V2.Position)
	}

	t := &Tree{Entries: entries}

	if len(entries) == 0 {
		t.Root = newLeaf(box, nil)
		return t
	}

	all := make([]int, len(entries))
	for i := range all {
		all[i] = i
	}

	root := newMiddle(box)
	t.Root = root
	t.AchievedMax = split(t, root, 0, PlaneX, all)
	return t
}

// split cuts the node's region in half along plane's axis at its
// center, partitions entries into each half (an entry may land in
// both, either, or neither), and recurses. Returns 1 + max(leftDepth,
// rightDepth).
func split(t *Tree, node *Node, depth int, plane Plane, indices []int) int {
	leftBox, rightBox := bisect(node.Region, plane)

	var leftIdx, rightIdx []int
	for _, idx := range indices {
		e := t.Entries[idx]
		if _, hit := e.Intersects(leftBox); hit {
			leftIdx = append(leftIdx, idx)
		}
		if _, hit := e.Intersects(rightBox); hit {
			rightIdx = append(rightIdx, idx)
		}
	}

	leftDepth := 0
	if node.Left = buildChild(t, leftBox, depth, plane, leftIdx); node.Left != nil && !node.Left.IsLeaf {
		leftDepth = split(t, node.Left, depth+1, plane.NextPlane(), leftIdx)
	}

	rightDepth := 0
	if node.Right = buildChild(t, rightBox, depth, plane, rightIdx); node.Right != nil && !node.Right.IsLeaf {
		rightDepth = split(t, node.Right, depth+1, plane.NextPlane(), rightIdx)
	}

	return 1 + maxInt(leftDepth, rightDepth)
}

// buildChild decides, for one side of a split, whether that side is
// absent, a leaf, or a middle node awaiting further splitting.
func buildChild(t *Tree, box geometry.AABB, depth int, plane Plane, indices []int) *Node {
	if len(indices) == 0 {
		return nil
	}
	if len(indices) <= MaxElems || depth+1 >= MaxDepth {
		return newLeaf(box, indices)
	}
	return newMiddle(box)
}

// bisect splits box in half along plane's axis at its center: left
// keeps box.Min and moves the split-axis component of Max down to
// center; right keeps box.Max and moves the split-axis component of
// Min up to center.
func bisect(box geometry.AABB, plane Plane) (left, right geometry.AABB) {
	center := box.Center()
	left, right = box, box

	switch plane {
	case PlaneX:
		left.Max.X = center.X
		right.Min.X = center.X
	case PlaneY:
		left.Max.Y = center.Y
		right.Min.Y = center.Y
	default:
		left.Max.Z = center.Z
		right.Min.Z = center.Z
	}
	return left, right
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
