package kdtree

import (
	"github.com/mrigankad/offlinerender/geometry"
	"github.com/mrigankad/offlinerender/math"
)

// Hit is an intersection record: the matched entry, the world-space
// hit point, the (possibly bump-perturbed) normal, distance along the
// ray, and barycentric (u, v) within the hit triangle. U and V are
// left zero by the surfel variant, which has no barycentric
// coordinates of its own.
type Hit struct {
	EntryIndex int
	Point      math.Vec3
	Normal     math.Vec3
	T          float32
	U, V       float32
}

// BumpedNormalFunc lets the leaf traversal replace the interpolated
// normal with an object's bump-perturbed normal without the kdtree
// package depending on the scene package.
type BumpedNormalFunc func(objectIndex, triangleIndex int, u, v float32) math.Vec3

// leafTest is the primitive test a traversal is parameterised over:
// given a leaf's entries, the ray, and the near/far window, find the
// closest accepted hit. Intersect and IntersectSurfel share one
// traverse function parameterised this way.
type leafTest func(t *Tree, entries []int, r geometry.Ray, near, far float32) (Hit, bool)

// Intersect walks the tree looking for the closest triangle hit between
// near and far along r. Both existing children whose AABB the ray hits
// are queried with the same, untranslated ray; of zero/one/two
// candidate hits the nearer one wins unless both name the same
// (object, triangle) pair, in which case the right child's hit wins
// (duplicated entries straddling the split plane).
func (t *Tree) Intersect(r geometry.Ray, near, far float32, bumped BumpedNormalFunc) (Hit, bool) {
	return traverse(t, t.Root, r, near, far, triangleLeafTest(bumped))
}

// IntersectSurfel performs the same traversal as Intersect but uses
// ray-surfel as the primitive test instead of ray-triangle.
func (t *Tree) IntersectSurfel(r geometry.Ray, near, far float32) (Hit, bool) {
	return traverse(t, t.Root, r, near, far, surfelLeafTest)
}

func traverse(t *Tree, node *Node, r geometry.Ray, near, far float32, test leafTest) (Hit, bool) {
	if node == nil {
		return Hit{}, false
	}
	if node.IsLeaf {
		return test(t, node.Entries, r, near, far)
	}

	var leftHit, rightHit Hit
	var haveLeft, haveRight bool

	if node.Left != nil {
		if _, ok := geometry.IntersectAABB(r, node.Left.Region); ok {
			leftHit, haveLeft = traverse(t, node.Left, r, near, far, test)
		}
	}
	if node.Right != nil {
		if _, ok := geometry.IntersectAABB(r, node.Right.Region); ok {
			rightHit, haveRight = traverse(t, node.Right, r, near, far, test)
		}
	}

	switch {
	case haveLeft && haveRight:
		le := t.Entries[leftHit.EntryIndex]
		re := t.Entries[rightHit.EntryIndex]
		if le.ObjectIndex == re.ObjectIndex && le.TriangleIndex == re.TriangleIndex {
			return rightHit, true
		}
		if distSqr(r.Origin, leftHit.Point) <= distSqr(r.Origin, rightHit.Point) {
			return leftHit, true
		}
		return rightHit, true
	case haveLeft:
		return leftHit, true
	case haveRight:
		return rightHit, true
	default:
		return Hit{}, false
	}
}

// triangleLeafTest builds the ray-triangle leafTest, closing over the
// optional bump-normal callback.
func triangleLeafTest(bumped BumpedNormalFunc) leafTest {
	return func(t *Tree, entries []int, r geometry.Ray, near, far float32) (Hit, bool) {
		var best Hit
		found := false
		bestT := far

		for _, idx := range entries {
			e := t.Entries[idx]
			th, ok := geometry.IntersectTriangle(r, e.V0.Position, e.V1.Position, e.V2.Position)
			if !ok {
				continue
			}
			if th.T < near || th.T > bestT {
				continue
			}

			normal := e.V0.Normal.Mul(1 - th.U - th.V).Add(e.V1.Normal.Mul(th.U)).Add(e.V2.Normal.Mul(th.V)).Normalize()
			if normal.Dot(r.Direction) >= 0 {
				continue
			}
			if bumped != nil {
				normal = bumped(e.ObjectIndex, e.TriangleIndex, th.U, th.V)
			}

			best = Hit{
				EntryIndex: idx,
				Point:      r.At(th.T),
				Normal:     normal,
				T:          th.T,
				U:          th.U,
				V:          th.V,
			}
			bestT = th.T
			found = true
		}

		return best, found
	}
}

// surfelLeafTest is the ray-surfel primitive test.
func surfelLeafTest(t *Tree, entries []int, r geometry.Ray, near, far float32) (Hit, bool) {
	var best Hit
	found := false
	bestT := far

	for _, idx := range entries {
		e := t.Entries[idx]
		th, ok := e.Surfel.IntersectRay(r)
		if !ok {
			continue
		}
		if th < near || th > bestT {
			continue
		}
		if e.Surfel.Normal.Dot(r.Direction) >= 0 {
			continue
		}

		best = Hit{
			EntryIndex: idx,
			Point:      r.At(th),
			Normal:     e.Surfel.Normal,
			T:          th,
		}
		bestT = th
		found = true
	}

	return best, found
}

func distSqr(a, b math.Vec3) float32 {
	return a.Sub(b).LengthSqr()
}
