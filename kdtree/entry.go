package kdtree

import (
	"github.com/mrigankad/offlinerender/geometry"
	"github.com/mrigankad/offlinerender/surfel"
)

// Entry is one triangle's world-space footprint in the tree: the index
// of the owning object in the scene's arena, the triangle's index
// within that object's mesh, translated copies of its three vertices,
// and the derived surfel used by the IntersectSurfel traversal variant.
type Entry struct {
	ObjectIndex   int
	TriangleIndex int
	V0, V1, V2    geometry.Vertex
	Surfel        surfel.Surfel
}

// Intersects conservatively tests entry against an AABB using only the
// box's faces as separating axes (not a true triangle-box test):
// contained is true iff all three vertices lie within the box;
// intersects is true if contained, or if the triangle is not entirely
// separated from the box on any single axis.
func (e Entry) Intersects(box geometry.AABB) (contained, intersects bool) {
	verts := [3]geometry.Vertex{e.V0, e.V1, e.V2}

	contained = true
	for _, v := range verts {
		if !box.Contains(v.Position) {
			contained = false
			break
		}
	}
	if contained {
		return true, true
	}

	separated := false
	min := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	max := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}
	for axis := 0; axis < 3; axis++ {
		allBelow := true
		allAbove := true
		for _, v := range verts {
			p := [3]float32{v.Position.X, v.Position.Y, v.Position.Z}
			if p[axis] >= min[axis] {
				allBelow = false
			}
			if p[axis] <= max[axis] {
				allAbove = false
			}
		}
		if allBelow || allAbove {
			separated = true
			break
		}
	}

	return false, !separated
}
