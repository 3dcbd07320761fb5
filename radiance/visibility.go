package radiance

import (
	"github.com/mrigankad/offlinerender/geometry"
	"github.com/mrigankad/offlinerender/kdtree"
	"github.com/mrigankad/offlinerender/math"
)

// Visible tests whether to is visible from from: cast a ray toward to
// with a near-plane of geometry.Epsilon (self-shadowing guard) and far
// equal to the distance to to; a hit means occluded. Two coincident
// points are trivially visible.
func Visible(tree *kdtree.Tree, from, to math.Vec3) bool {
	dir, dist := to.Sub(from).NormalizeGetLength()
	if dist == 0 {
		return true
	}
	ray := geometry.NewRay(from, dir)
	_, hit := tree.Intersect(ray, geometry.Epsilon, dist, nil)
	return !hit
}
