package radiance

import (
	"math/rand"

	stdmath "math"

	"github.com/mrigankad/offlinerender/geometry"
	"github.com/mrigankad/offlinerender/kdtree"
	"github.com/mrigankad/offlinerender/math"
)

// AmbientOcclusion estimates occlusion at point with surface normal
// normal by casting k cosine-weighted hemisphere rays out to radius and
// returning the fraction that hit geometry. The caller scales colour
// by (1 - AO).
func AmbientOcclusion(tree *kdtree.Tree, point, normal math.Vec3, k int, radius float32, rng *rand.Rand) float32 {
	if k <= 0 {
		return 0
	}

	x, y := normal.OrthonormalBasis()
	hits := 0

	for i := 0; i < k; i++ {
		r := rng.Float32()
		theta := rng.Float32() * 2 * stdmath.Pi

		dx := r * float32(stdmath.Cos(float64(theta)))
		dy := r * float32(stdmath.Sin(float64(theta)))
		dz := float32(stdmath.Sqrt(float64(1 - r*r)))

		dir := x.Mul(dx).Add(y.Mul(dy)).Add(normal.Mul(dz)).Normalize()
		ray := geometry.NewRay(point, dir)

		if _, hit := tree.Intersect(ray, geometry.Epsilon, radius, nil); hit {
			hits++
		}
	}

	return float32(hits) / float32(k)
}
