package geometry

import "github.com/mrigankad/offlinerender/math"

// Epsilon serves triple duty across the renderer: parallel-ray rejection
// in ray-triangle, and the near-plane offset used by shadow/visibility
// rays to avoid self-intersection (see package radiance).
const Epsilon = 1e-5

type quadrant int

const (
	quadLeft quadrant = iota
	quadRight
	quadMiddle
)

// IntersectAABB implements the Kay–Kajiya "fast ray-box intersection"
// quadrant-classification test: classify the ray origin against each
// slab as LEFT of min, RIGHT of max, or (already inside) MIDDLE, derive
// the single best candidate plane, then validate the other two axes
// land inside the box. An origin inside the box reports the origin
// itself as the hit point.
func IntersectAABB(r Ray, box AABB) (hit math.Vec3, ok bool) {
	var quad [3]quadrant
	var candidatePlane [3]float32
	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	boxMin := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	boxMax := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	inside := true
	for i := 0; i < 3; i++ {
		if origin[i] < boxMin[i] {
			quad[i] = quadLeft
			candidatePlane[i] = boxMin[i]
			inside = false
		} else if origin[i] > boxMax[i] {
			quad[i] = quadRight
			candidatePlane[i] = boxMax[i]
			inside = false
		} else {
			quad[i] = quadMiddle
		}
	}

	if inside {
		return r.Origin, true
	}

	var maxT [3]float32
	for i := 0; i < 3; i++ {
		if quad[i] != quadMiddle && dir[i] != 0 {
			maxT[i] = (candidatePlane[i] - origin[i]) / dir[i]
		} else {
			maxT[i] = -1
		}
	}

	whichPlane := 0
	for i := 1; i < 3; i++ {
		if maxT[whichPlane] < maxT[i] {
			whichPlane = i
		}
	}

	if maxT[whichPlane] < 0 {
		return math.Vec3{}, false
	}

	var out [3]float32
	for i := 0; i < 3; i++ {
		if whichPlane != i {
			out[i] = origin[i] + maxT[whichPlane]*dir[i]
			if out[i] < boxMin[i] || out[i] > boxMax[i] {
				return math.Vec3{}, false
			}
		} else {
			out[i] = candidatePlane[i]
		}
	}

	return math.Vec3{X: out[0], Y: out[1], Z: out[2]}, true
}

// TriangleHit is the raw result of a Möller–Trumbore test: distance
// along the ray and the triangle's barycentric (u, v); the third weight
// is 1-u-v.
type TriangleHit struct {
	T, U, V float32
}

// IntersectTriangle runs the Möller–Trumbore test. No back-face cull
// happens here; that is the k-d leaf's job, using the interpolated
// vertex normal against the ray direction.
func IntersectTriangle(r Ray, v0, v1, v2 math.Vec3) (TriangleHit, bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)

	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if math.Abs32(det) < Epsilon {
		return TriangleHit{}, false
	}

	tvec := r.Origin.Sub(v0)
	u := tvec.Dot(p) / det
	if u < 0 || u > 1 {
		return TriangleHit{}, false
	}

	q := tvec.Cross(e1)
	v := r.Direction.Dot(q) / det
	if v < 0 || u+v > 1 {
		return TriangleHit{}, false
	}

	t := e2.Dot(q) / det
	return TriangleHit{T: t, U: u, V: v}, true
}
