// Package surfel implements the disc approximation of a triangle used
// by the k-d tree's surfel-based traversal variant.
package surfel

import (
	stdmath "math"

	"github.com/mrigankad/offlinerender/geometry"
	"github.com/mrigankad/offlinerender/material"
	"github.com/mrigankad/offlinerender/math"
)

// Surfel is the inscribed-circle disc approximation of a triangle: a
// position (incenter), a normal, a radius (inradius), a material, and
// an accumulated colour the caller may stash results in.
type Surfel struct {
	Radius   float32
	Position math.Vec3
	Normal   math.Vec3
	Material material.Material
	Colour   math.Vec3
}

// FromTriangle builds a surfel from a triangle's three world-space
// vertices (translation already applied by the caller). The edge
// opposite vertex X is named eX; the incenter and its normal are the
// barycentric combination weighted by opposite edge lengths.
func FromTriangle(mat material.Material, a, b, c geometry.Vertex) Surfel {
	eA := c.Position.Sub(b.Position)
	eB := c.Position.Sub(a.Position)
	eC := a.Position.Sub(b.Position)

	lenA := eA.Length()
	lenB := eB.Length()
	lenC := eC.Length()

	perimeter := lenA + lenB + lenC
	semiperimeter := 0.5 * perimeter
	area := float32(0)
	if s := semiperimeter; s > 0 {
		area = float32(stdmath.Sqrt(float64(s * (s - lenA) * (s - lenB) * (s - lenC))))
	}

	var radius float32
	if semiperimeter > 0 {
		radius = area / semiperimeter
	}

	position := math.Vec3Zero
	normal := math.Vec3Zero
	if perimeter > 0 {
		position = a.Position.Mul(lenA).Add(b.Position.Mul(lenB)).Add(c.Position.Mul(lenC)).Mul(1.0 / perimeter)
		normal = a.Normal.Mul(lenA).Add(b.Normal.Mul(lenB)).Add(c.Normal.Mul(lenC)).Mul(1.0 / perimeter)
	}

	return Surfel{
		Radius:   radius,
		Position: position,
		Normal:   normal,
		Material: mat,
	}
}

// Contains is the radial-only disc test: the surfel's plane is used
// only for ray intersection (see IntersectRay), not for containment.
func (s Surfel) Contains(p math.Vec3) bool {
	return p.Sub(s.Position).Length() <= s.Radius
}

// IntersectRay solves for t where the ray meets the surfel's plane,
// then validates the hit point against the inscribed-disc radius.
func (s Surfel) IntersectRay(r geometry.Ray) (t float32, ok bool) {
	denom := s.Normal.Dot(r.Direction)
	if denom == 0 {
		return 0, false
	}
	t = s.Normal.Dot(s.Position.Sub(r.Origin)) / denom
	if t < 0 {
		return 0, false
	}
	point := r.At(t)
	if !s.Contains(point) {
		return 0, false
	}
	return t, true
}
