package geometry

import "github.com/mrigankad/offlinerender/math"

// Triangle is three indices into a vertex list. Kept as a triple rather
// than a flat index slice since the tessellation queue operates on whole
// triangles.
type Triangle struct {
	I0, I1, I2 uint32
}

// Area returns the triangle's area given the owning vertex list.
func (t Triangle) Area(vertices []Vertex) float32 {
	v0 := vertices[t.I0].Position
	v1 := vertices[t.I1].Position
	v2 := vertices[t.I2].Position
	return v1.Sub(v0).Cross(v2.Sub(v0)).Length() * 0.5
}

// Barycenter returns the unweighted centroid of the triangle's three
// vertices (distinct from the surfel's incenter, which is area/edge
// weighted; see package surfel).
func (t Triangle) Barycenter(vertices []Vertex) math.Vec3 {
	v0 := vertices[t.I0].Position
	v1 := vertices[t.I1].Position
	v2 := vertices[t.I2].Position
	return v0.Add(v1).Add(v2).Mul(1.0 / 3.0)
}
