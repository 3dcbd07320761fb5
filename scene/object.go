package scene

import (
	"github.com/mrigankad/offlinerender/geometry"
	"github.com/mrigankad/offlinerender/material"
	"github.com/mrigankad/offlinerender/math"
)

// The noise generator that fills a bump field lives outside this
// module; this package only consumes a field a caller supplies.
const (
	BumpMapSize  = 100
	BumpMapScale = 1000
)

// BumpField is a BumpMapSize x BumpMapSize grid of perturbation
// vectors, stored row-major.
type BumpField struct {
	Samples []math.Vec3
}

// NewBumpField allocates a zeroed field ready for a caller to fill.
func NewBumpField() *BumpField {
	return &BumpField{Samples: make([]math.Vec3, BumpMapSize*BumpMapSize)}
}

func (f *BumpField) at(x, y int) math.Vec3 {
	x = ((x % BumpMapSize) + BumpMapSize) % BumpMapSize
	y = ((y % BumpMapSize) + BumpMapSize) % BumpMapSize
	return f.Samples[x*BumpMapSize+y]
}

// Object is an owned mesh, material, world translation, bounding box,
// and an optional bump field with amplitude. Bounds always equals the
// tight box of the mesh vertices plus translation.
type Object struct {
	Mesh        *geometry.Mesh
	Material    material.Material
	Translation math.Vec3
	Bounds      geometry.AABB
	Bump        *BumpField
	BumpLevel   float32
}

// NewObject builds an object and computes its world-space bounding box
// (mesh vertices plus translation), satisfying the AABB invariant.
func NewObject(mesh *geometry.Mesh, mat material.Material, translation math.Vec3) *Object {
	o := &Object{Mesh: mesh, Material: mat, Translation: translation}
	o.RecomputeBounds()
	return o
}

func (o *Object) RecomputeBounds() {
	box := geometry.EmptyAABB()
	for _, v := range o.Mesh.Vertices {
		box = box.ExtendToPoint(v.Position.Add(o.Translation))
	}
	o.Bounds = box
}

// WorldTriangleVertices returns the translated vertices of triangle
// index triIdx, without touching the bump field.
func (o *Object) WorldTriangleVertices(triIdx int) (v0, v1, v2 geometry.Vertex) {
	tri := o.Mesh.Triangles[triIdx]
	toWorld := func(v geometry.Vertex) geometry.Vertex {
		return geometry.Vertex{Position: v.Position.Add(o.Translation), Normal: v.Normal}
	}
	return toWorld(o.Mesh.Vertices[tri.I0]), toWorld(o.Mesh.Vertices[tri.I1]), toWorld(o.Mesh.Vertices[tri.I2])
}

// BumpedNormal interpolates the triangle's vertex normals by
// barycentric (u, v), then perturbs by the bump field sample indexed
// from the point's position along the triangle's first two edges,
// scaled by BumpLevel. With no bump field set, it is equivalent to
// plain interpolation.
func (o *Object) BumpedNormal(triIdx int, u, v float32) math.Vec3 {
	tri := o.Mesh.Triangles[triIdx]
	v0 := o.Mesh.Vertices[tri.I0]
	v1 := o.Mesh.Vertices[tri.I1]
	v2 := o.Mesh.Vertices[tri.I2]

	normal := v0.Normal.Mul(1 - u - v).Add(v1.Normal.Mul(u)).Add(v2.Normal.Mul(v)).Normalize()

	if o.Bump == nil || o.BumpLevel == 0 {
		return normal
	}

	x := int(u * v1.Position.Distance(v0.Position) * BumpMapScale)
	y := int(v * v2.Position.Distance(v0.Position) * BumpMapScale)
	normal = normal.Add(o.Bump.at(x, y).Mul(o.BumpLevel))
	return normal.Normalize()
}
