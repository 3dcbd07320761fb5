package scene

import (
	"github.com/mrigankad/offlinerender/kdtree"
	"github.com/mrigankad/offlinerender/material"
	"github.com/mrigankad/offlinerender/math"
	"github.com/mrigankad/offlinerender/surfel"
)

// BuildEntries flattens every object's triangles into world-space k-d
// tree entries, translating vertices and deriving each triangle's
// surfel once at build time.
func (s *Scene) BuildEntries() []kdtree.Entry {
	var entries []kdtree.Entry
	for objIdx, obj := range s.Objects {
		for triIdx := range obj.Mesh.Triangles {
			v0, v1, v2 := obj.WorldTriangleVertices(triIdx)
			entries = append(entries, kdtree.Entry{
				ObjectIndex:   objIdx,
				TriangleIndex: triIdx,
				V0:            v0,
				V1:            v1,
				V2:            v2,
				Surfel:        surfel.FromTriangle(obj.Material, v0, v1, v2),
			})
		}
	}
	return entries
}

// BumpedNormalFunc adapts Object.BumpedNormal to the signature the k-d
// tree's leaf traversal calls when recording a hit, keeping kdtree free
// of any dependency on the scene package.
func (s *Scene) BumpedNormalFunc() kdtree.BumpedNormalFunc {
	return func(objectIndex, triangleIndex int, u, v float32) math.Vec3 {
		return s.Objects[objectIndex].BumpedNormal(triangleIndex, u, v)
	}
}

// MaterialAt resolves the material of the triangle a kdtree.Hit refers
// to, given the entry it was matched against.
func (s *Scene) MaterialAt(objectIndex int) material.Material {
	return s.Objects[objectIndex].Material
}
