package main

import (
	"github.com/mrigankad/offlinerender/geometry"
	"github.com/mrigankad/offlinerender/material"
	"github.com/mrigankad/offlinerender/math"
	"github.com/mrigankad/offlinerender/scene"
)

// unitCubeMesh builds a mesh of a unit cube centred on the origin,
// with per-vertex normals recomputed after construction. Mesh file I/O
// belongs to a host layer, so the reference driver builds its own demo
// geometry instead of reading one.
func unitCubeMesh() *geometry.Mesh {
	v := func(x, y, z float32) geometry.Vertex {
		return geometry.Vertex{Position: math.Vec3{X: x, Y: y, Z: z}}
	}
	m := &geometry.Mesh{
		Vertices: []geometry.Vertex{
			v(-0.5, -0.5, -0.5), v(0.5, -0.5, -0.5), v(0.5, 0.5, -0.5), v(-0.5, 0.5, -0.5),
			v(-0.5, -0.5, 0.5), v(0.5, -0.5, 0.5), v(0.5, 0.5, 0.5), v(-0.5, 0.5, 0.5),
		},
	}
	quad := func(a, b, c, d uint32) {
		m.Triangles = append(m.Triangles,
			geometry.Triangle{I0: a, I1: b, I2: c},
			geometry.Triangle{I0: a, I1: c, I2: d},
		)
	}
	quad(4, 5, 6, 7) // front  (+Z)
	quad(1, 0, 3, 2) // back  (-Z)
	quad(4, 7, 3, 0) // left  (-X)
	quad(1, 2, 6, 5) // right (+X)
	quad(7, 6, 2, 3) // top   (+Y)
	quad(0, 1, 5, 4) // bottom(-Y)
	m.RecomputeNormals()
	return m
}

// demoScene is the reference driver's built-in default: a single unit
// cube at the origin and one point light.
func demoScene() *scene.Scene {
	scn := scene.NewScene()
	cube := scene.NewObject(unitCubeMesh(), material.Default, math.Vec3Zero)
	scn.AddObject(cube)
	scn.AddLight(scene.NewLight(math.Vec3{X: 5, Y: 5, Z: 5}, math.Vec3One, 1))
	return scn
}
