package geometry

import "github.com/mrigankad/offlinerender/math"

// Vertex is a mutable position/normal pair. Mutable because tessellation
// inserts new vertices with averaged normals as it subdivides triangles.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
}
