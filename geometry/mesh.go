package geometry

// Mesh is an ordered sequence of vertices and triangles: a plain
// triangle soup, no GPU buffers, no index-buffer reuse beyond what the
// Triangle indices already express.
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// RecomputeNormals recomputes every vertex normal as the normalized mean
// of the face normals of its adjacent triangles. Callers that rewrite
// vertex positions in bulk (loaders, tessellation) use this to restore
// the per-vertex normals afterwards.
func (m *Mesh) RecomputeNormals() {
	accum := make([]Vertex, len(m.Vertices))
	for _, tri := range m.Triangles {
		v0 := m.Vertices[tri.I0].Position
		v1 := m.Vertices[tri.I1].Position
		v2 := m.Vertices[tri.I2].Position
		faceNormal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
		accum[tri.I0].Normal = accum[tri.I0].Normal.Add(faceNormal)
		accum[tri.I1].Normal = accum[tri.I1].Normal.Add(faceNormal)
		accum[tri.I2].Normal = accum[tri.I2].Normal.Add(faceNormal)
	}
	for i := range m.Vertices {
		if n := accum[i].Normal.Normalize(); n.LengthSqr() > 0 {
			m.Vertices[i].Normal = n
		}
	}
}

// Tessellate produces a new mesh in which every triangle has area at
// most maxArea, splitting any oversized triangle along its longest edge and
// recursing on the two halves. It terminates because
// each split strictly halves the longest edge, which bounds recursion
// depth for a finite starting area.
func (m *Mesh) Tessellate(maxArea float32) *Mesh {
	out := &Mesh{
		Vertices: append([]Vertex(nil), m.Vertices...),
	}

	queue := make([]Triangle, 0, len(m.Triangles))
	for _, tri := range m.Triangles {
		if tri.Area(out.Vertices) > maxArea {
			queue = append(queue, tri)
		} else {
			out.Triangles = append(out.Triangles, tri)
		}
	}

	for len(queue) > 0 {
		tri := queue[0]
		queue = queue[1:]

		if tri.Area(out.Vertices) <= maxArea {
			out.Triangles = append(out.Triangles, tri)
			continue
		}

		a, b := splitLongestEdge(out, tri)
		queue = append(queue, a, b)
	}

	return out
}

// splitLongestEdge inserts a midpoint vertex on the triangle's longest
// edge and returns the two child triangles. The midpoint vertex takes
// the normalized average of the edge endpoints' normals.
func splitLongestEdge(m *Mesh, tri Triangle) (Triangle, Triangle) {
	v0, v1, v2 := m.Vertices[tri.I0], m.Vertices[tri.I1], m.Vertices[tri.I2]

	len01 := v1.Position.Sub(v0.Position).LengthSqr()
	len12 := v2.Position.Sub(v1.Position).LengthSqr()
	len20 := v0.Position.Sub(v2.Position).LengthSqr()

	var iA, iB, iOpp uint32
	var vA, vB Vertex
	switch {
	case len01 >= len12 && len01 >= len20:
		iA, iB, iOpp = tri.I0, tri.I1, tri.I2
		vA, vB = v0, v1
	case len12 >= len01 && len12 >= len20:
		iA, iB, iOpp = tri.I1, tri.I2, tri.I0
		vA, vB = v1, v2
	default:
		iA, iB, iOpp = tri.I2, tri.I0, tri.I1
		vA, vB = v2, v0
	}

	mid := Vertex{
		Position: vA.Position.Add(vB.Position).Mul(0.5),
		Normal:   vA.Normal.Add(vB.Normal).Normalize(),
	}
	midIdx := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, mid)

	return Triangle{I0: iA, I1: midIdx, I2: iOpp}, Triangle{I0: midIdx, I1: iB, I2: iOpp}
}
