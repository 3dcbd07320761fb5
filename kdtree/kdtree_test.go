package kdtree

import (
	"testing"

	"github.com/mrigankad/offlinerender/geometry"
	"github.com/mrigankad/offlinerender/material"
	"github.com/mrigankad/offlinerender/math"
	"github.com/mrigankad/offlinerender/surfel"
)

func makeEntry(objIdx, triIdx int, v0, v1, v2 math.Vec3) Entry {
	vert := func(p math.Vec3) geometry.Vertex { return geometry.Vertex{Position: p, Normal: math.Vec3Back} }
	a, b, c := vert(v0), vert(v1), vert(v2)
	return Entry{
		ObjectIndex:   objIdx,
		TriangleIndex: triIdx,
		V0:            a,
		V1:            b,
		V2:            c,
		Surfel:        surfel.FromTriangle(material.Default, a, b, c),
	}
}

func TestBuildEmptyScene(t *testing.T) {
	tree := Build(nil)
	r := geometry.NewRay(math.Vec3{X: 0, Y: 0, Z: -5}, math.Vec3Front)
	if _, ok := tree.Intersect(r, geometry.Epsilon, 1000, nil); ok {
		t.Fatal("empty tree should report no intersection")
	}
}

func TestBuildContainmentInvariant(t *testing.T) {
	entries := []Entry{
		makeEntry(0, 0, math.Vec3{X: -5, Y: -5, Z: 0}, math.Vec3{X: -4, Y: -5, Z: 0}, math.Vec3{X: -5, Y: -4, Z: 0}),
		makeEntry(0, 1, math.Vec3{X: 5, Y: 5, Z: 0}, math.Vec3{X: 6, Y: 5, Z: 0}, math.Vec3{X: 5, Y: 6, Z: 0}),
	}
	tree := Build(entries)

	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.IsLeaf {
			for _, idx := range n.Entries {
				if _, ok := tree.Entries[idx].Intersects(n.Region); !ok {
					t.Fatalf("leaf entry %d does not intersect its own leaf region", idx)
				}
			}
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(tree.Root)
}

func TestIntersectFindsCloserOfTwoTriangles(t *testing.T) {
	near := makeEntry(0, 0, math.Vec3{X: -1, Y: -1, Z: 2}, math.Vec3{X: 0, Y: 1, Z: 2}, math.Vec3{X: 1, Y: -1, Z: 2})
	far := makeEntry(1, 0, math.Vec3{X: -1, Y: -1, Z: 5}, math.Vec3{X: 0, Y: 1, Z: 5}, math.Vec3{X: 1, Y: -1, Z: 5})

	tree := Build([]Entry{near, far})
	r := geometry.NewRay(math.Vec3{X: 0, Y: -0.2, Z: -10}, math.Vec3Front)

	hit, ok := tree.Intersect(r, geometry.Epsilon, 1000, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if tree.Entries[hit.EntryIndex].ObjectIndex != 0 {
		t.Fatalf("expected the nearer triangle (object 0) to win, got object %d", tree.Entries[hit.EntryIndex].ObjectIndex)
	}
}

func TestIntersectMissBehindRay(t *testing.T) {
	e := makeEntry(0, 0, math.Vec3{X: -1, Y: -1, Z: -5}, math.Vec3{X: 0, Y: 1, Z: -5}, math.Vec3{X: 1, Y: -1, Z: -5})
	tree := Build([]Entry{e})

	r := geometry.NewRay(math.Vec3{X: 0, Y: -0.2, Z: 0}, math.Vec3Front)
	if _, ok := tree.Intersect(r, geometry.Epsilon, 1000, nil); ok {
		t.Fatal("triangle is behind the ray, expected a miss")
	}
}

func TestIntersectBackFaceCulled(t *testing.T) {
	// Vertex normals point the same way as the ray (+Z), so the leaf
	// cull must reject even though the triangle test itself hits.
	vert := func(p math.Vec3) geometry.Vertex { return geometry.Vertex{Position: p, Normal: math.Vec3Front} }
	v0, v1, v2 := vert(math.Vec3{X: -1, Y: -1, Z: 2}), vert(math.Vec3{X: 0, Y: 1, Z: 2}), vert(math.Vec3{X: 1, Y: -1, Z: 2})
	e := Entry{ObjectIndex: 0, TriangleIndex: 0, V0: v0, V1: v1, V2: v2, Surfel: surfel.FromTriangle(material.Default, v0, v1, v2)}

	tree := Build([]Entry{e})
	r := geometry.NewRay(math.Vec3{X: 0, Y: -0.2, Z: -10}, math.Vec3Front)

	if _, ok := tree.Intersect(r, geometry.Epsilon, 1000, nil); ok {
		t.Fatal("normal faces the same way as the ray direction, expected back-face cull")
	}
}

func TestIntersectSurfelVariant(t *testing.T) {
	e := makeEntry(0, 0, math.Vec3{X: -1, Y: -1, Z: 2}, math.Vec3{X: 0, Y: 1, Z: 2}, math.Vec3{X: 1, Y: -1, Z: 2})
	tree := Build([]Entry{e})

	r := geometry.NewRay(math.Vec3{X: e.Surfel.Position.X, Y: e.Surfel.Position.Y, Z: -10}, math.Vec3Front)
	if _, ok := tree.IntersectSurfel(r, geometry.Epsilon, 1000); !ok {
		t.Fatal("expected ray through surfel center to hit")
	}
}
