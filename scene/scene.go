// Package scene holds the renderable world: objects, lights, and the
// arena that owns them.
package scene

import "github.com/mrigankad/offlinerender/geometry"

// Scene owns every Object in an arena and exposes integer indices
// rather than pointers: scene owns []*Object, k-d entries carry an
// index into it, so no aliased owning pointer ever leaves the arena.
type Scene struct {
	Objects []*Object
	Lights  []Light
}

func NewScene() *Scene {
	return &Scene{}
}

// AddObject appends o to the arena and returns its index.
func (s *Scene) AddObject(o *Object) int {
	s.Objects = append(s.Objects, o)
	return len(s.Objects) - 1
}

func (s *Scene) AddLight(l Light) {
	s.Lights = append(s.Lights, l)
}

// Bounds returns the box enclosing every object in the scene. An empty
// scene yields an inverted (empty) box, matching the k-d tree's
// empty-root behaviour for the no-geometry case.
func (s *Scene) Bounds() geometry.AABB {
	box := geometry.EmptyAABB()
	for _, o := range s.Objects {
		box = box.ExtendToBox(o.Bounds)
	}
	return box
}
