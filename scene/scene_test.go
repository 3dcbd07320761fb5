package scene

import (
	"testing"

	"github.com/mrigankad/offlinerender/geometry"
	"github.com/mrigankad/offlinerender/material"
	"github.com/mrigankad/offlinerender/math"
)

func unitTriangleMesh() *geometry.Mesh {
	return &geometry.Mesh{
		Vertices: []geometry.Vertex{
			{Position: math.Vec3{X: 0, Y: 0, Z: 0}, Normal: math.Vec3Up},
			{Position: math.Vec3{X: 1, Y: 0, Z: 0}, Normal: math.Vec3Up},
			{Position: math.Vec3{X: 0, Y: 1, Z: 0}, Normal: math.Vec3Up},
		},
		Triangles: []geometry.Triangle{{I0: 0, I1: 1, I2: 2}},
	}
}

func TestObjectBoundsIncludeTranslation(t *testing.T) {
	o := NewObject(unitTriangleMesh(), material.Default, math.Vec3{X: 5, Y: 0, Z: 0})

	if o.Bounds.Min.X != 5 || o.Bounds.Max.X != 6 {
		t.Fatalf("expected bounds translated by 5 on X, got %+v", o.Bounds)
	}
}

func TestSceneAddObjectReturnsIndex(t *testing.T) {
	s := NewScene()
	idx0 := s.AddObject(NewObject(unitTriangleMesh(), material.Default, math.Vec3Zero))
	idx1 := s.AddObject(NewObject(unitTriangleMesh(), material.Default, math.Vec3{X: 10}))

	if idx0 != 0 || idx1 != 1 {
		t.Fatalf("expected sequential indices 0,1, got %d,%d", idx0, idx1)
	}
	if len(s.Objects) != 2 {
		t.Fatalf("expected 2 objects in arena, got %d", len(s.Objects))
	}
}

func TestSceneBoundsEmpty(t *testing.T) {
	s := NewScene()
	box := s.Bounds()
	if box.Min.X < box.Max.X {
		t.Fatalf("empty scene should report an inverted (empty) box, got %+v", box)
	}
}

func TestObjectBumpedNormalWithoutBumpField(t *testing.T) {
	o := NewObject(unitTriangleMesh(), material.Default, math.Vec3Zero)
	n := o.BumpedNormal(0, 0.25, 0.25)
	if math.Abs32(n.Length()-1) > 1e-4 {
		t.Fatalf("expected unit normal, got %+v", n)
	}
	if n != math.Vec3Up {
		t.Fatalf("flat triangle with uniform normals should interpolate to Up, got %+v", n)
	}
}

func TestLightDiscSamplesConserveIntensity(t *testing.T) {
	l := NewLight(math.Vec3{X: 0, Y: 5, Z: 0}, math.Vec3One, 2.0)
	samples := l.DiscSamples(math.Vec3Up, 0.5, 20)

	if len(samples) != 20 {
		t.Fatalf("expected 20 samples, got %d", len(samples))
	}
	var total float32
	for _, s := range samples {
		total += s.Intensity
		if s.Position.Distance(l.Position) > 0.5+1e-4 {
			t.Fatalf("sample %+v lies outside the disc radius", s.Position)
		}
	}
	if math.Abs32(total-l.Intensity) > 1e-3 {
		t.Fatalf("expected sample intensities to sum to %v, got %v", l.Intensity, total)
	}
}
