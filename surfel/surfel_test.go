package surfel

import (
	"testing"

	"github.com/mrigankad/offlinerender/geometry"
	"github.com/mrigankad/offlinerender/material"
	"github.com/mrigankad/offlinerender/math"
)

func equilateralTriangle() (geometry.Vertex, geometry.Vertex, geometry.Vertex) {
	a := geometry.Vertex{Position: math.Vec3{X: 0, Y: 0, Z: 0}, Normal: math.Vec3Front}
	b := geometry.Vertex{Position: math.Vec3{X: 2, Y: 0, Z: 0}, Normal: math.Vec3Front}
	c := geometry.Vertex{Position: math.Vec3{X: 1, Y: float32(1.7320508), Z: 0}, Normal: math.Vec3Front}
	return a, b, c
}

func TestSurfelDiscTest(t *testing.T) {
	a, b, c := equilateralTriangle()
	s := FromTriangle(material.Default, a, b, c)

	if !s.Contains(s.Position) {
		t.Fatal("surfel position must always be contained")
	}

	outside := s.Position.Add(s.Normal.Cross(math.Vec3Right).Normalize().Mul(s.Radius + 1e-3))
	if s.Contains(outside) {
		t.Fatalf("point at radius+delta should be outside, radius=%v", s.Radius)
	}
}

func TestSurfelRadiusPositive(t *testing.T) {
	a, b, c := equilateralTriangle()
	s := FromTriangle(material.Default, a, b, c)
	if s.Radius <= 0 {
		t.Fatalf("expected positive inradius, got %v", s.Radius)
	}
}

func TestSurfelIntersectRay(t *testing.T) {
	a, b, c := equilateralTriangle()
	s := FromTriangle(material.Default, a, b, c)

	r := geometry.NewRay(s.Position.Add(math.Vec3{X: 0, Y: 0, Z: -5}), math.Vec3Front)
	tHit, ok := s.IntersectRay(r)
	if !ok {
		t.Fatal("expected ray through the surfel center to hit")
	}
	if math.Abs32(tHit-5) > 1e-3 {
		t.Fatalf("expected t ~= 5, got %v", tHit)
	}
}

func TestSurfelIntersectRayMissesOutsideDisc(t *testing.T) {
	a, b, c := equilateralTriangle()
	s := FromTriangle(material.Default, a, b, c)

	far := s.Position.Add(math.Vec3Right.Mul(s.Radius + 10))
	r := geometry.NewRay(far.Add(math.Vec3{X: 0, Y: 0, Z: -5}), math.Vec3Front)
	if _, ok := s.IntersectRay(r); ok {
		t.Fatal("expected ray far outside the disc to miss")
	}
}
