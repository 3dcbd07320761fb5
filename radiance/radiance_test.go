package radiance

import (
	"math/rand"
	"testing"

	"github.com/mrigankad/offlinerender/core"
	"github.com/mrigankad/offlinerender/geometry"
	"github.com/mrigankad/offlinerender/kdtree"
	"github.com/mrigankad/offlinerender/material"
	"github.com/mrigankad/offlinerender/math"
	"github.com/mrigankad/offlinerender/scene"
	"github.com/mrigankad/offlinerender/surfel"
)

func TestPhongNonNegative(t *testing.T) {
	mat := material.NewMaterial(0.1, 0.7, 0.3, 32, math.Vec3{X: 0.8, Y: 0.2, Z: 0.2})
	lightPos := math.Vec3{X: 2, Y: 2, Z: 2}
	lightColour := math.Vec3One

	c := Phong(lightPos, lightColour, math.Vec3Zero, math.Vec3Up, math.Vec3{X: 0, Y: 1, Z: 3}, mat)
	if c.R < 0 || c.G < 0 || c.B < 0 {
		t.Fatalf("expected non-negative channels, got %+v", c)
	}
}

func TestPhongZeroWhenLightBelowHorizon(t *testing.T) {
	mat := material.Default
	lightPos := math.Vec3{X: 0, Y: -5, Z: 0}
	c := Phong(lightPos, math.Vec3One, math.Vec3Zero, math.Vec3Up, math.Vec3{X: 0, Y: 1, Z: 3}, mat)
	if c != core.ColorBlack {
		t.Fatalf("expected zero contribution for a light below the surface, got %+v", c)
	}
}

func buildEntry(v0, v1, v2 math.Vec3) kdtree.Entry {
	vert := func(p math.Vec3) geometry.Vertex { return geometry.Vertex{Position: p, Normal: math.Vec3Back} }
	a, b, c := vert(v0), vert(v1), vert(v2)
	return kdtree.Entry{ObjectIndex: 0, TriangleIndex: 0, V0: a, V1: b, V2: c, Surfel: surfel.FromTriangle(material.Default, a, b, c)}
}

func TestVisibleNoOcclusion(t *testing.T) {
	tree := kdtree.Build(nil)
	if !Visible(tree, math.Vec3Zero, math.Vec3{X: 0, Y: 0, Z: 10}) {
		t.Fatal("empty scene should report full visibility")
	}
}

func TestVisibleOccludedByTriangle(t *testing.T) {
	occluder := buildEntry(
		math.Vec3{X: -5, Y: -5, Z: 5},
		math.Vec3{X: 0, Y: 5, Z: 5},
		math.Vec3{X: 5, Y: -5, Z: 5},
	)
	tree := kdtree.Build([]kdtree.Entry{occluder})

	if Visible(tree, math.Vec3Zero, math.Vec3{X: 0, Y: 0, Z: 10}) {
		t.Fatal("expected the triangle between origin and target to occlude")
	}
}

func TestLightVisibilityShadowsOff(t *testing.T) {
	occluder := buildEntry(
		math.Vec3{X: -5, Y: -5, Z: 5},
		math.Vec3{X: 0, Y: 5, Z: 5},
		math.Vec3{X: 5, Y: -5, Z: 5},
	)
	tree := kdtree.Build([]kdtree.Entry{occluder})
	light := scene.NewLight(math.Vec3{X: 0, Y: 0, Z: 10}, math.Vec3One, 1)

	if v := LightVisibility(tree, math.Vec3Zero, light, ShadowsOff, 0.5, 20); v != 1 {
		t.Fatalf("expected full visibility with shadows off, got %v", v)
	}
}

func TestLightVisibilityHardModeOccluded(t *testing.T) {
	occluder := buildEntry(
		math.Vec3{X: -5, Y: -5, Z: 5},
		math.Vec3{X: 0, Y: 5, Z: 5},
		math.Vec3{X: 5, Y: -5, Z: 5},
	)
	tree := kdtree.Build([]kdtree.Entry{occluder})
	light := scene.NewLight(math.Vec3{X: 0, Y: 0, Z: 10}, math.Vec3One, 1)

	if v := LightVisibility(tree, math.Vec3Zero, light, ShadowsHard, 0.5, 20); v != 0 {
		t.Fatalf("expected zero visibility behind occluder, got %v", v)
	}
}

func TestAmbientOcclusionBounds(t *testing.T) {
	occluder := buildEntry(
		math.Vec3{X: -5, Y: -5, Z: 1},
		math.Vec3{X: 0, Y: 5, Z: 1},
		math.Vec3{X: 5, Y: -5, Z: 1},
	)
	tree := kdtree.Build([]kdtree.Entry{occluder})
	rng := rand.New(rand.NewSource(1))

	for k := 1; k <= 20; k++ {
		ao := AmbientOcclusion(tree, math.Vec3{X: 0, Y: 0, Z: 0}, math.Vec3Front, k, 5, rng)
		if ao < 0 || ao > 1 {
			t.Fatalf("AO out of [0,1] for k=%d: %v", k, ao)
		}
	}
}
