// Package tracer implements the two top-level integrators that turn a
// primary ray into a radiance sample: a recursive mirror-reflection ray
// tracer and a first-bounce Monte-Carlo path tracer. Both share the
// same World (k-d tree, scene, shading parameters) and defer shading at
// each hit to the radiance package.
package tracer

import (
	stdmath "math"

	"github.com/mrigankad/offlinerender/core"
	"github.com/mrigankad/offlinerender/geometry"
	"github.com/mrigankad/offlinerender/kdtree"
	"github.com/mrigankad/offlinerender/math"
	"github.com/mrigankad/offlinerender/radiance"
	"github.com/mrigankad/offlinerender/scene"

	randpkg "math/rand"
)

// World bundles everything an integrator needs to shade a ray: the
// acceleration structure, the scene it was built from, and the shading
// parameters that would otherwise be threaded through every call.
type World struct {
	Tree   *kdtree.Tree
	Scene  *scene.Scene
	Params Params
}

// Params mirrors the subset of params.Store an integrator reads per
// sample. Copied by value rather than referencing params.Store so a
// render worker can snapshot it once per frame without locking on
// every ray.
type Params struct {
	MaxRayDepth                uint
	PathTracingDiffuseRayCount uint
	ShadowMode                 radiance.ShadowMode
	LightRadius                float32
	LightSamples               int
}

const farDistance = float32(stdmath.MaxFloat32)

func (w World) intersect(ray geometry.Ray) (kdtree.Hit, kdtree.Entry, bool) {
	hit, ok := w.Tree.Intersect(ray, geometry.Epsilon, farDistance, w.Scene.BumpedNormalFunc())
	if !ok {
		return kdtree.Hit{}, kdtree.Entry{}, false
	}
	return hit, w.Tree.Entries[hit.EntryIndex], true
}

func asColor(v math.Vec3) core.Color {
	return core.NewColor(v.X, v.Y, v.Z)
}

// TraceRay shades ray at the given recursion depth: miss returns
// background; a hit adds direct lighting plus, while depth is under
// Params.MaxRayDepth, the mirror-reflected radiance scaled by the
// material's colour and specular coefficient.
func TraceRay(w World, ray geometry.Ray, depth uint, background core.Color) core.Color {
	hit, entry, ok := w.intersect(ray)
	if !ok {
		return background
	}

	mat := w.Scene.MaterialAt(entry.ObjectIndex)
	color := core.ColorBlack

	if depth < w.Params.MaxRayDepth {
		n := hit.Normal
		reflected := ray.Direction.Sub(n.Mul(2 * n.Dot(ray.Direction))).Normalize()
		reflectedColor := TraceRay(w, geometry.NewRay(hit.Point, reflected), depth+1, background)
		color = color.Add(asColor(mat.Colour).Scale(mat.Specular).Mul(reflectedColor))
	}

	color = color.Add(radiance.DirectLighting(w.Tree, w.Scene, hit.Point, hit.Normal, ray.Origin, mat, w.Params.ShadowMode, w.Params.LightRadius, w.Params.LightSamples))
	return color
}

// PathTracing shades ray with a single-bounce Monte-Carlo estimator:
// miss returns zero; a hit always adds direct lighting, then, only at
// depth 0, adds a cosine-weighted diffuse term sampled over the full
// sphere and flipped onto the hemisphere facing the normal, and, while
// depth is under Params.MaxRayDepth, a mirror-reflected specular term.
// Restricting diffuse sampling to depth 0 is a deliberate simplification
// (first-bounce Monte-Carlo only): deeper bounces still gather specular
// and direct light, just not further diffuse interreflection.
func PathTracing(w World, ray geometry.Ray, depth uint, rng *randpkg.Rand) core.Color {
	hit, entry, ok := w.intersect(ray)
	if !ok {
		return core.ColorBlack
	}

	mat := w.Scene.MaterialAt(entry.ObjectIndex)
	normal := hit.Normal.Normalize()

	direct := radiance.DirectLighting(w.Tree, w.Scene, hit.Point, normal, ray.Origin, mat, w.Params.ShadowMode, w.Params.LightRadius, w.Params.LightSamples)

	diffuse := core.ColorBlack
	if mat.Diffuse > 0 && depth == 0 {
		n := w.Params.PathTracingDiffuseRayCount
		if n == 0 {
			n = 1
		}
		accum := core.ColorBlack
		for i := uint(0); i < n; i++ {
			theta := rng.Float32() * 2 * stdmath.Pi
			phi := rng.Float32() * stdmath.Pi
			dir := math.FromPolar(theta, phi)

			cos := dir.Dot(normal)
			if cos < 0 {
				dir = dir.Negate()
				cos = -cos
			}

			recursed := PathTracing(w, geometry.NewRay(hit.Point, dir), depth+1, rng)
			accum = accum.Add(recursed.Scale(cos))
		}
		diffuse = accum.Scale(mat.Diffuse * 2 * float32(stdmath.Pi) / float32(n)).Mul(asColor(mat.Colour))
	}

	specular := core.ColorBlack
	if mat.Specular > 0 && depth < w.Params.MaxRayDepth {
		d := ray.Direction.Normalize()
		cos := d.Negate().Dot(normal)
		if cos > 0 {
			reflected := d.Sub(normal.Mul(2 * normal.Dot(d))).Normalize()
			recursed := PathTracing(w, geometry.NewRay(hit.Point, reflected), depth+1, rng)
			specular = asColor(mat.Colour).Scale(mat.Specular).Mul(recursed)
		}
	}

	return direct.Add(diffuse).Add(specular)
}
