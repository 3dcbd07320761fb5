package render

import (
	stdmath "math"
	"math/rand"

	"github.com/mrigankad/offlinerender/core"
	"github.com/mrigankad/offlinerender/geometry"
	"github.com/mrigankad/offlinerender/kdtree"
	"github.com/mrigankad/offlinerender/math"
	"github.com/mrigankad/offlinerender/params"
	"github.com/mrigankad/offlinerender/radiance"
	"github.com/mrigankad/offlinerender/scene"
	"github.com/mrigankad/offlinerender/tracer"
)

// aoSampleCount and aoRadiusFraction are the ray-tracing branch's
// fixed ambient-occlusion budget: 20 hemisphere samples out to 5% of
// the scene bounding box diagonal.
const aoSampleCount = 20
const aoRadiusFraction = 0.05

const farDistance = float32(stdmath.MaxFloat32)

// primaryRayDirection builds the primary ray direction for pixel (i,j)
// of a width x height image with sub-pixel offset (ox, oy) in [0,1):
// forward plus the pixel's scaled offsets along right and up.
func primaryRayDirection(cam Camera, width, height, i, j int, ox, oy float32) math.Vec3 {
	tanFov := float32(stdmath.Tan(float64(cam.FOV)))
	w, h := float32(width), float32(height)

	su := (float32(i) + ox - w/2) / w * tanFov * cam.Aspect
	sv := (float32(j) + oy - h/2) / h * tanFov

	dir := cam.Forward.Add(cam.Right.Mul(su)).Add(cam.Up.Mul(sv))
	return dir.Normalize()
}

// tracerParams snapshots the subset of a params.Store an integrator
// needs, once per render call, so the integrators never take the
// store's mutex per ray. shadePixel still reads the path-tracing,
// ray-tracing and ambient-occlusion toggles from the store once per
// pixel.
func tracerParams(p *params.Store) tracer.Params {
	mode := radiance.ShadowsOff
	if p.Shadows() {
		if p.HardShadows() {
			mode = radiance.ShadowsHard
		} else {
			mode = radiance.ShadowsSoft
		}
	}
	return tracer.Params{
		MaxRayDepth:                p.MaxRayDepth(),
		PathTracingDiffuseRayCount: p.PathTracingDiffuseRayCount(),
		ShadowMode:                 mode,
		LightRadius:                p.LightRadius(),
		LightSamples:               int(p.LightSamples()),
	}
}

// pixelSample is one shaded pixel: its colour and whether the primary
// ray hit geometry, and at what distance (for the depth-of-field
// filter's distance map).
type pixelSample struct {
	Color core.Color
	Hit   bool
	T     float32
}

// shadePixel casts pixel (i,j)'s primary ray and shades it: path
// tracing if enabled and there is a first hit, else ray tracing
// (optionally modulated by ambient occlusion) if enabled, else
// background.
func shadePixel(tree *kdtree.Tree, scn *scene.Scene, p *params.Store, tp tracer.Params, cam Camera, width, height, i, j int, ox, oy float32, background core.Color, rng *rand.Rand) pixelSample {
	dir := primaryRayDirection(cam, width, height, i, j, ox, oy)
	ray := geometry.NewRay(cam.Position, dir)

	hit, hitOK := tree.Intersect(ray, geometry.Epsilon, farDistance, scn.BumpedNormalFunc())
	if !hitOK {
		return pixelSample{Color: background}
	}

	world := tracer.World{Tree: tree, Scene: scn, Params: tp}

	var color core.Color
	switch {
	case p.PathTracing():
		color = tracer.PathTracing(world, ray, 0, rng)
	case p.RayTracing():
		color = tracer.TraceRay(world, ray, 0, background)
		if p.AmbientOcclusion() {
			radius := aoRadiusFraction * scn.Bounds().Diagonal()
			ao := radiance.AmbientOcclusion(tree, hit.Point, hit.Normal, aoSampleCount, radius, rng)
			color = color.Scale(1 - ao)
		}
	default:
		color = background
	}

	return pixelSample{Color: color, Hit: true, T: hit.T}
}
