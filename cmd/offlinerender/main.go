// Command offlinerender is a reference CLI driver: it exposes the
// params.Store rendering options as flags one-to-one (all except the
// scene id and the derived kdTreeBuilt flag), builds a small demo scene
// (mesh/scene I/O belongs to a host layer, not the core), and writes
// the resulting image as a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/mrigankad/offlinerender/core"
	"github.com/mrigankad/offlinerender/math"
	"github.com/mrigankad/offlinerender/params"
	"github.com/mrigankad/offlinerender/render"
	"github.com/mrigankad/offlinerender/renderlog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "offlinerender:", err)
		os.Exit(1)
	}
}

func run() error {
	p := params.NewStore()

	width := flag.Int("width", 256, "output image width")
	height := flag.Int("height", 256, "output image height")
	out := flag.String("out", "out.png", "output PNG path")
	debug := flag.Bool("debug", false, "enable debug logging")

	threadCount := flag.Int("threadCount", p.ThreadCount(), "batch render worker count")
	filter := flag.Bool("filter", p.Filter(), "apply the depth-of-field filter")
	interactive := flag.Bool("interactive", p.Interactive(), "interactive mode: one sample per pixel and no depth-of-field filter (the CLI always runs a batch render)")
	ambientOcclusion := flag.Bool("ambientOcclusion", p.AmbientOcclusion(), "modulate ray-traced colour by ambient occlusion")
	pathTracing := flag.Bool("pathTracing", p.PathTracing(), "use the Monte-Carlo path tracer")
	rayTracing := flag.Bool("rayTracing", p.RayTracing(), "use the recursive ray tracer")
	maxRayDepth := flag.Uint("maxRayDepth", p.MaxRayDepth(), "maximum recursive bounce depth")
	pathTracingDiffuseRayCount := flag.Uint("pathTracingDiffuseRayCount", p.PathTracingDiffuseRayCount(), "diffuse hemisphere sample count at depth 0")
	antiAliasing := flag.Bool("antiAliasing", p.AntiAliasing(), "enable multi-sample anti-aliasing")
	antiAliasingFactor := flag.Uint("antiAliasingFactor", p.AntiAliasingFactor(), "anti-aliasing grid factor (2, 4, 8, or 16)")
	shadows := flag.Bool("shadows", p.Shadows(), "enable shadow rays")
	hardShadows := flag.Bool("hardShadows", p.HardShadows(), "use hard (single-sample) shadows")
	softShadows := flag.Bool("softShadows", p.SoftShadows(), "use soft (area-light) shadows")
	lightRadius := flag.Float64("lightRadius", float64(p.LightRadius()), "soft-shadow disc-light radius")
	lightSamples := flag.Uint("lightSamples", p.LightSamples(), "soft-shadow disc-light sample count")

	flag.Parse()

	p.SetThreadCount(*threadCount)
	p.SetFilter(*filter)
	p.SetInteractive(*interactive)
	p.SetAmbientOcclusion(*ambientOcclusion)
	p.SetPathTracing(*pathTracing)
	p.SetRayTracing(*rayTracing)
	p.SetMaxRayDepth(*maxRayDepth)
	p.SetPathTracingDiffuseRayCount(*pathTracingDiffuseRayCount)
	p.SetAntiAliasing(*antiAliasing)
	p.SetAntiAliasingFactor(*antiAliasingFactor)
	p.SetShadows(*shadows)
	p.SetSoftShadows(*softShadows)
	p.SetHardShadows(*hardShadows)
	p.SetLightRadius(float32(*lightRadius))
	p.SetLightSamples(*lightSamples)

	log := renderlog.NewDefaultLogger("offlinerender", *debug)

	scn := demoScene()
	cam := render.NewCamera(
		math.Vec3{X: 0, Y: 0, Z: 3},
		math.Vec3{X: 0, Y: 0, Z: -1},
		math.Vec3Up,
		radians(45),
		float32(*width)/float32(*height),
	)

	driver := render.NewDriver(1)
	background := core.NewColor(17.0/255, 34.0/255, 51.0/255)

	img, _, err := driver.Render(context.Background(), scn, p, cam, *width, *height, background, log, nil)
	if err != nil {
		return err
	}

	return writePNG(*out, img)
}

func radians(deg float32) float32 {
	return deg * 3.14159265 / 180
}

func writePNG(path string, img *render.Image) error {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	copy(out.Pix, img.ToRGBA8())

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, out)
}
