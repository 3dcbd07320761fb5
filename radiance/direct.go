package radiance

import (
	"github.com/mrigankad/offlinerender/core"
	"github.com/mrigankad/offlinerender/kdtree"
	"github.com/mrigankad/offlinerender/material"
	"github.com/mrigankad/offlinerender/math"
	"github.com/mrigankad/offlinerender/scene"
)

// ShadowMode selects how LightVisibility treats occlusion.
type ShadowMode int

const (
	ShadowsOff ShadowMode = iota
	ShadowsHard
	ShadowsSoft
)

// LightVisibility returns the fraction of a light visible from point:
// 1 with shadows off; the binary point-visibility test in hard mode;
// the fraction of N disc samples visible in soft mode, with the disc
// oriented perpendicular to Y (a fixed up axis).
func LightVisibility(tree *kdtree.Tree, point math.Vec3, light scene.Light, mode ShadowMode, lightRadius float32, lightSamples int) float32 {
	switch mode {
	case ShadowsOff:
		return 1
	case ShadowsHard:
		if Visible(tree, point, light.Position) {
			return 1
		}
		return 0
	default:
		samples := light.DiscSamples(math.Vec3Up, lightRadius, lightSamples)
		if len(samples) == 0 {
			return 1
		}
		visible := 0
		for _, s := range samples {
			if Visible(tree, point, s.Position) {
				visible++
			}
		}
		return float32(visible) / float32(len(samples))
	}
}

// DirectLighting sums visibility-weighted Phong contributions over
// every light in the scene.
func DirectLighting(tree *kdtree.Tree, scn *scene.Scene, point, normal, viewer math.Vec3, mat material.Material, mode ShadowMode, lightRadius float32, lightSamples int) core.Color {
	total := core.ColorBlack
	for _, light := range scn.Lights {
		vis := LightVisibility(tree, point, light, mode, lightRadius, lightSamples)
		if vis <= 0 {
			continue
		}
		lightColour := light.Colour.Mul(light.Intensity)
		contribution := Phong(light.Position, lightColour, point, normal, viewer, mat)
		total = total.Add(contribution.Scale(vis))
	}
	return total
}
