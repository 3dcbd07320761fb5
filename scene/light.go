package scene

import (
	stdmath "math"

	"github.com/mrigankad/offlinerender/math"
)

// Light is a point light: position, colour, and intensity. There are no
// directional or spot kinds; the renderer models area lights as disc
// samples of a point light rather than a distinct light type.
type Light struct {
	Position  math.Vec3
	Colour    math.Vec3
	Intensity float32
}

func NewLight(position, colour math.Vec3, intensity float32) Light {
	return Light{Position: position, Colour: colour, Intensity: intensity}
}

// LightSample is one disc sample of an area light.
type LightSample struct {
	Position  math.Vec3
	Colour    math.Vec3
	Intensity float32
}

// DiscSamples returns n points stratified around a disc of the given
// radius, centered at the light's position and oriented perpendicular
// to up, each carrying intensity/n of the light's total intensity.
// Used to approximate an area light for soft shadows.
func (l Light) DiscSamples(up math.Vec3, radius float32, n int) []LightSample {
	if n <= 0 {
		return nil
	}
	x, y := up.Normalize().OrthonormalBasis()
	samples := make([]LightSample, n)
	perSample := l.Intensity / float32(n)
	for i := 0; i < n; i++ {
		theta := 2 * stdmath.Pi * float64(i) / float64(n)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		offset := x.Mul(radius * cosT).Add(y.Mul(radius * sinT))
		samples[i] = LightSample{
			Position:  l.Position.Add(offset),
			Colour:    l.Colour,
			Intensity: perSample,
		}
	}
	return samples
}
