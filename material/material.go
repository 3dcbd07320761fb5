// Package material holds the surface-reflectance scalars the radiance
// evaluator reads at a hit point.
package material

import "github.com/mrigankad/offlinerender/math"

// Material describes a Phong surface. Specular highlight colour is
// implicitly white, so only a scalar weight is stored for it.
type Material struct {
	Ambient   float32
	Diffuse   float32
	Specular  float32
	Shininess float32
	Colour    math.Vec3
}

func NewMaterial(ambient, diffuse, specular, shininess float32, colour math.Vec3) Material {
	return Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
		Colour:    colour,
	}
}

// Default is a matte, mid-grey material used where the caller supplies
// no material.
var Default = Material{Ambient: 0.1, Diffuse: 0.7, Specular: 0.2, Shininess: 16, Colour: math.Vec3{X: 0.8, Y: 0.8, Z: 0.8}}

// Mirror is a convenience constructor for a pure-specular surface, used
// by the tracer's mirror-reflection tests.
func Mirror(colour math.Vec3) Material {
	return Material{Ambient: 0, Diffuse: 0, Specular: 1, Shininess: 64, Colour: colour}
}
