// Package radiance evaluates light arriving at a surface point: Phong
// direct lighting with visibility, ambient occlusion via cosine-weighted
// hemisphere sampling, and the supporting queries the ray/path tracer
// needs.
package radiance

import (
	stdmath "math"

	"github.com/mrigankad/offlinerender/core"
	"github.com/mrigankad/offlinerender/material"
	"github.com/mrigankad/offlinerender/math"
)

// Phong computes the Phong contribution of one light sample (position
// lightPos, pre-attenuated colour lightColour) to point with normal,
// viewed from viewer, on a surface with material mat. Returns zero if
// the light is below the surface's horizon.
func Phong(lightPos, lightColour, point, normal, viewer math.Vec3, mat material.Material) core.Color {
	l := lightPos.Sub(point).Normalize()
	cosI := l.Dot(normal)
	if cosI <= 0 {
		return core.ColorBlack
	}

	lightCol := asColor(lightColour)
	diffuse := asColor(mat.Colour).Scale(mat.Diffuse).Mul(lightCol).Scale(cosI)

	reflected := l.Sub(normal.Mul(2 * normal.Dot(l))).Normalize()
	v := viewer.Sub(point).Normalize()
	cosV := reflected.Dot(v)
	if cosV <= 0 {
		return diffuse
	}

	specTerm := powPositive(cosV, mat.Shininess)
	specular := asColor(mat.Colour).Scale(mat.Specular).Mul(lightCol).Scale(specTerm)

	return diffuse.Add(specular)
}

func asColor(v math.Vec3) core.Color {
	return core.NewColor(v.X, v.Y, v.Z)
}

// powPositive is base^exp with base always non-negative, matching the
// Phong specular term's domain (cosV is checked > 0 by the caller).
func powPositive(base, exp float32) float32 {
	return float32(stdmath.Pow(float64(base), float64(exp)))
}
